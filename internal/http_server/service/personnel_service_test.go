package service

import (
	"github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/service"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestPersonnelServiceAdd(t *testing.T) {
	s := newTestServices(t)
	item := s.addPersonnel(t, "001-0000001-1", "Cabo", "PN")
	assert.Equal(t, "Alistados", item.Category)

	tests := []struct {
		name   string
		header JwtHeader
		fields PersonnelFields
		code   string
	}{
		{"duplicate id card", adminHeader, PersonnelFields{FirstNames: "Ana", LastNames: "Gómez", IdCard: "001-0000001-1"}, ErrIdCardTaken.StatusName},
		{"viewer", viewerHeader, PersonnelFields{FirstNames: "Ana", LastNames: "Gómez", IdCard: "002"}, ErrNoPermission.StatusName},
		{"missing names", adminHeader, PersonnelFields{IdCard: "003"}, ErrIllegalParam.StatusName},
		{"blank names", adminHeader, PersonnelFields{FirstNames: "  ", LastNames: " ", IdCard: "004"}, ErrIllegalParam.StatusName},
		{"unknown institution", adminHeader, PersonnelFields{FirstNames: "Ana", LastNames: "Gómez", IdCard: "005", Institution: "XYZ"}, ErrInstitutionNotExists.StatusName},
		{"unknown group", adminHeader, PersonnelFields{FirstNames: "Ana", LastNames: "Gómez", IdCard: "006", GroupId: lo.ToPtr[uint](99)}, ErrGroupNotFound.StatusName},
		{"unknown rank is kept", adminHeader, PersonnelFields{FirstNames: "Ana", LastNames: "Gómez", IdCard: "007", Rank: "Almirante"}, SuccessAddPersonnel.StatusName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := s.personnel.AddPersonnel(&RequestAddPersonnel{JwtHeader: tt.header, PersonnelFields: tt.fields})
			assert.Equal(t, tt.code, res.Code, res.Message)
		})
	}
}

func TestPersonnelServicePage(t *testing.T) {
	s := newTestServices(t)
	s.addPersonnel(t, "001", "Cabo", "PN")
	s.addPersonnel(t, "002", "Coronel", "MIREX")
	s.addPersonnel(t, "003", "Coronel", "ERD")
	s.addPersonnel(t, "004", "Civil", "")
	s.addPersonnel(t, "005", "Capitán de Navio", "ARD")

	page := func(req RequestPersonnelList) *ApiResponse[ResponsePersonnelList] {
		req.JwtHeader = viewerHeader
		return s.personnel.GetPersonnelPage(&req)
	}
	idCards := func(res *ApiResponse[ResponsePersonnelList]) []string {
		require.NotNil(t, res.Data, res.Message)
		return lo.Map(res.Data.Items, func(item *PersonnelItem, _ int) string { return item.IdCard })
	}

	res := page(RequestPersonnelList{})
	assert.Equal(t, []string{"003", "002", "005", "001", "004"}, idCards(res))
	assert.Equal(t, int64(5), res.Data.Total)
	assert.Equal(t, "Oficiales Superiores", res.Data.Items[0].Category)
	assert.Equal(t, 1, res.Data.Page)
	assert.Equal(t, 50, res.Data.PageSize)

	res = page(RequestPersonnelList{PageRequest: PageRequest{Page: 2, PageSize: 2}})
	assert.Equal(t, []string{"005", "001"}, idCards(res))
	assert.Equal(t, int64(5), res.Data.Total)

	assert.Equal(t, []string{"003", "002", "005"}, idCards(page(RequestPersonnelList{Category: "OficialesSuperiores"})))
	assert.Equal(t, []string{"001"}, idCards(page(RequestPersonnelList{Category: "Alistados"})))
	assert.Equal(t, []string{"002"}, idCards(page(RequestPersonnelList{Institution: "MIREX"})))
	assert.Equal(t, []string{"005"}, idCards(page(RequestPersonnelList{Search: "CAPITAN"})))
	assert.Equal(t, []string{"004"}, idCards(page(RequestPersonnelList{Search: "pérez 004"})))

	assert.Equal(t, ErrCategoryNotExists.StatusName, page(RequestPersonnelList{Category: "Generales"}).Code)
	assert.Equal(t, ErrIllegalParam.StatusName, page(RequestPersonnelList{PageRequest: PageRequest{Page: 1, PageSize: 500}}).Code)
	assert.Equal(t, ErrIllegalParam.StatusName, page(RequestPersonnelList{PageRequest: PageRequest{Page: -1, PageSize: 2}}).Code)
	assert.Equal(t, ErrIllegalParam.StatusName, page(RequestPersonnelList{PageRequest: PageRequest{Page: 1, PageSize: -2}}).Code)

	res = page(RequestPersonnelList{PageRequest: PageRequest{Page: 1 << 62, PageSize: 4}})
	assert.Empty(t, idCards(res))
	assert.Equal(t, int64(5), res.Data.Total)

	res = page(RequestPersonnelList{PageRequest: PageRequest{PageSize: 2}})
	assert.Equal(t, []string{"003", "002"}, idCards(res))

	res = s.personnel.GetPersonnelPage(&RequestPersonnelList{PageRequest: PageRequest{Page: 1, PageSize: 10}})
	assert.Equal(t, ErrNoPermission.StatusName, res.Code)
}

func TestPersonnelServiceEditAndDelete(t *testing.T) {
	s := newTestServices(t)
	first := s.addPersonnel(t, "001", "Cabo", "PN")
	s.addPersonnel(t, "002", "Sargento", "ERD")

	edit := s.personnel.EditPersonnel(&RequestEditPersonnel{
		JwtHeader: adminHeader,
		Id:        first.ID,
		PersonnelFields: PersonnelFields{
			FirstNames:  "Juan",
			LastNames:   "Pérez",
			IdCard:      "001",
			Rank:        "Sargento Mayor",
			Institution: "FARD",
		},
	})
	require.Equal(t, SuccessEditPersonnel.StatusName, edit.Code, edit.Message)
	assert.Equal(t, "Sargento Mayor", edit.Data.Rank)
	assert.Equal(t, "Alistados", edit.Data.Category)

	conflict := s.personnel.EditPersonnel(&RequestEditPersonnel{
		JwtHeader:       adminHeader,
		Id:              first.ID,
		PersonnelFields: PersonnelFields{FirstNames: "Juan", LastNames: "Pérez", IdCard: "002"},
	})
	assert.Equal(t, ErrIdCardTaken.StatusName, conflict.Code)

	denied := s.personnel.DeletePersonnel(&RequestDeletePersonnel{JwtHeader: JwtHeader{Uid: 3, Permission: int64(operation.RoleUser.Permission())}, Id: first.ID})
	assert.Equal(t, ErrNoPermission.StatusName, denied.Code)

	deleted := s.personnel.DeletePersonnel(&RequestDeletePersonnel{JwtHeader: adminHeader, Id: first.ID})
	require.Equal(t, SuccessDeletePersonnel.StatusName, deleted.Code, deleted.Message)
	assert.Equal(t, first.ID, deleted.Data.Id)

	missing := s.personnel.GetPersonnel(&RequestGetPersonnel{JwtHeader: adminHeader, Id: first.ID})
	assert.Equal(t, ErrPersonnelNotFound.StatusName, missing.Code)
	assert.Equal(t, NotFound.Code(), missing.HttpCode)

	// the id card is free again after a hard delete
	s.addPersonnel(t, "001", "Cabo", "PN")

	logs, total, err := s.operations.AuditLogOperation().GetAuditLogs(1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Equal(t, string(operation.PersonnelCreated), logs[0].EventType)
}

func TestPersonnelServiceGetRanks(t *testing.T) {
	s := newTestServices(t)
	res := s.personnel.GetRanks(&RequestGetRanks{JwtHeader: viewerHeader})
	require.NotNil(t, res.Data)
	require.Len(t, res.Data.Categories, 7)
	assert.Equal(t, "OficialesGenerales", res.Data.Categories[0].Key)
	assert.Equal(t, []string{"Mayor General", "General de Brigada"}, res.Data.Categories[0].Ranks)
	assert.Empty(t, res.Data.Categories[6].Ranks)
	assert.Equal(t, []string{"ERD", "ARD", "FARD", "PN", "MIDE", "MIREX"}, res.Data.Institutions)
}
