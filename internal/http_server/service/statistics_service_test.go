package service

import (
	"github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/service"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func ExampleEfficiency() {
	Efficiency(2, 3)
}

func TestEfficiency(t *testing.T) {
	tests := []struct {
		complete, total, want int
	}{
		{0, 0, 0},
		{0, 4, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{5, 5, 100},
	}
	pass, fail := 0, 0
	for _, tt := range tests {
		if got := Efficiency(tt.complete, tt.total); got != tt.want {
			t.Errorf("Efficiency(%d, %d) = %d, want %d", tt.complete, tt.total, got, tt.want)
			fail++
		} else {
			pass++
		}
	}
	t.Logf("Efficiency: %d passed, %d failed", pass, fail)
}

func TestStatisticsDashboard(t *testing.T) {
	s := newTestServices(t)
	escolta := s.addFunction(t, "Escolta")
	s.catalog.AddGroup(&RequestAddCatalog{JwtHeader: adminHeader, Name: "Grupo A"})
	complete := s.addMandatario(t, "Mandatario Completo")
	s.addMandatario(t, "Mandatario Sin Requisitos")
	incomplete := s.addMandatario(t, "Mandatario Incompleto")
	cabo := s.addPersonnel(t, "001", "Cabo", "PN")
	s.addPersonnel(t, "002", "Coronel", "PN")
	s.addPersonnel(t, "003", "Civil", "MIREX")

	for _, id := range []uint{complete.ID, incomplete.ID} {
		res := s.mandatario.SetRequiredFunctions(&RequestSetRequiredFunctions{JwtHeader: adminHeader, Id: id, FunctionIds: []uint{escolta.ID}})
		require.Equal(t, SuccessSetRequiredFunctions.StatusName, res.Code, res.Message)
	}
	res := s.mandatario.AddAssignment(&RequestAddAssignment{JwtHeader: adminHeader, MandatarioId: complete.ID, PersonnelId: cabo.ID, FunctionId: escolta.ID})
	require.Equal(t, SuccessAddAssignment.StatusName, res.Code, res.Message)

	dashboard := s.statistics.GetDashboard(&RequestDashboard{JwtHeader: viewerHeader})
	require.NotNil(t, dashboard.Data, dashboard.Message)
	assert.Equal(t, int64(3), dashboard.Data.TotalPersonnel)
	assert.Equal(t, 1, dashboard.Data.AssignedPersonnel)
	assert.Equal(t, 3, dashboard.Data.TotalMandatarios)
	assert.Equal(t, 2, dashboard.Data.CompleteTeams)
	assert.Equal(t, 1, dashboard.Data.IncompleteTeams)
	assert.Equal(t, 67, dashboard.Data.Efficiency)
	assert.Equal(t, int64(1), dashboard.Data.TotalGroups)
	assert.Equal(t, int64(1), dashboard.Data.TotalFunctions)
	assert.Equal(t, int64(1), dashboard.Data.TotalAssignments)
	assert.Equal(t, map[string]int64{"PN": 2, "MIREX": 1}, dashboard.Data.ByInstitution)

	// a second assignment of the same person does not change the distinct count
	res = s.mandatario.AddAssignment(&RequestAddAssignment{JwtHeader: adminHeader, MandatarioId: incomplete.ID, PersonnelId: cabo.ID, FunctionId: escolta.ID})
	require.Equal(t, SuccessAddAssignment.StatusName, res.Code, res.Message)
	dashboard = s.statistics.GetDashboard(&RequestDashboard{JwtHeader: viewerHeader})
	require.NotNil(t, dashboard.Data)
	assert.Equal(t, 1, dashboard.Data.AssignedPersonnel)
	assert.Equal(t, int64(2), dashboard.Data.TotalAssignments)
	assert.Equal(t, 100, dashboard.Data.Efficiency)

	denied := s.statistics.GetDashboard(&RequestDashboard{})
	assert.Equal(t, ErrNoPermission.StatusName, denied.Code)
}

func TestStatisticsAnalyticsAndReport(t *testing.T) {
	s := newTestServices(t)
	escolta := s.addFunction(t, "Escolta")
	mandatario := s.addMandatario(t, "Canciller")
	cabo := s.addPersonnel(t, "001", "Cabo", "PN")
	coronel := s.addPersonnel(t, "002", "Coronel", "ARD")
	s.addPersonnel(t, "003", "Coronel", "ERD")
	s.addPersonnel(t, "004", "Almirante", "")

	analytics := s.statistics.GetAnalytics(&RequestAnalytics{JwtHeader: viewerHeader})
	require.NotNil(t, analytics.Data, analytics.Message)
	assert.Equal(t, 4, analytics.Data.Total)
	assert.Equal(t, []string{"003", "002", "001", "004"},
		lo.Map(analytics.Data.Personnel, func(p *operation.Personnel, _ int) string { return p.IdCard }))
	assert.Equal(t, map[string]int{"Oficiales Superiores": 2, "Alistados": 1, "Otros": 1}, analytics.Data.ByCategory)
	assert.Equal(t, map[string]int{"PN": 1, "ARD": 1, "ERD": 1, "": 1}, analytics.Data.ByInstitution)

	filtered := s.statistics.GetAnalytics(&RequestAnalytics{JwtHeader: viewerHeader, Category: "Oficiales Superiores", Institution: "ARD"})
	require.NotNil(t, filtered.Data)
	assert.Equal(t, 1, filtered.Data.Total)
	assert.Equal(t, "002", filtered.Data.Personnel[0].IdCard)

	for _, personnelId := range []string{cabo.ID, coronel.ID} {
		res := s.mandatario.AddAssignment(&RequestAddAssignment{JwtHeader: adminHeader, MandatarioId: mandatario.ID, PersonnelId: personnelId, FunctionId: escolta.ID})
		require.Equal(t, SuccessAddAssignment.StatusName, res.Code, res.Message)
	}
	report := s.statistics.GetAssignmentReport(&RequestAssignmentReport{JwtHeader: viewerHeader, MandatarioId: mandatario.ID})
	require.NotNil(t, report.Data, report.Message)
	require.Len(t, *report.Data, 2)
	assert.Equal(t, "002", (*report.Data)[0].IdCard)
	assert.Equal(t, "Canciller", (*report.Data)[0].Mandatario)
	assert.Equal(t, "Escolta", (*report.Data)[0].Function)
	assert.Equal(t, "activa", (*report.Data)[1].Status)
}
