// Package service
package service

import (
	"fmt"
	"github.com/half-nothing/simple-hrm/internal/interfaces/config"
	"github.com/half-nothing/simple-hrm/internal/interfaces/hrm"
	"github.com/half-nothing/simple-hrm/internal/interfaces/log"
	"github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/service"
	"github.com/half-nothing/simple-hrm/internal/utils"
	"github.com/samber/lo"
	"strings"
	"time"
)

type PersonnelService struct {
	logger             log.LoggerInterface
	config             *config.HttpServerLimit
	statisticsService  StatisticsServiceInterface
	personnelOperation operation.PersonnelOperationInterface
	catalogOperation   operation.CatalogOperationInterface
	auditLogOperation  operation.AuditLogOperationInterface
}

func NewPersonnelService(
	logger log.LoggerInterface,
	config *config.HttpServerLimit,
	statisticsService StatisticsServiceInterface,
	personnelOperation operation.PersonnelOperationInterface,
	catalogOperation operation.CatalogOperationInterface,
	auditLogOperation operation.AuditLogOperationInterface,
) *PersonnelService {
	return &PersonnelService{
		logger:             logger,
		config:             config,
		statisticsService:  statisticsService,
		personnelOperation: personnelOperation,
		catalogOperation:   catalogOperation,
		auditLogOperation:  auditLogOperation,
	}
}

func newPersonnelItem(personnel *operation.Personnel) *PersonnelItem {
	return &PersonnelItem{Personnel: personnel, Category: hrm.ClassifyRank(personnel.Rank).String()}
}

var ErrCategoryNotExists = ApiStatus{StatusName: "CATEGORY_NOT_EXISTS", Description: "Categoría de rango no válida", HttpCode: BadRequest}

// parseCategory accepts an empty string as "no filter"
func parseCategory(category string) (*hrm.RankCategory, *ApiStatus) {
	if category == "" {
		return nil, nil
	}
	result, ok := hrm.ParseRankCategory(category)
	if !ok {
		return nil, &ErrCategoryNotExists
	}
	return &result, nil
}

var SuccessGetPersonnelPage = ApiStatus{StatusName: "GET_PERSONNEL_PAGE", Description: "Personal obtenido", HttpCode: Ok}

func (personnelService *PersonnelService) GetPersonnelPage(req *RequestPersonnelList) *ApiResponse[ResponsePersonnelList] {
	if !req.Normalize(personnelService.config.MaxPageSize) {
		return NewApiResponse[ResponsePersonnelList](&ErrIllegalParam, Unsatisfied, nil)
	}
	if res := CheckPermission[ResponsePersonnelList](req.Permission, operation.PersonnelShowList); res != nil {
		return res
	}
	category, status := parseCategory(req.Category)
	if status != nil {
		return NewApiResponse[ResponsePersonnelList](status, Unsatisfied, nil)
	}
	personnel, err := personnelService.personnelOperation.GetFilteredPersonnel(&operation.PersonnelFilter{
		Search:      req.Search,
		Institution: req.Institution,
		Category:    category,
		Gender:      req.Gender,
		GroupId:     req.GroupId,
	})
	if err != nil {
		return NewApiResponse[ResponsePersonnelList](StatusOfError(err), Unsatisfied, nil)
	}
	page := utils.Paginate(personnel, req.Page, req.PageSize)
	return NewApiResponse(&SuccessGetPersonnelPage, Unsatisfied, &ResponsePersonnelList{
		Items:    lo.Map(page, func(p *operation.Personnel, _ int) *PersonnelItem { return newPersonnelItem(p) }),
		Page:     req.Page,
		PageSize: req.PageSize,
		Total:    int64(len(personnel)),
	})
}

var SuccessGetRanks = ApiStatus{StatusName: "GET_RANKS", Description: "Rangos obtenidos", HttpCode: Ok}

func (personnelService *PersonnelService) GetRanks(req *RequestGetRanks) *ApiResponse[ResponseGetRanks] {
	if res := CheckPermission[ResponseGetRanks](req.Permission, operation.PersonnelShowList); res != nil {
		return res
	}
	categories := make([]*RankGroup, 0, len(hrm.RankCategories))
	for _, category := range hrm.RankCategories {
		categories = append(categories, &RankGroup{
			Key:      category.Key,
			Category: category.LongName,
			Ranks:    hrm.RanksOf(hrm.RankCategory(category.Id)),
		})
	}
	institutions := lo.Map(hrm.Institutions, func(institution hrm.Institution, _ int) string { return string(institution) })
	return NewApiResponse(&SuccessGetRanks, Unsatisfied, &ResponseGetRanks{
		Categories:   categories,
		Institutions: institutions,
	})
}

var SuccessGetPersonnel = ApiStatus{StatusName: "GET_PERSONNEL", Description: "Personal obtenido", HttpCode: Ok}

func (personnelService *PersonnelService) GetPersonnel(req *RequestGetPersonnel) *ApiResponse[ResponseGetPersonnel] {
	if req.Id == "" {
		return NewApiResponse[ResponseGetPersonnel](&ErrIllegalParam, Unsatisfied, nil)
	}
	if res := CheckPermission[ResponseGetPersonnel](req.Permission, operation.PersonnelShowList); res != nil {
		return res
	}
	personnel, res := CallDBFuncAndCheckError[operation.Personnel, ResponseGetPersonnel](func() (*operation.Personnel, error) {
		return personnelService.personnelOperation.GetPersonnelById(req.Id)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetPersonnel, Unsatisfied, (*ResponseGetPersonnel)(newPersonnelItem(personnel)))
}

var ErrInstitutionNotExists = ApiStatus{StatusName: "INSTITUTION_NOT_EXISTS", Description: "Institución no válida", HttpCode: BadRequest}

// checkPersonnelFields trims the fields in place and validates them
func (personnelService *PersonnelService) checkPersonnelFields(fields *PersonnelFields) *ApiStatus {
	fields.FirstNames = strings.TrimSpace(fields.FirstNames)
	fields.LastNames = strings.TrimSpace(fields.LastNames)
	fields.IdCard = strings.TrimSpace(fields.IdCard)
	if status := checkStruct(fields); status != nil {
		return status
	}
	if fields.Institution != "" && !hrm.Institution(fields.Institution).IsValid() {
		return &ErrInstitutionNotExists
	}
	if fields.GroupId != nil {
		if _, err := personnelService.catalogOperation.GetGroupById(*fields.GroupId); err != nil {
			return StatusOfError(err)
		}
	}
	return nil
}

var SuccessAddPersonnel = ApiStatus{StatusName: "ADD_PERSONNEL", Description: "Personal registrado", HttpCode: Ok}

func (personnelService *PersonnelService) AddPersonnel(req *RequestAddPersonnel) *ApiResponse[ResponseAddPersonnel] {
	if res := CheckPermission[ResponseAddPersonnel](req.Permission, operation.PersonnelAdd); res != nil {
		return res
	}
	if status := personnelService.checkPersonnelFields(&req.PersonnelFields); status != nil {
		return NewApiResponse[ResponseAddPersonnel](status, Unsatisfied, nil)
	}
	personnel := &operation.Personnel{
		FirstNames:  req.FirstNames,
		LastNames:   req.LastNames,
		IdCard:      req.IdCard,
		Rank:        req.Rank,
		Gender:      req.Gender,
		Nationality: req.Nationality,
		Phone:       req.Phone,
		Institution: req.Institution,
		GroupId:     req.GroupId,
		PhotoUrl:    req.PhotoUrl,
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseAddPersonnel](func() (*interface{}, error) {
		return nil, personnelService.personnelOperation.AddPersonnel(personnel)
	}); res != nil {
		return res
	}
	personnelService.statisticsService.Invalidate()
	saveAuditLog(personnelService.logger, personnelService.auditLogOperation, operation.PersonnelCreated, req.Uid, personnel.ID,
		&req.EchoContentHeader, &operation.ChangeDetail{NewValue: personnelSummary(personnel)})
	return NewApiResponse(&SuccessAddPersonnel, Unsatisfied, (*ResponseAddPersonnel)(newPersonnelItem(personnel)))
}

func personnelSummary(personnel *operation.Personnel) string {
	return fmt.Sprintf("%s %s (%s, %s, %s)", personnel.Rank, personnel.FullName(), personnel.IdCard, personnel.Institution, personnel.Phone)
}

var SuccessEditPersonnel = ApiStatus{StatusName: "EDIT_PERSONNEL", Description: "Personal actualizado", HttpCode: Ok}

func (personnelService *PersonnelService) EditPersonnel(req *RequestEditPersonnel) *ApiResponse[ResponseEditPersonnel] {
	if req.Id == "" {
		return NewApiResponse[ResponseEditPersonnel](&ErrIllegalParam, Unsatisfied, nil)
	}
	if res := CheckPermission[ResponseEditPersonnel](req.Permission, operation.PersonnelEdit); res != nil {
		return res
	}
	if status := personnelService.checkPersonnelFields(&req.PersonnelFields); status != nil {
		return NewApiResponse[ResponseEditPersonnel](status, Unsatisfied, nil)
	}
	personnel, res := CallDBFuncAndCheckError[operation.Personnel, ResponseEditPersonnel](func() (*operation.Personnel, error) {
		return personnelService.personnelOperation.GetPersonnelById(req.Id)
	})
	if res != nil {
		return res
	}
	oldValue := personnelSummary(personnel)
	updateInfo := map[string]interface{}{
		"first_names": req.FirstNames,
		"last_names":  req.LastNames,
		"id_card":     req.IdCard,
		"rank":        req.Rank,
		"gender":      req.Gender,
		"nationality": req.Nationality,
		"phone":       req.Phone,
		"institution": req.Institution,
		"group_id":    req.GroupId,
		"photo_url":   req.PhotoUrl,
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseEditPersonnel](func() (*interface{}, error) {
		return nil, personnelService.personnelOperation.UpdatePersonnel(personnel, updateInfo)
	}); res != nil {
		return res
	}
	personnel, res = CallDBFuncAndCheckError[operation.Personnel, ResponseEditPersonnel](func() (*operation.Personnel, error) {
		return personnelService.personnelOperation.GetPersonnelById(req.Id)
	})
	if res != nil {
		return res
	}
	personnelService.statisticsService.Invalidate()
	saveAuditLog(personnelService.logger, personnelService.auditLogOperation, operation.PersonnelUpdated, req.Uid, personnel.ID,
		&req.EchoContentHeader, &operation.ChangeDetail{OldValue: oldValue, NewValue: personnelSummary(personnel)})
	return NewApiResponse(&SuccessEditPersonnel, Unsatisfied, (*ResponseEditPersonnel)(newPersonnelItem(personnel)))
}

var SuccessDeletePersonnel = ApiStatus{StatusName: "DELETE_PERSONNEL", Description: "Personal eliminado", HttpCode: Ok}

func (personnelService *PersonnelService) DeletePersonnel(req *RequestDeletePersonnel) *ApiResponse[ResponseDeletePersonnel] {
	if req.Id == "" {
		return NewApiResponse[ResponseDeletePersonnel](&ErrIllegalParam, Unsatisfied, nil)
	}
	if res := CheckPermission[ResponseDeletePersonnel](req.Permission, operation.PersonnelDelete); res != nil {
		return res
	}
	personnel, res := CallDBFuncAndCheckError[operation.Personnel, ResponseDeletePersonnel](func() (*operation.Personnel, error) {
		return personnelService.personnelOperation.GetPersonnelById(req.Id)
	})
	if res != nil {
		return res
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseDeletePersonnel](func() (*interface{}, error) {
		return nil, personnelService.personnelOperation.DeletePersonnel(personnel)
	}); res != nil {
		return res
	}
	personnelService.statisticsService.Invalidate()
	saveAuditLog(personnelService.logger, personnelService.auditLogOperation, operation.PersonnelDeleted, req.Uid, personnel.ID,
		&req.EchoContentHeader, &operation.ChangeDetail{OldValue: personnelSummary(personnel)})
	return NewApiResponse(&SuccessDeletePersonnel, Unsatisfied, &ResponseDeletePersonnel{Id: personnel.ID, DeletedAt: time.Now()})
}
