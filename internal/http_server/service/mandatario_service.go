// Package service
package service

import (
	"fmt"
	"github.com/half-nothing/simple-hrm/internal/interfaces/hrm"
	"github.com/half-nothing/simple-hrm/internal/interfaces/log"
	"github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/service"
	"github.com/half-nothing/simple-hrm/internal/utils"
	"github.com/samber/lo"
	"strconv"
	"strings"
)

type MandatarioService struct {
	logger              log.LoggerInterface
	statisticsService   StatisticsServiceInterface
	mandatarioOperation operation.MandatarioOperationInterface
	assignmentOperation operation.AssignmentOperationInterface
	auditLogOperation   operation.AuditLogOperationInterface
}

func NewMandatarioService(
	logger log.LoggerInterface,
	statisticsService StatisticsServiceInterface,
	mandatarioOperation operation.MandatarioOperationInterface,
	assignmentOperation operation.AssignmentOperationInterface,
	auditLogOperation operation.AuditLogOperationInterface,
) *MandatarioService {
	return &MandatarioService{
		logger:              logger,
		statisticsService:   statisticsService,
		mandatarioOperation: mandatarioOperation,
		assignmentOperation: assignmentOperation,
		auditLogOperation:   auditLogOperation,
	}
}

func teamStatusOf(mandatario *operation.Mandatario) *TeamStatus {
	return hrm.ComputeTeamStatus[uint](mandatario.RequiredFunctions, mandatario.Assignments)
}

func newMandatarioItem(mandatario *operation.Mandatario) *MandatarioItem {
	status := teamStatusOf(mandatario)
	return &MandatarioItem{
		Id:            mandatario.ID,
		Name:          mandatario.Name,
		Country:       mandatario.Country,
		Company:       mandatario.Company,
		MainContact:   mandatario.MainContact,
		RequiredCount: status.RequiredCount,
		AssignedCount: status.AssignedCount,
		IsComplete:    status.IsComplete,
		Status:        status.Label(),
	}
}

func mandatarioObject(id uint) string {
	return "mandatario:" + strconv.Itoa(int(id))
}

var SuccessGetMandatarioList = ApiStatus{StatusName: "GET_MANDATARIO_LIST", Description: "Mandatarios obtenidos", HttpCode: Ok}

func (mandatarioService *MandatarioService) GetMandatarioList(req *RequestMandatarioList) *ApiResponse[ResponseMandatarioList] {
	if res := CheckPermission[ResponseMandatarioList](req.Permission, operation.MandatarioShowList); res != nil {
		return res
	}
	mandatarios, err := mandatarioService.mandatarioOperation.GetMandatarios()
	if err != nil {
		return NewApiResponse[ResponseMandatarioList](StatusOfError(err), Unsatisfied, nil)
	}
	if req.Search != "" {
		mandatarios = lo.Filter(mandatarios, func(m *operation.Mandatario, _ int) bool {
			return utils.ContainsNormalized(req.Search, m.Name, m.Country, m.Company, m.MainContact)
		})
	}
	data := ResponseMandatarioList(lo.Map(mandatarios, func(m *operation.Mandatario, _ int) *MandatarioItem {
		return newMandatarioItem(m)
	}))
	return NewApiResponse(&SuccessGetMandatarioList, Unsatisfied, &data)
}

var SuccessGetMandatario = ApiStatus{StatusName: "GET_MANDATARIO", Description: "Mandatario obtenido", HttpCode: Ok}

func (mandatarioService *MandatarioService) GetMandatario(req *RequestGetMandatario) *ApiResponse[ResponseGetMandatario] {
	if req.Id <= 0 {
		return NewApiResponse[ResponseGetMandatario](&ErrIllegalParam, Unsatisfied, nil)
	}
	if res := CheckPermission[ResponseGetMandatario](req.Permission, operation.MandatarioShowList); res != nil {
		return res
	}
	return mandatarioService.mandatarioDetail(req.Id, &SuccessGetMandatario)
}

// mandatarioDetail reloads the mandatario with its team and sorts the assigned members by rank
func (mandatarioService *MandatarioService) mandatarioDetail(id uint, status *ApiStatus) *ApiResponse[ResponseGetMandatario] {
	mandatario, res := CallDBFuncAndCheckError[operation.Mandatario, ResponseGetMandatario](func() (*operation.Mandatario, error) {
		return mandatarioService.mandatarioOperation.GetMandatarioById(id)
	})
	if res != nil {
		return res
	}
	hrm.SortByRank(mandatario.Assignments)
	team := teamStatusOf(mandatario)
	return NewApiResponse(status, Unsatisfied, &ResponseGetMandatario{
		Mandatario: mandatario,
		Team:       team,
		Status:     team.Label(),
	})
}

func trimMandatarioFields(fields *MandatarioFields) {
	fields.Name = strings.TrimSpace(fields.Name)
	fields.Country = strings.TrimSpace(fields.Country)
	fields.Company = strings.TrimSpace(fields.Company)
	fields.MainContact = strings.TrimSpace(fields.MainContact)
}

var SuccessAddMandatario = ApiStatus{StatusName: "ADD_MANDATARIO", Description: "Mandatario registrado", HttpCode: Ok}

func (mandatarioService *MandatarioService) AddMandatario(req *RequestAddMandatario) *ApiResponse[ResponseAddMandatario] {
	trimMandatarioFields(&req.MandatarioFields)
	if status := checkStruct(&req.MandatarioFields); status != nil {
		return NewApiResponse[ResponseAddMandatario](status, Unsatisfied, nil)
	}
	if res := CheckPermission[ResponseAddMandatario](req.Permission, operation.MandatarioAdd); res != nil {
		return res
	}
	mandatario := &operation.Mandatario{
		Name:        req.Name,
		Country:     req.Country,
		Company:     req.Company,
		MainContact: req.MainContact,
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseAddMandatario](func() (*interface{}, error) {
		return nil, mandatarioService.mandatarioOperation.AddMandatario(mandatario)
	}); res != nil {
		return res
	}
	mandatarioService.statisticsService.Invalidate()
	saveAuditLog(mandatarioService.logger, mandatarioService.auditLogOperation, operation.MandatarioCreated, req.Uid,
		mandatarioObject(mandatario.ID), &req.EchoContentHeader, &operation.ChangeDetail{NewValue: mandatario.Name})
	return NewApiResponse(&SuccessAddMandatario, Unsatisfied, (*ResponseAddMandatario)(mandatario))
}

var SuccessEditMandatario = ApiStatus{StatusName: "EDIT_MANDATARIO", Description: "Mandatario actualizado", HttpCode: Ok}

func (mandatarioService *MandatarioService) EditMandatario(req *RequestEditMandatario) *ApiResponse[ResponseEditMandatario] {
	if req.Id <= 0 {
		return NewApiResponse[ResponseEditMandatario](&ErrIllegalParam, Unsatisfied, nil)
	}
	trimMandatarioFields(&req.MandatarioFields)
	if status := checkStruct(&req.MandatarioFields); status != nil {
		return NewApiResponse[ResponseEditMandatario](status, Unsatisfied, nil)
	}
	if res := CheckPermission[ResponseEditMandatario](req.Permission, operation.MandatarioEdit); res != nil {
		return res
	}
	mandatario, res := CallDBFuncAndCheckError[operation.Mandatario, ResponseEditMandatario](func() (*operation.Mandatario, error) {
		return mandatarioService.mandatarioOperation.GetMandatarioById(req.Id)
	})
	if res != nil {
		return res
	}
	oldValue := fmt.Sprintf("%s (%s, %s)", mandatario.Name, mandatario.Country, mandatario.Company)
	updateInfo := map[string]interface{}{
		"name":         req.Name,
		"country":      req.Country,
		"company":      req.Company,
		"main_contact": req.MainContact,
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseEditMandatario](func() (*interface{}, error) {
		return nil, mandatarioService.mandatarioOperation.UpdateMandatario(mandatario, updateInfo)
	}); res != nil {
		return res
	}
	mandatario.Name = req.Name
	mandatario.Country = req.Country
	mandatario.Company = req.Company
	mandatario.MainContact = req.MainContact
	saveAuditLog(mandatarioService.logger, mandatarioService.auditLogOperation, operation.MandatarioUpdated, req.Uid,
		mandatarioObject(mandatario.ID), &req.EchoContentHeader, &operation.ChangeDetail{
			OldValue: oldValue,
			NewValue: fmt.Sprintf("%s (%s, %s)", mandatario.Name, mandatario.Country, mandatario.Company),
		})
	return NewApiResponse(&SuccessEditMandatario, Unsatisfied, (*ResponseEditMandatario)(mandatario))
}

var SuccessDeleteMandatario = ApiStatus{StatusName: "DELETE_MANDATARIO", Description: "Mandatario eliminado", HttpCode: Ok}

func (mandatarioService *MandatarioService) DeleteMandatario(req *RequestDeleteMandatario) *ApiResponse[ResponseDeleteMandatario] {
	if req.Id <= 0 {
		return NewApiResponse[ResponseDeleteMandatario](&ErrIllegalParam, Unsatisfied, nil)
	}
	if res := CheckPermission[ResponseDeleteMandatario](req.Permission, operation.MandatarioDelete); res != nil {
		return res
	}
	mandatario, res := CallDBFuncAndCheckError[operation.Mandatario, ResponseDeleteMandatario](func() (*operation.Mandatario, error) {
		return mandatarioService.mandatarioOperation.GetMandatarioById(req.Id)
	})
	if res != nil {
		return res
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseDeleteMandatario](func() (*interface{}, error) {
		return nil, mandatarioService.mandatarioOperation.DeleteMandatario(mandatario)
	}); res != nil {
		return res
	}
	mandatarioService.statisticsService.Invalidate()
	saveAuditLog(mandatarioService.logger, mandatarioService.auditLogOperation, operation.MandatarioDeleted, req.Uid,
		mandatarioObject(mandatario.ID), &req.EchoContentHeader, &operation.ChangeDetail{OldValue: mandatario.Name})
	return NewApiResponse(&SuccessDeleteMandatario, Unsatisfied, &ResponseDeleteMandatario{Id: mandatario.ID})
}

var SuccessSetRequiredFunctions = ApiStatus{StatusName: "SET_REQUIRED_FUNCTIONS", Description: "Funciones requeridas actualizadas", HttpCode: Ok}

func (mandatarioService *MandatarioService) SetRequiredFunctions(req *RequestSetRequiredFunctions) *ApiResponse[ResponseGetMandatario] {
	if req.Id <= 0 || req.FunctionIds == nil {
		return NewApiResponse[ResponseGetMandatario](&ErrIllegalParam, Unsatisfied, nil)
	}
	if res := CheckPermission[ResponseGetMandatario](req.Permission, operation.MandatarioEdit); res != nil {
		return res
	}
	mandatario, res := CallDBFuncAndCheckError[operation.Mandatario, ResponseGetMandatario](func() (*operation.Mandatario, error) {
		return mandatarioService.mandatarioOperation.GetMandatarioById(req.Id)
	})
	if res != nil {
		return res
	}
	oldValue := fmt.Sprint(lo.Map(mandatario.RequiredFunctions, func(r *operation.RequiredFunction, _ int) uint { return r.FunctionId }))
	required, res := CallDBFuncAndCheckError[[]*operation.RequiredFunction, ResponseGetMandatario](func() (*[]*operation.RequiredFunction, error) {
		result, err := mandatarioService.mandatarioOperation.SetRequiredFunctions(mandatario, req.FunctionIds)
		return &result, err
	})
	if res != nil {
		return res
	}
	mandatarioService.statisticsService.Invalidate()
	saveAuditLog(mandatarioService.logger, mandatarioService.auditLogOperation, operation.TeamRequirementEdit, req.Uid,
		mandatarioObject(mandatario.ID), &req.EchoContentHeader, &operation.ChangeDetail{
			OldValue: oldValue,
			NewValue: fmt.Sprint(lo.Map(*required, func(r *operation.RequiredFunction, _ int) uint { return r.FunctionId })),
		})
	return mandatarioService.mandatarioDetail(mandatario.ID, &SuccessSetRequiredFunctions)
}

var SuccessAddAssignment = ApiStatus{StatusName: "ADD_ASSIGNMENT", Description: "Personal asignado", HttpCode: Ok}

func (mandatarioService *MandatarioService) AddAssignment(req *RequestAddAssignment) *ApiResponse[ResponseAddAssignment] {
	if req.MandatarioId <= 0 {
		return NewApiResponse[ResponseAddAssignment](&ErrIllegalParam, Unsatisfied, nil)
	}
	if status := checkStruct(req); status != nil {
		return NewApiResponse[ResponseAddAssignment](status, Unsatisfied, nil)
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return NewApiResponse[ResponseAddAssignment](&ErrIllegalParam, Unsatisfied, nil)
	}
	if res := CheckPermission[ResponseAddAssignment](req.Permission, operation.AssignmentEdit); res != nil {
		return res
	}
	assignment := &operation.Assignment{
		PersonnelId:  req.PersonnelId,
		FunctionId:   req.FunctionId,
		MandatarioId: req.MandatarioId,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Status:       string(operation.AssignmentActive),
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseAddAssignment](func() (*interface{}, error) {
		return nil, mandatarioService.assignmentOperation.AddAssignment(assignment)
	}); res != nil {
		return res
	}
	mandatarioService.statisticsService.Invalidate()
	saveAuditLog(mandatarioService.logger, mandatarioService.auditLogOperation, operation.AssignmentCreated, req.Uid,
		mandatarioObject(assignment.MandatarioId), &req.EchoContentHeader, &operation.ChangeDetail{
			NewValue: fmt.Sprintf("personnel %s function %d", assignment.PersonnelId, assignment.FunctionId),
		})
	loaded, err := mandatarioService.assignmentOperation.GetAssignmentById(assignment.ID)
	if err != nil {
		mandatarioService.logger.WarnF("Fail to reload assignment %d: %v", assignment.ID, err)
		loaded = assignment
	}
	return NewApiResponse(&SuccessAddAssignment, Unsatisfied, (*ResponseAddAssignment)(loaded))
}

var SuccessEditAssignmentStatus = ApiStatus{StatusName: "EDIT_ASSIGNMENT_STATUS", Description: "Estado de la asignación actualizado", HttpCode: Ok}

// EditAssignmentStatus finishes or reactivates an assignment, finishing one without an end date stamps it with now
func (mandatarioService *MandatarioService) EditAssignmentStatus(req *RequestEditAssignmentStatus) *ApiResponse[ResponseEditAssignmentStatus] {
	if req.MandatarioId <= 0 || req.AssignmentId <= 0 {
		return NewApiResponse[ResponseEditAssignmentStatus](&ErrIllegalParam, Unsatisfied, nil)
	}
	if status := checkStruct(req); status != nil {
		return NewApiResponse[ResponseEditAssignmentStatus](status, Unsatisfied, nil)
	}
	if res := CheckPermission[ResponseEditAssignmentStatus](req.Permission, operation.AssignmentEdit); res != nil {
		return res
	}
	assignment, res := CallDBFuncAndCheckError[operation.Assignment, ResponseEditAssignmentStatus](func() (*operation.Assignment, error) {
		return mandatarioService.assignmentOperation.GetAssignmentById(req.AssignmentId)
	})
	if res != nil {
		return res
	}
	if assignment.MandatarioId != req.MandatarioId {
		return NewApiResponse[ResponseEditAssignmentStatus](&ErrAssignmentNotFound, Unsatisfied, nil)
	}
	oldStatus := assignment.Status
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseEditAssignmentStatus](func() (*interface{}, error) {
		return nil, mandatarioService.assignmentOperation.UpdateAssignmentStatus(assignment, operation.AssignmentStatus(req.Status))
	}); res != nil {
		return res
	}
	mandatarioService.statisticsService.Invalidate()
	saveAuditLog(mandatarioService.logger, mandatarioService.auditLogOperation, operation.AssignmentUpdated, req.Uid,
		mandatarioObject(assignment.MandatarioId), &req.EchoContentHeader, &operation.ChangeDetail{
			OldValue: fmt.Sprintf("assignment %d %s", assignment.ID, oldStatus),
			NewValue: fmt.Sprintf("assignment %d %s", assignment.ID, req.Status),
		})
	updated, err := mandatarioService.assignmentOperation.GetAssignmentById(assignment.ID)
	if err != nil {
		mandatarioService.logger.WarnF("Fail to reload assignment %d: %v", assignment.ID, err)
		updated = assignment
	}
	return NewApiResponse(&SuccessEditAssignmentStatus, Unsatisfied, (*ResponseEditAssignmentStatus)(updated))
}

var SuccessDeleteAssignment = ApiStatus{StatusName: "DELETE_ASSIGNMENT", Description: "Asignación eliminada", HttpCode: Ok}

func (mandatarioService *MandatarioService) DeleteAssignment(req *RequestDeleteAssignment) *ApiResponse[ResponseDeleteAssignment] {
	if req.MandatarioId <= 0 || req.AssignmentId <= 0 {
		return NewApiResponse[ResponseDeleteAssignment](&ErrIllegalParam, Unsatisfied, nil)
	}
	if res := CheckPermission[ResponseDeleteAssignment](req.Permission, operation.AssignmentEdit); res != nil {
		return res
	}
	assignment, res := CallDBFuncAndCheckError[operation.Assignment, ResponseDeleteAssignment](func() (*operation.Assignment, error) {
		return mandatarioService.assignmentOperation.GetAssignmentById(req.AssignmentId)
	})
	if res != nil {
		return res
	}
	if assignment.MandatarioId != req.MandatarioId {
		return NewApiResponse[ResponseDeleteAssignment](&ErrAssignmentNotFound, Unsatisfied, nil)
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseDeleteAssignment](func() (*interface{}, error) {
		return nil, mandatarioService.assignmentOperation.DeleteAssignment(assignment)
	}); res != nil {
		return res
	}
	mandatarioService.statisticsService.Invalidate()
	saveAuditLog(mandatarioService.logger, mandatarioService.auditLogOperation, operation.AssignmentDeleted, req.Uid,
		mandatarioObject(assignment.MandatarioId), &req.EchoContentHeader, &operation.ChangeDetail{
			OldValue: fmt.Sprintf("personnel %s function %d", assignment.PersonnelId, assignment.FunctionId),
		})
	return NewApiResponse(&SuccessDeleteAssignment, Unsatisfied, &ResponseDeleteAssignment{Id: assignment.ID})
}
