// Package service
package service

import (
	"github.com/half-nothing/simple-hrm/internal/interfaces/log"
	"github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/service"
	"strconv"
	"strings"
)

type CatalogService struct {
	logger            log.LoggerInterface
	statisticsService StatisticsServiceInterface
	catalogOperation  operation.CatalogOperationInterface
	auditLogOperation operation.AuditLogOperationInterface
}

func NewCatalogService(
	logger log.LoggerInterface,
	statisticsService StatisticsServiceInterface,
	catalogOperation operation.CatalogOperationInterface,
	auditLogOperation operation.AuditLogOperationInterface,
) *CatalogService {
	return &CatalogService{
		logger:            logger,
		statisticsService: statisticsService,
		catalogOperation:  catalogOperation,
		auditLogOperation: auditLogOperation,
	}
}

var SuccessGetGroups = ApiStatus{StatusName: "GET_GROUPS", Description: "Grupos obtenidos", HttpCode: Ok}

func (catalogService *CatalogService) GetGroups(req *RequestGetGroups) *ApiResponse[ResponseGetGroups] {
	if res := CheckPermission[ResponseGetGroups](req.Permission, operation.PersonnelShowList); res != nil {
		return res
	}
	groups, err := catalogService.catalogOperation.GetGroups()
	if err != nil {
		return NewApiResponse[ResponseGetGroups](StatusOfError(err), Unsatisfied, nil)
	}
	data := ResponseGetGroups(groups)
	return NewApiResponse(&SuccessGetGroups, Unsatisfied, &data)
}

var SuccessAddGroup = ApiStatus{StatusName: "ADD_GROUP", Description: "Grupo creado", HttpCode: Ok}

func (catalogService *CatalogService) AddGroup(req *RequestAddCatalog) *ApiResponse[ResponseAddGroup] {
	req.Name = strings.TrimSpace(req.Name)
	if status := checkStruct(req); status != nil {
		return NewApiResponse[ResponseAddGroup](status, Unsatisfied, nil)
	}
	if res := CheckPermission[ResponseAddGroup](req.Permission, operation.CatalogEdit); res != nil {
		return res
	}
	group := &operation.Group{Name: req.Name}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseAddGroup](func() (*interface{}, error) {
		return nil, catalogService.catalogOperation.AddGroup(group)
	}); res != nil {
		return res
	}
	catalogService.statisticsService.Invalidate()
	saveAuditLog(catalogService.logger, catalogService.auditLogOperation, operation.CatalogCreated, req.Uid,
		"group:"+strconv.Itoa(int(group.ID)), &req.EchoContentHeader, &operation.ChangeDetail{NewValue: group.Name})
	return NewApiResponse(&SuccessAddGroup, Unsatisfied, (*ResponseAddGroup)(group))
}

var SuccessDeleteGroup = ApiStatus{StatusName: "DELETE_GROUP", Description: "Grupo eliminado", HttpCode: Ok}

func (catalogService *CatalogService) DeleteGroup(req *RequestDeleteCatalog) *ApiResponse[ResponseDeleteCatalog] {
	if req.Id <= 0 {
		return NewApiResponse[ResponseDeleteCatalog](&ErrIllegalParam, Unsatisfied, nil)
	}
	if res := CheckPermission[ResponseDeleteCatalog](req.Permission, operation.CatalogEdit); res != nil {
		return res
	}
	group, res := CallDBFuncAndCheckError[operation.Group, ResponseDeleteCatalog](func() (*operation.Group, error) {
		return catalogService.catalogOperation.GetGroupById(req.Id)
	})
	if res != nil {
		return res
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseDeleteCatalog](func() (*interface{}, error) {
		return nil, catalogService.catalogOperation.DeleteGroup(group)
	}); res != nil {
		return res
	}
	catalogService.statisticsService.Invalidate()
	saveAuditLog(catalogService.logger, catalogService.auditLogOperation, operation.CatalogDeleted, req.Uid,
		"group:"+strconv.Itoa(int(group.ID)), &req.EchoContentHeader, &operation.ChangeDetail{OldValue: group.Name})
	return NewApiResponse(&SuccessDeleteGroup, Unsatisfied, &ResponseDeleteCatalog{Id: group.ID})
}

var SuccessGetFunctions = ApiStatus{StatusName: "GET_FUNCTIONS", Description: "Funciones obtenidas", HttpCode: Ok}

func (catalogService *CatalogService) GetFunctions(req *RequestGetFunctions) *ApiResponse[ResponseGetFunctions] {
	if res := CheckPermission[ResponseGetFunctions](req.Permission, operation.MandatarioShowList); res != nil {
		return res
	}
	functions, err := catalogService.catalogOperation.GetFunctions()
	if err != nil {
		return NewApiResponse[ResponseGetFunctions](StatusOfError(err), Unsatisfied, nil)
	}
	data := ResponseGetFunctions(functions)
	return NewApiResponse(&SuccessGetFunctions, Unsatisfied, &data)
}

var SuccessAddFunction = ApiStatus{StatusName: "ADD_FUNCTION", Description: "Función creada", HttpCode: Ok}

func (catalogService *CatalogService) AddFunction(req *RequestAddCatalog) *ApiResponse[ResponseAddFunction] {
	req.Name = strings.TrimSpace(req.Name)
	if status := checkStruct(req); status != nil {
		return NewApiResponse[ResponseAddFunction](status, Unsatisfied, nil)
	}
	if res := CheckPermission[ResponseAddFunction](req.Permission, operation.CatalogEdit); res != nil {
		return res
	}
	function := &operation.Function{Name: req.Name}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseAddFunction](func() (*interface{}, error) {
		return nil, catalogService.catalogOperation.AddFunction(function)
	}); res != nil {
		return res
	}
	catalogService.statisticsService.Invalidate()
	saveAuditLog(catalogService.logger, catalogService.auditLogOperation, operation.CatalogCreated, req.Uid,
		"function:"+strconv.Itoa(int(function.ID)), &req.EchoContentHeader, &operation.ChangeDetail{NewValue: function.Name})
	return NewApiResponse(&SuccessAddFunction, Unsatisfied, (*ResponseAddFunction)(function))
}

var SuccessDeleteFunction = ApiStatus{StatusName: "DELETE_FUNCTION", Description: "Función eliminada", HttpCode: Ok}

func (catalogService *CatalogService) DeleteFunction(req *RequestDeleteCatalog) *ApiResponse[ResponseDeleteCatalog] {
	if req.Id <= 0 {
		return NewApiResponse[ResponseDeleteCatalog](&ErrIllegalParam, Unsatisfied, nil)
	}
	if res := CheckPermission[ResponseDeleteCatalog](req.Permission, operation.CatalogEdit); res != nil {
		return res
	}
	function, res := CallDBFuncAndCheckError[operation.Function, ResponseDeleteCatalog](func() (*operation.Function, error) {
		return catalogService.catalogOperation.GetFunctionById(req.Id)
	})
	if res != nil {
		return res
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseDeleteCatalog](func() (*interface{}, error) {
		return nil, catalogService.catalogOperation.DeleteFunction(function)
	}); res != nil {
		return res
	}
	catalogService.statisticsService.Invalidate()
	saveAuditLog(catalogService.logger, catalogService.auditLogOperation, operation.CatalogDeleted, req.Uid,
		"function:"+strconv.Itoa(int(function.ID)), &req.EchoContentHeader, &operation.ChangeDetail{OldValue: function.Name})
	return NewApiResponse(&SuccessDeleteFunction, Unsatisfied, &ResponseDeleteCatalog{Id: function.ID})
}
