// Package service
package service

import (
	"github.com/half-nothing/simple-hrm/internal/interfaces/config"
	"github.com/half-nothing/simple-hrm/internal/interfaces/log"
	"github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/service"
)

type AuditLogService struct {
	config         *config.HttpServerLimit
	auditOperation operation.AuditLogOperationInterface
}

func NewAuditService(
	config *config.HttpServerLimit,
	auditOperation operation.AuditLogOperationInterface,
) *AuditLogService {
	return &AuditLogService{
		config:         config,
		auditOperation: auditOperation,
	}
}

// saveAuditLog records a change; a failed write is logged and never fails the request
func saveAuditLog(
	logger log.LoggerInterface,
	auditOperation operation.AuditLogOperationInterface,
	eventType operation.EventType,
	subject uint,
	object string,
	header *EchoContentHeader,
	detail *operation.ChangeDetail,
) {
	auditLog := auditOperation.NewAuditLog(eventType, subject, object, header.Ip, header.UserAgent, detail)
	if err := auditOperation.SaveAuditLog(auditLog); err != nil {
		logger.ErrorF("Fail to save audit log %s for %s: %v", eventType, object, err)
	}
}

var SuccessGetAuditLog = ApiStatus{StatusName: "GET_AUDIT_LOG", Description: "Registro de auditoría obtenido", HttpCode: Ok}

func (auditLogService *AuditLogService) GetAuditLogPage(req *RequestGetAuditLog) *ApiResponse[ResponseGetAuditLog] {
	if !req.Normalize(auditLogService.config.MaxPageSize) {
		return NewApiResponse[ResponseGetAuditLog](&ErrIllegalParam, Unsatisfied, nil)
	}
	if res := CheckPermission[ResponseGetAuditLog](req.Permission, operation.AuditLogShow); res != nil {
		return res
	}
	auditLogs, total, err := auditLogService.auditOperation.GetAuditLogs(req.Page, req.PageSize)
	if err != nil {
		return NewApiResponse[ResponseGetAuditLog](StatusOfError(err), Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetAuditLog, Unsatisfied, &ResponseGetAuditLog{
		Items:    auditLogs,
		Page:     req.Page,
		PageSize: req.PageSize,
		Total:    total,
	})
}
