// Package service
package service

import "github.com/half-nothing/simple-hrm/internal/interfaces/operation"

type AuditServiceInterface interface {
	GetAuditLogPage(req *RequestGetAuditLog) *ApiResponse[ResponseGetAuditLog]
}

type RequestGetAuditLog struct {
	JwtHeader
	PageRequest
}

type ResponseGetAuditLog PageResponse[*operation.AuditLog]
