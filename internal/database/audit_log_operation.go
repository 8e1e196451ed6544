// Package database
package database

import (
	"context"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	"github.com/half-nothing/simple-hrm/internal/utils"
	"gorm.io/gorm"
	"time"
)

type AuditLogOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewAuditLogOperation(db *gorm.DB, queryTimeout time.Duration) *AuditLogOperation {
	return &AuditLogOperation{db: db, queryTimeout: queryTimeout}
}

func (auditLogOperation *AuditLogOperation) NewAuditLog(eventType EventType, subject uint, object, ip, userAgent string, changeDetails *ChangeDetail) (auditLog *AuditLog) {
	return &AuditLog{
		EventType:     string(eventType),
		Subject:       subject,
		Object:        object,
		Ip:            ip,
		UserAgent:     userAgent,
		ChangeDetails: changeDetails,
	}
}

func (auditLogOperation *AuditLogOperation) GetAuditLogs(page, pageSize int) (auditLogs []*AuditLog, total int64, err error) {
	auditLogs = make([]*AuditLog, 0, pageSize)
	ctx, cancel := context.WithTimeout(context.Background(), auditLogOperation.queryTimeout)
	defer cancel()
	if err = auditLogOperation.db.WithContext(ctx).Model(&AuditLog{}).Select("id").Count(&total).Error; err != nil {
		return
	}
	offset, ok := utils.PageOffset(page, pageSize)
	if !ok || int64(offset) >= total {
		return
	}
	err = auditLogOperation.db.WithContext(ctx).Order("created_at desc, id desc").Offset(offset).Limit(pageSize).Find(&auditLogs).Error
	return
}

func (auditLogOperation *AuditLogOperation) SaveAuditLog(auditLog *AuditLog) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), auditLogOperation.queryTimeout)
	defer cancel()
	return auditLogOperation.db.WithContext(ctx).Create(auditLog).Error
}

func (auditLogOperation *AuditLogOperation) SaveAuditLogs(auditLogs []*AuditLog) (err error) {
	if len(auditLogs) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), auditLogOperation.queryTimeout)
	defer cancel()
	return auditLogOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(auditLogs).Error
	})
}
