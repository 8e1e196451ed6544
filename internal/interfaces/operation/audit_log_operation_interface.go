// Package operation
package operation

type EventType string

const (
	UserCreated          EventType = "UserCreated"
	UserInformationEdit  EventType = "UserInformationEdit"
	UserPermissionGrant  EventType = "UserPermissionGrant"
	UserPermissionRevoke EventType = "UserPermissionRevoke"
	UserRoleChange       EventType = "UserRoleChange"
	UserActiveChange     EventType = "UserActiveChange"
	PersonnelCreated     EventType = "PersonnelCreated"
	PersonnelUpdated     EventType = "PersonnelUpdated"
	PersonnelDeleted     EventType = "PersonnelDeleted"
	MandatarioCreated    EventType = "MandatarioCreated"
	MandatarioUpdated    EventType = "MandatarioUpdated"
	MandatarioDeleted    EventType = "MandatarioDeleted"
	TeamRequirementEdit  EventType = "TeamRequirementEdit"
	AssignmentCreated    EventType = "AssignmentCreated"
	AssignmentUpdated    EventType = "AssignmentUpdated"
	AssignmentDeleted    EventType = "AssignmentDeleted"
	CatalogCreated       EventType = "CatalogCreated"
	CatalogDeleted       EventType = "CatalogDeleted"
)

type AuditLogOperationInterface interface {
	NewAuditLog(eventType EventType, subject uint, object, ip, userAgent string, changeDetails *ChangeDetail) (auditLog *AuditLog)
	SaveAuditLog(auditLog *AuditLog) (err error)
	SaveAuditLogs(auditLogs []*AuditLog) (err error)
	GetAuditLogs(page, pageSize int) (auditLogs []*AuditLog, total int64, err error)
}
