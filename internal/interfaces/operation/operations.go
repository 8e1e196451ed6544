// Package operation
package operation

type DatabaseOperations struct {
	userOperation       UserOperationInterface
	personnelOperation  PersonnelOperationInterface
	mandatarioOperation MandatarioOperationInterface
	assignmentOperation AssignmentOperationInterface
	catalogOperation    CatalogOperationInterface
	reminderOperation   ReminderOperationInterface
	auditLogOperation   AuditLogOperationInterface
}

func NewDatabaseOperations(
	userOperation UserOperationInterface,
	personnelOperation PersonnelOperationInterface,
	mandatarioOperation MandatarioOperationInterface,
	assignmentOperation AssignmentOperationInterface,
	catalogOperation CatalogOperationInterface,
	reminderOperation ReminderOperationInterface,
	auditLogOperation AuditLogOperationInterface,
) *DatabaseOperations {
	return &DatabaseOperations{
		userOperation:       userOperation,
		personnelOperation:  personnelOperation,
		mandatarioOperation: mandatarioOperation,
		assignmentOperation: assignmentOperation,
		catalogOperation:    catalogOperation,
		reminderOperation:   reminderOperation,
		auditLogOperation:   auditLogOperation,
	}
}

func (db *DatabaseOperations) UserOperation() UserOperationInterface { return db.userOperation }

func (db *DatabaseOperations) PersonnelOperation() PersonnelOperationInterface {
	return db.personnelOperation
}

func (db *DatabaseOperations) MandatarioOperation() MandatarioOperationInterface {
	return db.mandatarioOperation
}

func (db *DatabaseOperations) AssignmentOperation() AssignmentOperationInterface {
	return db.assignmentOperation
}

func (db *DatabaseOperations) CatalogOperation() CatalogOperationInterface {
	return db.catalogOperation
}

func (db *DatabaseOperations) ReminderOperation() ReminderOperationInterface {
	return db.reminderOperation
}

func (db *DatabaseOperations) AuditLogOperation() AuditLogOperationInterface {
	return db.auditLogOperation
}
