package database

import (
	"context"
	"errors"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"time"
)

type AssignmentOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewAssignmentOperation(db *gorm.DB, queryTimeout time.Duration) *AssignmentOperation {
	return &AssignmentOperation{db: db, queryTimeout: queryTimeout}
}

func preloadAssignment(db *gorm.DB) *gorm.DB {
	return db.Preload("Personnel").Preload("Function").Preload("Mandatario")
}

func (assignmentOperation *AssignmentOperation) GetAssignmentById(id uint) (assignment *Assignment, err error) {
	assignment = &Assignment{}
	ctx, cancel := context.WithTimeout(context.Background(), assignmentOperation.queryTimeout)
	defer cancel()
	err = preloadAssignment(assignmentOperation.db.WithContext(ctx)).
		Where("id = ?", id).
		First(assignment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrAssignmentNotFound
	}
	return
}

func (assignmentOperation *AssignmentOperation) GetAssignments() (assignments []*Assignment, err error) {
	assignments = make([]*Assignment, 0)
	ctx, cancel := context.WithTimeout(context.Background(), assignmentOperation.queryTimeout)
	defer cancel()
	err = preloadAssignment(assignmentOperation.db.WithContext(ctx)).Order("id").Find(&assignments).Error
	return
}

func (assignmentOperation *AssignmentOperation) GetAssignmentsByMandatario(mandatarioId uint) (assignments []*Assignment, err error) {
	assignments = make([]*Assignment, 0)
	ctx, cancel := context.WithTimeout(context.Background(), assignmentOperation.queryTimeout)
	defer cancel()
	err = preloadAssignment(assignmentOperation.db.WithContext(ctx)).
		Where("mandatario_id = ?", mandatarioId).
		Order("id").
		Find(&assignments).Error
	return
}

func (assignmentOperation *AssignmentOperation) GetTotalAssignments() (total int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), assignmentOperation.queryTimeout)
	defer cancel()
	err = assignmentOperation.db.WithContext(ctx).Model(&Assignment{}).Select("id").Count(&total).Error
	return
}

func exists(tx *gorm.DB, model interface{}, id interface{}) (bool, error) {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (assignmentOperation *AssignmentOperation) AddAssignment(assignment *Assignment) error {
	if assignment.Status == "" {
		assignment.Status = string(AssignmentActive)
	}
	ctx, cancel := context.WithTimeout(context.Background(), assignmentOperation.queryTimeout)
	defer cancel()
	return assignmentOperation.db.Clauses(clause.Locking{Strength: "UPDATE"}).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		checks := []struct {
			model interface{}
			id    interface{}
			err   error
		}{
			{&Personnel{}, assignment.PersonnelId, ErrPersonnelNotFound},
			{&Function{}, assignment.FunctionId, ErrFunctionNotFound},
			{&Mandatario{}, assignment.MandatarioId, ErrMandatarioNotFound},
		}
		for _, check := range checks {
			ok, err := exists(tx, check.model, check.id)
			if err != nil {
				return err
			}
			if !ok {
				return check.err
			}
		}

		var count int64
		err := tx.Model(&Assignment{}).
			Where("personnel_id = ? AND function_id = ? AND mandatario_id = ?",
				assignment.PersonnelId, assignment.FunctionId, assignment.MandatarioId).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyAssigned
		}
		return tx.Omit("Personnel", "Function", "Mandatario").Create(assignment).Error
	})
}

func (assignmentOperation *AssignmentOperation) UpdateAssignmentStatus(assignment *Assignment, status AssignmentStatus) error {
	updates := map[string]interface{}{"status": string(status)}
	if status == AssignmentFinished && assignment.EndDate == nil {
		updates["end_date"] = time.Now()
	}
	ctx, cancel := context.WithTimeout(context.Background(), assignmentOperation.queryTimeout)
	defer cancel()
	return assignmentOperation.db.WithContext(ctx).Model(assignment).Omit("Personnel", "Function", "Mandatario").Updates(updates).Error
}

func (assignmentOperation *AssignmentOperation) DeleteAssignment(assignment *Assignment) error {
	ctx, cancel := context.WithTimeout(context.Background(), assignmentOperation.queryTimeout)
	defer cancel()
	result := assignmentOperation.db.WithContext(ctx).Delete(&Assignment{}, assignment.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}
