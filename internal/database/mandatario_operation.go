package database

import (
	"context"
	"errors"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"time"
)

type MandatarioOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewMandatarioOperation(db *gorm.DB, queryTimeout time.Duration) *MandatarioOperation {
	return &MandatarioOperation{db: db, queryTimeout: queryTimeout}
}

func preloadTeam(db *gorm.DB) *gorm.DB {
	return db.
		Preload("RequiredFunctions", func(db *gorm.DB) *gorm.DB { return db.Order("function_id") }).
		Preload("RequiredFunctions.Function").
		Preload("Assignments").
		Preload("Assignments.Personnel").
		Preload("Assignments.Function")
}

func (mandatarioOperation *MandatarioOperation) GetMandatarioById(id uint) (mandatario *Mandatario, err error) {
	mandatario = &Mandatario{}
	ctx, cancel := context.WithTimeout(context.Background(), mandatarioOperation.queryTimeout)
	defer cancel()
	err = preloadTeam(mandatarioOperation.db.WithContext(ctx)).
		Where("id = ?", id).
		First(mandatario).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrMandatarioNotFound
	}
	return
}

func (mandatarioOperation *MandatarioOperation) GetMandatarios() (mandatarios []*Mandatario, err error) {
	mandatarios = make([]*Mandatario, 0)
	ctx, cancel := context.WithTimeout(context.Background(), mandatarioOperation.queryTimeout)
	defer cancel()
	err = preloadTeam(mandatarioOperation.db.WithContext(ctx)).Order("name").Find(&mandatarios).Error
	return
}

func (mandatarioOperation *MandatarioOperation) AddMandatario(mandatario *Mandatario) error {
	ctx, cancel := context.WithTimeout(context.Background(), mandatarioOperation.queryTimeout)
	defer cancel()
	return mandatarioOperation.db.WithContext(ctx).Omit("RequiredFunctions", "Assignments").Create(mandatario).Error
}

func (mandatarioOperation *MandatarioOperation) UpdateMandatario(mandatario *Mandatario, info map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), mandatarioOperation.queryTimeout)
	defer cancel()
	return mandatarioOperation.db.WithContext(ctx).Model(mandatario).Omit("RequiredFunctions", "Assignments").Updates(info).Error
}

func (mandatarioOperation *MandatarioOperation) DeleteMandatario(mandatario *Mandatario) error {
	ctx, cancel := context.WithTimeout(context.Background(), mandatarioOperation.queryTimeout)
	defer cancel()
	return mandatarioOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("mandatario_id = ?", mandatario.ID).Delete(&Assignment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("mandatario_id = ?", mandatario.ID).Delete(&RequiredFunction{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&Mandatario{}, mandatario.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrMandatarioNotFound
		}
		return nil
	})
}

func (mandatarioOperation *MandatarioOperation) SetRequiredFunctions(mandatario *Mandatario, functionIds []uint) (required []*RequiredFunction, err error) {
	functionIds = lo.Uniq(functionIds)
	required = lo.Map(functionIds, func(functionId uint, _ int) *RequiredFunction {
		return &RequiredFunction{MandatarioId: mandatario.ID, FunctionId: functionId}
	})
	ctx, cancel := context.WithTimeout(context.Background(), mandatarioOperation.queryTimeout)
	defer cancel()
	err = mandatarioOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(functionIds) > 0 {
			var count int64
			if err := tx.Model(&Function{}).Where("id IN ?", functionIds).Count(&count).Error; err != nil {
				return err
			}
			if count != int64(len(functionIds)) {
				return ErrFunctionNotFound
			}
		}
		if err := tx.Where("mandatario_id = ?", mandatario.ID).Delete(&RequiredFunction{}).Error; err != nil {
			return err
		}
		if len(required) == 0 {
			return nil
		}
		return tx.Create(&required).Error
	})
	if err != nil {
		return nil, err
	}
	mandatario.RequiredFunctions = required
	return
}
