package database

import (
	"context"
	"errors"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	"gorm.io/gorm"
	"time"
)

type CatalogOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewCatalogOperation(db *gorm.DB, queryTimeout time.Duration) *CatalogOperation {
	return &CatalogOperation{db: db, queryTimeout: queryTimeout}
}

func isNameTaken(tx *gorm.DB, model interface{}, name string) (bool, error) {
	var count int64
	if err := tx.Model(model).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (catalogOperation *CatalogOperation) GetGroups() (groups []*Group, err error) {
	groups = make([]*Group, 0)
	ctx, cancel := context.WithTimeout(context.Background(), catalogOperation.queryTimeout)
	defer cancel()
	err = catalogOperation.db.WithContext(ctx).Order("name").Find(&groups).Error
	return
}

func (catalogOperation *CatalogOperation) GetGroupById(id uint) (group *Group, err error) {
	group = &Group{}
	ctx, cancel := context.WithTimeout(context.Background(), catalogOperation.queryTimeout)
	defer cancel()
	err = catalogOperation.db.WithContext(ctx).Where("id = ?", id).First(group).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrGroupNotFound
	}
	return
}

func (catalogOperation *CatalogOperation) AddGroup(group *Group) error {
	ctx, cancel := context.WithTimeout(context.Background(), catalogOperation.queryTimeout)
	defer cancel()
	return catalogOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := isNameTaken(tx, &Group{}, group.Name)
		if err != nil {
			return err
		}
		if taken {
			return ErrNameTaken
		}
		return tx.Omit("Personnel").Create(group).Error
	})
}

func (catalogOperation *CatalogOperation) DeleteGroup(group *Group) error {
	ctx, cancel := context.WithTimeout(context.Background(), catalogOperation.queryTimeout)
	defer cancel()
	return catalogOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Personnel{}).Where("group_id = ?", group.ID).Update("group_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&Group{}, group.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrGroupNotFound
		}
		return nil
	})
}

func (catalogOperation *CatalogOperation) GetTotalGroups() (total int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), catalogOperation.queryTimeout)
	defer cancel()
	err = catalogOperation.db.WithContext(ctx).Model(&Group{}).Select("id").Count(&total).Error
	return
}

func (catalogOperation *CatalogOperation) GetFunctions() (functions []*Function, err error) {
	functions = make([]*Function, 0)
	ctx, cancel := context.WithTimeout(context.Background(), catalogOperation.queryTimeout)
	defer cancel()
	err = catalogOperation.db.WithContext(ctx).Order("name").Find(&functions).Error
	return
}

func (catalogOperation *CatalogOperation) GetFunctionById(id uint) (function *Function, err error) {
	function = &Function{}
	ctx, cancel := context.WithTimeout(context.Background(), catalogOperation.queryTimeout)
	defer cancel()
	err = catalogOperation.db.WithContext(ctx).Where("id = ?", id).First(function).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrFunctionNotFound
	}
	return
}

func (catalogOperation *CatalogOperation) AddFunction(function *Function) error {
	ctx, cancel := context.WithTimeout(context.Background(), catalogOperation.queryTimeout)
	defer cancel()
	return catalogOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := isNameTaken(tx, &Function{}, function.Name)
		if err != nil {
			return err
		}
		if taken {
			return ErrNameTaken
		}
		return tx.Create(function).Error
	})
}

func (catalogOperation *CatalogOperation) DeleteFunction(function *Function) error {
	ctx, cancel := context.WithTimeout(context.Background(), catalogOperation.queryTimeout)
	defer cancel()
	return catalogOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var required, assigned int64
		if err := tx.Model(&RequiredFunction{}).Where("function_id = ?", function.ID).Count(&required).Error; err != nil {
			return err
		}
		if err := tx.Model(&Assignment{}).Where("function_id = ?", function.ID).Count(&assigned).Error; err != nil {
			return err
		}
		if required+assigned > 0 {
			return ErrCatalogInUse
		}
		result := tx.Delete(&Function{}, function.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrFunctionNotFound
		}
		return nil
	})
}

func (catalogOperation *CatalogOperation) GetTotalFunctions() (total int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), catalogOperation.queryTimeout)
	defer cancel()
	err = catalogOperation.db.WithContext(ctx).Model(&Function{}).Select("id").Count(&total).Error
	return
}
