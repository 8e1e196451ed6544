package database

import (
	"context"
	"errors"
	"github.com/half-nothing/simple-hrm/internal/interfaces/hrm"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	"github.com/half-nothing/simple-hrm/internal/utils"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"time"
)

type PersonnelOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewPersonnelOperation(db *gorm.DB, queryTimeout time.Duration) *PersonnelOperation {
	return &PersonnelOperation{db: db, queryTimeout: queryTimeout}
}

func (personnelOperation *PersonnelOperation) GetPersonnelById(id string) (personnel *Personnel, err error) {
	personnel = &Personnel{}
	ctx, cancel := context.WithTimeout(context.Background(), personnelOperation.queryTimeout)
	defer cancel()
	err = personnelOperation.db.WithContext(ctx).
		Preload("Group").
		Where("id = ?", id).
		First(personnel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrPersonnelNotFound
	}
	return
}

// GetFilteredPersonnel pushes the exact-match filters to the database; the accent-insensitive search
// and the rank category are evaluated in memory because neither maps onto a portable SQL predicate
func (personnelOperation *PersonnelOperation) GetFilteredPersonnel(filter *PersonnelFilter) (personnel []*Personnel, err error) {
	personnel = make([]*Personnel, 0)
	ctx, cancel := context.WithTimeout(context.Background(), personnelOperation.queryTimeout)
	defer cancel()
	query := personnelOperation.db.WithContext(ctx).Preload("Group").Order("created_at")
	if filter.Institution != "" {
		query = query.Where("institution = ?", filter.Institution)
	}
	if filter.Gender != "" {
		query = query.Where("gender = ?", filter.Gender)
	}
	if filter.GroupId != 0 {
		query = query.Where("group_id = ?", filter.GroupId)
	}
	if err = query.Find(&personnel).Error; err != nil {
		return
	}
	if filter.Category != nil {
		category := *filter.Category
		personnel = lo.Filter(personnel, func(p *Personnel, _ int) bool {
			return hrm.ClassifyRank(p.Rank) == category
		})
	}
	if filter.Search != "" {
		personnel = lo.Filter(personnel, func(p *Personnel, _ int) bool {
			return utils.ContainsNormalized(filter.Search, p.FirstNames, p.LastNames, p.IdCard, p.Rank, p.Institution, p.Phone)
		})
	}
	hrm.SortByRankAndInstitution(personnel)
	return
}

func (personnelOperation *PersonnelOperation) GetTotalPersonnel() (total int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), personnelOperation.queryTimeout)
	defer cancel()
	err = personnelOperation.db.WithContext(ctx).Model(&Personnel{}).Select("id").Count(&total).Error
	return
}

type institutionCount struct {
	Institution string
	Total       int64
}

func (personnelOperation *PersonnelOperation) CountPersonnelByInstitution() (counts map[string]int64, err error) {
	rows := make([]*institutionCount, 0)
	ctx, cancel := context.WithTimeout(context.Background(), personnelOperation.queryTimeout)
	defer cancel()
	err = personnelOperation.db.WithContext(ctx).
		Model(&Personnel{}).
		Select("institution, count(*) as total").
		Group("institution").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts = lo.SliceToMap(rows, func(row *institutionCount) (string, int64) {
		return row.Institution, row.Total
	})
	return
}

func (personnelOperation *PersonnelOperation) isIdCardTaken(tx *gorm.DB, excludeId, idCard string) (bool, error) {
	var count int64
	err := tx.Model(&Personnel{}).
		Where("id_card = ? AND id <> ?", idCard, excludeId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (personnelOperation *PersonnelOperation) AddPersonnel(personnel *Personnel) error {
	ctx, cancel := context.WithTimeout(context.Background(), personnelOperation.queryTimeout)
	defer cancel()
	return personnelOperation.db.Clauses(clause.Locking{Strength: "UPDATE"}).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := personnelOperation.isIdCardTaken(tx, "", personnel.IdCard)
		if err != nil {
			return err
		}
		if taken {
			return ErrIdCardTaken
		}
		return tx.Create(personnel).Error
	})
}

func (personnelOperation *PersonnelOperation) UpdatePersonnel(personnel *Personnel, info map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), personnelOperation.queryTimeout)
	defer cancel()
	return personnelOperation.db.Clauses(clause.Locking{Strength: "UPDATE"}).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if idCard, ok := info["id_card"].(string); ok && idCard != personnel.IdCard {
			taken, err := personnelOperation.isIdCardTaken(tx, personnel.ID, idCard)
			if err != nil {
				return err
			}
			if taken {
				return ErrIdCardTaken
			}
		}
		return tx.Model(personnel).Updates(info).Error
	})
}

func (personnelOperation *PersonnelOperation) DeletePersonnel(personnel *Personnel) error {
	ctx, cancel := context.WithTimeout(context.Background(), personnelOperation.queryTimeout)
	defer cancel()
	return personnelOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("personnel_id = ?", personnel.ID).Delete(&Assignment{}).Error; err != nil {
			return err
		}
		result := tx.Delete(personnel)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPersonnelNotFound
		}
		return nil
	})
}
