package database

import (
	"context"
	"errors"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	"github.com/half-nothing/simple-hrm/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"time"
)

type UserOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
	bcryptCost   int
}

func NewUserOperation(db *gorm.DB, queryTimeout time.Duration, bcryptCost int) *UserOperation {
	return &UserOperation{db: db, queryTimeout: queryTimeout, bcryptCost: bcryptCost}
}

func (userOperation *UserOperation) GetUserByUid(uid uint) (user *User, err error) {
	user = &User{}
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).
		Where("id = ?", uid).
		First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrUserNotFound
	}
	return
}

func (userOperation *UserOperation) GetUserByUsernameOrEmail(ident string) (user *User, err error) {
	user = &User{}
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).
		Where("username = ? OR email = ?", ident, ident).
		First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrUserNotFound
	}
	return
}

func (userOperation *UserOperation) GetUsers(page, pageSize int) (users []*User, total int64, err error) {
	users = make([]*User, 0, pageSize)
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	if err = userOperation.db.WithContext(ctx).Model(&User{}).Select("id").Count(&total).Error; err != nil {
		return
	}
	offset, ok := utils.PageOffset(page, pageSize)
	if !ok || int64(offset) >= total {
		return
	}
	err = userOperation.db.WithContext(ctx).Order("id").Offset(offset).Limit(pageSize).Find(&users).Error
	return
}

func (userOperation *UserOperation) GetTotalUsers() (total int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).Model(&User{}).Select("id").Count(&total).Error
	return
}

func (userOperation *UserOperation) NewUser(username, email, fullName, password string, role Role) (user *User, err error) {
	encodePassword, err := bcrypt.GenerateFromPassword([]byte(password), userOperation.bcryptCost)
	if err != nil {
		return nil, ErrPasswordEncode
	}
	user = &User{
		Username:   username,
		Email:      email,
		FullName:   fullName,
		Password:   string(encodePassword),
		Role:       string(role),
		Permission: int64(role.Permission()),
		Active:     true,
	}
	return
}

func (userOperation *UserOperation) AddUser(user *User) error {
	return userOperation.db.Clauses(clause.Locking{Strength: "UPDATE"}).Transaction(func(tx *gorm.DB) error {
		taken, err := userOperation.IsUserIdentifierTaken(tx, 0, user.Username, user.Email)
		if err != nil {
			return ErrIdentifierCheck
		}

		if taken {
			return ErrIdentifierTaken
		}

		ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
		defer cancel()
		return tx.WithContext(ctx).Create(user).Error
	})
}

func (userOperation *UserOperation) UpdateUserRole(user *User, role Role) error {
	permission := role.Permission()
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	err := userOperation.db.Clauses(clause.Locking{Strength: "UPDATE"}).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(user).Updates(map[string]interface{}{
			"role":       string(role),
			"permission": int64(permission),
		}).Error
	})
	if err == nil {
		user.Role = string(role)
		user.Permission = int64(permission)
	}
	return err
}

func (userOperation *UserOperation) UpdateUserPermission(user *User, permission Permission) error {
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	err := userOperation.db.Clauses(clause.Locking{Strength: "UPDATE"}).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(user).Update("permission", int64(permission)).Error
	})
	if err == nil {
		user.Permission = int64(permission)
	}
	return err
}

func (userOperation *UserOperation) UpdateUserActive(user *User, active bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	return userOperation.db.WithContext(ctx).Model(user).Update("active", active).Error
}

func (userOperation *UserOperation) UpdateUserLastLogin(user *User) error {
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	return userOperation.db.WithContext(ctx).Model(user).Update("last_login_at", time.Now()).Error
}

func (userOperation *UserOperation) UpdateUserInfo(user *User, info map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	return userOperation.db.Clauses(clause.Locking{Strength: "UPDATE"}).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		username, _ := info["username"].(string)
		email, _ := info["email"].(string)
		if username != "" || email != "" {
			taken, err := userOperation.IsUserIdentifierTaken(tx, user.ID, username, email)
			if err != nil {
				return ErrIdentifierCheck
			}
			if taken {
				return ErrIdentifierTaken
			}
		}
		return tx.Model(user).Updates(info).Error
	})
}

func (userOperation *UserOperation) UpdateUserPassword(user *User, originalPassword, newPassword string, skipVerify bool) ([]byte, error) {
	if !skipVerify && !userOperation.VerifyUserPassword(user, originalPassword) {
		return nil, ErrOldPassword
	}
	encodePassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), userOperation.bcryptCost)
	if err != nil {
		return nil, ErrPasswordEncode
	}
	user.Password = string(encodePassword)
	return encodePassword, nil
}

func (userOperation *UserOperation) VerifyUserPassword(user *User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	return err == nil
}

func (userOperation *UserOperation) IsUserIdentifierTaken(tx *gorm.DB, excludeId uint, username, email string) (bool, error) {
	if tx == nil {
		tx = userOperation.db
	}
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()

	var count int64
	err := tx.WithContext(ctx).
		Model(&User{}).
		Where("id <> ?", excludeId).
		Where(tx.Where("username = ?", username).Or("email = ?", email)).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}
