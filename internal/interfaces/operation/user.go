// Package operation
package operation

import (
	"errors"
	"gorm.io/gorm"
)

var (
	// ErrUserNotFound user does not exist
	ErrUserNotFound = errors.New("user does not exist")
	// ErrIdentifierTaken username or email is already used by another user
	ErrIdentifierTaken = errors.New("user identifiers have been used")
	// ErrIdentifierCheck uniqueness check failed to run
	ErrIdentifierCheck = errors.New("identifier check error")
	ErrPasswordEncode  = errors.New("password encode error")
	ErrOldPassword     = errors.New("old password error")
	ErrUserDisabled    = errors.New("user is disabled")
)

// UserOperationInterface user account persistence
type UserOperationInterface interface {
	// GetUserByUid returns the user with primary key uid, user is valid when err is nil
	GetUserByUid(uid uint) (user *User, err error)
	// GetUserByUsernameOrEmail looks the identifier up in both columns, user is valid when err is nil
	GetUserByUsernameOrEmail(ident string) (user *User, err error)
	// GetUsers returns one page of users ordered by id together with the total count
	GetUsers(page, pageSize int) (users []*User, total int64, err error)
	// GetTotalUsers counts all users
	GetTotalUsers() (total int64, err error)
	// NewUser hashes the password and builds a user with the role preset, nothing is written
	NewUser(username, email, fullName, password string, role Role) (user *User, err error)
	// AddUser writes the user after [UserOperationInterface.IsUserIdentifierTaken] in the same transaction
	AddUser(user *User) (err error)
	// UpdateUserRole sets the role and resets the permission to the role preset
	UpdateUserRole(user *User, role Role) (err error)
	UpdateUserPermission(user *User, permission Permission) (err error)
	UpdateUserActive(user *User, active bool) (err error)
	UpdateUserLastLogin(user *User) (err error)
	UpdateUserInfo(user *User, info map[string]interface{}) (err error)
	// UpdateUserPassword verifies originalPassword unless skipVerify and returns the new hash, nothing is written
	UpdateUserPassword(user *User, originalPassword, newPassword string, skipVerify bool) (encodePassword []byte, err error)
	VerifyUserPassword(user *User, password string) (pass bool)
	// IsUserIdentifierTaken reports whether another user (id != excludeId) already uses username or email
	IsUserIdentifierTaken(tx *gorm.DB, excludeId uint, username, email string) (taken bool, err error)
}
