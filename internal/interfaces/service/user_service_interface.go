// Package service
package service

import (
	"github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	"github.com/labstack/echo/v4"
)

type UserServiceInterface interface {
	// EnsureDefaultAdmin creates the configured administrator when no user exists yet
	EnsureDefaultAdmin() error
	UserLogin(req *RequestUserLogin) *ApiResponse[ResponseUserLogin]
	GetTokenWithFlushToken(req *RequestGetToken) *ApiResponse[ResponseGetToken]
	GetCurrentProfile(req *RequestUserCurrentProfile) *ApiResponse[ResponseUserCurrentProfile]
	EditCurrentProfile(req *RequestUserEditCurrentProfile) *ApiResponse[ResponseUserEditCurrentProfile]
	GetUserList(req *RequestUserList) *ApiResponse[ResponseUserList]
	AddUser(req *RequestUserAdd) *ApiResponse[ResponseUserAdd]
	GetRoles(req *RequestGetRoles) *ApiResponse[ResponseGetRoles]
	GetUserProfile(req *RequestUserProfile) *ApiResponse[ResponseUserProfile]
	EditUserProfile(req *RequestUserEditProfile) *ApiResponse[ResponseUserEditProfile]
	EditUserRole(req *RequestUserEditRole) *ApiResponse[ResponseUserEditRole]
	EditUserPermission(req *RequestUserEditPermission) *ApiResponse[ResponseUserEditPermission]
	EditUserActive(req *RequestUserEditActive) *ApiResponse[ResponseUserEditActive]
}

type RequestUserLogin struct {
	EchoContentHeader
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResponseUserLogin struct {
	User       *operation.User `json:"user"`
	Token      string          `json:"token"`
	FlushToken string          `json:"flush_token"`
}

type RequestGetToken struct {
	*Claims
}

type ResponseGetToken struct {
	User       *operation.User `json:"user"`
	Token      string          `json:"token"`
	FlushToken string          `json:"flush_token"`
}

type RequestUserCurrentProfile struct {
	JwtHeader
}

type ResponseUserCurrentProfile operation.User

type RequestUserEditCurrentProfile struct {
	JwtHeader
	EchoContentHeader
	Username       string `json:"username"`
	Email          string `json:"email"`
	FullName       string `json:"full_name"`
	OriginPassword string `json:"origin_password"`
	NewPassword    string `json:"new_password"`
}

type ResponseUserEditCurrentProfile operation.User

type RequestUserList struct {
	JwtHeader
	PageRequest
}

type ResponseUserList PageResponse[*operation.User]

type RequestUserAdd struct {
	JwtHeader
	EchoContentHeader
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"max=128"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin user viewer"`
}

type ResponseUserAdd operation.User

type RequestGetRoles struct {
	JwtHeader
}

type RoleInfo struct {
	Role       string   `json:"role"`
	Permission int64    `json:"permission"`
	Nodes      []string `json:"nodes"`
}

type ResponseGetRoles []*RoleInfo

type RequestUserProfile struct {
	JwtHeader
	TargetUid uint `param:"uid"`
}

type ResponseUserProfile operation.User

type RequestUserEditProfile struct {
	JwtHeader
	EchoContentHeader
	TargetUid   uint   `param:"uid"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	NewPassword string `json:"new_password"`
}

type ResponseUserEditProfile operation.User

type RequestUserEditRole struct {
	JwtHeader
	EchoContentHeader
	TargetUid uint   `param:"uid"`
	Role      string `json:"role"`
}

type ResponseUserEditRole operation.User

type RequestUserEditPermission struct {
	JwtHeader
	EchoContentHeader
	TargetUid   uint     `param:"uid"`
	Permissions echo.Map `json:"permissions"`
}

type ResponseUserEditPermission operation.User

type RequestUserEditActive struct {
	JwtHeader
	EchoContentHeader
	TargetUid uint `param:"uid"`
	Active    bool `json:"active"`
}

type ResponseUserEditActive operation.User
