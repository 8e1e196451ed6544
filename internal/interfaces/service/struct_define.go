// Package service
package service

import (
	"errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/half-nothing/simple-hrm/internal/interfaces/config"
	"github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	"github.com/labstack/echo/v4"
	"log/slog"
	"time"
)

type HttpCode int

const (
	Unsatisfied         HttpCode = 0
	Ok                  HttpCode = 200
	BadRequest          HttpCode = 400
	Unauthorized        HttpCode = 401
	PermissionDenied    HttpCode = 403
	NotFound            HttpCode = 404
	Conflict            HttpCode = 409
	ServerInternalError HttpCode = 500
)

func (hc HttpCode) Code() int {
	return int(hc)
}

type ApiStatus struct {
	StatusName  string
	Description string
	HttpCode    HttpCode
}

type ApiResponse[T any] struct {
	HttpCode int    `json:"-"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Data     *T     `json:"data"`
}

type Claims struct {
	Uid        uint   `json:"uid"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	Permission int64  `json:"permission"`
	FlushToken bool   `json:"flushToken"`
	config     *config.JWTConfig
	jwt.RegisteredClaims
}

// JwtHeader is filled by the controllers from the verified token
type JwtHeader struct {
	Uid        uint
	Permission int64
}

// EchoContentHeader carries the caller address for audit logs
type EchoContentHeader struct {
	Ip        string
	UserAgent string
}

func NewClaims(config *config.JWTConfig, user *operation.User, flushToken bool) *Claims {
	expiredDuration := config.ExpiresDuration
	if flushToken {
		expiredDuration += config.RefreshDuration
	}
	now := time.Now()
	return &Claims{
		Uid:        user.ID,
		Username:   user.Username,
		Role:       user.Role,
		Permission: user.Permission,
		FlushToken: flushToken,
		config:     config,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    config.Issuer,
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiredDuration)),
		},
	}
}

func (claim *Claims) GenerateKey() string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claim)
	tokenString, _ := token.SignedString([]byte(claim.config.Secret))
	return tokenString
}

func (res *ApiResponse[T]) Response(ctx echo.Context) error {
	return ctx.JSON(res.HttpCode, res)
}

var (
	ErrIllegalParam          = ApiStatus{"PARAM_ERROR", "Parámetros incorrectos", BadRequest}
	ErrLackParam             = ApiStatus{"PARAM_LACK_ERROR", "Faltan parámetros", BadRequest}
	ErrNoPermission          = ApiStatus{"NO_PERMISSION", "No tiene permiso para realizar esta acción", PermissionDenied}
	ErrDatabaseFail          = ApiStatus{"DATABASE_ERROR", "Error interno del servidor", ServerInternalError}
	ErrUserNotFound          = ApiStatus{"USER_NOT_FOUND", "El usuario no existe", NotFound}
	ErrUserDisabled          = ApiStatus{"USER_DISABLED", "El usuario está desactivado", PermissionDenied}
	ErrRegisterFail          = ApiStatus{"REGISTER_FAIL", "No se pudo crear el usuario", ServerInternalError}
	ErrIdentifierTaken       = ApiStatus{"USER_EXISTS", "El usuario o el correo ya existen", Conflict}
	ErrPersonnelNotFound     = ApiStatus{"PERSONNEL_NOT_FOUND", "El personal no existe", NotFound}
	ErrIdCardTaken           = ApiStatus{"ID_CARD_EXISTS", "La cédula ya está registrada", Conflict}
	ErrMandatarioNotFound    = ApiStatus{"MANDATARIO_NOT_FOUND", "El mandatario no existe", NotFound}
	ErrAssignmentNotFound    = ApiStatus{"ASSIGNMENT_NOT_FOUND", "La asignación no existe", NotFound}
	ErrAlreadyAssigned       = ApiStatus{"ALREADY_ASSIGNED", "El personal ya está asignado a esta función", Conflict}
	ErrGroupNotFound         = ApiStatus{"GROUP_NOT_FOUND", "El grupo no existe", NotFound}
	ErrFunctionNotFound      = ApiStatus{"FUNCTION_NOT_FOUND", "La función no existe", NotFound}
	ErrNameTaken             = ApiStatus{"NAME_EXISTS", "El nombre ya existe", Conflict}
	ErrCatalogInUse          = ApiStatus{"CATALOG_IN_USE", "El elemento está en uso", Conflict}
	ErrReminderNotFound      = ApiStatus{"REMINDER_NOT_FOUND", "El recordatorio no existe", NotFound}
	ErrMissingOrMalformedJwt = ApiStatus{"MISSING_OR_MALFORMED_JWT", "Falta el token JWT o su formato es incorrecto", BadRequest}
	ErrInvalidOrExpiredJwt   = ApiStatus{"INVALID_OR_EXPIRED_JWT", "Token JWT inválido o expirado", Unauthorized}
	ErrUnknown               = ApiStatus{"UNKNOWN_JWT_ERROR", "Error desconocido al leer el token JWT", ServerInternalError}
)

func NewErrorResponse(ctx echo.Context, codeStatus *ApiStatus) error {
	return NewApiResponse[any](codeStatus, Unsatisfied, nil).Response(ctx)
}

func NewApiResponse[T any](codeStatus *ApiStatus, httpCode HttpCode, data *T) *ApiResponse[T] {
	if httpCode == Unsatisfied {
		httpCode = codeStatus.HttpCode
	}
	if httpCode == Unsatisfied {
		httpCode = Ok
	}
	return &ApiResponse[T]{
		HttpCode: httpCode.Code(),
		Code:     codeStatus.StatusName,
		Message:  codeStatus.Description,
		Data:     data,
	}
}

var errorStatus = []struct {
	err    error
	status *ApiStatus
}{
	{operation.ErrIdentifierCheck, &ErrRegisterFail},
	{operation.ErrIdentifierTaken, &ErrIdentifierTaken},
	{operation.ErrUserNotFound, &ErrUserNotFound},
	{operation.ErrPersonnelNotFound, &ErrPersonnelNotFound},
	{operation.ErrIdCardTaken, &ErrIdCardTaken},
	{operation.ErrMandatarioNotFound, &ErrMandatarioNotFound},
	{operation.ErrAssignmentNotFound, &ErrAssignmentNotFound},
	{operation.ErrAlreadyAssigned, &ErrAlreadyAssigned},
	{operation.ErrGroupNotFound, &ErrGroupNotFound},
	{operation.ErrFunctionNotFound, &ErrFunctionNotFound},
	{operation.ErrNameTaken, &ErrNameTaken},
	{operation.ErrCatalogInUse, &ErrCatalogInUse},
	{operation.ErrReminderNotFound, &ErrReminderNotFound},
}

// StatusOfError maps a persistence error onto its api status, nil for a nil error
func StatusOfError(err error) *ApiStatus {
	if err == nil {
		return nil
	}
	for _, item := range errorStatus {
		if errors.Is(err, item.err) {
			return item.status
		}
	}
	slog.Error("Error in DB function", "error", err)
	return &ErrDatabaseFail
}

// CallDBFuncAndCheckError calls a persistence function and turns its error into a response
func CallDBFuncAndCheckError[R any, T any](fc func() (*R, error)) (*R, *ApiResponse[T]) {
	result, err := fc()
	if status := StatusOfError(err); status != nil {
		return nil, NewApiResponse[T](status, Unsatisfied, nil)
	}
	return result, nil
}

// CheckPermission returns a no-permission response unless permission holds perm
func CheckPermission[T any](permission int64, perm operation.Permission) *ApiResponse[T] {
	if permission <= 0 {
		return NewApiResponse[T](&ErrNoPermission, Unsatisfied, nil)
	}
	userPermission := operation.Permission(permission)
	if !userPermission.HasPermission(perm) {
		return NewApiResponse[T](&ErrNoPermission, Unsatisfied, nil)
	}
	return nil
}

// GetUsersAndCheckPermission loads the operator and the target user, checking the operator's live permission
func GetUsersAndCheckPermission[T any](userOperation operation.UserOperationInterface, uid, targetUid uint, perm operation.Permission) (*operation.User, *operation.User, *ApiResponse[T]) {
	user, res := CallDBFuncAndCheckError[operation.User, T](func() (*operation.User, error) { return userOperation.GetUserByUid(uid) })
	if res != nil {
		return nil, nil, res
	}
	if res := CheckPermission[T](user.Permission, perm); res != nil {
		return nil, nil, res
	}
	targetUser, res := CallDBFuncAndCheckError[operation.User, T](func() (*operation.User, error) { return userOperation.GetUserByUid(targetUid) })
	if res != nil {
		return nil, nil, res
	}
	return user, targetUser, nil
}

type PageRequest struct {
	Page     int `query:"page_number"`
	PageSize int `query:"page_size"`
}

// Normalize fills an absent page number with the first page and an absent size with maxPageSize.
// It reports false for negative values or a size above maxPageSize.
func (p *PageRequest) Normalize(maxPageSize int) bool {
	if p.Page < 0 || p.PageSize < 0 || p.PageSize > maxPageSize {
		return false
	}
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = maxPageSize
	}
	return true
}

type PageResponse[T any] struct {
	Items    []T   `json:"items"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}
