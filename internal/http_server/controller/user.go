// Package controller
package controller

import (
	"github.com/half-nothing/simple-hrm/internal/interfaces/log"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type UserControllerInterface interface {
	UserLogin(ctx echo.Context) error
	GetToken(ctx echo.Context) error
	GetCurrentUserProfile(ctx echo.Context) error
	EditCurrentProfile(ctx echo.Context) error
	GetUsers(ctx echo.Context) error
	AddUser(ctx echo.Context) error
	GetRoles(ctx echo.Context) error
	GetUserProfile(ctx echo.Context) error
	EditProfile(ctx echo.Context) error
	EditUserRole(ctx echo.Context) error
	EditUserPermission(ctx echo.Context) error
	EditUserActive(ctx echo.Context) error
}

type UserController struct {
	logger  log.LoggerInterface
	service UserServiceInterface
}

func NewUserHandler(logger log.LoggerInterface, service UserServiceInterface) *UserController {
	return &UserController{
		logger:  logger,
		service: service,
	}
}

func (controller *UserController) UserLogin(ctx echo.Context) error {
	data := &RequestUserLogin{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("UserController.UserLogin bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setContentHeader(ctx, &data.EchoContentHeader)
	return controller.service.UserLogin(data).Response(ctx)
}

func (controller *UserController) GetToken(ctx echo.Context) error {
	data := &RequestGetToken{Claims: claimsOf(ctx)}
	return controller.service.GetTokenWithFlushToken(data).Response(ctx)
}

func (controller *UserController) GetCurrentUserProfile(ctx echo.Context) error {
	data := &RequestUserCurrentProfile{}
	setJwtHeader(ctx, &data.JwtHeader)
	return controller.service.GetCurrentProfile(data).Response(ctx)
}

func (controller *UserController) EditCurrentProfile(ctx echo.Context) error {
	data := &RequestUserEditCurrentProfile{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("UserController.EditCurrentProfile bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	setContentHeader(ctx, &data.EchoContentHeader)
	return controller.service.EditCurrentProfile(data).Response(ctx)
}

func (controller *UserController) GetUsers(ctx echo.Context) error {
	data := &RequestUserList{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("UserController.GetUsers bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	return controller.service.GetUserList(data).Response(ctx)
}

func (controller *UserController) AddUser(ctx echo.Context) error {
	data := &RequestUserAdd{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("UserController.AddUser bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	setContentHeader(ctx, &data.EchoContentHeader)
	return controller.service.AddUser(data).Response(ctx)
}

func (controller *UserController) GetRoles(ctx echo.Context) error {
	data := &RequestGetRoles{}
	setJwtHeader(ctx, &data.JwtHeader)
	return controller.service.GetRoles(data).Response(ctx)
}

func (controller *UserController) GetUserProfile(ctx echo.Context) error {
	data := &RequestUserProfile{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("UserController.GetUserProfile bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	return controller.service.GetUserProfile(data).Response(ctx)
}

func (controller *UserController) EditProfile(ctx echo.Context) error {
	data := &RequestUserEditProfile{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("UserController.EditProfile bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	setContentHeader(ctx, &data.EchoContentHeader)
	return controller.service.EditUserProfile(data).Response(ctx)
}

func (controller *UserController) EditUserRole(ctx echo.Context) error {
	data := &RequestUserEditRole{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("UserController.EditUserRole bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	setContentHeader(ctx, &data.EchoContentHeader)
	return controller.service.EditUserRole(data).Response(ctx)
}

func (controller *UserController) EditUserPermission(ctx echo.Context) error {
	data := &RequestUserEditPermission{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("UserController.EditUserPermission bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	setContentHeader(ctx, &data.EchoContentHeader)
	return controller.service.EditUserPermission(data).Response(ctx)
}

func (controller *UserController) EditUserActive(ctx echo.Context) error {
	data := &RequestUserEditActive{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("UserController.EditUserActive bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	setContentHeader(ctx, &data.EchoContentHeader)
	return controller.service.EditUserActive(data).Response(ctx)
}
