// Package controller
package controller

import (
	"github.com/half-nothing/simple-hrm/internal/interfaces/log"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type MandatarioControllerInterface interface {
	GetMandatarioList(ctx echo.Context) error
	GetMandatario(ctx echo.Context) error
	AddMandatario(ctx echo.Context) error
	EditMandatario(ctx echo.Context) error
	DeleteMandatario(ctx echo.Context) error
	SetRequiredFunctions(ctx echo.Context) error
	AddAssignment(ctx echo.Context) error
	EditAssignmentStatus(ctx echo.Context) error
	DeleteAssignment(ctx echo.Context) error
}

type MandatarioController struct {
	logger  log.LoggerInterface
	service MandatarioServiceInterface
}

func NewMandatarioController(logger log.LoggerInterface, service MandatarioServiceInterface) *MandatarioController {
	return &MandatarioController{
		logger:  logger,
		service: service,
	}
}

func (controller *MandatarioController) GetMandatarioList(ctx echo.Context) error {
	data := &RequestMandatarioList{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("MandatarioController.GetMandatarioList bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	return controller.service.GetMandatarioList(data).Response(ctx)
}

func (controller *MandatarioController) GetMandatario(ctx echo.Context) error {
	data := &RequestGetMandatario{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("MandatarioController.GetMandatario bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	return controller.service.GetMandatario(data).Response(ctx)
}

func (controller *MandatarioController) AddMandatario(ctx echo.Context) error {
	data := &RequestAddMandatario{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("MandatarioController.AddMandatario bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	setContentHeader(ctx, &data.EchoContentHeader)
	return controller.service.AddMandatario(data).Response(ctx)
}

func (controller *MandatarioController) EditMandatario(ctx echo.Context) error {
	data := &RequestEditMandatario{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("MandatarioController.EditMandatario bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	setContentHeader(ctx, &data.EchoContentHeader)
	return controller.service.EditMandatario(data).Response(ctx)
}

func (controller *MandatarioController) DeleteMandatario(ctx echo.Context) error {
	data := &RequestDeleteMandatario{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("MandatarioController.DeleteMandatario bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	setContentHeader(ctx, &data.EchoContentHeader)
	return controller.service.DeleteMandatario(data).Response(ctx)
}

func (controller *MandatarioController) SetRequiredFunctions(ctx echo.Context) error {
	data := &RequestSetRequiredFunctions{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("MandatarioController.SetRequiredFunctions bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	setContentHeader(ctx, &data.EchoContentHeader)
	return controller.service.SetRequiredFunctions(data).Response(ctx)
}

func (controller *MandatarioController) AddAssignment(ctx echo.Context) error {
	data := &RequestAddAssignment{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("MandatarioController.AddAssignment bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	setContentHeader(ctx, &data.EchoContentHeader)
	return controller.service.AddAssignment(data).Response(ctx)
}

func (controller *MandatarioController) EditAssignmentStatus(ctx echo.Context) error {
	data := &RequestEditAssignmentStatus{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("MandatarioController.EditAssignmentStatus bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	setContentHeader(ctx, &data.EchoContentHeader)
	return controller.service.EditAssignmentStatus(data).Response(ctx)
}

func (controller *MandatarioController) DeleteAssignment(ctx echo.Context) error {
	data := &RequestDeleteAssignment{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("MandatarioController.DeleteAssignment bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	setContentHeader(ctx, &data.EchoContentHeader)
	return controller.service.DeleteAssignment(data).Response(ctx)
}
