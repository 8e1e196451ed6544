// Package controller
package controller

import (
	"github.com/half-nothing/simple-hrm/internal/interfaces/log"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type ReminderControllerInterface interface {
	GetPendingReminders(ctx echo.Context) error
	AddReminder(ctx echo.Context) error
	EditReminder(ctx echo.Context) error
	CompleteReminder(ctx echo.Context) error
	DeleteReminder(ctx echo.Context) error
}

type ReminderController struct {
	logger  log.LoggerInterface
	service ReminderServiceInterface
}

func NewReminderController(logger log.LoggerInterface, service ReminderServiceInterface) *ReminderController {
	return &ReminderController{
		logger:  logger,
		service: service,
	}
}

func (controller *ReminderController) GetPendingReminders(ctx echo.Context) error {
	data := &RequestReminderList{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("ReminderController.GetPendingReminders bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	return controller.service.GetPendingReminders(data).Response(ctx)
}

func (controller *ReminderController) AddReminder(ctx echo.Context) error {
	data := &RequestAddReminder{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("ReminderController.AddReminder bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	return controller.service.AddReminder(data).Response(ctx)
}

func (controller *ReminderController) EditReminder(ctx echo.Context) error {
	data := &RequestEditReminder{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("ReminderController.EditReminder bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	return controller.service.EditReminder(data).Response(ctx)
}

func (controller *ReminderController) CompleteReminder(ctx echo.Context) error {
	data := &RequestCompleteReminder{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("ReminderController.CompleteReminder bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	return controller.service.CompleteReminder(data).Response(ctx)
}

func (controller *ReminderController) DeleteReminder(ctx echo.Context) error {
	data := &RequestDeleteReminder{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("ReminderController.DeleteReminder bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	return controller.service.DeleteReminder(data).Response(ctx)
}
