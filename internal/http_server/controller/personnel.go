// Package controller
package controller

import (
	"github.com/half-nothing/simple-hrm/internal/interfaces/log"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type PersonnelControllerInterface interface {
	GetPersonnelPage(ctx echo.Context) error
	GetRanks(ctx echo.Context) error
	GetPersonnel(ctx echo.Context) error
	AddPersonnel(ctx echo.Context) error
	EditPersonnel(ctx echo.Context) error
	DeletePersonnel(ctx echo.Context) error
}

type PersonnelController struct {
	logger  log.LoggerInterface
	service PersonnelServiceInterface
}

func NewPersonnelController(logger log.LoggerInterface, service PersonnelServiceInterface) *PersonnelController {
	return &PersonnelController{
		logger:  logger,
		service: service,
	}
}

func (controller *PersonnelController) GetPersonnelPage(ctx echo.Context) error {
	data := &RequestPersonnelList{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("PersonnelController.GetPersonnelPage bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	return controller.service.GetPersonnelPage(data).Response(ctx)
}

func (controller *PersonnelController) GetRanks(ctx echo.Context) error {
	data := &RequestGetRanks{}
	setJwtHeader(ctx, &data.JwtHeader)
	return controller.service.GetRanks(data).Response(ctx)
}

func (controller *PersonnelController) GetPersonnel(ctx echo.Context) error {
	data := &RequestGetPersonnel{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("PersonnelController.GetPersonnel bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	return controller.service.GetPersonnel(data).Response(ctx)
}

func (controller *PersonnelController) AddPersonnel(ctx echo.Context) error {
	data := &RequestAddPersonnel{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("PersonnelController.AddPersonnel bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	setContentHeader(ctx, &data.EchoContentHeader)
	return controller.service.AddPersonnel(data).Response(ctx)
}

func (controller *PersonnelController) EditPersonnel(ctx echo.Context) error {
	data := &RequestEditPersonnel{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("PersonnelController.EditPersonnel bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	setContentHeader(ctx, &data.EchoContentHeader)
	return controller.service.EditPersonnel(data).Response(ctx)
}

func (controller *PersonnelController) DeletePersonnel(ctx echo.Context) error {
	data := &RequestDeletePersonnel{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("PersonnelController.DeletePersonnel bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	setContentHeader(ctx, &data.EchoContentHeader)
	return controller.service.DeletePersonnel(data).Response(ctx)
}
