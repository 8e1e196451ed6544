// Package controller
package controller

import (
	"github.com/half-nothing/simple-hrm/internal/interfaces/log"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type CatalogControllerInterface interface {
	GetGroups(ctx echo.Context) error
	AddGroup(ctx echo.Context) error
	DeleteGroup(ctx echo.Context) error
	GetFunctions(ctx echo.Context) error
	AddFunction(ctx echo.Context) error
	DeleteFunction(ctx echo.Context) error
}

type CatalogController struct {
	logger  log.LoggerInterface
	service CatalogServiceInterface
}

func NewCatalogController(logger log.LoggerInterface, service CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		logger:  logger,
		service: service,
	}
}

func (controller *CatalogController) GetGroups(ctx echo.Context) error {
	data := &RequestGetGroups{}
	setJwtHeader(ctx, &data.JwtHeader)
	return controller.service.GetGroups(data).Response(ctx)
}

func (controller *CatalogController) AddGroup(ctx echo.Context) error {
	data := &RequestAddCatalog{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("CatalogController.AddGroup bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	setContentHeader(ctx, &data.EchoContentHeader)
	return controller.service.AddGroup(data).Response(ctx)
}

func (controller *CatalogController) DeleteGroup(ctx echo.Context) error {
	data := &RequestDeleteCatalog{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("CatalogController.DeleteGroup bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	setContentHeader(ctx, &data.EchoContentHeader)
	return controller.service.DeleteGroup(data).Response(ctx)
}

func (controller *CatalogController) GetFunctions(ctx echo.Context) error {
	data := &RequestGetFunctions{}
	setJwtHeader(ctx, &data.JwtHeader)
	return controller.service.GetFunctions(data).Response(ctx)
}

func (controller *CatalogController) AddFunction(ctx echo.Context) error {
	data := &RequestAddCatalog{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("CatalogController.AddFunction bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	setContentHeader(ctx, &data.EchoContentHeader)
	return controller.service.AddFunction(data).Response(ctx)
}

func (controller *CatalogController) DeleteFunction(ctx echo.Context) error {
	data := &RequestDeleteCatalog{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("CatalogController.DeleteFunction bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	setContentHeader(ctx, &data.EchoContentHeader)
	return controller.service.DeleteFunction(data).Response(ctx)
}
