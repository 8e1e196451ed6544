// Package controller
package controller

import (
	"github.com/half-nothing/simple-hrm/internal/interfaces/log"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type StatisticsControllerInterface interface {
	GetDashboard(ctx echo.Context) error
	GetAnalytics(ctx echo.Context) error
	GetAssignmentReport(ctx echo.Context) error
}

type StatisticsController struct {
	logger  log.LoggerInterface
	service StatisticsServiceInterface
}

func NewStatisticsController(logger log.LoggerInterface, service StatisticsServiceInterface) *StatisticsController {
	return &StatisticsController{
		logger:  logger,
		service: service,
	}
}

func (controller *StatisticsController) GetDashboard(ctx echo.Context) error {
	data := &RequestDashboard{}
	setJwtHeader(ctx, &data.JwtHeader)
	return controller.service.GetDashboard(data).Response(ctx)
}

func (controller *StatisticsController) GetAnalytics(ctx echo.Context) error {
	data := &RequestAnalytics{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("StatisticsController.GetAnalytics bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	return controller.service.GetAnalytics(data).Response(ctx)
}

func (controller *StatisticsController) GetAssignmentReport(ctx echo.Context) error {
	data := &RequestAssignmentReport{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("StatisticsController.GetAssignmentReport bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	setJwtHeader(ctx, &data.JwtHeader)
	return controller.service.GetAssignmentReport(data).Response(ctx)
}
