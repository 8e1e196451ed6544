// Package http_server
package http_server

import (
	impl "github.com/half-nothing/simple-hrm/internal/http_server/service"
	. "github.com/half-nothing/simple-hrm/internal/interfaces"
)

type Services struct {
	User       *impl.UserService
	Personnel  *impl.PersonnelService
	Catalog    *impl.CatalogService
	Mandatario *impl.MandatarioService
	Statistics *impl.StatisticsService
	Reminder   *impl.ReminderService
	Audit      *impl.AuditLogService
}

// NewServices wires every service to the database operations and creates the bootstrap admin if needed
func NewServices(applicationContent *ApplicationContent) (*Services, error) {
	config := applicationContent.ConfigManager().Config()
	logger := applicationContent.Logger()
	httpConfig := config.Server.HttpServer
	operations := applicationContent.Operations()

	impl.InitValidator(httpConfig.Limits)
	emailService := impl.NewEmailService(logger, httpConfig.Email, config.Server.General.OrganizationName)

	statisticsService := impl.NewStatisticsService(logger, httpConfig, operations.PersonnelOperation(),
		operations.MandatarioOperation(), operations.AssignmentOperation(), operations.CatalogOperation())

	services := &Services{
		User: impl.NewUserService(logger, emailService, httpConfig, config.Server.General,
			operations.UserOperation(), operations.AuditLogOperation()),
		Personnel: impl.NewPersonnelService(logger, httpConfig.Limits, statisticsService,
			operations.PersonnelOperation(), operations.CatalogOperation(), operations.AuditLogOperation()),
		Catalog: impl.NewCatalogService(logger, statisticsService, operations.CatalogOperation(), operations.AuditLogOperation()),
		Mandatario: impl.NewMandatarioService(logger, statisticsService, operations.MandatarioOperation(),
			operations.AssignmentOperation(), operations.AuditLogOperation()),
		Statistics: statisticsService,
		Reminder:   impl.NewReminderService(logger, config.Reminder, emailService, operations.ReminderOperation()),
		Audit:      impl.NewAuditService(httpConfig.Limits, operations.AuditLogOperation()),
	}

	if err := services.User.EnsureDefaultAdmin(); err != nil {
		return nil, err
	}
	return services, nil
}
