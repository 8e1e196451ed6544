package main

import (
	"flag"
	"fmt"
	"github.com/half-nothing/simple-hrm/internal/base"
	"github.com/half-nothing/simple-hrm/internal/database"
	"github.com/half-nothing/simple-hrm/internal/http_server"
	"github.com/half-nothing/simple-hrm/internal/interfaces"
	"github.com/half-nothing/simple-hrm/internal/interfaces/global"
	"github.com/half-nothing/simple-hrm/internal/scheduler"
)

func recoverFromError() {
	if r := recover(); r != nil {
		fmt.Printf("It looks like there are some serious errors, the details are as follows: %v", r)
	}
}

func main() {
	flag.Parse()

	defer recoverFromError()

	logger := base.NewLogger()
	logger.Init(*global.DebugMode)

	logger.InfoF("Application initializing, version %s", global.AppVersion)

	cleaner := base.NewCleaner(logger)
	cleaner.Init()
	defer cleaner.Clean()

	configManager := base.NewManager(logger)
	config := configManager.Config()

	shutdownCallback, databaseOperation, err := database.ConnectDatabase(logger, config, *global.DebugMode)
	if err != nil {
		logger.FatalF("Error occurred while initializing operation, details: %v", err)
		return
	}

	cleaner.Add(shutdownCallback)

	applicationContent := interfaces.NewApplicationContent(configManager, cleaner, logger, databaseOperation)

	services, err := http_server.NewServices(applicationContent)
	if err != nil {
		logger.FatalF("Error occurred while creating the default administrator, details: %v", err)
		return
	}

	if config.Reminder.Enabled && !*global.DisableScheduler {
		reminderScheduler := scheduler.NewReminderScheduler(logger, config.Reminder, services.Reminder)
		schedulerCallback, err := reminderScheduler.Start()
		if err != nil {
			logger.FatalF("Error occurred while starting the reminder scheduler, details: %v", err)
			return
		}
		cleaner.Add(schedulerCallback)
	}

	if !config.Server.HttpServer.Enabled {
		logger.Warn("Http server is disabled, only the reminder scheduler is running")
		select {}
	}

	http_server.StartHttpServer(applicationContent, services)
}
