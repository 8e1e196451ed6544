// Package global
package global

import (
	"flag"
)

var (
	DebugMode        = flag.Bool("debug", false, "Enable debug mode")
	ConfigFilePath   = flag.String("config", "./config.json", "Path to configuration file")
	EnvFilePath      = flag.String("env", ".env", "Path to an optional .env file with secret overrides")
	DisableScheduler = flag.Bool("no_scheduler", false, "Do not start the reminder scheduler")
)

const (
	AppVersion    = "0.3.0"
	ConfigVersion = "0.3.0"

	DefaultFilePermissions     = 0644
	DefaultDirectoryPermission = 0755

	EnvDatabasePassword = "HRM_DATABASE_PASSWORD"
	EnvJWTSecret        = "HRM_JWT_SECRET"
	EnvEmailPassword    = "HRM_EMAIL_PASSWORD"

	LogDirectory = "logs"
)
