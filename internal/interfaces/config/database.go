// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/simple-hrm/internal/interfaces/global"
	"github.com/half-nothing/simple-hrm/internal/interfaces/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"net/url"
	"slices"
	"time"
)

type DatabaseType string

const (
	MySQL      DatabaseType = "mysql"
	PostgreSQL DatabaseType = "postgres"
	SQLite     DatabaseType = "sqlite3"
)

var allowedDatabaseType = []DatabaseType{MySQL, PostgreSQL, SQLite}

type DatabaseConfig struct {
	Type                 string        `json:"type"`
	DBType               DatabaseType  `json:"-"`
	Database             string        `json:"database"`
	Host                 string        `json:"host"`
	Port                 int           `json:"port"`
	Username             string        `json:"username"`
	Password             string        `json:"password"`
	EnableSSL            bool          `json:"enable_ssl"`
	TimeZone             string        `json:"time_zone"`
	ConnectIdleTimeout   string        `json:"connect_idle_timeout"`
	ConnectIdleDuration  time.Duration `json:"-"`
	QueryTimeout         string        `json:"query_timeout"`
	QueryDuration        time.Duration `json:"-"`
	ServerMaxConnections int           `json:"server_max_connections"`
}

func defaultDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Type:                 string(SQLite),
		Database:             "hrm.db",
		Host:                 "",
		Port:                 0,
		Username:             "",
		Password:             "",
		EnableSSL:            false,
		TimeZone:             "America/Santo_Domingo",
		ConnectIdleTimeout:   "1h",
		QueryTimeout:         "5s",
		ServerMaxConnections: 32,
	}
}

func (config *DatabaseConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	config.DBType = DatabaseType(config.Type)
	if !slices.Contains(allowedDatabaseType, config.DBType) {
		return ValidFail(fmt.Errorf("database type %s is not allowed, support database is %v, please check the configuration file", config.DBType, allowedDatabaseType))
	}

	if config.Database == "" {
		return ValidFail(errors.New("invalid json field database.database, value can not be empty"))
	}

	if config.ServerMaxConnections <= 0 {
		return ValidFail(errors.New("invalid json field database.server_max_connections, value must larger than 0"))
	}

	if duration, err := time.ParseDuration(config.ConnectIdleTimeout); err != nil {
		return ValidFailWith(errors.New("invalid json field database.connect_idle_timeout"), err)
	} else {
		config.ConnectIdleDuration = duration
	}

	if duration, err := time.ParseDuration(config.QueryTimeout); err != nil {
		return ValidFailWith(errors.New("invalid json field database.query_timeout"), err)
	} else {
		config.QueryDuration = duration
	}

	if config.TimeZone == "" {
		config.TimeZone = "UTC"
	}

	envOverride(logger, global.EnvDatabasePassword, &config.Password)
	return ValidPass()
}

func (config *DatabaseConfig) GetConnection(logger log.LoggerInterface) gorm.Dialector {
	switch config.DBType {
	case MySQL:
		return mySQLConnection(logger, config)
	case PostgreSQL:
		return postgreSQLConnection(logger, config)
	case SQLite:
		return sqliteConnection(logger, config)
	default:
		return nil
	}
}

func mySQLConnection(logger log.LoggerInterface, db *DatabaseConfig) gorm.Dialector {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=%s&tls=%t",
		url.QueryEscape(db.Username),
		url.QueryEscape(db.Password),
		db.Host,
		db.Port,
		db.Database,
		url.QueryEscape(db.TimeZone),
		db.EnableSSL,
	)
	logger.DebugF("Mysql Connection DSN %s@tcp(%s:%d)/%s", db.Username, db.Host, db.Port, db.Database)
	return mysql.Open(dsn)
}

func postgreSQLConnection(logger log.LoggerInterface, db *DatabaseConfig) gorm.Dialector {
	sslMode := "disable"
	if db.EnableSSL {
		sslMode = "require"
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		db.Host,
		db.Username,
		db.Password,
		db.Database,
		db.Port,
		sslMode,
		db.TimeZone,
	)
	logger.DebugF("PostgreSQL Connection host=%s dbname=%s port=%d sslmode=%s", db.Host, db.Database, db.Port, sslMode)
	return postgres.Open(dsn)
}

func sqliteConnection(logger log.LoggerInterface, db *DatabaseConfig) gorm.Dialector {
	logger.DebugF("SQLite database file %s", db.Database)
	return sqlite.Open(db.Database)
}
