// Package database
package database

import (
	"context"
	"errors"
	"fmt"
	"github.com/half-nothing/simple-hrm/internal/interfaces/config"
	"github.com/half-nothing/simple-hrm/internal/interfaces/global"
	"github.com/half-nothing/simple-hrm/internal/interfaces/log"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"time"
)

type ShutdownCallback struct {
	db *gorm.DB
}

func NewShutdownCallback(db *gorm.DB) *ShutdownCallback {
	return &ShutdownCallback{db: db}
}

func (dc *ShutdownCallback) Invoke(_ context.Context) error {
	if db, err := dc.db.DB(); err != nil {
		return err
	} else {
		return db.Close()
	}
}

// Migrate creates or updates the tables of every model
func Migrate(db *gorm.DB) error {
	return db.Migrator().AutoMigrate(
		&User{},
		&Group{},
		&Function{},
		&Personnel{},
		&Mandatario{},
		&RequiredFunction{},
		&Assignment{},
		&Reminder{},
		&AuditLog{},
	)
}

// NewOperations builds the gorm implementations of every operation interface on top of db
func NewOperations(db *gorm.DB, queryTimeout time.Duration, generalConfig *config.GeneralConfig) *DatabaseOperations {
	return NewDatabaseOperations(
		NewUserOperation(db, queryTimeout, generalConfig.BcryptCost),
		NewPersonnelOperation(db, queryTimeout),
		NewMandatarioOperation(db, queryTimeout),
		NewAssignmentOperation(db, queryTimeout),
		NewCatalogOperation(db, queryTimeout),
		NewReminderOperation(db, queryTimeout),
		NewAuditLogOperation(db, queryTimeout),
	)
}

func ConnectDatabase(logger log.LoggerInterface, config *config.Config, debug bool) (global.Callable, *DatabaseOperations, error) {
	dbConfig := config.Database
	connection := dbConfig.GetConnection(logger)
	if connection == nil {
		return nil, nil, fmt.Errorf("unsupported database type %s", dbConfig.DBType)
	}

	gormConfig := &gorm.Config{
		DefaultTransactionTimeout: dbConfig.QueryDuration,
		PrepareStmt:               true,
		NowFunc:                   func() time.Time { return time.Now().UTC() },
	}
	if debug {
		gormConfig.Logger = gormLogger.Default.LogMode(gormLogger.Info)
	} else {
		gormConfig.Logger = gormLogger.Default.LogMode(gormLogger.Silent)
	}

	db, err := gorm.Open(connection, gormConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("error occured while connecting to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		return nil, nil, fmt.Errorf("error occured while migrating database: %v", err)
	}

	dbPool, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("error occured while creating database pool: %v", err)
	}

	// at most 80% of the server connections, a fifth of those kept idle
	maxOpenConnections := int(float64(dbConfig.ServerMaxConnections) * 0.8)
	maxIdleConnections := maxOpenConnections / 5
	if maxOpenConnections < 1 {
		maxOpenConnections = 1
	}
	if maxIdleConnections < 1 {
		maxIdleConnections = 1
	}
	dbPool.SetMaxOpenConns(maxOpenConnections)
	dbPool.SetMaxIdleConns(maxIdleConnections)
	dbPool.SetConnMaxIdleTime(dbConfig.ConnectIdleDuration)

	ctx, cancel := context.WithTimeout(context.Background(), dbConfig.QueryDuration)
	defer cancel()
	if err := dbPool.PingContext(ctx); err != nil {
		return nil, nil, errors.Join(errors.New("error occured while pinging database"), err)
	}

	logger.InfoF("Database %s connected, max open connections %d", dbConfig.DBType, maxOpenConnections)
	return NewShutdownCallback(db), NewOperations(db, dbConfig.QueryDuration, config.Server.General), nil
}
