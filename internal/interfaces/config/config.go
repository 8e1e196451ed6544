// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/simple-hrm/internal/interfaces/log"
)

type Config struct {
	ConfigVersion string          `json:"config_version"`
	Server        *ServerConfig   `json:"server"`
	Database      *DatabaseConfig `json:"database"`
	Reminder      *ReminderConfig `json:"reminder"`
}

func DefaultConfig() *Config {
	return &Config{
		ConfigVersion: ConfVersion.String(),
		Server:        defaultServerConfig(),
		Database:      defaultDatabaseConfig(),
		Reminder:      defaultReminderConfig(),
	}
}

func (c *Config) CheckValid(logger log.LoggerInterface) *ValidResult {
	if version, err := newVersion(c.ConfigVersion); err != nil {
		return ValidFailWith(errors.New("version string parse fail"), err)
	} else if result := ConfVersion.checkVersion(version); result != AllMatch {
		return ValidFail(fmt.Errorf("config version mismatch, expected %s, got %s", ConfVersion.String(), version.String()))
	}
	if c.Server == nil || c.Database == nil || c.Reminder == nil {
		return ValidFail(errors.New("config file is missing one of the server, database or reminder sections"))
	}
	if result := c.Database.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.Server.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.Reminder.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}
