// Package config
package config

import (
	"errors"
	"github.com/half-nothing/simple-hrm/internal/interfaces/log"
	"github.com/robfig/cron/v3"
	"time"
)

type ReminderConfig struct {
	Enabled          bool          `json:"enabled"`
	Schedule         string        `json:"schedule"`
	LeadTime         string        `json:"lead_time"`
	LeadDuration     time.Duration `json:"-"`
	MaxBatchSize     int           `json:"max_batch_size"`
	PendingListLimit int           `json:"pending_list_limit"`
}

func defaultReminderConfig() *ReminderConfig {
	return &ReminderConfig{
		Enabled:          true,
		Schedule:         "@every 1m",
		LeadTime:         "15m",
		MaxBatchSize:     50,
		PendingListLimit: 10,
	}
}

func (config *ReminderConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	if duration, err := time.ParseDuration(config.LeadTime); err != nil {
		return ValidFailWith(errors.New("invalid json field reminder.lead_time"), err)
	} else if duration < 0 {
		return ValidFail(errors.New("invalid json field reminder.lead_time, value can not be negative"))
	} else {
		config.LeadDuration = duration
	}

	if config.MaxBatchSize <= 0 {
		return ValidFail(errors.New("invalid json field reminder.max_batch_size, value must larger than 0"))
	}

	if config.PendingListLimit <= 0 {
		return ValidFail(errors.New("invalid json field reminder.pending_list_limit, value must larger than 0"))
	}

	if config.Enabled {
		if _, err := cron.ParseStandard(config.Schedule); err != nil {
			return ValidFailWith(errors.New("invalid json field reminder.schedule"), err)
		}
	}

	return ValidPass()
}
