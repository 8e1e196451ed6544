// Package scheduler
package scheduler

import (
	"context"
	"github.com/half-nothing/simple-hrm/internal/interfaces/config"
	"github.com/half-nothing/simple-hrm/internal/interfaces/log"
	"github.com/robfig/cron/v3"
	"time"
)

type ReminderNotifier interface {
	NotifyDueReminders(now time.Time) (int, error)
}

type ReminderScheduler struct {
	logger   log.LoggerInterface
	config   *config.ReminderConfig
	notifier ReminderNotifier
	cron     *cron.Cron
	now      func() time.Time
}

func NewReminderScheduler(logger log.LoggerInterface, config *config.ReminderConfig, notifier ReminderNotifier) *ReminderScheduler {
	return &ReminderScheduler{
		logger:   logger,
		config:   config,
		notifier: notifier,
		cron:     cron.New(cron.WithChain(cron.Recover(cron.DiscardLogger), cron.SkipIfStillRunning(cron.DiscardLogger))),
		now:      time.Now,
	}
}

// Start registers the notification job and returns the callback that stops it
func (scheduler *ReminderScheduler) Start() (*ShutdownCallback, error) {
	if _, err := scheduler.cron.AddFunc(scheduler.config.Schedule, scheduler.run); err != nil {
		return nil, err
	}
	scheduler.cron.Start()
	scheduler.logger.InfoF("Reminder scheduler started with schedule %s, lead time %s", scheduler.config.Schedule, scheduler.config.LeadDuration)
	return NewShutdownCallback(scheduler.cron), nil
}

func (scheduler *ReminderScheduler) run() {
	sent, err := scheduler.notifier.NotifyDueReminders(scheduler.now())
	if err != nil {
		scheduler.logger.ErrorF("Fail to notify due reminders: %v", err)
		return
	}
	if sent > 0 {
		scheduler.logger.InfoF("Sent %d reminder notification(s)", sent)
	}
}

type ShutdownCallback struct {
	cron *cron.Cron
}

func NewShutdownCallback(cron *cron.Cron) *ShutdownCallback {
	return &ShutdownCallback{cron: cron}
}

// Invoke waits for a running job to finish or for ctx to expire
func (dc *ShutdownCallback) Invoke(ctx context.Context) error {
	stopCtx := dc.cron.Stop()
	select {
	case <-stopCtx.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
