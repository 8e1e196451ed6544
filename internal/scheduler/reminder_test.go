package scheduler

import (
	"context"
	"errors"
	"github.com/half-nothing/simple-hrm/internal/base"
	"github.com/half-nothing/simple-hrm/internal/interfaces/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"testing"
	"time"
)

type fakeNotifier struct {
	calls []time.Time
	sent  int
	err   error
}

func (f *fakeNotifier) NotifyDueReminders(now time.Time) (int, error) {
	f.calls = append(f.calls, now)
	return f.sent, f.err
}

func newTestScheduler(schedule string, notifier ReminderNotifier) *ReminderScheduler {
	logger := base.NewLoggerWithWriter(io.Discard, false)
	logger.Init(false)
	return NewReminderScheduler(logger, &config.ReminderConfig{Schedule: schedule, LeadDuration: 15 * time.Minute}, notifier)
}

func TestReminderSchedulerRun(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	notifier := &fakeNotifier{sent: 2}
	scheduler := newTestScheduler("@every 1h", notifier)
	scheduler.now = func() time.Time { return fixed }

	scheduler.run()
	notifier.err = errors.New("database offline")
	scheduler.run()

	assert.Equal(t, []time.Time{fixed, fixed}, notifier.calls)
}

func TestReminderSchedulerStartAndStop(t *testing.T) {
	scheduler := newTestScheduler("@every 1h", &fakeNotifier{})
	callback, err := scheduler.Start()
	require.NoError(t, err)
	assert.Len(t, scheduler.cron.Entries(), 1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, callback.Invoke(ctx))
}

func TestReminderSchedulerInvalidSchedule(t *testing.T) {
	scheduler := newTestScheduler("every minute please", &fakeNotifier{})
	callback, err := scheduler.Start()
	assert.Error(t, err)
	assert.Nil(t, callback)
}
