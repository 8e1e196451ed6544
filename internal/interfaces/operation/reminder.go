// Package operation
package operation

import (
	"errors"
	"time"
)

var ErrReminderNotFound = errors.New("reminder does not exist")

type ReminderOperationInterface interface {
	GetReminderById(id uint) (reminder *Reminder, err error)
	// GetPendingReminders returns up to limit incomplete reminders of the creator, earliest first
	GetPendingReminders(creatorId uint, limit int) (reminders []*Reminder, err error)
	// GetDueReminders returns incomplete, not yet notified reminders due before deadline, with their creator
	GetDueReminders(deadline time.Time, limit int) (reminders []*Reminder, err error)
	AddReminder(reminder *Reminder) (err error)
	UpdateReminder(reminder *Reminder, info map[string]interface{}) (err error)
	SetReminderCompleted(reminder *Reminder, completed bool) (err error)
	MarkRemindersNotified(ids []uint) (err error)
	DeleteReminder(reminder *Reminder) (err error)
}
