package database

import (
	"context"
	"errors"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	"gorm.io/gorm"
	"time"
)

type ReminderOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewReminderOperation(db *gorm.DB, queryTimeout time.Duration) *ReminderOperation {
	return &ReminderOperation{db: db, queryTimeout: queryTimeout}
}

func (reminderOperation *ReminderOperation) GetReminderById(id uint) (reminder *Reminder, err error) {
	reminder = &Reminder{}
	ctx, cancel := context.WithTimeout(context.Background(), reminderOperation.queryTimeout)
	defer cancel()
	err = reminderOperation.db.WithContext(ctx).Where("id = ?", id).First(reminder).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrReminderNotFound
	}
	return
}

func (reminderOperation *ReminderOperation) GetPendingReminders(creatorId uint, limit int) (reminders []*Reminder, err error) {
	reminders = make([]*Reminder, 0, limit)
	ctx, cancel := context.WithTimeout(context.Background(), reminderOperation.queryTimeout)
	defer cancel()
	err = reminderOperation.db.WithContext(ctx).
		Where("creator_id = ? AND completed = ?", creatorId, false).
		Order("remind_at").
		Limit(limit).
		Find(&reminders).Error
	return
}

func (reminderOperation *ReminderOperation) GetDueReminders(deadline time.Time, limit int) (reminders []*Reminder, err error) {
	reminders = make([]*Reminder, 0, limit)
	ctx, cancel := context.WithTimeout(context.Background(), reminderOperation.queryTimeout)
	defer cancel()
	err = reminderOperation.db.WithContext(ctx).
		Preload("Creator").
		Where("completed = ? AND notified = ? AND remind_at <= ?", false, false, deadline).
		Order("remind_at").
		Limit(limit).
		Find(&reminders).Error
	return
}

func (reminderOperation *ReminderOperation) AddReminder(reminder *Reminder) error {
	ctx, cancel := context.WithTimeout(context.Background(), reminderOperation.queryTimeout)
	defer cancel()
	return reminderOperation.db.WithContext(ctx).Omit("Creator").Create(reminder).Error
}

// UpdateReminder also clears the notified flag when the due time moves
func (reminderOperation *ReminderOperation) UpdateReminder(reminder *Reminder, info map[string]interface{}) error {
	if _, ok := info["remind_at"]; ok {
		info["notified"] = false
	}
	ctx, cancel := context.WithTimeout(context.Background(), reminderOperation.queryTimeout)
	defer cancel()
	return reminderOperation.db.WithContext(ctx).Model(reminder).Omit("Creator").Updates(info).Error
}

func (reminderOperation *ReminderOperation) SetReminderCompleted(reminder *Reminder, completed bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), reminderOperation.queryTimeout)
	defer cancel()
	return reminderOperation.db.WithContext(ctx).Model(reminder).Update("completed", completed).Error
}

func (reminderOperation *ReminderOperation) MarkRemindersNotified(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), reminderOperation.queryTimeout)
	defer cancel()
	return reminderOperation.db.WithContext(ctx).Model(&Reminder{}).Where("id IN ?", ids).Update("notified", true).Error
}

func (reminderOperation *ReminderOperation) DeleteReminder(reminder *Reminder) error {
	ctx, cancel := context.WithTimeout(context.Background(), reminderOperation.queryTimeout)
	defer cancel()
	result := reminderOperation.db.WithContext(ctx).Delete(&Reminder{}, reminder.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReminderNotFound
	}
	return nil
}
