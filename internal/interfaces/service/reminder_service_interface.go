// Package service
package service

import (
	"github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	"time"
)

type ReminderServiceInterface interface {
	GetPendingReminders(req *RequestReminderList) *ApiResponse[ResponseReminderList]
	AddReminder(req *RequestAddReminder) *ApiResponse[ResponseAddReminder]
	EditReminder(req *RequestEditReminder) *ApiResponse[ResponseEditReminder]
	CompleteReminder(req *RequestCompleteReminder) *ApiResponse[ResponseCompleteReminder]
	DeleteReminder(req *RequestDeleteReminder) *ApiResponse[ResponseDeleteReminder]
	// NotifyDueReminders emails the creators of reminders due before now plus the lead time, returning how many were sent
	NotifyDueReminders(now time.Time) (int, error)
}

type RequestReminderList struct {
	JwtHeader
	Limit int `query:"limit"`
}

type ResponseReminderList []*operation.Reminder

type ReminderFields struct {
	Title       string    `json:"title" validate:"required,max=128"`
	Description string    `json:"description" validate:"max=2000"`
	Priority    string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	RemindAt    time.Time `json:"reminder_date" validate:"required"`
}

type RequestAddReminder struct {
	JwtHeader
	ReminderFields
}

type ResponseAddReminder operation.Reminder

type RequestEditReminder struct {
	JwtHeader
	Id uint `param:"id"`
	ReminderFields
}

type ResponseEditReminder operation.Reminder

type RequestCompleteReminder struct {
	JwtHeader
	Id        uint `param:"id"`
	Completed bool `json:"completed"`
}

type ResponseCompleteReminder operation.Reminder

type RequestDeleteReminder struct {
	JwtHeader
	Id uint `param:"id"`
}

type ResponseDeleteReminder struct {
	Id uint `json:"id"`
}
