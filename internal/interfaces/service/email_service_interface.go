// Package service
package service

import (
	"github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	"html/template"
)

type EmailServiceInterface interface {
	RenderTemplate(template *template.Template, data interface{}) (string, error)
	SendPermissionChangeEmail(user *operation.User, operator *operation.User) error
	SendReminderEmail(user *operation.User, reminder *operation.Reminder) error
}
