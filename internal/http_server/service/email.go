// Package service
package service

import (
	"errors"
	"github.com/half-nothing/simple-hrm/internal/interfaces/config"
	"github.com/half-nothing/simple-hrm/internal/interfaces/log"
	"github.com/half-nothing/simple-hrm/internal/interfaces/operation"
	"gopkg.in/gomail.v2"
	"html/template"
	"strings"
	"time"
)

type EmailService struct {
	logger           log.LoggerInterface
	config           *config.EmailConfig
	organizationName string
}

type EmailPermissionChangeData struct {
	Organization string
	Username     string
	Operator     string
	Role         string
	Contact      string
}

type EmailReminderDueData struct {
	Organization string
	Title        string
	Username     string
	RemindAt     string
	Priority     string
	Description  string
}

func NewEmailService(logger log.LoggerInterface, config *config.EmailConfig, organizationName string) *EmailService {
	return &EmailService{
		logger:           logger,
		config:           config,
		organizationName: organizationName,
	}
}

var (
	ErrRenderingTemplate      = errors.New("error rendering template")
	ErrTemplateNotInitialized = errors.New("error template not initialized")
)

func (emailService *EmailService) RenderTemplate(template *template.Template, data interface{}) (string, error) {
	if template == nil {
		return "", ErrTemplateNotInitialized
	}
	var sb strings.Builder
	if err := template.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (emailService *EmailService) send(to, subject string, tmpl *template.Template, data interface{}) error {
	message, err := emailService.RenderTemplate(tmpl, data)
	if err != nil {
		emailService.logger.WarnF("Error rendering %s email template: %v", subject, err)
		return ErrRenderingTemplate
	}

	m := gomail.NewMessage()
	m.SetHeader("From", emailService.config.From)
	m.SetHeader("To", strings.ToLower(to))
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", message)

	return emailService.config.EmailServer.DialAndSend(m)
}

func (emailService *EmailService) SendPermissionChangeEmail(user *operation.User, operator *operation.User) error {
	if emailService.config.EmailServer == nil {
		return nil
	}
	data := &EmailPermissionChangeData{
		Organization: emailService.organizationName,
		Username:     user.Username,
		Operator:     operator.Username,
		Role:         user.Role,
		Contact:      operator.Email,
	}
	emailService.logger.InfoF("Sending permission change email to %s(%d)", user.Email, user.ID)
	return emailService.send(user.Email, "Cambio de permisos", emailService.config.Template.PermissionChangeTemplate, data)
}

var priorityNames = map[operation.ReminderPriority]string{
	operation.PriorityLow:    "Baja",
	operation.PriorityMedium: "Media",
	operation.PriorityHigh:   "Alta",
}

func (emailService *EmailService) SendReminderEmail(user *operation.User, reminder *operation.Reminder) error {
	if emailService.config.EmailServer == nil {
		return nil
	}
	priority, ok := priorityNames[operation.ReminderPriority(reminder.Priority)]
	if !ok {
		priority = reminder.Priority
	}
	data := &EmailReminderDueData{
		Organization: emailService.organizationName,
		Title:        reminder.Title,
		Username:     user.Username,
		RemindAt:     reminder.RemindAt.Format(time.DateTime),
		Priority:     priority,
		Description:  reminder.Description,
	}
	emailService.logger.InfoF("Sending reminder(%d) email to %s(%d)", reminder.ID, user.Email, user.ID)
	return emailService.send(user.Email, "Recordatorio: "+reminder.Title, emailService.config.Template.ReminderDueTemplate, data)
}
