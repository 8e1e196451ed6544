// Package config
package config

import (
	"fmt"
	"github.com/half-nothing/simple-hrm/internal/interfaces/log"
	"html/template"
)

type EmailTemplateConfig struct {
	PermissionChangeTemplateFile string             `json:"permission_change_template_file"`
	PermissionChangeTemplate     *template.Template `json:"-"`
	EnablePermissionChangeEmail  bool               `json:"enable_permission_change_email"`
	ReminderDueTemplateFile      string             `json:"reminder_due_template_file"`
	ReminderDueTemplate          *template.Template `json:"-"`
	EnableReminderDueEmail       bool               `json:"enable_reminder_due_email"`
}

func defaultEmailTemplateConfig() *EmailTemplateConfig {
	return &EmailTemplateConfig{
		PermissionChangeTemplateFile: "template/permission_change.template",
		EnablePermissionChangeEmail:  true,
		ReminderDueTemplateFile:      "template/reminder_due.template",
		EnableReminderDueEmail:       true,
	}
}

func loadTemplate(logger log.LoggerInterface, name, filePath string) (*template.Template, *ValidResult) {
	bytes, err := cachedContent(logger, filePath, name+".template")
	if err != nil {
		return nil, ValidFailWith(fmt.Errorf("fail to load %s_template_file", name), err)
	}
	parse, err := template.New(name).Parse(string(bytes))
	if err != nil {
		return nil, ValidFailWith(fmt.Errorf("fail to parse %s_template", name), err)
	}
	return parse, ValidPass()
}

func (config *EmailTemplateConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if config.EnablePermissionChangeEmail {
		parse, result := loadTemplate(logger, "permission_change", config.PermissionChangeTemplateFile)
		if result.IsFail() {
			return result
		}
		config.PermissionChangeTemplate = parse
	}

	if config.EnableReminderDueEmail {
		parse, result := loadTemplate(logger, "reminder_due", config.ReminderDueTemplateFile)
		if result.IsFail() {
			return result
		}
		config.ReminderDueTemplate = parse
	}

	return ValidPass()
}
