// Package config
package config

import (
	"errors"
	"github.com/half-nothing/simple-hrm/internal/interfaces/global"
	"github.com/half-nothing/simple-hrm/internal/interfaces/log"
	"gopkg.in/gomail.v2"
)

type EmailConfig struct {
	Enabled     bool                 `json:"enabled"`
	Host        string               `json:"host"`
	Port        int                  `json:"port"`
	EmailServer *gomail.Dialer       `json:"-"`
	Username    string               `json:"username"`
	Password    string               `json:"password"`
	From        string               `json:"from"`
	Template    *EmailTemplateConfig `json:"template"`
}

func defaultEmailConfig() *EmailConfig {
	return &EmailConfig{
		Enabled:  false,
		Host:     "smtp.example.com",
		Port:     465,
		Username: "notificaciones@example.com",
		Password: "",
		From:     "",
		Template: defaultEmailTemplateConfig(),
	}
}

// checkValid leaves EmailServer nil when email is disabled, every sender treats that as a no-op
func (config *EmailConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if !config.Enabled {
		logger.Info("Email notifications are disabled")
		return ValidPass()
	}

	envOverride(logger, global.EnvEmailPassword, &config.Password)

	if config.From == "" {
		config.From = config.Username
	}

	if result := config.Template.checkValid(logger); result.IsFail() {
		return result
	}

	config.EmailServer = gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	dial, err := config.EmailServer.Dial()
	if err != nil {
		return ValidFailWith(errors.New("connecting to smtp server fail"), err)
	}
	_ = dial.Close()

	return ValidPass()
}
