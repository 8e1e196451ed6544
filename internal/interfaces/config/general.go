// Package config
package config

import (
	"errors"
	"github.com/half-nothing/simple-hrm/internal/interfaces/log"
	"golang.org/x/crypto/bcrypt"
)

type GeneralConfig struct {
	OrganizationName string              `json:"organization_name"`
	BcryptCost       int                 `json:"bcrypt_cost"`
	DefaultAdmin     *DefaultAdminConfig `json:"default_admin"`
}

// DefaultAdminConfig is used once, when the user table is empty
type DefaultAdminConfig struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func defaultGeneralConfig() *GeneralConfig {
	return &GeneralConfig{
		OrganizationName: "Departamento de Seguridad",
		BcryptCost:       12,
		DefaultAdmin: &DefaultAdminConfig{
			Username: "admin",
			Email:    "admin@example.com",
			Password: "",
		},
	}
}

func (config *GeneralConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	if config.BcryptCost < bcrypt.MinCost || config.BcryptCost > bcrypt.MaxCost {
		return ValidFail(errors.New("bcrypt_cost out of range, must between 4 and 31"))
	}
	if config.DefaultAdmin == nil || config.DefaultAdmin.Username == "" || config.DefaultAdmin.Email == "" {
		return ValidFail(errors.New("invalid json field general.default_admin, username and email are required"))
	}
	return ValidPass()
}
