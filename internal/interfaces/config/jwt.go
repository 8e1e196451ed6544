// Package config
package config

import (
	"errors"
	"github.com/half-nothing/simple-hrm/internal/interfaces/global"
	"github.com/half-nothing/simple-hrm/internal/interfaces/log"
	"github.com/thanhpk/randstr"
	"time"
)

type JWTConfig struct {
	Secret          string        `json:"secret"`
	Issuer          string        `json:"issuer"`
	ExpiresTime     string        `json:"expires_time"`
	ExpiresDuration time.Duration `json:"-"`
	RefreshTime     string        `json:"refresh_time"`
	RefreshDuration time.Duration `json:"-"`
}

func defaultJWTConfig() *JWTConfig {
	return &JWTConfig{
		Secret:      randstr.String(64),
		Issuer:      "HrmHttpServer",
		ExpiresTime: "15m",
		RefreshTime: "24h",
	}
}

func (config *JWTConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if duration, err := time.ParseDuration(config.ExpiresTime); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.jwt.expires_time"), err)
	} else {
		config.ExpiresDuration = duration
	}

	if duration, err := time.ParseDuration(config.RefreshTime); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.jwt.refresh_time"), err)
	} else {
		config.RefreshDuration = duration
	}

	envOverride(logger, global.EnvJWTSecret, &config.Secret)

	if config.Secret == "" {
		config.Secret = randstr.String(64)
		logger.Warn("JWT secret is empty, a random one is generated and every token is invalidated on restart")
	}

	if config.Issuer == "" {
		config.Issuer = "HrmHttpServer"
	}

	return ValidPass()
}
