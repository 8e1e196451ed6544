// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/simple-hrm/internal/interfaces/log"
	"time"
)

type HttpServerConfig struct {
	Enabled         bool             `json:"enabled"`
	ServerAddress   string           `json:"server_address"`
	Host            string           `json:"host"`
	Port            uint             `json:"port"`
	Address         string           `json:"-"`
	CacheTime       string           `json:"statistics_cache_time"`
	CacheDuration   time.Duration    `json:"-"`
	RequestTimeout  string           `json:"request_timeout"`
	TimeoutDuration time.Duration    `json:"-"`
	ProxyType       int              `json:"proxy_type"`
	BodyLimit       string           `json:"body_limit"`
	CorsOrigins     []string         `json:"cors_origins"`
	Limits          *HttpServerLimit `json:"limits"`
	Email           *EmailConfig     `json:"email"`
	JWT             *JWTConfig       `json:"jwt"`
	SSL             *SSLConfig       `json:"ssl"`
}

func defaultHttpServerConfig() *HttpServerConfig {
	return &HttpServerConfig{
		Enabled:        true,
		Host:           "0.0.0.0",
		Port:           6810,
		CacheTime:      "30s",
		RequestTimeout: "30s",
		ServerAddress:  "http://127.0.0.1:6810",
		ProxyType:      0,
		BodyLimit:      "2MB",
		CorsOrigins:    []string{"*"},
		Limits:         defaultHttpServerLimit(),
		Email:          defaultEmailConfig(),
		JWT:            defaultJWTConfig(),
		SSL:            defaultSSLConfig(),
	}
}

func (config *HttpServerConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if !config.Enabled {
		return ValidPass()
	}

	if result := checkPort(config.Port); result.IsFail() {
		return result
	}

	config.Address = fmt.Sprintf("%s:%d", config.Host, config.Port)

	if config.BodyLimit == "" {
		logger.WarnF("body_limit is empty, where the length of the request body is not restricted. This is a very dangerous behavior")
	}

	if duration, err := time.ParseDuration(config.CacheTime); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.statistics_cache_time"), err)
	} else {
		config.CacheDuration = duration
	}

	if duration, err := time.ParseDuration(config.RequestTimeout); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.request_timeout"), err)
	} else {
		config.TimeoutDuration = duration
	}

	if len(config.CorsOrigins) == 0 {
		config.CorsOrigins = []string{"*"}
	}

	if result := config.SSL.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.Limits.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.Email.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.JWT.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}
