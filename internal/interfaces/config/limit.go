// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/simple-hrm/internal/interfaces/log"
	"time"
)

type HttpServerLimit struct {
	RateLimit         int           `json:"rate_limit"`
	RateLimitWindow   string        `json:"rate_limit_window"`
	RateLimitDuration time.Duration `json:"-"`
	UsernameLengthMin int           `json:"username_length_min"`
	UsernameLengthMax int           `json:"username_length_max"`
	EmailLengthMin    int           `json:"email_length_min"`
	EmailLengthMax    int           `json:"email_length_max"`
	PasswordLengthMin int           `json:"password_length_min"`
	PasswordLengthMax int           `json:"password_length_max"`
	MaxPageSize       int           `json:"max_page_size"`
}

func defaultHttpServerLimit() *HttpServerLimit {
	return &HttpServerLimit{
		RateLimit:         60,
		RateLimitWindow:   "1m",
		UsernameLengthMin: 4,
		UsernameLengthMax: 32,
		EmailLengthMin:    4,
		EmailLengthMax:    64,
		PasswordLengthMin: 8,
		PasswordLengthMax: 64,
		MaxPageSize:       200,
	}
}

// checkRange validates a min/max pair of a length limit
func checkRange(field string, minValue, maxValue, upper int) *ValidResult {
	if minValue <= 0 {
		return ValidFail(fmt.Errorf("invalid json field http_server.limits.%s_min, value must larger than 0", field))
	}
	if minValue > upper {
		return ValidFail(fmt.Errorf("invalid json field http_server.limits.%s_min, value must less than %d", field, upper))
	}
	if maxValue <= 0 {
		return ValidFail(fmt.Errorf("invalid json field http_server.limits.%s_max, value must larger than 0", field))
	}
	if maxValue > upper {
		return ValidFail(fmt.Errorf("invalid json field http_server.limits.%s_max, value must less than %d", field, upper))
	}
	if minValue >= maxValue {
		return ValidFail(fmt.Errorf("invalid json field http_server.limits.%s_min, value must less than http_server.limits.%s_max", field, field))
	}
	return ValidPass()
}

func (config *HttpServerLimit) checkValid(_ log.LoggerInterface) *ValidResult {
	if duration, err := time.ParseDuration(config.RateLimitWindow); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.limits.rate_limit_window"), err)
	} else {
		config.RateLimitDuration = duration
	}
	if config.RateLimitDuration <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.rate_limit_window, value must larger than 0"))
	}
	if config.RateLimit <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.rate_limit, value must larger than 0"))
	}

	if result := checkRange("username_length", config.UsernameLengthMin, config.UsernameLengthMax, 64); result.IsFail() {
		return result
	}
	if result := checkRange("email_length", config.EmailLengthMin, config.EmailLengthMax, 128); result.IsFail() {
		return result
	}
	if result := checkRange("password_length", config.PasswordLengthMin, config.PasswordLengthMax, 128); result.IsFail() {
		return result
	}

	if config.MaxPageSize <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.max_page_size, value must larger than 0"))
	}

	return ValidPass()
}
