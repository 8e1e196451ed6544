// Package config
package config

import "github.com/half-nothing/simple-hrm/internal/interfaces/log"

type SSLConfig struct {
	Enable          bool   `json:"enable"`
	EnableHSTS      bool   `json:"enable_hsts"`
	ForceSSL        bool   `json:"force_ssl"`
	HstsExpiredTime int    `json:"hsts_expired_time"`
	IncludeDomain   bool   `json:"include_domain"`
	CertFile        string `json:"cert_file"`
	KeyFile         string `json:"key_file"`
}

func defaultSSLConfig() *SSLConfig {
	return &SSLConfig{
		Enable:          false,
		EnableHSTS:      false,
		ForceSSL:        false,
		HstsExpiredTime: 5184000,
		IncludeDomain:   false,
	}
}

// checkValid downgrades to plain http instead of failing, HSTS and redirects need a certificate
func (config *SSLConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if config.Enable && (config.CertFile == "" || config.KeyFile == "") {
		logger.WarnF("HTTPS server requires both cert and key files. Cert: %s, Key: %s. Falling back to HTTP", config.CertFile, config.KeyFile)
		config.Enable = false
	}
	if config.Enable {
		return ValidPass()
	}
	if config.EnableHSTS || config.ForceSSL {
		logger.Warn("HSTS and force_ssl are ignored when ssl is not enabled")
	}
	config.EnableHSTS = false
	config.ForceSSL = false
	config.HstsExpiredTime = 0
	config.IncludeDomain = false
	return ValidPass()
}
