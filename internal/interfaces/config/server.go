// Package config
package config

import "github.com/half-nothing/simple-hrm/internal/interfaces/log"

type ServerConfig struct {
	General    *GeneralConfig    `json:"general"`
	HttpServer *HttpServerConfig `json:"http_server"`
}

func defaultServerConfig() *ServerConfig {
	return &ServerConfig{
		General:    defaultGeneralConfig(),
		HttpServer: defaultHttpServerConfig(),
	}
}

func (config *ServerConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if result := config.General.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.HttpServer.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}
