package base

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/half-nothing/simple-hrm/internal/interfaces/config"
	"github.com/half-nothing/simple-hrm/internal/interfaces/global"
	"github.com/half-nothing/simple-hrm/internal/interfaces/log"
	"github.com/half-nothing/simple-hrm/internal/utils"
	"github.com/joho/godotenv"
	"os"
)

// loadEnvFile loads secret overrides; a missing file is not an error
func loadEnvFile(logger log.LoggerInterface, path string) {
	if path == "" {
		return
	}
	if err := godotenv.Load(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.WarnF("Fail to load env file %s: %v", path, err)
		}
		return
	}
	logger.InfoF("Loaded environment overrides from %s", path)
}

func readConfig(logger log.LoggerInterface, path string) (*config.Config, *config.ValidResult) {
	c := config.DefaultConfig()

	bytes, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := saveConfig(path, c); err != nil {
			return nil, config.ValidFailWith(errors.New("fail to save configuration file while creating configuration file"), err)
		}
		return nil, config.ValidFail(fmt.Errorf("the configuration file %s does not exist and has been created. Please try again after editing the configuration file", path))
	}
	if err != nil {
		return nil, config.ValidFailWith(fmt.Errorf("fail to read configuration file %s", path), err)
	}
	if err := json.Unmarshal(bytes, c); err != nil {
		return nil, config.ValidFailWith(errors.New("the configuration file does not contain valid JSON"), err)
	}
	if result := c.CheckValid(logger); result.IsFail() {
		return nil, result
	}
	return c, config.ValidPass()
}

func saveConfig(path string, c *config.Config) error {
	data, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, global.DefaultFilePermissions)
}

type Manager struct {
	config *utils.CachedValue[config.Config]
	logger log.LoggerInterface
	path   string
}

func NewManager(logger log.LoggerInterface) *Manager {
	loadEnvFile(logger, *global.EnvFilePath)
	return NewManagerWithPath(logger, *global.ConfigFilePath)
}

func NewManagerWithPath(logger log.LoggerInterface, path string) *Manager {
	manager := &Manager{
		logger: logger,
		path:   path,
	}
	manager.config = utils.NewCachedValue(0, manager.getConfig)
	return manager
}

// Load reads and validates the configuration without terminating the process
func (manager *Manager) Load() (*config.Config, *config.ValidResult) {
	return readConfig(manager.logger, manager.path)
}

func (manager *Manager) getConfig() *config.Config {
	c, result := manager.Load()
	if result.IsFail() {
		if result.OriginErr() != nil {
			manager.logger.FatalF("%v: %v", result.Error(), result.OriginErr())
		} else {
			manager.logger.Fatal(result.Error().Error())
		}
		panic(result.Error())
	}
	return c
}

func (manager *Manager) Config() *config.Config {
	return manager.config.GetValue()
}

func (manager *Manager) SaveConfig() error {
	return saveConfig(manager.path, manager.Config())
}
