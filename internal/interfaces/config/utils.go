// Package config
package config

import (
	"embed"
	"errors"
	"fmt"
	"github.com/half-nothing/simple-hrm/internal/interfaces/global"
	"github.com/half-nothing/simple-hrm/internal/interfaces/log"
	"github.com/half-nothing/simple-hrm/internal/utils"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var (
	ConfVersion, _ = newVersion(global.ConfigVersion)
	AppVersion, _  = newVersion(global.AppVersion)
)

//go:embed template/*.template
var defaultTemplates embed.FS

func createFileWithContent(filePath string, content []byte) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, global.DefaultDirectoryPermission); err != nil {
		return err
	}

	return os.WriteFile(filePath, content, global.DefaultFilePermissions)
}

// cachedContent reads filePath, writing the bundled default first when the file does not exist yet
func cachedContent(logger log.LoggerInterface, filePath, defaultName string) ([]byte, error) {
	if content, err := os.ReadFile(filePath); err == nil {
		return content, nil
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("file read error: %w", err)
	}

	logger.InfoF("%s not found, writing bundled %s", filePath, defaultName)

	content, err := defaultTemplates.ReadFile(path.Join("template", defaultName))
	if err != nil {
		return nil, fmt.Errorf("bundled template read error: %w", err)
	}

	if err := createFileWithContent(filePath, content); err != nil {
		return nil, fmt.Errorf("file write error: %w", err)
	}

	return content, nil
}

// envOverride replaces value with the environment variable key when it is set
func envOverride(logger log.LoggerInterface, key string, value *string) {
	if env, ok := os.LookupEnv(key); ok && env != "" {
		logger.DebugF("Using %s from environment", key)
		*value = env
	}
}

func checkPort(port uint) *ValidResult {
	if port <= 0 {
		return ValidFail(errors.New("port must be greater than zero"))
	}
	if port > 65535 {
		return ValidFail(errors.New("port must be less than 65535"))
	}
	if port < 1024 {
		return ValidFail(fmt.Errorf("the %d port may have a special usage, use it with caution", port))
	}
	return ValidPass()
}

type checkVersionResult int

const (
	AllMatch checkVersionResult = iota
	MajorUnmatch
	MinorUnmatch
	PatchUnmatch
)

type Version struct {
	major   int
	minor   int
	patch   int
	version string
}

func newVersion(version string) (*Version, error) {
	versions := strings.Split(version, ".")
	if len(versions) < 3 {
		return nil, errors.New("invalid version String")
	}
	return &Version{
		major:   utils.StrToInt(versions[0], 0),
		minor:   utils.StrToInt(versions[1], 0),
		patch:   utils.StrToInt(versions[2], 0),
		version: version,
	}, nil
}

func (v *Version) checkVersion(version *Version) checkVersionResult {
	if v.major != version.major {
		return MajorUnmatch
	}
	if v.minor != version.minor {
		return MinorUnmatch
	}
	if v.patch != version.patch {
		return PatchUnmatch
	}
	return AllMatch
}

func (v *Version) String() string {
	return v.version
}
