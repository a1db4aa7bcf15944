package app

import (
	"fmt"
	"os"
	"path"

	"github.com/codewind/cwsync/src/cwsync/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx"
)

type Context struct {
	Environment string `yaml:"environment"`
}

const (
	// EnvLocal indicates that the daemon is running locally.
	EnvLocal = "local"

	// EnvDevelopment indicates that the daemon is running in a development environment.
	EnvDevelopment = "development"

	// Environment variables
	_envCwsyncEnvironment = "CWSYNC_ENVIRONMENT"
)

func decorateEnvContext(env Context) Context {
	if os.Getenv(_envCwsyncEnvironment) == EnvDevelopment {
		env.Environment = EnvDevelopment
	} else {
		env.Environment = EnvLocal
	}
	return env
}

// DecorateConfigParams is the set of dependencies required to decorate the config.Provider.
type DecorateConfigParams struct {
	fx.In

	Env Context
	Cfg config.Provider
	FS  fs.CwsyncFS
}

// decorateConfigProvider includes any steps that modify the config.Provider before it is used, or use its data for any startup related activities.
func decorateConfigProvider(p DecorateConfigParams) (config.Provider, error) {
	if err := ensureInfoFileFolder(p.Cfg, p.FS); err != nil {
		return nil, fmt.Errorf("ensuring info file folder: %v", err)
	}

	return p.Cfg, nil
}

// Ensure that the discovery file's directory exists or create if necessary.
func ensureInfoFileFolder(cfg config.Provider, fs fs.CwsyncFS) error {
	var infoPath string
	if err := cfg.Get("serverInfoFilePath").Populate(&infoPath); err != nil {
		return fmt.Errorf("loading info file config: %v", err)
	}
	if infoPath == "" {
		return nil
	}

	return fs.MkdirAll(path.Dir(infoPath))
}
