// Package core provides configuration and logging for the cwsync daemon.
package core

import (
	"fmt"
	"os"
	"path/filepath"

	uber_config "go.uber.org/config"
	"go.uber.org/fx"
)

// ConfigModule provides the configuration provider.
var ConfigModule = fx.Options(
	fx.Provide(NewConfig),
)

// NewConfig loads the YAML configuration. meta.yaml lists the files to load;
// files that do not exist are skipped so deployments can layer overrides.
func NewConfig() (uber_config.Provider, error) {
	configDir := getConfigDir()

	metaProvider, err := uber_config.NewYAML(
		uber_config.File(filepath.Join(configDir, "meta.yaml")),
		uber_config.Expand(os.LookupEnv),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load meta configuration: %w", err)
	}

	var configFiles []string
	if err := metaProvider.Get("files").Populate(&configFiles); err != nil {
		return nil, fmt.Errorf("failed to read files list from meta.yaml: %w", err)
	}

	var options []uber_config.YAMLOption
	for _, file := range configFiles {
		fullPath := filepath.Join(configDir, file)
		if _, err := os.Stat(fullPath); err == nil {
			options = append(options, uber_config.File(fullPath))
		}
	}
	if len(options) == 0 {
		return nil, fmt.Errorf("no configuration files found in %s", configDir)
	}
	options = append(options, uber_config.Expand(os.LookupEnv))

	provider, err := uber_config.NewYAML(options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return provider, nil
}

func getConfigDir() string {
	if configDir := os.Getenv("CWSYNC_CONFIG_DIR"); configDir != "" {
		return configDir
	}
	// Assumes the binary is run from the workspace root.
	return "src/cwsync/config"
}
