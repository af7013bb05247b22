package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ConfigurationLoader wraps Viper to load a configuration file with environment overrides.
type ConfigurationLoader struct {
	name        string
	fileType    string
	envPrefix   string
	searchPaths []string
}

// NewConfigurationLoader creates a loader that searches searchPaths and honors envPrefix.
func NewConfigurationLoader(name, fileType, envPrefix string, searchPaths []string) *ConfigurationLoader {
	return &ConfigurationLoader{
		name:        name,
		fileType:    fileType,
		envPrefix:   envPrefix,
		searchPaths: append([]string(nil), searchPaths...),
	}
}

// Load fills target from defaults, an optional configuration file and the environment, in increasing priority.
// It returns the configuration file used, if any.
func (loader *ConfigurationLoader) Load(filePath string, defaults map[string]any, target any) (string, error) {
	v := viper.New()
	v.SetConfigName(loader.name)
	v.SetConfigType(loader.fileType)
	for _, searchPath := range loader.searchPaths {
		v.AddConfigPath(searchPath)
	}

	v.SetEnvPrefix(loader.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if filePath != "" {
		v.SetConfigFile(filePath)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if filePath != "" || !errors.As(err, &notFound) {
			return "", fmt.Errorf("failed to read configuration: %w", err)
		}
	}

	if err := v.Unmarshal(target); err != nil {
		return "", fmt.Errorf("failed to parse configuration: %w", err)
	}
	return v.ConfigFileUsed(), nil
}
