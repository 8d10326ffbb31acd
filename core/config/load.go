package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"sigs.k8s.io/yaml"
)

// Load reads the configuration in the directory path. Fields the file leaves
// out keep their default, a directory without a configuration file yields the
// defaults.
func Load(fsys afero.Fs, path string) (*Configuration, error) {
	// If given the path to a minishell.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	configPath := filepath.Join(path, ConfigurationName)
	configContents, err := afero.ReadFile(fsys, configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return Default(), nil
	case err != nil:
		return nil, err
	}

	out := Default()
	if err := yaml.UnmarshalStrict(configContents, out); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configPath, err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", configPath, err)
	}
	return out, nil
}

// Initialize writes the default configuration into dir and returns the path
// of the new file. An existing configuration is never overwritten.
func Initialize(fsys afero.Fs, dir string, logger *zap.Logger) (string, error) {
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	configPath := filepath.Join(dir, ConfigurationName)
	switch exists, err := afero.Exists(fsys, configPath); {
	case err != nil:
		return "", err
	case exists:
		return "", fmt.Errorf("%s: %w", configPath, fs.ErrExist)
	}

	if err := afero.WriteFile(fsys, configPath, defaultConfigData, 0644); err != nil {
		return "", err
	}

	logger.Info("wrote default configuration", zap.String("path", configPath))
	return configPath, nil
}
