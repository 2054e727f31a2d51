package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory. Fields missing from the
// file, or the whole file if it doesn't exist, take their default values.
func Load(path string) (*Configuration, error) {
	return LoadFs(afero.NewOsFs(), path)
}

// LoadFs is like Load but reads from the given filesystem.
func LoadFs(base afero.Fs, path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	out := defaultConfig()
	out.configFs = afero.NewBasePathFs(base, path)

	configContents, err := afero.ReadFile(out.configFs, ConfigurationName)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Use defaults.
	case err != nil:
		return nil, err
	default:
		if err := yaml.UnmarshalStrict(configContents, out); err != nil {
			return nil, err
		}
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// Initialize creates the configuration directory and writes the default
// configuration into it. An existing configuration is left untouched.
func Initialize(path string, logger *slog.Logger) error {
	return InitializeFs(afero.NewOsFs(), path, logger)
}

// InitializeFs is like Initialize but writes to the given filesystem.
func InitializeFs(base afero.Fs, path string, logger *slog.Logger) error {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	logger.Info("initializing configuration", "dir", path)
	if err := base.MkdirAll(path, 0700); err != nil {
		return err
	}

	configFs := afero.NewBasePathFs(base, path)
	exists, err := afero.Exists(configFs, ConfigurationName)
	if err != nil {
		return err
	}
	if exists {
		logger.Info("configuration already exists, skipping", "file", ConfigurationName)
		return nil
	}

	logger.Info("writing default configuration", "file", ConfigurationName)
	return afero.WriteFile(configFs, ConfigurationName, defaultConfigData, 0600)
}
