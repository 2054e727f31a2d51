// Package config holds the shell's user configuration.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	ConfigurationName = "config.yaml"
	DirName           = "rush"
)

// Color modes.
const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

type Configuration struct {
	configFs afero.Fs

	PromptSymbol   string `json:"prompt_symbol" validate:"required"`
	HistoryFile    string `json:"history_file"`
	HistoryLimit   int    `json:"history_limit" validate:"gte=0"`
	Color          string `json:"color" validate:"oneof=always auto never"`
	TimeZone       string `json:"time_zone" validate:"required"`
	WarnExitStatus bool   `json:"warn_exit_status"`
	LogLevel       string `json:"log_level" validate:"oneof=debug info warn error"`
	LogFile        string `json:"log_file"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	if err := validate.Struct(c); err != nil {
		return err
	}

	if _, err := c.TimeLocation(); err != nil {
		return fmt.Errorf("time_zone: %w", err)
	}
	return nil
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		return afero.NewMemMapFs()
	}
	return c.configFs
}

// TimeLocation returns the location dates are displayed in.
func (c *Configuration) TimeLocation() (*time.Location, error) {
	switch c.TimeZone {
	case "", "UTC":
		return time.UTC, nil
	case "Local":
		return time.Local, nil
	default:
		return time.LoadLocation(c.TimeZone)
	}
}

// UseColor reports whether output should be colored given whether standard
// output is a terminal.
func (c *Configuration) UseColor(isTerminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}

// SlogLevel converts the configured log level.
func (c *Configuration) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// HistoryPath returns the absolute path of the history file or an empty string
// if history isn't saved.
func (c *Configuration) HistoryPath() string {
	return c.realPath(c.HistoryFile)
}

// OpenAppLog opens the application log in an append only state. It returns
// nil with no error if logging is disabled or the configuration directory
// hasn't been created yet.
func (c *Configuration) OpenAppLog() (afero.File, error) {
	if c.LogFile == "" {
		return nil, nil
	}
	if ok, err := afero.DirExists(c.fs(), string(filepath.Separator)); err == nil && !ok {
		return nil, nil
	}
	return c.fs().OpenFile(c.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

func (c *Configuration) realPath(name string) string {
	if name == "" {
		return ""
	}
	if filepath.IsAbs(name) {
		return name
	}
	if bp, ok := c.fs().(*afero.BasePathFs); ok {
		if p, err := bp.RealPath(name); err == nil {
			return p
		}
	}
	return name
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}

// Default returns the built-in configuration, it isn't backed by a directory
// so history and logs are disabled.
func Default() *Configuration {
	out := defaultConfig()
	out.HistoryFile = ""
	out.LogFile = ""
	return out
}

// DefaultDir returns the directory the configuration is kept in when none is
// given.
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, DirName)
}
