package config

import (
	"log/slog"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

func TestBuiltinConfig(t *testing.T) {
	rawConfig := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultConfigData, &rawConfig))

	knownFields := make(map[string]bool)
	rt := reflect.TypeOf(Configuration{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		jsonField := strings.Split(jsonTag, ",")[0]
		knownFields[jsonField] = true

		if _, ok := rawConfig[jsonField]; !ok {
			assert.False(t, true, "default config missing field: %q", jsonField)
		}
	}

	for k := range rawConfig {
		_, ok := knownFields[k]
		assert.True(t, ok, "default config contains invalid field: %q", k)
	}
}

func TestDefaultConfig(t *testing.T) {
	// Will panic() on load failure because it should never happen at runtime.
	cfg := defaultConfig()
	assert.NotNil(t, cfg)
	assert.Nil(t, cfg.Validate())
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Empty(t, cfg.HistoryPath())
	fd, err := cfg.OpenAppLog()
	assert.Nil(t, err)
	assert.Nil(t, fd)
}

func TestConfiguration_Validate(t *testing.T) {
	cases := map[string]struct {
		mutate  func(c *Configuration)
		wantErr string
	}{
		"defaults": {
			mutate: func(c *Configuration) {},
		},
		"bad color": {
			mutate:  func(c *Configuration) { c.Color = "sometimes" },
			wantErr: "color",
		},
		"negative history": {
			mutate:  func(c *Configuration) { c.HistoryLimit = -1 },
			wantErr: "history_limit",
		},
		"bad log level": {
			mutate:  func(c *Configuration) { c.LogLevel = "loud" },
			wantErr: "log_level",
		},
		"missing prompt": {
			mutate:  func(c *Configuration) { c.PromptSymbol = "" },
			wantErr: "prompt_symbol",
		},
		"bad time zone": {
			mutate:  func(c *Configuration) { c.TimeZone = "Mars/Olympus_Mons" },
			wantErr: "time_zone",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.Nil(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}

func TestConfiguration_TimeLocation(t *testing.T) {
	cfg := defaultConfig()

	cfg.TimeZone = "UTC"
	loc, err := cfg.TimeLocation()
	assert.Nil(t, err)
	assert.Equal(t, time.UTC, loc)

	cfg.TimeZone = "Local"
	loc, err = cfg.TimeLocation()
	assert.Nil(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestConfiguration_UseColor(t *testing.T) {
	cfg := defaultConfig()

	cfg.Color = ColorAuto
	assert.True(t, cfg.UseColor(true))
	assert.False(t, cfg.UseColor(false))

	cfg.Color = ColorAlways
	assert.True(t, cfg.UseColor(false))

	cfg.Color = ColorNever
	assert.False(t, cfg.UseColor(true))
}

func TestConfiguration_SlogLevel(t *testing.T) {
	cfg := defaultConfig()

	cfg.LogLevel = "debug"
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	cfg.LogLevel = "warn"
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())

	cfg.LogLevel = "bogus"
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}
