package vos

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

const (
	EnvHome = "HOME"
	EnvPWD  = "PWD"
	EnvPath = "PATH"
)

// VEnv represents a virtual environment.
type VEnv interface {
	// UserHomeDir returns the current user's home directory.
	UserHomeDir() (string, error)

	// Unsetenv unsets a single environment variable.
	Unsetenv(key string) error

	// Setenv sets the value of the environment variable named by the key.
	// It returns an error, if any.
	Setenv(key, value string) error

	// LookupEnv retrieves the value of the environment variable named by the key.
	// If the variable is present in the environment the value (which may be
	// empty) is returned and the boolean is true. Otherwise the returned value
	// will be empty and the boolean will be false.
	LookupEnv(key string) (string, bool)

	// Getenv retrieves the value of the environment variable named by the key.
	// It returns the value, which will be empty if the variable is not present.
	Getenv(key string) string

	// ExpandEnv replaces ${var} or $var in the string according to the values of
	// the current environment variables.
	ExpandEnv(s string) string

	// Environ returns a sorted copy of strings representing the environment, in
	// the form "key=value".
	Environ() []string

	// Getwd returns the working directory.
	Getwd() string

	// Setwd sets the working directory without validating it.
	Setwd(dir string) error
}

// ErrNoHome is returned when the home directory can't be determined.
var ErrNoHome = errors.New("could not find home")

type EnvironFetcher interface {
	// Environ returns a copy of strings representing the environment, in the
	// form "key=value".
	Environ() []string
}

// CopyEnv copies all the environment variables from src to dst.
func CopyEnv(dst VEnv, src []string) error {
	for _, e := range src {
		key, value := splitEnv(e)
		if err := dst.Setenv(key, value); err != nil {
			return err
		}
	}

	return nil
}

func splitEnv(e string) (key, value string) {
	split := strings.SplitN(e, "=", 2)
	key = split[0]
	if len(split) > 1 {
		value = split[1]
	}
	return
}

// NewMapEnv creates a new environment backed by a map.
func NewMapEnv() *MapEnv {
	return &MapEnv{}
}

// NewMapEnvFrom creates a new environment with a copy of the environment
// variables in the original environment.
func NewMapEnvFrom(src EnvironFetcher) *MapEnv {
	return NewMapEnvFromEnvList(src.Environ())
}

func NewMapEnvFromEnvList(environ []string) *MapEnv {
	out := &MapEnv{}
	// Ignore error, it will never be set for MapEnv.
	_ = CopyEnv(out, environ)
	if pwd, ok := out.LookupEnv(EnvPWD); ok {
		out.cwd = pwd
	}
	return out
}

// MapEnv implemnts an in-memory VEnv, the working directory is tracked
// alongside the variables.
type MapEnv struct {
	rw  sync.RWMutex
	env map[string]string
	cwd string
}

var _ VEnv = (*MapEnv)(nil)

// UserHomeDir implements VEnv.UserHomeDir.
func (m *MapEnv) UserHomeDir() (string, error) {
	if home := m.Getenv(EnvHome); home != "" {
		return home, nil
	}
	return "", ErrNoHome
}

// Unsetenv implements VEnv.Unsetenv.
func (m *MapEnv) Unsetenv(key string) error {
	m.rw.Lock()
	defer m.rw.Unlock()
	if m.env != nil {
		delete(m.env, key)
	}
	return nil
}

// Setenv implements VEnv.Setenv.
func (m *MapEnv) Setenv(key, value string) error {
	m.rw.Lock()
	defer m.rw.Unlock()

	if m.env == nil {
		m.env = make(map[string]string)
	}
	m.env[key] = value
	return nil
}

// LookupEnv implements VEnv.LookupEnv.
func (m *MapEnv) LookupEnv(key string) (string, bool) {
	m.rw.RLock()
	defer m.rw.RUnlock()

	val, ok := m.env[key]
	return val, ok
}

// Getenv implements VEnv.Getenv.
func (m *MapEnv) Getenv(key string) string {
	val, _ := m.LookupEnv(key)
	return val
}

// ExpandEnv implements VEnv.ExpandEnv.
func (m *MapEnv) ExpandEnv(s string) string {
	return os.Expand(s, m.Getenv)
}

// Environ implements VEnv.Environ.
func (m *MapEnv) Environ() []string {
	m.rw.RLock()
	defer m.rw.RUnlock()

	var env []string
	for k, v := range m.env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(env)

	return env
}

// Getwd implements VEnv.Getwd.
func (m *MapEnv) Getwd() string {
	m.rw.RLock()
	defer m.rw.RUnlock()

	if m.cwd == "" {
		return "/"
	}
	return m.cwd
}

// Setwd implements VEnv.Setwd, it also updates $PWD.
func (m *MapEnv) Setwd(dir string) error {
	m.rw.Lock()
	m.cwd = dir
	m.rw.Unlock()

	return m.Setenv(EnvPWD, dir)
}

// OSEnv is a VEnv backed by the shell's own process environment. Changing
// directory changes the process working directory.
type OSEnv struct{}

var _ VEnv = OSEnv{}

// NewOSEnv returns the process environment.
func NewOSEnv() OSEnv {
	return OSEnv{}
}

// UserHomeDir implements VEnv.UserHomeDir.
func (OSEnv) UserHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", ErrNoHome
	}
	return home, nil
}

// Unsetenv implements VEnv.Unsetenv.
func (OSEnv) Unsetenv(key string) error {
	return os.Unsetenv(key)
}

// Setenv implements VEnv.Setenv.
func (OSEnv) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

// LookupEnv implements VEnv.LookupEnv.
func (OSEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Getenv implements VEnv.Getenv.
func (OSEnv) Getenv(key string) string {
	return os.Getenv(key)
}

// ExpandEnv implements VEnv.ExpandEnv.
func (OSEnv) ExpandEnv(s string) string {
	return os.ExpandEnv(s)
}

// Environ implements VEnv.Environ.
func (OSEnv) Environ() []string {
	env := os.Environ()
	sort.Strings(env)
	return env
}

// Getwd implements VEnv.Getwd.
func (OSEnv) Getwd() string {
	wd, err := os.Getwd()
	if err != nil {
		return "/"
	}
	return wd
}

// Setwd implements VEnv.Setwd.
func (OSEnv) Setwd(dir string) error {
	if err := os.Chdir(dir); err != nil {
		return err
	}
	return os.Setenv(EnvPWD, dir)
}
