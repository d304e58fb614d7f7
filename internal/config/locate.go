package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/treykane/ssh-picker/internal/apperr"
)

const opResolve = "resolve config path"

// Locator finds the ssh config file to read.
type Locator struct {
	// Getenv looks up an environment variable. Defaults to os.LookupEnv.
	Getenv func(key string) (string, bool)
	// GOOS selects the home directory variable. Defaults to runtime.GOOS.
	GOOS string
}

// DefaultLocator returns a Locator backed by the process environment.
func DefaultLocator() Locator {
	return Locator{Getenv: os.LookupEnv, GOOS: runtime.GOOS}
}

// ResolvePath resolves the config path with the process environment.
func ResolvePath(explicit string) (string, error) {
	return DefaultLocator().Resolve(explicit)
}

// HomeEnvVar names the variable holding the user's home directory on goos.
func HomeEnvVar(goos string) string {
	if goos == "windows" {
		return "USERPROFILE"
	}
	return "HOME"
}

// Resolve returns explicit verbatim when set, otherwise <home>/.ssh/config.
// The result is checked for existence and readability; the probe handle is
// closed before returning.
func (l Locator) Resolve(explicit string) (string, error) {
	path := explicit
	if path == "" {
		home, err := l.home()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, ".ssh", "config")
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", apperr.New(apperr.NotFound, opResolve, path, nil)
		}
		return "", apperr.New(apperr.Unreadable, opResolve, path, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return "", apperr.New(apperr.Unreadable, opResolve, path, err)
	}
	_ = f.Close()
	return path, nil
}

func (l Locator) home() (string, error) {
	getenv := l.Getenv
	if getenv == nil {
		getenv = os.LookupEnv
	}
	goos := l.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	key := HomeEnvVar(goos)
	home, ok := getenv(key)
	if !ok || home == "" {
		return "", apperr.New(apperr.MissingEnvironment, opResolve, key, nil)
	}
	return home, nil
}
