// Package config holds the user preferences. Defaults are embedded; a
// preferences.yml in the user's config directory overrides them.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/reaccess/reaccess"
	"github.com/reaccess/reaccess/locale"
	"github.com/reaccess/reaccess/session"
	"github.com/reaccess/reaccess/surface"
	"gopkg.in/yaml.v2"
)

type Preferences struct {
	Language    string
	BypassDelay time.Duration
	CloseDelay  time.Duration
	MaxBands    int
	ShowUnnamed bool
	Surface     surface.Mapping
	YmlError    error
}

const AppName = "reaccess"

//go:embed preferences.yml
var defaultPreferencesYaml []byte

func loadDefaultPreferences() Preferences {
	var preferences Preferences
	err := yaml.UnmarshalStrict(defaultPreferencesYaml, &preferences)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal preferences: %w", err))
	}
	return preferences
}

// Default returns the embedded preferences.
func Default() Preferences { return loadDefaultPreferences() }

// ReadCustomConfigYml modifies the target argument, i.e. needs a pointer
func ReadCustomConfigYml(filename string, target interface{}) (exists bool, err error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return false, err
	}
	path := filepath.Join(configDir, AppName, filename)
	bytes, err2 := os.ReadFile(path)
	if err2 != nil {
		return false, err2
	}
	err = yaml.UnmarshalStrict(bytes, target)
	return true, err
}

// MakePreferences returns the defaults overridden by the user's file. A
// broken user file is reported in YmlError and the defaults are kept for
// the fields it could not set.
func MakePreferences() Preferences {
	preferences := loadDefaultPreferences()
	exists, err := ReadCustomConfigYml("preferences.yml", &preferences)
	if exists {
		preferences.YmlError = err
	}
	preferences.YmlError = firstErr(preferences.YmlError, preferences.Validate())
	return preferences
}

// Parse overrides the defaults with data.
func Parse(data []byte) (Preferences, error) {
	preferences := loadDefaultPreferences()
	if err := yaml.UnmarshalStrict(data, &preferences); err != nil {
		return preferences, fmt.Errorf("preferences: %w", err)
	}
	return preferences, preferences.Validate()
}

func (p Preferences) Validate() error {
	if p.BypassDelay < 0 || p.CloseDelay < 0 {
		return fmt.Errorf("preferences: negative delay")
	}
	if p.MaxBands < 0 {
		return fmt.Errorf("preferences: negative maxbands %d", p.MaxBands)
	}
	return p.Surface.Validate()
}

func (p Preferences) Locale() *locale.Locale {
	if p.Language == "" {
		return locale.FromEnv()
	}
	return locale.New(p.Language)
}

// Env binds host to the preferred language and band limit.
func (p Preferences) Env(host reaccess.Host) reaccess.Env {
	return reaccess.Env{Host: host, Tr: p.Locale(), MaxNamedConfigBands: p.MaxBands}
}

func (p Preferences) SessionOptions() session.Options {
	return session.Options{ShowUnnamed: p.ShowUnnamed}
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
