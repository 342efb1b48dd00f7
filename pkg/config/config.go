// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/natural-bodybuilder/macromix/pkg/defaults"
	"github.com/natural-bodybuilder/macromix/pkg/errors"
	"github.com/natural-bodybuilder/macromix/pkg/logging"
	"github.com/natural-bodybuilder/macromix/pkg/projection"
	"github.com/natural-bodybuilder/macromix/pkg/report"
)

// Setting keys. Environment variables use the MACROMIX_ prefix with dashes
// replaced by underscores, e.g. MACROMIX_LOG_LEVEL.
const (
	KeySteps       = "steps"
	KeyParallelism = "parallelism"
	KeyFormat      = "format"
	KeyUnit        = "unit"
	KeyLogLevel    = "log-level"
	KeyLogFormat   = "log-format"
)

// Settings are the user defaults applied before command line flags.
type Settings struct {
	Steps       int    `json:"steps" yaml:"steps"`
	Parallelism int    `json:"parallelism" yaml:"parallelism"`
	Format      string `json:"format" yaml:"format"`
	Unit        string `json:"unit" yaml:"unit"`
	LogLevel    string `json:"log-level" yaml:"log-level"` // empty falls back to LOG_LEVEL
	LogFormat   string `json:"log-format" yaml:"log-format"`

	// Source is the settings file that was read, empty when none was found.
	Source string `json:"-" yaml:"-"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		Steps:       defaults.OptimizationSteps,
		Parallelism: defaults.Parallelism,
		Format:      defaults.OutputFormat,
		Unit:        defaults.DisplayUnit,
		LogFormat:   defaults.LogFormat,
	}
}

// LoadOptions selects where settings are read from.
type LoadOptions struct {
	// ConfigFile is an explicit settings file. When empty, .macromix.yaml is
	// searched in the home directory and then the working directory.
	ConfigFile string

	// EnvFile is an optional dotenv file loaded into the environment first.
	// Variables already set in the environment are not overridden.
	EnvFile string
}

// Load resolves settings from defaults, the settings file and the
// environment, in increasing order of precedence.
func Load(opts LoadOptions) (*Settings, error) {
	if opts.EnvFile != "" {
		path, err := ExpandPath(opts.EnvFile)
		if err != nil {
			return nil, err
		}
		if err := godotenv.Load(path); err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeNotFound,
				"failed to load env file", err, map[string]any{"path": path})
		}
	}

	v := viper.New()
	d := Default()
	v.SetDefault(KeySteps, d.Steps)
	v.SetDefault(KeyParallelism, d.Parallelism)
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyUnit, d.Unit)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)

	v.SetEnvPrefix(defaults.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := readConfig(v, opts.ConfigFile); err != nil {
		return nil, err
	}

	s := &Settings{
		Steps:       v.GetInt(KeySteps),
		Parallelism: v.GetInt(KeyParallelism),
		Format:      v.GetString(KeyFormat),
		Unit:        v.GetString(KeyUnit),
		LogLevel:    v.GetString(KeyLogLevel),
		LogFormat:   v.GetString(KeyLogFormat),
		Source:      v.ConfigFileUsed(),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func readConfig(v *viper.Viper, file string) error {
	if file != "" {
		path, err := ExpandPath(file)
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err != nil {
			return errors.WrapWithContext(errors.ErrCodeNotFound,
				"settings file not found", err, map[string]any{"path": path})
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.WrapWithContext(errors.ErrCodeInvalidConfig,
				"failed to read settings file", err, map[string]any{"path": path})
		}
		return nil
	}

	// Discovery is optional; a missing home directory only narrows the search.
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")
	v.SetConfigName(defaults.SettingsName)
	v.SetConfigType(defaults.SettingsType)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if stderrors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInvalidConfig, "failed to read settings file", err)
	}
	return nil
}

// Validate checks the settings ranges and enumerations.
func (s *Settings) Validate() error {
	if s.Steps < defaults.MinOptimizationSteps || s.Steps > defaults.MaxOptimizationSteps {
		return errors.NewWithContext(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("steps must be between %d and %d, got %d",
				defaults.MinOptimizationSteps, defaults.MaxOptimizationSteps, s.Steps),
			map[string]any{"steps": s.Steps})
	}
	if s.Parallelism < 1 || s.Parallelism > defaults.MaxParallelism {
		return errors.NewWithContext(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("parallelism must be between 1 and %d, got %d", defaults.MaxParallelism, s.Parallelism),
			map[string]any{"parallelism": s.Parallelism})
	}
	if _, err := report.ParseFormat(s.Format); err != nil {
		return err
	}
	if _, err := projection.ParseUnit(s.Unit); err != nil {
		return err
	}
	switch strings.ToLower(s.LogFormat) {
	case logging.FormatJSON, logging.FormatText:
	default:
		return errors.NewWithContext(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("log format must be %q or %q, got %q", logging.FormatJSON, logging.FormatText, s.LogFormat),
			map[string]any{"log-format": s.LogFormat})
	}
	return nil
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeInvalidConfig,
			"failed to expand path", err, map[string]any{"path": path})
	}
	return expanded, nil
}
