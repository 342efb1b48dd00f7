package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natural-bodybuilder/macromix/pkg/defaults"
	"github.com/natural-bodybuilder/macromix/pkg/errors"
)

// isolate points HOME at an empty directory and clears MACROMIX_ variables.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	for _, k := range []string{"STEPS", "PARALLELISM", "FORMAT", "UNIT", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv("MACROMIX_"+k, "")
		os.Unsetenv("MACROMIX_" + k)
	}
	return home
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	s, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, defaults.OptimizationSteps, s.Steps)
	assert.Equal(t, defaults.Parallelism, s.Parallelism)
	assert.Equal(t, defaults.OutputFormat, s.Format)
	assert.Equal(t, defaults.DisplayUnit, s.Unit)
	assert.Empty(t, s.LogLevel, "unset level defers to LOG_LEVEL")
	assert.Equal(t, defaults.LogFormat, s.LogFormat)
	assert.Empty(t, s.Source)
}

func TestLoad_DiscoveredInHome(t *testing.T) {
	home := isolate(t)
	path := writeFile(t, home, ".macromix.yaml", "steps: 500\nunit: oz\n")

	s, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 500, s.Steps)
	assert.Equal(t, "oz", s.Unit)
	assert.Equal(t, defaults.OutputFormat, s.Format)
	assert.Equal(t, path, s.Source)
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "settings.yaml", "steps: 3000\nparallelism: 4\nformat: json\nlog-level: debug\n")

	s, err := Load(LoadOptions{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, 3000, s.Steps)
	assert.Equal(t, 4, s.Parallelism)
	assert.Equal(t, "json", s.Format)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestLoad_TildeExpansion(t *testing.T) {
	home := isolate(t)
	writeFile(t, home, "mix.yaml", "steps: 42\n")

	s, err := Load(LoadOptions{ConfigFile: "~/mix.yaml"})
	require.NoError(t, err)
	assert.Equal(t, 42, s.Steps)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "settings.yaml", "steps: 3000\nlog-format: json\n")
	t.Setenv("MACROMIX_STEPS", "1500")
	t.Setenv("MACROMIX_LOG_FORMAT", "text")

	s, err := Load(LoadOptions{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, 1500, s.Steps)
	assert.Equal(t, "text", s.LogFormat)
}

func TestLoad_EnvFile(t *testing.T) {
	isolate(t)
	env := writeFile(t, t.TempDir(), ".env", "MACROMIX_PARALLELISM=8\nMACROMIX_UNIT=lb\n")

	s, err := Load(LoadOptions{EnvFile: env})
	require.NoError(t, err)
	assert.Equal(t, 8, s.Parallelism)
	assert.Equal(t, "lb", s.Unit)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts func(t *testing.T) LoadOptions
		code errors.ErrorCode
	}{
		{
			name: "missing settings file",
			opts: func(t *testing.T) LoadOptions {
				return LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")}
			},
			code: errors.ErrCodeNotFound,
		},
		{
			name: "missing env file",
			opts: func(t *testing.T) LoadOptions {
				return LoadOptions{EnvFile: filepath.Join(t.TempDir(), ".env")}
			},
			code: errors.ErrCodeNotFound,
		},
		{
			name: "malformed settings",
			opts: func(t *testing.T) LoadOptions {
				return LoadOptions{ConfigFile: writeFile(t, t.TempDir(), "bad.yaml", "steps: [1, 2\n")}
			},
			code: errors.ErrCodeInvalidConfig,
		},
		{
			name: "steps out of range",
			opts: func(t *testing.T) LoadOptions {
				return LoadOptions{ConfigFile: writeFile(t, t.TempDir(), "s.yaml", "steps: 0\n")}
			},
			code: errors.ErrCodeInvalidConfig,
		},
		{
			name: "unknown format",
			opts: func(t *testing.T) LoadOptions {
				return LoadOptions{ConfigFile: writeFile(t, t.TempDir(), "s.yaml", "format: xml\n")}
			},
			code: errors.ErrCodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := Load(tt.opts(t))
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.CodeOf(err))
		})
	}
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Settings) {}},
		{name: "too many steps", mutate: func(s *Settings) { s.Steps = defaults.MaxOptimizationSteps + 1 }, wantErr: true},
		{name: "zero parallelism", mutate: func(s *Settings) { s.Parallelism = 0 }, wantErr: true},
		{name: "bad unit", mutate: func(s *Settings) { s.Unit = "stone" }, wantErr: true},
		{name: "bad log format", mutate: func(s *Settings) { s.LogFormat = "xml" }, wantErr: true},
		{name: "text log format", mutate: func(s *Settings) { s.LogFormat = "TEXT" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)
			err := s.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
