package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3-lines-studio/bottletags/internal/core"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("names", DefaultNamesFile, "")
	flags.String("out", core.DefaultOutDir, "")
	flags.Int("workers", 1, "")
	flags.Duration("timeout", 0, "")
	return flags
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, core.DefaultRenderSettings(), cfg.RenderSettings())
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	content := `names: people.txt
out: build
workers: 3
timeout: 90s
offset:
  logo_size: 1.3
watch:
  debounce: 1s
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bottletags.yaml"), []byte(content), 0644))

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "people.txt", cfg.Names)
	assert.Equal(t, "build", cfg.Out)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
	assert.Equal(t, 1.3, cfg.Offset.LogoSize)
	assert.Equal(t, -3.5, cfg.Offset.LogoOffset)
	assert.Equal(t, time.Second, cfg.Watch.Debounce)
	assert.Equal(t, core.DefaultModel, cfg.Model)
}

func TestLoadExplicitConfigMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bottletags.yaml"), []byte("names: file.txt\nout: file-out\nworkers: 2\n"), 0644))
	t.Setenv("BOTTLETAGS_OUT", "env-out")
	t.Setenv("BOTTLETAGS_WORKERS", "5")
	t.Setenv("BOTTLETAGS_OFFSET_OFFSET_TEXT", "-2.5")

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--workers", "8"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, "file.txt", cfg.Names, "file beats default flag value")
	assert.Equal(t, "env-out", cfg.Out, "env beats file")
	assert.Equal(t, 8, cfg.Workers, "changed flag beats env")
	assert.Equal(t, -2.5, cfg.Offset.TextOffset)
}

func TestLoadExpandsHome(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BOTTLETAGS_NAMES", "~/names.txt")

	home, err := homedir.Dir()
	require.NoError(t, err)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "names.txt"), cfg.Names)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty names", mutate: func(c *Config) { c.Names = "" }},
		{name: "empty out", mutate: func(c *Config) { c.Out = "" }},
		{name: "empty model", mutate: func(c *Config) { c.Model = "" }},
		{name: "empty binary", mutate: func(c *Config) { c.Binary = "" }},
		{name: "zero workers", mutate: func(c *Config) { c.Workers = 0 }},
		{name: "negative timeout", mutate: func(c *Config) { c.Timeout = -time.Second }},
		{name: "zero logo size", mutate: func(c *Config) { c.Offset.LogoSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, Default().Validate())
}
