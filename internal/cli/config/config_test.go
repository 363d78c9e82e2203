package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "numex.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, DefaultTemplatesDir, filepath.Base(cfg.TemplatesDir))
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfigFromFile(t *testing.T) {
	ResetConfig()
	tmpDir := t.TempDir()
	cfgPath := writeConfigFile(t, tmpDir, "output: json\ntemplates_dir: tpl\n")

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.OutputFormat)
	// Relative template dirs resolve against the config file's directory.
	assert.Equal(t, filepath.Join(tmpDir, "tpl"), cfg.TemplatesDir)
	assert.Equal(t, cfgPath, GetConfigFileUsed())
	assert.Equal(t, cfg, GetCurrentConfig())
}

func TestLoadConfigBadYAML(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfigFile(t, t.TempDir(), "output: [unclosed\n")

	_, err := LoadConfig(cfgPath, nil)
	assert.Error(t, err)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfigFile(t, t.TempDir(), "output: json\n")

	require.NoError(t, os.Setenv("NUMEX_OUTPUT", "csv"))
	defer func() { _ = os.Unsetenv("NUMEX_OUTPUT") }()

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "csv", cfg.OutputFormat, "env var should override config file")
}

func TestLoadConfigFlagOverridesEnv(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfigFile(t, t.TempDir(), "output: json\n")

	require.NoError(t, os.Setenv("NUMEX_OUTPUT", "csv"))
	defer func() { _ = os.Unsetenv("NUMEX_OUTPUT") }()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "output format")
	require.NoError(t, flags.Set("output", "text"))

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.OutputFormat, "flag value should override env var and config file")
}

func TestLoadConfigFlagNotSetUsesEnv(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfigFile(t, t.TempDir(), "output: json\n")

	require.NoError(t, os.Setenv("NUMEX_OUTPUT", "csv"))
	defer func() { _ = os.Unsetenv("NUMEX_OUTPUT") }()

	// Flag defined but never set: Changed is false, so it must not win.
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "output format")

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)

	assert.Equal(t, "csv", cfg.OutputFormat)
}

func TestLoadConfigKebabFlagKeys(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("templates-dir", "", "templates directory")
	require.NoError(t, flags.Set("templates-dir", "custom"))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, "custom", filepath.Base(cfg.TemplatesDir))
}

func TestFindConfigFileUpwardSearch(t *testing.T) {
	ResetConfig()
	tmpDir := t.TempDir()
	writeConfigFile(t, tmpDir, "output: markdown\n")

	nested := filepath.Join(tmpDir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	t.Chdir(nested)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "markdown", cfg.OutputFormat)
	assert.Equal(t, "numex.yaml", filepath.Base(GetConfigFileUsed()))
}

func TestGetLogger(t *testing.T) {
	// Fallback is a discard logger, never nil.
	logger := GetLogger(context.Background())
	require.NotNil(t, logger)

	ctx := context.WithValue(context.Background(), LoggerKey(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}
