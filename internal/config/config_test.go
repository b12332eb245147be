package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/countrylist/internal/logging"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, DefaultEndpoint, cfg.Source.Endpoint)
	assert.Equal(t, DefaultTimeout, cfg.Source.Timeout)
	assert.Equal(t, 10, cfg.View.PageSize)
	assert.Equal(t, 4, cfg.View.MaxButtons)
	assert.True(t, cfg.View.ResetPageOnChange)
	assert.Equal(t, "info", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvHome, dir)

	content := `source:
  endpoint: http://localhost:8080/countries
  timeout: 3s
view:
  page_size: 25
  max_buttons: 6
  reset_page_on_change: false
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/countries", cfg.Source.Endpoint)
	assert.Equal(t, 3*time.Second, cfg.Source.Timeout)
	assert.Equal(t, 25, cfg.View.PageSize)
	assert.Equal(t, 6, cfg.View.MaxButtons)
	assert.False(t, cfg.View.ResetPageOnChange)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format, "absent keys keep defaults")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("view: [unclosed"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvEndpoint:  "https://mirror.example/all",
		EnvTimeout:   "2s",
		EnvLogLevel:  "warn",
		EnvLogFormat: "json",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := New()
	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, "https://mirror.example/all", cfg.Source.Endpoint)
	assert.Equal(t, 2*time.Second, cfg.Source.Timeout)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	env[EnvTimeout] = "soon"
	require.Error(t, New().ApplyEnv(lookup))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "relative endpoint", mutate: func(c *Config) { c.Source.Endpoint = "/all" }, wantErr: ErrInvalidEndpoint},
		{name: "ftp endpoint", mutate: func(c *Config) { c.Source.Endpoint = "ftp://host/all" }, wantErr: ErrInvalidEndpoint},
		{
			name: "file source skips endpoint check",
			mutate: func(c *Config) {
				c.Source.Endpoint = ""
				c.Source.File = "countries.json"
			},
		},
		{name: "zero timeout", mutate: func(c *Config) { c.Source.Timeout = 0 }, wantErr: ErrInvalidTimeout},
		{name: "zero page size", mutate: func(c *Config) { c.View.PageSize = 0 }, wantErr: ErrInvalidPageSize},
		{name: "too few buttons", mutate: func(c *Config) { c.View.MaxButtons = 2 }, wantErr: ErrInvalidMaxButtons},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "debug", Format: "json"}
	assert.Equal(t, logging.Config{Level: "debug", Format: "json", Output: logging.OutputStderr}, lc.ToLoggingConfig())

	lc.File = "/tmp/countrylist.log"
	got := lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputFile, got.Output)
	assert.Equal(t, "/tmp/countrylist.log", got.File)
}

func TestHomeDir(t *testing.T) {
	t.Setenv(EnvHome, "/opt/countrylist")
	assert.Equal(t, "/opt/countrylist", HomeDir())
	assert.Equal(t, "/opt/countrylist/config.yaml", DefaultPath())
	assert.Equal(t, "/opt/countrylist/countrylist.log", DefaultLogFile())
}
