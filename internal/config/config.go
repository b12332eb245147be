// Package config loads countrylist settings from a YAML file, environment
// variables and command-line overrides, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/countrylist/internal/pagination"
)

// DefaultEndpoint is the public countries API queried when no endpoint is configured.
const DefaultEndpoint = "https://restcountries.com/v2/all?fields=name,region,area"

// Defaults for the remaining settings.
const (
	DefaultTimeout  = 15 * time.Second
	DefaultLogLevel = "info"
	configFileName  = "config.yaml"
	homeDirName     = ".countrylist"
	logFileName     = "countrylist.log"
)

// Environment variables read by ApplyEnv.
const (
	EnvHome      = "COUNTRYLIST_HOME"
	EnvEndpoint  = "COUNTRYLIST_ENDPOINT"
	EnvTimeout   = "COUNTRYLIST_TIMEOUT"
	EnvLogLevel  = "COUNTRYLIST_LOG_LEVEL"
	EnvLogFormat = "COUNTRYLIST_LOG_FORMAT"
)

// Validation errors.
var (
	ErrInvalidEndpoint   = errors.New("source.endpoint must be an absolute http or https URL")
	ErrInvalidTimeout    = errors.New("source.timeout must be positive")
	ErrInvalidPageSize   = errors.New("view.page_size must be between 1 and 1000")
	ErrInvalidMaxButtons = errors.New("view.max_buttons must be at least 3")
)

// Config is the complete countrylist configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	View    ViewConfig    `yaml:"view"`
	Logging LoggingConfig `yaml:"logging"`
}

// SourceConfig configures the upstream data source.
type SourceConfig struct {
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
	// File, when set, is read instead of querying Endpoint.
	File string `yaml:"file,omitempty"`
}

// ViewConfig configures the list view.
type ViewConfig struct {
	PageSize          int  `yaml:"page_size"`
	MaxButtons        int  `yaml:"max_buttons"`
	ResetPageOnChange bool `yaml:"reset_page_on_change"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Source: SourceConfig{
			Endpoint: DefaultEndpoint,
			Timeout:  DefaultTimeout,
		},
		View: ViewConfig{
			PageSize:          pagination.DefaultPageSize,
			MaxButtons:        pagination.DefaultMaxButtons,
			ResetPageOnChange: true,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: "console",
		},
	}
}

// HomeDir returns the countrylist directory: $COUNTRYLIST_HOME, else ~/.countrylist.
func HomeDir() string {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return homeDirName
	}
	return filepath.Join(home, homeDirName)
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(HomeDir(), configFileName)
}

// DefaultLogFile returns the log file used while the interactive view owns the terminal.
func DefaultLogFile() string {
	return filepath.Join(HomeDir(), logFileName)
}

// Load reads path over the defaults and applies environment overrides. A missing
// file is not an error when path is the default location.
func Load(path string) (*Config, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with an explicit environment lookup.
func LoadWithEnv(path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := New()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// Defaults only.
	default:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err = cfg.ApplyEnv(lookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from environment variables found through lookupEnv.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv(EnvEndpoint); ok && v != "" {
		c.Source.Endpoint = v
	}
	if v, ok := lookupEnv(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvTimeout, err)
		}
		c.Source.Timeout = d
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Source.File == "" {
		u, err := url.Parse(c.Source.Endpoint)
		if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("%w: %q", ErrInvalidEndpoint, c.Source.Endpoint)
		}
	}
	if c.Source.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.View.PageSize < pagination.MinPageSize || c.View.PageSize > pagination.MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, c.View.PageSize)
	}
	if c.View.MaxButtons < pagination.MinMaxButtons {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxButtons, c.View.MaxButtons)
	}
	return nil
}
