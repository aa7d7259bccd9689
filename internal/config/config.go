// Package config loads tro's settings from config.yaml and the environment.
//
// Sources, later ones win:
//
//  1. Built-in defaults.
//  2. config.yaml in $XDG_CONFIG_HOME/tro (or the file passed with --config).
//  3. Environment: TRO_<KEY>, plus TRELLO_API_KEY and TRELLO_API_TOKEN.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	DefaultHost      = "https://api.trello.com"
	DefaultCacheTTL  = 5 * time.Minute
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 10.0

	configFileName = "config"
	configFileType = "yaml"
)

// Config holds runtime settings for the tro CLI
type Config struct {
	Host      string        `mapstructure:"host"`
	Key       string        `mapstructure:"key"`
	Token     string        `mapstructure:"token"`
	Editor    string        `mapstructure:"editor"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`
	Timeout   time.Duration `mapstructure:"timeout"`
	RateLimit float64       `mapstructure:"rate_limit"`
	Watch     bool          `mapstructure:"watch"`

	// Path is the config file that was read, empty when none existed
	Path string `mapstructure:"-"`
}

// ErrMissingCredentials is returned by Validate when key or token is unset
var ErrMissingCredentials = errors.New("missing Trello API credentials")

// Dir returns the directory holding config.yaml
func Dir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "tro"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "tro"), nil
}

// DefaultPath returns the default location of config.yaml
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName+"."+configFileType), nil
}

// Load reads configuration from path (or the default location when path is
// empty). A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	v := viper.New()
	v.SetDefault("host", DefaultHost)
	v.SetDefault("key", "")
	v.SetDefault("token", "")
	v.SetDefault("editor", "")
	v.SetDefault("cache_ttl", DefaultCacheTTL)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("rate_limit", DefaultRateLimit)
	v.SetDefault("watch", false)

	v.SetEnvPrefix("TRO")
	v.AutomaticEnv()
	if err := v.BindEnv("key", "TRO_KEY", "TRELLO_API_KEY"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}
	if err := v.BindEnv("token", "TRO_TOKEN", "TRELLO_API_TOKEN"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	readPath := ""
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType(configFileType)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		readPath = path
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Path = readPath

	return &cfg, nil
}

// Validate checks the settings required to talk to the Trello API
func (c *Config) Validate() error {
	if c.Key == "" || c.Token == "" {
		return fmt.Errorf("%w: set key and token in config.yaml or TRELLO_API_KEY / TRELLO_API_TOKEN", ErrMissingCredentials)
	}
	if c.Host == "" {
		return errors.New("host must not be empty")
	}
	return nil
}

// fileTemplate is the structure written by Init
type fileTemplate struct {
	Host     string `yaml:"host"`
	Key      string `yaml:"key"`
	Token    string `yaml:"token"`
	Editor   string `yaml:"editor"`
	CacheTTL string `yaml:"cache_ttl"`
	Watch    bool   `yaml:"watch"`
}

const templateHeader = `# tro configuration
# key and token can also be provided through TRELLO_API_KEY / TRELLO_API_TOKEN.
# editor falls back to $EDITOR, then vi.
`

// Init writes a config.yaml template to path if the file does not exist.
// It reports whether a file was written.
func Init(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(&fileTemplate{
		Host:     DefaultHost,
		CacheTTL: DefaultCacheTTL.String(),
	})
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	// Credentials end up in this file
	if err := os.WriteFile(path, append([]byte(templateHeader), data...), 0o600); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
