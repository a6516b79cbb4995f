package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/sheetfn/packages/core/env"
	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// AppName is the application name used for XDG directory paths.
const AppName = "sheetfn"

// Config represents the sheetfn configuration
type Config struct {
	Timeout         int               `yaml:"timeout,omitempty" json:"timeout,omitempty"` // milliseconds
	FollowRedirects *bool             `yaml:"followRedirects,omitempty" json:"followRedirects,omitempty"`
	MaxRedirects    int               `yaml:"maxRedirects,omitempty" json:"maxRedirects,omitempty"`
	ValidateSSL     *bool             `yaml:"validateSSL,omitempty" json:"validateSSL,omitempty"`
	Proxy           string            `yaml:"proxy,omitempty" json:"proxy,omitempty"`
	Headers         map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"` // Default headers for every fetch
	RateLimit       float64           `yaml:"rateLimit,omitempty" json:"rateLimit,omitempty"` // requests per second, 0 = unlimited
	Output          string            `yaml:"output,omitempty" json:"output,omitempty"`
	NoColor         *bool             `yaml:"noColor,omitempty" json:"noColor,omitempty"`
	Verbose         *bool             `yaml:"verbose,omitempty" json:"verbose,omitempty"`
	DecodeURI       *bool             `yaml:"decodeURI,omitempty" json:"decodeURI,omitempty"`
	Schema          string            `yaml:"schema,omitempty" json:"schema,omitempty"` // JSON schema path for IMPORTJSON
}

// BoolPtr returns a pointer to b
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetFollowRedirects returns the follow redirects setting, defaulting to true
func (c *Config) GetFollowRedirects() bool {
	return getBool(c.FollowRedirects, true)
}

// GetValidateSSL returns the validate SSL setting, defaulting to true
func (c *Config) GetValidateSSL() bool {
	return getBool(c.ValidateSSL, true)
}

// GetVerbose returns the verbose setting, defaulting to false
func (c *Config) GetVerbose() bool {
	return getBool(c.Verbose, false)
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// GetDecodeURI returns the decode setting for EXTRACT_* commands, defaulting to true
func (c *Config) GetDecodeURI() bool {
	return getBool(c.DecodeURI, true)
}

// TimeoutDuration returns Timeout as a time.Duration
func (c *Config) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Millisecond
}

// ResolvedHeaders returns Headers with ${VAR} references expanded from the
// environment, and the names of referenced variables that are unset.
func (c *Config) ResolvedHeaders() (map[string]string, []string) {
	return env.ExpandMap(c.Headers, os.LookupEnv)
}

// Validate checks numeric settings
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return ErrInvalidTimeout
	}
	if c.RateLimit < 0 {
		return ErrInvalidRateLimit
	}
	if c.MaxRedirects < 0 {
		return ErrInvalidMaxRedirects
	}
	return nil
}

// ConfigFilenames contains the possible config file names, in search order
var ConfigFilenames = []string{
	".sheetfn.yaml",
	"sheetfn.yaml",
	".sheetfn.json",
	"sheetfn.json",
}

// XDGConfigDir returns the XDG config directory for sheetfn.
// On Linux: ~/.config/sheetfn
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// SearchDirs returns the directories searched for a config file
func SearchDirs() []string {
	return []string{".", XDGConfigDir()}
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return loadConfigFromFile(path)
	}

	return FindAndLoadConfig(SearchDirs()...)
}

// FindConfigFile returns the first config file found in dirs, or "".
func FindConfigFile(dirs ...string) string {
	for _, dir := range dirs {
		for _, filename := range ConfigFilenames {
			configPath := filepath.Join(dir, filename)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}
	}
	return ""
}

// FindAndLoadConfig loads the first config file found in dirs
func FindAndLoadConfig(dirs ...string) (*Config, error) {
	if path := FindConfigFile(dirs...); path != "" {
		return loadConfigFromFile(path)
	}

	// Return defaults if no config file found
	return DefaultConfig(), nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// loadConfigFromFile loads configuration from a specific file
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if isJSON(path) {
		err = json.Unmarshal(data, config)
	} else {
		err = yaml.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return config, nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.Timeout > 0 {
		result.Timeout = other.Timeout
	}
	if other.MaxRedirects > 0 {
		result.MaxRedirects = other.MaxRedirects
	}
	if other.Proxy != "" {
		result.Proxy = other.Proxy
	}
	if other.RateLimit > 0 {
		result.RateLimit = other.RateLimit
	}
	if other.Output != "" {
		result.Output = other.Output
	}
	if other.Schema != "" {
		result.Schema = other.Schema
	}

	// Boolean flags - only override if explicitly set in other config
	if other.FollowRedirects != nil {
		result.FollowRedirects = other.FollowRedirects
	}
	if other.ValidateSSL != nil {
		result.ValidateSSL = other.ValidateSSL
	}
	if other.Verbose != nil {
		result.Verbose = other.Verbose
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}
	if other.DecodeURI != nil {
		result.DecodeURI = other.DecodeURI
	}

	// Merge headers into a fresh map so c is left untouched
	if len(other.Headers) > 0 {
		headers := make(map[string]string, len(c.Headers)+len(other.Headers))
		for k, v := range c.Headers {
			headers[k] = v
		}
		for k, v := range other.Headers {
			headers[k] = v
		}
		result.Headers = headers
	}

	return &result
}

// SaveConfig saves the configuration to a file, as JSON for .json paths and YAML otherwise
func (c *Config) SaveConfig(path string) error {
	var (
		data []byte
		err  error
	)
	if isJSON(path) {
		data, err = json.MarshalIndent(c, "", "  ")
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
