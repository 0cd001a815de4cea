package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-viper/encoding/ini"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "ini"
)

// Config wraps the parsed INI settings. Every known key has a registered
// default, so reads never fail; a missing config file just means defaults.
type Config struct {
	v *viper.Viper
}

// Load reads config.ini from path (when non-empty), else from the current
// directory or the user config dir. A missing file is not an error.
func Load(path string) (*Config, error) {
	// viper 1.20 dropped the built-in INI codec; register the external one.
	registry := viper.NewCodecRegistry()
	if err := registry.RegisterCodec(configType, ini.Codec{}); err != nil {
		return nil, fmt.Errorf("register ini codec: %w", err)
	}
	v := viper.NewWithOptions(viper.WithCodecRegistry(registry))
	v.SetConfigType(configType)

	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix("LEVONCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// explicit file must exist; search-path misses fall back to defaults
		if strings.TrimSpace(path) != "" {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{v: v}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "testdb")
	v.SetDefault("database.user", "admin")

	v.SetDefault("api.endpoint", "https://api.example.com")
	v.SetDefault("api.key", "")
	v.SetDefault("api.timeout_seconds", 30)

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl_seconds", 300)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.dir", "logs")
	v.SetDefault("logging.rotation", "daily")
}

func (c *Config) validate() error {
	if p := c.v.GetInt("database.port"); p <= 0 || p > 65535 {
		return fmt.Errorf("invalid database.port %d", p)
	}
	if t := c.v.GetInt("api.timeout_seconds"); t <= 0 {
		return fmt.Errorf("invalid api.timeout_seconds %d", t)
	}
	if strings.TrimSpace(c.v.GetString("logging.dir")) == "" {
		return fmt.Errorf("logging.dir must not be empty")
	}
	return nil
}

// GetString returns the value for key, falling back to the registered
// default when the key is absent from the file.
func (c *Config) GetString(key string) string { return c.v.GetString(key) }

// GetInt returns the integer value for key.
func (c *Config) GetInt(key string) int { return c.v.GetInt(key) }

// GetBool returns the boolean value for key.
func (c *Config) GetBool(key string) bool { return c.v.GetBool(key) }

// GetStringOr returns the value for key, or fallback when the key is
// neither in the file nor a known default.
func (c *Config) GetStringOr(key, fallback string) string {
	if c.v.Get(key) == nil {
		return fallback
	}
	return c.v.GetString(key)
}

// Known reports whether key is present in the file or has a default.
func (c *Config) Known(key string) bool { return c.v.Get(key) != nil }

// Set records an override for key in memory; Write persists it.
func (c *Config) Set(key string, value any) { c.v.Set(key, value) }

// Write persists the current settings to the resolved config file, or to
// config.ini in the user config dir when no file was read.
func (c *Config) Write() error {
	if c.v.ConfigFileUsed() != "" {
		return c.v.WriteConfig()
	}
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return c.v.WriteConfigAs(filepath.Join(dir, configName+"."+configType))
}

// FileUsed returns the path of the config file actually read, or "".
func (c *Config) FileUsed() string { return c.v.ConfigFileUsed() }

// Keys returns all known keys (file values and defaults), sorted.
func (c *Config) Keys() []string {
	keys := c.v.AllKeys()
	sort.Strings(keys)
	return keys
}

// Flatten returns key -> rendered value for all known keys. Secret keys
// are redacted.
func (c *Config) Flatten() map[string]string {
	out := make(map[string]string, len(c.v.AllKeys()))
	for _, k := range c.v.AllKeys() {
		if isSecret(k) && c.v.GetString(k) != "" {
			out[k] = "<redacted>"
			continue
		}
		out[k] = c.v.GetString(k)
	}
	return out
}

func isSecret(key string) bool {
	return strings.HasSuffix(key, ".key") || strings.HasSuffix(key, ".password")
}
