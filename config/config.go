// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"strings"
	"time"

	"github.com/gogama/servicex/request"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable Load reads.
const EnvPrefix = "SERVICEX"

// Config is the complete configuration of a client program.
type Config struct {
	Service ServiceConfig `mapstructure:"service"`
	Log     LogConfig     `mapstructure:"log"`
}

// ServiceConfig locates the API and sets per-request options.
type ServiceConfig struct {
	Scheme string `mapstructure:"scheme"`
	Host   string `mapstructure:"host"`
	// Timeout overrides the request timeout if positive.
	Timeout time.Duration `mapstructure:"timeout"`
	// CachePolicy names a request.CachePolicy. Empty means the
	// request's own policy.
	CachePolicy string `mapstructure:"cache_policy"`
}

// LogConfig configures the logger built by NewLogger.
type LogConfig struct {
	Level   string `mapstructure:"level"`
	Format  string `mapstructure:"format"`
	Output  string `mapstructure:"output"`
	NoColor bool   `mapstructure:"no_color"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Service: ServiceConfig{
			Scheme:  "https",
			Host:    "wikia.com",
			Timeout: request.DefaultTimeout,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
			Output: "stderr",
		},
	}
}

// LoaderOptions selects the files Load reads. Both are optional.
type LoaderOptions struct {
	ConfigFile string
	EnvFile    string
}

// Load reads the configuration, validates it, and returns it.
func Load(opts LoaderOptions) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "servicex/config: read %s", opts.ConfigFile)
		}
	}

	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			return nil, errors.Wrapf(err, "servicex/config: load %s", opts.EnvFile)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "servicex/config: unmarshal")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("service.scheme", d.Service.Scheme)
	v.SetDefault("service.host", d.Service.Host)
	v.SetDefault("service.timeout", d.Service.Timeout)
	v.SetDefault("service.cache_policy", d.Service.CachePolicy)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.output", d.Log.Output)
	v.SetDefault("log.no_color", d.Log.NoColor)
}

// Validate reports the first invalid setting in c.
func (c *Config) Validate() error {
	switch c.Service.Scheme {
	case "http", "https":
	default:
		return errors.Errorf("servicex/config: invalid service.scheme %q", c.Service.Scheme)
	}
	if c.Service.Host == "" {
		return errors.New("servicex/config: missing service.host")
	}
	if c.Service.Timeout < 0 {
		return errors.Errorf("servicex/config: negative service.timeout %s", c.Service.Timeout)
	}
	if _, err := c.Service.ParseCachePolicy(); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "servicex/config: invalid log.level")
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return errors.Errorf("servicex/config: invalid log.format %q", c.Log.Format)
	}
	switch c.Log.Output {
	case "stdout", "stderr":
	default:
		return errors.Errorf("servicex/config: invalid log.output %q", c.Log.Output)
	}
	return nil
}

// ParseCachePolicy returns the named cache policy, or nil if none is
// named.
func (c ServiceConfig) ParseCachePolicy() (*request.CachePolicy, error) {
	if c.CachePolicy == "" {
		return nil, nil
	}
	cp, ok := request.ParseCachePolicy(c.CachePolicy)
	if !ok {
		return nil, errors.Errorf("servicex/config: invalid service.cache_policy %q", c.CachePolicy)
	}
	return &cp, nil
}
