// Package config loads etymquest's settings from the config file, the
// environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/etymquest/internal/llm"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "ETYMQUEST"

// Config is the complete application configuration.
type Config struct {
	Locale  string `mapstructure:"locale" validate:"oneof=ja en"`
	Profile string `mapstructure:"profile" validate:"required"`
	// DBPath is empty for the platform default.
	DBPath string `mapstructure:"db_path"`

	Log    LogConfig    `mapstructure:"log"`
	LLM    LLMConfig    `mapstructure:"llm"`
	Server ServerConfig `mapstructure:"server"`
	Story  StoryConfig  `mapstructure:"story"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

type LLMConfig struct {
	Provider    string        `mapstructure:"provider" validate:"omitempty,oneof=gemini anthropic openai openrouter mock"`
	Model       string        `mapstructure:"model"`
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url" validate:"omitempty,url"`
	MaxTokens   int           `mapstructure:"max_tokens" validate:"gte=0"`
	Temperature float64       `mapstructure:"temperature" validate:"gte=0,lte=1"`
	Timeout     time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

type ServerConfig struct {
	Addr           string        `mapstructure:"addr" validate:"required"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gte=0"`
}

type StoryConfig struct {
	// ProxyURL is the story proxy's generate endpoint. Empty generates
	// stories in-process with the configured provider.
	ProxyURL string        `mapstructure:"proxy_url" validate:"omitempty,url"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

// Options controls where Load looks for settings.
type Options struct {
	// File is an explicit config file. When empty the standard locations
	// are searched and a missing file is not an error.
	File string

	// Flags, when set, overrides config values with any of the flags "db",
	// "locale", "profile" and "log-level" that were given on the command line.
	Flags *pflag.FlagSet
}

var flagKeys = map[string]string{
	"db":        "db_path",
	"locale":    "locale",
	"profile":   "profile",
	"log-level": "log.level",
}

// Load reads the configuration. Precedence, highest first: flags,
// ETYMQUEST_* environment variables, the config file, defaults.
func Load(opts Options) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Keys without a default are invisible to AutomaticEnv.
	for _, key := range []string{"db_path", "llm.provider", "llm.model", "llm.api_key", "llm.base_url", "story.proxy_url"} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.SetConfigName("etymquest")
		v.SetConfigType("yaml")
		for _, dir := range searchPaths() {
			v.AddConfigPath(dir)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.resolveLLM()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("locale", "ja")
	v.SetDefault("profile", "etymology-app-stats-v12")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	d := llm.DefaultConfig()
	v.SetDefault("llm.max_tokens", d.MaxTokens)
	v.SetDefault("llm.temperature", d.Temperature)
	v.SetDefault("llm.timeout", d.Timeout)

	v.SetDefault("server.addr", "127.0.0.1:8787")
	v.SetDefault("server.allowed_origins", []string{})
	v.SetDefault("server.request_timeout", 60*time.Second)
	v.SetDefault("story.timeout", 60*time.Second)
}

func searchPaths() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "etymquest"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "etymquest"))
	}
	return append(dirs, ".")
}

// resolveLLM fills the provider and API key from the conventional
// provider variables (GEMINI_API_KEY and friends) when the config leaves
// them unset.
func (c *Config) resolveLLM() {
	if c.LLM.Provider == "" {
		if c.LLM.APIKey == "" {
			if d, ok := llm.DiscoverConfig(); ok {
				c.LLM.Provider = d.Provider
				c.LLM.APIKey = d.APIKey
				return
			}
		}
		c.LLM.Provider = llm.ProviderGemini
	}
	if c.LLM.APIKey == "" {
		if env := llm.APIKeyEnv(c.LLM.Provider); env != "" {
			c.LLM.APIKey = os.Getenv(env)
		}
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the struct-tag constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("  %s: failed %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value())
			}
			return fmt.Errorf("invalid config:\n%s", strings.Join(msgs, "\n"))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LLMProviderConfig converts the llm section for llm.NewProvider.
func (c Config) LLMProviderConfig() llm.Config {
	return llm.Config{
		Provider: c.LLM.Provider,
		ProviderConfig: llm.ProviderConfig{
			APIKey:  c.LLM.APIKey,
			Model:   c.LLM.Model,
			BaseURL: c.LLM.BaseURL,
		},
		MaxTokens:   c.LLM.MaxTokens,
		Temperature: c.LLM.Temperature,
		Timeout:     c.LLM.Timeout,
	}
}
