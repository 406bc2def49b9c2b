// Package config loads the chatserver configuration from a YAML file,
// environment variables (CHATSERVER_ prefix) and command-line flags,
// in that order of increasing precedence.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the root configuration for the server process.
type Config struct {
	// ListenAddr is the gRPC listen address.
	ListenAddr string `mapstructure:"listen_addr"`

	HTTP    HTTPConfig    `mapstructure:"http"`
	Log     LogConfig     `mapstructure:"log"`
	Mailbox MailboxConfig `mapstructure:"mailbox"`
	Chat    ChatConfig    `mapstructure:"chat"`
	Tracing TracingConfig `mapstructure:"tracing"`

	v *viper.Viper
	// watchOnce guards viper's file watcher, which must be started once.
	watchOnce sync.Once
}

// HTTPConfig configures the ops HTTP endpoint (/metrics, /healthz).
type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MailboxConfig bounds the per-user mailbox. Limit 0 means unbounded.
type MailboxConfig struct {
	Limit int `mapstructure:"limit"`
}

// ChatConfig sizes the per-endpoint outbound buffer for the chat room.
type ChatConfig struct {
	SendBuffer int `mapstructure:"send_buffer"`
}

type TracingConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Flags returns the pflag set the config layer knows how to bind.
// Callers may pre-set values before passing the set to Load.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("chatserver", pflag.ContinueOnError)
	fs.String("listen_addr", "", "gRPC listen address")
	fs.String("log.level", "", "log level (debug, info, warn, error)")
	return fs
}

// Load reads the configuration. file may be empty, in which case only
// defaults, environment and flags apply.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("listen_addr", "0.0.0.0:50051")
	v.SetDefault("http.addr", "0.0.0.0:9102")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("mailbox.limit", 0)
	v.SetDefault("chat.send_buffer", 64)
	v.SetDefault("tracing.enabled", false)

	v.SetEnvPrefix("CHATSERVER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.v = v

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("config: listen_addr must not be empty")
	}
	if c.Mailbox.Limit < 0 {
		return fmt.Errorf("config: mailbox.limit must be >= 0, got %d", c.Mailbox.Limit)
	}
	if c.Chat.SendBuffer < 1 {
		return fmt.Errorf("config: chat.send_buffer must be >= 1, got %d", c.Chat.SendBuffer)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// SlogLevel maps the configured level string onto slog.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Watch re-reads the config file on change and applies the log level
// without a restart. Other fields require a restart and are ignored.
func (c *Config) Watch(logger *slog.Logger, level *slog.LevelVar) {
	if c.v.ConfigFileUsed() == "" {
		return
	}
	c.watchOnce.Do(func() {
		c.v.OnConfigChange(func(e fsnotify.Event) {
			var next Config
			if err := c.v.Unmarshal(&next); err != nil {
				logger.Warn("config reload failed", slog.String("file", e.Name), slog.Any("err", err))
				return
			}
			if next.Log.SlogLevel() != level.Level() {
				logger.Info("log level changed",
					slog.String("from", level.Level().String()),
					slog.String("to", next.Log.SlogLevel().String()),
				)
				level.Set(next.Log.SlogLevel())
			}
		})
		c.v.WatchConfig()
	})
}
