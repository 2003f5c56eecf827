package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	LevelDB LevelDBConfig `mapstructure:"leveldb"`
	Dataset DatasetConfig `mapstructure:"dataset"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Session SessionConfig `mapstructure:"session"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type LogConfig struct {
	AppLogFile string `mapstructure:"app_log_file"` // path, "stdout" or "stderr"
	Level      string `mapstructure:"level"`
}

type LevelDBConfig struct {
	Path string `mapstructure:"path"`
}

// DatasetConfig names a dataset document imported when the server starts
type DatasetConfig struct {
	File string `mapstructure:"file"`
}

type CacheConfig struct {
	SizeMB     int `mapstructure:"size_mb"`
	TTLSeconds int `mapstructure:"ttl_seconds"`
}

func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// SessionConfig bounds how long an untouched selection session is kept
type SessionConfig struct {
	TTLSeconds int `mapstructure:"ttl_seconds"`
}

func (c SessionConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.app_log_file", "stdout")
	v.SetDefault("log.level", "info")
	v.SetDefault("leveldb.path", "data/leveldb")
	v.SetDefault("dataset.file", "")
	v.SetDefault("cache.size_mb", 64)
	v.SetDefault("cache.ttl_seconds", 60)
	v.SetDefault("session.ttl_seconds", 1800)
	v.SetDefault("metrics.enabled", true)
}

// Load reads the config file at path (if it exists) and applies SYBIL_* environment overrides.
// An empty path loads defaults and environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("sybil")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
