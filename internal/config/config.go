package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Mock   MockConfig   `mapstructure:"mock"`
	Stream StreamConfig `mapstructure:"stream"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	HTTPAddr string `mapstructure:"http_addr"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	Sampling          bool   `mapstructure:"sampling"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

type MockConfig struct {
	// Seed fixes the random source; zero means time-derived.
	Seed       int64         `mapstructure:"seed"`
	LatencyMin time.Duration `mapstructure:"latency_min"`
	LatencyMax time.Duration `mapstructure:"latency_max"`
	AllowHosts []string      `mapstructure:"allow_hosts"`
	Crypto     LedgerConfig  `mapstructure:"crypto"`
	Futures    LedgerConfig  `mapstructure:"futures"`
}

type LedgerConfig struct {
	Count     int     `mapstructure:"count"`
	OpenCount int     `mapstructure:"open_count"`
	Leverage  float64 `mapstructure:"leverage"`
}

type StreamConfig struct {
	TickMin time.Duration `mapstructure:"tick_min"`
	TickMax time.Duration `mapstructure:"tick_max"`
}

func Load(path string, envOnly bool) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetDefault("app.env", "dev")
	v.SetDefault("server.http_addr", ":8089")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.sampling", false)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)
	v.SetDefault("mock.seed", 0)
	v.SetDefault("mock.latency_min", "30ms")
	v.SetDefault("mock.latency_max", "90ms")
	v.SetDefault("mock.crypto.count", 40)
	v.SetDefault("mock.crypto.open_count", 3)
	v.SetDefault("mock.crypto.leverage", 10)
	v.SetDefault("mock.futures.count", 25)
	v.SetDefault("mock.futures.open_count", 2)
	v.SetDefault("mock.futures.leverage", 4)
	v.SetDefault("stream.tick_min", "5s")
	v.SetDefault("stream.tick_max", "10s")

	if !envOnly {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
