package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr     string        `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN    string        `env:"DATABASE_DSN" envDefault:""`
	JWTSecret      string        `env:"JWT_SECRET" envDefault:"secret"`
	ExpireAfter    time.Duration `env:"POINTS_EXPIRE_AFTER" envDefault:"8760h"`
	ExpireInterval time.Duration `env:"POINTS_EXPIRE_INTERVAL" envDefault:"1h"`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr  string
	LogLevel    string
	JWTSecret   string
	DatabaseDSN string
}

// ExpireConfig модель настроек фонового сгорания баллов
type ExpireConfig struct {
	ExpireAfter  time.Duration
	PollInterval time.Duration
	BatchSize    int
}

// Config модель настроек сервиса
type Config struct {
	Server ServerConfig
	Expire ExpireConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server   = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN      = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		secret   = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		expire   = pflag.DurationP("expire_after", "e", args.ExpireAfter, "Idle period after which available points expire (0 disables).")
		interval = pflag.DurationP("expire_interval", "i", args.ExpireInterval, "Poll interval of the points expire worker.")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:  *server,
			LogLevel:    *logLevel,
			DatabaseDSN: *DSN,
			JWTSecret:   *secret,
		},
		Expire: ExpireConfig{
			ExpireAfter:  *expire,
			PollInterval: *interval,
			BatchSize:    100,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
			JWTSecret:   "secret",
		},
		Expire: ExpireConfig{
			ExpireAfter:  365 * 24 * time.Hour,
			PollInterval: time.Hour,
			BatchSize:    100,
		},
	}
}
