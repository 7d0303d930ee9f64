package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Session SessionConfig
	Auth    AuthConfig
	Seed    SeedConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port int
}

type SessionConfig struct {
	CookieName string
	TTL        time.Duration
}

type AuthConfig struct {
	DemoLogin     bool
	AdminUser     string
	AdminPassword string
}

type SeedConfig struct {
	DemoOrders bool
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("SESSION_COOKIE", "orderdesk_session")
	viper.SetDefault("SESSION_TTL", "24h")
	viper.SetDefault("AUTH_DEMO_LOGIN", true)
	viper.SetDefault("AUTH_ADMIN_USER", "admin")
	viper.SetDefault("AUTH_ADMIN_PASSWORD", "admin")
	viper.SetDefault("SEED_DEMO_ORDERS", true)
	viper.SetDefault("LOG_LEVEL", "info")

	sessionTTL, err := time.ParseDuration(viper.GetString("SESSION_TTL"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Session: SessionConfig{
			CookieName: viper.GetString("SESSION_COOKIE"),
			TTL:        sessionTTL,
		},
		Auth: AuthConfig{
			DemoLogin:     viper.GetBool("AUTH_DEMO_LOGIN"),
			AdminUser:     viper.GetString("AUTH_ADMIN_USER"),
			AdminPassword: viper.GetString("AUTH_ADMIN_PASSWORD"),
		},
		Seed: SeedConfig{
			DemoOrders: viper.GetBool("SEED_DEMO_ORDERS"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
