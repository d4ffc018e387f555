package config

import (
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
)

const (
	DefaultBanksURL = "https://banks.ilimurzin.ru/v1/banks.json"
	DefaultLogLevel = "info"
	DefaultPort     = "8080"
)

// Environment keys.
const (
	KeyBanksURL = "BANKSURL"
	KeyLogLevel = "LOGLEVEL"
	KeyPort     = "PORT"
)

type Config struct {
	BanksURL string `validate:"required,url"`
	LogLevel string `validate:"omitempty,oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	Port     string `validate:"required,number"`
}

// New reads the process environment, after loading envPath if it exists.
func New(envPath string) *Config {
	return Load(viper.New(), envPath)
}

// Load resolves the configuration through v, so callers can bind flags to
// the same keys before loading. An empty envPath loads ./.env.
func Load(v *viper.Viper, envPath string) *Config {
	if err := loadEnvFile(envPath); err != nil {
		slog.Debug("no .env file loaded, using process environment", "path", envPath, "reason", err)
	}

	v.AutomaticEnv()
	v.SetDefault(KeyBanksURL, DefaultBanksURL)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyPort, DefaultPort)

	return &Config{
		BanksURL: v.GetString(KeyBanksURL),
		LogLevel: v.GetString(KeyLogLevel),
		Port:     v.GetString(KeyPort),
	}
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return eris.Wrap(err, "invalid configuration")
	}
	return nil
}

// Addr is the listen address for the HTTP API.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func loadEnvFile(path string) error {
	if path == "" {
		return godotenv.Load()
	}
	return godotenv.Load(path)
}
