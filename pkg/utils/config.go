package utils

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Admin    AdminConfig
}

type AppConfig struct {
	Name        string
	Port        string
	Debug       bool
	LogPath     string
	FrontendURL string
}

type DatabaseConfig struct {
	// URL is a full connection string (DATABASE_URL); when set it wins
	// over the discrete fields below.
	URL      string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// AdminConfig is the seed administrator created when no admin account
// exists yet.
type AdminConfig struct {
	Username    string
	FullName    string
	Email       string
	PhoneNumber string
	Password    string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "estatelink")
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("FRONTEND_URL", "http://localhost:3000")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("ADMIN_USERNAME", "default_admin")
	viper.SetDefault("ADMIN_FULL_NAME", "System Administrator")
	viper.SetDefault("ADMIN_EMAIL", "admin@estatelink.com")
	viper.SetDefault("ADMIN_PHONE", "123456789")
	viper.SetDefault("ADMIN_PASSWORD", "default_password")

	// A missing .env is fine; the process then runs on environment
	// variables and defaults. A malformed one is not.
	if err := viper.ReadInConfig(); err != nil {
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:        viper.GetString("APP_NAME"),
			Port:        viper.GetString("PORT"),
			Debug:       viper.GetBool("DEBUG"),
			LogPath:     viper.GetString("LOG_PATH"),
			FrontendURL: viper.GetString("FRONTEND_URL"),
		},
		Database: DatabaseConfig{
			URL:      viper.GetString("DATABASE_URL"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Admin: AdminConfig{
			Username:    viper.GetString("ADMIN_USERNAME"),
			FullName:    viper.GetString("ADMIN_FULL_NAME"),
			Email:       viper.GetString("ADMIN_EMAIL"),
			PhoneNumber: viper.GetString("ADMIN_PHONE"),
			Password:    viper.GetString("ADMIN_PASSWORD"),
		},
	}

	return config, nil
}
