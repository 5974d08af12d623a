package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort         int    `mapstructure:"APP_PORT"`
	DatabaseDSN     string `mapstructure:"DATABASE_DSN"`
	GeminiAPIKey    string `mapstructure:"GEMINI_API_KEY"`
	GeminiBaseURL   string `mapstructure:"GEMINI_BASE_URL"`
	ChatModel       string `mapstructure:"CHAT_MODEL"`
	ImageModel      string `mapstructure:"IMAGE_MODEL"`
	DefaultLanguage string `mapstructure:"DEFAULT_LANGUAGE"`
	LogLevel        string `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	// In-memory by default: sessions deliberately do not survive a restart.
	viper.SetDefault("DATABASE_DSN", "file::memory:?cache=shared")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com")
	viper.SetDefault("CHAT_MODEL", "gemini-2.5-flash")
	viper.SetDefault("IMAGE_MODEL", "imagen-3.0-generate-002")
	viper.SetDefault("DEFAULT_LANGUAGE", "kannada")
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
