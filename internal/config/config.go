package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the client needs to reach the writing-tool
// backend and shape a chat session.
type Config struct {
	BackendURL        string `mapstructure:"BACKEND_URL"`
	CachePath         string `mapstructure:"CACHE_PATH"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	AIModelID         int    `mapstructure:"AI_MODEL_ID"`
	ProjectID         int    `mapstructure:"PROJECT_ID"`
	PreviewBeforeSend bool   `mapstructure:"PREVIEW_BEFORE_SEND"`
}

// Load reads configuration from an optional .env file and the environment.
// A missing config file is not an error; defaults apply.
func Load() (*Config, error) {
	viper.SetDefault("BACKEND_URL", "http://localhost:8000")
	viper.SetDefault("CACHE_PATH", ".inkwell/cache.db")
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("AI_MODEL_ID", 0)
	viper.SetDefault("PROJECT_ID", 0)
	viper.SetDefault("PREVIEW_BEFORE_SEND", false)

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

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
