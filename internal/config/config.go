package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// DefaultDatasetPath is where the advice dataset lives unless overridden by
// config file or environment.
const DefaultDatasetPath = "data/therapy_advice.json"

type Config struct {
	Dataset struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"dataset"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".") // Look for config.yaml in the current directory

	viper.SetDefault("dataset.path", DefaultDatasetPath)
	viper.SetDefault("log.level", "warning")

	viper.AutomaticEnv()
	// Explicit binding so the dataset path can be moved without a config file.
	viper.BindEnv("dataset.path", "MEND_DATASET_PATH")
	viper.BindEnv("log.level", "MEND_LOG_LEVEL")

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env vars cover it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
