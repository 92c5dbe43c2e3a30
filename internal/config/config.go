package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/wjn/LanguageFlashCards/pkg/validator"
)

type Config struct {
	Env      string         `mapstructure:"env" yaml:"env" validate:"oneof=development production"`
	WordBank WordBankConfig `mapstructure:"wordbank" yaml:"wordbank"`
	Quiz     QuizConfig     `mapstructure:"quiz" yaml:"quiz"`
	History  HistoryConfig  `mapstructure:"history" yaml:"history"`
}

type WordBankConfig struct {
	Path    string `mapstructure:"path" yaml:"path" validate:"required"`
	Verbose bool   `mapstructure:"verbose" yaml:"verbose"`
}

type QuizConfig struct {
	Count     int    `mapstructure:"count" yaml:"count" validate:"min=1,max=1000"`
	Type      string `mapstructure:"type" yaml:"type" validate:"oneof=random least-recent most-incorrect"`
	Direction string `mapstructure:"direction" yaml:"direction" validate:"oneof=foreign native random"`
}

type HistoryConfig struct {
	Enabled bool          `mapstructure:"enabled" yaml:"enabled"`
	Path    string        `mapstructure:"path" yaml:"path" validate:"required_if=Enabled true"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout" validate:"min=0"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("wordbank.path", "german-english.csv")
	v.SetDefault("wordbank.verbose", false)
	v.SetDefault("quiz.count", 20)
	v.SetDefault("quiz.type", "random")
	v.SetDefault("quiz.direction", "random")
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", "flashcards-history.db")
	v.SetDefault("history.timeout", 5*time.Second)
}

// Init builds the configuration from defaults, the config file, a .env file
// and the environment, in increasing order of precedence. configFile, when
// set, replaces the configs/<CONFIG_NAME>.yaml lookup and must exist.
func Init(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		configName := os.Getenv("CONFIG_NAME")
		if configName == "" {
			configName = "default"
		}
		v.AddConfigPath("configs")
		v.SetConfigName(configName)
	}

	if err := v.BindEnv("env", "FLASHCARDS_ENV"); err != nil {
		return nil, fmt.Errorf("failed to bind FLASHCARDS_ENV: %w", err)
	}
	if err := v.BindEnv("wordbank.path", "WORDBANK_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind WORDBANK_PATH: %w", err)
	}
	if err := v.BindEnv("wordbank.verbose", "WORDBANK_VERBOSE"); err != nil {
		return nil, fmt.Errorf("failed to bind WORDBANK_VERBOSE: %w", err)
	}
	if err := v.BindEnv("history.enabled", "HISTORY_ENABLED"); err != nil {
		return nil, fmt.Errorf("failed to bind HISTORY_ENABLED: %w", err)
	}
	if err := v.BindEnv("history.path", "HISTORY_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind HISTORY_PATH: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
