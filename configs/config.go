package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	Port       string `mapstructure:"port" validate:"required"`
	LogLevel   string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	CORSOrigin string `mapstructure:"cors_origins"`

	DBDriver    string `mapstructure:"db_driver" validate:"oneof=sqlite postgres"`
	DatabaseURL string `mapstructure:"database_url" validate:"required"`

	AIProvider      string        `mapstructure:"ai_provider" validate:"oneof=openai anthropic gemini mock"`
	OpenAIAPIKey    string        `mapstructure:"openai_api_key" validate:"required_if=AIProvider openai"`
	OpenAIModel     string        `mapstructure:"openai_model"`
	OpenAIBaseURL   string        `mapstructure:"openai_base_url" validate:"omitempty,url"`
	AnthropicAPIKey string        `mapstructure:"anthropic_api_key" validate:"required_if=AIProvider anthropic"`
	AnthropicModel  string        `mapstructure:"anthropic_model"`
	GeminiAPIKey    string        `mapstructure:"gemini_api_key" validate:"required_if=AIProvider gemini"`
	GeminiModel     string        `mapstructure:"gemini_model"`
	AITimeout       time.Duration `mapstructure:"ai_timeout" validate:"gt=0"`
	AIRetryAttempts uint          `mapstructure:"ai_retry_attempts" validate:"lte=5"`

	OCRBinary   string `mapstructure:"ocr_binary" validate:"required"`
	OCRLanguage string `mapstructure:"ocr_language" validate:"required"`

	JWTSecret           string `mapstructure:"jwt_secret"`
	OrphanSweepSchedule string `mapstructure:"orphan_sweep_schedule"`
}

var defaults = map[string]any{
	"port":                  "8080",
	"log_level":             "info",
	"cors_origins":          "*",
	"db_driver":             "sqlite",
	"database_url":          "errorpaper.db",
	"ai_provider":           "mock",
	"openai_api_key":        "",
	"openai_model":          "gpt-4o-mini",
	"openai_base_url":       "",
	"anthropic_api_key":     "",
	"anthropic_model":       "claude-haiku",
	"gemini_api_key":        "",
	"gemini_model":          "gemini-flash",
	"ai_timeout":            "30s",
	"ai_retry_attempts":     2,
	"ocr_binary":            "tesseract",
	"ocr_language":          "eng",
	"jwt_secret":            "",
	"orphan_sweep_schedule": "@hourly",
}

// Load reads settings from .env, an optional YAML file and the environment,
// in increasing order of precedence.
func Load(configFile string) (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		slog.Debug(".env file not found, reading from system environment variables")
	}

	v := viper.New()
	v.SetConfigType("yaml")
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || os.IsNotExist(err) {
				return nil, fmt.Errorf("config file %s not found: %w", configFile, err)
			}
			return nil, fmt.Errorf("config file %s could not be read: %w", configFile, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate reports the first invalid setting in a readable form.
func (s *Settings) Validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return err
	}
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid configuration: %s", verrs[0].Translate(trans))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// SlogLevel maps the configured log level onto slog.
func (s *Settings) SlogLevel() slog.Level {
	switch s.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
