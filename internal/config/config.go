package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config is the runtime configuration of the command line tool.
type Config struct {
	BaseURL         string `env:"DOCFORM_BASE_URL" envDefault:"http://localhost:5000" validate:"required,url"`
	Form            string `env:"DOCFORM_FORM" envDefault:"resume" validate:"required,formtype"`
	LogLevel        string `env:"DOCFORM_LOG_LEVEL" envDefault:"info" validate:"loglevel"`
	LogFormat       string `env:"DOCFORM_LOG_FORMAT" envDefault:"console" validate:"oneof=console json"`
	LogFile         string `env:"DOCFORM_LOG_FILE"`
	LogMaxSizeMB    int    `env:"DOCFORM_LOG_MAX_SIZE_MB" envDefault:"10" validate:"min=1"`
	LogMaxBackups   int    `env:"DOCFORM_LOG_MAX_BACKUPS" envDefault:"3" validate:"min=0"`
	RequestTimeoutS int    `env:"DOCFORM_REQUEST_TIMEOUT_SECONDS" envDefault:"0" validate:"min=0"`
}

// Load reads an optional .env file from the working directory, then parses
// the environment and validates the result. Variables already set in the
// environment win over the .env file.
func Load(files ...string) (*Config, error) {
	_ = godotenv.Load(files...)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration, reporting every invalid field at once.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config: nil config")
	}
	if err := validate().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			problems := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				problems = append(problems, fmt.Sprintf("%s failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("config: invalid: %s", strings.Join(problems, "; "))
		}
		return fmt.Errorf("config: validate: %w", err)
	}
	return nil
}

func validate() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
			return true
		default:
			return false
		}
	})
	_ = v.RegisterValidation("formtype", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "resume", "cover_letter":
			return true
		default:
			return false
		}
	})
	return v
}
