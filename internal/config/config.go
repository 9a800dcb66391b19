package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Canvas   CanvasConfig   `mapstructure:"canvas"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
	Metadata MetadataConfig `mapstructure:"metadata"`
	Outputs  OutputsConfig  `mapstructure:"outputs"`
	Server   ServerConfig   `mapstructure:"server"`
	Course   CourseConfig   `mapstructure:"course"`
	LegacyDB LegacyDBConfig `mapstructure:"legacy_db"`
}

type CanvasConfig struct {
	BaseURL       string `mapstructure:"base_url" validate:"omitempty,url"`
	CourseID      string `mapstructure:"course_id" validate:"omitempty,numeric"`
	AccessToken   string `mapstructure:"access_token"`
	RetryAttempts uint   `mapstructure:"retry_attempts"`
}

type ScheduleConfig struct {
	Workbook    string   `mapstructure:"workbook" validate:"omitempty,file"`
	Sheet       string   `mapstructure:"sheet"`
	LectureDays []string `mapstructure:"lecture_days" validate:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
}

type MetadataConfig struct {
	Directory string `mapstructure:"directory"`
}

type OutputsConfig struct {
	Directory string `mapstructure:"directory"`
	// TemplatesDirectory overrides the embedded page templates when set.
	TemplatesDirectory string `mapstructure:"templates_directory"`
}

type ServerConfig struct {
	Port            int    `mapstructure:"port" validate:"min=1,max=65535"`
	AllowedOrigin   string `mapstructure:"allowed_origin"`
	UploadDirectory string `mapstructure:"upload_directory"`
}

type CourseConfig struct {
	Code string `mapstructure:"code"`
	Term string `mapstructure:"term"`
	// SyllabusPatterns overrides the filename substrings locating the
	// course-document PDFs, keyed the way the pages link them.
	SyllabusPatterns map[string]string `mapstructure:"syllabus_patterns"`
}

type LegacyDBConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

func Load(configFile string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/coursebuilder")
	}

	v.SetDefault("canvas.base_url", "https://umich.instructure.com")
	v.SetDefault("canvas.retry_attempts", 3)
	v.SetDefault("metadata.directory", "metadata")
	v.SetDefault("outputs.directory", filepath.Join("outputs", "pages"))
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origin", "*")
	v.SetDefault("server.upload_directory", "uploads")
	v.SetDefault("legacy_db.host", "localhost")
	v.SetDefault("legacy_db.port", 3306)

	// Bind credentials to environment variables only (not from config file)
	if err := v.BindEnv("canvas.access_token", "CANVAS_ACCESS_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind CANVAS_ACCESS_TOKEN environment variable: %w", err)
	}
	if err := v.BindEnv("canvas.course_id", "COURSE_ID"); err != nil {
		return nil, fmt.Errorf("failed to bind COURSE_ID environment variable: %w", err)
	}
	if err := v.BindEnv("legacy_db.password", "LEGACY_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind LEGACY_DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	return &cfg, nil
}

// Validate checks the loaded configuration against the struct rules and
// returns the translated findings joined into one error.
func (cfg *Config) Validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return fmt.Errorf("newValidator() > %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			messages := make([]string, 0, len(validationErrors))
			for _, fieldError := range validationErrors {
				messages = append(messages, fieldError.Translate(trans))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
		}
		return fmt.Errorf("validate.Struct() > %w", err)
	}
	return nil
}
