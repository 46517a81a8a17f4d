package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/andrewpaige1/studyapp-api/models"
)

const (
	EnvDatabaseURL  = "DATABASE_URL"
	EnvDatabaseName = "DATABASE_NAME"
	EnvConfigFile   = "STUDY_API_CONFIG"
)

type Environment struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
}

type DatabaseConfig struct {
	URL  string `mapstructure:"url"`
	Name string `mapstructure:"name"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port" validate:"min=1,max=65535"`
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"min=1"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// Addr is the listen address for the HTTP server.
func (e Environment) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", e.Server.Port)
}

// Load reads the environment, and the YAML file named by STUDY_API_CONFIG
// when set. Environment variables win over the file.
func Load() (Environment, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("server.port", 8000)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	bindings := map[string]string{
		"database.url":           EnvDatabaseURL,
		"database.name":          EnvDatabaseName,
		"server.port":            "PORT",
		"server.allowed_origins": "CORS_ALLOWED_ORIGINS",
		"log.level":              "LOG_LEVEL",
		"log.format":             "LOG_FORMAT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return Environment{}, fmt.Errorf("failed to bind %s environment variable: %w", env, err)
		}
	}

	if err := v.BindEnv("config_file", EnvConfigFile); err != nil {
		return Environment{}, fmt.Errorf("failed to bind %s environment variable: %w", EnvConfigFile, err)
	}
	if file := v.GetString("config_file"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Environment{}, fmt.Errorf("configuration file %s could not be read: %w", file, err)
		}
	}

	var env Environment
	if err := v.Unmarshal(&env); err != nil {
		return Environment{}, fmt.Errorf("invalid configuration format: %w", err)
	}
	env.Server.AllowedOrigins = splitOrigins(env.Server.AllowedOrigins)
	env.Log.Level = strings.ToLower(env.Log.Level)
	env.Log.Format = strings.ToLower(env.Log.Format)

	validate, trans, err := models.NewValidator("mapstructure")
	if err != nil {
		return Environment{}, fmt.Errorf("failed to create validator: %w", err)
	}
	if err := models.ValidateWith(validate, trans, env); err != nil {
		return Environment{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return env, nil
}

// splitOrigins accepts both a YAML list and a comma-separated env value.
func splitOrigins(in []string) []string {
	var out []string
	for _, item := range in {
		for _, o := range strings.Split(item, ",") {
			if o = strings.TrimSpace(o); o != "" {
				out = append(out, o)
			}
		}
	}
	return out
}
