package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Data sources the catalog can be seeded from.
const (
	DataSourceFile     = "file"
	DataSourcePostgres = "postgres"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress  string `mapstructure:"SERVER_ADDRESS"`
	APIVersion     string `mapstructure:"API_VERSION"`
	DataSource     string `mapstructure:"DATA_SOURCE"`
	DataFile       string `mapstructure:"DATA_FILE"`
	DBSource       string `mapstructure:"DB_SOURCE"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	LogFormat      string `mapstructure:"LOG_FORMAT"`
	GinMode        string `mapstructure:"GIN_MODE"`
	SwaggerEnabled bool   `mapstructure:"SWAGGER_ENABLED"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":  ":8080",
	"API_VERSION":     "1",
	"DATA_SOURCE":     DataSourceFile,
	"DATA_FILE":       "data/foodtrucks.json",
	"DB_SOURCE":       "",
	"LOG_LEVEL":       "info",
	"LOG_FORMAT":      "json",
	"GIN_MODE":        "release",
	"SWAGGER_ENABLED": false,
}

// LoadConfig reads app.env from path. Environment variables override file values and defaults
// fill anything left unset.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return config, fmt.Errorf("config: failed to read config: %w", err)
	}
	if err := v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	if err := config.validate(); err != nil {
		return config, err
	}
	return config, nil
}

func (c *Config) validate() error {
	c.DataSource = strings.ToLower(strings.TrimSpace(c.DataSource))
	switch c.DataSource {
	case DataSourceFile:
		if c.DataFile == "" {
			return fmt.Errorf("config: DATA_FILE is required when DATA_SOURCE=%s", DataSourceFile)
		}
	case DataSourcePostgres:
		if c.DBSource == "" {
			return fmt.Errorf("config: DB_SOURCE is required when DATA_SOURCE=%s", DataSourcePostgres)
		}
	default:
		return fmt.Errorf("config: unknown DATA_SOURCE %q", c.DataSource)
	}

	c.APIVersion = strings.TrimPrefix(strings.TrimSpace(c.APIVersion), "v")
	if c.APIVersion == "" {
		return fmt.Errorf("config: API_VERSION is required")
	}
	return nil
}
