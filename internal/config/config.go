package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all runtime settings for the service.
type Config struct {
	AppName   string `validate:"required"`
	DebugMode bool
	Env       string `validate:"required"`
	Host      string `validate:"required"`
	Port      int    `validate:"required,gt=0,lt=65536"`
	MongoURI  string `validate:"required"`
	MongoDB   string `validate:"required"`
}

// Addr returns the host:port pair the HTTP server binds to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

var validate = validator.New()

// Load reads settings from environment variables and an optional .env file in
// the working directory. Real environment variables take precedence over .env
// entries.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // optional .env file
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "first-steps")
	v.SetDefault("DEBUG_MODE", true)
	v.SetDefault("ENV", "local")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", 8000)

	cfg := &Config{
		AppName:   v.GetString("APP_NAME"),
		DebugMode: v.GetBool("DEBUG_MODE"),
		Env:       v.GetString("ENV"),
		Host:      v.GetString("HOST"),
		Port:      v.GetInt("PORT"),
		MongoURI:  v.GetString("MONGO_URI"),
		MongoDB:   v.GetString("MONGO_DB"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	if cfg.MongoDB == "" {
		return nil, fmt.Errorf("MONGO_DB is required")
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
