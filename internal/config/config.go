package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration. Values come from an optional
// YAML file overridden by environment variables.
type Config struct {
	Host string `yaml:"host" validate:"required"`
	Port string `yaml:"port" validate:"required"`

	PGHost     string `yaml:"pg_host" validate:"required"`
	PGPort     string `yaml:"pg_port" validate:"required"`
	PGDB       string `yaml:"pg_db" validate:"required"`
	PGUser     string `yaml:"pg_user" validate:"required"`
	PGPassword string `yaml:"pg_password" validate:"required"`

	GoogleClientID     string `yaml:"google_client_id" validate:"required"`
	GoogleClientSecret string `yaml:"google_client_secret" validate:"required"`
	JWTSecret          string `yaml:"jwt_secret" validate:"required"`
	RedirectURI        string `yaml:"redirect_uri" validate:"required,url"`
	FrontRedirectURI   string `yaml:"front_redirect_uri" validate:"required,url"`
	SessionSecret      string `yaml:"session_secret" validate:"required"`

	TodoAPIBaseURL  string `yaml:"todo_api_base_url" validate:"required,url"`
	MovieAPIBaseURL string `yaml:"movie_api_base_url" validate:"required,url"`
	MovieAPIKey     string `yaml:"movie_api_key" validate:"required"`

	LogLevel     string `yaml:"log_level"`
	LogFile      string `yaml:"log_file"`
	DevMode      bool   `yaml:"dev_mode"`
	OtelEndpoint string `yaml:"otel_endpoint"`
}

// envOverrides maps environment variable names to config fields.
func (c *Config) envOverrides() map[string]*string {
	return map[string]*string{
		"API_HOST":             &c.Host,
		"API_PORT":             &c.Port,
		"POSTGRES_HOST":        &c.PGHost,
		"POSTGRES_PORT":        &c.PGPort,
		"POSTGRES_DB":          &c.PGDB,
		"POSTGRES_USER":        &c.PGUser,
		"POSTGRES_PASSWORD":    &c.PGPassword,
		"GOOGLE_CLIENT_ID":     &c.GoogleClientID,
		"GOOGLE_CLIENT_SECRET": &c.GoogleClientSecret,
		"JWT_SECRET_KEY":       &c.JWTSecret,
		"REDIRECT_URI":         &c.RedirectURI,
		"FRONT_REDIRECT_URI":   &c.FrontRedirectURI,
		"SESSION_SECRET":       &c.SessionSecret,
		"TODO_API_BASE_URL":    &c.TodoAPIBaseURL,
		"MOVIE_API_BASE_URL":   &c.MovieAPIBaseURL,
		"MOVIE_API_KEY":        &c.MovieAPIKey,
		"LOG_LEVEL":            &c.LogLevel,
		"LOG_FILE":             &c.LogFile,
		"OTEL_ENDPOINT":        &c.OtelEndpoint,
	}
}

// Load reads the configuration from the YAML file at path (skipped when the
// file does not exist), applies environment overrides, and validates the
// result.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Host:            "0.0.0.0",
		Port:            "8080",
		LogLevel:        "info",
		TodoAPIBaseURL:  "https://jsonplaceholder.typicode.com",
		MovieAPIBaseURL: "https://api.themoviedb.org/3",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	for key, field := range cfg.envOverrides() {
		if v := os.Getenv(key); v != "" {
			*field = v
		}
	}
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DevMode = true
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: invalid configuration: %w", err)
	}
	return cfg, nil
}

// DSN returns the Data Source Name for connecting to the PostgreSQL database.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.PGHost,
		c.PGUser,
		c.PGPassword,
		c.PGDB,
		c.PGPort,
	)
}

// Addr returns the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}
