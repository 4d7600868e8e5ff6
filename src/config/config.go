package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	ServerHost     string   `yaml:"server_host"`
	DBDriver       string   `yaml:"db_driver"`
	DBDSN          string   `yaml:"db_dsn"`
	ServerAPIKey   string   `yaml:"server_api_key"`
	JWTSecret      string   `yaml:"jwt_secret"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	AllowedHosts   []string `yaml:"allowed_hosts"`
	TimeZone       string   `yaml:"timezone"`
	LogLevel       string   `yaml:"log_level"`
	GinMode        string   `yaml:"gin_mode"`

	// Only read by the seed command
	OperatorPassword string `yaml:"operator_password"`
	StatsPassword    string `yaml:"stats_password"`
}

var defaultAllowedOrigins = []string{
	"https://htmleditor.in",
	"https://nicaexpressway.github.io",
	"https://nicaexpressway.pages.dev",
	"https://nicaexpressway.netlify.app",
}

var defaultAllowedHosts = []string{
	"nicaexpressway-iiw8.onrender.com",
	"nicaexpressway.github.io",
	"nicaexpressway.pages.dev",
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		ServerHost:     ":8080",
		DBDriver:       "postgres",
		AllowedOrigins: append([]string(nil), defaultAllowedOrigins...),
		AllowedHosts:   append([]string(nil), defaultAllowedHosts...),
		TimeZone:       "America/New_York",
		LogLevel:       "info",
	}
}

// Load reads the .env file (if any), an optional YAML overlay named by
// CONFIG_FILE, and finally the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadYAML(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	list := func(key string, dst *[]string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = SplitList(v)
		}
	}

	str("SERVER_HOST", &c.ServerHost)
	str("DB_DRIVER", &c.DBDriver)
	str("DB_DSN", &c.DBDSN)
	str("SERVER_API_KEY", &c.ServerAPIKey)
	str("JWT_SECRET", &c.JWTSecret)
	list("ALLOWED_ORIGINS", &c.AllowedOrigins)
	list("ALLOWED_HOSTS", &c.AllowedHosts)
	str("APP_TIMEZONE", &c.TimeZone)
	str("LOG_LEVEL", &c.LogLevel)
	str("GIN_MODE", &c.GinMode)
	str("OPERATOR_PASSWORD", &c.OperatorPassword)
	str("STATS_PASSWORD", &c.StatsPassword)
}

// Validate checks the values that cannot be defaulted
func (c *Config) Validate() error {
	c.DBDriver = strings.ToLower(c.DBDriver)
	switch c.DBDriver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.DBDSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	return nil
}

// SplitList splits a comma separated list, dropping blanks
func SplitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
