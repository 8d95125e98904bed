package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// App
	Port string
	Env  string

	// Catalog feed
	CatalogDBURL  string // HTTP location of the catalog SQLite database
	CatalogDBPath string // local path the database is downloaded to / read from

	// Nickname overrides feed
	OverridesURL  string // published spreadsheet (pubhtml) with override rows
	OverridesPath string // local CSV fallback, used when no URL is set

	// Refresh scheduling
	RefreshInterval time.Duration
	RefreshRetry    time.Duration

	// Discord
	DiscordBotToken string
	CommandPrefix   string

	// Graph mirror (optional Neo4j projection of the evolution graph)
	GraphMirrorEnabled bool
	Neo4jURI           string
	Neo4jUser          string
	Neo4jPassword      string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		CatalogDBURL:       getEnv("CATALOG_DB_URL", ""),
		CatalogDBPath:      getEnv("CATALOG_DB_PATH", "data/catalog.db"),
		OverridesURL:       getEnv("OVERRIDES_URL", ""),
		OverridesPath:      getEnv("OVERRIDES_PATH", ""),
		RefreshInterval:    time.Duration(getEnvInt("REFRESH_INTERVAL_MINUTES", 60)) * time.Minute,
		RefreshRetry:       time.Duration(getEnvInt("REFRESH_RETRY_SECONDS", 60)) * time.Second,
		DiscordBotToken:    getEnv("DISCORD_BOT_TOKEN", ""),
		CommandPrefix:      getEnv("COMMAND_PREFIX", "^"),
		GraphMirrorEnabled: getEnvBool("GRAPH_MIRROR_ENABLED", false),
		Neo4jURI:           getEnv("NEO4J_URI", "bolt://localhost:7687"),
		Neo4jUser:          getEnv("NEO4J_USER", "neo4j"),
		Neo4jPassword:      getEnv("NEO4J_PASSWORD", "password"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	if c.CatalogDBPath == "" {
		return fmt.Errorf("CATALOG_DB_PATH is required")
	}
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("REFRESH_INTERVAL_MINUTES must be positive")
	}
	if c.RefreshRetry <= 0 {
		return fmt.Errorf("REFRESH_RETRY_SECONDS must be positive")
	}
	if c.CommandPrefix == "" {
		return fmt.Errorf("COMMAND_PREFIX is required")
	}
	if c.GraphMirrorEnabled {
		if c.Neo4jURI == "" {
			return fmt.Errorf("NEO4J_URI is required when GRAPH_MIRROR_ENABLED is set")
		}
		if c.Neo4jUser == "" {
			return fmt.Errorf("NEO4J_USER is required when GRAPH_MIRROR_ENABLED is set")
		}
		if c.Neo4jPassword == "" {
			return fmt.Errorf("NEO4J_PASSWORD is required when GRAPH_MIRROR_ENABLED is set")
		}
	}
	// Discord token and feed URLs are optional for development; the loader
	// falls back to the local catalog path and overrides file
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		switch strings.ToLower(value) {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultValue
}
