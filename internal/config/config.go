package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config contains runtime settings for the job browser servers and CLI
type Config struct {
	LogLevel string
	Host     string // default 0.0.0.0
	Port     string // default PORT env or 8080
	Jobs     struct {
		SourceURL    string // http(s) URL, file:// URL or plain path of the jobs feed
		PageSize     int
		FetchTimeout time.Duration
	}
	// Neo4j is optional; when URI is set the graph replaces the feed as job source
	Neo4j struct {
		URI      string
		Username string
		Password string
		Database string
	}
	Sheets struct {
		CredentialsPath string
	}
}

// Load populates config from environment variables, reading a .env file first when present
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		LogLevel: "info",
		Host:     "0.0.0.0",
		Port:     "8080",
	}
	cfg.Jobs.SourceURL = "./data.json"
	cfg.Jobs.PageSize = 5
	cfg.Jobs.FetchTimeout = 10 * time.Second

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("MCP_HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	if v := os.Getenv("JOBS_SOURCE_URL"); v != "" {
		cfg.Jobs.SourceURL = v
	}

	if v := os.Getenv("JOBS_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("invalid JOBS_PAGE_SIZE %q: must be a positive integer", v)
		}
		cfg.Jobs.PageSize = n
	}

	if v := os.Getenv("JOBS_FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return cfg, fmt.Errorf("invalid JOBS_FETCH_TIMEOUT %q: must be a positive duration", v)
		}
		cfg.Jobs.FetchTimeout = d
	}

	cfg.Neo4j.URI = os.Getenv("NEO4J_URI")
	cfg.Neo4j.Username = os.Getenv("NEO4J_USERNAME")
	cfg.Neo4j.Password = os.Getenv("NEO4J_PASSWORD")
	cfg.Neo4j.Database = os.Getenv("NEO4J_DATABASE")

	cfg.Sheets.CredentialsPath = os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH")

	if cfg.Neo4j.URI == "" {
		return cfg, nil
	}

	var missingVars []string

	if cfg.Neo4j.Username == "" {
		missingVars = append(missingVars, "NEO4J_USERNAME")
	}

	if cfg.Neo4j.Password == "" {
		missingVars = append(missingVars, "NEO4J_PASSWORD")
	}

	if len(missingVars) > 0 {
		return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	return cfg, nil
}

// UseGraph reports whether jobs come from Neo4j instead of the feed
func (c Config) UseGraph() bool {
	return c.Neo4j.URI != ""
}
