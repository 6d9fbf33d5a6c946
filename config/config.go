package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Env string

const (
	Env_Test = "test"
	Env_Dev  = "dev"
	Env_Prod = "production"
)

type Config struct {
	// server
	ApiServerPort string `env:"APISERVER_PORT" envDefault:"3000"`
	ApiServerHost string `env:"APISERVER_HOST"`

	// DB
	DatabaseName     string `env:"DB_NAME"`
	DatabaseHost     string `env:"DB_HOST"`
	DatabaseUser     string `env:"DB_USER"`
	DatabasePassword string `env:"DB_PASSWORD"`
	DatabasePort     string `env:"DB_PORT"`

	// Test DB
	DatabasePortTest string `env:"DB_PORT_TEST"`

	// Redis
	RedisURL  string `env:"REDIS_URL"`
	RedisPort string `env:"REDIS_PORT"`
	RedisHost string `env:"REDIS_HOST"`

	// app
	AppName       string `env:"APP_NAME" envDefault:"github-wrapped"`
	AppEnv        Env    `env:"APP_ENV" envDefault:"dev"`
	ProjectRoot   string `env:"PROJECT_ROOT"`
	CorsWhiteList string `env:"CORS_WHITELIST"`
	WrappedYear   int    `env:"WRAPPED_YEAR" envDefault:"2025"`

	// Github
	GithubBaseUrl    string `env:"GITHUB_BASE_URL" envDefault:"https://api.github.com/"`
	GithubGraphQLUrl string `env:"GITHUB_GRAPHQL_URL" envDefault:"https://api.github.com/graphql"`
	GithubToken      string `env:"GITHUB_TOKEN"`
	GithubMaxPages   int    `env:"GITHUB_MAX_PAGES" envDefault:"50"`

	// Payments
	DonationProductID string `env:"DONATION_PRODUCT_ID" envDefault:"pdt_utV5Od6d2mwisWqSUciJu"`
	WebhookSecret     string `env:"DODO_WEBHOOK_SECRET"`

	// AI
	AIBaseUrl     string  `env:"AI_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
	AIApiKey      string  `env:"OPENROUTER_API_KEY"`
	AIModelID     string  `env:"AI_MODEL_ID" envDefault:"mistralai/mistral-7b-instruct"`
	AITemperature float32 `env:"AI_TEMPERATURE" envDefault:"0.9"`
	AIMaxTokens   int     `env:"AI_MAX_TOKENS" envDefault:"1200"`
	AIReferer     string  `env:"AI_REFERER" envDefault:"https://githubwrapped01.vercel.app/"`

	// tasks
	CronFile string `env:"CRON_FILE" envDefault:"./cron.yaml"`
}

// New loads a .env file outside production and parses the environment into a Config.
func New() (*Config, error) {
	if os.Getenv("APP_ENV") != Env_Prod {
		// a missing .env is fine, real environments set variables directly
		_ = godotenv.Load()
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return &cfg, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) DatabaseUrl() string {
	port := c.DatabasePort

	if c.AppEnv == Env_Test {
		port = c.DatabasePortTest
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseHost,
		port,
		c.DatabaseName,
	)
}

func (c *Config) RedisAddress() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// GetRedisURL prefers REDIS_URL and falls back to host and port.
func (c *Config) GetRedisURL() string {
	if c.RedisURL != "" {
		return c.RedisURL
	}
	return fmt.Sprintf("redis://%s", c.RedisAddress())
}

// RedisEnabled reports whether any redis location was configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

func (c *Config) GetAppEnv() Env {
	return c.AppEnv
}

func (c *Config) GetApiServerHost() string {
	return c.ApiServerHost
}

func (c *Config) GetApiServerPort() string {
	return c.ApiServerPort
}

func (c *Config) GetGithubBaseUrl() string {
	return c.GithubBaseUrl
}

func (c *Config) CorsOrigins() []string {
	var origins []string
	for _, s := range strings.Split(c.CorsWhiteList, ",") {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// WrappedYearStart is the first instant of the wrapped year in UTC.
func (c *Config) WrappedYearStart() time.Time {
	return time.Date(c.WrappedYear, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// WrappedYearEnd is the last second of the wrapped year in UTC.
func (c *Config) WrappedYearEnd() time.Time {
	return time.Date(c.WrappedYear, time.December, 31, 23, 59, 59, 0, time.UTC)
}
