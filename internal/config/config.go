package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

type Config struct {
	Port     string `koanf:"PORT"`
	LogLevel string `koanf:"LOG_LEVEL"`

	StorageDriver    string `koanf:"STORAGE_DRIVER"`
	PostgresAddress  string `koanf:"POSTGRES_ADDRESS"`
	PostgresPort     string `koanf:"POSTGRES_PORT"`
	PostgresDB       string `koanf:"POSTGRES_DB"`
	PostgresUsername string `koanf:"POSTGRES_USERNAME"`
	PostgresPassword string `koanf:"POSTGRES_PASSWORD"`

	SourceURL       string        `koanf:"SOURCE_URL"`
	SourceUserID    string        `koanf:"SOURCE_USER_ID"`
	SourceDataDate  string        `koanf:"SOURCE_DATA_DATE"`
	SubmissionURL   string        `koanf:"SUBMISSION_URL"`
	UpstreamTimeout time.Duration `koanf:"UPSTREAM_TIMEOUT"`

	AuthUsername     string        `koanf:"AUTH_USERNAME"`
	AuthPassword     string        `koanf:"AUTH_PASSWORD"`
	AuthPasswordHash string        `koanf:"AUTH_PASSWORD_HASH"`
	SessionTTL       time.Duration `koanf:"SESSION_TTL"`

	PageSize        int    `koanf:"PAGE_SIZE"`
	AccountName     string `koanf:"ACCOUNT_NAME"`
	WalletID        string `koanf:"WALLET_ID"`
	PeriodFrom      string `koanf:"PERIOD_FROM"`
	PeriodTo        string `koanf:"PERIOD_TO"`
	OperatorWorkers int    `koanf:"OPERATOR_WORKERS"`
}

func defaults() Config {
	// In all cases the default behavior should be for the docker compose setup
	return Config{
		Port:     "9446",
		LogLevel: "info",

		StorageDriver:    StorageDriverMemory,
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",

		SourceURL:       "https://hrmael4hnk.execute-api.ap-southeast-5.amazonaws.com/PEAK-DEV/",
		SourceUserID:    "amos_tsk",
		SourceDataDate:  "21-SEP-2025",
		SubmissionURL:   "https://hrmael4hnk.execute-api.ap-southeast-5.amazonaws.com/PEAK-DEV/",
		UpstreamTimeout: 30 * time.Second,

		AuthUsername: "peakAdmin",
		AuthPassword: "12345",
		SessionTTL:   24 * time.Hour,

		PageSize:        10,
		AccountName:     "Account Holder",
		WalletID:        "1000000818058552",
		PeriodFrom:      "2025-06-23",
		PeriodTo:        "2025-09-20",
		OperatorWorkers: 4,
	}
}

// ProcessEnvironmentVariables loads the configuration from the environment on top of the defaults.
func ProcessEnvironmentVariables() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", nil), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := defaults()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf", FlatPaths: true}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageDriverMemory, StorageDriverPostgres:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.PageSize < 1 {
		return fmt.Errorf("PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	if c.OperatorWorkers < 1 {
		return fmt.Errorf("OPERATOR_WORKERS must be positive, got %d", c.OperatorWorkers)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive, got %s", c.UpstreamTimeout)
	}
	if c.AuthUsername == "" {
		return fmt.Errorf("AUTH_USERNAME is required")
	}
	if c.AuthPassword == "" && c.AuthPasswordHash == "" {
		return fmt.Errorf("either AUTH_PASSWORD or AUTH_PASSWORD_HASH is required")
	}
	if _, err := url.ParseRequestURI(c.SourceURL); err != nil {
		return fmt.Errorf("invalid SOURCE_URL: %w", err)
	}
	if _, err := url.ParseRequestURI(c.SubmissionURL); err != nil {
		return fmt.Errorf("invalid SUBMISSION_URL: %w", err)
	}
	return nil
}

// PostgresDSN returns the lib/pq connection string.
func (c *Config) PostgresDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
