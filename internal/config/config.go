package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Remote expense service
	APIBaseURL string
	UserID     int64

	// Local database
	SQLiteDBPath string

	// AMQP change events (optional; empty URL disables publishing)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Reconciler
	FetchInterval time.Duration

	// Display
	CurrencyCode string
	WeekStart    time.Weekday
}

func Load() *Config {
	return &Config{
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8000"),
		UserID:     getEnvInt64("USER_ID", 1),

		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/spendwise.db"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "spendwise"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "transaction_events"),

		FetchInterval: getEnvDuration("FETCH_INTERVAL", 5*time.Minute),

		CurrencyCode: getEnv("CURRENCY", "USD"),
		WeekStart:    getEnvWeekday("WEEK_START", time.Sunday),
	}
}

// Validate checks the configuration and returns all problems at once.
func (c *Config) Validate() error {
	var errs []string

	if c.APIBaseURL == "" {
		errs = append(errs, "API base URL cannot be empty")
	} else if u, err := url.Parse(c.APIBaseURL); err != nil {
		errs = append(errs, fmt.Sprintf("invalid API base URL '%s': %v", c.APIBaseURL, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs = append(errs, fmt.Sprintf("invalid API base URL scheme '%s': must be 'http' or 'https'", u.Scheme))
	}

	if c.UserID < 1 {
		errs = append(errs, fmt.Sprintf("invalid user id %d: must be at least 1", c.UserID))
	}

	if c.SQLiteDBPath == "" {
		errs = append(errs, "SQLite database path cannot be empty")
	} else {
		dir := filepath.Dir(c.SQLiteDBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errs = append(errs, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
				}
			}
		}
	}

	if c.AMQPURL != "" {
		if parsed, err := url.Parse(c.AMQPURL); err != nil {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsed.Scheme != "amqp" && parsed.Scheme != "amqps" {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsed.Scheme))
		}
		if c.AMQPExchange == "" {
			errs = append(errs, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errs = append(errs, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.FetchInterval < time.Second {
		errs = append(errs, fmt.Sprintf("invalid fetch interval %v: must be at least 1 second", c.FetchInterval))
	} else if c.FetchInterval > 24*time.Hour {
		errs = append(errs, fmt.Sprintf("invalid fetch interval %v: must be at most 24 hours", c.FetchInterval))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvWeekday(key string, defaultValue time.Weekday) time.Weekday {
	switch strings.ToLower(os.Getenv(key)) {
	case "monday":
		return time.Monday
	case "sunday":
		return time.Sunday
	case "":
		return defaultValue
	default:
		return defaultValue
	}
}
