package moneytxt

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables configuring where the ledger lives and how it is
// aggregated.
const (
	EnvPath         = "MONEY_TXT_PATH"
	EnvDropboxToken = "MONEY_TXT_DROPBOX_TOKEN"
	EnvMonthStart   = "MONEY_TXT_MONTH_START"
	EnvWeekly       = "MONEY_TXT_WEEKLY_CATEGORIES"
	EnvCurrency     = "MONEY_TXT_CURRENCY"
)

// Config holds the ledger source and aggregation settings.
type Config struct {
	Path         string // local ledger file; takes precedence over Dropbox
	DropboxToken string // Dropbox access token for the remote ledger

	MonthStartDay    int          // day of month anchoring monthly windows
	WeeklyCategories []Categories // category prefixes in the weekly report
	Currency         string       // display currency for rendered reports
}

// LoadConfig builds a Config from the environment.
func LoadConfig() (Config, error) {
	cfg := Config{
		Path:          os.Getenv(EnvPath),
		DropboxToken:  os.Getenv(EnvDropboxToken),
		MonthStartDay: 1,
		Currency:      getEnv(EnvCurrency, "EUR"),
	}
	if v := os.Getenv(EnvMonthStart); v != "" {
		day, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvMonthStart, v, err)
		}
		cfg.MonthStartDay = day
	}
	cfg.WeeklyCategories = ParseWeeklyCategories(os.Getenv(EnvWeekly))
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the aggregation settings. The ledger source is only
// checked at load time, so that commands working on an explicit file still
// run without any environment.
func (c Config) Validate() error {
	if c.MonthStartDay < 1 || c.MonthStartDay > 28 {
		return fmt.Errorf("invalid month start day %d: must be between 1 and 28", c.MonthStartDay)
	}
	return nil
}

// ParseWeeklyCategories parses a ';'-separated list of category-path
// prefixes, e.g. "food,groceries;cafe".
func ParseWeeklyCategories(s string) []Categories {
	var result []Categories
	for _, part := range strings.Split(s, ";") {
		if c := ParseCategories(part); len(c) > 0 {
			result = append(result, c)
		}
	}
	return result
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
