package moneytxt

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Load resolves the ledger source from the configuration, reads it and
// decodes it. A local path takes precedence over the Dropbox token; with
// neither configured the load fails before any parsing begins.
func Load(cfg Config) (*Ledger, error) {
	text, err := readSource(cfg)
	if err != nil {
		return nil, err
	}
	ledger, err := DecodeLedger(strings.NewReader(text), cfg.MonthStartDay, cfg.WeeklyCategories)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger: %w", err)
	}
	return ledger, nil
}

// LoadFile decodes the ledger from a local file, ignoring the configured
// source but keeping the configured aggregation settings.
func LoadFile(path string, cfg Config) (*Ledger, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	ledger, err := DecodeLedger(strings.NewReader(string(content)), cfg.MonthStartDay, cfg.WeeklyCategories)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	return ledger, nil
}

func readSource(cfg Config) (string, error) {
	switch {
	case cfg.Path != "":
		log.Printf("loading ledger from %s", cfg.Path)
		content, err := os.ReadFile(cfg.Path)
		if err != nil {
			return "", fmt.Errorf("could not read ledger file %q: %w", cfg.Path, err)
		}
		return string(content), nil
	case cfg.DropboxToken != "":
		log.Println("loading ledger from Dropbox")
		return dropboxDownload(cfg.DropboxToken, dropboxLedgerPath)
	default:
		return "", fmt.Errorf("no ledger source configured: set %s or %s", EnvPath, EnvDropboxToken)
	}
}
