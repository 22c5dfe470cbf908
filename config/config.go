package config

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
)

// Config holds everything the engine consults but never hardcodes: the tag
// and location enumerations, the two safety term lists, and the fixed
// advisory messages. Injecting it keeps the scanner and store testable with
// custom term sets.
type Config struct {
	Tags      []string
	Locations []string

	CrisisTerms []string
	BannedTerms []string

	CrisisMessage     string
	ModerationWarning string

	// ScanComments extends the banned-terms check to comment text. The
	// original prototype skipped comments entirely; see AddComment.
	ScanComments bool

	LogLevel string
}

// Default returns the production configuration.
func Default() *Config {
	return &Config{
		Tags: []string{
			"#Stress",
			"#Classes",
			"#Relationships",
			"#Athletes",
			"#Sleep",
			"#ProvidenceLife",
			"#Gratitude",
			"#Resources",
		},
		Locations: []string{
			"PC Campus (Geofence Mock)",
			"Providence City (Geofence Mock)",
		},
		CrisisTerms: []string{
			"suicide",
			"kill myself",
			"hurt myself",
			"overdose",
			"end it",
			"can't go on",
			"self-harm",
			"cutting",
		},
		BannedTerms: []string{
			"doxx",
			"address is",
			"phone is",
			"hate",
			"slur",
			"kys",
		},
		CrisisMessage:     "If you're in immediate distress, please reach out: 988 (24/7), PC After-Hours Counseling (press 2), or 911. You matter.",
		ModerationWarning: "Please avoid sharing personal info or harmful language. Let's keep this space safe.",
		ScanComments:      true,
		LogLevel:          "info",
	}
}

// Load builds a config from the defaults plus environment overrides.
func Load() (*Config, error) {
	cfg := Default()
	cfg.ScanComments = getEnvBool("FEEDCORE_SCAN_COMMENTS", cfg.ScanComments)
	cfg.LogLevel = getEnv("FEEDCORE_LOG_LEVEL", cfg.LogLevel)

	if path := os.Getenv("FEEDCORE_TERMS_FILE"); path != "" {
		if err := cfg.LoadTermsFromFileJSON(path); err != nil {
			return nil, fmt.Errorf("loading term lists from %v: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the invariants the engine relies on.
func (c *Config) Validate() error {
	if len(c.Tags) == 0 {
		return fmt.Errorf("at least one tag is required")
	}
	if len(c.Locations) == 0 {
		return fmt.Errorf("at least one location is required")
	}
	if c.CrisisMessage == "" {
		return fmt.Errorf("crisis message is required")
	}
	if c.ModerationWarning == "" {
		return fmt.Errorf("moderation warning is required")
	}
	return nil
}

// HasTag reports whether tag is in the configured tag set.
func (c *Config) HasTag(tag string) bool {
	return slices.Contains(c.Tags, tag)
}

// HasLocation reports whether loc is in the configured location set.
func (c *Config) HasLocation(loc string) bool {
	return slices.Contains(c.Locations, loc)
}

// SlogLevel maps LogLevel onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
