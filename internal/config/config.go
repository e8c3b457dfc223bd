package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/samber/lo"

	"github.com/zgpcy/fractime/internal/render"
	"github.com/zgpcy/fractime/internal/words"
)

// Default values
const (
	DefaultLanguage = words.English
	DefaultFormat   = render.Words
	DefaultLogLevel = "warn"

	// localePrefixLen is how much of $LANG names the language, e.g. "de" in "de_DE.UTF-8".
	localePrefixLen = 2
)

// Format aliases accepted on the command line and in FRACTIME_FORMAT.
var (
	wordsAliases   = []string{"w", "words", "Wörter", "wörter"}
	numbersAliases = []string{"n", "numbers", "Ziffern", "ziffern"}
	bothAliases    = []string{"b", "both", "beides"}
)

// Config represents the application configuration
type Config struct {
	Locale   string `env:"LANG"`
	Lang     string `env:"FRACTIME_LANG"`
	Format   string `env:"FRACTIME_FORMAT"`
	LogLevel string `env:"FRACTIME_LOG_LEVEL"`
}

// Load reads the environment and applies defaults. Command-line flags are
// layered on top by the caller.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("environment variable error: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults sets default values for configuration
func applyDefaults(cfg *Config) {
	if cfg.Lang == "" {
		cfg.Lang = localeLanguage(cfg.Locale)
	}
	if cfg.Format == "" {
		cfg.Format = string(DefaultFormat)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}

// localeLanguage takes the language part of a POSIX locale such as "de_DE.UTF-8".
func localeLanguage(locale string) string {
	if len(locale) < localePrefixLen {
		return string(DefaultLanguage)
	}
	return locale[:localePrefixLen]
}

// Language returns the configured language after normalisation.
func (c *Config) Language() words.Language {
	return NormalizeLanguage(c.Lang)
}

// OutputFormat returns the configured format after normalisation.
func (c *Config) OutputFormat() render.Format {
	return NormalizeFormat(c.Format)
}

// NormalizeLanguage maps a language code onto a supported language.
// Only German has its own table; every other code is read as English.
func NormalizeLanguage(code string) words.Language {
	if words.Language(code) == words.German {
		return words.German
	}
	return DefaultLanguage
}

// NormalizeFormat maps a format alias onto a Format. Unknown aliases fall
// back to words instead of failing.
func NormalizeFormat(code string) render.Format {
	switch {
	case lo.Contains(numbersAliases, code):
		return render.Numbers
	case lo.Contains(bothAliases, code):
		return render.Both
	case lo.Contains(wordsAliases, code):
		return render.Words
	default:
		return DefaultFormat
	}
}

// IsKnownLanguage reports whether code names a language without falling back.
func IsKnownLanguage(code string) bool {
	return lo.Contains(words.Languages(), words.Language(code))
}

// IsKnownFormat reports whether code is one of the accepted format aliases.
func IsKnownFormat(code string) bool {
	return lo.Contains(wordsAliases, code) ||
		lo.Contains(numbersAliases, code) ||
		lo.Contains(bothAliases, code)
}
