// Package config provides configuration management for fractime.
//
// Configuration sources (in order of precedence):
//  1. Command-line flags (applied by the cli package)
//  2. Environment variables
//  3. Default values
//
// Supported environment variables:
//   - LANG: POSIX locale; its first two characters pick the default language
//   - FRACTIME_LANG: Language code, overrides LANG (de, en)
//   - FRACTIME_FORMAT: Output format alias (words, numbers, both, ...)
//   - FRACTIME_LOG_LEVEL: Log level (debug, info, warn, error)
//
// Language and format codes are lenient. Anything other than "de" is read as
// English, and an unknown format alias is read as words. Neither case is an
// error.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//		log.Fatalf("Failed to load config: %v", err)
//	}
//
//	lines, err := render.Render(t, cfg.Language(), cfg.OutputFormat())
package config
