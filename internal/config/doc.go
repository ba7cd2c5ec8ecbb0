// Package config loads and merges verdict configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (VERDICT_SCANNER, VERDICT_GROUND_TRUTH, etc.)
//  3. Config file ($XDG_CONFIG_HOME/verdict/config.yaml)
//  4. Built-in defaults
//
// Input file paths live here rather than as package constants so that the
// comparison entry point always receives them explicitly.
package config
