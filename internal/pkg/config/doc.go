// Package config loads and validates the settings of the ECB dispatch layer: logging and the
// backend/driver selection. Settings come from a YAML file or are assembled by the CLI from flags.
package config
