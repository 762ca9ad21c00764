// Package cli constructs the tabkit command-line interface, wiring the Cobra
// command hierarchy, the Viper-backed configuration loader with its embedded
// defaults, and zap structured logging for the report and merge commands.
package cli
