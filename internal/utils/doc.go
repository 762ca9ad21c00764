// Package utils exposes reusable helpers consumed by multiple commands.
//
// It houses ConfigurationLoader and LoggerFactory abstractions that integrate
// Viper, environment variables, and zap logging for the CLI, the
// CommandContextAccessor that carries per-run values such as the run
// identifier, and OptionsValidator for struct-tag validation of command
// options.
package utils
