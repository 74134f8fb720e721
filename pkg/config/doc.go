// Package config loads deploygen's layered configuration: embedded
// defaults, then an optional deploygen.toml in the working directory,
// then DEPLOYGEN_* environment variables. The result is read once at
// startup and treated as immutable.
package config
