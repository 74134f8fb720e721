package config

// Config is deploygen's runtime configuration
type Config struct {
	// Components lists the applications deployed in full-stack mode,
	// in deployment order
	Components []string `koanf:"components"`

	// MarkerSuffix identifies template files awaiting rendering
	MarkerSuffix string `koanf:"marker_suffix"`

	// Logging holds logging configuration
	Logging LoggingConfig `koanf:"logging"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Verbosity is the default log verbosity; the -v flag takes precedence
	Verbosity int `koanf:"verbosity"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Components:   []string{"lambda"},
		MarkerSuffix: ".j2",
	}
}
