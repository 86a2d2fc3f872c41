package sharedstore

// DefaultStoreName is used for logging and metric labels when Config.StoreName is empty.
const DefaultStoreName = "default"

// Config describes a config for a SharedStore and its slot adapters
type Config struct {
	// Used for logging and metric labels
	StoreName string
	// Defaults to the package logger, see SetLogger
	Logger Logger
	// Defaults to a no-op provider
	MetricsProvider MetricsProvider
}

func (config *Config) setDefaults() {
	if config.StoreName == "" {
		config.StoreName = DefaultStoreName
	}
	if config.Logger == nil {
		config.Logger = logger
	}
	if config.MetricsProvider == nil {
		config.MetricsProvider = &noopMetricsProvider{}
	}
}

// WithDefaults returns a copy of config with empty fields filled in.
// A nil config yields the defaults.
func (config *Config) WithDefaults() *Config {
	result := &Config{}
	if config != nil {
		*result = *config
	}
	result.setDefaults()
	return result
}
