package internal

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config     *Config
	configPath string
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithConfigPath names the file cfg was loaded from. When set, edits to
// that file are applied to the running server where possible.
func WithConfigPath(path string) Option {
	return func(a *application) {
		a.configPath = path
	}
}
