package storefront

// Config is the application-level configuration.
type Config struct {
	Name     string `env:"APP_NAME" envDefault:"atelier"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:""`
}
