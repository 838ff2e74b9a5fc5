package cli

import "os"

type Config struct {
	Output string
	Locale string
	Debug  bool
}

// LoadConfig reads defaults from the environment. Flags still override these
// on the command line.
func LoadConfig() Config {
	cfg := Config{
		Output: os.Getenv("MASKCALC_OUTPUT"),
		Locale: os.Getenv("MASKCALC_LOCALE"),
		Debug:  os.Getenv("MASKCALC_DEBUG") != "",
	}

	if cfg.Output == "" {
		cfg.Output = "human"
	}
	if cfg.Locale == "" {
		cfg.Locale = "en"
	}
	return cfg
}
