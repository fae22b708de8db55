package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Environment holds process-level defaults read from YIELDCALC_* variables
type Environment struct {
	Locale string `env:"YIELDCALC_LOCALE" envDefault:"en-US"`
	Format string `env:"YIELDCALC_FORMAT" envDefault:"table"`
	Debug  bool   `env:"YIELDCALC_DEBUG" envDefault:"false"`
}

// LoadEnvironment parses Environment from the process environment
func LoadEnvironment() (Environment, error) {
	var e Environment
	if err := env.Parse(&e); err != nil {
		return Environment{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
