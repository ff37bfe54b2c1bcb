package settings

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envDefaults maps load-time environment overrides onto the default record.
type envDefaults struct {
	// SparcAPI overrides the default sparc base URL.
	// Env: VITE_SPARC_API
	SparcAPI string `env:"VITE_SPARC_API" envDefault:"http://localhost:8000"`
}

// LoadDefaults builds the initial record from the environment. An unset
// VITE_SPARC_API falls back to [DefaultSparcAPI].
func LoadDefaults() (Settings, error) {
	var cfg envDefaults
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("error getting settings env: %w", err)
	}

	return Settings{KeySparcAPI: cfg.SparcAPI}, nil
}
