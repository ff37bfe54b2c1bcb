package config

// validate checks the merged config before the host starts.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Sparc.RequestTimeout < 0 {
		return ErrNegativeTimeout
	}

	return nil
}
