package settings

import (
	"github.com/MKhiriev/reva-widget/internal/logger"
)

var defaultStore, defaultLoadErr = newDefaultStore()

// newDefaultStore builds the process-wide store from the environment. When the
// environment cannot be read the store starts from DefaultSparcAPI and the
// error is kept so the host can report it once it has a logger.
func newDefaultStore() (*Store, error) {
	defaults, err := LoadDefaults()
	if err != nil {
		defaults = Settings{KeySparcAPI: DefaultSparcAPI}
	}

	return NewStore(defaults, logger.Nop()), err
}

// Default returns the process-wide store. Hosts hand it to every component
// that reads or writes settings so the process keeps a single record.
func Default() *Store {
	return defaultStore
}

// DefaultLoadError returns the error, if any, hit while reading the
// environment for the process-wide store. The store is usable either way.
func DefaultLoadError() error {
	return defaultLoadErr
}

// SetLogger attaches l to the process-wide store. Until it is called the
// store logs nothing.
func SetLogger(l *logger.Logger) {
	defaultStore.SetLogger(l)
}

// Configure merges opts into the process-wide record.
func Configure(opts Options) {
	defaultStore.Configure(opts)
}

// ConfigureAny merges loosely typed input into the process-wide record.
func ConfigureAny(v any) error {
	return defaultStore.ConfigureAny(v)
}

// UseConfig returns a copy of the process-wide record.
func UseConfig() Settings {
	return defaultStore.UseConfig()
}
