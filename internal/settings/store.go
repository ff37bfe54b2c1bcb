package settings

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sync"

	"github.com/MKhiriev/reva-widget/internal/logger"
)

// Store mediates every read and write of one configuration record.
type Store struct {
	mu      sync.RWMutex
	current Settings

	logger *logger.Logger
}

// NewStore returns a store whose current record is a copy of defaults.
func NewStore(defaults Settings, l *logger.Logger) *Store {
	if l == nil {
		l = logger.Nop()
	}

	return &Store{
		current: defaults.Clone(),
		logger:  l,
	}
}

// Configure merges opts into the current record. Keys in opts overwrite,
// keys absent from opts are kept. An empty opts leaves the record as is.
func (s *Store) Configure(opts Options) {
	s.mu.Lock()
	s.current = merge(s.current, opts)
	l := s.logger
	s.mu.Unlock()

	l.Debug().
		Strs("keys", slices.Sorted(maps.Keys(opts))).
		Msg("settings configured")
}

// ConfigureAny is Configure for loosely typed input such as a decoded JSON
// body. Any map keyed by strings is accepted, whatever its value type or type
// name. Anything else is rejected with ErrInvalidConfiguration.
func (s *Store) ConfigureAny(v any) error {
	opts, err := toOptions(v)
	if err != nil {
		s.log().Warn().Err(err).Str("type", fmt.Sprintf("%T", v)).Msg("rejected configuration")
		return err
	}

	s.Configure(opts)
	return nil
}

// UseConfig returns a copy of the current record. Mutating the copy does not
// affect the store.
func (s *Store) UseConfig() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current.Clone()
}

// SetLogger replaces the logger used for merge and rejection entries.
// A nil l discards them.
func (s *Store) SetLogger(l *logger.Logger) {
	if l == nil {
		l = logger.Nop()
	}

	s.mu.Lock()
	s.logger = l
	s.mu.Unlock()
}

func (s *Store) log() *logger.Logger {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.logger
}

func toOptions(v any) (Options, error) {
	switch opts := v.(type) {
	case Options:
		return opts, nil
	case Settings:
		return Options(opts), nil
	case map[string]any:
		return Options(opts), nil
	case map[string]string:
		out := make(Options, len(opts))
		for k, val := range opts {
			out[k] = val
		}
		return out, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidConfiguration, v)
	}

	out := make(Options, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, nil
}
