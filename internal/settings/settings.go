package settings

import "maps"

const (
	// KeySparcAPI is the record key holding the sparc service base URL.
	KeySparcAPI = "sparcApi"

	// DefaultSparcAPI is used when VITE_SPARC_API is not set.
	DefaultSparcAPI = "http://localhost:8000"
)

// Settings is the flat configuration record. Values are whatever the host
// passed in; nothing is validated.
type Settings map[string]any

// Options is a partial record merged into the current one by Configure.
type Options map[string]any

// SparcAPI returns the sparcApi value, or an empty string when it is missing
// or not a string.
func (s Settings) SparcAPI() string {
	v, _ := s[KeySparcAPI].(string)
	return v
}

// Get returns the value stored under key.
func (s Settings) Get(key string) (any, bool) {
	v, ok := s[key]
	return v, ok
}

// Clone returns a shallow copy. The copy of a nil record is an empty record.
func (s Settings) Clone() Settings {
	out := make(Settings, len(s))
	maps.Copy(out, s)
	return out
}

// merge returns base with every key of opts written over it. Neither argument
// is modified.
func merge(base Settings, opts Options) Settings {
	out := make(Settings, len(base)+len(opts))
	maps.Copy(out, base)
	maps.Copy(out, opts)
	return out
}
