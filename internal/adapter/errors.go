package adapter

import "errors"

var (
	// ErrSparcAPINotConfigured means the settings hold no sparcApi value.
	ErrSparcAPINotConfigured = errors.New("sparc api base url is not configured")
	// ErrInvalidSparcAPI means sparcApi is not an absolute http(s) URL.
	ErrInvalidSparcAPI = errors.New("invalid sparc api base url")
	// ErrInvalidSparcPath means the requested path would leave the base URL.
	ErrInvalidSparcPath = errors.New("sparc path escapes the base url")
	// ErrSparcUnreachable wraps transport failures talking to sparc.
	ErrSparcUnreachable = errors.New("sparc api unreachable")
)
