package http

import "github.com/MKhiriev/reva-widget/internal/settings"

//go:generate mockgen -source=interfaces.go -destination=../../mock/settings_store_mock.go -package=mock

// SettingsStore is the part of *settings.Store the handlers need.
type SettingsStore interface {
	ConfigureAny(v any) error
	UseConfig() settings.Settings
}
