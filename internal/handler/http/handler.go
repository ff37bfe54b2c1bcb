package http

import (
	"github.com/MKhiriev/reva-widget/internal/adapter"
	"github.com/MKhiriev/reva-widget/internal/logger"
	"github.com/MKhiriev/reva-widget/models"
)

// maxConfigBody caps PATCH /api/config bodies.
const maxConfigBody = 1 << 20

// Handler is the HTTP transport of the widget host.
//
// It exposes the settings record for reading and merging, proxies widget
// traffic to the sparc service and reports build information. One instance
// is created at startup and its router is mounted by the server.
type Handler struct {
	// store holds the settings record served by /api/config.
	store SettingsStore
	// sparc forwards /api/sparc/* requests to the configured base URL.
	sparc adapter.SparcAdapter

	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// NewHandler constructs a [Handler].
//
// Parameters:
//   - store: settings record; hosts pass settings.Default() so HTTP merges and
//     package-level calls act on the same record.
//   - sparc: adapter used by the sparc proxy route.
//   - buildInfo: values reported by GET /api/version.
//   - logger: structured logger for transport diagnostics.
func NewHandler(store SettingsStore, sparc adapter.SparcAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		store:     store,
		sparc:     sparc,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
