package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/reva-widget/internal/adapter"
	"github.com/MKhiriev/reva-widget/internal/settings"
)

var errorStatusMap = map[error]int{
	settings.ErrInvalidConfiguration: http.StatusBadRequest,
	adapter.ErrInvalidSparcPath:      http.StatusBadRequest,

	adapter.ErrSparcAPINotConfigured: http.StatusBadGateway,
	adapter.ErrInvalidSparcAPI:       http.StatusBadGateway,
	adapter.ErrSparcUnreachable:      http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
