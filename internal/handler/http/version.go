package http

import (
	"net/http"

	"github.com/MKhiriev/reva-widget/internal/logger"
	"github.com/MKhiriev/reva-widget/internal/utils"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, h.buildInfo, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing build info")
	}
}
