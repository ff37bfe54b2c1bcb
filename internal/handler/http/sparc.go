package http

import (
	"net/http"

	"github.com/MKhiriev/reva-widget/internal/logger"
	"github.com/MKhiriev/reva-widget/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) proxySparc(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	resp, err := h.sparc.Get(r.Context(), chi.URLParam(r, "*"), r.URL.Query())
	if err != nil {
		log.Err(err).Msg("sparc request failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	w.WriteHeader(resp.StatusCode)
	if _, err = w.Write(resp.Body); err != nil {
		log.Err(err).Msg("error writing sparc response")
	}
}
