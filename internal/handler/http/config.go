package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/reva-widget/internal/logger"
	"github.com/MKhiriev/reva-widget/internal/utils"
)

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, h.store.UseConfig(), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing settings")
	}
}

func (h *Handler) patchConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var options any
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxConfigBody))
	if err := dec.Decode(&options); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if dec.More() {
		utils.WriteError(w, "expected a single JSON object", http.StatusBadRequest)
		return
	}

	if err := h.store.ConfigureAny(options); err != nil {
		log.Err(err).Msg("error configuring settings")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, h.store.UseConfig(), http.StatusOK); err != nil {
		log.Err(err).Msg("error writing settings")
	}
}
