// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-settings-sync/internal/app"
	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/internal/utils"
	"github.com/MKhiriev/go-settings-sync/models"
	"github.com/go-chi/chi/v5"
)

// maxSettingsBodySize caps a PUT body.
const maxSettingsBodySize = 8 << 20

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID := chi.URLParam(r, userIDParam)

	record, err := h.services.SettingsService.GetSettings(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, record, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing settings response")
	}
}

func (h *Handler) putSettings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID := chi.URLParam(r, userIDParam)

	var bundle models.SettingsBundle
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSettingsBodySize))
	if err := decoder.Decode(&bundle); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	record, err := h.services.SettingsService.SaveSettings(r.Context(), userID, bundle)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, record, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing settings response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	mapped := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if mapped.status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", mapped.status).Msg("request failed")

	if mapped.code != "" {
		w.Header().Set(app.HeaderErrorCode, mapped.code)
	}
	http.Error(w, mapped.message, mapped.status)
}
