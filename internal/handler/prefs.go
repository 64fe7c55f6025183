package handler

import (
	"net/http"

	"github.com/passforge/passforge-go/internal/middleware"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

// PrefsHandler handles HTTP requests for saved generator preferences.
type PrefsHandler struct {
	service *service.PrefsService
}

// NewPrefsHandler creates a new PrefsHandler.
func NewPrefsHandler(svc *service.PrefsService) *PrefsHandler {
	return &PrefsHandler{service: svc}
}

// HandleGet handles GET /api/v1/prefs requests.
func (h *PrefsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	resp, err := h.service.Get(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleSave handles PUT /api/v1/prefs requests.
func (h *PrefsHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.PreferencesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Save(r.Context(), userID, req)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleReset handles DELETE /api/v1/prefs requests.
func (h *PrefsHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	if err := h.service.Reset(r.Context(), userID); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleGenerate handles POST /api/v1/generate/preset requests: generation
// seeded from the caller's saved preferences, with request fields
// overriding individual saved values.
func (h *PrefsHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.GenerateRequest
	if !decodeOptionalBody(w, r, &req) {
		return
	}

	resp, err := h.service.GenerateWithSaved(r.Context(), userID, req)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
