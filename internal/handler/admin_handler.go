package handler

import (
	"encoding/json"
	"net/http"

	"shopease/internal/auth"

	"github.com/rs/zerolog"
)

// AdminHandler handles the admin login check.
type AdminHandler struct {
	gate   *auth.Gate
	logger zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(gate *auth.Gate, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		gate:   gate,
		logger: logger.With().Str("handler", "admin").Logger(),
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Authenticated bool `json:"authenticated"`
}

// Login handles POST /api/admin/login requests. The gate only confirms or
// denies the shared secret; no session is created server-side.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid login data", h.logger)
		return
	}

	if !h.gate.Check(req.Password) {
		h.logger.Warn().Msg("admin login rejected")
		writeJSON(w, http.StatusUnauthorized, loginResponse{Authenticated: false})
		return
	}

	h.logger.Info().Msg("admin login accepted")
	writeJSON(w, http.StatusOK, loginResponse{Authenticated: true})
}
