// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/lucashmv/bolao-mega/cliparse"
	"github.com/lucashmv/bolao-mega/generator"
	"github.com/lucashmv/bolao-mega/middleware"
	"github.com/lucashmv/bolao-mega/models"
)

const maxPreviewCount = 100

type AdminHandler struct {
	cfg cliparse.Config
}

func NewAdminHandler(cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{cfg: cfg}
}

// Verify handles POST /admin/verify
// Compares the submitted password against the configured admin gate.
// This is a UI affordance for the admin pages, not an access-control
// boundary; nothing server-side depends on the result.
func (h *AdminHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req models.AdminVerifyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AdminVerifyResponse{
		Valid: req.Password != "" && req.Password == h.cfg.AdminPassword,
	})
}

// Preview handles GET /generator/preview
// Generates combinations without persisting anything, so the admin UI
// can show a candidate set before creating the pool.
func (h *AdminHandler) Preview(w http.ResponseWriter, r *http.Request) {
	count := defaultGameCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxPreviewCount {
			middleware.ErrorResponse(w, http.StatusBadRequest, "count must be between 1 and 100")
			return
		}
		count = parsed
	}

	middleware.JSONResponse(w, http.StatusOK, models.PreviewResponse{
		Games: generator.Pool(generator.NewRand(), count),
	})
}
