// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/lucashmv/bolao-mega/auth"
	"github.com/lucashmv/bolao-mega/cliparse"
	"github.com/lucashmv/bolao-mega/middleware"
	"github.com/lucashmv/bolao-mega/models"
)

type EntryHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewEntryHandler(db *sql.DB, cfg cliparse.Config) *EntryHandler {
	return &EntryHandler{db: db, cfg: cfg}
}

// requireUser authenticates the request's bearer token. On failure it
// writes the 401 response and returns false.
func (h *EntryHandler) requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, err := auth.UserIDFromRequest(r, []byte(h.cfg.JWTSecret))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authorized")
		return "", false
	}
	return userID, true
}

func (h *EntryHandler) loadEntry(entryID string) (models.Entry, error) {
	row := h.db.QueryRow(entrySelect+` WHERE e.id = $1`, entryID)
	return scanEntry(row)
}

// Claim handles POST /entries/{id}/claim
// Takes ownership of an open entry. The update is conditional on the
// entry still being open (or already owned by the caller), so of two
// concurrent claims exactly one wins and the loser sees the same
// "already claimed" error a late sequential claim would.
func (h *EntryHandler) Claim(w http.ResponseWriter, r *http.Request) {
	entryID := r.PathValue("id")
	if entryID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "entry id is required")
		return
	}

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	entry, err := h.loadEntry(entryID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Entry not found")
		return
	}
	if err != nil {
		slog.Error("failed to query entry", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if entry.Claimed && (entry.OwnerUserID == nil || *entry.OwnerUserID != userID) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Entry already claimed by another user")
		return
	}

	res, err := h.db.Exec(`
		UPDATE entry
		SET claimed = TRUE, owner_user_id = $1
		WHERE id = $2 AND (claimed = FALSE OR owner_user_id = $1)
	`, userID, entryID)

	if err != nil {
		slog.Error("failed to claim entry", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to claim entry")
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to claim entry")
		return
	}
	if affected == 0 {
		// A concurrent claim won between the read and the update.
		middleware.ErrorResponse(w, http.StatusBadRequest, "Entry already claimed by another user")
		return
	}

	updated, err := h.loadEntry(entryID)
	if err != nil {
		slog.Error("failed to reload entry", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("entry claimed", "entry_id", entryID, "user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, updated)
}

// Edit handles PUT /entries/{id}
// Replaces the numbers of an entry owned by the caller. Numbers are
// stored sorted ascending; duplicate values within the set are not
// rejected.
func (h *EntryHandler) Edit(w http.ResponseWriter, r *http.Request) {
	entryID := r.PathValue("id")
	if entryID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "entry id is required")
		return
	}

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req models.EditEntryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := models.ValidateNumbers(req.Numbers); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.loadEntry(entryID)
	if err != nil && err != sql.ErrNoRows {
		slog.Error("failed to query entry", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	// Missing entries collapse into the ownership failure.
	if err == sql.ErrNoRows || entry.OwnerUserID == nil || *entry.OwnerUserID != userID {
		middleware.ErrorResponse(w, http.StatusForbidden, "You do not have permission to edit this entry")
		return
	}

	sorted := models.SortNumbers(req.Numbers)
	encoded, err := models.EncodeNumbers(sorted)
	if err != nil {
		slog.Error("failed to encode numbers", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to edit entry")
		return
	}

	_, err = h.db.Exec(`
		UPDATE entry SET numbers = $1, edited = TRUE WHERE id = $2
	`, encoded, entryID)

	if err != nil {
		slog.Error("failed to edit entry", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to edit entry")
		return
	}

	updated, err := h.loadEntry(entryID)
	if err != nil {
		slog.Error("failed to reload entry", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("entry edited", "entry_id", entryID, "user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, updated)
}

// Cancel handles DELETE /entries/{id}/claim
// Releases the caller's claim, returning the entry to open. The
// numbers keep their last edited values; only the claim state resets.
func (h *EntryHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	entryID := r.PathValue("id")
	if entryID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "entry id is required")
		return
	}

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	entry, err := h.loadEntry(entryID)
	if err != nil && err != sql.ErrNoRows {
		slog.Error("failed to query entry", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if err == sql.ErrNoRows || entry.OwnerUserID == nil || *entry.OwnerUserID != userID {
		middleware.ErrorResponse(w, http.StatusForbidden, "You do not have permission to cancel this entry")
		return
	}

	_, err = h.db.Exec(`
		UPDATE entry SET claimed = FALSE, owner_user_id = NULL, edited = FALSE WHERE id = $1
	`, entryID)

	if err != nil {
		slog.Error("failed to cancel entry", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cancel entry")
		return
	}

	updated, err := h.loadEntry(entryID)
	if err != nil {
		slog.Error("failed to reload entry", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("entry claim canceled", "entry_id", entryID, "user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, updated)
}
