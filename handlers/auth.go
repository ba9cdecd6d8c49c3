// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/lucashmv/bolao-mega/auth"
	"github.com/lucashmv/bolao-mega/cliparse"
	"github.com/lucashmv/bolao-mega/middleware"
	"github.com/lucashmv/bolao-mega/models"
	"github.com/lucashmv/bolao-mega/phone"
)

type AuthHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAuthHandler(db *sql.DB, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

// CheckUser handles POST /auth/check
// Reports whether a phone number is already registered.
func (h *AuthHandler) CheckUser(w http.ResponseWriter, r *http.Request) {
	var req models.CheckUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Whatsapp == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "whatsapp is required")
		return
	}

	phoneKey := phone.Normalize(req.Whatsapp)

	var user models.User
	err := h.db.QueryRow(`
		SELECT id, name, phone_key, created_at FROM app_user WHERE phone_key = $1
	`, phoneKey).Scan(&user.ID, &user.Name, &user.Whatsapp, &user.CreatedAt)

	if err == sql.ErrNoRows {
		middleware.JSONResponse(w, http.StatusOK, models.CheckUserResponse{Exists: false})
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CheckUserResponse{
		Exists: true,
		User:   &user,
	})
}

// Authenticate handles POST /auth
// Logs a user in by phone number, registering them on first contact,
// and returns a bearer token valid for 7 days.
func (h *AuthHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req models.AuthRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Whatsapp == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "whatsapp is required")
		return
	}

	phoneKey := phone.Normalize(req.Whatsapp)

	var user models.User
	err := h.db.QueryRow(`
		SELECT id, name, phone_key, created_at FROM app_user WHERE phone_key = $1
	`, phoneKey).Scan(&user.ID, &user.Name, &user.Whatsapp, &user.CreatedAt)

	if err == sql.ErrNoRows {
		// First contact: register
		if req.Name == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "name is required for registration")
			return
		}

		user = models.User{
			ID:        auth.NewID(),
			Name:      req.Name,
			Whatsapp:  phoneKey,
			CreatedAt: time.Now(),
		}

		_, err = h.db.Exec(`
			INSERT INTO app_user (id, name, phone_key, created_at)
			VALUES ($1, $2, $3, $4)
		`, user.ID, user.Name, user.Whatsapp, user.CreatedAt)

		if err != nil {
			slog.Error("failed to insert user", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register user")
			return
		}

		slog.Info("user registered", "user_id", user.ID, "name", user.Name)
	} else if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	token, err := auth.IssueToken(user.ID, user.Whatsapp, []byte(h.cfg.JWTSecret), auth.TokenTTL)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to authenticate")
		return
	}

	slog.Info("user authenticated", "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusOK, models.AuthResponse{
		Token: token,
		User:  user,
	})
}
