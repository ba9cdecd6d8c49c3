// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/lucashmv/bolao-mega/auth"
	"github.com/lucashmv/bolao-mega/cliparse"
	"github.com/lucashmv/bolao-mega/generator"
	"github.com/lucashmv/bolao-mega/middleware"
	"github.com/lucashmv/bolao-mega/models"
)

const (
	defaultPoolTitle       = "Mega da Virada"
	defaultPoolDescription = "Bolão colaborativo"
	defaultGameCount       = 15
)

type PoolHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewPoolHandler(db *sql.DB, cfg cliparse.Config) *PoolHandler {
	return &PoolHandler{db: db, cfg: cfg}
}

// CreatePool handles POST /pools
// Creates a pool together with its full, fixed entry set. Games may be
// supplied by the client (the admin UI generates them for preview
// first) or generated server-side when only a count is given.
func (h *PoolHandler) CreatePool(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePoolRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	games := req.Games
	if len(games) > 0 {
		for _, game := range games {
			if err := models.ValidateNumbers(game); err != nil {
				middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
				return
			}
		}
	} else {
		count := req.Count
		if count <= 0 {
			count = defaultGameCount
		}
		games = generator.Pool(generator.NewRand(), count)
	}

	pool := models.Pool{
		ID:          auth.NewID(),
		Title:       req.Title,
		Description: req.Description,
		GroupKey:    req.GroupKey,
		CreatedAt:   time.Now(),
	}
	if pool.Title == "" {
		pool.Title = defaultPoolTitle
	}
	if pool.Description == "" {
		pool.Description = defaultPoolDescription
	}
	if pool.GroupKey == "" {
		pool.GroupKey = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}

	shareSlug, err := auth.GenerateShareSlug()
	if err != nil {
		slog.Error("failed to generate share slug", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create pool")
		return
	}
	pool.ShareSlug = shareSlug
	pool.ShareURL = h.cfg.BaseURL + "/bolao/" + shareSlug

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO pool (id, title, description, share_slug, group_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, pool.ID, pool.Title, pool.Description, pool.ShareSlug, pool.GroupKey, pool.CreatedAt)

	if err != nil {
		slog.Error("failed to insert pool", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create pool")
		return
	}

	entries := make([]models.Entry, 0, len(games))
	for _, game := range games {
		sorted := models.SortNumbers(game)
		encoded, err := models.EncodeNumbers(sorted)
		if err != nil {
			slog.Error("failed to encode numbers", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create pool")
			return
		}

		entry := models.Entry{
			ID:        auth.NewID(),
			PoolID:    pool.ID,
			Numbers:   sorted,
			CreatedAt: pool.CreatedAt,
		}

		_, err = tx.Exec(`
			INSERT INTO entry (id, pool_id, numbers, claimed, edited, owner_user_id, created_at)
			VALUES ($1, $2, $3, FALSE, FALSE, NULL, $4)
		`, entry.ID, entry.PoolID, encoded, entry.CreatedAt)

		if err != nil {
			slog.Error("failed to insert entry", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create pool")
			return
		}

		entries = append(entries, entry)
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create pool")
		return
	}

	slog.Info("pool created", "pool_id", pool.ID, "share_slug", pool.ShareSlug, "entries", len(entries))

	middleware.JSONResponse(w, http.StatusCreated, models.PoolWithEntries{
		Pool:    pool,
		Entries: entries,
	})
}

// ListPools handles GET /pools and GET /history
// Returns every pool, newest first, with entries and their owners.
func (h *PoolHandler) ListPools(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, title, description, share_slug, group_key, created_at
		FROM pool
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		slog.Error("failed to query pools", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	pools := []models.PoolWithEntries{}
	index := make(map[string]int)
	for rows.Next() {
		var pool models.Pool
		if err := rows.Scan(&pool.ID, &pool.Title, &pool.Description, &pool.ShareSlug, &pool.GroupKey, &pool.CreatedAt); err != nil {
			slog.Error("failed to scan pool", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		pool.ShareURL = h.cfg.BaseURL + "/bolao/" + pool.ShareSlug
		index[pool.ID] = len(pools)
		pools = append(pools, models.PoolWithEntries{Pool: pool, Entries: []models.Entry{}})
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate pools", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	entries, err := loadEntries(h.db, "")
	if err != nil {
		slog.Error("failed to query entries", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	for _, entry := range entries {
		if i, ok := index[entry.PoolID]; ok {
			pools[i].Entries = append(pools[i].Entries, entry)
		}
	}

	middleware.JSONResponse(w, http.StatusOK, pools)
}

// GetPool handles GET /pools/{slug}
// Resolves a share slug back to the pool, including entries and owners.
func (h *PoolHandler) GetPool(w http.ResponseWriter, r *http.Request) {
	shareSlug := r.PathValue("slug")
	if shareSlug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	var pool models.Pool
	err := h.db.QueryRow(`
		SELECT id, title, description, share_slug, group_key, created_at
		FROM pool
		WHERE share_slug = $1
	`, shareSlug).Scan(&pool.ID, &pool.Title, &pool.Description, &pool.ShareSlug, &pool.GroupKey, &pool.CreatedAt)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Pool not found")
		return
	}
	if err != nil {
		slog.Error("failed to query pool", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	pool.ShareURL = h.cfg.BaseURL + "/bolao/" + pool.ShareSlug

	entries, err := loadEntries(h.db, pool.ID)
	if err != nil {
		slog.Error("failed to query entries", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PoolWithEntries{
		Pool:    pool,
		Entries: entries,
	})
}

// DeletePool handles DELETE /pools/{slug}
// Deletes a pool and its entire entry set as a unit.
func (h *PoolHandler) DeletePool(w http.ResponseWriter, r *http.Request) {
	shareSlug := r.PathValue("slug")
	if shareSlug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	var poolID string
	err := h.db.QueryRow(`SELECT id FROM pool WHERE share_slug = $1`, shareSlug).Scan(&poolID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Pool not found")
		return
	}
	if err != nil {
		slog.Error("failed to query pool", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM entry WHERE pool_id = $1`, poolID); err != nil {
		slog.Error("failed to delete entries", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete pool")
		return
	}
	if _, err := tx.Exec(`DELETE FROM pool WHERE id = $1`, poolID); err != nil {
		slog.Error("failed to delete pool", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete pool")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete pool")
		return
	}

	slog.Info("pool deleted", "pool_id", poolID, "share_slug", shareSlug)

	middleware.JSONResponse(w, http.StatusOK, models.DeletePoolResponse{Success: true})
}

// ListPoolUsers handles GET /pools/{id}/users
// Returns the claimed entries of a pool with their owners' display
// info. Unknown pool ids yield an empty list rather than a 404.
func (h *PoolHandler) ListPoolUsers(w http.ResponseWriter, r *http.Request) {
	poolID := r.PathValue("id")
	if poolID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "pool id is required")
		return
	}

	entries, err := loadEntries(h.db, poolID)
	if err != nil {
		slog.Error("failed to query entries", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	claimed := []models.Entry{}
	for _, entry := range entries {
		if entry.OwnerUserID != nil {
			claimed = append(claimed, entry)
		}
	}

	middleware.JSONResponse(w, http.StatusOK, claimed)
}

const entrySelect = `
	SELECT e.id, e.pool_id, e.numbers, e.claimed, e.edited, e.owner_user_id, e.created_at,
	       u.id, u.name, u.phone_key, u.created_at
	FROM entry e
	LEFT JOIN app_user u ON u.id = e.owner_user_id
`

// loadEntries fetches entries with their owners, for one pool or - when
// poolID is empty - for all pools.
func loadEntries(db *sql.DB, poolID string) ([]models.Entry, error) {
	query := entrySelect + ` ORDER BY e.pool_id, e.created_at, e.id`
	args := []interface{}{}
	if poolID != "" {
		query = entrySelect + ` WHERE e.pool_id = $1 ORDER BY e.created_at, e.id`
		args = append(args, poolID)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner) (models.Entry, error) {
	var entry models.Entry
	var numbers string
	var ownerID, userID, userName, userPhone sql.NullString
	var userCreated sql.NullTime

	err := row.Scan(
		&entry.ID, &entry.PoolID, &numbers, &entry.Claimed, &entry.Edited, &ownerID, &entry.CreatedAt,
		&userID, &userName, &userPhone, &userCreated,
	)
	if err != nil {
		return models.Entry{}, err
	}

	entry.Numbers, err = models.DecodeNumbers(numbers)
	if err != nil {
		return models.Entry{}, err
	}

	if ownerID.Valid {
		owner := ownerID.String
		entry.OwnerUserID = &owner
	}
	if userID.Valid {
		entry.Owner = &models.User{
			ID:        userID.String,
			Name:      userName.String,
			Whatsapp:  userPhone.String,
			CreatedAt: userCreated.Time,
		}
	}

	return entry, nil
}
