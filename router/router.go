// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/lucashmv/bolao-mega/cliparse"
	"github.com/lucashmv/bolao-mega/handlers"
	"github.com/lucashmv/bolao-mega/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	poolHandler := handlers.NewPoolHandler(db, cfg)
	entryHandler := handlers.NewEntryHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authentication
	mux.HandleFunc("POST /auth/check", middleware.WithLogging(authHandler.CheckUser))
	mux.HandleFunc("POST /auth", middleware.WithLogging(authHandler.Authenticate))

	// Pool management
	mux.HandleFunc("POST /pools", middleware.WithLogging(poolHandler.CreatePool))
	mux.HandleFunc("GET /pools", middleware.WithLogging(poolHandler.ListPools))
	mux.HandleFunc("GET /pools/{slug}", middleware.WithLogging(poolHandler.GetPool))
	mux.HandleFunc("DELETE /pools/{slug}", middleware.WithLogging(poolHandler.DeletePool))
	mux.HandleFunc("GET /pools/{id}/users", middleware.WithLogging(poolHandler.ListPoolUsers))
	mux.HandleFunc("GET /history", middleware.WithLogging(poolHandler.ListPools))

	// Entry lifecycle (requires Bearer token)
	mux.HandleFunc("POST /entries/{id}/claim", middleware.WithLogging(entryHandler.Claim))
	mux.HandleFunc("PUT /entries/{id}", middleware.WithLogging(entryHandler.Edit))
	mux.HandleFunc("DELETE /entries/{id}/claim", middleware.WithLogging(entryHandler.Cancel))

	// Admin gate and generator preview
	mux.HandleFunc("POST /admin/verify", middleware.WithLogging(adminHandler.Verify))
	mux.HandleFunc("GET /generator/preview", middleware.WithLogging(adminHandler.Preview))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("bolao-mega API v1"))
	})

	return mux
}
