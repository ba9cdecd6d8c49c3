// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lucashmv/bolao-mega/models"
	"github.com/lucashmv/bolao-mega/testutil"
)

func TestAdminVerify(t *testing.T) {
	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(cfg)

	tests := []struct {
		name      string
		password  string
		wantValid bool
	}{
		{"correct password", cfg.AdminPassword, true},
		{"wrong password", "letmein", false},
		{"empty password", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/admin/verify", models.AdminVerifyRequest{
				Password: tt.password,
			}, nil)
			w := httptest.NewRecorder()
			handler.Verify(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.AdminVerifyResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Valid != tt.wantValid {
				t.Errorf("Expected valid=%v, got %v", tt.wantValid, resp.Valid)
			}
		})
	}
}

func TestPreview(t *testing.T) {
	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(cfg)

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedCount  int
	}{
		{"default count", "", http.StatusOK, 15},
		{"explicit count", "?count=3", http.StatusOK, 3},
		{"max count", "?count=100", http.StatusOK, 100},
		{"zero count", "?count=0", http.StatusBadRequest, 0},
		{"over max", "?count=101", http.StatusBadRequest, 0},
		{"not a number", "?count=abc", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/generator/preview"+tt.query, nil)
			w := httptest.NewRecorder()
			handler.Preview(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp models.PreviewResponse
			testutil.AssertJSON(t, w, &resp)
			if len(resp.Games) != tt.expectedCount {
				t.Errorf("Expected %d games, got %d", tt.expectedCount, len(resp.Games))
			}
			for _, game := range resp.Games {
				if len(game) != models.GameSize {
					t.Errorf("Expected %d numbers per game, got %d", models.GameSize, len(game))
				}
			}
		})
	}
}
