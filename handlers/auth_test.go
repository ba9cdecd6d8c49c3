// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lucashmv/bolao-mega/auth"
	"github.com/lucashmv/bolao-mega/models"
	"github.com/lucashmv/bolao-mega/testutil"
)

func TestCheckUser(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAuthHandler(conn, cfg)

	userID := testutil.CreateTestUser(t, conn, "Fernando", "5512981968688")

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.CheckUserResponse)
	}{
		{
			name:           "existing user by raw digits",
			requestBody:    models.CheckUserRequest{Whatsapp: "12981968688"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.CheckUserResponse) {
				if !resp.Exists {
					t.Error("Expected exists=true")
				}
				if resp.User == nil || resp.User.ID != userID {
					t.Errorf("Expected user %s, got %+v", userID, resp.User)
				}
			},
		},
		{
			name:           "existing user by formatted number",
			requestBody:    models.CheckUserRequest{Whatsapp: "(12) 98196-8688"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.CheckUserResponse) {
				if !resp.Exists {
					t.Error("Expected exists=true for formatted input")
				}
			},
		},
		{
			name:           "unknown user",
			requestBody:    models.CheckUserRequest{Whatsapp: "11999990000"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.CheckUserResponse) {
				if resp.Exists {
					t.Error("Expected exists=false")
				}
				if resp.User != nil {
					t.Errorf("Expected no user, got %+v", resp.User)
				}
			},
		},
		{
			name:           "missing whatsapp",
			requestBody:    models.CheckUserRequest{},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/auth/check", tt.requestBody, nil)
			w := httptest.NewRecorder()

			handler.CheckUser(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.checkResponse != nil {
				var resp models.CheckUserResponse
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestAuthenticate_Register(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAuthHandler(conn, cfg)

	req := testutil.MakeRequest("POST", "/auth", models.AuthRequest{
		Name:     "Sheila",
		Whatsapp: "(12) 99152-0844",
	}, nil)
	w := httptest.NewRecorder()

	handler.Authenticate(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AuthResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Token == "" {
		t.Fatal("Expected non-empty token")
	}
	if resp.User.Whatsapp != "5512991520844" {
		t.Errorf("Expected normalized phone key, got %q", resp.User.Whatsapp)
	}

	// Token must verify back to the new user
	userID, err := auth.VerifyToken(resp.Token, []byte(cfg.JWTSecret))
	if err != nil {
		t.Fatalf("Token did not verify: %v", err)
	}
	if userID != resp.User.ID {
		t.Errorf("Token user %q does not match response user %q", userID, resp.User.ID)
	}

	// User was persisted
	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM app_user WHERE phone_key = '5512991520844'`).Scan(&count); err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 user, got %d", count)
	}
}

func TestAuthenticate_ExistingUser(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAuthHandler(conn, cfg)

	userID := testutil.CreateTestUser(t, conn, "Vitor", "5511948780146")

	// No name needed for an existing number
	req := testutil.MakeRequest("POST", "/auth", models.AuthRequest{
		Whatsapp: "11948780146",
	}, nil)
	w := httptest.NewRecorder()

	handler.Authenticate(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AuthResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.User.ID != userID {
		t.Errorf("Expected user %s, got %s", userID, resp.User.ID)
	}
	if resp.User.Name != "Vitor" {
		t.Errorf("Expected name preserved, got %q", resp.User.Name)
	}
}

func TestAuthenticate_Validation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAuthHandler(conn, cfg)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
	}{
		{"missing whatsapp", models.AuthRequest{Name: "Lucas"}, http.StatusBadRequest},
		{"new number without name", models.AuthRequest{Whatsapp: "12982455955"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/auth", tt.requestBody, nil)
			w := httptest.NewRecorder()

			handler.Authenticate(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}
