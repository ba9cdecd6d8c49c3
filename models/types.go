// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

type CheckUserRequest struct {
	Whatsapp string `json:"whatsapp"`
}

type AuthRequest struct {
	Name     string `json:"name"`
	Whatsapp string `json:"whatsapp"`
}

type CreatePoolRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	GroupKey    string  `json:"group_key"`
	Count       int     `json:"count"`
	Games       [][]int `json:"games"`
}

type EditEntryRequest struct {
	Numbers []int `json:"numbers"`
}

type AdminVerifyRequest struct {
	Password string `json:"password"`
}

// Response types

type CheckUserResponse struct {
	Exists bool  `json:"exists"`
	User   *User `json:"user,omitempty"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type DeletePoolResponse struct {
	Success bool `json:"success"`
}

type AdminVerifyResponse struct {
	Valid bool `json:"valid"`
}

type PreviewResponse struct {
	Games [][]int `json:"games"`
}

// Domain types

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Whatsapp  string    `json:"whatsapp"` // canonical phone key, digits with country code
	CreatedAt time.Time `json:"created_at"`
}

type Pool struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ShareSlug   string    `json:"share_slug"`
	ShareURL    string    `json:"share_url,omitempty"`
	GroupKey    string    `json:"group_key"`
	CreatedAt   time.Time `json:"created_at"`
}

type Entry struct {
	ID          string    `json:"id"`
	PoolID      string    `json:"pool_id"`
	Numbers     []int     `json:"numbers"`
	Claimed     bool      `json:"claimed"`
	Edited      bool      `json:"edited"`
	OwnerUserID *string   `json:"owner_user_id,omitempty"`
	Owner       *User     `json:"owner,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type PoolWithEntries struct {
	Pool    Pool    `json:"pool"`
	Entries []Entry `json:"entries"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
