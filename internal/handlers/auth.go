// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON API handlers for the template
// service.
package handlers

import (
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/Abrar408/powerpresent-templates/internal/middleware"
	"github.com/Abrar408/powerpresent-templates/internal/models"
	"github.com/Abrar408/powerpresent-templates/internal/session"
)

// UserFinder looks up accounts by email. A nil result with a nil error
// means no such account.
type UserFinder interface {
	FindByEmail(email string) (*models.User, error)
}

// Auth groups the authentication HTTP handlers.
type Auth struct {
	users    UserFinder
	sessions *session.Store
}

// NewAuth creates a new Auth handler group.
func NewAuth(users UserFinder, sessions *session.Store) *Auth {
	return &Auth{users: users, sessions: sessions}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks credentials and issues a bearer token.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := a.users.FindByEmail(req.Email)
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "an unexpected error occurred")
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := a.sessions.Create(r.Context(), &session.Data{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        string(user.Role),
	})
	if err != nil {
		slog.Error("session create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "an unexpected error occurred")
		return
	}

	slog.Info("user logged in", "user", user.ID, "email", user.Email)
	writeData(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  user,
	})
}

// Logout revokes the caller's bearer token.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.BearerToken(r)
	if token != "" {
		if err := a.sessions.Delete(r.Context(), token); err != nil {
			slog.Warn("session delete failed", "error", err)
		}
	}
	writeData(w, http.StatusOK, map[string]string{"message": "logged out"})
}
