// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Abrar408/powerpresent-templates/internal/models"
)

type stubUserFinder struct {
	user *models.User
	err  error
}

func (s *stubUserFinder) FindByEmail(email string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.user != nil && s.user.Email == email {
		return s.user, nil
	}
	return nil, nil
}

func TestLoginUnknownUser(t *testing.T) {
	a := NewAuth(&stubUserFinder{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"nobody@example.com","password":"secret"}`))
	a.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401: %s", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), "invalid email or password") {
		t.Errorf("body: %s", rec.Body)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	// bcrypt hash of "correct horse".
	a := NewAuth(&stubUserFinder{user: &models.User{
		Email:        "editor@example.com",
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
	}}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"editor@example.com","password":"wrong"}`))
	a.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401: %s", rec.Code, rec.Body)
	}
}

func TestLoginBadBody(t *testing.T) {
	a := NewAuth(&stubUserFinder{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("not json"))
	a.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}

func TestLoginLookupError(t *testing.T) {
	a := NewAuth(&stubUserFinder{err: errDatabaseDown}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"editor@example.com","password":"secret"}`))
	a.Login(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", rec.Code)
	}
	// The response never leaks whether the account exists.
	if strings.Contains(rec.Body.String(), "editor@example.com") {
		t.Error("error body leaks account details")
	}
}
