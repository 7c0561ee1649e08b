// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"gujarattaxi/internal/middleware"
	"gujarattaxi/internal/models"
	"gujarattaxi/internal/store"
)

// Users groups the admin account management handlers.
type Users struct {
	users  *store.UserStore
	audits *store.AuditLogStore
}

// NewUsers creates a new Users handler group.
func NewUsers(users *store.UserStore, audits *store.AuditLogStore) *Users {
	return &Users{users: users, audits: audits}
}

type userInput struct {
	UserName string     `json:"userName"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	RoleID   *uuid.UUID `json:"roleId"`
}

// List returns all admin accounts.
func (h *Users) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List()
	if err != nil {
		respondInternal(w, "list users failed", err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	respondOK(w, http.StatusOK, "OK", envelope{"users": users})
}

// Get returns a single admin account by ID.
func (h *Users) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	user, err := h.users.FindByID(id)
	if err != nil {
		respondInternal(w, "find user failed", err)
		return
	}
	if user == nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	respondOK(w, http.StatusOK, "OK", envelope{"user": user})
}

// Create inserts a new admin account.
func (h *Users) Create(w http.ResponseWriter, r *http.Request) {
	var in userInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Email) == "" || strings.TrimSpace(in.UserName) == "" {
		respondError(w, http.StatusBadRequest, "User name and email are required.")
		return
	}
	if len(in.Password) < 8 {
		respondError(w, http.StatusBadRequest, "Password must be at least 8 characters.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		respondInternal(w, "hash password failed", err)
		return
	}

	created, err := h.users.Create(&models.User{
		UserName:     in.UserName,
		Email:        in.Email,
		PasswordHash: string(hash),
		RoleID:       in.RoleID,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			respondError(w, http.StatusConflict, "A user with this email already exists")
			return
		}
		respondInternal(w, "create user failed", err)
		return
	}

	recordAudit(h.audits, r, "create", "user")
	respondOK(w, http.StatusCreated, "User created", envelope{"user": created})
}

// Update modifies an account's profile, role, and optionally password.
func (h *Users) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	user, err := h.users.FindByID(id)
	if err != nil {
		respondInternal(w, "find user failed", err)
		return
	}
	if user == nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	var in userInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Email) == "" || strings.TrimSpace(in.UserName) == "" {
		respondError(w, http.StatusBadRequest, "User name and email are required.")
		return
	}

	user.UserName = in.UserName
	user.Email = in.Email
	user.RoleID = in.RoleID
	if in.Password != "" {
		if len(in.Password) < 8 {
			respondError(w, http.StatusBadRequest, "Password must be at least 8 characters.")
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			respondInternal(w, "hash password failed", err)
			return
		}
		user.PasswordHash = string(hash)
	}

	if err := h.users.Update(user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			respondError(w, http.StatusConflict, "A user with this email already exists")
			return
		}
		respondInternal(w, "update user failed", err)
		return
	}

	recordAudit(h.audits, r, "update", "user")
	respondOK(w, http.StatusOK, "User updated", envelope{"user": user})
}

// Delete removes an account. Self-deletion is rejected so an admin
// cannot lock themselves out mid-session.
func (h *Users) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	sess := middleware.SessionFromCtx(r.Context())
	if sess != nil && sess.UserID == id {
		respondError(w, http.StatusBadRequest, "You cannot delete your own account")
		return
	}

	user, err := h.users.FindByID(id)
	if err != nil {
		respondInternal(w, "find user failed", err)
		return
	}
	if user == nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	if err := h.users.Delete(id); err != nil {
		respondInternal(w, "delete user failed", err)
		return
	}

	recordAudit(h.audits, r, "delete", "user")
	respondOK(w, http.StatusOK, "User deleted", nil)
}
