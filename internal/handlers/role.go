// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"gujarattaxi/internal/models"
	"gujarattaxi/internal/slug"
	"gujarattaxi/internal/store"
)

// Roles groups the role management handlers. The built-in super-admin
// and admin roles are protected: edits and deletes are rejected here at
// the handler layer, not in the store.
type Roles struct {
	roles  *store.RoleStore
	audits *store.AuditLogStore
}

// NewRoles creates a new Roles handler group.
func NewRoles(roles *store.RoleStore, audits *store.AuditLogStore) *Roles {
	return &Roles{roles: roles, audits: audits}
}

type roleInput struct {
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	Description string             `json:"description"`
	Permissions models.Permissions `json:"permissions"`
}

// List returns all roles.
func (h *Roles) List(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roles.List()
	if err != nil {
		respondInternal(w, "list roles failed", err)
		return
	}
	if roles == nil {
		roles = []models.Role{}
	}
	respondOK(w, http.StatusOK, "OK", envelope{"roles": roles})
}

// Get returns a single role by ID.
func (h *Roles) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	role, err := h.roles.FindByID(id)
	if err != nil {
		respondInternal(w, "find role failed", err)
		return
	}
	if role == nil {
		respondError(w, http.StatusNotFound, "Role not found")
		return
	}
	respondOK(w, http.StatusOK, "OK", envelope{"role": role})
}

// Create inserts a new role. The protected slugs cannot be recreated.
func (h *Roles) Create(w http.ResponseWriter, r *http.Request) {
	var in roleInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Name) == "" {
		respondError(w, http.StatusBadRequest, "Name is required.")
		return
	}
	if in.Slug == "" {
		in.Slug = slug.Generate(in.Name)
	}
	if in.Slug == models.RoleSlugSuperAdmin || in.Slug == models.RoleSlugAdmin {
		respondError(w, http.StatusBadRequest, "This role slug is reserved")
		return
	}

	created, err := h.roles.Create(&models.Role{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		Permissions: in.Permissions,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			respondError(w, http.StatusConflict, "A role with this name or slug already exists")
			return
		}
		respondInternal(w, "create role failed", err)
		return
	}

	recordAudit(h.audits, r, "create", "role")
	respondOK(w, http.StatusCreated, "Role created", envelope{"role": created})
}

// Update modifies a role's name, description and permission flags. The
// slug is immutable after creation and protected roles reject all edits.
func (h *Roles) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	role, err := h.roles.FindByID(id)
	if err != nil {
		respondInternal(w, "find role failed", err)
		return
	}
	if role == nil {
		respondError(w, http.StatusNotFound, "Role not found")
		return
	}
	if role.Protected() {
		respondError(w, http.StatusBadRequest, "Built-in roles cannot be modified")
		return
	}

	var in roleInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Name) == "" {
		respondError(w, http.StatusBadRequest, "Name is required.")
		return
	}

	role.Name = in.Name
	role.Description = in.Description
	role.Permissions = in.Permissions

	if err := h.roles.Update(role); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			respondError(w, http.StatusConflict, "A role with this name already exists")
			return
		}
		respondInternal(w, "update role failed", err)
		return
	}

	recordAudit(h.audits, r, "update", "role")
	respondOK(w, http.StatusOK, "Role updated", envelope{"role": role})
}

// Delete removes a role. Protected roles cannot be deleted. Users
// assigned to a deleted role lose all permissions until reassigned.
func (h *Roles) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	role, err := h.roles.FindByID(id)
	if err != nil {
		respondInternal(w, "find role failed", err)
		return
	}
	if role == nil {
		respondError(w, http.StatusNotFound, "Role not found")
		return
	}
	if role.Protected() {
		respondError(w, http.StatusBadRequest, "Built-in roles cannot be deleted")
		return
	}

	if err := h.roles.Delete(id); err != nil {
		respondInternal(w, "delete role failed", err)
		return
	}

	recordAudit(h.audits, r, "delete", "role")
	respondOK(w, http.StatusOK, "Role deleted", nil)
}
