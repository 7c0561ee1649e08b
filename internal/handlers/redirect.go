// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"gujarattaxi/internal/models"
	"gujarattaxi/internal/store"
)

// Redirects groups the redirect rule handlers.
type Redirects struct {
	redirects *store.RedirectStore
	audits    *store.AuditLogStore
}

// NewRedirects creates a new Redirects handler group.
func NewRedirects(redirects *store.RedirectStore, audits *store.AuditLogStore) *Redirects {
	return &Redirects{redirects: redirects, audits: audits}
}

type redirectInput struct {
	FromPath string `json:"fromPath"`
	ToPath   string `json:"toPath"`
	Type     string `json:"type"`
	Active   *bool  `json:"active"`
	Notes    string `json:"notes"`
}

// normalize validates and normalizes the input, returning an error
// message or "".
func (in *redirectInput) normalize() string {
	in.FromPath = models.NormalizeFromPath(in.FromPath)
	in.ToPath = models.NormalizeToPath(in.ToPath)

	if in.FromPath == "" {
		return "Source path is required."
	}
	if in.ToPath == "" {
		return "Target path is required."
	}
	if in.FromPath == in.ToPath {
		return "A redirect cannot point to itself."
	}
	if in.Type == "" {
		in.Type = string(models.RedirectPermanent)
	}
	if in.Type != string(models.RedirectPermanent) && in.Type != string(models.RedirectTemporary) {
		return "Type must be 301 or 302."
	}
	if utf8.RuneCountInString(in.Notes) > maxNotesLen {
		return "Notes are too long (max 1,000 characters)."
	}
	return ""
}

// List returns all redirect rules, newest first.
func (h *Redirects) List(w http.ResponseWriter, r *http.Request) {
	rules, err := h.redirects.List()
	if err != nil {
		respondInternal(w, "list redirects failed", err)
		return
	}
	if rules == nil {
		rules = []models.Redirect{}
	}
	respondOK(w, http.StatusOK, "OK", envelope{"redirects": rules})
}

// Create inserts a redirect rule.
func (h *Redirects) Create(w http.ResponseWriter, r *http.Request) {
	var in redirectInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := in.normalize(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	created, err := h.redirects.Create(&models.Redirect{
		FromPath: in.FromPath,
		ToPath:   in.ToPath,
		Type:     models.RedirectType(in.Type),
		Active:   active,
		Notes:    in.Notes,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			respondError(w, http.StatusConflict, "A redirect for this source path already exists")
			return
		}
		respondInternal(w, "create redirect failed", err)
		return
	}

	recordAudit(h.audits, r, "create", "redirect")
	respondOK(w, http.StatusCreated, "Redirect created", envelope{"redirect": created})
}

// Update modifies a redirect rule.
func (h *Redirects) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	rule, err := h.redirects.FindByID(id)
	if err != nil {
		respondInternal(w, "find redirect failed", err)
		return
	}
	if rule == nil {
		respondError(w, http.StatusNotFound, "Redirect not found")
		return
	}

	var in redirectInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := in.normalize(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	rule.FromPath = in.FromPath
	rule.ToPath = in.ToPath
	rule.Type = models.RedirectType(in.Type)
	if in.Active != nil {
		rule.Active = *in.Active
	}
	rule.Notes = in.Notes

	if err := h.redirects.Update(rule); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			respondError(w, http.StatusConflict, "A redirect for this source path already exists")
			return
		}
		respondInternal(w, "update redirect failed", err)
		return
	}

	recordAudit(h.audits, r, "update", "redirect")
	respondOK(w, http.StatusOK, "Redirect updated", envelope{"redirect": rule})
}

// Delete removes a redirect rule by ID.
func (h *Redirects) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	rule, err := h.redirects.FindByID(id)
	if err != nil {
		respondInternal(w, "find redirect failed", err)
		return
	}
	if rule == nil {
		respondError(w, http.StatusNotFound, "Redirect not found")
		return
	}
	if err := h.redirects.Delete(id); err != nil {
		respondInternal(w, "delete redirect failed", err)
		return
	}
	recordAudit(h.audits, r, "delete", "redirect")
	respondOK(w, http.StatusOK, "Redirect deleted", nil)
}

// Lookup is the public endpoint the frontend calls to check whether a
// path has an active redirect rule before rendering a 404.
func (h *Redirects) Lookup(w http.ResponseWriter, r *http.Request) {
	path := models.NormalizeFromPath(r.URL.Query().Get("path"))
	if path == "" || !strings.HasPrefix(path, "/") {
		respondError(w, http.StatusBadRequest, "A path query parameter is required")
		return
	}

	rule, err := h.redirects.FindActiveByFromPath(path)
	if err != nil {
		respondInternal(w, "redirect lookup failed", err)
		return
	}
	if rule == nil {
		respondError(w, http.StatusNotFound, "No redirect for this path")
		return
	}

	respondOK(w, http.StatusOK, "OK", envelope{
		"toPath": rule.ToPath,
		"type":   rule.Type,
	})
}
