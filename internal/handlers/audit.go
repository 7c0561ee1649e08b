// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"gujarattaxi/internal/middleware"
	"gujarattaxi/internal/models"
	"gujarattaxi/internal/store"
)

// recordAudit appends an audit entry for the authenticated principal.
// Failures are logged, never surfaced: audit writes must not fail the
// admin action they describe.
func recordAudit(audits *store.AuditLogStore, r *http.Request, action, resourceType string) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		return
	}
	err := audits.Create(&models.AuditLog{
		UserID:       sess.UserID,
		Action:       action,
		ResourceType: resourceType,
	})
	if err != nil {
		slog.Error("audit write failed", "action", action, "error", err)
	}
}

// AuditLogs groups the audit log read handlers.
type AuditLogs struct {
	audits *store.AuditLogStore
}

// NewAuditLogs creates a new AuditLogs handler group.
func NewAuditLogs(audits *store.AuditLogStore) *AuditLogs {
	return &AuditLogs{audits: audits}
}

// List returns the most recent audit entries, newest first.
func (h *AuditLogs) List(w http.ResponseWriter, r *http.Request) {
	logs, err := h.audits.List(200)
	if err != nil {
		respondInternal(w, "list audit logs failed", err)
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}
	respondOK(w, http.StatusOK, "OK", envelope{"auditLogs": logs})
}
