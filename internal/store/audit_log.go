// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"gujarattaxi/internal/models"
)

// AuditLogStore handles the append-only admin action log.
type AuditLogStore struct {
	db *sql.DB
}

// NewAuditLogStore creates a new AuditLogStore.
func NewAuditLogStore(db *sql.DB) *AuditLogStore {
	return &AuditLogStore{db: db}
}

// Create appends an audit entry.
func (s *AuditLogStore) Create(l *models.AuditLog) error {
	_, err := s.db.Exec(`
		INSERT INTO audit_logs (user_id, action, resource_type)
		VALUES ($1, $2, $3)`,
		l.UserID, l.Action, l.ResourceType,
	)
	if err != nil {
		return fmt.Errorf("create audit log: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first, capped at limit.
func (s *AuditLogStore) List(limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.Query(`
		SELECT id, user_id, action, resource_type, created_at
		FROM audit_logs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	var items []models.AuditLog
	for rows.Next() {
		var l models.AuditLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Action, &l.ResourceType, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		items = append(items, l)
	}
	return items, rows.Err()
}
