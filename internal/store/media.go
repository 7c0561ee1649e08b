// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"gujarattaxi/internal/models"
)

// MediaStore handles media library metadata. The file bytes themselves
// live in object storage.
type MediaStore struct {
	db *sql.DB
}

// NewMediaStore creates a new MediaStore.
func NewMediaStore(db *sql.DB) *MediaStore {
	return &MediaStore{db: db}
}

const mediaColumns = `id, url, storage_key, thumb_key, alt_text, caption,
	content_type, size_bytes, uploaded_by, created_at`

func scanMedia(row scanner) (*models.Media, error) {
	m := &models.Media{}
	err := row.Scan(&m.ID, &m.URL, &m.StorageKey, &m.ThumbKey, &m.AltText,
		&m.Caption, &m.ContentType, &m.SizeBytes, &m.UploadedBy, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// List returns all media items, newest first.
func (s *MediaStore) List() ([]models.Media, error) {
	rows, err := s.db.Query(`SELECT ` + mediaColumns + ` FROM media ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	defer rows.Close()

	var items []models.Media
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

// FindByID retrieves a media item. Returns nil if not found.
func (s *MediaStore) FindByID(id uuid.UUID) (*models.Media, error) {
	m, err := scanMedia(s.db.QueryRow(`SELECT `+mediaColumns+` FROM media WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find media by id: %w", err)
	}
	return m, nil
}

// Create records an uploaded file's metadata.
func (s *MediaStore) Create(m *models.Media) (*models.Media, error) {
	result, err := scanMedia(s.db.QueryRow(`
		INSERT INTO media (url, storage_key, thumb_key, alt_text, caption,
		                   content_type, size_bytes, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+mediaColumns,
		m.URL, m.StorageKey, m.ThumbKey, m.AltText, m.Caption,
		m.ContentType, m.SizeBytes, m.UploadedBy))
	if err != nil {
		return nil, fmt.Errorf("create media: %w", err)
	}
	return result, nil
}

// UpdateMeta changes the editable metadata of a media item.
func (s *MediaStore) UpdateMeta(id uuid.UUID, altText, caption *string) error {
	_, err := s.db.Exec(`UPDATE media SET alt_text = $1, caption = $2 WHERE id = $3`,
		altText, caption, id)
	if err != nil {
		return fmt.Errorf("update media: %w", err)
	}
	return nil
}

// Delete removes a media row. The caller is responsible for deleting the
// stored object.
func (s *MediaStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM media WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete media: %w", err)
	}
	return nil
}
