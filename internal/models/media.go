// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Media is an uploaded file tracked in the media library. The binary
// lives in object storage under StorageKey; the row only holds metadata.
// UploadedBy is a weak reference to the admin user who uploaded it.
type Media struct {
	ID          uuid.UUID  `json:"id"`
	URL         string     `json:"url"`
	StorageKey  string     `json:"storageKey"`
	ThumbKey    *string    `json:"thumbKey,omitempty"`
	AltText     *string    `json:"altText,omitempty"`
	Caption     *string    `json:"caption,omitempty"`
	ContentType string     `json:"contentType"`
	SizeBytes   int64      `json:"sizeBytes"`
	UploadedBy  *uuid.UUID `json:"uploadedBy,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// HumanSize formats SizeBytes for display (e.g. "2.4 MB").
func (m *Media) HumanSize() string {
	const unit = 1024
	if m.SizeBytes < unit {
		return fmt.Sprintf("%d B", m.SizeBytes)
	}
	div, exp := int64(unit), 0
	for n := m.SizeBytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(m.SizeBytes)/float64(div), "KMGTPE"[exp])
}
