// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups blog posts. ParentID is a weak self-reference that
// allows a single level of nesting without enforced integrity.
type Category struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Slug           string     `json:"slug"`
	ParentID       *uuid.UUID `json:"parentId,omitempty"`
	Description    string     `json:"description"`
	SEOTitle       string     `json:"seoTitle"`
	SEODescription string     `json:"seoDescription"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// Tag is a flat label for blog posts.
type Tag struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description"`
	SEOTitle       string    `json:"seoTitle"`
	SEODescription string    `json:"seoDescription"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// TaxonomyRef is the resolved {id, name} shape used in API responses when
// category/tag references are expanded. Responses always carry the raw id
// list as well, so a field never changes shape between bare ids and objects.
type TaxonomyRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
