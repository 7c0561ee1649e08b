// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the typed entities stored in PostgreSQL and
// exchanged through the JSON API.
package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogStatus represents the publication state of a blog post.
type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusScheduled BlogStatus = "scheduled"
	BlogStatusPublished BlogStatus = "published"
)

// Valid reports whether s is one of the three known statuses.
func (s BlogStatus) Valid() bool {
	switch s {
	case BlogStatusDraft, BlogStatusScheduled, BlogStatusPublished:
		return true
	}
	return false
}

// FAQ is a single question/answer pair attached to a blog post.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Blog is a marketing article. Directory entries (routes, cities, airports)
// may hold a weak reference to one via their BlogID.
type Blog struct {
	ID               uuid.UUID   `json:"id"`
	Title            string      `json:"title"`
	Slug             string      `json:"slug"`
	Description      string      `json:"description"` // HTML body
	Image            string      `json:"image"`       // public URL of the featured image
	ImageKey         string      `json:"imageKey"`    // object storage key for deletion
	MetaTitle        *string     `json:"metaTitle,omitempty"`
	MetaDescription  *string     `json:"metaDescription,omitempty"`
	MetaKeywords     []string    `json:"metaKeywords"`
	ExtraMetaTag     *string     `json:"extraMetatag,omitempty"`
	FAQs             []FAQ       `json:"faqs"`
	CategoryIDs      []uuid.UUID `json:"categoryIds"`
	TagIDs           []uuid.UUID `json:"tagIds"`
	Status           BlogStatus  `json:"status"`
	ScheduledAt      *time.Time  `json:"scheduledAt,omitempty"`
	CanonicalURL     *string     `json:"canonicalUrl,omitempty"`
	FeaturedImageAlt *string     `json:"featuredImageAlt,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// IsPublished reports whether the post is publicly visible.
func (b *Blog) IsPublished() bool {
	return b.Status == BlogStatusPublished
}

// EffectiveStatus applies the publication state machine to a requested
// status. Requesting "published" while a future scheduledAt is set stores
// the post as "scheduled"; the promoter (or a later manual save) flips it
// to "published" once the time has elapsed. Every other request is stored
// as given, so any state can always return to "draft".
func EffectiveStatus(requested BlogStatus, scheduledAt *time.Time, now time.Time) BlogStatus {
	if requested == BlogStatusPublished && scheduledAt != nil && scheduledAt.After(now) {
		return BlogStatusScheduled
	}
	return requested
}

// BlogRevision is an append-only snapshot of a blog post's editable
// content. Revisions are never mutated; restore copies a fixed subset of
// fields back onto the live post.
type BlogRevision struct {
	ID              uuid.UUID `json:"id"`
	BlogID          uuid.UUID `json:"blogId"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ContentHTML     string    `json:"contentHtml"`
	MetaTitle       *string   `json:"metaTitle,omitempty"`
	MetaDescription *string   `json:"metaDescription,omitempty"`
	Excerpt         *string   `json:"excerpt,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
