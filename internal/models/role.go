// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Role slugs that the admin UI refuses to edit or delete. This is a
// handler-level guard, not a store invariant.
const (
	RoleSlugSuperAdmin = "super-admin"
	RoleSlugAdmin      = "admin"
)

// Permissions is the fixed set of boolean capabilities a role grants.
// There is no hierarchy or inheritance: an action is allowed if and only
// if the principal's role has the matching flag set.
type Permissions struct {
	BlogCreate  bool `json:"blogCreate"`
	BlogEdit    bool `json:"blogEdit"`
	BlogDelete  bool `json:"blogDelete"`
	BlogPublish bool `json:"blogPublish"`
	BlogView    bool `json:"blogView"`

	CategoryManage bool `json:"categoryManage"`
	TagManage      bool `json:"tagManage"`

	MediaUpload bool `json:"mediaUpload"`
	MediaDelete bool `json:"mediaDelete"`
	MediaView   bool `json:"mediaView"`

	SEOManage      bool `json:"seoManage"`
	RedirectManage bool `json:"redirectManage"`

	UserManage bool `json:"userManage"`
	RoleManage bool `json:"roleManage"`

	AuditView      bool `json:"auditView"`
	SettingsManage bool `json:"settingsManage"`
}

// AllPermissions returns a Permissions value with every flag enabled.
func AllPermissions() Permissions {
	return Permissions{
		BlogCreate: true, BlogEdit: true, BlogDelete: true, BlogPublish: true, BlogView: true,
		CategoryManage: true, TagManage: true,
		MediaUpload: true, MediaDelete: true, MediaView: true,
		SEOManage: true, RedirectManage: true,
		UserManage: true, RoleManage: true,
		AuditView: true, SettingsManage: true,
	}
}

// Role is a named bundle of permission flags assigned to admin users.
type Role struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	Description string      `json:"description"`
	Permissions Permissions `json:"permissions"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Protected reports whether the role is one of the built-in slugs the
// admin surface refuses to modify.
func (r *Role) Protected() bool {
	return r.Slug == RoleSlugSuperAdmin || r.Slug == RoleSlugAdmin
}
