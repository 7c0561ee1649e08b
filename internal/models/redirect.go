// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RedirectType is the HTTP redirect semantics to apply.
type RedirectType string

const (
	RedirectPermanent RedirectType = "301"
	RedirectTemporary RedirectType = "302"
)

// Redirect maps an old site path to a new location. FromPath is unique
// and always normalized to start with "/"; ToPath may be a site path or
// an absolute external URL.
type Redirect struct {
	ID        uuid.UUID    `json:"id"`
	FromPath  string       `json:"fromPath"`
	ToPath    string       `json:"toPath"`
	Type      RedirectType `json:"type"`
	Active    bool         `json:"active"`
	Notes     string       `json:"notes"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// NormalizeFromPath prefixes a leading "/" when missing.
func NormalizeFromPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}

// NormalizeToPath prefixes a leading "/" unless the target is already a
// path or an absolute http(s) URL.
func NormalizeToPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || strings.HasPrefix(p, "/") || strings.HasPrefix(p, "http") {
		return p
	}
	return "/" + p
}
