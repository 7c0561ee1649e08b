package handlers

import (
	"strings"
	"unicode/utf8"

	"gujarattaxi/internal/slug"
)

// Validation limits for blog and directory fields.
const (
	maxTitleLen    = 300
	maxSlugLen     = 300
	maxBodyLen     = 200_000
	maxMetaLen     = 500
	maxNameLen     = 200
	maxPhoneLen    = 20
	maxNotesLen    = 1_000
	maxPassengers  = 16
	maxFAQEntries  = 50
	maxFAQFieldLen = 2_000
)

// validateBlogInput checks blog create/update inputs and returns the
// first error found, or "" when valid.
func validateBlogInput(title, slugVal, description string) string {
	if strings.TrimSpace(title) == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if slugVal != "" && !slug.Valid(slugVal) {
		return "Slug may only contain letters, digits, hyphens and underscores."
	}
	if utf8.RuneCountInString(slugVal) > maxSlugLen {
		return "Slug is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(description) > maxBodyLen {
		return "Description is too long (max 200,000 characters)."
	}
	return ""
}

// validateDirectoryInput checks route/city/airport inputs.
func validateDirectoryInput(name, urlSlug string) string {
	if strings.TrimSpace(name) == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Name is too long (max 200 characters)."
	}
	if urlSlug == "" {
		return "URL is required."
	}
	if !slug.Valid(urlSlug) {
		return "URL may only contain letters, digits, hyphens and underscores."
	}
	if utf8.RuneCountInString(urlSlug) > maxSlugLen {
		return "URL is too long (max 300 characters)."
	}
	return ""
}

// validateTaxonomyInput checks category/tag inputs.
func validateTaxonomyInput(name, slugVal string) string {
	if strings.TrimSpace(name) == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Name is too long (max 200 characters)."
	}
	if slugVal != "" && !slug.Valid(slugVal) {
		return "Slug may only contain letters, digits, hyphens and underscores."
	}
	return ""
}
