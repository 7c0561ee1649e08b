// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation and validation.
package slug

import (
	"regexp"
	"strings"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
	// validSlug is the only shape a URL segment may have before it is
	// allowed anywhere near the data layer.
	validSlug = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Ahmedabad to Vadodara Taxi" → "ahmedabad-to-vadodara-taxi"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// Valid reports whether s contains only letters, digits, hyphens, and
// underscores. Anything else is rejected before a query is issued.
func Valid(s string) bool {
	return validSlug.MatchString(s)
}
