// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package directory builds the grouped listing views for route and
// airport pages.
package directory

import "sort"

// OtherBucket collects records whose origin field is empty.
const OtherBucket = "Other"

// Group is one origin bucket in a directory listing.
type Group[T any] struct {
	Origin  string `json:"origin"`
	Records []T    `json:"records"`
}

// GroupByOrigin buckets records by their origin, case-sensitive, with no
// whitespace normalization. Records without an origin land in "Other".
// Buckets are returned in ascending lexicographic order of origin; record
// order within a bucket follows the input order (the stores list newest
// first).
func GroupByOrigin[T any](records []T, origin func(T) string) []Group[T] {
	buckets := make(map[string][]T)
	for _, rec := range records {
		key := origin(rec)
		if key == "" {
			key = OtherBucket
		}
		buckets[key] = append(buckets[key], rec)
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	groups := make([]Group[T], 0, len(keys))
	for _, k := range keys {
		groups = append(groups, Group[T]{Origin: k, Records: buckets[k]})
	}
	return groups
}
