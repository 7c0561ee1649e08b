// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package resolver maps a public URL segment onto one of four content
// collections. Lookups fan out concurrently and the first positive match
// in precedence order (route > city > airport > blog) wins.
package resolver

import (
	"context"
	"errors"
	"log/slog"

	"gujarattaxi/internal/models"
	"gujarattaxi/internal/slug"
)

// ErrNotFound signals that a slug matched no collection. Callers render a
// 404 without issuing any further lookups.
var ErrNotFound = errors.New("slug not found")

// Kind tags which collection a resolved slug belongs to.
type Kind string

const (
	KindRoute   Kind = "route"
	KindCity    Kind = "city"
	KindAirport Kind = "airport"
	KindBlog    Kind = "blog"
)

// Result is the tagged union returned by Resolve. Exactly one of the
// record pointers matching Kind is non-nil.
type Result struct {
	Kind    Kind
	Route   *models.Route
	City    *models.City
	Airport *models.Airport
	Blog    *models.Blog
}

// RedirectPath returns the canonical path for blog matches. Blogs resolved
// through the generic slug route are served at their dedicated path, so
// the caller should redirect there instead of rendering in place.
func (r *Result) RedirectPath() (string, bool) {
	if r.Kind == KindBlog && r.Blog != nil {
		return "/blogs/" + r.Blog.Slug, true
	}
	return "", false
}

// RouteFinder looks up a route directory entry by its public URL.
type RouteFinder interface {
	FindByURL(url string) (*models.Route, error)
}

// CityFinder looks up a city directory entry by its public URL.
type CityFinder interface {
	FindByURL(url string) (*models.City, error)
}

// AirportFinder looks up an airport directory entry by its public URL.
type AirportFinder interface {
	FindByURL(url string) (*models.Airport, error)
}

// BlogFinder looks up a blog post by slug, restricted to published posts.
type BlogFinder interface {
	FindPublishedBySlug(slug string) (*models.Blog, error)
}

// Resolver dispatches slug lookups across the four collections.
type Resolver struct {
	routes   RouteFinder
	cities   CityFinder
	airports AirportFinder
	blogs    BlogFinder
}

// New creates a Resolver over the four collection finders.
func New(routes RouteFinder, cities CityFinder, airports AirportFinder, blogs BlogFinder) *Resolver {
	return &Resolver{routes: routes, cities: cities, airports: airports, blogs: blogs}
}

type answer struct {
	res *Result
	err error
}

// Resolve validates the slug, issues the four lookups concurrently, and
// returns the first positive match in precedence order. A lookup error is
// treated as "no match" for that collection: the page degrades to a 404
// rather than a hard error. Stragglers past the winning match are left to
// finish into their buffered channels and are discarded, not cancelled.
func (r *Resolver) Resolve(ctx context.Context, s string) (*Result, error) {
	if !slug.Valid(s) {
		return nil, ErrNotFound
	}

	lookups := []func(string) (*Result, error){
		func(s string) (*Result, error) {
			rec, err := r.routes.FindByURL(s)
			if err != nil || rec == nil {
				return nil, err
			}
			return &Result{Kind: KindRoute, Route: rec}, nil
		},
		func(s string) (*Result, error) {
			rec, err := r.cities.FindByURL(s)
			if err != nil || rec == nil {
				return nil, err
			}
			return &Result{Kind: KindCity, City: rec}, nil
		},
		func(s string) (*Result, error) {
			rec, err := r.airports.FindByURL(s)
			if err != nil || rec == nil {
				return nil, err
			}
			return &Result{Kind: KindAirport, Airport: rec}, nil
		},
		func(s string) (*Result, error) {
			rec, err := r.blogs.FindPublishedBySlug(s)
			if err != nil || rec == nil {
				return nil, err
			}
			return &Result{Kind: KindBlog, Blog: rec}, nil
		},
	}

	// Buffered channels so abandoned goroutines never block.
	results := make([]chan answer, len(lookups))
	for i, fn := range lookups {
		results[i] = make(chan answer, 1)
		go func(i int, fn func(string) (*Result, error)) {
			res, err := fn(s)
			results[i] <- answer{res: res, err: err}
		}(i, fn)
	}

	// Await in precedence order. A positive match short-circuits; lower
	// precedence results are never consulted.
	for i := range results {
		select {
		case a := <-results[i]:
			if a.err != nil {
				slog.Debug("slug lookup degraded to no-match", "slug", s, "collection", i, "error", a.err)
				continue
			}
			if a.res != nil {
				return a.res, nil
			}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, ErrNotFound
}
