// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gujarattaxi/internal/models"
	"gujarattaxi/internal/resolver"
	"gujarattaxi/internal/sitemap"
	"gujarattaxi/internal/store"
)

// Public groups the unauthenticated content endpoints the site frontend
// renders from.
type Public struct {
	resolver   *resolver.Resolver
	blogs      *store.BlogStore
	routes     *store.RouteStore
	cities     *store.CityStore
	airports   *store.AirportStore
	categories *store.CategoryStore
	tags       *store.TagStore
	siteURL    string
}

// NewPublic creates a new Public handler group.
func NewPublic(res *resolver.Resolver, blogs *store.BlogStore,
	routes *store.RouteStore, cities *store.CityStore, airports *store.AirportStore,
	categories *store.CategoryStore, tags *store.TagStore, siteURL string) *Public {
	return &Public{
		resolver:   res,
		blogs:      blogs,
		routes:     routes,
		cities:     cities,
		airports:   airports,
		categories: categories,
		tags:       tags,
		siteURL:    siteURL,
	}
}

// Resolve maps a URL slug onto one of the four content collections.
// Blog matches return a redirect target instead of the record: blogs are
// served from their dedicated path.
func (h *Public) Resolve(w http.ResponseWriter, r *http.Request) {
	s := chi.URLParam(r, "slug")

	result, err := h.resolver.Resolve(r.Context(), s)
	if err != nil {
		if errors.Is(err, resolver.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Page not found")
			return
		}
		respondInternal(w, "resolve slug failed", err)
		return
	}

	if path, ok := result.RedirectPath(); ok {
		respondOK(w, http.StatusOK, "OK", envelope{
			"kind":     result.Kind,
			"redirect": path,
		})
		return
	}

	payload := envelope{"kind": result.Kind}
	switch result.Kind {
	case resolver.KindRoute:
		payload["route"] = result.Route
	case resolver.KindCity:
		payload["city"] = result.City
	case resolver.KindAirport:
		payload["airport"] = result.Airport
	}
	respondOK(w, http.StatusOK, "OK", payload)
}

// ListBlogs returns published posts, newest first.
func (h *Public) ListBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogs.ListPublished()
	if err != nil {
		respondInternal(w, "list published blogs failed", err)
		return
	}
	if blogs == nil {
		blogs = []models.Blog{}
	}
	respondOK(w, http.StatusOK, "OK", envelope{
		"blogs": blogs,
		"count": len(blogs),
	})
}

// GetBlogBySlug returns a single published post with resolved taxonomy
// references. Drafts and scheduled posts 404.
func (h *Public) GetBlogBySlug(w http.ResponseWriter, r *http.Request) {
	s := chi.URLParam(r, "slug")

	blog, err := h.blogs.FindPublishedBySlug(s)
	if err != nil {
		respondInternal(w, "find published blog failed", err)
		return
	}
	if blog == nil {
		respondError(w, http.StatusNotFound, "Blog not found")
		return
	}

	cats, err := h.categories.ListByIDs(blog.CategoryIDs)
	if err != nil {
		respondInternal(w, "resolve categories failed", err)
		return
	}
	tags, err := h.tags.ListByIDs(blog.TagIDs)
	if err != nil {
		respondInternal(w, "resolve tags failed", err)
		return
	}

	catRefs := make([]models.TaxonomyRef, 0, len(cats))
	for _, c := range cats {
		catRefs = append(catRefs, models.TaxonomyRef{ID: c.ID, Name: c.Name})
	}
	tagRefs := make([]models.TaxonomyRef, 0, len(tags))
	for _, t := range tags {
		tagRefs = append(tagRefs, models.TaxonomyRef{ID: t.ID, Name: t.Name})
	}

	respondOK(w, http.StatusOK, "OK", envelope{
		"blog":               blog,
		"resolvedCategories": catRefs,
		"resolvedTags":       tagRefs,
	})
}

// Sitemap serves sitemap.xml built from published posts and the
// directory collections.
func (h *Public) Sitemap(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogs.ListPublished()
	if err != nil {
		respondInternal(w, "sitemap blogs failed", err)
		return
	}
	routes, err := h.routes.List()
	if err != nil {
		respondInternal(w, "sitemap routes failed", err)
		return
	}
	cities, err := h.cities.List()
	if err != nil {
		respondInternal(w, "sitemap cities failed", err)
		return
	}
	airports, err := h.airports.List()
	if err != nil {
		respondInternal(w, "sitemap airports failed", err)
		return
	}

	body, err := sitemap.Render(h.siteURL, sitemap.Input{
		Blogs:    blogs,
		Routes:   routes,
		Cities:   cities,
		Airports: airports,
	})
	if err != nil {
		respondInternal(w, "render sitemap failed", err)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
