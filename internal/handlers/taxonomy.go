// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"gujarattaxi/internal/models"
	"gujarattaxi/internal/slug"
	"gujarattaxi/internal/store"
)

// Taxonomy groups the category and tag handlers.
type Taxonomy struct {
	categories *store.CategoryStore
	tags       *store.TagStore
	audits     *store.AuditLogStore
}

// NewTaxonomy creates a new Taxonomy handler group.
func NewTaxonomy(categories *store.CategoryStore, tags *store.TagStore, audits *store.AuditLogStore) *Taxonomy {
	return &Taxonomy{categories: categories, tags: tags, audits: audits}
}

type taxonomyInput struct {
	Name           string     `json:"name"`
	Slug           string     `json:"slug"`
	ParentID       *uuid.UUID `json:"parentId"`
	Description    string     `json:"description"`
	SEOTitle       string     `json:"seoTitle"`
	SEODescription string     `json:"seoDescription"`
}

// ListCategories returns all categories in name order.
func (h *Taxonomy) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.categories.List()
	if err != nil {
		respondInternal(w, "list categories failed", err)
		return
	}
	if cats == nil {
		cats = []models.Category{}
	}
	respondOK(w, http.StatusOK, "OK", envelope{"categories": cats})
}

// GetCategory returns a single category by ID.
func (h *Taxonomy) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	cat, err := h.categories.FindByID(id)
	if err != nil {
		respondInternal(w, "find category failed", err)
		return
	}
	if cat == nil {
		respondError(w, http.StatusNotFound, "Category not found")
		return
	}
	respondOK(w, http.StatusOK, "OK", envelope{"category": cat})
}

// CreateCategory inserts a new category. An empty slug is generated from
// the name.
func (h *Taxonomy) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var in taxonomyInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := validateTaxonomyInput(in.Name, in.Slug); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	if in.Slug == "" {
		in.Slug = slug.Generate(in.Name)
	}

	created, err := h.categories.Create(&models.Category{
		Name: in.Name, Slug: in.Slug, ParentID: in.ParentID,
		Description: in.Description, SEOTitle: in.SEOTitle, SEODescription: in.SEODescription,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			respondError(w, http.StatusConflict, "A category with this slug already exists")
			return
		}
		respondInternal(w, "create category failed", err)
		return
	}

	recordAudit(h.audits, r, "create", "category")
	respondOK(w, http.StatusCreated, "Category created", envelope{"category": created})
}

// UpdateCategory modifies an existing category.
func (h *Taxonomy) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	cat, err := h.categories.FindByID(id)
	if err != nil {
		respondInternal(w, "find category failed", err)
		return
	}
	if cat == nil {
		respondError(w, http.StatusNotFound, "Category not found")
		return
	}

	var in taxonomyInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := validateTaxonomyInput(in.Name, in.Slug); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	cat.Name = in.Name
	if in.Slug != "" {
		cat.Slug = in.Slug
	}
	cat.ParentID = in.ParentID
	cat.Description = in.Description
	cat.SEOTitle = in.SEOTitle
	cat.SEODescription = in.SEODescription

	if err := h.categories.Update(cat); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			respondError(w, http.StatusConflict, "A category with this slug already exists")
			return
		}
		respondInternal(w, "update category failed", err)
		return
	}

	recordAudit(h.audits, r, "update", "category")
	respondOK(w, http.StatusOK, "Category updated", envelope{"category": cat})
}

// DeleteCategory removes a category. Blog posts keep the dangling ID.
func (h *Taxonomy) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	cat, err := h.categories.FindByID(id)
	if err != nil {
		respondInternal(w, "find category failed", err)
		return
	}
	if cat == nil {
		respondError(w, http.StatusNotFound, "Category not found")
		return
	}
	if err := h.categories.Delete(id); err != nil {
		respondInternal(w, "delete category failed", err)
		return
	}
	recordAudit(h.audits, r, "delete", "category")
	respondOK(w, http.StatusOK, "Category deleted", nil)
}

// ListTags returns all tags in name order.
func (h *Taxonomy) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.tags.List()
	if err != nil {
		respondInternal(w, "list tags failed", err)
		return
	}
	if tags == nil {
		tags = []models.Tag{}
	}
	respondOK(w, http.StatusOK, "OK", envelope{"tags": tags})
}

// GetTag returns a single tag by ID.
func (h *Taxonomy) GetTag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	tag, err := h.tags.FindByID(id)
	if err != nil {
		respondInternal(w, "find tag failed", err)
		return
	}
	if tag == nil {
		respondError(w, http.StatusNotFound, "Tag not found")
		return
	}
	respondOK(w, http.StatusOK, "OK", envelope{"tag": tag})
}

// CreateTag inserts a new tag. An empty slug is generated from the name.
func (h *Taxonomy) CreateTag(w http.ResponseWriter, r *http.Request) {
	var in taxonomyInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := validateTaxonomyInput(in.Name, in.Slug); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	if in.Slug == "" {
		in.Slug = slug.Generate(in.Name)
	}

	created, err := h.tags.Create(&models.Tag{
		Name: in.Name, Slug: in.Slug,
		Description: in.Description, SEOTitle: in.SEOTitle, SEODescription: in.SEODescription,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			respondError(w, http.StatusConflict, "A tag with this slug already exists")
			return
		}
		respondInternal(w, "create tag failed", err)
		return
	}

	recordAudit(h.audits, r, "create", "tag")
	respondOK(w, http.StatusCreated, "Tag created", envelope{"tag": created})
}

// UpdateTag modifies an existing tag.
func (h *Taxonomy) UpdateTag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	tag, err := h.tags.FindByID(id)
	if err != nil {
		respondInternal(w, "find tag failed", err)
		return
	}
	if tag == nil {
		respondError(w, http.StatusNotFound, "Tag not found")
		return
	}

	var in taxonomyInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := validateTaxonomyInput(in.Name, in.Slug); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	tag.Name = in.Name
	if in.Slug != "" {
		tag.Slug = in.Slug
	}
	tag.Description = in.Description
	tag.SEOTitle = in.SEOTitle
	tag.SEODescription = in.SEODescription

	if err := h.tags.Update(tag); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			respondError(w, http.StatusConflict, "A tag with this slug already exists")
			return
		}
		respondInternal(w, "update tag failed", err)
		return
	}

	recordAudit(h.audits, r, "update", "tag")
	respondOK(w, http.StatusOK, "Tag updated", envelope{"tag": tag})
}

// DeleteTag removes a tag. Blog posts keep the dangling ID.
func (h *Taxonomy) DeleteTag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	tag, err := h.tags.FindByID(id)
	if err != nil {
		respondInternal(w, "find tag failed", err)
		return
	}
	if tag == nil {
		respondError(w, http.StatusNotFound, "Tag not found")
		return
	}
	if err := h.tags.Delete(id); err != nil {
		respondInternal(w, "delete tag failed", err)
		return
	}
	recordAudit(h.audits, r, "delete", "tag")
	respondOK(w, http.StatusOK, "Tag deleted", nil)
}
