// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"gujarattaxi/internal/models"
	"gujarattaxi/internal/slug"
	"gujarattaxi/internal/storage"
	"gujarattaxi/internal/store"
)

// Blogs groups the blog CRUD and revision handlers.
type Blogs struct {
	blogs      *store.BlogStore
	revisions  *store.RevisionStore
	categories *store.CategoryStore
	tags       *store.TagStore
	audits     *store.AuditLogStore
	storage    *storage.Client // nil when object storage is unconfigured
}

// NewBlogs creates a new Blogs handler group.
func NewBlogs(blogs *store.BlogStore, revisions *store.RevisionStore,
	categories *store.CategoryStore, tags *store.TagStore,
	audits *store.AuditLogStore, st *storage.Client) *Blogs {
	return &Blogs{
		blogs:      blogs,
		revisions:  revisions,
		categories: categories,
		tags:       tags,
		audits:     audits,
		storage:    st,
	}
}

type blogInput struct {
	Title            string       `json:"title"`
	Slug             string       `json:"slug"`
	Description      string       `json:"description"`
	Image            string       `json:"image"`
	ImageKey         string       `json:"imageKey"`
	MetaTitle        *string      `json:"metaTitle"`
	MetaDescription  *string      `json:"metaDescription"`
	MetaKeywords     []string     `json:"metaKeywords"`
	ExtraMetaTag     *string      `json:"extraMetatag"`
	FAQs             []models.FAQ `json:"faqs"`
	CategoryIDs      []uuid.UUID  `json:"categoryIds"`
	TagIDs           []uuid.UUID  `json:"tagIds"`
	Status           string       `json:"status"`
	ScheduledAt      *time.Time   `json:"scheduledAt"`
	CanonicalURL     *string      `json:"canonicalUrl"`
	FeaturedImageAlt *string      `json:"featuredImageAlt"`
}

// apply copies the input onto a blog record, filling defaults. The
// publication state machine decides the stored status: requesting
// "published" with a future scheduledAt stores "scheduled" instead.
func (in *blogInput) apply(b *models.Blog) string {
	if msg := validateBlogInput(in.Title, in.Slug, in.Description); msg != "" {
		return msg
	}
	if strings.TrimSpace(in.Description) == "" {
		return "Description is required."
	}
	if in.Image == "" {
		return "A featured image is required."
	}
	if len(in.FAQs) > maxFAQEntries {
		return "Too many FAQ entries (max 50)."
	}
	for _, f := range in.FAQs {
		if utf8.RuneCountInString(f.Question) > maxFAQFieldLen || utf8.RuneCountInString(f.Answer) > maxFAQFieldLen {
			return "FAQ entries are too long (max 2,000 characters per field)."
		}
	}
	if in.MetaTitle != nil && utf8.RuneCountInString(*in.MetaTitle) > maxMetaLen {
		return "Meta title is too long (max 500 characters)."
	}
	if in.MetaDescription != nil && utf8.RuneCountInString(*in.MetaDescription) > maxMetaLen {
		return "Meta description is too long (max 500 characters)."
	}

	// Posts go live by default; drafts are an explicit request.
	requested := models.BlogStatus(in.Status)
	if in.Status == "" {
		requested = models.BlogStatusPublished
	}
	if !requested.Valid() {
		return "Status must be draft, scheduled or published."
	}
	// A scheduled row is only ever surfaced by the promoter, so it must
	// carry a future scheduledAt or it would stay invisible forever.
	if requested == models.BlogStatusScheduled && (in.ScheduledAt == nil || !in.ScheduledAt.After(time.Now())) {
		return "Scheduled posts need a future scheduledAt."
	}

	b.Title = in.Title
	b.Slug = in.Slug
	if b.Slug == "" {
		b.Slug = slug.Generate(in.Title)
	}
	b.Description = in.Description
	b.Image = in.Image
	b.ImageKey = in.ImageKey
	b.MetaTitle = in.MetaTitle
	b.MetaDescription = in.MetaDescription
	b.MetaKeywords = in.MetaKeywords
	b.ExtraMetaTag = in.ExtraMetaTag
	b.FAQs = in.FAQs
	b.CategoryIDs = in.CategoryIDs
	b.TagIDs = in.TagIDs
	b.ScheduledAt = in.ScheduledAt
	b.CanonicalURL = in.CanonicalURL
	b.FeaturedImageAlt = in.FeaturedImageAlt
	b.Status = models.EffectiveStatus(requested, in.ScheduledAt, time.Now())
	return ""
}

// List returns all blog posts for the admin surface. Category and tag
// references stay as bare ID lists; only single-post reads resolve them.
func (h *Blogs) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogs.List()
	if err != nil {
		respondInternal(w, "list blogs failed", err)
		return
	}
	if blogs == nil {
		blogs = []models.Blog{}
	}
	respondOK(w, http.StatusOK, "OK", envelope{"blogs": blogs})
}

// resolvedRefs expands category and tag ID lists into {id, name} pairs.
// Dangling IDs are silently skipped.
func (h *Blogs) resolvedRefs(b *models.Blog) ([]models.TaxonomyRef, []models.TaxonomyRef, error) {
	cats, err := h.categories.ListByIDs(b.CategoryIDs)
	if err != nil {
		return nil, nil, err
	}
	tags, err := h.tags.ListByIDs(b.TagIDs)
	if err != nil {
		return nil, nil, err
	}

	catRefs := make([]models.TaxonomyRef, 0, len(cats))
	for _, c := range cats {
		catRefs = append(catRefs, models.TaxonomyRef{ID: c.ID, Name: c.Name})
	}
	tagRefs := make([]models.TaxonomyRef, 0, len(tags))
	for _, t := range tags {
		tagRefs = append(tagRefs, models.TaxonomyRef{ID: t.ID, Name: t.Name})
	}
	return catRefs, tagRefs, nil
}

func (h *Blogs) respondWithBlog(w http.ResponseWriter, code int, message string, b *models.Blog) {
	catRefs, tagRefs, err := h.resolvedRefs(b)
	if err != nil {
		respondInternal(w, "resolve taxonomy refs failed", err)
		return
	}
	respondOK(w, code, message, envelope{
		"blog":               b,
		"resolvedCategories": catRefs,
		"resolvedTags":       tagRefs,
	})
}

// Get returns a single post by ID with resolved taxonomy references.
func (h *Blogs) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	blog, err := h.blogs.FindByID(id)
	if err != nil {
		respondInternal(w, "find blog failed", err)
		return
	}
	if blog == nil {
		respondError(w, http.StatusNotFound, "Blog not found")
		return
	}
	h.respondWithBlog(w, http.StatusOK, "OK", blog)
}

// Create inserts a new post. An empty slug is generated from the title.
func (h *Blogs) Create(w http.ResponseWriter, r *http.Request) {
	var in blogInput
	if !decodeJSON(w, r, &in) {
		return
	}

	blog := &models.Blog{}
	if msg := in.apply(blog); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := h.blogs.Create(blog)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			respondError(w, http.StatusConflict, "A blog with this slug already exists")
			return
		}
		respondInternal(w, "create blog failed", err)
		return
	}

	recordAudit(h.audits, r, "create", "blog")
	h.respondWithBlog(w, http.StatusCreated, "Blog created", created)
}

// Update overwrites a post. The previous editable content is appended to
// the revision log before the new version is stored.
func (h *Blogs) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	existing, err := h.blogs.FindByID(id)
	if err != nil {
		respondInternal(w, "find blog failed", err)
		return
	}
	if existing == nil {
		respondError(w, http.StatusNotFound, "Blog not found")
		return
	}

	var in blogInput
	if !decodeJSON(w, r, &in) {
		return
	}

	updated := *existing
	if msg := in.apply(&updated); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	// Snapshot the outgoing version so it can be restored later.
	if _, err := h.revisions.Create(&models.BlogRevision{
		BlogID:          existing.ID,
		Title:           existing.Title,
		Description:     existing.Description,
		MetaTitle:       existing.MetaTitle,
		MetaDescription: existing.MetaDescription,
	}); err != nil {
		respondInternal(w, "snapshot revision failed", err)
		return
	}

	if err := h.blogs.Update(&updated); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			respondError(w, http.StatusConflict, "A blog with this slug already exists")
			return
		}
		respondInternal(w, "update blog failed", err)
		return
	}

	recordAudit(h.audits, r, "update", "blog")
	h.respondWithBlog(w, http.StatusOK, "Blog updated", &updated)
}

// Delete removes a post and best-effort deletes its featured image from
// object storage. Directory entries keep their dangling references.
func (h *Blogs) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	blog, err := h.blogs.FindByID(id)
	if err != nil {
		respondInternal(w, "find blog failed", err)
		return
	}
	if blog == nil {
		respondError(w, http.StatusNotFound, "Blog not found")
		return
	}

	if err := h.blogs.Delete(id); err != nil {
		respondInternal(w, "delete blog failed", err)
		return
	}

	if h.storage != nil && blog.ImageKey != "" {
		// Best effort; a stale object is not worth failing the delete.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = h.storage.Delete(ctx, blog.ImageKey)
	}

	recordAudit(h.audits, r, "delete", "blog")
	respondOK(w, http.StatusOK, "Blog deleted", nil)
}

// ListRevisions returns a post's revision history, newest first.
func (h *Blogs) ListRevisions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	blog, err := h.blogs.FindByID(id)
	if err != nil {
		respondInternal(w, "find blog failed", err)
		return
	}
	if blog == nil {
		respondError(w, http.StatusNotFound, "Blog not found")
		return
	}

	revs, err := h.revisions.ListByBlogID(id)
	if err != nil {
		respondInternal(w, "list revisions failed", err)
		return
	}
	if revs == nil {
		revs = []models.BlogRevision{}
	}
	respondOK(w, http.StatusOK, "OK", envelope{"revisions": revs})
}

type revisionInput struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	ContentHTML     string  `json:"contentHtml"`
	MetaTitle       *string `json:"metaTitle"`
	MetaDescription *string `json:"metaDescription"`
	Excerpt         *string `json:"excerpt"`
}

// CreateRevision appends a manual snapshot to a post's revision log.
func (h *Blogs) CreateRevision(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	blog, err := h.blogs.FindByID(id)
	if err != nil {
		respondInternal(w, "find blog failed", err)
		return
	}
	if blog == nil {
		respondError(w, http.StatusNotFound, "Blog not found")
		return
	}

	var in revisionInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if in.Title == "" {
		respondError(w, http.StatusBadRequest, "Title is required.")
		return
	}

	created, err := h.revisions.Create(&models.BlogRevision{
		BlogID:          id,
		Title:           in.Title,
		Description:     in.Description,
		ContentHTML:     in.ContentHTML,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		Excerpt:         in.Excerpt,
	})
	if err != nil {
		respondInternal(w, "create revision failed", err)
		return
	}

	recordAudit(h.audits, r, "create", "revision")
	respondOK(w, http.StatusCreated, "Revision saved", envelope{"revision": created})
}

// RestoreRevision copies a revision's editable fields back onto the live
// post. The revision log itself is append-only: restoring does not write
// a new entry, and the restored-from revision stays in the log.
func (h *Blogs) RestoreRevision(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	revID, ok := pathUUID(w, r, "revisionId")
	if !ok {
		return
	}

	blog, err := h.blogs.FindByID(id)
	if err != nil {
		respondInternal(w, "find blog failed", err)
		return
	}
	if blog == nil {
		respondError(w, http.StatusNotFound, "Blog not found")
		return
	}

	rev, err := h.revisions.FindByID(revID)
	if err != nil {
		respondInternal(w, "find revision failed", err)
		return
	}
	if rev == nil || rev.BlogID != id {
		respondError(w, http.StatusNotFound, "Revision not found")
		return
	}

	blog.Title = rev.Title
	blog.Description = rev.Description
	blog.MetaTitle = rev.MetaTitle
	blog.MetaDescription = rev.MetaDescription

	if err := h.blogs.Update(blog); err != nil {
		respondInternal(w, "restore revision failed", err)
		return
	}

	recordAudit(h.audits, r, "restore", "blog")
	h.respondWithBlog(w, http.StatusOK, "Revision restored", blog)
}
