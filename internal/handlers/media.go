// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder

	"gujarattaxi/internal/middleware"
	"gujarattaxi/internal/models"
	"gujarattaxi/internal/storage"
	"gujarattaxi/internal/store"
)

const (
	// maxUploadSize is the maximum allowed file upload size (20 MB).
	maxUploadSize = 20 << 20

	// thumbMaxWidth is the maximum thumbnail width in pixels.
	thumbMaxWidth = 400

	// thumbQuality is the JPEG quality for generated thumbnails.
	thumbQuality = 80

	// maxImagePixels caps decoded size to prevent memory bombs.
	maxImagePixels = 100_000_000
)

// allowedMediaTypes defines MIME types accepted for upload.
var allowedMediaTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// thumbableTypes are image types that support thumbnail generation.
// GIF is excluded to preserve animation; SVG is vector.
var thumbableTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// MediaLibrary groups the media upload and library handlers.
type MediaLibrary struct {
	media   *store.MediaStore
	audits  *store.AuditLogStore
	storage *storage.Client // nil when object storage is unconfigured
}

// NewMediaLibrary creates a new MediaLibrary handler group.
func NewMediaLibrary(media *store.MediaStore, audits *store.AuditLogStore, st *storage.Client) *MediaLibrary {
	return &MediaLibrary{media: media, audits: audits, storage: st}
}

// List returns all media items, newest first.
func (h *MediaLibrary) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.media.List()
	if err != nil {
		respondInternal(w, "list media failed", err)
		return
	}
	if items == nil {
		items = []models.Media{}
	}
	respondOK(w, http.StatusOK, "OK", envelope{"media": items})
}

// Get returns a single media record by ID.
func (h *MediaLibrary) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	item, err := h.media.FindByID(id)
	if err != nil {
		respondInternal(w, "find media failed", err)
		return
	}
	if item == nil {
		respondError(w, http.StatusNotFound, "Media not found")
		return
	}
	respondOK(w, http.StatusOK, "OK", envelope{"media": item})
}

// Upload stores a multipart image in object storage, generates a
// thumbnail for raster types, and records the metadata.
func (h *MediaLibrary) Upload(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		respondError(w, http.StatusServiceUnavailable, "Object storage is not configured")
		return
	}

	sess := middleware.SessionFromCtx(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusRequestEntityTooLarge, "File too large. Maximum size is 20 MB")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		respondError(w, http.StatusRequestEntityTooLarge, "File too large. Maximum size is 20 MB")
		return
	}

	// Detect content type by sniffing the first 512 bytes.
	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		respondInternal(w, "read upload failed", err)
		return
	}
	contentType := http.DetectContentType(sniffBuf[:n])

	// DetectContentType reports SVGs as XML or plain text.
	if strings.HasSuffix(strings.ToLower(header.Filename), ".svg") &&
		(strings.Contains(contentType, "xml") || strings.Contains(contentType, "text/plain")) {
		contentType = "image/svg+xml"
	}

	if !allowedMediaTypes[contentType] {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("File type %q is not allowed", contentType))
		return
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		respondInternal(w, "seek upload failed", err)
		return
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		respondInternal(w, "read upload failed", err)
		return
	}

	ext := filepath.Ext(header.Filename)
	if ext == "" {
		ext = extensionFromType(contentType)
	}

	now := time.Now()
	folder := fmt.Sprintf("media/%d/%02d", now.Year(), now.Month())
	result, err := h.storage.Upload(r.Context(), folder, ext, contentType,
		bytes.NewReader(fileBytes), int64(len(fileBytes)))
	if err != nil {
		respondInternal(w, "object upload failed", err)
		return
	}

	// Thumbnail failures are logged, never fatal.
	var thumbKey *string
	if thumbableTypes[contentType] {
		thumbData, err := generateThumbnail(bytes.NewReader(fileBytes), thumbMaxWidth)
		if err != nil {
			slog.Warn("thumbnail generation failed", "error", err, "key", result.Key)
		} else if thumbData != nil {
			tk := strings.TrimSuffix(result.Key, ext) + "_thumb.jpg"
			if _, err := h.storage.UploadWithKey(r.Context(), tk, "image/jpeg",
				bytes.NewReader(thumbData), int64(len(thumbData))); err != nil {
				slog.Warn("thumbnail upload failed", "error", err, "key", tk)
			} else {
				thumbKey = &tk
			}
		}
	}

	media := &models.Media{
		URL:         result.URL,
		StorageKey:  result.Key,
		ThumbKey:    thumbKey,
		ContentType: contentType,
		SizeBytes:   int64(len(fileBytes)),
	}
	if sess != nil {
		media.UploadedBy = &sess.UserID
	}
	if alt := r.FormValue("altText"); alt != "" {
		media.AltText = &alt
	}
	if caption := r.FormValue("caption"); caption != "" {
		media.Caption = &caption
	}

	created, err := h.media.Create(media)
	if err != nil {
		respondInternal(w, "save media metadata failed", err)
		return
	}

	thumbURL := ""
	if created.ThumbKey != nil {
		thumbURL = h.storage.FileURL(*created.ThumbKey)
	}

	recordAudit(h.audits, r, "upload", "media")
	respondOK(w, http.StatusCreated, "File uploaded", envelope{
		"media":    created,
		"thumbUrl": thumbURL,
		"size":     created.HumanSize(),
	})
}

type mediaMetaInput struct {
	AltText *string `json:"altText"`
	Caption *string `json:"caption"`
}

// UpdateMeta changes the alt text and caption of a media item.
func (h *MediaLibrary) UpdateMeta(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	item, err := h.media.FindByID(id)
	if err != nil {
		respondInternal(w, "find media failed", err)
		return
	}
	if item == nil {
		respondError(w, http.StatusNotFound, "Media not found")
		return
	}

	var in mediaMetaInput
	if !decodeJSON(w, r, &in) {
		return
	}

	if err := h.media.UpdateMeta(id, in.AltText, in.Caption); err != nil {
		respondInternal(w, "update media failed", err)
		return
	}

	item.AltText = in.AltText
	item.Caption = in.Caption

	recordAudit(h.audits, r, "update", "media")
	respondOK(w, http.StatusOK, "Media updated", envelope{"media": item})
}

// Delete removes a media item and best-effort deletes its objects.
func (h *MediaLibrary) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	item, err := h.media.FindByID(id)
	if err != nil {
		respondInternal(w, "find media failed", err)
		return
	}
	if item == nil {
		respondError(w, http.StatusNotFound, "Media not found")
		return
	}

	if err := h.media.Delete(id); err != nil {
		respondInternal(w, "delete media failed", err)
		return
	}

	if h.storage != nil {
		if err := h.storage.Delete(r.Context(), item.StorageKey); err != nil {
			slog.Warn("object delete failed", "error", err, "key", item.StorageKey)
		}
		if item.ThumbKey != nil {
			if err := h.storage.Delete(r.Context(), *item.ThumbKey); err != nil {
				slog.Warn("thumbnail delete failed", "error", err, "key", *item.ThumbKey)
			}
		}
	}

	recordAudit(h.audits, r, "delete", "media")
	respondOK(w, http.StatusOK, "Media deleted", nil)
}

// generateThumbnail creates a JPEG thumbnail from an image, constrained
// to maxWidth while preserving aspect ratio. Returns nil if the image is
// already smaller than maxWidth.
func generateThumbnail(src io.Reader, maxWidth int) ([]byte, error) {
	imgCfg, _, err := image.DecodeConfig(src)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if int64(imgCfg.Width)*int64(imgCfg.Height) > maxImagePixels {
		return nil, fmt.Errorf("image too large: %dx%d exceeds %d pixels", imgCfg.Width, imgCfg.Height, maxImagePixels)
	}

	if imgCfg.Width <= maxWidth {
		return nil, nil
	}

	if seeker, ok := src.(io.Seeker); ok {
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("seek: %w", err)
		}
	} else {
		return nil, fmt.Errorf("source does not support seeking")
	}

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	ratio := float64(maxWidth) / float64(bounds.Dx())
	newWidth := maxWidth
	newHeight := int(float64(bounds.Dy()) * ratio)

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: thumbQuality}); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}

	return buf.Bytes(), nil
}

// extensionFromType returns a file extension for known MIME types.
func extensionFromType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	default:
		return ""
	}
}
