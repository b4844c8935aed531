// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Abrar408/powerpresent-templates/internal/models"
	"github.com/Abrar408/powerpresent-templates/internal/storage"
	"github.com/Abrar408/powerpresent-templates/internal/store"
)

// maxUploadSize caps media uploads at 50 MB.
const maxUploadSize = 50 << 20

// allowedMediaTypes lists the content types accepted for upload.
var allowedMediaTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// Media groups the media HTTP handlers.
type Media struct {
	media   *store.MediaStore
	storage *storage.Client
}

// NewMedia creates a new Media handler group. The storage client may be
// nil when object storage is not configured; uploads then return 503.
func NewMedia(media *store.MediaStore, storageClient *storage.Client) *Media {
	return &Media{media: media, storage: storageClient}
}

// Upload accepts a multipart file, stores it in object storage, and
// records a media row.
func (h *Media) Upload(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		writeError(w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "file too large, maximum size is 50 MB")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		writeError(w, http.StatusRequestEntityTooLarge, "file too large, maximum size is 50 MB")
		return
	}

	// Sniff the real content type instead of trusting the client header.
	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		writeError(w, http.StatusInternalServerError, "failed to read file")
		return
	}
	contentType := http.DetectContentType(sniffBuf[:n])

	// SVGs sniff as XML or plain text.
	if strings.HasSuffix(strings.ToLower(header.Filename), ".svg") &&
		(strings.Contains(contentType, "xml") || strings.Contains(contentType, "text/plain")) {
		contentType = "image/svg+xml"
	}

	if !allowedMediaTypes[contentType] {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("file type %q is not allowed", contentType))
		return
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to process file")
		return
	}
	fileBytes, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read file")
		return
	}

	now := time.Now()
	ext := filepath.Ext(header.Filename)
	fileID := uuid.New().String()
	s3Key := fmt.Sprintf("media/%d/%02d/%s%s", now.Year(), now.Month(), fileID, ext)

	ctx := r.Context()
	if err := h.storage.Upload(ctx, s3Key, contentType, bytes.NewReader(fileBytes), int64(len(fileBytes))); err != nil {
		slog.Error("s3 upload failed", "key", s3Key, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to upload file")
		return
	}

	media := &models.Media{
		FileName:    header.Filename,
		ContentType: contentType,
		SizeBytes:   int64(len(fileBytes)),
		Bucket:      h.storage.Bucket(),
		S3Key:       s3Key,
	}
	if altText := r.FormValue("alt_text"); altText != "" {
		media.AltText = &altText
	}

	created, err := h.media.Create(media)
	if err != nil {
		slog.Error("media insert failed", "key", s3Key, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save file metadata")
		return
	}

	slog.Info("media uploaded", "id", created.ID, "key", s3Key, "size", created.SizeBytes)
	writeData(w, http.StatusCreated, map[string]any{
		"media": created,
		"url":   h.storage.FileURL(s3Key),
	})
}

// Delete removes a media row and its stored object.
func (h *Media) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	media, err := h.media.FindByID(id)
	if err != nil {
		slog.Error("media lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load media")
		return
	}
	if media == nil {
		writeError(w, http.StatusNotFound, "media not found")
		return
	}

	if h.storage != nil {
		if err := h.storage.Delete(r.Context(), media.S3Key); err != nil {
			slog.Warn("s3 delete failed", "key", media.S3Key, "error", err)
		}
	}

	if err := h.media.Delete(id); err != nil {
		slog.Error("media delete failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete media")
		return
	}

	slog.Info("media deleted", "id", id, "key", media.S3Key)
	w.WriteHeader(http.StatusNoContent)
}
