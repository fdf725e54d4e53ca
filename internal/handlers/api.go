// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON API surface: site generation,
// preview-data reads, and the share QR code.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"siteforge/internal/cache"
	"siteforge/internal/generator"
	"siteforge/internal/models"
	"siteforge/internal/store"
)

// API groups the public JSON endpoints and their dependencies. websites
// and records may be nil when persistence or caching is not configured.
type API struct {
	generator *generator.Generator
	websites  *store.WebsiteStore
	records   *cache.WebsiteCache
	publicURL string
}

// NewAPI creates the API handler group.
func NewAPI(gen *generator.Generator, websites *store.WebsiteStore, records *cache.WebsiteCache, publicURL string) *API {
	return &API{
		generator: gen,
		websites:  websites,
		records:   records,
		publicURL: publicURL,
	}
}

// generateResponse is the success envelope for POST /api/generate and
// GET /api/websites/{id}.
type generateResponse struct {
	Success   bool            `json:"success"`
	WebsiteID string          `json:"websiteId,omitempty"`
	Data      *models.Website `json:"data,omitempty"`
}

// errorResponse is the failure envelope for every endpoint.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Generate handles POST /api/generate. Malformed or incomplete input is
// the only rejection: once validation passes, the pipeline always
// produces a usable record, degrading internally when collaborators are
// absent or failing.
func (a *API) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.SiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	if msg := validateSiteRequest(req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	result, err := a.generator.Generate(r.Context(), req)
	if err != nil {
		slog.Error("generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Success:   true,
		WebsiteID: result.WebsiteID,
		Data:      &result.Website,
	})
}

// GetWebsite handles GET /api/websites/{id}: the preview surface's data
// source. Reads go through the record cache first, then the store.
// Demo-prefixed identifiers were never persisted and resolve to 404.
func (a *API) GetWebsite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idParam := chi.URLParam(r, "id")

	if a.records != nil {
		if record, ok := a.records.Get(ctx, idParam); ok {
			writeJSON(w, http.StatusOK, generateResponse{Success: true, WebsiteID: idParam, Data: record})
			return
		}
	}

	if a.websites == nil {
		writeError(w, http.StatusServiceUnavailable, "Storage is not configured")
		return
	}

	id, err := uuid.Parse(idParam)
	if err != nil {
		writeError(w, http.StatusNotFound, "Website not found")
		return
	}

	record, err := a.websites.FindByID(ctx, id)
	if err != nil {
		slog.Error("find website failed", "error", err, "id", idParam)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if record == nil {
		writeError(w, http.StatusNotFound, "Website not found")
		return
	}

	if a.records != nil {
		a.records.Set(ctx, idParam, record)
	}

	writeJSON(w, http.StatusOK, generateResponse{Success: true, WebsiteID: idParam, Data: record})
}

// WebsiteQR handles GET /api/websites/{id}/qr: a PNG QR code encoding
// the preview URL, for sharing a generated site from the intake flow.
func (a *API) WebsiteQR(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")

	previewURL := a.publicURL + "/preview/" + idParam

	png, err := qrcode.Encode(previewURL, qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr code generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write json response failed", "error", err)
	}
}

// writeError writes the JSON failure envelope.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Error: message})
}
