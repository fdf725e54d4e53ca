// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generator assembles the four agent outputs into a site record
// and persists it. The flow never fails for a well-formed request:
// remote-service failures were already absorbed by the agents, and a
// missing or failing store yields a demo identifier instead of an error.
package generator

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"siteforge/internal/agents"
	"siteforge/internal/ai"
	"siteforge/internal/cache"
	"siteforge/internal/models"
	"siteforge/internal/storage"
)

// maxHeroImageBytes caps how much of a provider-hosted image gets
// mirrored into object storage.
const maxHeroImageBytes = 20 << 20

// WebsiteStore is the persistence collaborator: one insert-and-return
// operation over the websites collection.
type WebsiteStore interface {
	Create(ctx context.Context, w *models.Website) (uuid.UUID, error)
}

// Generator runs the generation pipeline: architect, copywriter, visual,
// integrator, then persistence. The store, record cache, and object
// storage may all be nil; each absence degrades the corresponding step
// rather than failing the flow.
type Generator struct {
	architect  *agents.Architect
	copywriter *agents.Copywriter
	visual     *agents.Visual
	integrator *agents.Integrator

	store   WebsiteStore
	records *cache.WebsiteCache
	objects *storage.Client

	httpClient *http.Client
}

// Result is the outcome of one generation run. WebsiteID is either the
// storage-assigned identifier or a synthesized demo id; the outcomes
// report which synthesis paths degraded to fallbacks.
type Result struct {
	WebsiteID string
	Website   models.Website

	ContentOutcome agents.Outcome
	VisualOutcome  agents.Outcome
	Persisted      bool
}

// New creates a Generator. providers may be an empty registry; store,
// records, and objects may be nil.
func New(providers *ai.Registry, store WebsiteStore, records *cache.WebsiteCache, objects *storage.Client) *Generator {
	return &Generator{
		architect:  agents.NewArchitect(),
		copywriter: agents.NewCopywriter(providers),
		visual:     agents.NewVisual(providers),
		integrator: agents.NewIntegrator(),
		store:      store,
		records:    records,
		objects:    objects,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Generate runs the full pipeline for a validated request. The steps are
// sequential; only the integrator has a real data dependency (it consumes
// the architect's feature list).
func (g *Generator) Generate(ctx context.Context, req models.SiteRequest) (*Result, error) {
	plan := g.architect.Plan(req.Industry, req.Theme)

	content, contentOutcome := g.copywriter.GenerateContent(ctx, req)
	visuals, visualOutcome := g.visual.GenerateVisuals(ctx, req)

	// Provider-hosted image URLs expire; mirror generated ones into our
	// own bucket when object storage is available. Failure keeps the
	// provider URL.
	if g.objects != nil && !visualOutcome.Degraded() {
		if mirrored, ok := g.mirrorHeroImage(ctx, visuals.HeroImageURL); ok {
			visuals.HeroImageURL = mirrored
		}
	}

	integrations := g.integrator.Configure(req.Industry, plan.Features)

	record := models.Website{
		BusinessName: req.BusinessName,
		Description:  req.Description,
		Industry:     req.Industry,
		Theme:        req.Theme,
		Architecture: plan,
		Content:      content,
		Visuals:      visuals,
		Integrations: integrations,
		Status:       models.WebsiteStatusGenerated,
		CreatedAt:    time.Now().UTC(),
	}

	websiteID, persisted := g.persist(ctx, &record)

	slog.Info("website generated",
		"websiteId", websiteID,
		"industry", req.Industry,
		"theme", req.Theme,
		"content", contentOutcome.Mode,
		"visuals", visualOutcome.Mode,
		"persisted", persisted,
	)

	return &Result{
		WebsiteID:      websiteID,
		Website:        record,
		ContentOutcome: contentOutcome,
		VisualOutcome:  visualOutcome,
		Persisted:      persisted,
	}, nil
}

// persist writes the record through the store when one is configured.
// Storage failures are invisible to the end user: any failure yields a
// demo identifier and the flow still reports success.
func (g *Generator) persist(ctx context.Context, record *models.Website) (string, bool) {
	if g.store == nil {
		return demoID(), false
	}

	id, err := g.store.Create(ctx, record)
	if err != nil {
		slog.Warn("website persist failed, issuing demo id", "error", err)
		return demoID(), false
	}

	if g.records != nil {
		g.records.Set(ctx, id.String(), record)
	}
	return id.String(), true
}

// demoID synthesizes the ephemeral identifier used when persistence is
// unavailable.
func demoID() string {
	return "demo-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// mirrorHeroImage downloads a provider-hosted image and uploads it to
// the public bucket, returning the mirrored URL. All failures are
// absorbed: the caller keeps the original URL.
func (g *Generator) mirrorHeroImage(ctx context.Context, srcURL string) (string, bool) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, srcURL, nil)
	if err != nil {
		slog.Warn("hero image mirror: bad source url", "error", err)
		return "", false
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		slog.Warn("hero image mirror: download failed", "error", err)
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("hero image mirror: unexpected status", "status", resp.StatusCode)
		return "", false
	}

	// Read one byte past the cap so an oversized body is detected rather
	// than silently truncated into a corrupt upload.
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxHeroImageBytes+1))
	if err != nil {
		slog.Warn("hero image mirror: read failed", "error", err)
		return "", false
	}
	if len(data) > maxHeroImageBytes {
		slog.Warn("hero image mirror: image exceeds size limit", "limit", maxHeroImageBytes)
		return "", false
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}

	key := "heroes/" + uuid.New().String() + extensionFor(contentType)
	if err := g.objects.Upload(ctx, key, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
		slog.Warn("hero image mirror: upload failed", "error", err)
		return "", false
	}

	url := g.objects.PublicFileURL(key)
	slog.Debug("hero image mirrored", "key", key)
	return url, true
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
