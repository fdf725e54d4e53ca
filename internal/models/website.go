// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the generated-site record and its nested agent
// outputs. The JSON tags are the wire shape consumed by the preview
// surface: snake_case at the record's top level, camelCase inside the
// nested blocks. Do not rename fields without updating the preview.
package models

import "time"

// SiteRequest is the immutable intake form submitted by the client.
// Industry and Theme are free strings; resolvers tolerate unknown values
// and degrade to their default variants.
type SiteRequest struct {
	BusinessName string `json:"businessName"`
	Description  string `json:"description"`
	Industry     string `json:"industry"`
	Theme        string `json:"theme"`
}

// ColorPalette is a five-slot palette. Values are CSS colors; Background
// may be a gradient expression for themes like Glassmorphic.
type ColorPalette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// Layout is the page layout variant selected for an industry.
type Layout string

const (
	LayoutHeroCentric    Layout = "hero-centric"
	LayoutGridBased      Layout = "grid-based"
	LayoutStoryDriven    Layout = "story-driven"
	LayoutProductFocused Layout = "product-focused"
)

// ArchitecturePlan bundles palette, layout, sections, and feature tags
// describing a generated site's structure. Sections and Features are
// never empty: unknown industries fall back to the default template.
type ArchitecturePlan struct {
	Industry     string       `json:"industry"`
	Theme        string       `json:"theme"`
	ColorPalette ColorPalette `json:"colorPalette"`
	Layout       Layout       `json:"layout"`
	Sections     []string     `json:"sections"`
	Features     []string     `json:"features"`
}

// ContentFeature is one of the three feature blurbs on the generated page.
type ContentFeature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// StructuredData is the JSON-LD block emitted for search engines. It is
// always computed locally, never trusted from a provider response. URL is
// only set on the remote-success path.
type StructuredData struct {
	Context     string `json:"@context"`
	Type        string `json:"@type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
}

// WebsiteContent is the copywriter output. Both generation paths produce
// exactly three features, and MetaDescription never exceeds 155 characters
// on the fallback path.
type WebsiteContent struct {
	HeroHeadline    string           `json:"heroHeadline"`
	HeroSubheadline string           `json:"heroSubheadline"`
	AboutSection    string           `json:"aboutSection"`
	Features        []ContentFeature `json:"features"`
	MetaTitle       string           `json:"metaTitle"`
	MetaDescription string           `json:"metaDescription"`
	StructuredData  StructuredData   `json:"structuredData"`
}

// VisualAssets is the visual synthesizer output.
type VisualAssets struct {
	HeroImageURL    string   `json:"heroImageUrl"`
	HeroImagePrompt string   `json:"heroImagePrompt"`
	DesignEffects   []string `json:"designEffects"`
}

// Integration is one named capability block (payment, booking, ordering,
// catalog, menu, listings). Config is rule-specific and heterogeneous.
type Integration struct {
	Name   string         `json:"name"`
	Type   string         `json:"type"`
	Config map[string]any `json:"config"`
}

// IntegrationConfig holds capability flags plus the accumulated descriptor
// list. The list is append-only per invocation; feature-triggered and
// industry-triggered rules may add overlapping entries and no
// deduplication is performed.
type IntegrationConfig struct {
	StripeEnabled      bool          `json:"stripeEnabled"`
	BookingEnabled     bool          `json:"bookingEnabled"`
	ContactFormEnabled bool          `json:"contactFormEnabled"`
	NewsletterEnabled  bool          `json:"newsletterEnabled"`
	SocialLinksEnabled bool          `json:"socialLinksEnabled"`
	Integrations       []Integration `json:"integrations"`
}

// WebsiteStatus is the lifecycle state of a site record. Records are
// created once and never mutated, so "generated" is currently the only
// status written.
type WebsiteStatus string

const WebsiteStatusGenerated WebsiteStatus = "generated"

// Website is the persisted site record: the request fields plus the four
// agent outputs. The storage identifier lives outside the record — it is
// either assigned by the database or synthesized as demo-<epoch-millis>
// when persistence is unavailable.
type Website struct {
	BusinessName string            `json:"business_name"`
	Description  string            `json:"description"`
	Industry     string            `json:"industry"`
	Theme        string            `json:"theme"`
	Architecture ArchitecturePlan  `json:"architecture"`
	Content      WebsiteContent    `json:"content"`
	Visuals      VisualAssets      `json:"visuals"`
	Integrations IntegrationConfig `json:"integrations"`
	Status       WebsiteStatus     `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
}
