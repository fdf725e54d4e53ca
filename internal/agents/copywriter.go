// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"siteforge/internal/ai"
	"siteforge/internal/models"
)

// maxMetaDescriptionLen is the SEO limit applied to the fallback meta
// description. Hard cut, no ellipsis.
const maxMetaDescriptionLen = 155

const copywriterSystemPrompt = "You are an expert copywriter specializing in website content and SEO. Always respond with valid JSON."

const contentPromptTemplate = `Generate professional website content for a %s business named "%s".

Business Description: %s
Theme Style: %s

Generate the following in JSON format:
{
  "heroHeadline": "Compelling headline (max 10 words)",
  "heroSubheadline": "Supporting text (max 20 words)",
  "aboutSection": "About section content (2-3 sentences)",
  "features": [
    {"title": "Feature 1", "description": "Brief description"},
    {"title": "Feature 2", "description": "Brief description"},
    {"title": "Feature 3", "description": "Brief description"}
  ],
  "metaTitle": "SEO-optimized title (max 60 chars)",
  "metaDescription": "SEO-optimized description (max 155 chars)"
}

Make it professional, engaging, and SEO-optimized.`

// schemaTypeOrganization is the generic JSON-LD type used when the
// industry is unknown, and forced on the remote-failure fallback path.
const schemaTypeOrganization = "Organization"

// industrySchemaTypes maps an industry to its schema.org type.
var industrySchemaTypes = map[string]string{
	IndustryECommerce:  "Store",
	IndustryRestaurant: "Restaurant",
	IndustryRealEstate: "RealEstateAgent",
	IndustryHealthcare: "MedicalBusiness",
	IndustryEducation:  "EducationalOrganization",
	IndustryLegal:      "LegalService",
	IndustryTechnology: "Organization",
	IndustryFitness:    "HealthAndBeautyBusiness",
}

// Copywriter produces website copy. With a configured text provider it
// makes one best-effort generation call; otherwise, or on any call or
// parse failure, it returns deterministic templated copy. Failures are
// absorbed here and never surface to the caller.
type Copywriter struct {
	providers *ai.Registry
}

// NewCopywriter creates a Copywriter. providers may be an empty registry,
// in which case every request takes the fallback path.
func NewCopywriter(providers *ai.Registry) *Copywriter {
	return &Copywriter{providers: providers}
}

// GenerateContent synthesizes the website copy for a request.
//
// The two fallback paths differ on purpose: with no provider configured
// the structured data uses the industry-specific schema type, while a
// failed remote call forces the generic "Organization" type. This
// mirrors the behaviour the preview surface was built against.
func (c *Copywriter) GenerateContent(ctx context.Context, req models.SiteRequest) (models.WebsiteContent, Outcome) {
	if c.providers == nil || !c.providers.Configured() {
		return c.fallbackContent(req, SchemaTypeFor(req.Industry)), Fallback("no text provider configured")
	}

	prompt := fmt.Sprintf(contentPromptTemplate, req.Industry, req.BusinessName, req.Description, req.Theme)

	raw, err := c.providers.Generate(ctx, copywriterSystemPrompt, prompt)
	if err != nil {
		slog.Warn("content generation failed, using fallback", "error", err)
		return c.fallbackContent(req, schemaTypeOrganization), Fallback("text generation failed")
	}

	var content models.WebsiteContent
	if err := json.Unmarshal([]byte(stripJSONFences(raw)), &content); err != nil {
		slog.Warn("content response parse failed, using fallback", "error", err)
		return c.fallbackContent(req, schemaTypeOrganization), Fallback("response parse failed")
	}

	// Structured data is always computed locally, never trusted from the
	// provider response. Only this path carries the canonical URL.
	content.StructuredData = models.StructuredData{
		Context:     "https://schema.org",
		Type:        SchemaTypeFor(req.Industry),
		Name:        req.BusinessName,
		Description: req.Description,
		URL:         "https://example.com",
	}

	return content, Generated()
}

// fallbackContent builds the deterministic copy used when the provider
// is absent or failed. The schema type is a parameter because the two
// call sites disagree on it.
func (c *Copywriter) fallbackContent(req models.SiteRequest, schemaType string) models.WebsiteContent {
	return models.WebsiteContent{
		HeroHeadline:    fmt.Sprintf("Welcome to %s", req.BusinessName),
		HeroSubheadline: req.Description,
		AboutSection: fmt.Sprintf(
			"%s is a leading %s business dedicated to providing exceptional service and value to our customers.",
			req.BusinessName, req.Industry,
		),
		Features: []models.ContentFeature{
			{Title: "Quality Service", Description: "We deliver excellence in everything we do"},
			{Title: "Expert Team", Description: "Our professionals are industry leaders"},
			{Title: "Customer Focus", Description: "Your satisfaction is our priority"},
		},
		MetaTitle:       fmt.Sprintf("%s | %s", req.BusinessName, req.Industry),
		MetaDescription: truncate(req.Description, maxMetaDescriptionLen),
		StructuredData: models.StructuredData{
			Context:     "https://schema.org",
			Type:        schemaType,
			Name:        req.BusinessName,
			Description: req.Description,
		},
	}
}

// SchemaTypeFor resolves an industry to its schema.org type, defaulting
// to "Organization" for unknown industries.
func SchemaTypeFor(industry string) string {
	if t, ok := industrySchemaTypes[industry]; ok {
		return t
	}
	return schemaTypeOrganization
}

// stripJSONFences removes Markdown code fences some models wrap around
// JSON output even in structured response mode.
func stripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// truncate hard-cuts a string to n characters (runes, not bytes), so a
// multi-byte description never gets split mid-rune.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
