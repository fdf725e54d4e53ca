// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package agents

import (
	"context"
	"fmt"
	"log/slog"

	"siteforge/internal/ai"
	"siteforge/internal/models"
)

// FallbackHeroImageURL is the stock photo served when image generation
// is unavailable or fails.
const FallbackHeroImageURL = "https://images.unsplash.com/photo-1557683316-973673baf926?w=1792&h=1024&fit=crop"

// fallbackHeroPrompt marks visuals that did not come from a provider.
const fallbackHeroPrompt = "Fallback image"

// themeStyles maps a theme to the style descriptor embedded in the image
// prompt.
var themeStyles = map[string]string{
	ThemeModernMinimalist:      "minimalist, clean lines, white space, simple geometric shapes",
	ThemeBoldVibrant:           "bold colors, high contrast, energetic, dynamic composition",
	ThemeCorporateProfessional: "professional, business setting, modern office, clean and sophisticated",
	ThemeCreativeArtistic:      "artistic, creative, colorful, abstract elements",
	ThemeElegantLuxury:         "luxury, elegant, premium quality, sophisticated lighting",
	ThemeTechStartup:           "futuristic, technology, innovation, digital elements",
	ThemeGlassmorphic:          "glass effect, translucent, frosted glass, modern blur effect",
	ThemeFuturistic:            "sci-fi, futuristic technology, neon lights, cyber aesthetic",
}

const defaultThemeStyle = "modern and professional"

// industryContexts maps an industry to the scene descriptor embedded in
// the image prompt.
var industryContexts = map[string]string{
	IndustryECommerce:  "online shopping, products, retail store",
	IndustryRestaurant: "gourmet food, dining experience, culinary artistry",
	IndustryRealEstate: "modern architecture, beautiful property, luxury home",
	IndustryHealthcare: "medical care, health and wellness, hospital setting",
	IndustryTechnology: "cutting-edge technology, software, digital innovation",
	IndustryFitness:    "fitness training, healthy lifestyle, gym environment",
	IndustryEducation:  "learning environment, education, knowledge",
	IndustryTravel:     "travel destination, adventure, exploration",
}

const defaultIndustryContext = "business setting"

// themeEffects maps a theme to its design-effect tags.
var themeEffects = map[string][]string{
	ThemeModernMinimalist:      {"clean", "spacious", "typography-focused"},
	ThemeBoldVibrant:           {"gradient", "high-contrast", "animated"},
	ThemeCorporateProfessional: {"subtle-shadows", "clean", "grid-layout"},
	ThemeCreativeArtistic:      {"animated", "gradient", "irregular-shapes"},
	ThemeElegantLuxury:         {"gold-accents", "subtle-animations", "serif-typography"},
	ThemeTechStartup:           {"gradient", "animated", "geometric-patterns"},
	ThemeGlassmorphic:          {"glass-effect", "backdrop-blur", "transparency"},
	ThemeNeumorphic:            {"neumorphic", "soft-shadows", "depth"},
	ThemeFuturistic:            {"neon-glow", "animated", "gradient"},
	ThemeDarkMode:              {"dark-theme", "high-contrast", "glow-effects"},
}

var defaultEffects = []string{"gradient", "clean"}

// Visual produces the hero image reference and design-effect tags.
// Design effects are always computed locally; the hero image comes from
// the active image provider when one is configured, with a stock photo
// fallback on any failure or empty result.
type Visual struct {
	providers *ai.Registry
}

// NewVisual creates a Visual agent. providers may be an empty registry.
func NewVisual(providers *ai.Registry) *Visual {
	return &Visual{providers: providers}
}

// GenerateVisuals synthesizes the visual assets for a request. Failures
// are absorbed here and never surface to the caller.
func (v *Visual) GenerateVisuals(ctx context.Context, req models.SiteRequest) (models.VisualAssets, Outcome) {
	effects := DesignEffectsFor(req.Theme)

	if v.providers == nil || !v.providers.Configured() || !v.providers.SupportsImageGeneration() {
		return fallbackVisuals(effects), Fallback("no image provider configured")
	}

	prompt := imagePrompt(req)

	url, err := v.providers.GenerateImage(ctx, prompt)
	if err != nil {
		slog.Warn("image generation failed, using fallback", "error", err)
		return fallbackVisuals(effects), Fallback("image generation failed")
	}
	if url == "" {
		slog.Warn("image generation returned no image, using fallback")
		return fallbackVisuals(effects), Fallback("empty image result")
	}

	return models.VisualAssets{
		HeroImageURL:    url,
		HeroImagePrompt: prompt,
		DesignEffects:   effects,
	}, Generated()
}

func fallbackVisuals(effects []string) models.VisualAssets {
	return models.VisualAssets{
		HeroImageURL:    FallbackHeroImageURL,
		HeroImagePrompt: fallbackHeroPrompt,
		DesignEffects:   effects,
	}
}

// imagePrompt combines the theme style and industry context descriptors
// into a single natural-language image-generation prompt.
func imagePrompt(req models.SiteRequest) string {
	style, ok := themeStyles[req.Theme]
	if !ok {
		style = defaultThemeStyle
	}
	context, ok := industryContexts[req.Industry]
	if !ok {
		context = defaultIndustryContext
	}

	return fmt.Sprintf(
		"A hero image for %s, %s. %s. Style: %s. High quality, professional, suitable for website header. Wide landscape format.",
		req.BusinessName, req.Description, context, style,
	)
}

// DesignEffectsFor resolves a theme to its effect tags, returning a copy
// of the table entry.
func DesignEffectsFor(theme string) []string {
	e, ok := themeEffects[theme]
	if !ok {
		e = defaultEffects
	}
	out := make([]string, len(e))
	copy(out, e)
	return out
}
