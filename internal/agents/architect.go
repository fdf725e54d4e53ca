// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package agents implements the four site-generation agents: the
// architect plans structure, the copywriter produces copy, the visual
// agent produces imagery, and the integrator expands feature tags into
// integration descriptors. The architect and integrator are pure table
// lookups; the copywriter and visual agent call the AI provider layer
// when configured and degrade to deterministic fallbacks otherwise.
package agents

import "siteforge/internal/models"

// Known theme names. The intake form offers more; any name missing from
// a table resolves to that table's default variant.
const (
	ThemeModernMinimalist      = "Modern Minimalist"
	ThemeBoldVibrant           = "Bold & Vibrant"
	ThemeCorporateProfessional = "Corporate Professional"
	ThemeCreativeArtistic      = "Creative & Artistic"
	ThemeElegantLuxury         = "Elegant Luxury"
	ThemeTechStartup           = "Tech Startup"
	ThemeGlassmorphic          = "Glassmorphic"
	ThemeNeumorphic            = "Neumorphic"
	ThemeFuturistic            = "Futuristic"
	ThemeDarkMode              = "Dark Mode"
)

// Known industry names.
const (
	IndustryECommerce  = "E-commerce"
	IndustryRestaurant = "Restaurant"
	IndustryRealEstate = "Real Estate"
	IndustryPortfolio  = "Portfolio"
	IndustryTechnology = "Technology"
	IndustryHealthcare = "Healthcare"
	IndustryEducation  = "Education"
	IndustryLegal      = "Legal"
	IndustryFitness    = "Fitness"
	IndustryTravel     = "Travel"
)

// themePalettes maps the seven themes with bespoke palettes. Every other
// theme gets defaultPalette.
var themePalettes = map[string]models.ColorPalette{
	ThemeModernMinimalist: {
		Primary:    "#000000",
		Secondary:  "#FFFFFF",
		Accent:     "#667EEA",
		Background: "#FAFAFA",
		Text:       "#1A1A1A",
	},
	ThemeBoldVibrant: {
		Primary:    "#FF006E",
		Secondary:  "#8338EC",
		Accent:     "#FFBE0B",
		Background: "#FFFFFF",
		Text:       "#000000",
	},
	ThemeCorporateProfessional: {
		Primary:    "#1E3A8A",
		Secondary:  "#3B82F6",
		Accent:     "#60A5FA",
		Background: "#F8FAFC",
		Text:       "#0F172A",
	},
	ThemeCreativeArtistic: {
		Primary:    "#EC4899",
		Secondary:  "#8B5CF6",
		Accent:     "#F59E0B",
		Background: "#FDF4FF",
		Text:       "#1F2937",
	},
	ThemeElegantLuxury: {
		Primary:    "#92400E",
		Secondary:  "#D97706",
		Accent:     "#FBBF24",
		Background: "#FFFBEB",
		Text:       "#78350F",
	},
	ThemeTechStartup: {
		Primary:    "#7C3AED",
		Secondary:  "#A78BFA",
		Accent:     "#06B6D4",
		Background: "#F5F3FF",
		Text:       "#1E1B4B",
	},
	ThemeGlassmorphic: {
		Primary:    "#667EEA",
		Secondary:  "#764BA2",
		Accent:     "#F093FB",
		Background: "linear-gradient(135deg, #667EEA 0%, #764BA2 100%)",
		Text:       "#FFFFFF",
	},
}

var defaultPalette = models.ColorPalette{
	Primary:    "#667EEA",
	Secondary:  "#764BA2",
	Accent:     "#F093FB",
	Background: "#FFFFFF",
	Text:       "#1F2937",
}

// industryLayouts maps an industry to its page layout variant.
var industryLayouts = map[string]models.Layout{
	IndustryECommerce:  models.LayoutProductFocused,
	IndustryRestaurant: models.LayoutHeroCentric,
	IndustryRealEstate: models.LayoutGridBased,
	IndustryPortfolio:  models.LayoutStoryDriven,
	IndustryTechnology: models.LayoutHeroCentric,
	IndustryHealthcare: models.LayoutHeroCentric,
}

// industrySections maps an industry to its ordered page sections.
var industrySections = map[string][]string{
	IndustryECommerce:  {"hero", "featured-products", "categories", "testimonials", "cta", "footer"},
	IndustryRestaurant: {"hero", "menu", "about", "gallery", "reservations", "footer"},
	IndustryRealEstate: {"hero", "properties", "services", "about", "contact", "footer"},
	IndustryHealthcare: {"hero", "services", "doctors", "testimonials", "contact", "footer"},
	IndustryTechnology: {"hero", "features", "demo", "pricing", "faq", "footer"},
}

var defaultSections = []string{"hero", "features", "about", "testimonials", "contact", "footer"}

// industryFeatures maps an industry to its feature tags. The tags feed
// the integrator's feature rules.
var industryFeatures = map[string][]string{
	IndustryECommerce:  {"shopping-cart", "stripe-checkout", "product-catalog", "search"},
	IndustryRestaurant: {"menu-display", "booking-calendar", "online-ordering", "contact-form"},
	IndustryRealEstate: {"property-listings", "filter-search", "contact-form", "virtual-tours"},
	IndustryHealthcare: {"appointment-booking", "contact-form", "service-catalog", "doctor-profiles"},
	IndustryTechnology: {"demo-request", "pricing-table", "feature-showcase", "contact-form"},
}

var defaultFeatures = []string{"contact-form", "newsletter", "social-links"}

// Architect resolves a business brief into a site structure plan. All
// resolution is pure table lookup: the same inputs always produce a
// structurally equal plan.
type Architect struct{}

// NewArchitect creates an Architect.
func NewArchitect() *Architect {
	return &Architect{}
}

// Plan produces the architecture plan for an industry and theme. It is a
// total function: unknown industries and themes silently degrade to the
// default layout, sections, features, and palette.
func (a *Architect) Plan(industry, theme string) models.ArchitecturePlan {
	return models.ArchitecturePlan{
		Industry:     industry,
		Theme:        theme,
		ColorPalette: PaletteFor(theme),
		Layout:       layoutFor(industry),
		Sections:     sectionsFor(industry),
		Features:     featuresFor(industry),
	}
}

// PaletteFor resolves a theme name to its five-color palette. Lookups
// are exact-match; unknown themes get defaultPalette.
func PaletteFor(theme string) models.ColorPalette {
	if p, ok := themePalettes[theme]; ok {
		return p
	}
	return defaultPalette
}

func layoutFor(industry string) models.Layout {
	if l, ok := industryLayouts[industry]; ok {
		return l
	}
	return models.LayoutHeroCentric
}

// sectionsFor returns a copy so callers cannot mutate the shared table.
func sectionsFor(industry string) []string {
	s, ok := industrySections[industry]
	if !ok {
		s = defaultSections
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func featuresFor(industry string) []string {
	f, ok := industryFeatures[industry]
	if !ok {
		f = defaultFeatures
	}
	out := make([]string, len(f))
	copy(out, f)
	return out
}
