// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package agents

import "siteforge/internal/models"

// Integrator expands the architect's feature tags plus the industry into
// capability flags and a descriptor list. Pure and deterministic.
//
// Descriptors are accumulated append-only: feature-triggered rules and
// the unconditional industry rules can add overlapping entries (an
// E-commerce site always gets Stripe even when the feature list omits
// it), and nothing deduplicates them. Callers should treat the list as
// per-call output, not an idempotent merge into prior state.
type Integrator struct{}

// NewIntegrator creates an Integrator.
func NewIntegrator() *Integrator {
	return &Integrator{}
}

// Configure builds the integration configuration for an industry and
// feature tag list. Contact form, newsletter, and social links are
// always enabled. Unrecognized feature tags are silently ignored.
func (i *Integrator) Configure(industry string, features []string) models.IntegrationConfig {
	cfg := models.IntegrationConfig{
		ContactFormEnabled: true,
		NewsletterEnabled:  true,
		SocialLinksEnabled: true,
		Integrations:       []models.Integration{},
	}

	for _, feature := range features {
		switch feature {
		case "shopping-cart", "stripe-checkout":
			cfg.StripeEnabled = true
			cfg.Integrations = append(cfg.Integrations, models.Integration{
				Name: "Stripe Checkout",
				Type: "payment",
				Config: map[string]any{
					"mode":       "payment",
					"successUrl": "/success",
					"cancelUrl":  "/cancel",
				},
			})

		case "booking-calendar", "appointment-booking":
			cfg.BookingEnabled = true
			cfg.Integrations = append(cfg.Integrations, models.Integration{
				Name: "Booking System",
				Type: "booking",
				Config: map[string]any{
					"timeSlots":     []string{"9:00 AM", "10:00 AM", "11:00 AM", "2:00 PM", "3:00 PM", "4:00 PM"},
					"daysAvailable": []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
				},
			})

		case "online-ordering":
			cfg.Integrations = append(cfg.Integrations, models.Integration{
				Name: "Online Ordering",
				Type: "ordering",
				Config: map[string]any{
					"deliveryEnabled": true,
					"pickupEnabled":   true,
				},
			})
		}
	}

	// Industry rules fire regardless of the feature list.
	switch industry {
	case IndustryECommerce:
		cfg.StripeEnabled = true
		cfg.Integrations = append(cfg.Integrations, models.Integration{
			Name: "Product Catalog",
			Type: "catalog",
			Config: map[string]any{
				"categories": []string{"Featured", "New Arrivals", "Best Sellers"},
				"filters":    []string{"price", "category", "rating"},
			},
		})

	case IndustryRestaurant:
		cfg.Integrations = append(cfg.Integrations, models.Integration{
			Name: "Menu Management",
			Type: "menu",
			Config: map[string]any{
				"categories":  []string{"Appetizers", "Main Course", "Desserts", "Beverages"},
				"allergyInfo": true,
			},
		})

	case IndustryRealEstate:
		cfg.Integrations = append(cfg.Integrations, models.Integration{
			Name: "Property Listings",
			Type: "listings",
			Config: map[string]any{
				"filters":      []string{"price", "bedrooms", "bathrooms", "location"},
				"virtualTours": true,
			},
		})
	}

	return cfg
}
