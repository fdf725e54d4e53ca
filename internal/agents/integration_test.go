// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package agents

import (
	"reflect"
	"testing"

	"siteforge/internal/models"
)

func findIntegration(cfg models.IntegrationConfig, name string) (models.Integration, bool) {
	for _, in := range cfg.Integrations {
		if in.Name == name {
			return in, true
		}
	}
	return models.Integration{}, false
}

func TestConfigure_BaselineAlwaysEnabled(t *testing.T) {
	cfg := NewIntegrator().Configure("Unknown", nil)

	if !cfg.ContactFormEnabled || !cfg.NewsletterEnabled || !cfg.SocialLinksEnabled {
		t.Errorf("baseline flags must always be true: %+v", cfg)
	}
	if cfg.StripeEnabled || cfg.BookingEnabled {
		t.Errorf("stripe/booking must be off without triggers: %+v", cfg)
	}
	if cfg.Integrations == nil {
		t.Error("integrations must be an empty slice, not nil")
	}
	if len(cfg.Integrations) != 0 {
		t.Errorf("integrations = %+v, want empty", cfg.Integrations)
	}
}

func TestConfigure_StripeFeature(t *testing.T) {
	for _, feature := range []string{"shopping-cart", "stripe-checkout"} {
		t.Run(feature, func(t *testing.T) {
			cfg := NewIntegrator().Configure(IndustryTechnology, []string{feature})

			if !cfg.StripeEnabled {
				t.Error("stripeEnabled must be true")
			}
			// Technology has no industry rule, so only the feature rule fires.
			if len(cfg.Integrations) != 1 {
				t.Errorf("integrations = %d, want exactly 1", len(cfg.Integrations))
			}
			in, ok := findIntegration(cfg, "Stripe Checkout")
			if !ok {
				t.Fatal("missing Stripe Checkout integration")
			}
			if in.Type != "payment" {
				t.Errorf("type = %q", in.Type)
			}
			if in.Config["mode"] != "payment" ||
				in.Config["successUrl"] != "/success" ||
				in.Config["cancelUrl"] != "/cancel" {
				t.Errorf("config = %+v", in.Config)
			}
		})
	}
}

func TestConfigure_BookingFeature(t *testing.T) {
	for _, feature := range []string{"booking-calendar", "appointment-booking"} {
		t.Run(feature, func(t *testing.T) {
			cfg := NewIntegrator().Configure(IndustryHealthcare, []string{feature})

			if !cfg.BookingEnabled {
				t.Error("bookingEnabled must be true")
			}
			in, ok := findIntegration(cfg, "Booking System")
			if !ok {
				t.Fatal("missing Booking System integration")
			}
			if in.Type != "booking" {
				t.Errorf("type = %q", in.Type)
			}
			slots, _ := in.Config["timeSlots"].([]string)
			if len(slots) != 6 || slots[0] != "9:00 AM" || slots[5] != "4:00 PM" {
				t.Errorf("timeSlots = %v", slots)
			}
			days, _ := in.Config["daysAvailable"].([]string)
			if want := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}; !reflect.DeepEqual(days, want) {
				t.Errorf("daysAvailable = %v", days)
			}
		})
	}
}

func TestConfigure_OnlineOrdering(t *testing.T) {
	cfg := NewIntegrator().Configure("Unknown", []string{"online-ordering"})

	in, ok := findIntegration(cfg, "Online Ordering")
	if !ok {
		t.Fatal("missing Online Ordering integration")
	}
	if in.Type != "ordering" {
		t.Errorf("type = %q", in.Type)
	}
	if in.Config["deliveryEnabled"] != true || in.Config["pickupEnabled"] != true {
		t.Errorf("config = %+v", in.Config)
	}
}

func TestConfigure_UnknownFeaturesIgnored(t *testing.T) {
	cfg := NewIntegrator().Configure("Unknown", []string{"contact-form", "newsletter", "virtual-tours", "nonsense"})

	if len(cfg.Integrations) != 0 {
		t.Errorf("unrecognized features must add nothing: %+v", cfg.Integrations)
	}
	if cfg.StripeEnabled || cfg.BookingEnabled {
		t.Errorf("flags = %+v", cfg)
	}
}

func TestConfigure_ECommerceIndustryRule(t *testing.T) {
	// The industry rule fires even with an empty feature list.
	cfg := NewIntegrator().Configure(IndustryECommerce, nil)

	if !cfg.StripeEnabled {
		t.Error("E-commerce must always enable stripe")
	}
	in, ok := findIntegration(cfg, "Product Catalog")
	if !ok {
		t.Fatal("missing Product Catalog integration")
	}
	if in.Type != "catalog" {
		t.Errorf("type = %q", in.Type)
	}
	cats, _ := in.Config["categories"].([]string)
	if want := []string{"Featured", "New Arrivals", "Best Sellers"}; !reflect.DeepEqual(cats, want) {
		t.Errorf("categories = %v", cats)
	}
}

func TestConfigure_RestaurantIndustryRule(t *testing.T) {
	cfg := NewIntegrator().Configure(IndustryRestaurant, nil)

	in, ok := findIntegration(cfg, "Menu Management")
	if !ok {
		t.Fatal("missing Menu Management integration")
	}
	if in.Type != "menu" {
		t.Errorf("type = %q", in.Type)
	}
	if in.Config["allergyInfo"] != true {
		t.Errorf("config = %+v", in.Config)
	}
}

func TestConfigure_RealEstateIndustryRule(t *testing.T) {
	cfg := NewIntegrator().Configure(IndustryRealEstate, nil)

	in, ok := findIntegration(cfg, "Property Listings")
	if !ok {
		t.Fatal("missing Property Listings integration")
	}
	if in.Type != "listings" {
		t.Errorf("type = %q", in.Type)
	}
	if in.Config["virtualTours"] != true {
		t.Errorf("config = %+v", in.Config)
	}
}

func TestConfigure_FeatureAndIndustryBothFire(t *testing.T) {
	// An E-commerce request whose features also name stripe-checkout ends
	// up with both the payment and the catalog descriptors. No dedup.
	cfg := NewIntegrator().Configure(IndustryECommerce, []string{"shopping-cart", "stripe-checkout"})

	var payments int
	for _, in := range cfg.Integrations {
		if in.Name == "Stripe Checkout" {
			payments++
		}
	}
	if payments != 2 {
		t.Errorf("Stripe Checkout descriptors = %d, want 2 (append-only, no dedup)", payments)
	}
	if _, ok := findIntegration(cfg, "Product Catalog"); !ok {
		t.Error("missing Product Catalog integration")
	}
	if len(cfg.Integrations) != 3 {
		t.Errorf("integrations = %d, want 3", len(cfg.Integrations))
	}
}

func TestConfigure_Deterministic(t *testing.T) {
	i := NewIntegrator()
	features := []string{"booking-calendar", "online-ordering"}

	first := i.Configure(IndustryRestaurant, features)
	second := i.Configure(IndustryRestaurant, features)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Configure is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
