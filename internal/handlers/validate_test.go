// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"testing"

	"siteforge/internal/models"
)

func validRequest() models.SiteRequest {
	return models.SiteRequest{
		BusinessName: "Acme",
		Description:  "We sell widgets",
		Industry:     "E-commerce",
		Theme:        "Bold & Vibrant",
	}
}

func TestValidateSiteRequest_Valid(t *testing.T) {
	if msg := validateSiteRequest(validRequest()); msg != "" {
		t.Errorf("valid request rejected: %q", msg)
	}
}

func TestValidateSiteRequest_MissingFields(t *testing.T) {
	mutations := map[string]func(*models.SiteRequest){
		"businessName": func(r *models.SiteRequest) { r.BusinessName = "" },
		"description":  func(r *models.SiteRequest) { r.Description = "" },
		"industry":     func(r *models.SiteRequest) { r.Industry = "" },
		"theme":        func(r *models.SiteRequest) { r.Theme = "" },
	}

	for field, mutate := range mutations {
		t.Run(field, func(t *testing.T) {
			req := validRequest()
			mutate(&req)
			if msg := validateSiteRequest(req); msg != "Missing required fields" {
				t.Errorf("msg = %q, want %q", msg, "Missing required fields")
			}
		})
	}
}

func TestValidateSiteRequest_WhitespaceCountsAsPresent(t *testing.T) {
	// Presence is an exact empty-string check; whitespace passes.
	req := validRequest()
	req.BusinessName = "   "
	if msg := validateSiteRequest(req); msg != "" {
		t.Errorf("whitespace-only field rejected: %q", msg)
	}
}

func TestValidateSiteRequest_ContentIsUnconstrained(t *testing.T) {
	// Presence of the four fields is the whole contract: long values and
	// unknown industries or themes are processed, not rejected.
	req := validRequest()
	req.BusinessName = strings.Repeat("a", 250)
	req.Description = strings.Repeat("b", 10_000)
	req.Industry = "Underwater Basket Weaving"
	req.Theme = strings.Repeat("é", 500)

	if msg := validateSiteRequest(req); msg != "" {
		t.Errorf("oversized request rejected: %q", msg)
	}
}
