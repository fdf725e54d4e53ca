// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import "siteforge/internal/models"

// missingFieldsMessage is the fixed client error for incomplete requests.
const missingFieldsMessage = "Missing required fields"

// validateSiteRequest checks the intake form for presence of all four
// fields and returns the fixed client error when any is missing, or
// empty string when the request is valid. Presence is the whole
// contract: field content is unconstrained, and unknown industries and
// themes degrade to defaults downstream.
func validateSiteRequest(req models.SiteRequest) string {
	if req.BusinessName == "" || req.Description == "" || req.Industry == "" || req.Theme == "" {
		return missingFieldsMessage
	}
	return ""
}
