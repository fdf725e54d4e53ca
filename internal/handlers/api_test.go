// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"siteforge/internal/ai"
	"siteforge/internal/generator"
	"siteforge/internal/models"
)

// newTestAPI builds an API with no collaborators: empty provider
// registry, no store, no cache. Every agent takes its fallback path and
// persistence issues demo identifiers.
func newTestAPI() *API {
	gen := generator.New(ai.NewRegistry("openai", nil), nil, nil, nil)
	return NewAPI(gen, nil, nil, "https://siteforge.example")
}

// testRouter mounts the API the way the real router does, so URL params
// resolve.
func testRouter(api *API) chi.Router {
	r := chi.NewRouter()
	r.Post("/api/generate", api.Generate)
	r.Route("/api/websites/{id}", func(r chi.Router) {
		r.Get("/", api.GetWebsite)
		r.Get("/qr", api.WebsiteQR)
	})
	return r
}

func postGenerate(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	testRouter(newTestAPI()).ServeHTTP(rec, req)
	return rec
}

func TestGenerate_EndToEnd(t *testing.T) {
	rec := postGenerate(t, `{
		"businessName": "Acme",
		"description": "We sell widgets",
		"industry": "E-commerce",
		"theme": "Bold & Vibrant"
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content-type = %q", ct)
	}

	var resp struct {
		Success   bool           `json:"success"`
		WebsiteID string         `json:"websiteId"`
		Data      models.Website `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if !resp.Success {
		t.Error("success must be true")
	}
	if !strings.HasPrefix(resp.WebsiteID, "demo-") {
		t.Errorf("websiteId = %q, want demo- prefix without a store", resp.WebsiteID)
	}

	w := resp.Data
	if w.BusinessName != "Acme" {
		t.Errorf("business_name = %q", w.BusinessName)
	}
	if got := w.Architecture.ColorPalette; got != (models.ColorPalette{
		Primary: "#FF006E", Secondary: "#8338EC", Accent: "#FFBE0B",
		Background: "#FFFFFF", Text: "#000000",
	}) {
		t.Errorf("palette = %+v", got)
	}
	if w.Architecture.Layout != models.LayoutProductFocused {
		t.Errorf("layout = %q", w.Architecture.Layout)
	}
	if !w.Integrations.StripeEnabled {
		t.Error("stripeEnabled must be true for E-commerce")
	}
	if w.Content.HeroHeadline != "Welcome to Acme" {
		t.Errorf("heroHeadline = %q", w.Content.HeroHeadline)
	}
	if w.Status != models.WebsiteStatusGenerated {
		t.Errorf("status = %q", w.Status)
	}
}

func TestGenerate_WireShape(t *testing.T) {
	rec := postGenerate(t, `{
		"businessName": "Acme",
		"description": "We sell widgets",
		"industry": "E-commerce",
		"theme": "Bold & Vibrant"
	}`)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}

	var data map[string]json.RawMessage
	if err := json.Unmarshal(raw["data"], &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}

	// Top level of the record is snake_case.
	for _, key := range []string{"business_name", "created_at", "architecture", "content", "visuals", "integrations", "status"} {
		if _, ok := data[key]; !ok {
			t.Errorf("data missing key %q", key)
		}
	}

	// Nested blocks are camelCase.
	var arch map[string]json.RawMessage
	json.Unmarshal(data["architecture"], &arch)
	if _, ok := arch["colorPalette"]; !ok {
		t.Error(`architecture missing "colorPalette"`)
	}

	var content map[string]json.RawMessage
	json.Unmarshal(data["content"], &content)
	if _, ok := content["heroHeadline"]; !ok {
		t.Error(`content missing "heroHeadline"`)
	}

	// Structured data uses JSON-LD keys.
	var sd map[string]json.RawMessage
	json.Unmarshal(content["structuredData"], &sd)
	if _, ok := sd["@context"]; !ok {
		t.Error(`structuredData missing "@context"`)
	}
	if _, ok := sd["@type"]; !ok {
		t.Error(`structuredData missing "@type"`)
	}
	// Fallback path omits the canonical URL.
	if _, ok := sd["url"]; ok {
		t.Error(`structuredData must omit "url" on the fallback path`)
	}

	var integrations map[string]json.RawMessage
	json.Unmarshal(data["integrations"], &integrations)
	if _, ok := integrations["contactFormEnabled"]; !ok {
		t.Error(`integrations missing "contactFormEnabled"`)
	}
}

func TestGenerate_MalformedBody(t *testing.T) {
	rec := postGenerate(t, `{not json`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success {
		t.Error("success must be false")
	}
	if resp.Error != "Missing required fields" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestGenerate_MissingFields(t *testing.T) {
	bodies := []string{
		`{}`,
		`{"businessName": "Acme"}`,
		`{"businessName": "Acme", "description": "d", "industry": "E-commerce"}`,
		`{"businessName": "", "description": "d", "industry": "E-commerce", "theme": "Dark Mode"}`,
	}

	for _, body := range bodies {
		rec := postGenerate(t, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
		if !bytes.Contains(rec.Body.Bytes(), []byte("Missing required fields")) {
			t.Errorf("body %s: response = %s", body, rec.Body)
		}
	}
}

func TestGenerate_UnknownIndustryAndThemeStillSucceed(t *testing.T) {
	rec := postGenerate(t, `{
		"businessName": "Acme",
		"description": "We sell widgets",
		"industry": "Underwater Basket Weaving",
		"theme": "Vaporwave"
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var resp struct {
		Data models.Website `json:"data"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)

	if resp.Data.Architecture.Layout != models.LayoutHeroCentric {
		t.Errorf("layout = %q, want default hero-centric", resp.Data.Architecture.Layout)
	}
	if resp.Data.Architecture.ColorPalette.Primary != "#667EEA" {
		t.Errorf("palette = %+v, want default", resp.Data.Architecture.ColorPalette)
	}
	if len(resp.Data.Architecture.Sections) == 0 || len(resp.Data.Architecture.Features) == 0 {
		t.Error("sections and features must never be empty")
	}
}

func TestGetWebsite_NoStorageConfigured(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/websites/demo-1756600000000", nil)
	rec := httptest.NewRecorder()
	testRouter(newTestAPI()).ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("Storage is not configured")) {
		t.Errorf("body = %s", rec.Body)
	}
}

func TestWebsiteQR(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/websites/demo-1756600000000/qr", nil)
	rec := httptest.NewRecorder()
	testRouter(newTestAPI()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content-type = %q", ct)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "public, max-age=3600" {
		t.Errorf("cache-control = %q", cc)
	}

	// PNG signature.
	sig := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}
	if !bytes.HasPrefix(rec.Body.Bytes(), sig) {
		t.Error("body is not a PNG")
	}
}
