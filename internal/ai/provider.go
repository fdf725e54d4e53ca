// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai provides a unified interface over the generative providers
// used by the synthesis agents. Each provider handles its own transport;
// the Registry selects the active one by name. Providers without API
// keys are skipped, which is what drives the agents' fallback paths.
package ai

import (
	"context"
	"fmt"
	"sync"
)

// Provider is the text-generation contract. Generate sends one
// best-effort chat request — no retries, bounded by the client timeout —
// and returns the raw response text, which agents parse as JSON.
type Provider interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Name returns the provider identifier (e.g., "openai", "mistral").
	Name() string
}

// ImageGenerator is an optional capability. Providers that can generate
// images return a hosted URL for one landscape-format image. Text-only
// providers (Mistral) do not implement it.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// ProviderConfig holds the credentials and settings for a single provider.
// BaseURL overrides the provider endpoint; tests point it at an
// httptest.Server.
type ProviderConfig struct {
	APIKey     string
	Model      string
	ImageModel string
	BaseURL    string
}

// Registry manages available providers and selects the active one.
// All methods are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	active    string
}

// NewRegistry creates a registry and initialises providers for every
// config with a non-empty API key. Providers without keys are silently
// skipped; an empty registry is valid and means all agents fall back.
func NewRegistry(active string, configs map[string]ProviderConfig) *Registry {
	r := &Registry{
		providers: make(map[string]Provider),
		active:    active,
	}

	for name, cfg := range configs {
		if cfg.APIKey == "" {
			continue
		}
		switch name {
		case "openai":
			r.providers[name] = newOpenAI(cfg)
		case "mistral":
			r.providers[name] = newMistral(cfg)
		}
	}

	return r
}

// Configured reports whether the active provider is available. Agents
// check this before attempting a remote call.
func (r *Registry) Configured() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.providers[r.active]
	return ok
}

// Generate calls the active provider's Generate method.
func (r *Registry) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	p, err := r.Active()
	if err != nil {
		return "", err
	}
	return p.Generate(ctx, systemPrompt, userPrompt)
}

// GenerateImage calls the active provider's image generation if
// supported. Returns an error if the active provider is text-only.
func (r *Registry) GenerateImage(ctx context.Context, prompt string) (string, error) {
	p, err := r.Active()
	if err != nil {
		return "", err
	}

	ig, ok := p.(ImageGenerator)
	if !ok {
		return "", fmt.Errorf("ai: provider %q does not support image generation", p.Name())
	}
	return ig.GenerateImage(ctx, prompt)
}

// SupportsImageGeneration returns true if the active provider can
// generate images.
func (r *Registry) SupportsImageGeneration() bool {
	p, err := r.Active()
	if err != nil {
		return false
	}
	_, ok := p.(ImageGenerator)
	return ok
}

// Active returns the currently active provider.
func (r *Registry) Active() (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[r.active]
	if !ok {
		return nil, fmt.Errorf("ai: no provider configured for %q", r.active)
	}
	return p, nil
}

// ActiveName returns the name of the currently active provider.
func (r *Registry) ActiveName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.active
}

// SetActive switches the active provider at runtime. Returns an error if
// the named provider has no API key configured.
func (r *Registry) SetActive(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[name]; !ok {
		return fmt.Errorf("ai: provider %q is not available (no API key?)", name)
	}
	r.active = name
	return nil
}

// Available returns the names of all providers that have valid API keys.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}

// Register adds or replaces a provider in the registry. Used by tests to
// inject stub providers.
func (r *Registry) Register(name string, p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = p
}

// HasProvider checks whether a named provider is configured and available.
func (r *Registry) HasProvider(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.providers[name]
	return ok
}
