// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// mistralBaseURL is Mistral's OpenAI-compatible endpoint.
const mistralBaseURL = "https://api.mistral.ai/v1"

// mistralProvider implements Provider against Mistral's OpenAI-compatible
// chat API, reusing the go-openai client with a different base URL.
// Mistral is text-only: it deliberately does not implement ImageGenerator,
// so the visual agent falls back when it is the active provider.
type mistralProvider struct {
	client *openai.Client
	model  string
}

// newMistral creates a new Mistral provider.
func newMistral(cfg ProviderConfig) *mistralProvider {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = mistralBaseURL
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "mistral-large-latest"
	}

	return &mistralProvider{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}
}

func (p *mistralProvider) Name() string { return "mistral" }

// Generate sends a chat completion request to Mistral and returns the
// assistant's response text.
func (p *mistralProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.7,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("mistral chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("mistral: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
