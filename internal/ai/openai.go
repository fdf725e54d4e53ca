// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// openAIProvider implements Provider and ImageGenerator using the OpenAI
// API via the go-openai client. Chat completions run in structured-JSON
// response mode because every caller parses the result as a JSON object.
type openAIProvider struct {
	client     *openai.Client
	model      string
	imageModel string
}

// newOpenAI creates a new OpenAI provider. BaseURL is honoured when set
// so tests can target a fake server.
func newOpenAI(cfg ProviderConfig) *openAIProvider {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4o
	}
	imageModel := cfg.ImageModel
	if imageModel == "" {
		imageModel = openai.CreateImageModelDallE3
	}

	return &openAIProvider{
		client:     openai.NewClientWithConfig(clientCfg),
		model:      model,
		imageModel: imageModel,
	}
}

func (p *openAIProvider) Name() string { return "openai" }

// Generate sends a chat completion request and returns the assistant's
// response text. Temperature 0.7 and JSON response mode are fixed parts
// of the content-generation contract.
func (p *openAIProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
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
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

// GenerateImage requests exactly one landscape-format image and returns
// its hosted URL. An empty result is an error so callers fall back.
func (p *openAIProvider) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateImage(ctx, openai.ImageRequest{
		Model:   p.imageModel,
		Prompt:  prompt,
		N:       1,
		Size:    openai.CreateImageSize1792x1024,
		Quality: openai.CreateImageQualityStandard,
	})
	if err != nil {
		return "", fmt.Errorf("openai image generation: %w", err)
	}

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", fmt.Errorf("openai image generation: empty result")
	}
	return resp.Data[0].URL, nil
}
