// Package ai wraps the OpenAI API for chat completions and logo images.
package ai

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

const (
	maxReplyTokens = 900
	temperature    = 0.7
	imageSize      = openai.CreateImageSize1024x1024
)

type Client struct {
	api        *openai.Client
	imageModel string
	enabled    bool
}

// NewClient builds the OpenAI client. An empty key yields a disabled
// client; callers must check Enabled before issuing requests.
func NewClient(apiKey, imageModel string) *Client {
	c := &Client{imageModel: imageModel}
	if apiKey != "" {
		c.api = openai.NewClient(apiKey)
		c.enabled = true
	}
	return c
}

func (c *Client) Enabled() bool {
	return c.enabled
}

// ChatCompletion sends one system+user exchange and returns the reply text.
func (c *Client) ChatCompletion(ctx context.Context, model, systemPrompt, userMessage string) (string, error) {
	if !c.enabled {
		return "", errors.New("openai client not configured")
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		MaxTokens:   maxReplyTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

// GenerateImage requests exactly one square image and returns the
// provider-hosted URL, never the image bytes.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if !c.enabled {
		return "", errors.New("openai client not configured")
	}

	resp, err := c.api.CreateImage(ctx, openai.ImageRequest{
		Model:  c.imageModel,
		Prompt: prompt,
		N:      1,
		Size:   imageSize,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Data) == 0 {
		return "", errors.New("empty image response")
	}
	return resp.Data[0].URL, nil
}
