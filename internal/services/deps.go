package services

import "context"

// DeliverabilityChecker reports whether an address can receive mail.
// A false verdict and an error are distinct outcomes: the first rejects
// the address, the second means the check itself failed.
type DeliverabilityChecker interface {
	Check(ctx context.Context, email string) (bool, error)
}

// AIClient is the outbound surface of the OpenAI wrapper.
type AIClient interface {
	Enabled() bool
	ChatCompletion(ctx context.Context, model, systemPrompt, userMessage string) (string, error)
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// QuotaStore meters logo generations per user per month atomically.
type QuotaStore interface {
	Allow(ctx context.Context, email string, limit int) (bool, error)
}
