package services

import (
	"context"
	"fmt"

	"visionflow/internal/domain/plan"
	vferrors "visionflow/pkg/errors"
	"visionflow/pkg/logger"
)

const (
	toolLogo       = "logo"
	toolIdeaTester = "ideatester"
)

// elitePlaceholderReply stands in for the elite tier's custom AI
// integration, which has no defined contract yet. Requests that reach it
// are logged so the gap stays visible.
const elitePlaceholderReply = "[Custom AI response for elite plan]"

const ideaTesterPrompt = "You are VisionFlow, an expert startup analyst and business strategist. " +
	"A user will give you a business idea. Analyze the idea for: " +
	"- Market saturation (is it unsaturated or crowded?)\n" +
	"- Smartness and innovation\n" +
	"- Potential to make someone rich (scalability, profitability)\n" +
	"- Major risks or red flags\n" +
	"- What would make the idea more unique or successful\n" +
	"- Give a clear verdict: is this a good idea to pursue?\n" +
	"- Give actionable, honest, and practical feedback.\n" +
	"- Use bullet points and be specific."

const advisorPrompt = "You are VisionFlow, an expert AI business cofounder, startup advisor, and product strategist. " +
	"For every answer: " +
	"- Give clear, actionable, step-by-step instructions or checklists. " +
	"- Use bullet points or numbered lists for clarity. " +
	"- Provide practical examples or templates if possible. " +
	"- Avoid generic or vague advice; be specific and tailored to the user's context. " +
	"- If the user asks for a plan, provide a detailed, phase-by-phase roadmap. " +
	"- If the user asks for creative ideas, give unique, original, and realistic suggestions. " +
	"- Always explain the reasoning behind your advice."

type ChatService struct {
	ai        AIClient
	logo      *LogoService
	quota     QuotaStore
	log       *logger.Logger
	chatModel string
	proQuota  int
}

func NewChatService(ai AIClient, logo *LogoService, quota QuotaStore, log *logger.Logger, chatModel string, proQuota int) *ChatService {
	return &ChatService{
		ai:        ai,
		logo:      logo,
		quota:     quota,
		log:       log,
		chatModel: chatModel,
		proQuota:  proQuota,
	}
}

type ChatInput struct {
	Message string
	Tool    string
	Email   string
	Plan    string
}

// ChatResult carries either a chat reply or a generated image URL,
// never both.
type ChatResult struct {
	Reply    string
	ImageURL string
}

// Converse routes a chat request by (tool, plan). The plan gate and the
// quota check both run before any call leaves the process.
func (s *ChatService) Converse(ctx context.Context, in ChatInput) (ChatResult, error) {
	if in.Message == "" {
		return ChatResult{}, vferrors.ErrInvalidInput
	}

	features := plan.FeaturesFor(in.Plan, s.chatModel, s.proQuota)

	if in.Tool == toolLogo {
		return s.converseLogo(ctx, in, features)
	}

	if !s.ai.Enabled() {
		return ChatResult{}, vferrors.ErrMissingAPIKey
	}

	if features.CustomAI {
		s.log.Warnf("elite custom AI path is a placeholder; returning static reply for %s", in.Email)
		return ChatResult{Reply: elitePlaceholderReply}, nil
	}

	prompt := advisorPrompt
	if in.Tool == toolIdeaTester {
		prompt = ideaTesterPrompt
	}

	reply, err := s.ai.ChatCompletion(ctx, features.ChatModel, prompt, in.Message)
	if err != nil {
		s.log.Errorf("chat completion failed: %s", err)
		return ChatResult{}, fmt.Errorf("AI error: %v", err)
	}

	return ChatResult{Reply: reply}, nil
}

func (s *ChatService) converseLogo(ctx context.Context, in ChatInput, features plan.Features) (ChatResult, error) {
	if !features.LogoAllowed {
		return ChatResult{}, vferrors.ErrLogoNotAllowed
	}

	if !s.ai.Enabled() {
		return ChatResult{}, vferrors.ErrMissingAPIKey
	}

	if features.LogoQuota != plan.Unlimited {
		allowed, err := s.quota.Allow(ctx, in.Email, features.LogoQuota)
		if err != nil {
			s.log.Errorf("logo quota check failed: %s", err)
			return ChatResult{}, fmt.Errorf("Logo generation failed: %v", err)
		}
		if !allowed {
			return ChatResult{}, vferrors.ErrQuotaExceeded
		}
	}

	url, err := s.logo.Generate(ctx, in.Message)
	if err != nil {
		return ChatResult{}, err
	}

	return ChatResult{ImageURL: url}, nil
}
