package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"visionflow/pkg/logger"
)

// Brand extraction patterns, tried in priority order. The detailed form
// captures both the business type and the name; the fallback only the name.
var (
	brandDetailPattern = regexp.MustCompile(`(?i)for a ([\w\s&-]+?) (brand|business|company|store|startup) called ([\w\s&-]+)`)
	brandNamePattern   = regexp.MustCompile(`(?i)called ([\w\s&-]+)`)
)

const (
	defaultBrandName    = "Your Brand"
	defaultBusinessType = "business"
)

const logoPromptTemplate = "Logo for a %s named '%s'. " +
	"Clean, modern, abstract, unique, and memorable. " +
	"Reflects the brand's personality and industry. No text or letters. " +
	"Symbolism, color, and white or transparent background."

type LogoService struct {
	ai  AIClient
	log *logger.Logger
}

func NewLogoService(ai AIClient, log *logger.Logger) *LogoService {
	return &LogoService{ai: ai, log: log}
}

// ExtractBrand pulls the business type and brand name out of a free-text
// prompt. Missing or empty captures fall back to generic defaults.
func ExtractBrand(message string) (businessType, brandName string) {
	businessType = defaultBusinessType
	brandName = defaultBrandName

	if m := brandDetailPattern.FindStringSubmatch(message); m != nil {
		if v := strings.TrimSpace(m[1]); v != "" {
			businessType = v
		}
		if v := strings.TrimSpace(m[3]); v != "" {
			brandName = v
		}
		return businessType, brandName
	}

	if m := brandNamePattern.FindStringSubmatch(message); m != nil {
		if v := strings.TrimSpace(m[1]); v != "" {
			brandName = v
		}
	}

	return businessType, brandName
}

// Generate builds the fixed logo prompt and requests one square image.
// The provider's hosted URL is returned, never the image bytes.
func (s *LogoService) Generate(ctx context.Context, message string) (string, error) {
	businessType, brandName := ExtractBrand(message)
	prompt := fmt.Sprintf(logoPromptTemplate, businessType, brandName)

	url, err := s.ai.GenerateImage(ctx, prompt)
	if err != nil {
		s.log.Errorf("image generation failed: %s", err)
		return "", fmt.Errorf("Logo generation failed: %v", err)
	}
	return url, nil
}
