package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/bidyut10/corporate-ai/internal/models"
)

// AssistantService drafts job descriptions for recruiters. Unlike resume
// analysis this is a creative task, so it runs at a higher temperature and
// its failures are surfaced to the caller instead of silently degraded.
type AssistantService interface {
	GenerateJobDescription(ctx context.Context, req models.GenerateDescriptionRequest) (string, error)
}

type assistantService struct {
	gemini  GeminiService
	prompts *PromptBuilder
}

func NewAssistantService(gemini GeminiService) AssistantService {
	return &assistantService{
		gemini:  gemini,
		prompts: NewPromptBuilder(),
	}
}

func (s *assistantService) GenerateJobDescription(ctx context.Context, req models.GenerateDescriptionRequest) (string, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return "", invalidField("prompt", "prompt is required")
	}

	prompt := s.prompts.BuildJobDescriptionPrompt(req)

	text, err := s.gemini.GenerateText(ctx, prompt, 0.7)
	if err != nil {
		return "", fmt.Errorf("%w: generate description: %v", ErrDependency, err)
	}

	// Models occasionally fence their output despite instructions.
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```html")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	return strings.TrimSpace(text), nil
}
