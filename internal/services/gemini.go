package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const resumeMIMEType = "application/pdf"

// GeminiService is the single gateway to the generative model. AnalyzeResume
// makes exactly one attempt per call; retries are the caller's decision and
// the submission pipeline deliberately makes none.
type GeminiService interface {
	AnalyzeResume(ctx context.Context, prompt string, resumePDF []byte) (string, error)
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type geminiService struct {
	client     *genai.Client
	modelName  string
	embedModel string
}

// NewGeminiService builds the client. An empty API key yields a service
// whose calls fail with ErrAnalysisUnavailable, so an unconfigured provider
// degrades to fallback scoring instead of blocking startup.
func NewGeminiService(apiKey string) (GeminiService, error) {
	if apiKey == "" {
		return &geminiService{}, nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:     client,
		modelName:  "gemini-2.5-flash",
		embedModel: "text-embedding-004",
	}, nil
}

// AnalyzeResume implements GeminiService. The resume travels as inline
// binary content next to the prompt in a single request; generation
// parameters favor reproducible extraction over creativity.
func (g *geminiService) AnalyzeResume(ctx context.Context, prompt string, resumePDF []byte) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("%w: api key not configured", ErrAnalysisUnavailable)
	}

	temperature := float32(0.2)
	topP := float32(0.8)
	topK := float32(40)

	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		TopP:            &topP,
		TopK:            &topK,
		MaxOutputTokens: 2000,
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(resumePDF, resumeMIMEType),
		}, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, config)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAnalysisUnavailable, err)
	}
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", ErrAnalysisUnavailable)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: no text content in response", ErrAnalysisUnavailable)
	}

	return text, nil
}

// GenerateText implements GeminiService. Used for plain text tasks such as
// drafting job descriptions, where a higher temperature is appropriate.
func (g *geminiService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("%w: api key not configured", ErrAnalysisUnavailable)
	}

	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 2000,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}
	if resp == nil || resp.Text() == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return resp.Text(), nil
}

// GenerateEmbedding implements GeminiService.
func (g *geminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if g.client == nil {
		return nil, fmt.Errorf("%w: api key not configured", ErrAnalysisUnavailable)
	}

	// Truncate overly long input; the embedding model caps its context.
	if len(text) > 40000 {
		text = text[:40000]
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}
