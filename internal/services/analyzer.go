package services

import (
	"context"
	"log"
	"time"

	"github.com/bidyut10/corporate-ai/internal/models"
)

// ResumeAnalyzer runs the model-backed analysis with the fallback scorer
// behind it. Analyze never fails: every internal error is absorbed and
// converted into the deterministic heuristic result, so submission success
// is decoupled from AI availability.
type ResumeAnalyzer interface {
	Analyze(ctx context.Context, candidate CandidateProfile, job *models.JobPosting, resumePDF []byte) *ResumeAnalysis
}

type resumeAnalyzer struct {
	gemini  GeminiService
	prompts *PromptBuilder
	timeout time.Duration
}

func NewResumeAnalyzer(gemini GeminiService, timeout time.Duration) ResumeAnalyzer {
	return &resumeAnalyzer{
		gemini:  gemini,
		prompts: NewPromptBuilder(),
		timeout: timeout,
	}
}

// Analyze implements ResumeAnalyzer. The model gets a single bounded
// attempt; a timeout is treated like any other analysis failure.
func (a *resumeAnalyzer) Analyze(ctx context.Context, candidate CandidateProfile, job *models.JobPosting, resumePDF []byte) *ResumeAnalysis {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	prompt := a.prompts.BuildResumeAnalysisPrompt(candidate, job)

	raw, err := a.gemini.AnalyzeResume(ctx, prompt, resumePDF)
	if err != nil {
		log.Printf("⚠️  Resume analysis failed for %s, using fallback scoring: %v\n", candidate.Email, err)
		return FallbackAnalysis(candidate)
	}

	analysis, err := ParseAnalysisResponse(raw)
	if err != nil {
		log.Printf("⚠️  Resume analysis response rejected for %s, using fallback scoring: %v\n", candidate.Email, err)
		return FallbackAnalysis(candidate)
	}

	return analysis
}
