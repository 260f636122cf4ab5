package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bidyut10/corporate-ai/internal/models"
)

const analysisVersion = "1.0"

// ResumeAnalysis is the validated analysis result, either model-derived
// (Status completed) or heuristic (Status failed). It is the only shape the
// rest of the system accepts; raw model output never touches the record.
type ResumeAnalysis struct {
	OverallScore            int
	CategoryScores          CategoryScoreSet
	Strengths               []string
	Concerns                []string
	KeyHighlights           []string
	TechnicalSkillsFound    []string
	ExperienceHighlights    []string
	EducationDetails        []string
	ProjectsAndAchievements []string
	Recommendation          models.Recommendation
	DetailedAnalysis        string
	NextSteps               []string
	SalaryAssessment        models.SalaryAssessment
	Status                  models.AnalysisStatus
}

type CategoryScoreSet struct {
	TechnicalSkills         int
	ExperienceRelevance     int
	EducationCertifications int
	ProjectsPortfolio       int
	SalaryAvailability      int
	CulturalFit             int
	ProfileQuality          int
}

// geminiAnalysisPayload mirrors the JSON contract the prompt demands.
// Scores are decoded as floats because the numeric contract is advisory to
// the model; required keys use pointers so absence is detectable.
type geminiAnalysisPayload struct {
	OverallScore            *float64              `json:"overallScore"`
	CategoryScores          *categoryScorePayload `json:"categoryScores"`
	Strengths               *[]string             `json:"strengths"`
	Concerns                []string              `json:"concerns"`
	KeyHighlights           []string              `json:"keyHighlights"`
	TechnicalSkillsFound    []string              `json:"technicalSkillsFound"`
	ExperienceHighlights    []string              `json:"experienceHighlights"`
	EducationDetails        []string              `json:"educationDetails"`
	ProjectsAndAchievements []string              `json:"projectsAndAchievements"`
	Recommendation          string                `json:"recommendation"`
	DetailedAnalysis        string                `json:"detailedAnalysis"`
	NextSteps               []string              `json:"nextSteps"`
	SalaryAssessment        salaryPayload         `json:"salaryAssessment"`
}

type categoryScorePayload struct {
	TechnicalSkills         float64 `json:"technicalSkills"`
	ExperienceRelevance     float64 `json:"experienceRelevance"`
	EducationCertifications float64 `json:"educationCertifications"`
	ProjectsPortfolio       float64 `json:"projectsPortfolio"`
	SalaryAvailability      float64 `json:"salaryAvailability"`
	CulturalFit             float64 `json:"culturalFit"`
	ProfileQuality          float64 `json:"profileQuality"`
}

type salaryPayload struct {
	CandidateExpectation float64 `json:"candidateExpectation"`
	BudgetAlignment      string  `json:"budgetAlignment"`
	NegotiationPotential string  `json:"negotiationPotential"`
	MarketRate           string  `json:"marketRate"`
}

// ParseAnalysisResponse turns raw model output into a validated analysis.
// The model's text is untrusted input: markdown fences are stripped, the
// JSON shape is checked for required keys, and scores are clamped into
// [0,100] rather than rejected.
func ParseAnalysisResponse(raw string) (*ResumeAnalysis, error) {
	jsonStr := extractJSON(raw)
	if jsonStr == "" {
		return nil, fmt.Errorf("%w: no JSON object in response", ErrMalformedAnalysis)
	}

	var payload geminiAnalysisPayload
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAnalysis, err)
	}

	if payload.OverallScore == nil {
		return nil, fmt.Errorf("%w: missing overallScore", ErrMalformedAnalysis)
	}
	if payload.CategoryScores == nil {
		return nil, fmt.Errorf("%w: missing categoryScores", ErrMalformedAnalysis)
	}
	if payload.Strengths == nil {
		return nil, fmt.Errorf("%w: missing strengths", ErrMalformedAnalysis)
	}
	if payload.Recommendation == "" {
		return nil, fmt.Errorf("%w: missing recommendation", ErrMalformedAnalysis)
	}

	recommendation := models.Recommendation(strings.ToUpper(strings.TrimSpace(payload.Recommendation)))
	if !models.ValidRecommendation(recommendation) {
		return nil, fmt.Errorf("%w: unknown recommendation %q", ErrMalformedAnalysis, payload.Recommendation)
	}

	return &ResumeAnalysis{
		OverallScore: clampScore(*payload.OverallScore),
		CategoryScores: CategoryScoreSet{
			TechnicalSkills:         clampScore(payload.CategoryScores.TechnicalSkills),
			ExperienceRelevance:     clampScore(payload.CategoryScores.ExperienceRelevance),
			EducationCertifications: clampScore(payload.CategoryScores.EducationCertifications),
			ProjectsPortfolio:       clampScore(payload.CategoryScores.ProjectsPortfolio),
			SalaryAvailability:      clampScore(payload.CategoryScores.SalaryAvailability),
			CulturalFit:             clampScore(payload.CategoryScores.CulturalFit),
			ProfileQuality:          clampScore(payload.CategoryScores.ProfileQuality),
		},
		Strengths:               *payload.Strengths,
		Concerns:                payload.Concerns,
		KeyHighlights:           payload.KeyHighlights,
		TechnicalSkillsFound:    payload.TechnicalSkillsFound,
		ExperienceHighlights:    payload.ExperienceHighlights,
		EducationDetails:        payload.EducationDetails,
		ProjectsAndAchievements: payload.ProjectsAndAchievements,
		Recommendation:          recommendation,
		DetailedAnalysis:        payload.DetailedAnalysis,
		NextSteps:               payload.NextSteps,
		SalaryAssessment: models.SalaryAssessment{
			CandidateExpectation: payload.SalaryAssessment.CandidateExpectation,
			BudgetAlignment:      payload.SalaryAssessment.BudgetAlignment,
			NegotiationPotential: payload.SalaryAssessment.NegotiationPotential,
			MarketRate:           payload.SalaryAssessment.MarketRate,
		},
		Status: models.AnalysisCompleted,
	}, nil
}

// ApplyAnalysis maps a validated analysis onto the application's AI fields.
func ApplyAnalysis(app *models.Application, analysis *ResumeAnalysis, at time.Time) {
	score := analysis.OverallScore
	recommendation := analysis.Recommendation

	app.AIScore = &score
	app.AICategoryScores = models.CategoryScores{
		TechnicalSkills:         intPtr(analysis.CategoryScores.TechnicalSkills),
		ExperienceRelevance:     intPtr(analysis.CategoryScores.ExperienceRelevance),
		EducationCertifications: intPtr(analysis.CategoryScores.EducationCertifications),
		ProjectsPortfolio:       intPtr(analysis.CategoryScores.ProjectsPortfolio),
		SalaryAvailability:      intPtr(analysis.CategoryScores.SalaryAvailability),
		CulturalFit:             intPtr(analysis.CategoryScores.CulturalFit),
		ProfileQuality:          intPtr(analysis.CategoryScores.ProfileQuality),
	}
	app.AIHighlights = analysis.Strengths
	app.AIConcerns = analysis.Concerns
	app.AIKeyPoints = analysis.KeyHighlights
	app.AITechnicalSkills = analysis.TechnicalSkillsFound
	app.AIExperienceHighlights = analysis.ExperienceHighlights
	app.AIEducationDetails = analysis.EducationDetails
	app.AIProjectsAchievements = analysis.ProjectsAndAchievements
	app.AIDetails = analysis.DetailedAnalysis
	app.AIRecommendation = &recommendation
	app.AINextSteps = analysis.NextSteps
	app.AISalaryAssessment = analysis.SalaryAssessment
	app.AIAnalysisStatus = analysis.Status
	app.AIAnalysisDate = &at
	app.AIAnalysisVersion = analysisVersion
}

// Summary produces the short-form feedback returned to the applicant.
func (a *ResumeAnalysis) Summary() *models.AnalysisSummary {
	highlights := a.Strengths
	if len(highlights) > 3 {
		highlights = highlights[:3]
	}
	return &models.AnalysisSummary{
		Score:          a.OverallScore,
		Recommendation: string(a.Recommendation),
		Highlights:     highlights,
	}
}

// SummaryText renders the indexable description of an analyzed candidate
// for similarity search.
func (a *ResumeAnalysis) SummaryText() string {
	var b strings.Builder
	b.WriteString(a.DetailedAnalysis)
	if len(a.TechnicalSkillsFound) > 0 {
		b.WriteString("\nSkills: ")
		b.WriteString(strings.Join(a.TechnicalSkillsFound, ", "))
	}
	if len(a.ExperienceHighlights) > 0 {
		b.WriteString("\nExperience: ")
		b.WriteString(strings.Join(a.ExperienceHighlights, "; "))
	}
	return b.String()
}

func clampScore(v float64) int {
	score := int(math.Round(v))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func intPtr(v int) *int {
	return &v
}

// extractJSON strips optional markdown code fences and trims to the
// outermost object braces. The prompt forbids fences, but the validator
// does not rely on the model honoring that.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return ""
	}

	return text[start : end+1]
}
