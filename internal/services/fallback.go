package services

import (
	"fmt"

	"github.com/bidyut10/corporate-ai/internal/models"
)

// FallbackAnalysis produces a deterministic, explainable score when the
// model path is unavailable or returned garbage. It makes no external
// calls and cannot fail.
//
// Scoring: base 60, plus min(20, 2*experienceYears), plus 5 per profile
// link present, capped at 100. Category scores are fixed offsets below the
// overall figure: they are deliberately synthetic, signaling "needs manual
// review" rather than precise measurement.
func FallbackAnalysis(candidate CandidateProfile) *ResumeAnalysis {
	baseScore := 60
	experienceBonus := candidate.ExperienceYears * 2
	if experienceBonus > 20 {
		experienceBonus = 20
	}
	profileBonus := 0
	if candidate.LinkedIn != "" {
		profileBonus += 5
	}
	if candidate.GitHub != "" {
		profileBonus += 5
	}
	if candidate.Portfolio != "" {
		profileBonus += 5
	}

	overall := baseScore + experienceBonus + profileBonus
	if overall > 100 {
		overall = 100
	}

	recommendation := models.ManualReviewRequired
	switch {
	case overall >= 80:
		recommendation = models.Recommended
	case overall >= 60:
		recommendation = models.ConditionallyRecommended
	}

	strengths := []string{
		fmt.Sprintf("%d years of professional experience", candidate.ExperienceYears),
	}
	if candidate.LinkedIn != "" {
		strengths = append(strengths, "Professional LinkedIn profile available")
	}
	if candidate.GitHub != "" {
		strengths = append(strengths, "GitHub profile with code repositories")
	}
	if candidate.Portfolio != "" {
		strengths = append(strengths, "Personal portfolio website")
	}
	strengths = append(strengths, "Complete application with all required information")

	return &ResumeAnalysis{
		OverallScore: overall,
		CategoryScores: CategoryScoreSet{
			TechnicalSkills:         overall - 10,
			ExperienceRelevance:     overall - 5,
			EducationCertifications: overall - 15,
			ProjectsPortfolio:       overall - 20,
			SalaryAvailability:      overall,
			CulturalFit:             overall - 5,
			ProfileQuality:          overall - 10,
		},
		Strengths: strengths,
		Concerns: []string{
			"AI analysis unavailable - manual review required",
			"Unable to analyze resume content automatically",
		},
		KeyHighlights: []string{
			fmt.Sprintf("%d years of experience in the field", candidate.ExperienceYears),
			fmt.Sprintf("Salary expectation: %.0f", candidate.SalaryExpectation),
			fmt.Sprintf("Notice period: %d days", candidate.NoticePeriod),
			"Application submitted with complete information",
		},
		TechnicalSkillsFound:    []string{"Manual review required"},
		ExperienceHighlights:    []string{fmt.Sprintf("%d years of professional experience", candidate.ExperienceYears)},
		EducationDetails:        []string{"Details available in resume"},
		ProjectsAndAchievements: []string{"Review portfolio and GitHub for projects"},
		Recommendation:          recommendation,
		DetailedAnalysis: fmt.Sprintf(
			"Application received from %s with %d years of experience. Salary expectation is %.0f with a notice period of %d days. Manual review of resume content is required as AI analysis was unavailable.",
			candidate.Name, candidate.ExperienceYears, candidate.SalaryExpectation, candidate.NoticePeriod,
		),
		NextSteps: []string{
			"Manual resume review required",
			"Verify technical skills through interview",
			"Assess cultural fit",
			"Check references",
		},
		SalaryAssessment: models.SalaryAssessment{
			CandidateExpectation: candidate.SalaryExpectation,
			BudgetAlignment:      "Manual Review Required",
			NegotiationPotential: "Unknown",
			MarketRate:           "Needs Assessment",
		},
		// Never "completed": downstream consumers must be able to tell
		// heuristic scores from model-derived ones.
		Status: models.AnalysisFailed,
	}
}
