package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bidyut10/corporate-ai/internal/models"
	"github.com/bidyut10/corporate-ai/internal/services"
)

func promptFixtures() (services.CandidateProfile, *models.JobPosting) {
	candidate := services.CandidateProfile{
		Name:              "Jane Doe",
		Email:             "jane@example.com",
		Phone:             "+1 555 0100",
		GitHub:            "https://github.com/janedoe",
		SalaryExpectation: 120000,
		ExperienceYears:   5,
		NoticePeriod:      30,
	}
	job := &models.JobPosting{
		Title:          "Senior Backend Engineer",
		Description:    "Build and run our hiring platform.",
		Location:       "Remote",
		Skills:         []string{"Go", "PostgreSQL"},
		Salary:         models.SalaryRange{Min: 100000, Max: 140000, Currency: "USD"},
		Experience:     models.ExperienceRange{Min: 4, Max: 8},
		EmploymentType: models.EmploymentFullTime,
	}
	return candidate, job
}

func TestBuildResumeAnalysisPrompt_Deterministic(t *testing.T) {
	pb := services.NewPromptBuilder()
	candidate, job := promptFixtures()

	first := pb.BuildResumeAnalysisPrompt(candidate, job)
	second := pb.BuildResumeAnalysisPrompt(candidate, job)

	assert.Equal(t, first, second)
}

func TestBuildResumeAnalysisPrompt_IncludesJobAndCandidate(t *testing.T) {
	pb := services.NewPromptBuilder()
	candidate, job := promptFixtures()

	prompt := pb.BuildResumeAnalysisPrompt(candidate, job)

	assert.Contains(t, prompt, "Senior Backend Engineer")
	assert.Contains(t, prompt, "Go, PostgreSQL")
	assert.Contains(t, prompt, "100000-140000 USD")
	assert.Contains(t, prompt, "Jane Doe")
	assert.Contains(t, prompt, "https://github.com/janedoe")
	assert.Contains(t, prompt, "Experience Years: 5 years")
	assert.Contains(t, prompt, "Notice Period: 30 days")
	assert.Contains(t, prompt, `"overallScore"`)
	assert.Contains(t, prompt, `"categoryScores"`)
}

func TestBuildResumeAnalysisPrompt_PlaceholdersForMissingFields(t *testing.T) {
	pb := services.NewPromptBuilder()
	candidate, job := promptFixtures()
	candidate.GitHub = ""
	candidate.LinkedIn = ""
	candidate.Portfolio = ""
	job.Skills = nil
	job.Salary = models.SalaryRange{}
	job.Location = ""

	prompt := pb.BuildResumeAnalysisPrompt(candidate, job)

	assert.Contains(t, prompt, "LinkedIn: Not provided")
	assert.Contains(t, prompt, "GitHub: Not provided")
	assert.Contains(t, prompt, "Portfolio: Not provided")
	assert.Contains(t, prompt, "Required Skills: Not specified")
	assert.Contains(t, prompt, "Salary Range: Not specified")
	assert.Contains(t, prompt, "Location: Not specified")
}

func TestBuildJobDescriptionPrompt_IncludesBrief(t *testing.T) {
	pb := services.NewPromptBuilder()

	prompt := pb.BuildJobDescriptionPrompt(models.GenerateDescriptionRequest{
		Prompt:     "We need a platform engineer for our payments team.",
		Title:      "Platform Engineer",
		Skills:     []string{"Go", "Kubernetes"},
		Experience: models.ExperienceRange{Min: 3, Max: 6},
	})

	assert.Contains(t, prompt, "We need a platform engineer for our payments team.")
	assert.Contains(t, prompt, "Platform Engineer")
	assert.Contains(t, prompt, "Go, Kubernetes")
	assert.Contains(t, prompt, "3-6 years")
	assert.Contains(t, prompt, "Location: Not specified")
}
