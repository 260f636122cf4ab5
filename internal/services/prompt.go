package services

import (
	"fmt"
	"strings"

	"github.com/bidyut10/corporate-ai/internal/models"
)

// CandidateProfile is the validated, coerced submission data handed to the
// analysis pipeline. Optional links are empty strings when absent.
type CandidateProfile struct {
	Name              string
	Email             string
	Phone             string
	LinkedIn          string
	GitHub            string
	Portfolio         string
	SalaryExpectation float64
	ExperienceYears   int
	NoticePeriod      int
}

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeAnalysisPrompt renders the instruction text sent to the model
// alongside the resume PDF. It is deterministic for a fixed (candidate, job)
// pair: no timestamps, no randomness, and optional fields are normalized to
// explicit placeholders so the prompt always has the same shape.
func (pb *PromptBuilder) BuildResumeAnalysisPrompt(candidate CandidateProfile, job *models.JobPosting) string {
	skills := "Not specified"
	if len(job.Skills) > 0 {
		skills = strings.Join(job.Skills, ", ")
	}

	return fmt.Sprintf(`You are an expert AI recruiter and resume analyst. Your task is to comprehensively analyze a candidate's application for a specific job position. You will receive the job details, the candidate's profile, and the resume document (PDF).

JOB POSITION DETAILS:
Title: %s
Description: %s
Required Experience: %d-%d years
Salary Range: %s
Required Skills: %s
Location: %s
Employment Type: %s

CANDIDATE PROFILE:
Name: %s
Email: %s
Phone: %s
LinkedIn: %s
GitHub: %s
Portfolio: %s
Expected Salary: %.0f
Experience Years: %d years
Notice Period: %d days

RESUME ANALYSIS INSTRUCTIONS:
Analyze the attached resume PDF and extract technical skills, work experience and achievements, education and certifications, projects and contributions, and any other relevant accomplishments.

EVALUATION CRITERIA:
1. Technical Skills Match (30%%) - alignment of the candidate's skills with job requirements
2. Experience Relevance (25%%) - quality and relevance of work experience
3. Education & Certifications (10%%) - academic background and certifications
4. Projects & Portfolio (15%%) - personal projects, open-source work, portfolio quality
5. Salary & Availability (10%%) - salary expectation vs budget, notice period feasibility
6. Cultural Fit Indicators (5%%) - communication, leadership, adaptability
7. Overall Profile Quality (5%%) - resume quality and professional presentation

REQUIRED RESPONSE FORMAT:
Return ONLY a valid JSON object with this exact structure:

{
  "overallScore": <integer 0-100>,
  "categoryScores": {
    "technicalSkills": <integer 0-100>,
    "experienceRelevance": <integer 0-100>,
    "educationCertifications": <integer 0-100>,
    "projectsPortfolio": <integer 0-100>,
    "salaryAvailability": <integer 0-100>,
    "culturalFit": <integer 0-100>,
    "profileQuality": <integer 0-100>
  },
  "strengths": ["<3-7 specific strengths>"],
  "concerns": ["<specific concerns, may be empty>"],
  "keyHighlights": ["<3-7 key highlights>"],
  "technicalSkillsFound": ["<skills found in the resume with proficiency>"],
  "experienceHighlights": ["<roles and durations from the resume>"],
  "educationDetails": ["<degrees and certifications from the resume>"],
  "projectsAndAchievements": ["<notable projects and achievements>"],
  "recommendation": "<one of: HIGHLY RECOMMENDED, RECOMMENDED, CONDITIONALLY RECOMMENDED, NOT RECOMMENDED>",
  "detailedAnalysis": "<4-6 sentence narrative assessment>",
  "nextSteps": ["<3-5 actionable next steps for the hiring team>"],
  "salaryAssessment": {
    "candidateExpectation": %.0f,
    "budgetAlignment": "<Within Range | Above Range | Below Range | Manual Review Required>",
    "negotiationPotential": "<High | Moderate | Low | Unknown>",
    "marketRate": "<Above Market | Competitive | Below Market | Needs Assessment>"
  }
}

CRITICAL REQUIREMENTS:
- Return ONLY the JSON object above, with no markdown formatting, code blocks, or explanations
- All scores must be integers between 0 and 100
- Arrays should contain 3-7 relevant items
- Be specific and evidence-based; extract actual information from the resume content`,
		job.Title,
		job.Description,
		job.Experience.Min, job.Experience.Max,
		formatSalaryRange(job.Salary),
		skills,
		orPlaceholder(job.Location, "Not specified"),
		orPlaceholder(string(job.EmploymentType), "Not specified"),
		candidate.Name,
		candidate.Email,
		candidate.Phone,
		orPlaceholder(candidate.LinkedIn, "Not provided"),
		orPlaceholder(candidate.GitHub, "Not provided"),
		orPlaceholder(candidate.Portfolio, "Not provided"),
		candidate.SalaryExpectation,
		candidate.ExperienceYears,
		candidate.NoticePeriod,
		candidate.SalaryExpectation,
	)
}

// BuildJobDescriptionPrompt renders the instruction text for the assistant
// endpoint that drafts a posting description from a recruiter's brief.
func (pb *PromptBuilder) BuildJobDescriptionPrompt(req models.GenerateDescriptionRequest) string {
	skills := "Not specified"
	if len(req.Skills) > 0 {
		skills = strings.Join(req.Skills, ", ")
	}

	return fmt.Sprintf(`You are an expert technical recruiter writing a job description.

RECRUITER BRIEF:
%s

POSITION CONTEXT:
Title: %s
Location: %s
Required Skills: %s
Experience: %d-%d years

Write a clear, compelling job description covering the role summary, key responsibilities, requirements, and what the company offers. Return plain text only, with no markdown code fences.`,
		strings.TrimSpace(req.Prompt),
		orPlaceholder(req.Title, "Not specified"),
		orPlaceholder(req.Location, "Not specified"),
		skills,
		req.Experience.Min, req.Experience.Max,
	)
}

func orPlaceholder(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

func formatSalaryRange(s models.SalaryRange) string {
	if s.Min == 0 && s.Max == 0 {
		return "Not specified"
	}
	currency := s.Currency
	if currency == "" {
		currency = "USD"
	}
	return fmt.Sprintf("%.0f-%.0f %s", s.Min, s.Max, currency)
}
