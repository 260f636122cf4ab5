package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationReviewing   ApplicationStatus = "reviewing"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationInterviewed ApplicationStatus = "interviewed"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationHired       ApplicationStatus = "hired"
)

type AnalysisStatus string

const (
	AnalysisPending      AnalysisStatus = "pending"
	AnalysisCompleted    AnalysisStatus = "completed"
	AnalysisFailed       AnalysisStatus = "failed"
	AnalysisManualReview AnalysisStatus = "manual_review"
)

type Recommendation string

const (
	HighlyRecommended        Recommendation = "HIGHLY RECOMMENDED"
	Recommended              Recommendation = "RECOMMENDED"
	ConditionallyRecommended Recommendation = "CONDITIONALLY RECOMMENDED"
	NotRecommended           Recommendation = "NOT RECOMMENDED"
	ManualReviewRequired     Recommendation = "MANUAL REVIEW REQUIRED"
)

func ValidRecommendation(r Recommendation) bool {
	switch r {
	case HighlyRecommended, Recommended, ConditionallyRecommended, NotRecommended, ManualReviewRequired:
		return true
	}
	return false
}

func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationPending, ApplicationReviewing, ApplicationShortlisted,
		ApplicationInterviewed, ApplicationRejected, ApplicationHired:
		return true
	}
	return false
}

// CategoryScores holds the seven per-dimension scores produced by resume
// analysis. All values are 0-100, nil until analysis runs.
type CategoryScores struct {
	TechnicalSkills         *int `gorm:"index" json:"technicalSkills"`
	ExperienceRelevance     *int `gorm:"index" json:"experienceRelevance"`
	EducationCertifications *int `json:"educationCertifications"`
	ProjectsPortfolio       *int `json:"projectsPortfolio"`
	SalaryAvailability      *int `json:"salaryAvailability"`
	CulturalFit             *int `json:"culturalFit"`
	ProfileQuality          *int `json:"profileQuality"`
}

type SalaryAssessment struct {
	CandidateExpectation float64 `gorm:"type:numeric;default:0" json:"candidateExpectation"`
	BudgetAlignment      string  `gorm:"type:text" json:"budgetAlignment"`
	NegotiationPotential string  `gorm:"type:text" json:"negotiationPotential"`
	MarketRate           string  `gorm:"type:text" json:"marketRate"`
}

// Application is a candidate's submission against a job posting, including
// the AI analysis outcome and the HR review trail.
//
// The two compound unique indexes are the source of truth for duplicate
// detection: the pre-insert check in the submission service only exists to
// give a friendly error without an upload.
type Application struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`

	JobID          uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_job_email;uniqueIndex:idx_applications_job_phone" json:"job_id"`
	ApplicantName  string    `gorm:"type:text;not null" json:"applicant_name"`
	ApplicantEmail string    `gorm:"type:text;not null;uniqueIndex:idx_applications_job_email" json:"applicant_email"`
	Phone          string    `gorm:"type:text;not null;uniqueIndex:idx_applications_job_phone" json:"phone"`

	LinkedIn  string `gorm:"type:text" json:"linkedin,omitempty"`
	GitHub    string `gorm:"type:text" json:"github,omitempty"`
	Portfolio string `gorm:"type:text" json:"portfolio,omitempty"`

	SalaryExpectation float64 `gorm:"type:numeric;not null" json:"salary_expectation"`
	ExperienceYears   int     `gorm:"not null" json:"experience_years"`
	NoticePeriod      int     `gorm:"not null" json:"notice_period"`

	// ResumePublicID is the storage handle needed to delete the stored
	// resume later; it must outlive everything except the record itself.
	ResumeURL      string `gorm:"type:text;not null" json:"resume_url"`
	ResumePublicID string `gorm:"type:text;not null" json:"resume_public_id"`

	AIScore                *int                        `gorm:"index" json:"ai_score"`
	AICategoryScores       CategoryScores              `gorm:"embedded;embeddedPrefix:ai_category_" json:"ai_category_scores"`
	AIHighlights           datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"ai_highlights"`
	AIConcerns             datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"ai_concerns"`
	AIKeyPoints            datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"ai_key_points"`
	AITechnicalSkills      datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"ai_technical_skills"`
	AIExperienceHighlights datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"ai_experience_highlights"`
	AIEducationDetails     datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"ai_education_details"`
	AIProjectsAchievements datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"ai_projects_achievements"`
	AIDetails              string                      `gorm:"type:text" json:"ai_details"`
	AIRecommendation       *Recommendation             `gorm:"type:text;index" json:"ai_recommendation"`
	AINextSteps            datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"ai_next_steps"`
	AISalaryAssessment     SalaryAssessment            `gorm:"embedded;embeddedPrefix:ai_salary_" json:"ai_salary_assessment"`

	AIAnalysisStatus  AnalysisStatus `gorm:"type:text;not null;default:'pending'" json:"ai_analysis_status"`
	AIAnalysisDate    *time.Time     `json:"ai_analysis_date"`
	AIAnalysisVersion string         `gorm:"type:text;default:'1.0'" json:"ai_analysis_version"`

	Status            ApplicationStatus `gorm:"type:text;not null;default:'pending';index" json:"status"`
	HRNotes           []HRNote          `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE" json:"hr_notes"`
	Interviews        []Interview       `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE" json:"interviews"`
	ApplicationSource string            `gorm:"type:text;default:'website'" json:"application_source"`

	AppliedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP;index" json:"applied_at"`
	LastUpdated time.Time `gorm:"autoUpdateTime;default:CURRENT_TIMESTAMP" json:"last_updated"`

	Job JobPosting `gorm:"foreignKey:JobID" json:"job,omitempty"`
}

func (Application) TableName() string {
	return "applications"
}

// HRNote is a timestamped comment left by a reviewer.
type HRNote struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ApplicationID uuid.UUID `gorm:"type:uuid;not null;index" json:"application_id"`
	Note          string    `gorm:"type:text;not null" json:"note"`
	AddedBy       string    `gorm:"type:text" json:"added_by"`
	AddedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"added_at"`
}

func (HRNote) TableName() string {
	return "hr_notes"
}

type InterviewType string

const (
	InterviewPhone     InterviewType = "phone"
	InterviewVideo     InterviewType = "video"
	InterviewInPerson  InterviewType = "in-person"
	InterviewTechnical InterviewType = "technical"
	InterviewFinal     InterviewType = "final"
)

func ValidInterviewType(t InterviewType) bool {
	switch t {
	case InterviewPhone, InterviewVideo, InterviewInPerson, InterviewTechnical, InterviewFinal:
		return true
	}
	return false
}

type Interview struct {
	ID            uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ApplicationID uuid.UUID     `gorm:"type:uuid;not null;index" json:"application_id"`
	Type          InterviewType `gorm:"type:text;not null" json:"type"`
	ScheduledAt   time.Time     `gorm:"not null" json:"scheduled_at"`
	ConductedBy   string        `gorm:"type:text" json:"conducted_by"`
	Status        string        `gorm:"type:text;default:'scheduled'" json:"status"`
	Feedback      string        `gorm:"type:text" json:"feedback"`
	Score         *int          `json:"score"`
	CreatedAt     time.Time     `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Interview) TableName() string {
	return "interviews"
}
