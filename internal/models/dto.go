package models

import "time"

// AnalysisSummary is the short-form feedback returned to the applicant
// immediately after submission. Highlights are truncated to three entries.
type AnalysisSummary struct {
	Score          int      `json:"score"`
	Recommendation string   `json:"recommendation"`
	Highlights     []string `json:"highlights"`
}

type SubmitApplicationResponse struct {
	Application *Application     `json:"data"`
	Message     string           `json:"message"`
	Analysis    *AnalysisSummary `json:"analysis,omitempty"`
}

type CreateJobRequest struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Location       string          `json:"location"`
	Skills         []string        `json:"skills"`
	Salary         SalaryRange     `json:"salary"`
	Experience     ExperienceRange `json:"experience"`
	EmploymentType EmploymentType  `json:"employment_type"`
	CreatedBy      string          `json:"created_by"`
}

type UpdateJobStatusRequest struct {
	Status JobStatus `json:"status"`
}

type UpdateApplicationStatusRequest struct {
	Status ApplicationStatus `json:"status"`
}

type AddNoteRequest struct {
	Note    string `json:"note"`
	AddedBy string `json:"added_by"`
}

type AddInterviewRequest struct {
	Type        InterviewType `json:"type"`
	ScheduledAt time.Time     `json:"scheduled_at"`
	ConductedBy string        `json:"conducted_by"`
}

type GenerateDescriptionRequest struct {
	Prompt     string          `json:"prompt"`
	Title      string          `json:"title"`
	Location   string          `json:"location"`
	Skills     []string        `json:"skills"`
	Experience ExperienceRange `json:"experience"`
}

type Pagination struct {
	CurrentPage       int   `json:"current_page"`
	TotalPages        int   `json:"total_pages"`
	TotalApplications int64 `json:"total_applications"`
	HasNextPage       bool  `json:"has_next_page"`
	HasPrevPage       bool  `json:"has_prev_page"`
}

type ApplicationListResponse struct {
	Data       []Application `json:"data"`
	Pagination Pagination    `json:"pagination"`
	JobTitle   string        `json:"job_title"`
}

// SimilarCandidate is one hit from the vector search over analyzed
// applications.
type SimilarCandidate struct {
	ApplicationID string  `json:"application_id"`
	ApplicantName string  `json:"applicant_name"`
	Score         float32 `json:"score"`
	Summary       string  `json:"summary"`
}
