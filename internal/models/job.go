package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type JobStatus string

const (
	JobStatusActive   JobStatus = "active"
	JobStatusInactive JobStatus = "inactive"
	JobStatusClosed   JobStatus = "closed"
)

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full-time"
	EmploymentPartTime   EmploymentType = "part-time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
	EmploymentFreelance  EmploymentType = "freelance"
)

type SalaryRange struct {
	Min      float64 `gorm:"type:numeric;default:0" json:"min"`
	Max      float64 `gorm:"type:numeric;default:0" json:"max"`
	Currency string  `gorm:"type:text;default:'USD'" json:"currency"`
}

type ExperienceRange struct {
	Min int `gorm:"default:0" json:"min"`
	Max int `gorm:"default:10" json:"max"`
}

// JobPosting is an open position that candidates apply to. ShortID is the
// human-facing identifier used in public links; ID is the database key.
type JobPosting struct {
	ID             uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ShortID        string                      `gorm:"type:text;uniqueIndex;not null" json:"job_id"`
	Title          string                      `gorm:"type:text;not null" json:"title"`
	Description    string                      `gorm:"type:text;not null" json:"description"`
	Location       string                      `gorm:"type:text" json:"location"`
	Skills         datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"skills"`
	Salary         SalaryRange                 `gorm:"embedded;embeddedPrefix:salary_" json:"salary"`
	Experience     ExperienceRange             `gorm:"embedded;embeddedPrefix:experience_" json:"experience"`
	EmploymentType EmploymentType              `gorm:"type:text;default:'full-time'" json:"employment_type"`
	Status         JobStatus                   `gorm:"type:text;not null;default:'active';index:idx_jobs_status_deleted" json:"status"`
	IsDeleted      bool                        `gorm:"not null;default:false;index:idx_jobs_status_deleted" json:"is_deleted"`
	CreatedBy      uuid.UUID                   `gorm:"type:uuid;index" json:"created_by"`
	CreatedAt      time.Time                   `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time                   `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (JobPosting) TableName() string {
	return "jobs"
}

// AcceptingApplications reports whether new applications may be submitted.
// A closed posting is always soft-deleted, so both checks are required.
func (j *JobPosting) AcceptingApplications() bool {
	return j.Status == JobStatusActive && !j.IsDeleted
}

// Close marks the posting closed. Closing implies soft deletion.
func (j *JobPosting) Close() {
	j.Status = JobStatusClosed
	j.IsDeleted = true
}

func ValidJobStatus(s JobStatus) bool {
	switch s {
	case JobStatusActive, JobStatusInactive, JobStatusClosed:
		return true
	}
	return false
}
