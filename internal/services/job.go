package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/teris-io/shortid"

	"github.com/bidyut10/corporate-ai/internal/models"
	"github.com/bidyut10/corporate-ai/internal/repositories"
)

// JobService is deliberately thin: postings mostly exist so applications
// have something to resolve against. Closing a posting soft-deletes it.
type JobService interface {
	Create(ctx context.Context, req models.CreateJobRequest, createdBy uuid.UUID) (*models.JobPosting, error)
	Get(ctx context.Context, ref string) (*models.JobPosting, error)
	ListActive(ctx context.Context) ([]models.JobPosting, error)
	UpdateStatus(ctx context.Context, ref string, status models.JobStatus) (*models.JobPosting, error)
}

type jobService struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &jobService{jobRepo: jobRepo}
}

func (s *jobService) Create(ctx context.Context, req models.CreateJobRequest, createdBy uuid.UUID) (*models.JobPosting, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, invalidField("title", "job title is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, invalidField("description", "job description is required")
	}

	sid, err := shortid.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: generate job id: %v", ErrDependency, err)
	}

	employmentType := req.EmploymentType
	if employmentType == "" {
		employmentType = models.EmploymentFullTime
	}

	job := &models.JobPosting{
		ShortID:        sid,
		Title:          strings.TrimSpace(req.Title),
		Description:    strings.TrimSpace(req.Description),
		Location:       strings.TrimSpace(req.Location),
		Skills:         req.Skills,
		Salary:         req.Salary,
		Experience:     req.Experience,
		EmploymentType: employmentType,
		Status:         models.JobStatusActive,
		CreatedBy:      createdBy,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("%w: create job: %v", ErrDependency, err)
	}
	return job, nil
}

func (s *jobService) Get(ctx context.Context, ref string) (*models.JobPosting, error) {
	return resolveJob(ctx, s.jobRepo, ref)
}

func (s *jobService) ListActive(ctx context.Context) ([]models.JobPosting, error) {
	jobs, err := s.jobRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list jobs: %v", ErrDependency, err)
	}
	return jobs, nil
}

func (s *jobService) UpdateStatus(ctx context.Context, ref string, status models.JobStatus) (*models.JobPosting, error) {
	if !models.ValidJobStatus(status) {
		return nil, invalidField("status", "unknown job status")
	}

	job, err := resolveJob(ctx, s.jobRepo, ref)
	if err != nil {
		return nil, err
	}

	// Closing implies soft deletion; reactivating clears it.
	isDeleted := job.IsDeleted
	switch status {
	case models.JobStatusClosed:
		isDeleted = true
	case models.JobStatusActive:
		isDeleted = false
	}

	if err := s.jobRepo.UpdateStatus(ctx, job.ID, status, isDeleted); err != nil {
		return nil, fmt.Errorf("%w: update job status: %v", ErrDependency, err)
	}

	job.Status = status
	job.IsDeleted = isDeleted
	return job, nil
}
