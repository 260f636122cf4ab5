package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bidyut10/corporate-ai/internal/models"
	"github.com/bidyut10/corporate-ai/internal/repositories"
)

// ReviewService covers everything HR does with an application after
// submission: listing, inspection, workflow transitions, notes, interviews
// and deletion.
type ReviewService interface {
	ListByJob(ctx context.Context, jobRef string, filter repositories.ApplicationFilter) (*models.ApplicationListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error)
	AddNote(ctx context.Context, id uuid.UUID, req models.AddNoteRequest) (*models.Application, error)
	AddInterview(ctx context.Context, id uuid.UUID, req models.AddInterviewRequest) (*models.Application, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindSimilar(ctx context.Context, id uuid.UUID, limit int) ([]models.SimilarCandidate, error)
}

type reviewService struct {
	jobRepo repositories.JobRepository
	appRepo repositories.ApplicationRepository
	store   ResumeStore
	search  CandidateSearchService // nil when similarity search is disabled
}

func NewReviewService(
	jobRepo repositories.JobRepository,
	appRepo repositories.ApplicationRepository,
	store ResumeStore,
	search CandidateSearchService,
) ReviewService {
	return &reviewService{
		jobRepo: jobRepo,
		appRepo: appRepo,
		store:   store,
		search:  search,
	}
}

func (s *reviewService) ListByJob(ctx context.Context, jobRef string, filter repositories.ApplicationFilter) (*models.ApplicationListResponse, error) {
	job, err := resolveJob(ctx, s.jobRepo, jobRef)
	if err != nil {
		return nil, err
	}

	apps, total, err := s.appRepo.ListByJob(ctx, job.ID, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: list applications: %v", ErrDependency, err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 10
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &models.ApplicationListResponse{
		Data: apps,
		Pagination: models.Pagination{
			CurrentPage:       page,
			TotalPages:        totalPages,
			TotalApplications: total,
			HasNextPage:       page < totalPages,
			HasPrevPage:       page > 1,
		},
		JobTitle: job.Title,
	}, nil
}

func (s *reviewService) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	app, err := s.appRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: application %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: find application: %v", ErrDependency, err)
	}
	return app, nil
}

func (s *reviewService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error) {
	if !models.ValidApplicationStatus(status) {
		return nil, invalidField("status", "unknown application status")
	}

	if err := s.appRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: application %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: update status: %v", ErrDependency, err)
	}

	return s.GetByID(ctx, id)
}

func (s *reviewService) AddNote(ctx context.Context, id uuid.UUID, req models.AddNoteRequest) (*models.Application, error) {
	if strings.TrimSpace(req.Note) == "" {
		return nil, invalidField("note", "note text is required")
	}

	// Verify the application exists before attaching the note.
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	note := &models.HRNote{
		ApplicationID: id,
		Note:          strings.TrimSpace(req.Note),
		AddedBy:       strings.TrimSpace(req.AddedBy),
		AddedAt:       time.Now(),
	}
	if err := s.appRepo.AddNote(ctx, note); err != nil {
		return nil, fmt.Errorf("%w: add note: %v", ErrDependency, err)
	}

	return s.GetByID(ctx, id)
}

func (s *reviewService) AddInterview(ctx context.Context, id uuid.UUID, req models.AddInterviewRequest) (*models.Application, error) {
	if !models.ValidInterviewType(req.Type) {
		return nil, invalidField("type", "unknown interview type")
	}
	if req.ScheduledAt.IsZero() {
		return nil, invalidField("scheduled_at", "interview time is required")
	}

	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	interview := &models.Interview{
		ApplicationID: id,
		Type:          req.Type,
		ScheduledAt:   req.ScheduledAt,
		ConductedBy:   strings.TrimSpace(req.ConductedBy),
		Status:        "scheduled",
	}
	if err := s.appRepo.AddInterview(ctx, interview); err != nil {
		return nil, fmt.Errorf("%w: add interview: %v", ErrDependency, err)
	}

	return s.GetByID(ctx, id)
}

// Delete removes the application. The stored resume is destroyed first,
// best-effort: a storage failure is logged and the record still goes away.
func (s *reviewService) Delete(ctx context.Context, id uuid.UUID) error {
	app, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.Destroy(ctx, app.ResumePublicID); err != nil {
		log.Printf("⚠️  Failed to delete resume %s from storage: %v\n", app.ResumePublicID, err)
	}

	if s.search != nil {
		if err := s.search.RemoveApplication(ctx, app.ID); err != nil {
			log.Printf("⚠️  Failed to remove application %s from search index: %v\n", app.ID, err)
		}
	}

	if err := s.appRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: application %s", ErrNotFound, id)
		}
		return fmt.Errorf("%w: delete application: %v", ErrDependency, err)
	}
	return nil
}

func (s *reviewService) FindSimilar(ctx context.Context, id uuid.UUID, limit int) ([]models.SimilarCandidate, error) {
	if s.search == nil {
		return nil, fmt.Errorf("%w: similarity search is not configured", ErrDependency)
	}

	app, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if limit < 1 || limit > 50 {
		limit = 5
	}

	results, err := s.search.FindSimilar(ctx, app, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: similarity search: %v", ErrDependency, err)
	}
	return results, nil
}
