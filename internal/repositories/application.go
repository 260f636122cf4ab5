package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bidyut10/corporate-ai/internal/models"
)

type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	ExistsForApplicant(ctx context.Context, jobID uuid.UUID, email, phone string) (bool, error)
	ListByJob(ctx context.Context, jobID uuid.UUID, filter ApplicationFilter) ([]models.Application, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) error
	AddNote(ctx context.Context, note *models.HRNote) error
	AddInterview(ctx context.Context, interview *models.Interview) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ApplicationFilter narrows and orders a per-job listing.
type ApplicationFilter struct {
	Status    models.ApplicationStatus
	MinScore  *int
	MaxScore  *int
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// Whitelist of sortable columns; anything else falls back to applied_at.
var sortableColumns = map[string]string{
	"appliedAt": "applied_at",
	"aiScore":   "ai_score",
	"status":    "status",
	"name":      "applicant_name",
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *models.Application) error {
	// Duplicate-key errors pass through unwrapped so callers can match
	// them with errors.Is(err, gorm.ErrDuplicatedKey).
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

func (r *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("HRNotes", func(db *gorm.DB) *gorm.DB { return db.Order("added_at ASC") }).
		Preload("Interviews", func(db *gorm.DB) *gorm.DB { return db.Order("scheduled_at ASC") }).
		Where("id = ?", id).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return &app, nil
}

// ExistsForApplicant runs the duplicate pre-check as a single query over
// both predicates so two separate lookups cannot race each other.
func (r *applicationRepository) ExistsForApplicant(ctx context.Context, jobID uuid.UUID, email, phone string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("job_id = ? AND (applicant_email = ? OR phone = ?)", jobID, email, phone).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check for existing application: %w", err)
	}
	return count > 0, nil
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID, filter ApplicationFilter) ([]models.Application, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Application{}).Where("job_id = ?", jobID)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.MinScore != nil {
		query = query.Where("ai_score >= ?", *filter.MinScore)
	}
	if filter.MaxScore != nil {
		query = query.Where("ai_score <= ?", *filter.MaxScore)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	column, ok := sortableColumns[filter.SortBy]
	if !ok {
		column = "applied_at"
	}
	direction := "DESC"
	if filter.SortOrder == "asc" {
		direction = "ASC"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 10
	}

	var apps []models.Application
	err := query.
		Order(column + " " + direction).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&apps).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list applications: %w", err)
	}

	return apps, total, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       status,
			"last_updated": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update application status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *applicationRepository) AddNote(ctx context.Context, note *models.HRNote) error {
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		return fmt.Errorf("failed to add note: %w", err)
	}
	return nil
}

func (r *applicationRepository) AddInterview(ctx context.Context, interview *models.Interview) error {
	if err := r.db.WithContext(ctx).Create(interview).Error; err != nil {
		return fmt.Errorf("failed to add interview: %w", err)
	}
	return nil
}

func (r *applicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Application{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete application: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
