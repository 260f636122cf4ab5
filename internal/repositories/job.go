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

type JobRepository interface {
	Create(ctx context.Context, job *models.JobPosting) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.JobPosting, error)
	FindByShortID(ctx context.Context, shortID string) (*models.JobPosting, error)
	ListActive(ctx context.Context) ([]models.JobPosting, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatus, isDeleted bool) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *models.JobPosting) error {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

func (r *jobRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.JobPosting, error) {
	var job models.JobPosting
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return &job, nil
}

func (r *jobRepository) FindByShortID(ctx context.Context, shortID string) (*models.JobPosting, error) {
	var job models.JobPosting
	if err := r.db.WithContext(ctx).Where("short_id = ?", shortID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return &job, nil
}

func (r *jobRepository) ListActive(ctx context.Context) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	err := r.db.WithContext(ctx).
		Where("status = ? AND is_deleted = ?", models.JobStatusActive, false).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

func (r *jobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatus, isDeleted bool) error {
	result := r.db.WithContext(ctx).Model(&models.JobPosting{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"is_deleted": isDeleted,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update job status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
