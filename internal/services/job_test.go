package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bidyut10/corporate-ai/internal/models"
	"github.com/bidyut10/corporate-ai/internal/services"
)

func TestJobCreate_GeneratesShortID(t *testing.T) {
	jobRepo := &mockJobRepository{}
	service := services.NewJobService(jobRepo)

	jobRepo.On("Create", mock.Anything, mock.MatchedBy(func(job *models.JobPosting) bool {
		return job.ShortID != "" && job.Status == models.JobStatusActive &&
			job.EmploymentType == models.EmploymentFullTime
	})).Return(nil)

	job, err := service.Create(context.Background(), models.CreateJobRequest{
		Title:       "  Senior Backend Engineer  ",
		Description: "Build the hiring platform.",
	}, uuid.New())
	require.NoError(t, err)

	assert.NotEmpty(t, job.ShortID)
	assert.Equal(t, "Senior Backend Engineer", job.Title)
	jobRepo.AssertExpectations(t)
}

func TestJobCreate_RequiresTitleAndDescription(t *testing.T) {
	service := services.NewJobService(&mockJobRepository{})

	_, err := service.Create(context.Background(), models.CreateJobRequest{Description: "x"}, uuid.Nil)
	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "title", validationErr.Field)

	_, err = service.Create(context.Background(), models.CreateJobRequest{Title: "x"}, uuid.Nil)
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "description", validationErr.Field)
}

func TestJobUpdateStatus_ClosingSoftDeletes(t *testing.T) {
	jobRepo := &mockJobRepository{}
	service := services.NewJobService(jobRepo)
	job := activeJob()

	jobRepo.On("FindByID", mock.Anything, job.ID).Return(job, nil)
	jobRepo.On("UpdateStatus", mock.Anything, job.ID, models.JobStatusClosed, true).Return(nil)

	updated, err := service.UpdateStatus(context.Background(), job.ID.String(), models.JobStatusClosed)
	require.NoError(t, err)

	assert.Equal(t, models.JobStatusClosed, updated.Status)
	assert.True(t, updated.IsDeleted)
	assert.False(t, updated.AcceptingApplications())
	jobRepo.AssertExpectations(t)
}

func TestJobUpdateStatus_ReactivatingClearsSoftDelete(t *testing.T) {
	jobRepo := &mockJobRepository{}
	service := services.NewJobService(jobRepo)
	job := activeJob()
	job.Close()

	jobRepo.On("FindByID", mock.Anything, job.ID).Return(job, nil)
	jobRepo.On("UpdateStatus", mock.Anything, job.ID, models.JobStatusActive, false).Return(nil)

	updated, err := service.UpdateStatus(context.Background(), job.ID.String(), models.JobStatusActive)
	require.NoError(t, err)

	assert.True(t, updated.AcceptingApplications())
}

func TestJobUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	service := services.NewJobService(&mockJobRepository{})

	_, err := service.UpdateStatus(context.Background(), uuid.New().String(), "archived")

	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "status", validationErr.Field)
}
