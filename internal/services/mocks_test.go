package services_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/bidyut10/corporate-ai/internal/models"
	"github.com/bidyut10/corporate-ai/internal/repositories"
	"github.com/bidyut10/corporate-ai/internal/services"
)

type mockJobRepository struct {
	mock.Mock
}

func (m *mockJobRepository) Create(ctx context.Context, job *models.JobPosting) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *mockJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.JobPosting, error) {
	args := m.Called(ctx, id)
	if job := args.Get(0); job != nil {
		return job.(*models.JobPosting), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockJobRepository) FindByShortID(ctx context.Context, shortID string) (*models.JobPosting, error) {
	args := m.Called(ctx, shortID)
	if job := args.Get(0); job != nil {
		return job.(*models.JobPosting), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockJobRepository) ListActive(ctx context.Context) ([]models.JobPosting, error) {
	args := m.Called(ctx)
	if jobs := args.Get(0); jobs != nil {
		return jobs.([]models.JobPosting), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatus, isDeleted bool) error {
	args := m.Called(ctx, id, status, isDeleted)
	return args.Error(0)
}

type mockApplicationRepository struct {
	mock.Mock
}

func (m *mockApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *mockApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	args := m.Called(ctx, id)
	if app := args.Get(0); app != nil {
		return app.(*models.Application), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockApplicationRepository) ExistsForApplicant(ctx context.Context, jobID uuid.UUID, email, phone string) (bool, error) {
	args := m.Called(ctx, jobID, email, phone)
	return args.Bool(0), args.Error(1)
}

func (m *mockApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID, filter repositories.ApplicationFilter) ([]models.Application, int64, error) {
	args := m.Called(ctx, jobID, filter)
	if apps := args.Get(0); apps != nil {
		return apps.([]models.Application), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockApplicationRepository) AddNote(ctx context.Context, note *models.HRNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *mockApplicationRepository) AddInterview(ctx context.Context, interview *models.Interview) error {
	args := m.Called(ctx, interview)
	return args.Error(0)
}

func (m *mockApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockResumeStore struct {
	mock.Mock
}

func (m *mockResumeStore) Upload(ctx context.Context, data []byte, publicID string) (*services.ResumeUpload, error) {
	args := m.Called(ctx, data, publicID)
	if upload := args.Get(0); upload != nil {
		return upload.(*services.ResumeUpload), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockResumeStore) Destroy(ctx context.Context, publicID string) error {
	args := m.Called(ctx, publicID)
	return args.Error(0)
}

type mockResumeAnalyzer struct {
	mock.Mock
}

func (m *mockResumeAnalyzer) Analyze(ctx context.Context, candidate services.CandidateProfile, job *models.JobPosting, resumePDF []byte) *services.ResumeAnalysis {
	args := m.Called(ctx, candidate, job, resumePDF)
	return args.Get(0).(*services.ResumeAnalysis)
}

type mockPDFInspector struct {
	mock.Mock
}

func (m *mockPDFInspector) Inspect(data []byte) (*services.PDFInfo, error) {
	args := m.Called(data)
	if info := args.Get(0); info != nil {
		return info.(*services.PDFInfo), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCandidateSearch struct {
	mock.Mock
}

func (m *mockCandidateSearch) InitCollection() error {
	args := m.Called()
	return args.Error(0)
}

func (m *mockCandidateSearch) IndexApplication(ctx context.Context, app *models.Application, analysis *services.ResumeAnalysis) error {
	args := m.Called(ctx, app, analysis)
	return args.Error(0)
}

func (m *mockCandidateSearch) RemoveApplication(ctx context.Context, appID uuid.UUID) error {
	args := m.Called(ctx, appID)
	return args.Error(0)
}

func (m *mockCandidateSearch) FindSimilar(ctx context.Context, app *models.Application, limit int) ([]models.SimilarCandidate, error) {
	args := m.Called(ctx, app, limit)
	if results := args.Get(0); results != nil {
		return results.([]models.SimilarCandidate), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockGeminiService struct {
	mock.Mock
}

func (m *mockGeminiService) AnalyzeResume(ctx context.Context, prompt string, resumePDF []byte) (string, error) {
	args := m.Called(ctx, prompt, resumePDF)
	return args.String(0), args.Error(1)
}

func (m *mockGeminiService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	args := m.Called(ctx, prompt, temperature)
	return args.String(0), args.Error(1)
}

func (m *mockGeminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	args := m.Called(ctx, text)
	if embedding := args.Get(0); embedding != nil {
		return embedding.([]float32), args.Error(1)
	}
	return nil, args.Error(1)
}
