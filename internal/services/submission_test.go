package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bidyut10/corporate-ai/internal/models"
	"github.com/bidyut10/corporate-ai/internal/services"
)

const maxResumeSize = 5 * 1024 * 1024

type submissionFixture struct {
	jobRepo  *mockJobRepository
	appRepo  *mockApplicationRepository
	store    *mockResumeStore
	analyzer *mockResumeAnalyzer
	pdf      *mockPDFInspector
	service  services.SubmissionService
}

func newSubmissionFixture() *submissionFixture {
	f := &submissionFixture{
		jobRepo:  &mockJobRepository{},
		appRepo:  &mockApplicationRepository{},
		store:    &mockResumeStore{},
		analyzer: &mockResumeAnalyzer{},
		pdf:      &mockPDFInspector{},
	}
	f.service = services.NewSubmissionService(
		f.jobRepo, f.appRepo, f.store, f.analyzer, f.pdf, nil, maxResumeSize,
	)
	return f
}

func activeJob() *models.JobPosting {
	return &models.JobPosting{
		ID:      uuid.New(),
		ShortID: "aB3xK9pQ",
		Title:   "Senior Backend Engineer",
		Status:  models.JobStatusActive,
	}
}

func validInput(jobRef string) services.SubmitApplicationInput {
	return services.SubmitApplicationInput{
		JobRef:            jobRef,
		ApplicantName:     "Jane Doe",
		ApplicantEmail:    "Jane@Example.com",
		Phone:             "+1 555 0100",
		GitHub:            "https://github.com/janedoe",
		SalaryExpectation: "120000",
		ExperienceYears:   "5",
		NoticePeriod:      "30",
		Resume: &services.ResumeFile{
			Filename:    "resume.pdf",
			ContentType: "application/pdf",
			Size:        2048,
			Data:        []byte("%PDF-1.4 test resume content"),
		},
	}
}

func completedAnalysis(t *testing.T) *services.ResumeAnalysis {
	t.Helper()
	analysis, err := services.ParseAnalysisResponse(validAnalysisJSON)
	require.NoError(t, err)
	return analysis
}

func TestSubmit_Success(t *testing.T) {
	f := newSubmissionFixture()
	job := activeJob()
	ctx := context.Background()

	f.jobRepo.On("FindByID", mock.Anything, job.ID).Return(job, nil)
	f.pdf.On("Inspect", mock.Anything).Return(&services.PDFInfo{PageCount: 2, HasText: true}, nil)
	f.appRepo.On("ExistsForApplicant", mock.Anything, job.ID, "jane@example.com", "+1 555 0100").Return(false, nil)
	f.store.On("Upload", mock.Anything, mock.Anything, mock.AnythingOfType("string")).
		Return(&services.ResumeUpload{URL: "https://cdn.example.com/resume.pdf", PublicID: "resumes/jane"}, nil)
	f.analyzer.On("Analyze", mock.Anything, mock.Anything, job, mock.Anything).Return(completedAnalysis(t))
	f.appRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Application")).Return(nil)

	app, summary, err := f.service.Submit(ctx, validInput(job.ID.String()))
	require.NoError(t, err)

	assert.Equal(t, job.ID, app.JobID)
	assert.Equal(t, "jane@example.com", app.ApplicantEmail)
	assert.Equal(t, "https://cdn.example.com/resume.pdf", app.ResumeURL)
	assert.Equal(t, models.ApplicationPending, app.Status)
	assert.Equal(t, "website", app.ApplicationSource)
	assert.Equal(t, models.AnalysisCompleted, app.AIAnalysisStatus)
	require.NotNil(t, app.AIScore)
	assert.Equal(t, 85, *app.AIScore)

	require.NotNil(t, summary)
	assert.Equal(t, 85, summary.Score)
	assert.Len(t, summary.Highlights, 3)

	f.store.AssertNotCalled(t, "Destroy", mock.Anything, mock.Anything)
}

func TestSubmit_ResolvesJobByShortID(t *testing.T) {
	f := newSubmissionFixture()
	job := activeJob()

	f.jobRepo.On("FindByShortID", mock.Anything, job.ShortID).Return(job, nil)
	f.pdf.On("Inspect", mock.Anything).Return(&services.PDFInfo{PageCount: 1}, nil)
	f.appRepo.On("ExistsForApplicant", mock.Anything, job.ID, mock.Anything, mock.Anything).Return(false, nil)
	f.store.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return(&services.ResumeUpload{URL: "https://cdn.example.com/r.pdf", PublicID: "resumes/r"}, nil)
	f.analyzer.On("Analyze", mock.Anything, mock.Anything, job, mock.Anything).Return(completedAnalysis(t))
	f.appRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	app, _, err := f.service.Submit(context.Background(), validInput(job.ShortID))
	require.NoError(t, err)
	assert.Equal(t, job.ID, app.JobID)
	f.jobRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestSubmit_UnknownJob(t *testing.T) {
	f := newSubmissionFixture()

	f.pdf.On("Inspect", mock.Anything).Return(&services.PDFInfo{PageCount: 1}, nil)
	f.jobRepo.On("FindByShortID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, _, err := f.service.Submit(context.Background(), validInput("missing"))
	assert.True(t, errors.Is(err, services.ErrNotFound))
	f.store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmit_ClosedJobRejectedBeforeUpload(t *testing.T) {
	f := newSubmissionFixture()
	job := activeJob()
	job.Close()

	f.pdf.On("Inspect", mock.Anything).Return(&services.PDFInfo{PageCount: 1}, nil)
	f.jobRepo.On("FindByID", mock.Anything, job.ID).Return(job, nil)

	_, _, err := f.service.Submit(context.Background(), validInput(job.ID.String()))
	assert.True(t, errors.Is(err, services.ErrJobClosed))
	f.store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
	f.appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_DuplicateRejectedBeforeUpload(t *testing.T) {
	f := newSubmissionFixture()
	job := activeJob()

	f.pdf.On("Inspect", mock.Anything).Return(&services.PDFInfo{PageCount: 1}, nil)
	f.jobRepo.On("FindByID", mock.Anything, job.ID).Return(job, nil)
	f.appRepo.On("ExistsForApplicant", mock.Anything, job.ID, mock.Anything, mock.Anything).Return(true, nil)

	_, _, err := f.service.Submit(context.Background(), validInput(job.ID.String()))
	assert.True(t, errors.Is(err, services.ErrDuplicateApplication))
	f.store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmit_RaceLostOnInsertCleansUpResume(t *testing.T) {
	f := newSubmissionFixture()
	job := activeJob()

	f.pdf.On("Inspect", mock.Anything).Return(&services.PDFInfo{PageCount: 1}, nil)
	f.jobRepo.On("FindByID", mock.Anything, job.ID).Return(job, nil)
	f.appRepo.On("ExistsForApplicant", mock.Anything, job.ID, mock.Anything, mock.Anything).Return(false, nil)
	f.store.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return(&services.ResumeUpload{URL: "https://cdn.example.com/r.pdf", PublicID: "resumes/raced"}, nil)
	f.analyzer.On("Analyze", mock.Anything, mock.Anything, job, mock.Anything).Return(completedAnalysis(t))
	f.appRepo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)
	f.store.On("Destroy", mock.Anything, "resumes/raced").Return(nil)

	_, _, err := f.service.Submit(context.Background(), validInput(job.ID.String()))
	assert.True(t, errors.Is(err, services.ErrDuplicateApplication))
	f.store.AssertNumberOfCalls(t, "Destroy", 1)
}

func TestSubmit_PersistFailureCleansUpResume(t *testing.T) {
	f := newSubmissionFixture()
	job := activeJob()

	f.pdf.On("Inspect", mock.Anything).Return(&services.PDFInfo{PageCount: 1}, nil)
	f.jobRepo.On("FindByID", mock.Anything, job.ID).Return(job, nil)
	f.appRepo.On("ExistsForApplicant", mock.Anything, job.ID, mock.Anything, mock.Anything).Return(false, nil)
	f.store.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return(&services.ResumeUpload{URL: "https://cdn.example.com/r.pdf", PublicID: "resumes/orphan"}, nil)
	f.analyzer.On("Analyze", mock.Anything, mock.Anything, job, mock.Anything).Return(completedAnalysis(t))
	f.appRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))
	f.store.On("Destroy", mock.Anything, "resumes/orphan").Return(nil)

	_, _, err := f.service.Submit(context.Background(), validInput(job.ID.String()))
	assert.True(t, errors.Is(err, services.ErrDependency))
	f.store.AssertNumberOfCalls(t, "Destroy", 1)
}

func TestSubmit_UploadFailure(t *testing.T) {
	f := newSubmissionFixture()
	job := activeJob()

	f.pdf.On("Inspect", mock.Anything).Return(&services.PDFInfo{PageCount: 1}, nil)
	f.jobRepo.On("FindByID", mock.Anything, job.ID).Return(job, nil)
	f.appRepo.On("ExistsForApplicant", mock.Anything, job.ID, mock.Anything, mock.Anything).Return(false, nil)
	f.store.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("storage unavailable"))

	_, _, err := f.service.Submit(context.Background(), validInput(job.ID.String()))
	assert.True(t, errors.Is(err, services.ErrDependency))
	f.appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_FallbackAnalysisStillPersists(t *testing.T) {
	f := newSubmissionFixture()
	job := activeJob()

	fallback := services.FallbackAnalysis(services.CandidateProfile{
		Name: "Jane Doe", ExperienceYears: 5, GitHub: "https://github.com/janedoe",
	})

	f.pdf.On("Inspect", mock.Anything).Return(&services.PDFInfo{PageCount: 1}, nil)
	f.jobRepo.On("FindByID", mock.Anything, job.ID).Return(job, nil)
	f.appRepo.On("ExistsForApplicant", mock.Anything, job.ID, mock.Anything, mock.Anything).Return(false, nil)
	f.store.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return(&services.ResumeUpload{URL: "https://cdn.example.com/r.pdf", PublicID: "resumes/fb"}, nil)
	f.analyzer.On("Analyze", mock.Anything, mock.Anything, job, mock.Anything).Return(fallback)
	f.appRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	app, summary, err := f.service.Submit(context.Background(), validInput(job.ID.String()))
	require.NoError(t, err)

	assert.Equal(t, models.AnalysisFailed, app.AIAnalysisStatus)
	require.NotNil(t, app.AIScore)
	assert.Equal(t, 75, *app.AIScore) // 60 base + 10 experience + 5 github
	require.NotNil(t, summary)
	assert.Equal(t, 75, summary.Score)
}

func TestSubmit_ValidationFailures(t *testing.T) {
	jobRef := uuid.New().String()

	tests := []struct {
		name   string
		mutate func(*services.SubmitApplicationInput)
		field  string
	}{
		{
			name:   "missing name",
			mutate: func(in *services.SubmitApplicationInput) { in.ApplicantName = "  " },
			field:  "applicantName",
		},
		{
			name:   "invalid email",
			mutate: func(in *services.SubmitApplicationInput) { in.ApplicantEmail = "not-an-email" },
			field:  "applicantEmail",
		},
		{
			name:   "invalid phone",
			mutate: func(in *services.SubmitApplicationInput) { in.Phone = "call me maybe" },
			field:  "phone",
		},
		{
			name:   "phone without digits",
			mutate: func(in *services.SubmitApplicationInput) { in.Phone = "+() --" },
			field:  "phone",
		},
		{
			name:   "negative salary",
			mutate: func(in *services.SubmitApplicationInput) { in.SalaryExpectation = "-5" },
			field:  "salaryExpectation",
		},
		{
			name:   "NaN salary",
			mutate: func(in *services.SubmitApplicationInput) { in.SalaryExpectation = "NaN" },
			field:  "salaryExpectation",
		},
		{
			name:   "infinite salary",
			mutate: func(in *services.SubmitApplicationInput) { in.SalaryExpectation = "+Inf" },
			field:  "salaryExpectation",
		},
		{
			name:   "experience out of range",
			mutate: func(in *services.SubmitApplicationInput) { in.ExperienceYears = "60" },
			field:  "experienceYears",
		},
		{
			name:   "notice period out of range",
			mutate: func(in *services.SubmitApplicationInput) { in.NoticePeriod = "500" },
			field:  "noticePeriod",
		},
		{
			name:   "missing resume",
			mutate: func(in *services.SubmitApplicationInput) { in.Resume = nil },
			field:  "resume",
		},
		{
			name: "wrong content type",
			mutate: func(in *services.SubmitApplicationInput) {
				in.Resume.ContentType = "application/msword"
			},
			field: "resume",
		},
		{
			name: "oversized resume",
			mutate: func(in *services.SubmitApplicationInput) {
				in.Resume.Size = maxResumeSize + 1
			},
			field: "resume",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSubmissionFixture()
			input := validInput(jobRef)
			tt.mutate(&input)

			_, _, err := f.service.Submit(context.Background(), input)

			var validationErr *services.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.field, validationErr.Field)
			f.store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSubmit_UnreadablePDFRejected(t *testing.T) {
	f := newSubmissionFixture()
	input := validInput(uuid.New().String())

	f.pdf.On("Inspect", mock.Anything).Return(nil, errors.New("not a pdf"))

	_, _, err := f.service.Submit(context.Background(), input)

	var validationErr *services.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "resume", validationErr.Field)
}

func TestResumePublicID_SanitizesName(t *testing.T) {
	id := services.ResumePublicID("  Jane O'Brien-Doe!  ")
	assert.Regexp(t, `^Jane_O_Brien_Doe_\d+_[0-9a-f]{9}$`, id)

	fallbackID := services.ResumePublicID("???")
	assert.Regexp(t, `^resume_\d+_[0-9a-f]{9}$`, fallbackID)
}
