package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bidyut10/corporate-ai/internal/models"
	"github.com/bidyut10/corporate-ai/internal/repositories"
)

var phonePattern = regexp.MustCompile(`^[0-9+\-\s()]+$`)

// ResumeFile carries an uploaded resume through validation and storage.
type ResumeFile struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// SubmitApplicationInput holds raw form values; numeric coercion happens
// here, not in the handler, so every caller gets identical validation.
type SubmitApplicationInput struct {
	JobRef            string
	ApplicantName     string
	ApplicantEmail    string
	Phone             string
	LinkedIn          string
	GitHub            string
	Portfolio         string
	SalaryExpectation string
	ExperienceYears   string
	NoticePeriod      string
	Source            string
	Resume            *ResumeFile
}

// SubmissionService coordinates the whole application intake: validation,
// duplicate detection, resume persistence, AI analysis (with fallback) and
// the final write.
type SubmissionService interface {
	Submit(ctx context.Context, input SubmitApplicationInput) (*models.Application, *models.AnalysisSummary, error)
}

type submissionService struct {
	jobRepo       repositories.JobRepository
	appRepo       repositories.ApplicationRepository
	store         ResumeStore
	analyzer      ResumeAnalyzer
	pdfInspector  PDFInspector
	search        CandidateSearchService // nil when similarity search is disabled
	maxResumeSize int64
}

func NewSubmissionService(
	jobRepo repositories.JobRepository,
	appRepo repositories.ApplicationRepository,
	store ResumeStore,
	analyzer ResumeAnalyzer,
	pdfInspector PDFInspector,
	search CandidateSearchService,
	maxResumeSize int64,
) SubmissionService {
	return &submissionService{
		jobRepo:       jobRepo,
		appRepo:       appRepo,
		store:         store,
		analyzer:      analyzer,
		pdfInspector:  pdfInspector,
		search:        search,
		maxResumeSize: maxResumeSize,
	}
}

// Submit implements SubmissionService.
//
// Side effects happen in a strict order: the resume is uploaded only after
// every check passes, and if the final write fails the upload is cleaned up
// best-effort. The compound unique indexes are the real duplicate guard;
// a race lost between the pre-check and the insert surfaces as
// ErrDuplicateApplication.
func (s *submissionService) Submit(ctx context.Context, input SubmitApplicationInput) (*models.Application, *models.AnalysisSummary, error) {
	candidate, err := validateSubmission(&input)
	if err != nil {
		return nil, nil, err
	}

	if err := s.validateResume(input.Resume); err != nil {
		return nil, nil, err
	}

	job, err := resolveJob(ctx, s.jobRepo, input.JobRef)
	if err != nil {
		return nil, nil, err
	}
	if !job.AcceptingApplications() {
		return nil, nil, ErrJobClosed
	}

	exists, err := s.appRepo.ExistsForApplicant(ctx, job.ID, candidate.Email, candidate.Phone)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: duplicate check: %v", ErrDependency, err)
	}
	if exists {
		return nil, nil, ErrDuplicateApplication
	}

	publicID := ResumePublicID(candidate.Name)
	upload, err := s.store.Upload(ctx, input.Resume.Data, publicID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: resume upload: %v", ErrDependency, err)
	}

	// From here on the analysis pipeline must not fail the submission.
	analysis := s.analyzer.Analyze(ctx, *candidate, job, input.Resume.Data)

	source := strings.TrimSpace(input.Source)
	if source == "" {
		source = "website"
	}

	now := time.Now()
	app := &models.Application{
		JobID:             job.ID,
		ApplicantName:     candidate.Name,
		ApplicantEmail:    candidate.Email,
		Phone:             candidate.Phone,
		LinkedIn:          candidate.LinkedIn,
		GitHub:            candidate.GitHub,
		Portfolio:         candidate.Portfolio,
		SalaryExpectation: candidate.SalaryExpectation,
		ExperienceYears:   candidate.ExperienceYears,
		NoticePeriod:      candidate.NoticePeriod,
		ResumeURL:         upload.URL,
		ResumePublicID:    upload.PublicID,
		Status:            models.ApplicationPending,
		ApplicationSource: source,
		AppliedAt:         now,
	}
	ApplyAnalysis(app, analysis, now)

	if err := s.appRepo.Create(ctx, app); err != nil {
		s.cleanupResume(ctx, upload.PublicID)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, ErrDuplicateApplication
		}
		return nil, nil, fmt.Errorf("%w: persist application: %v", ErrDependency, err)
	}

	app.Job = *job

	if s.search != nil {
		if err := s.search.IndexApplication(ctx, app, analysis); err != nil {
			log.Printf("⚠️  Failed to index application %s for similarity search: %v\n", app.ID, err)
		}
	}

	return app, analysis.Summary(), nil
}

// cleanupResume removes an uploaded resume after a failed write. Failure
// here is logged, never propagated: the caller already has a better error
// to report.
func (s *submissionService) cleanupResume(ctx context.Context, publicID string) {
	if err := s.store.Destroy(ctx, publicID); err != nil {
		log.Printf("⚠️  Failed to clean up uploaded resume %s: %v\n", publicID, err)
	}
}

func (s *submissionService) validateResume(resume *ResumeFile) error {
	if resume == nil || len(resume.Data) == 0 {
		return invalidField("resume", "resume file is required")
	}
	if resume.ContentType != resumeMIMEType {
		return invalidField("resume", "only PDF files are allowed")
	}
	if resume.Size > s.maxResumeSize {
		return invalidField("resume", fmt.Sprintf("resume file size must be less than %d bytes", s.maxResumeSize))
	}
	if _, err := s.pdfInspector.Inspect(resume.Data); err != nil {
		return invalidField("resume", "file is not a readable PDF")
	}
	return nil
}

// validateSubmission checks required fields, formats and numeric bounds,
// returning the normalized candidate profile.
func validateSubmission(input *SubmitApplicationInput) (*CandidateProfile, error) {
	if strings.TrimSpace(input.JobRef) == "" {
		return nil, invalidField("jobId", "job reference is required")
	}

	name := strings.TrimSpace(input.ApplicantName)
	if name == "" {
		return nil, invalidField("applicantName", "applicant name is required")
	}

	email := strings.ToLower(strings.TrimSpace(input.ApplicantEmail))
	if email == "" {
		return nil, invalidField("applicantEmail", "applicant email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, invalidField("applicantEmail", "invalid email address")
	}

	phone := strings.TrimSpace(input.Phone)
	if phone == "" {
		return nil, invalidField("phone", "phone number is required")
	}
	if !phonePattern.MatchString(phone) || !strings.ContainsAny(phone, "0123456789") {
		return nil, invalidField("phone", "invalid phone number")
	}

	if strings.TrimSpace(input.SalaryExpectation) == "" {
		return nil, invalidField("salaryExpectation", "salary expectation is required")
	}
	// ParseFloat accepts "NaN" and "Inf"; neither is a salary.
	salary, err := strconv.ParseFloat(strings.TrimSpace(input.SalaryExpectation), 64)
	if err != nil || math.IsNaN(salary) || math.IsInf(salary, 0) || salary < 0 {
		return nil, invalidField("salaryExpectation", "salary expectation must be a non-negative number")
	}

	if strings.TrimSpace(input.ExperienceYears) == "" {
		return nil, invalidField("experienceYears", "experience years is required")
	}
	experience, err := strconv.Atoi(strings.TrimSpace(input.ExperienceYears))
	if err != nil || experience < 0 || experience > 50 {
		return nil, invalidField("experienceYears", "experience years must be between 0 and 50")
	}

	if strings.TrimSpace(input.NoticePeriod) == "" {
		return nil, invalidField("noticePeriod", "notice period is required")
	}
	notice, err := strconv.Atoi(strings.TrimSpace(input.NoticePeriod))
	if err != nil || notice < 0 || notice > 365 {
		return nil, invalidField("noticePeriod", "notice period must be between 0 and 365 days")
	}

	return &CandidateProfile{
		Name:              name,
		Email:             email,
		Phone:             phone,
		LinkedIn:          strings.TrimSpace(input.LinkedIn),
		GitHub:            strings.TrimSpace(input.GitHub),
		Portfolio:         strings.TrimSpace(input.Portfolio),
		SalaryExpectation: salary,
		ExperienceYears:   experience,
		NoticePeriod:      notice,
	}, nil
}

// resolveJob accepts either the database id or the short human-facing id.
// The uuid shape is tried first; everything else falls through to the
// short-id lookup.
func resolveJob(ctx context.Context, repo repositories.JobRepository, ref string) (*models.JobPosting, error) {
	ref = strings.TrimSpace(ref)

	if id, parseErr := uuid.Parse(ref); parseErr == nil {
		job, err := repo.FindByID(ctx, id)
		if err == nil {
			return job, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: job lookup: %v", ErrDependency, err)
		}
	}

	job, err := repo.FindByShortID(ctx, ref)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: job %s", ErrNotFound, ref)
		}
		return nil, fmt.Errorf("%w: job lookup: %v", ErrDependency, err)
	}
	return job, nil
}
