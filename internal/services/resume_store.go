package services

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// ResumeUpload is the durable location of a stored resume plus the handle
// needed to delete it later.
type ResumeUpload struct {
	URL      string
	PublicID string
}

type ResumeStore interface {
	Upload(ctx context.Context, data []byte, publicID string) (*ResumeUpload, error)
	// Destroy is best-effort: callers log failures and move on.
	Destroy(ctx context.Context, publicID string) error
}

type cloudinaryResumeStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryResumeStore(cloudName, apiKey, apiSecret, folder string) (ResumeStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}

	return &cloudinaryResumeStore{
		cld:    cld,
		folder: folder,
	}, nil
}

func (s *cloudinaryResumeStore) Upload(ctx context.Context, data []byte, publicID string) (*ResumeUpload, error) {
	result, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:       s.folder,
		PublicID:     publicID,
		ResourceType: "raw",
		Format:       "pdf",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload resume: %w", err)
	}
	if result.SecureURL == "" {
		return nil, fmt.Errorf("failed to upload resume: %s", result.Error.Message)
	}

	return &ResumeUpload{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
	}, nil
}

func (s *cloudinaryResumeStore) Destroy(ctx context.Context, publicID string) error {
	result, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "raw",
	})
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.Result != "ok" && result.Result != "not found" {
		return fmt.Errorf("failed to delete resume: %s", result.Result)
	}
	return nil
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// ResumePublicID builds a collision-resistant storage key from the
// applicant's name, the submission time and a random suffix.
func ResumePublicID(applicantName string) string {
	name := nonAlphanumeric.ReplaceAllString(strings.TrimSpace(applicantName), "_")
	name = strings.Trim(name, "_")
	if name == "" {
		name = "resume"
	}
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
	return fmt.Sprintf("%s_%d_%s", name, time.Now().UnixMilli(), suffix)
}
