package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"github.com/bidyut10/corporate-ai/internal/models"
)

// CandidateSearchService maintains a vector index of analyzed applications
// so HR can surface similar candidates for a posting. It is an optional
// collaborator: indexing failures are logged by callers and never affect
// submissions.
type CandidateSearchService interface {
	InitCollection() error
	IndexApplication(ctx context.Context, app *models.Application, analysis *ResumeAnalysis) error
	RemoveApplication(ctx context.Context, appID uuid.UUID) error
	FindSimilar(ctx context.Context, app *models.Application, limit int) ([]models.SimilarCandidate, error)
}

type candidateSearchService struct {
	client         *qdrant.Client
	gemini         GeminiService
	collectionName string
	vectorSize     uint64
}

func NewCandidateSearchService(urlStr, apiKey, collectionName string, gemini GeminiService) (CandidateSearchService, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port unless the URL says otherwise.
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &candidateSearchService{
		client:         client,
		gemini:         gemini,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 dimension
	}, nil
}

// InitCollection implements CandidateSearchService.
func (s *candidateSearchService) InitCollection() error {
	ctx := context.Background()

	exists, err := s.client.CollectionExists(ctx, s.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}
	if exists {
		return nil
	}

	err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: s.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     s.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", s.collectionName)
	return nil
}

// IndexApplication implements CandidateSearchService.
func (s *candidateSearchService) IndexApplication(ctx context.Context, app *models.Application, analysis *ResumeAnalysis) error {
	summary := analysis.SummaryText()
	if strings.TrimSpace(summary) == "" {
		return nil
	}

	embedding, err := s.gemini.GenerateEmbedding(ctx, summary)
	if err != nil {
		return fmt.Errorf("failed to embed analysis summary: %w", err)
	}

	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(app.ID.String()),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"application_id": app.ID.String(),
			"job_id":         app.JobID.String(),
			"applicant_name": app.ApplicantName,
			"summary":        summary,
		}),
	}

	_, err = s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	return nil
}

// RemoveApplication implements CandidateSearchService.
func (s *candidateSearchService) RemoveApplication(ctx context.Context, appID uuid.UUID) error {
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("application_id", appID.String()),
		},
	}

	_, err := s.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: s.collectionName,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: filter,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete point: %w", err)
	}
	return nil
}

// FindSimilar implements CandidateSearchService. The query vector is
// recomputed from the stored analysis fields; the source application is
// excluded from the hits.
func (s *candidateSearchService) FindSimilar(ctx context.Context, app *models.Application, limit int) ([]models.SimilarCandidate, error) {
	summary := applicationSummaryText(app)
	if strings.TrimSpace(summary) == "" {
		return nil, fmt.Errorf("application has no analysis to compare")
	}

	embedding, err := s.gemini.GenerateEmbedding(ctx, summary)
	if err != nil {
		return nil, fmt.Errorf("failed to embed analysis summary: %w", err)
	}

	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("job_id", app.JobID.String()),
		},
		MustNot: []*qdrant.Condition{
			qdrant.NewMatch("application_id", app.ID.String()),
		},
	}

	searchResult, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collectionName,
		Query:          qdrant.NewQuery(embedding...),
		Filter:         filter,
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	var results []models.SimilarCandidate
	for _, point := range searchResult {
		candidate := models.SimilarCandidate{
			Score: point.Score,
		}
		if v, ok := stringPayload(point.Payload, "application_id"); ok {
			candidate.ApplicationID = v
		}
		if v, ok := stringPayload(point.Payload, "applicant_name"); ok {
			candidate.ApplicantName = v
		}
		if v, ok := stringPayload(point.Payload, "summary"); ok {
			candidate.Summary = v
		}
		results = append(results, candidate)
	}

	return results, nil
}

func stringPayload(payload map[string]*qdrant.Value, key string) (string, bool) {
	value, ok := payload[key]
	if !ok {
		return "", false
	}
	if v, ok := value.GetKind().(*qdrant.Value_StringValue); ok {
		return v.StringValue, true
	}
	return "", false
}

// applicationSummaryText mirrors ResumeAnalysis.SummaryText for a
// persisted record.
func applicationSummaryText(app *models.Application) string {
	var b strings.Builder
	b.WriteString(app.AIDetails)
	if len(app.AITechnicalSkills) > 0 {
		b.WriteString("\nSkills: ")
		b.WriteString(strings.Join(app.AITechnicalSkills, ", "))
	}
	if len(app.AIExperienceHighlights) > 0 {
		b.WriteString("\nExperience: ")
		b.WriteString(strings.Join(app.AIExperienceHighlights, "; "))
	}
	return b.String()
}
