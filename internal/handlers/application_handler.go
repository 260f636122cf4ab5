package handlers

import (
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/bidyut10/corporate-ai/internal/models"
	"github.com/bidyut10/corporate-ai/internal/repositories"
	"github.com/bidyut10/corporate-ai/internal/services"
)

type ApplicationHandler struct {
	submissions services.SubmissionService
	reviews     services.ReviewService
}

func NewApplicationHandler(
	submissions services.SubmissionService,
	reviews services.ReviewService,
) *ApplicationHandler {
	return &ApplicationHandler{
		submissions: submissions,
		reviews:     reviews,
	}
}

// HandleSubmit handles POST /applications: the multipart apply flow.
func (h *ApplicationHandler) HandleSubmit(c *fiber.Ctx) error {
	input := services.SubmitApplicationInput{
		JobRef:            c.FormValue("jobId"),
		ApplicantName:     c.FormValue("applicantName"),
		ApplicantEmail:    c.FormValue("applicantEmail"),
		Phone:             c.FormValue("phone"),
		LinkedIn:          c.FormValue("linkedin"),
		GitHub:            c.FormValue("github"),
		Portfolio:         c.FormValue("portfolio"),
		SalaryExpectation: c.FormValue("salaryExpectation"),
		ExperienceYears:   c.FormValue("experienceYears"),
		NoticePeriod:      c.FormValue("noticePeriod"),
		Source:            c.FormValue("applicationSource"),
	}

	if fileHeader, err := c.FormFile("resume"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "failed to read resume file",
			})
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "failed to read resume file",
			})
		}

		input.Resume = &services.ResumeFile{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
			Data:        data,
		}
	}

	app, summary, err := h.submissions.Submit(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SubmitApplicationResponse{
		Application: app,
		Message:     "Application submitted successfully",
		Analysis:    summary,
	})
}

// HandleListByJob handles GET /jobs/:jobId/applications with filtering,
// sorting and pagination.
func (h *ApplicationHandler) HandleListByJob(c *fiber.Ctx) error {
	filter := repositories.ApplicationFilter{
		Status:    models.ApplicationStatus(c.Query("status")),
		SortBy:    c.Query("sortBy", "appliedAt"),
		SortOrder: c.Query("sortOrder", "desc"),
		Page:      c.QueryInt("page", 1),
		Limit:     c.QueryInt("limit", 10),
	}

	if v := c.Query("minScore"); v != "" {
		if score, err := strconv.Atoi(v); err == nil {
			filter.MinScore = &score
		}
	}
	if v := c.Query("maxScore"); v != "" {
		if score, err := strconv.Atoi(v); err == nil {
			filter.MaxScore = &score
		}
	}

	result, err := h.reviews.ListByJob(c.Context(), c.Params("jobId"), filter)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}

// HandleGet handles GET /applications/:id.
func (h *ApplicationHandler) HandleGet(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	app, err := h.reviews.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": app})
}

// HandleUpdateStatus handles PATCH /applications/:id/status.
func (h *ApplicationHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	var req models.UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	app, err := h.reviews.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data":    app,
		"message": "Application status updated successfully",
	})
}

// HandleAddNote handles POST /applications/:id/notes.
func (h *ApplicationHandler) HandleAddNote(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	var req models.AddNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	app, err := h.reviews.AddNote(c.Context(), id, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": app})
}

// HandleAddInterview handles POST /applications/:id/interviews.
func (h *ApplicationHandler) HandleAddInterview(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	var req models.AddInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	app, err := h.reviews.AddInterview(c.Context(), id, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": app})
}

// HandleDelete handles DELETE /applications/:id. Resume cleanup is
// attempted inside the service before the record goes away.
func (h *ApplicationHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	if err := h.reviews.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Application deleted successfully"})
}

// HandleFindSimilar handles GET /applications/:id/similar.
func (h *ApplicationHandler) HandleFindSimilar(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	results, err := h.reviews.FindSimilar(c.Context(), id, c.QueryInt("limit", 5))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": results})
}
