package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/bidyut10/corporate-ai/internal/models"
	"github.com/bidyut10/corporate-ai/internal/services"
)

type JobHandler struct {
	jobs services.JobService
}

func NewJobHandler(jobs services.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// HandleCreate handles POST /jobs.
func (h *JobHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	// created_by is optional until an auth layer fronts this API.
	createdBy, _ := uuid.Parse(req.CreatedBy)

	job, err := h.jobs.Create(c.Context(), req, createdBy)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    job,
		"message": "Job created successfully",
	})
}

// HandleGet handles GET /jobs/:jobId. The reference can be the UUID or
// the short public ID.
func (h *JobHandler) HandleGet(c *fiber.Ctx) error {
	job, err := h.jobs.Get(c.Context(), c.Params("jobId"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": job})
}

// HandleList handles GET /jobs and returns active postings only.
func (h *JobHandler) HandleList(c *fiber.Ctx) error {
	jobs, err := h.jobs.ListActive(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": jobs})
}

// HandleUpdateStatus handles PATCH /jobs/:jobId/status.
func (h *JobHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	var req models.UpdateJobStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	job, err := h.jobs.UpdateStatus(c.Context(), c.Params("jobId"), req.Status)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data":    job,
		"message": "Job status updated successfully",
	})
}
