package handler

import (
	"github.com/fadilmartias/ai-interviewer/internal/apperror"
	"github.com/fadilmartias/ai-interviewer/internal/dto"
	"github.com/fadilmartias/ai-interviewer/internal/usecase"
	"github.com/fadilmartias/ai-interviewer/internal/util"
	"github.com/gofiber/fiber/v2"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/create", h.Create)
	r.Get("/check/health", healthCheck("Jobs Service"))
	r.Get("/:id", h.Get)
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Error:   "Invalid request body",
			Message: "Request body must be valid JSON",
		}, err)
	}

	job, err := h.uc.Create(c.UserContext(), req)
	if err != nil {
		return util.AppErrorResponse(c, "Job creation failed", err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code: fiber.StatusCreated,
		Data: dto.CreatedJobDTO{
			ID:         job.ID,
			RoleTitle:  job.RoleTitle,
			Difficulty: job.Difficulty,
			Duration:   job.Duration,
			CreatedAt:  job.CreatedAt,
		},
	})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	job, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		title := "Failed to retrieve job"
		if apperror.HasCode(err, apperror.CodeNotFound) {
			title = "Job not found"
		}
		return util.AppErrorResponse(c, title, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Data: dto.JobDTO{
			ID:             job.ID,
			RoleTitle:      job.RoleTitle,
			JobDescription: job.JobDescription,
			Difficulty:     job.Difficulty,
			Duration:       job.Duration,
			CreatedAt:      job.CreatedAt,
		},
	})
}
