package handler

import (
	"github.com/fadilmartias/ai-interviewer/internal/config"
	"github.com/fadilmartias/ai-interviewer/internal/middleware"
	"github.com/fadilmartias/ai-interviewer/internal/usecase"
	"github.com/fadilmartias/ai-interviewer/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ResumeHandler struct {
	uc        *usecase.ResumeUsecase
	uploadDir string
}

func NewResumeHandler(uc *usecase.ResumeUsecase, uploadDir string) *ResumeHandler {
	return &ResumeHandler{uc: uc, uploadDir: uploadDir}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	limits := config.LoadRateLimitConfig()
	r.Post("/parse", middleware.RateLimiter("resume", limits.ResumeMax, limits.Window), h.Parse)
	r.Get("/health", healthCheck("Resume Parser"))
}

func (h *ResumeHandler) Parse(c *fiber.Ctx) error {
	upload, err := receiveUpload(c, h.uploadDir, resumeUpload)
	if err != nil {
		return util.AppErrorResponse(c, "Failed to parse resume", err)
	}
	defer upload.Release()

	resume, err := h.uc.Parse(c.UserContext(), upload.Path)
	if err != nil {
		return util.AppErrorResponse(c, "Failed to parse resume", err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Data: resume,
	})
}
