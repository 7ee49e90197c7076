package handler

import (
	"github.com/fadilmartias/ai-interviewer/internal/config"
	"github.com/fadilmartias/ai-interviewer/internal/dto"
	"github.com/fadilmartias/ai-interviewer/internal/middleware"
	"github.com/fadilmartias/ai-interviewer/internal/usecase"
	"github.com/fadilmartias/ai-interviewer/internal/util"
	"github.com/gofiber/fiber/v2"
)

// AIHandler exposes the single provider steps of a turn on their own.
type AIHandler struct {
	uc        *usecase.InterviewUsecase
	uploadDir string
}

func NewAIHandler(uc *usecase.InterviewUsecase, uploadDir string) *AIHandler {
	return &AIHandler{uc: uc, uploadDir: uploadDir}
}

func (h *AIHandler) RegisterRoutes(r fiber.Router) {
	limits := config.LoadRateLimitConfig()
	limit := middleware.RateLimiter("ai", limits.TurnMax, limits.Window)
	r.Post("/transcribe", limit, h.Transcribe)
	r.Post("/chat", limit, h.Chat)
}

func (h *AIHandler) Transcribe(c *fiber.Ctx) error {
	upload, err := receiveUpload(c, h.uploadDir, audioUpload)
	if err != nil {
		return util.AppErrorResponse(c, "Transcription failed", err)
	}
	defer upload.Release()

	text, err := h.uc.Transcribe(c.UserContext(), upload.Path)
	if err != nil {
		return util.AppErrorResponse(c, "Transcription failed", err)
	}
	return c.JSON(fiber.Map{"success": true, "transcription": text})
}

func (h *AIHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Error:   "Invalid request body",
			Message: "Please provide a message",
		}, err)
	}

	reply, err := h.uc.Chat(c.UserContext(), req)
	if err != nil {
		return util.AppErrorResponse(c, "Chat completion failed", err)
	}
	return c.JSON(fiber.Map{"success": true, "response": reply})
}
