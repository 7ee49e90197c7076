package handler

import (
	"github.com/fadilmartias/ai-interviewer/internal/config"
	"github.com/fadilmartias/ai-interviewer/internal/dto"
	"github.com/fadilmartias/ai-interviewer/internal/middleware"
	"github.com/fadilmartias/ai-interviewer/internal/usecase"
	"github.com/fadilmartias/ai-interviewer/internal/util"
	"github.com/gofiber/fiber/v2"
)

type InterviewHandler struct {
	uc        *usecase.InterviewUsecase
	uploadDir string
}

func NewInterviewHandler(uc *usecase.InterviewUsecase, uploadDir string) *InterviewHandler {
	return &InterviewHandler{uc: uc, uploadDir: uploadDir}
}

func (h *InterviewHandler) RegisterRoutes(r fiber.Router) {
	limits := config.LoadRateLimitConfig()
	r.Post("/process", middleware.RateLimiter("turn", limits.TurnMax, limits.Window), h.Process)
	r.Post("/analyze", h.Analyze)
	r.Get("/all", h.All)
	r.Get("/health", healthCheck("Interview Orchestrator"))
}

func (h *InterviewHandler) Process(c *fiber.Ctx) error {
	upload, err := receiveUpload(c, h.uploadDir, audioUpload)
	if err != nil {
		return util.AppErrorResponse(c, "Interview processing failed", err)
	}
	defer upload.Release()

	result, err := h.uc.ProcessTurn(c.UserContext(), usecase.TurnInput{
		AudioPath:      upload.Path,
		HistoryJSON:    c.FormValue("history"),
		ContextJSON:    c.FormValue("context"),
		JobContextJSON: c.FormValue("jobContext"),
	})
	if err != nil {
		return util.AppErrorResponse(c, "Interview processing failed", err)
	}

	return c.JSON(dto.TurnResponse{
		Success:        true,
		AudioURL:       result.AudioURL,
		UserTranscript: result.UserTranscript,
		AITranscript:   result.AITranscript,
		Filename:       result.Filename,
	})
}

func (h *InterviewHandler) Analyze(c *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Error:   "Invalid request body",
			Message: "Please provide the interview conversation history",
		}, err)
	}

	report, err := h.uc.Analyze(c.UserContext(), req)
	if err != nil {
		return util.AppErrorResponse(c, "Analysis failed", err)
	}

	return c.JSON(dto.AnalyzeResponse{Success: true, Analysis: *report})
}

// All lists interview summaries. Without a page query every record is
// returned.
func (h *InterviewHandler) All(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	pageSize := c.QueryInt("page_size", 0)

	summaries, pagination, err := h.uc.ListInterviews(c.UserContext(), page, pageSize)
	if err != nil {
		return util.AppErrorResponse(c, "Failed to fetch interviews", err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Data:       summaries,
		Pagination: pagination,
	})
}
