package handler

import (
	"time"
	"unicode/utf8"

	"github.com/fadilmartias/ai-interviewer/internal/dto"
	"github.com/fadilmartias/ai-interviewer/internal/usecase"
	"github.com/fadilmartias/ai-interviewer/internal/util"
	"github.com/gofiber/fiber/v2"
)

type VoiceHandler struct {
	uc *usecase.VoiceUsecase
}

func NewVoiceHandler(uc *usecase.VoiceUsecase) *VoiceHandler {
	return &VoiceHandler{uc: uc}
}

func (h *VoiceHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/generate", h.Generate)
	r.Post("/generate-custom", h.GenerateCustom)
	r.Get("/test", h.Test)
	r.Get("/health", healthCheck("Voice Service"))
}

func (h *VoiceHandler) Generate(c *fiber.Ctx) error {
	text, ok := speechText(c)
	if !ok {
		return badSpeechRequest(c)
	}

	result, err := h.uc.Generate(c.UserContext(), text)
	if err != nil {
		return util.AppErrorResponse(c, "Speech generation failed", err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Speech generated successfully",
		Data:    dto.SpeechDTO{Filename: result.Filename, AudioURL: result.AudioURL},
	})
}

func (h *VoiceHandler) GenerateCustom(c *fiber.Ctx) error {
	text, ok := speechText(c)
	if !ok {
		return badSpeechRequest(c)
	}

	result, err := h.uc.Generate(c.UserContext(), text)
	if err != nil {
		return util.AppErrorResponse(c, "Speech generation failed", err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Speech generated successfully",
		Data: dto.CustomSpeechDTO{
			Filename:    result.Filename,
			AudioURL:    result.AudioURL,
			TextLength:  utf8.RuneCountInString(text),
			GeneratedAt: time.Now().UTC(),
		},
	})
}

func (h *VoiceHandler) Test(c *fiber.Ctx) error {
	result, err := h.uc.Generate(c.UserContext(), usecase.SampleSpeechText)
	if err != nil {
		return util.AppErrorResponse(c, "Test failed", err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Test speech generated successfully",
		Data:    dto.SpeechDTO{Filename: result.Filename, AudioURL: result.AudioURL},
		Meta:    fiber.Map{"sampleText": usecase.SampleSpeechText},
	})
}

func speechText(c *fiber.Ctx) (string, bool) {
	var req dto.GenerateSpeechRequest
	if err := c.BodyParser(&req); err != nil || req.Text == "" {
		return "", false
	}
	return req.Text, true
}

func badSpeechRequest(c *fiber.Ctx) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusBadRequest,
		Error:   "Text is required",
		Message: "Please provide text in the request body",
	})
}
