package handler

import (
	"errors"

	"skillmatch/internal/delivery/http/dto"
	"skillmatch/internal/delivery/http/middleware"
	"skillmatch/internal/pkg/response"
	"skillmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ExtractHandler struct {
	uc usecase.ExtractUsecase
}

type extractRequest struct {
	Text string `json:"text"`
}

func NewExtractHandler(uc usecase.ExtractUsecase) *ExtractHandler {
	return &ExtractHandler{uc: uc}
}

func (h *ExtractHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/extract-skills", h.Extract)
}

func (h *ExtractHandler) Extract(c fiber.Ctx) error {
	var req extractRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	skills, err := h.uc.ExtractSkills(c.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyText):
			return middleware.NewAppError(fiber.StatusBadRequest, "missing 'text' field", nil, err)
		case errors.Is(err, usecase.ErrGenerationFailed):
			return middleware.NewAppError(fiber.StatusBadGateway, "Skill extraction failed", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ExtractSkillsResponse{Skills: skills})
}
