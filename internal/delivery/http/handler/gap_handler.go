package handler

import (
	"errors"

	"skillmatch/internal/delivery/http/dto"
	"skillmatch/internal/delivery/http/middleware"
	"skillmatch/internal/pkg/response"
	"skillmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type GapHandler struct {
	uc usecase.GapUsecase
}

type gapRequest struct {
	UserID uuid.UUID `json:"user_id"`
	TeamID uuid.UUID `json:"team_id"`
}

func NewGapHandler(uc usecase.GapUsecase) *GapHandler {
	return &GapHandler{uc: uc}
}

func (h *GapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/skill-gap", h.Analyze)
}

func (h *GapHandler) Analyze(c fiber.Ctx) error {
	var req gapRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.UserID == uuid.Nil || req.TeamID == uuid.Nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "user_id and team_id are required", nil, nil)
	}

	analysis, err := h.uc.AnalyzeGap(c.Context(), req.UserID, req.TeamID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		case errors.Is(err, usecase.ErrTeamNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Team not found", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	res := dto.GapAnalysisResponse{
		User:          analysis.User,
		Team:          analysis.Team,
		MatchedSkills: analysis.MatchedSkills,
		MissingSkills: analysis.MissingSkills,
		Summary:       analysis.Summary,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
