package handler

import (
	"errors"
	"strings"

	"skillmatch/internal/delivery/http/middleware"
	"skillmatch/internal/pkg/response"
	"skillmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/match", h.Match)
}

// Match handles GET /match?skills=a,b,c.
func (h *MatchHandler) Match(c fiber.Ctx) error {
	requested := strings.Split(c.Query("skills"), ",")

	results, err := h.uc.MatchBySkillNames(c.Context(), requested)
	if err != nil {
		if errors.Is(err, usecase.ErrNoSkillsRequested) {
			return middleware.NewAppError(fiber.StatusBadRequest, "must supply at least one skill name", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, results)
}
