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

type TeamHandler struct {
	uc usecase.TeamUsecase
}

type teamRequest struct {
	Name             string      `json:"name"`
	Description      string      `json:"description"`
	RequiredSkillIDs []uuid.UUID `json:"required_skill_ids"`
}

func NewTeamHandler(uc usecase.TeamUsecase) *TeamHandler {
	return &TeamHandler{uc: uc}
}

func (h *TeamHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/teams")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:team_id", h.Get)
	grp.Put("/:team_id", h.Update)
	grp.Delete("/:team_id", h.Delete)
}

func (h *TeamHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListTeams(c.Context())
	if err != nil {
		return mapTeamUsecaseError(err)
	}

	res := make([]dto.TeamResponse, 0, len(items))
	for _, t := range items {
		res = append(res, toTeamResponse(t))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *TeamHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("team_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid team id", nil, err)
	}

	t, err := h.uc.GetTeam(c.Context(), id)
	if err != nil {
		return mapTeamUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toTeamResponse(t))
}

func (h *TeamHandler) Create(c fiber.Ctx) error {
	var req teamRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	t, err := h.uc.CreateTeam(c.Context(), usecase.TeamInput{
		Name:             req.Name,
		Description:      req.Description,
		RequiredSkillIDs: req.RequiredSkillIDs,
	})
	if err != nil {
		return mapTeamUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, toTeamResponse(t))
}

func (h *TeamHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("team_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid team id", nil, err)
	}

	var req teamRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	t, err := h.uc.UpdateTeam(c.Context(), id, usecase.TeamInput{
		Name:             req.Name,
		Description:      req.Description,
		RequiredSkillIDs: req.RequiredSkillIDs,
	})
	if err != nil {
		return mapTeamUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toTeamResponse(t))
}

func (h *TeamHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("team_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid team id", nil, err)
	}

	if err := h.uc.DeleteTeam(c.Context(), id); err != nil {
		return mapTeamUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func toTeamResponse(t usecase.TeamDetail) dto.TeamResponse {
	res := dto.TeamResponse{
		ID:             t.ID,
		Name:           t.Name,
		Description:    t.Description,
		RequiredSkills: make([]dto.SkillResponse, 0, len(t.RequiredSkills)),
		Members:        make([]dto.TeamMemberResponse, 0, len(t.Members)),
	}
	for _, s := range t.RequiredSkills {
		res.RequiredSkills = append(res.RequiredSkills, dto.SkillResponse{ID: s.ID, Name: s.Name})
	}
	for _, m := range t.Members {
		res.Members = append(res.Members, dto.TeamMemberResponse{
			UserID:      m.UserID,
			Username:    m.Username,
			DisplayName: m.DisplayName,
			Role:        m.Role,
			IsActive:    m.IsActive,
		})
	}
	return res
}

func mapTeamUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrTeamNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Team not found", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
