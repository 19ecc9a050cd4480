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

type UserHandler struct {
	uc usecase.UserUsecase
}

type setSkillsRequest struct {
	Skills []setSkillEntry `json:"skills"`
}

type setSkillEntry struct {
	Name            string `json:"name"`
	Level           string `json:"level"`
	ExperienceYears int    `json:"experience_years"`
	IsActive        *bool  `json:"is_active"`
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/users")
	grp.Get("/", h.List)
	grp.Get("/:user_id", h.Get)
	grp.Post("/:user_id/set-skills", h.SetSkills)
}

func (h *UserHandler) List(c fiber.Ctx) error {
	profiles, err := h.uc.ListUsers(c.Context())
	if err != nil {
		return mapUserUsecaseError(err)
	}

	res := make([]dto.UserProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		res = append(res, toUserProfileResponse(p))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *UserHandler) Get(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	profile, err := h.uc.GetUser(c.Context(), userID)
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toUserProfileResponse(profile))
}

func (h *UserHandler) SetSkills(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	var req setSkillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	skills := make([]usecase.SetSkillInput, 0, len(req.Skills))
	for _, s := range req.Skills {
		skills = append(skills, usecase.SetSkillInput{
			Name:            s.Name,
			Level:           s.Level,
			ExperienceYears: s.ExperienceYears,
			IsActive:        s.IsActive,
		})
	}

	if err := h.uc.SetSkills(c.Context(), userID, skills); err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Skills updated successfully", nil)
}

func toUserProfileResponse(p usecase.UserProfile) dto.UserProfileResponse {
	res := dto.UserProfileResponse{
		ID:          p.ID,
		Username:    p.Username,
		Email:       p.Email,
		DisplayName: p.DisplayName,
		Skills:      make([]dto.UserSkillResponse, 0, len(p.Skills)),
	}
	for _, s := range p.Skills {
		res.Skills = append(res.Skills, dto.UserSkillResponse{
			SkillName:       s.SkillName,
			Level:           s.Level,
			ExperienceYears: s.ExperienceYears,
			IsActive:        s.IsActive,
		})
	}
	return res
}

func mapUserUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
