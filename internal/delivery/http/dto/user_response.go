package dto

import "github.com/google/uuid"

type UserSkillResponse struct {
	SkillName       string `json:"skill_name"`
	Level           string `json:"level"`
	ExperienceYears int    `json:"experience_years"`
	IsActive        bool   `json:"is_active"`
}

type UserProfileResponse struct {
	ID          uuid.UUID           `json:"id"`
	Username    string              `json:"username"`
	Email       string              `json:"email"`
	DisplayName string              `json:"display_name"`
	Skills      []UserSkillResponse `json:"skills"`
}
