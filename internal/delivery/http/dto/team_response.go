package dto

import "github.com/google/uuid"

type TeamMemberResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
}

type TeamResponse struct {
	ID             uuid.UUID            `json:"id"`
	Name           string               `json:"name"`
	Description    string               `json:"description"`
	RequiredSkills []SkillResponse      `json:"required_skills"`
	Members        []TeamMemberResponse `json:"members"`
}
