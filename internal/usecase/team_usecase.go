package usecase

import (
	"context"
	"errors"
	"strings"

	"skillmatch/internal/repository"

	"github.com/google/uuid"
)

type TeamMemberItem struct {
	UserID      uuid.UUID
	Username    string
	DisplayName string
	Role        string
	IsActive    bool
}

type TeamDetail struct {
	ID             uuid.UUID
	Name           string
	Description    string
	RequiredSkills []SkillItem
	Members        []TeamMemberItem
}

type TeamInput struct {
	Name             string
	Description      string
	RequiredSkillIDs []uuid.UUID
}

type TeamUsecase interface {
	ListTeams(ctx context.Context) ([]TeamDetail, error)
	GetTeam(ctx context.Context, id uuid.UUID) (TeamDetail, error)
	CreateTeam(ctx context.Context, in TeamInput) (TeamDetail, error)
	UpdateTeam(ctx context.Context, id uuid.UUID, in TeamInput) (TeamDetail, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
}

type Teams struct {
	teams  repository.TeamRepository
	skills repository.SkillRepository
}

func NewTeamUsecase(teams repository.TeamRepository, skills repository.SkillRepository) *Teams {
	return &Teams{teams: teams, skills: skills}
}

func (u *Teams) ListTeams(ctx context.Context) ([]TeamDetail, error) {
	items, err := u.teams.ListTeams(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]TeamDetail, 0, len(items))
	for _, t := range items {
		detail, err := u.expand(ctx, t)
		if err != nil {
			return nil, err
		}
		out = append(out, detail)
	}
	return out, nil
}

func (u *Teams) GetTeam(ctx context.Context, id uuid.UUID) (TeamDetail, error) {
	t, err := u.teams.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return TeamDetail{}, ErrTeamNotFound
		}
		return TeamDetail{}, ErrInternal
	}
	return u.expand(ctx, t)
}

func (u *Teams) CreateTeam(ctx context.Context, in TeamInput) (TeamDetail, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return TeamDetail{}, ErrInvalidInput
	}

	if err := u.validateSkillIDs(ctx, in.RequiredSkillIDs); err != nil {
		return TeamDetail{}, err
	}

	t, err := u.teams.Create(ctx, name, strings.TrimSpace(in.Description), in.RequiredSkillIDs)
	if err != nil {
		return TeamDetail{}, ErrInternal
	}
	return u.expand(ctx, t)
}

func (u *Teams) UpdateTeam(ctx context.Context, id uuid.UUID, in TeamInput) (TeamDetail, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return TeamDetail{}, ErrInvalidInput
	}

	if err := u.validateSkillIDs(ctx, in.RequiredSkillIDs); err != nil {
		return TeamDetail{}, err
	}

	t, err := u.teams.Update(ctx, id, name, strings.TrimSpace(in.Description), in.RequiredSkillIDs)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return TeamDetail{}, ErrTeamNotFound
		}
		return TeamDetail{}, ErrInternal
	}
	return u.expand(ctx, t)
}

func (u *Teams) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	if err := u.teams.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Teams) validateSkillIDs(ctx context.Context, ids []uuid.UUID) error {
	for _, id := range ids {
		if _, err := u.skills.GetByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrSkillNotFound) {
				return ErrSkillNotFound
			}
			return ErrInternal
		}
	}
	return nil
}

func (u *Teams) expand(ctx context.Context, t repository.Team) (TeamDetail, error) {
	required, err := u.teams.RequiredSkills(ctx, t.ID)
	if err != nil {
		return TeamDetail{}, ErrInternal
	}
	members, err := u.teams.Members(ctx, t.ID)
	if err != nil {
		return TeamDetail{}, ErrInternal
	}

	detail := TeamDetail{
		ID:             t.ID,
		Name:           t.Name,
		Description:    t.Description,
		RequiredSkills: make([]SkillItem, 0, len(required)),
		Members:        make([]TeamMemberItem, 0, len(members)),
	}
	for _, s := range required {
		detail.RequiredSkills = append(detail.RequiredSkills, SkillItem{ID: s.ID, Name: s.Name})
	}
	for _, m := range members {
		detail.Members = append(detail.Members, TeamMemberItem{
			UserID:      m.UserID,
			Username:    m.Username,
			DisplayName: m.DisplayName,
			Role:        m.Role,
			IsActive:    m.IsActive,
		})
	}
	return detail, nil
}
