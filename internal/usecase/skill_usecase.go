package usecase

import (
	"context"
	"errors"
	"strings"

	"skillmatch/internal/repository"

	"github.com/google/uuid"
)

var ErrSkillAlreadyExists = errors.New("skill already exists")

type SkillItem struct {
	ID   uuid.UUID
	Name string
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]SkillItem, error)
	AddSkill(ctx context.Context, name string) (SkillItem, error)
	RenameSkill(ctx context.Context, id uuid.UUID, name string) (SkillItem, error)
	RemoveSkill(ctx context.Context, id uuid.UUID) error
}

type Skills struct {
	repo repository.SkillRepository
}

func NewSkillUsecase(repo repository.SkillRepository) *Skills {
	return &Skills{repo: repo}
}

func (u *Skills) ListSkills(ctx context.Context) ([]SkillItem, error) {
	items, err := u.repo.GetAllSkills(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]SkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, SkillItem{ID: it.ID, Name: it.Name})
	}
	return out, nil
}

func (u *Skills) AddSkill(ctx context.Context, name string) (SkillItem, error) {
	name = normalizeSkillName(name)
	if name == "" {
		return SkillItem{}, ErrInvalidInput
	}

	created, err := u.repo.CreateSkill(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrSkillAlreadyExists) {
			return SkillItem{}, ErrSkillAlreadyExists
		}
		return SkillItem{}, ErrInternal
	}
	return SkillItem{ID: created.ID, Name: created.Name}, nil
}

func (u *Skills) RenameSkill(ctx context.Context, id uuid.UUID, name string) (SkillItem, error) {
	name = normalizeSkillName(name)
	if name == "" {
		return SkillItem{}, ErrInvalidInput
	}

	updated, err := u.repo.UpdateSkill(ctx, id, name)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return SkillItem{}, ErrSkillNotFound
		}
		return SkillItem{}, ErrInternal
	}
	return SkillItem{ID: updated.ID, Name: updated.Name}, nil
}

func (u *Skills) RemoveSkill(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.DeleteSkill(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return ErrSkillNotFound
		}
		return ErrInternal
	}
	return nil
}

// Skill names are case-insensitive; the registry stores them lowered.
func normalizeSkillName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
