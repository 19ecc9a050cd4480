package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"skillmatch/internal/domain/matching"
	"skillmatch/internal/repository"

	"github.com/google/uuid"
)

type UserSkillItem struct {
	SkillName       string
	Level           string
	ExperienceYears int
	IsActive        bool
}

type UserProfile struct {
	ID          uuid.UUID
	Username    string
	Email       string
	DisplayName string
	Skills      []UserSkillItem
}

// SetSkillInput mirrors one entry of the set-skills payload. Zero
// values fall back to the documented defaults: level beginner,
// zero years, active.
type SetSkillInput struct {
	Name            string
	Level           string
	ExperienceYears int
	IsActive        *bool
}

type UserUsecase interface {
	ListUsers(ctx context.Context) ([]UserProfile, error)
	GetUser(ctx context.Context, userID uuid.UUID) (UserProfile, error)
	SetSkills(ctx context.Context, userID uuid.UUID, skills []SetSkillInput) error
}

type Users struct {
	users      repository.UserRepository
	userSkills repository.UserSkillRepository
	cache      MatchCache
	logger     *log.Logger
}

func NewUserUsecase(users repository.UserRepository, userSkills repository.UserSkillRepository, cache MatchCache, logger *log.Logger) *Users {
	if logger == nil {
		logger = log.Default()
	}
	return &Users{users: users, userSkills: userSkills, cache: cache, logger: logger}
}

func (u *Users) ListUsers(ctx context.Context) ([]UserProfile, error) {
	usrs, err := u.users.ListUsers(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	ids := make([]uuid.UUID, 0, len(usrs))
	for _, usr := range usrs {
		ids = append(ids, usr.ID)
	}
	profiles, err := u.userSkills.FindByUserIDs(ctx, ids)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]UserProfile, 0, len(usrs))
	for _, usr := range usrs {
		out = append(out, buildProfile(usr, profiles[usr.ID]))
	}
	return out, nil
}

func (u *Users) GetUser(ctx context.Context, userID uuid.UUID) (UserProfile, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserProfile{}, ErrUserNotFound
		}
		return UserProfile{}, ErrInternal
	}

	skills, err := u.userSkills.FindByUserID(ctx, userID)
	if err != nil {
		return UserProfile{}, ErrInternal
	}

	return buildProfile(usr, skills), nil
}

// SetSkills replaces the user's whole profile. Entries with a blank
// name are skipped, matching the lenient original payload handling.
func (u *Users) SetSkills(ctx context.Context, userID uuid.UUID, skills []SetSkillInput) error {
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return ErrInternal
	}

	entries := make([]repository.SkillAssignment, 0, len(skills))
	for _, in := range skills {
		name := strings.ToLower(strings.TrimSpace(in.Name))
		if name == "" {
			continue
		}

		level := strings.ToLower(strings.TrimSpace(in.Level))
		if level == "" {
			level = matching.LevelBeginner
		}

		years := in.ExperienceYears
		if years < 0 {
			years = 0
		}

		active := true
		if in.IsActive != nil {
			active = *in.IsActive
		}

		entries = append(entries, repository.SkillAssignment{
			Name:            name,
			Level:           level,
			ExperienceYears: years,
			IsActive:        active,
		})
	}

	if err := u.userSkills.ReplaceForUser(ctx, userID, entries); err != nil {
		return ErrInternal
	}

	// Cached rankings are stale the moment any profile changes.
	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, MatchCachePattern); err != nil {
			u.logger.Printf("match cache invalidation failed | user_id=%s err=%v", userID, err)
		}
	}

	return nil
}

func buildProfile(usr repository.User, skills []repository.UserSkill) UserProfile {
	p := UserProfile{
		ID:          usr.ID,
		Username:    usr.Username,
		Email:       usr.Email,
		DisplayName: usr.DisplayName,
		Skills:      make([]UserSkillItem, 0, len(skills)),
	}
	for _, s := range skills {
		p.Skills = append(p.Skills, UserSkillItem{
			SkillName:       s.SkillName,
			Level:           s.Level,
			ExperienceYears: s.ExperienceYears,
			IsActive:        s.IsActive,
		})
	}
	return p
}
