package usecase

import (
	"context"
	"errors"
	"log"

	"skillmatch/internal/domain/matching"
	"skillmatch/internal/repository"

	"github.com/google/uuid"
)

var ErrNoSkillsRequested = errors.New("must supply at least one skill name")

type MatchedSkillItem struct {
	Skill string `json:"skill"`
	Level string `json:"level"`
	Score int    `json:"score"`
}

type MatchResultItem struct {
	UserID         uuid.UUID          `json:"user_id"`
	Username       string             `json:"username"`
	Email          string             `json:"email"`
	DisplayName    string             `json:"display_name"`
	Skills         []UserSkillItem    `json:"skills"`
	MatchScore     int                `json:"match_score"`
	SkillsMatched  []MatchedSkillItem `json:"skills_matched"`
	ReadinessScore string             `json:"readiness_score"`
}

type MatchUsecase interface {
	MatchBySkillNames(ctx context.Context, requested []string) ([]MatchResultItem, error)
}

type Match struct {
	skills     repository.SkillRepository
	userSkills repository.UserSkillRepository
	users      repository.UserRepository
	cache      MatchCache
	logger     *log.Logger
}

func NewMatchUsecase(
	skills repository.SkillRepository,
	userSkills repository.UserSkillRepository,
	users repository.UserRepository,
	cache MatchCache,
	logger *log.Logger,
) *Match {
	if logger == nil {
		logger = log.Default()
	}
	return &Match{skills: skills, userSkills: userSkills, users: users, cache: cache, logger: logger}
}

// MatchBySkillNames ranks every registered user against the requested
// skill set. Requested names that resolve to no known skill contribute
// nothing to any score but still count toward readiness denominators.
func (u *Match) MatchBySkillNames(ctx context.Context, requested []string) ([]MatchResultItem, error) {
	normalized := matching.NormalizeSkillNames(requested)
	if len(normalized) == 0 {
		return nil, ErrNoSkillsRequested
	}

	key := MatchCacheKey(normalized)
	if u.cache != nil {
		var cached []MatchResultItem
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	resolved, err := u.skills.FindByNames(ctx, normalized)
	if err != nil {
		return nil, ErrInternal
	}
	skillIDs := make([]uuid.UUID, 0, len(resolved))
	for _, s := range resolved {
		skillIDs = append(skillIDs, s.ID)
	}

	holders, err := u.userSkills.FindHoldersBySkillIDs(ctx, skillIDs)
	if err != nil {
		return nil, ErrInternal
	}

	held := make([]matching.HeldSkill, 0, len(holders))
	for _, h := range holders {
		held = append(held, matching.HeldSkill{
			UserID:    h.UserID,
			Username:  h.Username,
			SkillName: h.SkillName,
			Level:     h.Level,
		})
	}

	ranked, err := matching.Rank(normalized, held)
	if err != nil {
		return nil, err
	}

	out, err := u.assemble(ctx, ranked)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, out, 0); err != nil {
			u.logger.Printf("match cache write failed | key=%s err=%v", key, err)
		}
	}

	return out, nil
}

// assemble attaches each ranked user's identity and full skill profile,
// which the match response carries independently of the matched subset.
func (u *Match) assemble(ctx context.Context, ranked []matching.UserMatch) ([]MatchResultItem, error) {
	userIDs := make([]uuid.UUID, 0, len(ranked))
	for _, m := range ranked {
		userIDs = append(userIDs, m.UserID)
	}

	users, err := u.users.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, ErrInternal
	}
	profiles, err := u.userSkills.FindByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]MatchResultItem, 0, len(ranked))
	for _, m := range ranked {
		usr := users[m.UserID]

		item := MatchResultItem{
			UserID:         m.UserID,
			Username:       usr.Username,
			Email:          usr.Email,
			DisplayName:    usr.DisplayName,
			MatchScore:     m.MatchScore,
			SkillsMatched:  make([]MatchedSkillItem, 0, len(m.SkillsMatched)),
			ReadinessScore: m.ReadinessScore,
			Skills:         make([]UserSkillItem, 0),
		}
		for _, ms := range m.SkillsMatched {
			item.SkillsMatched = append(item.SkillsMatched, MatchedSkillItem{
				Skill: ms.Skill,
				Level: ms.Level,
				Score: ms.Score,
			})
		}
		for _, s := range profiles[m.UserID] {
			item.Skills = append(item.Skills, UserSkillItem{
				SkillName:       s.SkillName,
				Level:           s.Level,
				ExperienceYears: s.ExperienceYears,
				IsActive:        s.IsActive,
			})
		}
		out = append(out, item)
	}
	return out, nil
}
