package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"skillmatch/internal/domain/matching"
	"skillmatch/internal/infrastructure/gemini"
	"skillmatch/internal/repository"

	"github.com/google/uuid"
)

// gapSummaryFailedPrefix marks a degraded summary so clients can tell
// a real narrative from the fallback.
const gapSummaryFailedPrefix = "Gemini AI summary failed: "

type GapAnalysis struct {
	User          string
	Team          string
	MatchedSkills []string
	MissingSkills []string
	Summary       string
}

type GapUsecase interface {
	AnalyzeGap(ctx context.Context, userID, teamID uuid.UUID) (GapAnalysis, error)
}

type Gap struct {
	users      repository.UserRepository
	teams      repository.TeamRepository
	userSkills repository.UserSkillRepository
	generator  gemini.Generator
	logger     *log.Logger
}

func NewGapUsecase(
	users repository.UserRepository,
	teams repository.TeamRepository,
	userSkills repository.UserSkillRepository,
	generator gemini.Generator,
	logger *log.Logger,
) *Gap {
	if logger == nil {
		logger = log.Default()
	}
	return &Gap{users: users, teams: teams, userSkills: userSkills, generator: generator, logger: logger}
}

// AnalyzeGap computes matched/missing sets and asks the generator for a
// readiness narrative. Generator failure never fails the request: the
// summary degrades to a marked fallback string instead.
func (u *Gap) AnalyzeGap(ctx context.Context, userID, teamID uuid.UUID) (GapAnalysis, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return GapAnalysis{}, ErrUserNotFound
		}
		return GapAnalysis{}, ErrInternal
	}

	team, err := u.teams.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return GapAnalysis{}, ErrTeamNotFound
		}
		return GapAnalysis{}, ErrInternal
	}

	userSkillNames, err := u.userSkills.SkillNamesByUserID(ctx, userID)
	if err != nil {
		return GapAnalysis{}, ErrInternal
	}

	required, err := u.teams.RequiredSkills(ctx, teamID)
	if err != nil {
		return GapAnalysis{}, ErrInternal
	}
	requiredNames := make([]string, 0, len(required))
	for _, s := range required {
		requiredNames = append(requiredNames, s.Name)
	}

	gap := matching.Gap(userSkillNames, requiredNames)

	return GapAnalysis{
		User:          usr.Username,
		Team:          team.Name,
		MatchedSkills: gap.Matched,
		MissingSkills: gap.Missing,
		Summary:       u.summarize(ctx, gap.Matched, requiredNames),
	}, nil
}

func (u *Gap) summarize(ctx context.Context, matched, required []string) string {
	prompt := fmt.Sprintf(
		"User has the following skills: %s.\n"+
			"Team requires: %s.\n"+
			"Write a short summary of the user's readiness, skills they still need, and an encouraging message. "+
			"Include an estimated readiness percentage.",
		strings.Join(matched, ", "),
		strings.Join(required, ", "),
	)

	if u.generator == nil {
		return gapSummaryFailedPrefix + "generator not configured"
	}

	summary, err := u.generator.Generate(ctx, prompt)
	if err != nil {
		u.logger.Printf("gap summary generation failed | err=%v", err)
		return gapSummaryFailedPrefix + strings.ToLower(err.Error())
	}
	return summary
}
