package matching

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
)

const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

var ErrNoSkillsRequested = errors.New("must supply at least one skill name")

// Weight maps a proficiency level to its scoring weight. Unrecognized
// levels score 0 rather than erroring, so a bad row degrades one skill's
// contribution instead of the whole request.
func Weight(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case LevelBeginner:
		return 1
	case LevelIntermediate:
		return 2
	case LevelAdvanced:
		return 3
	default:
		return 0
	}
}

// HeldSkill is one user's claim on one skill, already resolved against
// the requested set by the caller.
type HeldSkill struct {
	UserID    uuid.UUID
	Username  string
	SkillName string
	Level     string
}

type MatchedSkill struct {
	Skill string
	Level string
	Score int
}

type UserMatch struct {
	UserID         uuid.UUID
	Username       string
	MatchScore     int
	SkillsMatched  []MatchedSkill
	ReadinessScore string
}

// NormalizeSkillNames trims and lower-cases each requested name and drops
// entries that are empty after trimming. Duplicates are preserved: the
// readiness denominator counts requested names, not distinct skills.
func NormalizeSkillNames(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Rank scores every user holding at least one of the requested skills.
//
// requested must already be normalized; its length is the readiness
// denominator, so requested names that resolve to no known skill still
// lower achievable readiness. held carries only rows whose skill is in
// the requested set. Users with no held row never appear in the result.
//
// Ordering: match score descending, then username ascending as the
// deterministic tie-break.
func Rank(requested []string, held []HeldSkill) ([]UserMatch, error) {
	if len(requested) == 0 {
		return nil, ErrNoSkillsRequested
	}

	byUser := map[uuid.UUID]*UserMatch{}
	order := make([]uuid.UUID, 0)

	for _, h := range held {
		m, ok := byUser[h.UserID]
		if !ok {
			m = &UserMatch{UserID: h.UserID, Username: h.Username}
			byUser[h.UserID] = m
			order = append(order, h.UserID)
		}
		score := Weight(h.Level)
		m.MatchScore += score
		m.SkillsMatched = append(m.SkillsMatched, MatchedSkill{
			Skill: h.SkillName,
			Level: h.Level,
			Score: score,
		})
	}

	out := make([]UserMatch, 0, len(order))
	for _, id := range order {
		m := byUser[id]
		m.ReadinessScore = Readiness(len(m.SkillsMatched), len(requested))
		out = append(out, *m)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].MatchScore != out[j].MatchScore {
			return out[i].MatchScore > out[j].MatchScore
		}
		return out[i].Username < out[j].Username
	})

	return out, nil
}

// Readiness renders the matched/requested ratio as a rounded percentage
// string like "67%". A non-positive denominator yields "0%".
func Readiness(matched, requested int) string {
	if requested <= 0 {
		return "0%"
	}
	pct := int(math.Round(float64(matched) / float64(requested) * 100))
	return fmt.Sprintf("%d%%", pct)
}
