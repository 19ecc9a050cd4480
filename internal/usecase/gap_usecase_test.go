package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"skillmatch/internal/repository"

	"github.com/google/uuid"
)

type mockTeamRepo struct {
	team     repository.Team
	required []repository.Skill
	err      error
}

func (m mockTeamRepo) ListTeams(context.Context) ([]repository.Team, error) { return nil, m.err }
func (m mockTeamRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Team, error) {
	if m.err != nil {
		return repository.Team{}, m.err
	}
	if id != m.team.ID {
		return repository.Team{}, repository.ErrTeamNotFound
	}
	return m.team, nil
}
func (m mockTeamRepo) Create(context.Context, string, string, []uuid.UUID) (repository.Team, error) {
	return repository.Team{}, m.err
}
func (m mockTeamRepo) Update(context.Context, uuid.UUID, string, string, []uuid.UUID) (repository.Team, error) {
	return repository.Team{}, m.err
}
func (m mockTeamRepo) Delete(context.Context, uuid.UUID) error { return m.err }
func (m mockTeamRepo) RequiredSkills(context.Context, uuid.UUID) ([]repository.Skill, error) {
	return m.required, m.err
}
func (m mockTeamRepo) Members(context.Context, uuid.UUID) ([]repository.TeamMember, error) {
	return nil, m.err
}
func (m mockTeamRepo) UpsertMember(context.Context, uuid.UUID, uuid.UUID, string, bool) error {
	return m.err
}

type gapUserSkillRepo struct {
	mockUserSkillRepo
	names []string
}

func (m gapUserSkillRepo) SkillNamesByUserID(context.Context, uuid.UUID) ([]string, error) {
	return m.names, m.err
}

type fakeGenerator struct {
	text string
	err  error
}

func (g fakeGenerator) Generate(context.Context, string) (string, error) {
	return g.text, g.err
}

func newGapFixture(gen fakeGenerator) (*Gap, uuid.UUID, uuid.UUID) {
	userID, teamID := uuid.New(), uuid.New()

	uc := NewGapUsecase(
		mockUserRepo{users: map[uuid.UUID]repository.User{
			userID: {ID: userID, Username: "testuser"},
		}},
		mockTeamRepo{
			team: repository.Team{ID: teamID, Name: "Data Team"},
			required: []repository.Skill{
				{ID: uuid.New(), Name: "python"},
				{ID: uuid.New(), Name: "django"},
				{ID: uuid.New(), Name: "docker"},
			},
		},
		gapUserSkillRepo{names: []string{"python", "django"}},
		gen,
		nil,
	)
	return uc, userID, teamID
}

func TestGapUsecase_ComputesMatchedAndMissing(t *testing.T) {
	uc, userID, teamID := newGapFixture(fakeGenerator{text: "You are 66% ready. Learn Docker."})

	res, err := uc.AnalyzeGap(context.Background(), userID, teamID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if res.User != "testuser" || res.Team != "Data Team" {
		t.Errorf("identity = %q/%q", res.User, res.Team)
	}
	if len(res.MatchedSkills) != 2 {
		t.Errorf("matched = %v, want python+django", res.MatchedSkills)
	}
	if len(res.MissingSkills) != 1 || res.MissingSkills[0] != "docker" {
		t.Errorf("missing = %v, want [docker]", res.MissingSkills)
	}
	if res.Summary != "You are 66% ready. Learn Docker." {
		t.Errorf("summary = %q", res.Summary)
	}
}

func TestGapUsecase_GeneratorFailureDegradesToFallbackSummary(t *testing.T) {
	uc, userID, teamID := newGapFixture(fakeGenerator{err: errors.New("Simulated API Failure")})

	res, err := uc.AnalyzeGap(context.Background(), userID, teamID)
	if err != nil {
		t.Fatalf("gap analysis must not fail on generator failure, got %v", err)
	}

	if !strings.HasPrefix(res.Summary, "Gemini AI summary failed: ") {
		t.Errorf("summary = %q, want fallback prefix", res.Summary)
	}
	if !strings.Contains(res.Summary, "simulated api failure") {
		t.Errorf("summary = %q, want lower-cased failure text", res.Summary)
	}
	if len(res.MatchedSkills) != 2 || len(res.MissingSkills) != 1 {
		t.Errorf("gap sets must survive generator failure: %v / %v", res.MatchedSkills, res.MissingSkills)
	}
}

func TestGapUsecase_UnknownUser(t *testing.T) {
	uc, _, teamID := newGapFixture(fakeGenerator{})

	_, err := uc.AnalyzeGap(context.Background(), uuid.New(), teamID)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGapUsecase_UnknownTeam(t *testing.T) {
	uc, userID, _ := newGapFixture(fakeGenerator{})

	_, err := uc.AnalyzeGap(context.Background(), userID, uuid.New())
	if !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}
