package usecase

import (
	"context"
	"errors"
	"testing"

	"skillmatch/internal/repository"

	"github.com/google/uuid"
)

type mockSkillRepo struct {
	skills []repository.Skill
	err    error
}

func (m mockSkillRepo) GetAllSkills(context.Context) ([]repository.Skill, error) {
	return m.skills, m.err
}
func (m mockSkillRepo) GetByID(context.Context, uuid.UUID) (repository.Skill, error) {
	return repository.Skill{}, repository.ErrSkillNotFound
}
func (m mockSkillRepo) FindByNames(_ context.Context, names []string) ([]repository.Skill, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.Skill, 0)
	for _, s := range m.skills {
		for _, n := range names {
			if s.Name == n {
				out = append(out, s)
			}
		}
	}
	return out, nil
}
func (m mockSkillRepo) CreateSkill(context.Context, string) (repository.Skill, error) {
	return repository.Skill{}, m.err
}
func (m mockSkillRepo) UpdateSkill(context.Context, uuid.UUID, string) (repository.Skill, error) {
	return repository.Skill{}, m.err
}
func (m mockSkillRepo) DeleteSkill(context.Context, uuid.UUID) error { return m.err }

type mockUserSkillRepo struct {
	holders  []repository.HeldSkillRow
	profiles map[uuid.UUID][]repository.UserSkill
	replaced *[]repository.SkillAssignment
	err      error
}

func (m mockUserSkillRepo) FindByUserID(_ context.Context, id uuid.UUID) ([]repository.UserSkill, error) {
	return m.profiles[id], m.err
}
func (m mockUserSkillRepo) FindByUserIDs(context.Context, []uuid.UUID) (map[uuid.UUID][]repository.UserSkill, error) {
	return m.profiles, m.err
}
func (m mockUserSkillRepo) FindHoldersBySkillIDs(context.Context, []uuid.UUID) ([]repository.HeldSkillRow, error) {
	return m.holders, m.err
}
func (m mockUserSkillRepo) SkillNamesByUserID(context.Context, uuid.UUID) ([]string, error) {
	return nil, m.err
}
func (m mockUserSkillRepo) ReplaceForUser(_ context.Context, _ uuid.UUID, entries []repository.SkillAssignment) error {
	if m.replaced != nil {
		*m.replaced = entries
	}
	return m.err
}

type mockUserRepo struct {
	users map[uuid.UUID]repository.User
	err   error
}

func (m mockUserRepo) Create(context.Context, repository.User) error { return m.err }
func (m mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (repository.User, error) {
	if m.err != nil {
		return repository.User{}, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return u, nil
}
func (m mockUserRepo) GetByUsername(context.Context, string) (repository.User, error) {
	return repository.User{}, repository.ErrUserNotFound
}
func (m mockUserRepo) ExistsByUsername(context.Context, string) (bool, error) { return false, m.err }
func (m mockUserRepo) ListUsers(context.Context) ([]repository.User, error) {
	out := make([]repository.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, m.err
}
func (m mockUserRepo) GetByIDs(context.Context, []uuid.UUID) (map[uuid.UUID]repository.User, error) {
	return m.users, m.err
}

func TestMatchUsecase_EmptyRequest(t *testing.T) {
	uc := NewMatchUsecase(mockSkillRepo{}, mockUserSkillRepo{}, mockUserRepo{}, nil, nil)

	_, err := uc.MatchBySkillNames(context.Background(), []string{"  ", ""})
	if !errors.Is(err, ErrNoSkillsRequested) {
		t.Fatalf("expected ErrNoSkillsRequested, got %v", err)
	}
}

func TestMatchUsecase_RanksAndAssembles(t *testing.T) {
	pythonID, djangoID := uuid.New(), uuid.New()
	userID := uuid.New()

	uc := NewMatchUsecase(
		mockSkillRepo{skills: []repository.Skill{
			{ID: pythonID, Name: "python"},
			{ID: djangoID, Name: "django"},
		}},
		mockUserSkillRepo{
			holders: []repository.HeldSkillRow{
				{UserID: userID, Username: "testuser", SkillName: "python", Level: "advanced"},
				{UserID: userID, Username: "testuser", SkillName: "django", Level: "intermediate"},
			},
			profiles: map[uuid.UUID][]repository.UserSkill{userID: {
				{SkillName: "python", Level: "advanced", ExperienceYears: 3, IsActive: true},
				{SkillName: "django", Level: "intermediate", ExperienceYears: 2, IsActive: true},
			}},
		},
		mockUserRepo{users: map[uuid.UUID]repository.User{
			userID: {ID: userID, Username: "testuser", Email: "test@example.com"},
		}},
		nil,
		nil,
	)

	out, err := uc.MatchBySkillNames(context.Background(), []string{"Python", " django "})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 result, got %d", len(out))
	}
	if out[0].MatchScore != 5 {
		t.Errorf("match score = %d, want 5", out[0].MatchScore)
	}
	if len(out[0].SkillsMatched) != 2 {
		t.Errorf("skills matched = %d, want 2", len(out[0].SkillsMatched))
	}
	if out[0].ReadinessScore != "100%" {
		t.Errorf("readiness = %q, want 100%%", out[0].ReadinessScore)
	}
	if len(out[0].Skills) != 2 {
		t.Errorf("full profile = %d skills, want 2", len(out[0].Skills))
	}
	if out[0].Username != "testuser" {
		t.Errorf("username = %q, want testuser", out[0].Username)
	}
}

func TestMatchUsecase_UnknownSkillNamesYieldEmptyResult(t *testing.T) {
	uc := NewMatchUsecase(mockSkillRepo{}, mockUserSkillRepo{}, mockUserRepo{}, nil, nil)

	out, err := uc.MatchBySkillNames(context.Background(), []string{"cobol"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no results for unknown skill, got %d", len(out))
	}
}

func TestMatchUsecase_RepositoryFailure(t *testing.T) {
	uc := NewMatchUsecase(
		mockSkillRepo{err: errors.New("db down")},
		mockUserSkillRepo{},
		mockUserRepo{},
		nil,
		nil,
	)

	_, err := uc.MatchBySkillNames(context.Background(), []string{"python"})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
