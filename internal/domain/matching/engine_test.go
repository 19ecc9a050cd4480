package matching

import (
	"testing"

	"github.com/google/uuid"
)

func TestWeight(t *testing.T) {
	cases := []struct {
		level string
		want  int
	}{
		{"beginner", 1},
		{"intermediate", 2},
		{"advanced", 3},
		{"Advanced", 3},
		{"  ADVANCED  ", 3},
		{"expert", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := Weight(c.level); got != c.want {
			t.Errorf("Weight(%q) = %d, want %d", c.level, got, c.want)
		}
	}
}

func TestNormalizeSkillNames(t *testing.T) {
	got := NormalizeSkillNames([]string{" Python ", "DJANGO", "", "  ", "go"})
	want := []string{"python", "django", "go"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestRank_EmptyRequested(t *testing.T) {
	if _, err := Rank(nil, nil); err != ErrNoSkillsRequested {
		t.Fatalf("expected ErrNoSkillsRequested, got %v", err)
	}
}

func TestRank_ScoreAndReadiness(t *testing.T) {
	uid := uuid.New()
	held := []HeldSkill{
		{UserID: uid, Username: "testuser", SkillName: "python", Level: "advanced"},
		{UserID: uid, Username: "testuser", SkillName: "django", Level: "intermediate"},
	}

	out, err := Rank([]string{"python", "django"}, held)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 match, got %d", len(out))
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
}

func TestRank_UnknownRequestedNameLowersReadiness(t *testing.T) {
	uid := uuid.New()
	held := []HeldSkill{
		{UserID: uid, Username: "testuser", SkillName: "python", Level: "advanced"},
		{UserID: uid, Username: "testuser", SkillName: "django", Level: "intermediate"},
	}

	// "cobol" resolves to nothing, but still counts in the denominator.
	out, err := Rank([]string{"python", "django", "cobol"}, held)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out[0].ReadinessScore != "67%" {
		t.Errorf("readiness = %q, want 67%%", out[0].ReadinessScore)
	}
}

func TestRank_ExcludesUsersWithNoMatch(t *testing.T) {
	out, err := Rank([]string{"python"}, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty result, got %d entries", len(out))
	}
}

func TestRank_OrderingAndTieBreak(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	held := []HeldSkill{
		{UserID: a, Username: "zara", SkillName: "go", Level: "beginner"},
		{UserID: b, Username: "alice", SkillName: "go", Level: "advanced"},
		{UserID: c, Username: "bob", SkillName: "go", Level: "beginner"},
	}

	out, err := Rank([]string{"go"}, held)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i].MatchScore > out[i-1].MatchScore {
			t.Fatalf("result not ordered by score desc: %v", out)
		}
	}
	if out[0].Username != "alice" {
		t.Errorf("top match = %q, want alice", out[0].Username)
	}
	// bob and zara tie on score; username ascending breaks it.
	if out[1].Username != "bob" || out[2].Username != "zara" {
		t.Errorf("tie-break order = %q, %q; want bob, zara", out[1].Username, out[2].Username)
	}
}

func TestRank_UnrecognizedLevelScoresZeroButStillMatches(t *testing.T) {
	uid := uuid.New()
	held := []HeldSkill{
		{UserID: uid, Username: "testuser", SkillName: "python", Level: "wizard"},
	}

	out, err := Rank([]string{"python"}, held)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 match, got %d", len(out))
	}
	if out[0].MatchScore != 0 {
		t.Errorf("match score = %d, want 0", out[0].MatchScore)
	}
	if out[0].ReadinessScore != "100%" {
		t.Errorf("readiness = %q, want 100%%", out[0].ReadinessScore)
	}
}

func TestReadiness_Rounding(t *testing.T) {
	cases := []struct {
		matched, requested int
		want               string
	}{
		{1, 3, "33%"},
		{2, 3, "67%"},
		{1, 6, "17%"},
		{0, 4, "0%"},
		{3, 3, "100%"},
		{1, 0, "0%"},
	}
	for _, c := range cases {
		if got := Readiness(c.matched, c.requested); got != c.want {
			t.Errorf("Readiness(%d, %d) = %q, want %q", c.matched, c.requested, got, c.want)
		}
	}
}
