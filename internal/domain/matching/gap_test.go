package matching

import (
	"sort"
	"testing"
)

func TestGap_Partition(t *testing.T) {
	res := Gap(
		[]string{"python", "django"},
		[]string{"python", "django", "docker"},
	)

	if len(res.Matched) != 2 {
		t.Fatalf("matched = %v, want python+django", res.Matched)
	}
	if len(res.Missing) != 1 || res.Missing[0] != "docker" {
		t.Fatalf("missing = %v, want [docker]", res.Missing)
	}
}

func TestGap_MatchedAndMissingCoverRequired(t *testing.T) {
	user := []string{"go", "redis", "kafka"}
	required := []string{"go", "postgresql", "redis", "docker"}

	res := Gap(user, required)

	union := append(append([]string{}, res.Matched...), res.Missing...)
	sort.Strings(union)
	want := []string{"docker", "go", "postgresql", "redis"}
	if len(union) != len(want) {
		t.Fatalf("union = %v, want %v", union, want)
	}
	for i := range want {
		if union[i] != want[i] {
			t.Fatalf("union = %v, want %v", union, want)
		}
	}

	for _, m := range res.Matched {
		for _, ms := range res.Missing {
			if m == ms {
				t.Fatalf("skill %q in both matched and missing", m)
			}
		}
	}
}

func TestGap_CaseInsensitiveAndDeduplicated(t *testing.T) {
	res := Gap(
		[]string{"Python"},
		[]string{"python", "PYTHON", "Docker"},
	)
	if len(res.Matched) != 1 || res.Matched[0] != "python" {
		t.Fatalf("matched = %v, want [python]", res.Matched)
	}
	if len(res.Missing) != 1 || res.Missing[0] != "docker" {
		t.Fatalf("missing = %v, want [docker]", res.Missing)
	}
}

func TestGap_EmptyInputs(t *testing.T) {
	res := Gap(nil, nil)
	if res.Matched == nil || res.Missing == nil {
		t.Fatal("matched/missing must be non-nil empty lists")
	}
	if len(res.Matched) != 0 || len(res.Missing) != 0 {
		t.Fatalf("expected empty partition, got %v / %v", res.Matched, res.Missing)
	}

	res = Gap(nil, []string{"docker"})
	if len(res.Missing) != 1 {
		t.Fatalf("missing = %v, want [docker]", res.Missing)
	}
}
