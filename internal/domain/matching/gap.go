package matching

import (
	"sort"
	"strings"
)

// GapResult partitions a team's required skills against what a user
// already holds. Matched and Missing are disjoint and together cover
// the required set.
type GapResult struct {
	Matched []string
	Missing []string
}

// Gap is purely set-based: proficiency levels and experience carry no
// weight here, unlike the ranking engine.
func Gap(userSkills, requiredSkills []string) GapResult {
	held := map[string]struct{}{}
	for _, s := range userSkills {
		held[normalizeName(s)] = struct{}{}
	}

	seen := map[string]struct{}{}
	res := GapResult{Matched: []string{}, Missing: []string{}}
	for _, s := range requiredSkills {
		name := normalizeName(s)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if _, ok := held[name]; ok {
			res.Matched = append(res.Matched, name)
		} else {
			res.Missing = append(res.Missing, name)
		}
	}

	sort.Strings(res.Matched)
	sort.Strings(res.Missing)
	return res
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
