// Package extract turns free-form text-generation output into a clean
// skill list. The upstream generator is asked for a bare JSON array but
// does not reliably produce one, so parsing is two-tier: a strict
// structured parse first, then a tolerant token scan.
package extract

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"
)

// tokenRe matches skill-shaped tokens, including symbol-bearing names
// like "c++", "c#" and "node.js".
var tokenRe = regexp.MustCompile(`[A-Za-z0-9_+\-.#]+`)

// fenceRe strips markdown code fences the generator sometimes wraps
// its output in, with or without a language tag.
var fenceRe = regexp.MustCompile("^```[a-zA-Z]*\\s*|\\s*```$")

// Parse extracts a lower-cased, de-duplicated, sorted skill list from
// raw generator output. It never fails: unparseable input degrades to
// the token scan, and at worst yields an empty list.
func Parse(raw string) []string {
	skills, ok := parseStrict(raw)
	if !ok {
		skills = tokenRe.FindAllString(raw, -1)
	}
	return clean(skills)
}

// parseStrict accepts a JSON array of strings, tolerating surrounding
// code fences and single-quoted arrays. Non-string elements are
// dropped rather than failing the whole parse.
func parseStrict(raw string) ([]string, bool) {
	s := strings.TrimSpace(fenceRe.ReplaceAllString(strings.TrimSpace(raw), ""))
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, false
	}

	var items []any
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		// Generators trained on Python examples emit single-quoted
		// lists; retry once with quotes swapped.
		if err := json.Unmarshal([]byte(strings.ReplaceAll(s, "'", `"`)), &items); err != nil {
			return nil, false
		}
	}

	out := make([]string, 0, len(items))
	for _, it := range items {
		if str, ok := it.(string); ok {
			out = append(out, str)
		}
	}
	return out, true
}

func clean(skills []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
