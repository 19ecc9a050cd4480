package extract

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "strict json array",
			raw:  `["django", "react", "gcp"]`,
			want: []string{"django", "gcp", "react"},
		},
		{
			name: "single quoted array",
			raw:  `['django', 'react', 'gcp']`,
			want: []string{"django", "gcp", "react"},
		},
		{
			name: "fenced json array",
			raw:  "```json\n[\"go\", \"docker\"]\n```",
			want: []string{"docker", "go"},
		},
		{
			name: "symbol bearing names survive strict parse",
			raw:  `["c++", "c#", "node.js"]`,
			want: []string{"c#", "c++", "node.js"},
		},
		{
			name: "prose falls back to token scan",
			raw:  "The candidate knows python, django and docker.",
			want: []string{"and", "candidate", "django", "docker.", "knows", "python", "the"},
		},
		{
			name: "malformed list falls back to token scan",
			raw:  `['django', 'react'`,
			want: []string{"django", "react"},
		},
		{
			name: "fallback keeps symbol tokens",
			raw:  "skills: c++ c# node.js",
			want: []string{"c#", "c++", "node.js", "skills"},
		},
		{
			name: "mixed case deduplicated and sorted",
			raw:  `["Python", "python", "Django"]`,
			want: []string{"django", "python"},
		},
		{
			name: "non string elements dropped",
			raw:  `["go", 42, null, "redis"]`,
			want: []string{"go", "redis"},
		},
		{
			name: "empty input",
			raw:  "",
			want: []string{},
		},
		{
			name: "blank entries dropped",
			raw:  `["", "  ", "go"]`,
			want: []string{"go"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Parse(c.raw)
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("Parse(%q) = %v, want %v", c.raw, got, c.want)
			}
		})
	}
}

func TestParse_StrictAndFallbackAgreeOnSameContent(t *testing.T) {
	strict := Parse(`["django", "react", "gcp"]`)
	fallback := Parse(`'django' 'react' 'gcp'`)
	if !reflect.DeepEqual(strict, fallback) {
		t.Errorf("strict %v and fallback %v diverge for same content", strict, fallback)
	}
}
