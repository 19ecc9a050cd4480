package dto

type GapAnalysisResponse struct {
	User          string   `json:"user"`
	Team          string   `json:"team"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	Summary       string   `json:"summary"`
}
