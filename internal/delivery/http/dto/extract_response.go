package dto

type ExtractSkillsResponse struct {
	Skills []string `json:"skills"`
}
