package models

// Skill is a single technology or competency entry on the portfolio.
type Skill struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Usage       string `json:"usage"`
}

// SkillCategory groups skills for the portfolio skills endpoint.
type SkillCategory struct {
	Category string  `json:"category"`
	Skills   []Skill `json:"skills"`
}
