package service

import (
	_ "embed"
	"encoding/json"

	"github.com/delevski/protfolio/internal/models"
	"github.com/rs/zerolog"
)

//go:embed skills.json
var skillsData []byte

// contentService serves the static portfolio datasets. The data ships with
// the binary; there is nothing to query or invalidate.
type contentService struct {
	skills []models.SkillCategory
	log    zerolog.Logger
}

// newContentService creates a new ContentService
func newContentService(log zerolog.Logger) *contentService {
	s := &contentService{
		log: log.With().Str("service", "content").Logger(),
	}
	if err := json.Unmarshal(skillsData, &s.skills); err != nil {
		// Embedded data is fixed at build time; an unmarshal failure means a
		// broken build, not a runtime condition.
		s.log.Error().Err(err).Msg("Failed to parse embedded skills data")
		s.skills = []models.SkillCategory{}
	}
	return s
}

// Skills returns the skill categories for the portfolio skills endpoint.
func (s *contentService) Skills() []models.SkillCategory {
	return s.skills
}
