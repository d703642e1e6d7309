package sportevent

import "github.com/riskibarqy/season-leaders/internal/domain/team"

// SportEvent is a scheduled match of a season. Only its competitors are
// consumed.
type SportEvent struct {
	ID          string      `json:"id"`
	Competitors []team.Team `json:"competitors"`
}

func (e SportEvent) Identity() string { return e.ID }

func (e SportEvent) CompetitorList() []team.Team {
	out := make([]team.Team, len(e.Competitors))
	copy(out, e.Competitors)
	return out
}
