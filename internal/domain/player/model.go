package player

import (
	"fmt"

	"github.com/riskibarqy/season-leaders/internal/domain/playerstats"
	"github.com/riskibarqy/season-leaders/internal/domain/team"
)

// Player is an athlete listed in a competitor statistics response.
//
// Statistics is the snapshot reported by a single provider call.
// SeasonStatistics is accumulated across every call that mentions the player
// during one aggregation cycle. Team is assigned from the response envelope
// and is never decoded from the player payload itself.
type Player struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	Statistics       playerstats.Statistics `json:"statistics"`
	SeasonStatistics playerstats.Statistics `json:"season_statistics"`
	Team             team.Team              `json:"-"`
}

func (p Player) Identity() string { return p.ID }

func (p Player) Label() string { return p.Name }

// SeasonValue returns the accumulated metric selected by kind.
func (p Player) SeasonValue(kind playerstats.Kind) uint8 {
	return p.SeasonStatistics.Value(kind)
}

// WithTeam returns a copy of p assigned to t.
func (p Player) WithTeam(t team.Team) Player {
	p.Team = t
	return p
}

// StartSeason returns a copy of p whose season totals hold exactly the
// snapshot contribution.
func (p Player) StartSeason() Player {
	p.SeasonStatistics = p.Statistics
	return p
}

// Accumulate folds a later snapshot of the same player into p. Season totals
// grow by the snapshot's statistics; identity fields take the snapshot's
// values.
func (p Player) Accumulate(snapshot Player) Player {
	p.SeasonStatistics = p.SeasonStatistics.Add(snapshot.Statistics)
	p.Statistics = snapshot.Statistics
	p.Name = snapshot.Name
	p.Team = snapshot.Team
	return p
}

func (p Player) String() string {
	if p.Team.Name == "" {
		return p.Name
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.Team.Name)
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}

// CompetitorStatistics is one competitor's statistics response for a season.
// Competitor is authoritative for every player it lists.
type CompetitorStatistics struct {
	Competitor team.Team
	Players    []Player
}

// Assigned returns the listed players with Team set to the competitor.
func (c CompetitorStatistics) Assigned() []Player {
	out := make([]Player, 0, len(c.Players))
	for _, p := range c.Players {
		out = append(out, p.WithTeam(c.Competitor))
	}
	return out
}
