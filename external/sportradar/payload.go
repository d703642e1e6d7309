package sportradar

import (
	"github.com/riskibarqy/season-leaders/internal/domain/competition"
	"github.com/riskibarqy/season-leaders/internal/domain/player"
	"github.com/riskibarqy/season-leaders/internal/domain/season"
	"github.com/riskibarqy/season-leaders/internal/domain/sportevent"
	"github.com/riskibarqy/season-leaders/internal/domain/team"
)

// A nil slice or pointer after decoding means the key was missing from the
// response, which is treated as a schema mismatch.

type competitionsEnvelope struct {
	Competitions []competition.Competition `json:"competitions"`
}

type seasonsEnvelope struct {
	Seasons []season.Season `json:"seasons"`
}

type schedulesEnvelope struct {
	Schedules []scheduleItem `json:"schedules"`
}

type scheduleItem struct {
	SportEvent sportEventPayload `json:"sport_event"`
}

type sportEventPayload struct {
	ID          string              `json:"id"`
	Competitors []competitorPayload `json:"competitors"`
}

type competitorPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (p sportEventPayload) toDomain() sportevent.SportEvent {
	competitors := make([]team.Team, 0, len(p.Competitors))
	for _, item := range p.Competitors {
		if item.ID == "" {
			continue
		}
		competitors = append(competitors, team.New(item.ID, item.Name))
	}
	return sportevent.SportEvent{ID: p.ID, Competitors: competitors}
}

type competitorStatisticsEnvelope struct {
	Competitor *competitorStatisticsPayload `json:"competitor"`
}

type competitorStatisticsPayload struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Players []player.Player `json:"players"`
}

func (p competitorStatisticsPayload) toDomain() player.CompetitorStatistics {
	players := make([]player.Player, 0, len(p.Players))
	for _, item := range p.Players {
		if item.ID == "" {
			continue
		}
		players = append(players, item)
	}
	return player.CompetitorStatistics{
		Competitor: team.New(p.ID, p.Name),
		Players:    players,
	}
}
