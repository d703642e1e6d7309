package player

import (
	"testing"

	"github.com/riskibarqy/season-leaders/internal/domain/playerstats"
	"github.com/riskibarqy/season-leaders/internal/domain/team"
)

func TestPlayer_StartSeasonRecordsFirstContributionOnce(t *testing.T) {
	t.Parallel()

	p := Player{ID: "sr:player:9", Name: "Odegaard", Statistics: playerstats.Statistics{Assists: 4}}
	got := p.StartSeason()
	if got.SeasonStatistics.Assists != 4 {
		t.Fatalf("season assists mismatch: got=%d want=4", got.SeasonStatistics.Assists)
	}
}

func TestPlayer_AccumulateAddsStatsAndTakesLatestIdentity(t *testing.T) {
	t.Parallel()

	first := Player{ID: "sr:player:7", Name: "J. Sancho", Statistics: playerstats.Statistics{Goals: 2, Assists: 1}}.
		WithTeam(team.New("sr:competitor:35", "Manchester United")).
		StartSeason()
	later := Player{ID: "sr:player:7", Name: "Jadon Sancho", Statistics: playerstats.Statistics{Goals: 3}}.
		WithTeam(team.New("sr:competitor:38", "Chelsea FC"))

	got := first.Accumulate(later)
	if got.SeasonValue(playerstats.KindGoals) != 5 {
		t.Fatalf("season goals mismatch: got=%d want=5", got.SeasonValue(playerstats.KindGoals))
	}
	if got.SeasonValue(playerstats.KindAssists) != 1 {
		t.Fatalf("season assists mismatch: got=%d want=1", got.SeasonValue(playerstats.KindAssists))
	}
	if got.Name != "Jadon Sancho" || got.Team.ID != "sr:competitor:38" {
		t.Fatalf("identity fields must follow the latest record, got name=%q team=%q", got.Name, got.Team.ID)
	}
	if got.String() != "Jadon Sancho (Chelsea FC)" {
		t.Fatalf("unexpected display: %q", got.String())
	}
}

func TestCompetitorStatistics_AssignedSetsCompetitorOnEveryPlayer(t *testing.T) {
	t.Parallel()

	arsenal := team.New("sr:competitor:42", "Arsenal FC")
	resp := CompetitorStatistics{
		Competitor: arsenal,
		Players: []Player{
			{ID: "sr:player:1", Name: "Saka", Team: team.New("sr:competitor:1", "stale")},
			{ID: "sr:player:2", Name: "Rice"},
		},
	}

	for _, p := range resp.Assigned() {
		if p.Team != arsenal {
			t.Fatalf("player %s has team %v, want %v", p.ID, p.Team, arsenal)
		}
	}
	if resp.Players[0].Team == arsenal {
		t.Fatalf("Assigned must not mutate the response")
	}
}
