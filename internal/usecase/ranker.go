package usecase

import (
	"sort"

	"github.com/riskibarqy/season-leaders/internal/domain/catalog"
	"github.com/riskibarqy/season-leaders/internal/domain/playerstats"
)

// DefaultDisplayLimit applies when a ranking is requested without a limit.
const DefaultDisplayLimit = 10

// RankablePlayer is what the ranker needs to know about a player.
type RankablePlayer interface {
	catalog.Identified
	catalog.StatisticsHolder
}

// TopByMetric returns at most limit players ordered by the chosen season
// metric, highest first. Ties are ordered by player id so the same input
// always produces the same ranking.
func TopByMetric[P RankablePlayer](players map[string]P, kind playerstats.Kind, limit int) []P {
	if limit <= 0 {
		limit = DefaultDisplayLimit
	}

	out := make([]P, 0, len(players))
	for _, p := range players {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Identity() < out[j].Identity()
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SeasonValue(kind) > out[j].SeasonValue(kind)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
