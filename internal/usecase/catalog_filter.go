package usecase

import (
	"sort"

	"github.com/riskibarqy/season-leaders/internal/domain/catalog"
)

// FilterableCompetition is what the allow-list filter needs to know about a
// competition.
type FilterableCompetition interface {
	comparable
	catalog.Named
	catalog.Located
}

// SelectableSeason is what the season filter needs to know about a season.
type SelectableSeason interface {
	catalog.Named
	catalog.Toggleable
}

// FilterCompetitions keeps a competition iff its name is in nameAllowlist and
// its country is in countryAllowlist. Matching is exact and case-sensitive.
func FilterCompetitions[C FilterableCompetition](all []C, nameAllowlist, countryAllowlist catalog.Set[string]) catalog.Set[C] {
	out := catalog.NewSet[C]()
	if nameAllowlist == nil || countryAllowlist == nil {
		return out
	}
	for _, item := range all {
		if nameAllowlist.Contains(item.Label()) && countryAllowlist.Contains(item.CountryName()) {
			out.Add(item)
		}
	}
	return out
}

// FilterAndSortSeasons drops disabled seasons and orders the rest by name,
// descending. Seasons with equal names keep their input order.
func FilterAndSortSeasons[S SelectableSeason](all []S) []S {
	out := make([]S, 0, len(all))
	for _, item := range all {
		if !item.Enabled() {
			continue
		}
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Label() > out[j].Label()
	})
	return out
}
