// Package catalog holds the capability contracts shared by the upstream
// entities, so filtering, aggregation and ranking can be written once against
// behavior instead of concrete types.
package catalog

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/riskibarqy/season-leaders/internal/domain/playerstats"
)

// Identified exposes the upstream identifier of an entity.
type Identified interface {
	Identity() string
}

// Named exposes the display name of an entity.
type Named interface {
	Label() string
}

// Located exposes the country an entity belongs to.
type Located interface {
	CountryName() string
}

// Toggleable reports whether an entity is administratively enabled.
type Toggleable interface {
	Enabled() bool
}

// CompetitorLister exposes the competitors referenced by an entity.
type CompetitorLister[T any] interface {
	CompetitorList() []T
}

// StatisticsHolder exposes accumulated season metrics.
type StatisticsHolder interface {
	SeasonValue(kind playerstats.Kind) uint8
}

// Set is an unordered collection without duplicates. Callers must not rely
// on iteration order.
type Set[T comparable] = mapset.Set[T]

// NewSet builds a Set from items. The set is not safe for concurrent writes;
// every owner in this module mutates it from a single goroutine.
func NewSet[T comparable](items ...T) Set[T] {
	return mapset.NewThreadUnsafeSet(items...)
}
