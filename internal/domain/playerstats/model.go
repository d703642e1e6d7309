package playerstats

import "math"

// Statistics is a goals/assists snapshot, either for one provider call or
// accumulated over a season.
type Statistics struct {
	Goals   uint8 `json:"goals_scored"`
	Assists uint8 `json:"assists"`
}

// Add returns the sum of both snapshots. Values saturate at the uint8 bound.
func (s Statistics) Add(other Statistics) Statistics {
	return Statistics{
		Goals:   saturatingAdd(s.Goals, other.Goals),
		Assists: saturatingAdd(s.Assists, other.Assists),
	}
}

// Value projects the metric selected by kind.
func (s Statistics) Value(kind Kind) uint8 {
	switch kind {
	case KindGoals:
		return s.Goals
	case KindAssists:
		return s.Assists
	default:
		return 0
	}
}

func saturatingAdd(a, b uint8) uint8 {
	if uint16(a)+uint16(b) > math.MaxUint8 {
		return math.MaxUint8
	}
	return a + b
}

// Kind selects which accumulated metric a ranking is built on.
type Kind int

const (
	KindGoals Kind = iota + 1
	KindAssists
)

// AllKinds lists the kinds in the order they are offered to the user.
var AllKinds = []Kind{KindGoals, KindAssists}

func (k Kind) Valid() bool {
	return k == KindGoals || k == KindAssists
}

func (k Kind) String() string {
	switch k {
	case KindGoals:
		return "Top Goal Scorers"
	case KindAssists:
		return "Top Assistants"
	default:
		return "Unknown"
	}
}

// Unit is the plural noun printed next to a value of this kind.
func (k Kind) Unit() string {
	switch k {
	case KindGoals:
		return "goals"
	case KindAssists:
		return "assists"
	default:
		return ""
	}
}
