package playerstats

import "testing"

func TestStatistics_AddSaturates(t *testing.T) {
	t.Parallel()

	got := Statistics{Goals: 250, Assists: 3}.Add(Statistics{Goals: 10, Assists: 4})
	if got.Goals != 255 {
		t.Fatalf("goals must saturate: got=%d want=255", got.Goals)
	}
	if got.Assists != 7 {
		t.Fatalf("assists mismatch: got=%d want=7", got.Assists)
	}
}

func TestStatistics_ValueByKind(t *testing.T) {
	t.Parallel()

	stats := Statistics{Goals: 9, Assists: 4}
	if got := stats.Value(KindGoals); got != 9 {
		t.Fatalf("goals mismatch: got=%d", got)
	}
	if got := stats.Value(KindAssists); got != 4 {
		t.Fatalf("assists mismatch: got=%d", got)
	}
	if got := stats.Value(Kind(0)); got != 0 {
		t.Fatalf("unknown kind must project zero, got=%d", got)
	}
}
