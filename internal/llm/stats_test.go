package llm

import (
	"math"
	"testing"
	"time"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestStatsSnapshotPerModel(t *testing.T) {
	stats := NewStats(time.Hour)
	for _, ms := range []int64{100, 200, 300, 400, 500} {
		stats.Record("mistral:latest", ms)
	}
	stats.Record("translator", 50)

	snap := stats.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("expected 2 models, got %d", len(snap))
	}

	gen := snap["mistral:latest"]
	if gen.Count != 5 || gen.MinMs != 100 || gen.MaxMs != 500 {
		t.Errorf("expected count 5 min 100 max 500, got %+v", gen)
	}
	if !near(gen.AvgMs, 300) || !near(gen.P50Ms, 300) || !near(gen.P95Ms, 480) {
		t.Errorf("expected avg 300 p50 300 p95 480, got %+v", gen)
	}

	tr := snap["translator"]
	if tr.Count != 1 || !near(tr.P95Ms, 50) {
		t.Errorf("expected a single 50ms sample, got %+v", tr)
	}
}

func TestStatsPrunesExpiredSamples(t *testing.T) {
	stats := NewStats(10 * time.Millisecond)
	stats.Record("m", 100)
	time.Sleep(25 * time.Millisecond)

	if snap := stats.Snapshot(); len(snap) != 0 {
		t.Fatalf("expected expired samples to be pruned, got %+v", snap)
	}

	stats.Record("m", 200)
	snap := stats.Snapshot()
	if snap["m"].Count != 1 || snap["m"].MinMs != 200 {
		t.Errorf("expected only the fresh sample, got %+v", snap["m"])
	}
}

func TestStatsClampsNegativeDuration(t *testing.T) {
	stats := NewStats(time.Hour)
	stats.Record("m", -10)
	if got := stats.Snapshot()["m"].MaxMs; got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}
