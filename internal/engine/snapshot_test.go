package engine

import (
	"testing"

	"github.com/mkraev/sellerboard/internal/model"
)

func TestSnapshotCacheCommit(t *testing.T) {
	cache := NewSnapshotCache()

	if _, ok := cache.Get(1); ok {
		t.Fatal("empty cache must miss")
	}

	seq := cache.Begin(1)
	snap := &Snapshot{Report: []model.Posting{{PostingNumber: "A"}}}
	if !cache.Commit(1, seq, snap) {
		t.Fatal("latest refresh must commit")
	}

	got, ok := cache.Get(1)
	if !ok || len(got.Report) != 1 {
		t.Errorf("expected committed snapshot, got %v", got)
	}
}

func TestSnapshotCacheSupersededDiscarded(t *testing.T) {
	cache := NewSnapshotCache()

	first := cache.Begin(1)
	second := cache.Begin(1)

	// первое обновление финиширует после второго — его результат отбрасывается
	if cache.Commit(1, first, &Snapshot{Report: []model.Posting{{PostingNumber: "stale"}}}) {
		t.Error("superseded refresh must not commit")
	}
	if !cache.Commit(1, second, &Snapshot{Report: []model.Posting{{PostingNumber: "fresh"}}}) {
		t.Error("latest refresh must commit")
	}

	got, ok := cache.Get(1)
	if !ok || got.Report[0].PostingNumber != "fresh" {
		t.Errorf("expected fresh snapshot, got %v", got)
	}
}

func TestSnapshotCachePerUser(t *testing.T) {
	cache := NewSnapshotCache()

	seq := cache.Begin(1)
	cache.Commit(1, seq, &Snapshot{})

	if _, ok := cache.Get(2); ok {
		t.Error("snapshots must be isolated per user")
	}
}
