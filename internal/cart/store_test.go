package cart

import (
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestStoreDispatchReturnsSnapshot(t *testing.T) {
	s := NewStore()

	snap := s.Dispatch(AddItems{Items: []LineItem{item("a", 2)}})

	if len(snap.Items) != 1 || snap.Items[0].Quantity != 2 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.ItemCount() != 2 {
		t.Fatalf("expected count 2, got %d", snap.ItemCount())
	}
}

func TestStoreSnapshotIsolation(t *testing.T) {
	s := NewStore()
	s.Dispatch(AddItems{Items: []LineItem{item("a", 1)}})

	snap := s.Snapshot()
	snap.Items[0].Quantity = 99

	if got := s.Snapshot().Items[0].Quantity; got != 1 {
		t.Fatalf("store state leaked through snapshot: quantity %d", got)
	}
}

func TestStoreSubscribe(t *testing.T) {
	s := NewStore()

	var seen []int
	unsubscribe := s.Subscribe(func(snap State) {
		seen = append(seen, snap.ItemCount())
	})

	s.Dispatch(AddItems{Items: []LineItem{item("a", 1)}})
	s.Dispatch(AddItems{Items: []LineItem{item("a", 2)}})

	if len(seen) != 2 || seen[0] != 1 || seen[1] != 3 {
		t.Fatalf("unexpected notifications %v", seen)
	}

	unsubscribe()
	s.Dispatch(Reset{})

	if len(seen) != 2 {
		t.Fatalf("subscriber notified after unsubscribe: %v", seen)
	}
}

func TestStoreSubscriberMaySnapshot(t *testing.T) {
	s := NewStore()

	s.Subscribe(func(State) {
		// must not deadlock
		_ = s.Snapshot()
	})

	s.Dispatch(AddItems{Items: []LineItem{item("a", 1)}})
}

func TestStoreConcurrentAddsConverge(t *testing.T) {
	s := NewStore()

	const n = 50
	var g errgroup.Group
	for i := 0; i < n; i++ {
		qty := 1 + i%2 // interleave quantities 1 and 2
		g.Go(func() error {
			s.Dispatch(AddItems{Items: []LineItem{item("a", qty)}})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent dispatch failed: %v", err)
	}

	snap := s.Snapshot()
	if len(snap.Items) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(snap.Items))
	}
	// 25 adds of 1 and 25 adds of 2, in any interleaving
	if snap.Items[0].Quantity != 75 {
		t.Fatalf("expected quantity 75, got %d", snap.Items[0].Quantity)
	}
}
