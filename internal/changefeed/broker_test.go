package changefeed

import (
	"testing"

	"github.com/mmynk/tontine/internal/storage"
)

func TestBroker_SubscribeFiltersByGroup(t *testing.T) {
	b := New()
	ch, cancel := b.Subscribe("g1", 4)
	defer cancel()

	b.Publish(storage.Change{Table: storage.TableCycles, GroupID: "g2", RowID: "c9"})
	b.Publish(storage.Change{Table: storage.TableCycles, GroupID: "g1", RowID: "c1"})

	select {
	case got := <-ch:
		if got.RowID != "c1" {
			t.Errorf("expected change for c1, got %+v", got)
		}
	default:
		t.Fatal("expected a change for g1")
	}

	select {
	case got := <-ch:
		t.Errorf("unexpected extra change %+v", got)
	default:
	}
}

func TestBroker_AllGroups(t *testing.T) {
	b := New()
	ch, cancel := b.Subscribe("", 4)
	defer cancel()

	b.Publish(storage.Change{Table: storage.TableMembers, GroupID: "g1"})
	b.Publish(storage.Change{Table: storage.TableMembers, GroupID: "g2"})

	if len(ch) != 2 {
		t.Errorf("expected 2 buffered changes, got %d", len(ch))
	}
}

func TestBroker_FullSubscriberDrops(t *testing.T) {
	b := New()
	dropped := 0
	b.OnDrop(func(storage.Change) { dropped++ })

	ch, cancel := b.Subscribe("g1", 1)
	defer cancel()

	b.Publish(storage.Change{GroupID: "g1", RowID: "1"})
	b.Publish(storage.Change{GroupID: "g1", RowID: "2"})

	if dropped != 1 {
		t.Errorf("expected 1 drop, got %d", dropped)
	}
	if got := <-ch; got.RowID != "1" {
		t.Errorf("expected first change to be kept, got %+v", got)
	}
}

func TestBroker_CancelClosesAndIsIdempotent(t *testing.T) {
	b := New()
	ch, cancel := b.Subscribe("g1", 1)
	if b.Subscribers() != 1 {
		t.Fatalf("expected 1 subscriber, got %d", b.Subscribers())
	}

	cancel()
	cancel()

	if _, ok := <-ch; ok {
		t.Error("expected channel to be closed")
	}
	if b.Subscribers() != 0 {
		t.Errorf("expected 0 subscribers, got %d", b.Subscribers())
	}

	// Publishing after cancel must not panic
	b.Publish(storage.Change{GroupID: "g1"})
}

func TestBroker_Listeners(t *testing.T) {
	b := New()
	var seen []string
	b.Listen(func(c storage.Change) { seen = append(seen, c.GroupID) })

	b.Publish(storage.Change{GroupID: "g1"})
	b.Publish(storage.Change{GroupID: "g2"})

	if len(seen) != 2 || seen[0] != "g1" || seen[1] != "g2" {
		t.Errorf("unexpected listener calls: %v", seen)
	}
}
