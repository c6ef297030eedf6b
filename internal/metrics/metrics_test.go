package metrics

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/mmynk/tontine/internal/models"
	"github.com/mmynk/tontine/internal/notify"
	"github.com/mmynk/tontine/internal/storage"
)

func value(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var out dto.Metric
	if err := c.Write(&out); err != nil {
		t.Fatalf("failed to read counter: %v", err)
	}
	return out.GetCounter().GetValue()
}

// stubNotifier delivers the first n reminders of a batch and fails the rest.
type stubNotifier struct{ n int }

func (s stubNotifier) SendReminders(ctx context.Context, reminders []notify.Reminder) ([]notify.Reminder, error) {
	if s.n >= len(reminders) {
		return reminders, nil
	}
	return reminders[:s.n], errors.New("down")
}

func TestObserveTransition(t *testing.T) {
	m := New()

	m.ObserveTransition("g1", models.CycleUpcoming, models.CycleActive)
	m.ObserveTransition("g1", models.CycleActive, models.CycleCompleted)
	m.ObserveTransition("g2", models.CycleUpcoming, models.CycleActive)

	if got := value(t, m.transitions.WithLabelValues("upcoming", "active")); got != 2 {
		t.Errorf("upcoming->active = %v, want 2", got)
	}
	if got := value(t, m.transitions.WithLabelValues("active", "completed")); got != 1 {
		t.Errorf("active->completed = %v, want 1", got)
	}
}

func TestObserveDrop(t *testing.T) {
	m := New()
	m.ObserveDrop(storage.Change{Table: storage.TablePayments, GroupID: "g1"})

	if got := value(t, m.droppedChanges.WithLabelValues("payments")); got != 1 {
		t.Errorf("dropped = %v, want 1", got)
	}
}

func TestNotifier(t *testing.T) {
	m := New()
	batch := []notify.Reminder{{MemberID: "a"}, {MemberID: "b"}, {MemberID: "c"}}

	sent, err := m.Notifier(stubNotifier{n: 3}).SendReminders(context.Background(), batch)
	if err != nil || len(sent) != 3 {
		t.Fatalf("SendReminders = %d, %v; want 3 sent", len(sent), err)
	}
	sent, err = m.Notifier(stubNotifier{n: 1}).SendReminders(context.Background(), batch)
	if err == nil {
		t.Fatal("expected error to pass through")
	}
	if len(sent) != 1 {
		t.Errorf("partial batch sent = %d, want 1", len(sent))
	}

	if got := value(t, m.reminders.WithLabelValues("sent")); got != 4 {
		t.Errorf("sent = %v, want 4", got)
	}
	if got := value(t, m.reminders.WithLabelValues("failed")); got != 2 {
		t.Errorf("failed = %v, want 2", got)
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{connect.NewError(connect.CodeNotFound, errors.New("x")), "not_found"},
		{errors.New("plain"), "unknown"},
	}
	for _, tt := range tests {
		if got := codeOf(tt.err); got != tt.want {
			t.Errorf("codeOf(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveTransition("g1", models.CycleUpcoming, models.CycleActive)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if !strings.Contains(string(body), "tontine_cycle_transitions_total") {
		t.Error("expected transition counter in exposition output")
	}
}
