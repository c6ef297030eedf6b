package lifecycle

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/mmynk/tontine/internal/errs"
	"github.com/mmynk/tontine/internal/models"
	"github.com/mmynk/tontine/internal/roles"
	"github.com/mmynk/tontine/internal/storage/sqlite"
)

var (
	admin  = roles.Caller{UserID: "admin-user", Email: "admin@example.com"}
	member = roles.Caller{UserID: "member-user", Email: "m2@example.com"}
)

type countingObserver struct {
	mu          sync.Mutex
	transitions map[models.CycleStatus]int
}

func (o *countingObserver) ObserveTransition(groupID string, from, to models.CycleStatus) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.transitions[to]++
}

type fixture struct {
	store    *sqlite.SQLiteStore
	manager  *Manager
	observer *countingObserver
	group    *models.Group
	members  []*models.Member
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	group := &models.Group{
		Name:      "Savings Circle",
		Amount:    1000,
		Frequency: models.FrequencyMonthly,
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		CreatedBy: admin.UserID,
	}
	if err := store.CreateGroup(ctx, group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	var members []*models.Member
	for _, email := range []string{"m1@example.com", "m2@example.com", "m3@example.com", "m4@example.com"} {
		m := &models.Member{GroupID: group.ID, Name: email, Email: email, Active: true}
		if err := store.CreateMember(ctx, m); err != nil {
			t.Fatalf("CreateMember failed: %v", err)
		}
		members = append(members, m)
	}

	observer := &countingObserver{transitions: map[models.CycleStatus]int{}}
	return &fixture{
		store:    store,
		manager:  NewManager(store, roles.NewResolver(store), observer),
		observer: observer,
		group:    group,
		members:  members,
	}
}

func (f *fixture) createCycle(t *testing.T, recipient int) *models.Cycle {
	t.Helper()
	cycle, err := f.manager.CreateCycle(context.Background(), admin, CreateCycleParams{
		GroupID:     f.group.ID,
		RecipientID: f.members[recipient].ID,
		PayoutDate:  time.Date(2026, time.Month(2+recipient), 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("CreateCycle failed: %v", err)
	}
	return cycle
}

func (f *fixture) activeCount(t *testing.T) int {
	t.Helper()
	cycles, err := f.store.ListCycles(context.Background(), f.group.ID)
	if err != nil {
		t.Fatalf("ListCycles failed: %v", err)
	}
	n := 0
	for _, c := range cycles {
		if c.Status == models.CycleActive {
			n++
		}
	}
	return n
}

func TestCreateCycle_Numbering(t *testing.T) {
	f := setup(t)

	for i := 0; i < 4; i++ {
		c := f.createCycle(t, i)
		if c.Number != i+1 {
			t.Errorf("cycle %d: got number %d", i+1, c.Number)
		}
		if c.Status != models.CycleUpcoming {
			t.Errorf("cycle %d: got status %s, want upcoming", i+1, c.Status)
		}
	}

	cycles, _ := f.manager.ListCycles(context.Background(), admin, f.group.ID)
	for i, c := range cycles {
		if c.Number != i+1 {
			t.Errorf("position %d: got number %d", i, c.Number)
		}
	}
	if f.activeCount(t) != 0 {
		t.Error("expected no active cycle after creation")
	}
}

func TestCreateCycle_Validation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	payout := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	inactive := f.members[3]
	inactive.Active = false
	if err := f.store.UpdateMember(ctx, inactive); err != nil {
		t.Fatalf("UpdateMember failed: %v", err)
	}
	zero := 0.0

	tests := []struct {
		name   string
		params CreateCycleParams
		field  string
	}{
		{"missing payout date", CreateCycleParams{GroupID: f.group.ID, RecipientID: f.members[0].ID}, "payout_date"},
		{"unknown recipient", CreateCycleParams{GroupID: f.group.ID, RecipientID: "nobody", PayoutDate: payout}, "recipient_member_id"},
		{"inactive recipient", CreateCycleParams{GroupID: f.group.ID, RecipientID: inactive.ID, PayoutDate: payout}, "recipient_member_id"},
		{"non-positive amount", CreateCycleParams{GroupID: f.group.ID, RecipientID: f.members[0].ID, PayoutDate: payout, AmountOverride: &zero}, "amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.manager.CreateCycle(ctx, admin, tt.params)
			if !errs.Is(err, errs.KindValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if errs.FieldOf(err) != tt.field {
				t.Errorf("field = %q, want %q", errs.FieldOf(err), tt.field)
			}
		})
	}
}

func TestCreateCycle_AmountOverrideUpdatesGroup(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	amount := 1200.0

	_, err := f.manager.CreateCycle(ctx, admin, CreateCycleParams{
		GroupID:        f.group.ID,
		RecipientID:    f.members[0].ID,
		PayoutDate:     time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		AmountOverride: &amount,
	})
	if err != nil {
		t.Fatalf("CreateCycle failed: %v", err)
	}

	group, _ := f.store.GetGroup(ctx, f.group.ID)
	if group.Amount != 1200 {
		t.Errorf("group amount = %v, want 1200", group.Amount)
	}
}

func TestCreateCycle_RequiresAdmin(t *testing.T) {
	f := setup(t)

	_, err := f.manager.CreateCycle(context.Background(), member, CreateCycleParams{
		GroupID:     f.group.ID,
		RecipientID: f.members[0].ID,
		PayoutDate:  time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	if !errs.Is(err, errs.KindAuthorization) {
		t.Errorf("expected authorization error, got %v", err)
	}
}

func TestActivateCycle(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	first := f.createCycle(t, 0)
	second := f.createCycle(t, 1)

	activated, err := f.manager.ActivateCycle(ctx, admin, first.ID)
	if err != nil {
		t.Fatalf("ActivateCycle failed: %v", err)
	}
	if activated.Status != models.CycleActive {
		t.Errorf("status = %s, want active", activated.Status)
	}

	if _, err := f.manager.ActivateCycle(ctx, admin, second.ID); !errs.Is(err, errs.KindState) {
		t.Errorf("expected state error while another cycle is active, got %v", err)
	}
	if _, err := f.manager.ActivateCycle(ctx, admin, first.ID); !errs.Is(err, errs.KindState) {
		t.Errorf("expected state error re-activating, got %v", err)
	}
	if _, err := f.manager.ActivateCycle(ctx, admin, "missing"); !errs.Is(err, errs.KindNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
	if _, err := f.manager.ActivateCycle(ctx, member, second.ID); !errs.Is(err, errs.KindAuthorization) {
		t.Errorf("expected authorization error, got %v", err)
	}
	if f.activeCount(t) != 1 {
		t.Errorf("expected exactly one active cycle, got %d", f.activeCount(t))
	}
}

func TestCompleteCycle_ActivatesNext(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	first := f.createCycle(t, 0)
	second := f.createCycle(t, 1)

	if _, err := f.manager.ActivateCycle(ctx, admin, first.ID); err != nil {
		t.Fatalf("ActivateCycle failed: %v", err)
	}

	result, err := f.manager.CompleteCycle(ctx, admin, first.ID)
	if err != nil {
		t.Fatalf("CompleteCycle failed: %v", err)
	}
	if result.Completed.Status != models.CycleCompleted {
		t.Errorf("completed status = %s", result.Completed.Status)
	}
	if result.ActivatedNext == nil || result.ActivatedNext.ID != second.ID {
		t.Fatalf("expected cycle 2 to be activated, got %+v", result.ActivatedNext)
	}
	if result.ActivatedNext.Status != models.CycleActive {
		t.Errorf("next status = %s, want active", result.ActivatedNext.Status)
	}
	if f.observer.transitions[models.CycleActive] != 2 || f.observer.transitions[models.CycleCompleted] != 1 {
		t.Errorf("unexpected transitions: %v", f.observer.transitions)
	}
}

func TestCompleteCycle_NoNextCycle(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	first := f.createCycle(t, 0)
	f.manager.ActivateCycle(ctx, admin, first.ID)

	result, err := f.manager.CompleteCycle(ctx, admin, first.ID)
	if err != nil {
		t.Fatalf("CompleteCycle failed: %v", err)
	}
	if result.ActivatedNext != nil {
		t.Errorf("expected no next cycle, got %+v", result.ActivatedNext)
	}
	if result.NextMissingReason == "" {
		t.Error("expected a reason for the missing next cycle")
	}
	if f.activeCount(t) != 0 {
		t.Errorf("expected no active cycle, got %d", f.activeCount(t))
	}
}

func TestCompleteCycle_StateErrors(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	first := f.createCycle(t, 0)

	if _, err := f.manager.CompleteCycle(ctx, admin, first.ID); !errs.Is(err, errs.KindState) {
		t.Errorf("completing an upcoming cycle: expected state error, got %v", err)
	}
	if _, err := f.manager.CompleteCycle(ctx, admin, "missing"); !errs.Is(err, errs.KindNotFound) {
		t.Errorf("expected not found, got %v", err)
	}

	f.manager.ActivateCycle(ctx, admin, first.ID)
	if _, err := f.manager.CompleteCycle(ctx, member, first.ID); !errs.Is(err, errs.KindAuthorization) {
		t.Errorf("expected authorization error, got %v", err)
	}
	if _, err := f.manager.CompleteCycle(ctx, admin, first.ID); err != nil {
		t.Fatalf("CompleteCycle failed: %v", err)
	}
	if _, err := f.manager.CompleteCycle(ctx, admin, first.ID); !errs.Is(err, errs.KindState) {
		t.Errorf("completing twice: expected state error, got %v", err)
	}
}

func TestCompleteCycle_Concurrent(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	first := f.createCycle(t, 0)
	second := f.createCycle(t, 1)
	if _, err := f.manager.ActivateCycle(ctx, admin, first.ID); err != nil {
		t.Fatalf("ActivateCycle failed: %v", err)
	}

	const callers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		wins    []*Completion
		stateEr int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := f.manager.CompleteCycle(ctx, admin, first.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins = append(wins, result)
			case errs.Is(err, errs.KindState):
				stateEr++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if len(wins) != 1 {
		t.Fatalf("expected exactly one successful completion, got %d", len(wins))
	}
	if stateEr != callers-1 {
		t.Errorf("expected %d state errors, got %d", callers-1, stateEr)
	}
	if wins[0].ActivatedNext == nil || wins[0].ActivatedNext.ID != second.ID {
		t.Errorf("expected winner to activate cycle 2, got %+v", wins[0].ActivatedNext)
	}
	if f.activeCount(t) != 1 {
		t.Errorf("expected exactly one active cycle, got %d", f.activeCount(t))
	}
}

func TestLifecycle_AtMostOneActive(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	var cycles []*models.Cycle
	for i := 0; i < 4; i++ {
		cycles = append(cycles, f.createCycle(t, i))
	}
	f.manager.ActivateCycle(ctx, admin, cycles[0].ID)

	for i := range cycles {
		// Attempt every transition on every cycle; the invariant must hold throughout
		for _, c := range cycles {
			f.manager.ActivateCycle(ctx, admin, c.ID)
			if n := f.activeCount(t); n > 1 {
				t.Fatalf("round %d: %d active cycles", i, n)
			}
		}
		f.manager.CompleteCycle(ctx, admin, cycles[i].ID)
		if n := f.activeCount(t); n > 1 {
			t.Fatalf("round %d: %d active cycles", i, n)
		}
	}

	all, _ := f.store.ListCycles(ctx, f.group.ID)
	for _, c := range all {
		if c.Status != models.CycleCompleted {
			t.Errorf("cycle %d ended %s, want completed", c.Number, c.Status)
		}
	}
}
