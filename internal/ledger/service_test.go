package ledger

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/mmynk/tontine/internal/errs"
	"github.com/mmynk/tontine/internal/models"
	"github.com/mmynk/tontine/internal/notify"
	"github.com/mmynk/tontine/internal/roles"
	"github.com/mmynk/tontine/internal/storage/sqlite"
)

var (
	admin     = roles.Caller{UserID: "admin-user", Email: "admin@example.com"}
	recipient = roles.Caller{UserID: "recipient-user", Email: "m1@example.com"}
	plain     = roles.Caller{UserID: "member-user", Email: "m2@example.com"}
	stranger  = roles.Caller{UserID: "stranger", Email: "nobody@example.com"}
)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []notify.Reminder
	// failFor lists member IDs whose reminders are not delivered.
	failFor map[string]bool
	err     error
}

func (n *recordingNotifier) SendReminders(ctx context.Context, reminders []notify.Reminder) ([]notify.Reminder, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return nil, n.err
	}
	var sent []notify.Reminder
	var err error
	for _, r := range reminders {
		if n.failFor[r.MemberID] {
			err = errors.New("mailbox unavailable")
			continue
		}
		sent = append(sent, r)
	}
	n.sent = append(n.sent, sent...)
	return sent, err
}

type fixture struct {
	store    *sqlite.SQLiteStore
	service  *Service
	notifier *recordingNotifier
	group    *models.Group
	members  []*models.Member
	cycle    *models.Cycle
}

// setup creates a $1000 group with four members and an active first cycle
// paid out to the first member.
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

	var ms []*models.Member
	for _, email := range []string{"m1@example.com", "m2@example.com", "m3@example.com", "m4@example.com"} {
		m := &models.Member{GroupID: group.ID, Name: email, Email: email, Active: true}
		if err := store.CreateMember(ctx, m); err != nil {
			t.Fatalf("CreateMember failed: %v", err)
		}
		ms = append(ms, m)
	}

	cycle := &models.Cycle{
		GroupID:     group.ID,
		EndDate:     time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		RecipientID: ms[0].ID,
	}
	if err := store.CreateCycle(ctx, cycle, 0); err != nil {
		t.Fatalf("CreateCycle failed: %v", err)
	}
	if ok, err := store.UpdateCycleStatus(ctx, cycle.ID, models.CycleUpcoming, models.CycleActive); err != nil || !ok {
		t.Fatalf("activate failed: ok=%v err=%v", ok, err)
	}
	cycle.Status = models.CycleActive

	n := &recordingNotifier{}
	return &fixture{
		store:    store,
		service:  NewService(store, roles.NewResolver(store), n),
		notifier: n,
		group:    group,
		members:  ms,
		cycle:    cycle,
	}
}

func (f *fixture) pay(t *testing.T, caller roles.Caller, member int, amount float64) {
	t.Helper()
	_, err := f.service.RecordPayment(context.Background(), caller, f.cycle.ID, f.members[member].ID, amount,
		time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("RecordPayment failed: %v", err)
	}
}

func TestGetLedger_ThreeOfFourPaid(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		f.pay(t, admin, i, 250)
	}

	l, err := f.service.GetLedger(ctx, plain, f.cycle.ID)
	if err != nil {
		t.Fatalf("GetLedger failed: %v", err)
	}
	if l.PaidCount != 3 {
		t.Errorf("Expected paidCount 3, got %d", l.PaidCount)
	}
	if l.TotalExpected != 1000 {
		t.Errorf("Expected 1000, got %v", l.TotalExpected)
	}
	if l.TotalCollected != 750 {
		t.Errorf("Expected 750, got %v", l.TotalCollected)
	}
	if l.CompletionPercentage != 75 {
		t.Errorf("Expected 75%%, got %d%%", l.CompletionPercentage)
	}
	if len(l.Entries) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(l.Entries))
	}
	if l.Entries[3].Recorded {
		t.Error("Expected fourth entry to be synthesized")
	}
}

func TestGetLedger_Authorization(t *testing.T) {
	f := setup(t)

	_, err := f.service.GetLedger(context.Background(), stranger, f.cycle.ID)
	if !errs.Is(err, errs.KindAuthorization) {
		t.Errorf("expected authorization error, got %v", err)
	}

	_, err = f.service.GetLedger(context.Background(), admin, "missing")
	if !errs.Is(err, errs.KindNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestRecordPayment(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	date := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		caller   roles.Caller
		memberID string
		amount   float64
		date     time.Time
		kind     errs.Kind
		field    string
	}{
		{"plain member denied", plain, f.members[1].ID, 250, date, errs.KindAuthorization, ""},
		{"stranger denied", stranger, f.members[1].ID, 250, date, errs.KindAuthorization, ""},
		{"zero amount", admin, f.members[1].ID, 0, date, errs.KindValidation, "amount"},
		{"negative amount", recipient, f.members[1].ID, -5, date, errs.KindValidation, "amount"},
		{"missing date", admin, f.members[1].ID, 250, time.Time{}, errs.KindValidation, "payment_date"},
		{"unknown member", admin, "nobody", 250, date, errs.KindNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.RecordPayment(ctx, tt.caller, f.cycle.ID, tt.memberID, tt.amount, tt.date)
			if !errs.Is(err, tt.kind) {
				t.Fatalf("expected %s error, got %v", tt.kind, err)
			}
			if tt.field != "" && errs.FieldOf(err) != tt.field {
				t.Errorf("field = %q, want %q", errs.FieldOf(err), tt.field)
			}
		})
	}

	t.Run("recipient may record", func(t *testing.T) {
		p, err := f.service.RecordPayment(ctx, recipient, f.cycle.ID, f.members[1].ID, 250, date)
		if err != nil {
			t.Fatalf("RecordPayment failed: %v", err)
		}
		if p.Status != models.PaymentPaid || p.ID == "" {
			t.Errorf("unexpected payment: %+v", p)
		}
	})

	t.Run("re-recording overwrites", func(t *testing.T) {
		f.pay(t, admin, 1, 300)
		l, _ := f.service.GetLedger(ctx, admin, f.cycle.ID)
		if l.PaidCount != 1 || l.TotalCollected != 300 {
			t.Errorf("expected one payment of 300, got count=%d collected=%v", l.PaidCount, l.TotalCollected)
		}
	})
}

func TestRecordPayment_MemberOfOtherGroup(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	other := &models.Group{Name: "Other", Amount: 10, Frequency: models.FrequencyWeekly, StartDate: f.group.StartDate, CreatedBy: admin.UserID}
	if err := f.store.CreateGroup(ctx, other); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	outsider := &models.Member{GroupID: other.ID, Name: "Out", Email: "out@example.com", Active: true}
	if err := f.store.CreateMember(ctx, outsider); err != nil {
		t.Fatalf("CreateMember failed: %v", err)
	}

	_, err := f.service.RecordPayment(ctx, admin, f.cycle.ID, outsider.ID, 10, time.Now())
	if errs.FieldOf(err) != "member_id" {
		t.Errorf("expected validation error on member_id, got %v", err)
	}
}

func TestReversePayment(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.pay(t, admin, 2, 250)

	if _, err := f.service.ReversePayment(ctx, recipient, f.cycle.ID, f.members[2].ID); !errs.Is(err, errs.KindAuthorization) {
		t.Fatalf("expected recipient to be denied, got %v", err)
	}

	for i, want := range []bool{true, true} {
		existed, err := f.service.ReversePayment(ctx, admin, f.cycle.ID, f.members[2].ID)
		if err != nil {
			t.Fatalf("reverse %d failed: %v", i, err)
		}
		if existed != want {
			t.Errorf("reverse %d: existed = %v, want %v", i, existed, want)
		}
		l, _ := f.service.GetLedger(ctx, admin, f.cycle.ID)
		if l.PaidCount != 0 || l.CompletionPercentage != 0 {
			t.Errorf("reverse %d: expected nothing paid, got count=%d pct=%d", i, l.PaidCount, l.CompletionPercentage)
		}
		if l.Entries[2].Status != models.PaymentPending || !l.Entries[2].PaidAt.IsZero() {
			t.Errorf("reverse %d: expected pending entry without date, got %+v", i, l.Entries[2])
		}
	}

	existed, err := f.service.ReversePayment(ctx, admin, f.cycle.ID, f.members[3].ID)
	if err != nil || existed {
		t.Errorf("expected no-op for unrecorded payment, got existed=%v err=%v", existed, err)
	}
}

func TestCompletionPercentage_NonDecreasing(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	prev := 0
	for i := range f.members {
		f.pay(t, admin, i, 250)
		l, err := f.service.GetLedger(ctx, admin, f.cycle.ID)
		if err != nil {
			t.Fatalf("GetLedger failed: %v", err)
		}
		if l.CompletionPercentage < prev {
			t.Fatalf("percentage decreased from %d to %d", prev, l.CompletionPercentage)
		}
		prev = l.CompletionPercentage
	}
	if prev != 100 {
		t.Errorf("Expected 100%% when all paid, got %d%%", prev)
	}
}

func TestSendReminders(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.pay(t, admin, 0, 250)
	f.pay(t, admin, 1, 250)

	if _, err := f.service.SendReminders(ctx, plain, f.cycle.ID); !errs.Is(err, errs.KindAuthorization) {
		t.Fatalf("expected plain member to be denied, got %v", err)
	}

	result, err := f.service.SendReminders(ctx, recipient, f.cycle.ID)
	if err != nil {
		t.Fatalf("SendReminders failed: %v", err)
	}
	if len(result.Sent) != 2 || len(result.Failed) != 0 || len(f.notifier.sent) != 2 {
		t.Fatalf("Expected 2 reminders sent, got %d sent, %d failed (notifier saw %d)",
			len(result.Sent), len(result.Failed), len(f.notifier.sent))
	}
	for _, r := range result.Sent {
		if r.Amount != 250 || r.CycleNumber != 1 || r.GroupName != "Savings Circle" {
			t.Errorf("unexpected reminder: %+v", r)
		}
	}

	f.notifier.err = errors.New("smtp down")
	if _, err := f.service.SendReminders(ctx, admin, f.cycle.ID); !errs.Is(err, errs.KindUpstream) {
		t.Errorf("expected upstream error, got %v", err)
	}
}

func TestSendReminders_PartialFailure(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.pay(t, admin, 0, 250)
	f.pay(t, admin, 1, 250)

	pending := f.members[2].ID
	f.notifier.failFor = map[string]bool{pending: true}

	result, err := f.service.SendReminders(ctx, admin, f.cycle.ID)
	if err != nil {
		t.Fatalf("partial failure should not be an error, got %v", err)
	}
	if len(result.Sent) != 1 || len(result.Failed) != 1 {
		t.Fatalf("Expected 1 sent and 1 failed, got %d sent, %d failed", len(result.Sent), len(result.Failed))
	}
	if result.Failed[0].MemberID != pending {
		t.Errorf("failed reminder = %s, want %s", result.Failed[0].MemberID, pending)
	}
	if result.Sent[0].MemberID == pending {
		t.Errorf("failed member also reported as sent")
	}
}

func TestSendReminders_CompletedCycle(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	if ok, err := f.store.UpdateCycleStatus(ctx, f.cycle.ID, models.CycleActive, models.CycleCompleted); err != nil || !ok {
		t.Fatalf("complete failed: ok=%v err=%v", ok, err)
	}

	_, err := f.service.SendReminders(ctx, admin, f.cycle.ID)
	if !errs.Is(err, errs.KindState) {
		t.Errorf("expected state error, got %v", err)
	}
}

func TestGroupReport(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.pay(t, admin, 0, 250)
	f.pay(t, admin, 1, 250)

	r, err := f.service.GroupReport(ctx, plain, f.group.ID)
	if err != nil {
		t.Fatalf("GroupReport failed: %v", err)
	}
	if r.TotalCollected != 500 {
		t.Errorf("Expected 500 collected, got %v", r.TotalCollected)
	}
	if len(r.Cycles) != 1 || r.Cycles[0].CompletionPercentage != 50 {
		t.Errorf("unexpected cycles: %+v", r.Cycles)
	}
	if len(r.Members) != 4 || r.Members[0].Received != 1 {
		t.Errorf("unexpected members: %+v", r.Members)
	}

	if _, err := f.service.GroupReport(ctx, stranger, f.group.ID); !errs.Is(err, errs.KindAuthorization) {
		t.Errorf("expected authorization error, got %v", err)
	}
}
