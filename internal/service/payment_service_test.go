package service

import (
	"context"
	"strings"
	"testing"

	"connectrpc.com/connect"

	pb "github.com/mmynk/tontine/pkg/proto"
)

func (f *fixture) record(t *testing.T, c testClients, cycleID string, member int, amount float64) {
	t.Helper()
	_, err := c.payments.RecordPayment(context.Background(), connect.NewRequest(&pb.RecordPaymentRequest{
		CycleId:     cycleID,
		MemberId:    f.members[member].Id,
		Amount:      amount,
		PaymentDate: "2026-01-20",
	}))
	if err != nil {
		t.Fatalf("RecordPayment failed: %v", err)
	}
}

func TestLedger_ThreeOfFourPaid(t *testing.T) {
	f := setupFixture(t)
	cycle := f.createCycle(t, 0, "2026-02-01")
	f.activate(t, cycle.Id)

	f.record(t, f.admin, cycle.Id, 1, 250)
	f.record(t, f.recipient, cycle.Id, 2, 250)
	f.record(t, f.admin, cycle.Id, 3, 250)

	resp, err := f.member.payments.GetLedger(context.Background(), connect.NewRequest(&pb.GetLedgerRequest{CycleId: cycle.Id}))
	if err != nil {
		t.Fatalf("GetLedger failed: %v", err)
	}
	l := resp.Msg.Ledger

	if l.PaidCount != 3 || l.MemberCount != 4 {
		t.Errorf("paid %d of %d, want 3 of 4", l.PaidCount, l.MemberCount)
	}
	if l.TotalExpected != 1000 || l.TotalCollected != 750 || l.Outstanding != 250 {
		t.Errorf("unexpected totals: %+v", l)
	}
	if l.CompletionPercentage != 75 {
		t.Errorf("CompletionPercentage = %d, want 75", l.CompletionPercentage)
	}

	pending := l.Entries[0]
	if pending.Recorded || !strings.HasPrefix(pending.PaymentId, "pending-") || pending.Amount != 250 {
		t.Errorf("unexpected synthesized entry: %+v", pending)
	}
	if l.Entries[1].PaymentDate != "2026-01-20" {
		t.Errorf("PaymentDate = %q", l.Entries[1].PaymentDate)
	}
}

func TestRecordPayment_Permissions(t *testing.T) {
	f := setupFixture(t)
	cycle := f.createCycle(t, 0, "2026-02-01")
	f.activate(t, cycle.Id)
	ctx := context.Background()

	tests := []struct {
		name    string
		clients testClients
		req     *pb.RecordPaymentRequest
		code    connect.Code
	}{
		{"member denied", f.member, &pb.RecordPaymentRequest{CycleId: cycle.Id, MemberId: f.members[1].Id, Amount: 250, PaymentDate: "2026-01-20"}, connect.CodePermissionDenied},
		{"stranger denied", f.stranger, &pb.RecordPaymentRequest{CycleId: cycle.Id, MemberId: f.members[1].Id, Amount: 250, PaymentDate: "2026-01-20"}, connect.CodePermissionDenied},
		{"zero amount", f.admin, &pb.RecordPaymentRequest{CycleId: cycle.Id, MemberId: f.members[1].Id, Amount: 0, PaymentDate: "2026-01-20"}, connect.CodeInvalidArgument},
		{"bad date", f.admin, &pb.RecordPaymentRequest{CycleId: cycle.Id, MemberId: f.members[1].Id, Amount: 250, PaymentDate: "yesterday"}, connect.CodeInvalidArgument},
		{"unknown cycle", f.admin, &pb.RecordPaymentRequest{CycleId: "missing", MemberId: f.members[1].Id, Amount: 250, PaymentDate: "2026-01-20"}, connect.CodeNotFound},
		{"missing member", f.admin, &pb.RecordPaymentRequest{CycleId: cycle.Id, Amount: 250, PaymentDate: "2026-01-20"}, connect.CodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.clients.payments.RecordPayment(ctx, connect.NewRequest(tt.req))
			assertCode(t, err, tt.code)
		})
	}
}

func TestRecipientLosesRecordRightAfterCompletion(t *testing.T) {
	f := setupFixture(t)
	first := f.createCycle(t, 0, "2026-02-01")
	f.createCycle(t, 1, "2026-03-01")
	f.activate(t, first.Id)
	ctx := context.Background()

	f.record(t, f.recipient, first.Id, 2, 250)

	if _, err := f.admin.cycles.CompleteCycle(ctx, connect.NewRequest(&pb.CompleteCycleRequest{CycleId: first.Id})); err != nil {
		t.Fatalf("CompleteCycle failed: %v", err)
	}

	// m1 is no longer the active recipient; m2 now is
	_, err := f.recipient.payments.RecordPayment(ctx, connect.NewRequest(&pb.RecordPaymentRequest{
		CycleId: first.Id, MemberId: f.members[3].Id, Amount: 250, PaymentDate: "2026-01-21",
	}))
	assertCode(t, err, connect.CodePermissionDenied)

	f.record(t, f.member, first.Id, 3, 250)
}

func TestReversePayment(t *testing.T) {
	f := setupFixture(t)
	cycle := f.createCycle(t, 0, "2026-02-01")
	f.activate(t, cycle.Id)
	ctx := context.Background()
	f.record(t, f.admin, cycle.Id, 1, 250)

	req := &pb.ReversePaymentRequest{CycleId: cycle.Id, MemberId: f.members[1].Id}

	_, err := f.recipient.payments.ReversePayment(ctx, connect.NewRequest(req))
	assertCode(t, err, connect.CodePermissionDenied)

	for i := 0; i < 2; i++ {
		if _, err := f.admin.payments.ReversePayment(ctx, connect.NewRequest(req)); err != nil {
			t.Fatalf("ReversePayment %d failed: %v", i, err)
		}
		resp, _ := f.admin.payments.GetLedger(ctx, connect.NewRequest(&pb.GetLedgerRequest{CycleId: cycle.Id}))
		e := resp.Msg.Ledger.Entries[1]
		if e.Status != "pending" || e.PaymentDate != "" || resp.Msg.Ledger.CompletionPercentage != 0 {
			t.Errorf("reverse %d: unexpected entry %+v", i, e)
		}
	}

	resp, err := f.admin.payments.ReversePayment(ctx, connect.NewRequest(&pb.ReversePaymentRequest{CycleId: cycle.Id, MemberId: f.members[3].Id}))
	if err != nil {
		t.Fatalf("ReversePayment failed: %v", err)
	}
	if resp.Msg.Reversed {
		t.Error("expected no-op for unrecorded payment")
	}
}

func TestSendReminders(t *testing.T) {
	f := setupFixture(t)
	cycle := f.createCycle(t, 0, "2026-02-01")
	f.activate(t, cycle.Id)
	ctx := context.Background()
	f.record(t, f.admin, cycle.Id, 0, 250)

	_, err := f.member.payments.SendReminders(ctx, connect.NewRequest(&pb.SendRemindersRequest{CycleId: cycle.Id}))
	assertCode(t, err, connect.CodePermissionDenied)

	resp, err := f.recipient.payments.SendReminders(ctx, connect.NewRequest(&pb.SendRemindersRequest{CycleId: cycle.Id}))
	if err != nil {
		t.Fatalf("SendReminders failed: %v", err)
	}
	if resp.Msg.Sent != 3 || len(f.env.notifier.sent) != 3 {
		t.Errorf("expected 3 reminders, got %d (notifier saw %d)", resp.Msg.Sent, len(f.env.notifier.sent))
	}
	for _, id := range resp.Msg.MemberIds {
		if id == f.members[0].Id {
			t.Error("paid member should not be reminded")
		}
	}
	if len(resp.Msg.FailedMemberIds) != 0 {
		t.Errorf("expected no failures, got %v", resp.Msg.FailedMemberIds)
	}
}

func TestSendReminders_PartialFailure(t *testing.T) {
	f := setupFixture(t)
	cycle := f.createCycle(t, 0, "2026-02-01")
	f.activate(t, cycle.Id)
	ctx := context.Background()
	f.record(t, f.admin, cycle.Id, 0, 250)
	f.env.notifier.bounce = map[string]bool{f.members[2].Email: true}

	resp, err := f.admin.payments.SendReminders(ctx, connect.NewRequest(&pb.SendRemindersRequest{CycleId: cycle.Id}))
	if err != nil {
		t.Fatalf("SendReminders failed: %v", err)
	}
	if resp.Msg.Sent != 2 || len(resp.Msg.MemberIds) != 2 {
		t.Errorf("expected 2 reminders sent, got %d %v", resp.Msg.Sent, resp.Msg.MemberIds)
	}
	if len(resp.Msg.FailedMemberIds) != 1 || resp.Msg.FailedMemberIds[0] != f.members[2].Id {
		t.Errorf("FailedMemberIds = %v, want [%s]", resp.Msg.FailedMemberIds, f.members[2].Id)
	}
	for _, id := range resp.Msg.MemberIds {
		if id == f.members[2].Id {
			t.Error("bounced member reported as sent")
		}
	}
}

func TestSendReminders_AllFailed(t *testing.T) {
	f := setupFixture(t)
	cycle := f.createCycle(t, 0, "2026-02-01")
	f.activate(t, cycle.Id)
	f.env.notifier.bounce = map[string]bool{}
	for _, m := range f.members {
		f.env.notifier.bounce[m.Email] = true
	}

	_, err := f.admin.payments.SendReminders(context.Background(), connect.NewRequest(&pb.SendRemindersRequest{CycleId: cycle.Id}))
	assertCode(t, err, connect.CodeUnavailable)
}

func TestPaymentService_RequiresIDs(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	_, err := f.admin.payments.GetLedger(ctx, connect.NewRequest(&pb.GetLedgerRequest{}))
	assertInvalidField(t, err, "cycle_id")

	_, err = f.admin.payments.ReversePayment(ctx, connect.NewRequest(&pb.ReversePaymentRequest{CycleId: "c1"}))
	assertInvalidField(t, err, "member_id")

	_, err = f.admin.payments.SendReminders(ctx, connect.NewRequest(&pb.SendRemindersRequest{}))
	assertInvalidField(t, err, "cycle_id")

	_, err = f.admin.payments.GetGroupReport(ctx, connect.NewRequest(&pb.GetGroupReportRequest{}))
	assertInvalidField(t, err, "group_id")
}

func TestGetGroupReport(t *testing.T) {
	f := setupFixture(t)
	first := f.createCycle(t, 0, "2026-02-01")
	f.createCycle(t, 1, "2026-03-01")
	f.activate(t, first.Id)
	ctx := context.Background()

	for i := range f.members {
		f.record(t, f.admin, first.Id, i, 250)
	}
	if _, err := f.admin.cycles.CompleteCycle(ctx, connect.NewRequest(&pb.CompleteCycleRequest{CycleId: first.Id})); err != nil {
		t.Fatalf("CompleteCycle failed: %v", err)
	}

	resp, err := f.member.payments.GetGroupReport(ctx, connect.NewRequest(&pb.GetGroupReportRequest{GroupId: f.group.Id}))
	if err != nil {
		t.Fatalf("GetGroupReport failed: %v", err)
	}
	r := resp.Msg.Report

	if r.TotalCollected != 1000 || r.CompletedCycles != 1 {
		t.Errorf("unexpected totals: %+v", r)
	}
	if len(r.Cycles) != 2 || r.Cycles[0].CompletionPercentage != 100 || r.Cycles[1].CompletionPercentage != 0 {
		t.Errorf("unexpected cycles: %+v", r.Cycles)
	}
	if r.Members[0].CyclesReceived != 1 || r.Members[1].CyclesReceived != 1 || r.Members[0].TotalPaid != 250 {
		t.Errorf("unexpected members: %+v", r.Members)
	}
}
