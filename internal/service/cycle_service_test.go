package service

import (
	"context"
	"sync"
	"testing"

	"connectrpc.com/connect"

	pb "github.com/mmynk/tontine/pkg/proto"
)

func TestCycleLifecycle(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	first := f.createCycle(t, 0, "2026-02-01")
	second := f.createCycle(t, 1, "2026-03-01")

	if first.CycleNumber != 1 || second.CycleNumber != 2 {
		t.Fatalf("unexpected numbering: %d, %d", first.CycleNumber, second.CycleNumber)
	}
	if first.StartDate != "2026-01-01" || second.StartDate != "2026-02-01" {
		t.Errorf("unexpected start dates: %s, %s", first.StartDate, second.StartDate)
	}
	if first.Status != "upcoming" {
		t.Errorf("Status = %q, want upcoming", first.Status)
	}

	f.activate(t, first.Id)

	// Second activation violates at-most-one-active
	_, err := f.admin.cycles.ActivateCycle(ctx, connect.NewRequest(&pb.ActivateCycleRequest{CycleId: second.Id}))
	assertCode(t, err, connect.CodeFailedPrecondition)

	resp, err := f.admin.cycles.CompleteCycle(ctx, connect.NewRequest(&pb.CompleteCycleRequest{CycleId: first.Id}))
	if err != nil {
		t.Fatalf("CompleteCycle failed: %v", err)
	}
	if resp.Msg.Completed.Status != "completed" {
		t.Errorf("Completed.Status = %q", resp.Msg.Completed.Status)
	}
	if resp.Msg.ActivatedNext == nil || resp.Msg.ActivatedNext.Id != second.Id {
		t.Fatalf("expected cycle 2 to be activated, got %+v", resp.Msg.ActivatedNext)
	}

	// Recipient of the now active cycle
	role, _ := f.member.groups.GetMyRole(ctx, connect.NewRequest(&pb.GetMyRoleRequest{GroupId: f.group.Id}))
	if role.Msg.Role != "recipient" {
		t.Errorf("Role = %q, want recipient", role.Msg.Role)
	}

	last, err := f.admin.cycles.CompleteCycle(ctx, connect.NewRequest(&pb.CompleteCycleRequest{CycleId: second.Id}))
	if err != nil {
		t.Fatalf("CompleteCycle failed: %v", err)
	}
	if last.Msg.ActivatedNext != nil || last.Msg.NextMissingReason == "" {
		t.Errorf("expected missing next cycle, got %+v", last.Msg)
	}

	_, err = f.admin.cycles.CompleteCycle(ctx, connect.NewRequest(&pb.CompleteCycleRequest{CycleId: second.Id}))
	assertCode(t, err, connect.CodeFailedPrecondition)

	list, err := f.member.cycles.ListCycles(ctx, connect.NewRequest(&pb.ListCyclesRequest{GroupId: f.group.Id}))
	if err != nil {
		t.Fatalf("ListCycles failed: %v", err)
	}
	for i, c := range list.Msg.Cycles {
		if int(c.CycleNumber) != i+1 || c.Status != "completed" {
			t.Errorf("cycle %d: %+v", i, c)
		}
	}
}

func TestCreateCycle_Errors(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	zero := 0.0

	tests := []struct {
		name    string
		clients testClients
		req     *pb.CreateCycleRequest
		code    connect.Code
	}{
		{"member denied", f.member, &pb.CreateCycleRequest{GroupId: f.group.Id, RecipientMemberId: f.members[0].Id, PayoutDate: "2026-02-01"}, connect.CodePermissionDenied},
		{"missing payout date", f.admin, &pb.CreateCycleRequest{GroupId: f.group.Id, RecipientMemberId: f.members[0].Id}, connect.CodeInvalidArgument},
		{"non-positive amount", f.admin, &pb.CreateCycleRequest{GroupId: f.group.Id, RecipientMemberId: f.members[0].Id, PayoutDate: "2026-02-01", Amount: &zero}, connect.CodeInvalidArgument},
		{"unknown recipient", f.admin, &pb.CreateCycleRequest{GroupId: f.group.Id, RecipientMemberId: "nobody", PayoutDate: "2026-02-01"}, connect.CodeInvalidArgument},
		{"unknown group", f.admin, &pb.CreateCycleRequest{GroupId: "missing", RecipientMemberId: f.members[0].Id, PayoutDate: "2026-02-01"}, connect.CodeNotFound},
		{"missing group", f.admin, &pb.CreateCycleRequest{RecipientMemberId: f.members[0].Id, PayoutDate: "2026-02-01"}, connect.CodeInvalidArgument},
		{"missing recipient", f.admin, &pb.CreateCycleRequest{GroupId: f.group.Id, PayoutDate: "2026-02-01"}, connect.CodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.clients.cycles.CreateCycle(ctx, connect.NewRequest(tt.req))
			assertCode(t, err, tt.code)
		})
	}
}

func TestCompleteCycle_Concurrent(t *testing.T) {
	f := setupFixture(t)
	first := f.createCycle(t, 0, "2026-02-01")
	f.createCycle(t, 1, "2026-03-01")
	f.activate(t, first.Id)

	const callers = 6
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.admin.cycles.CompleteCycle(context.Background(), connect.NewRequest(&pb.CompleteCycleRequest{CycleId: first.Id}))
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if succeeded != 1 {
		t.Errorf("expected exactly one successful completion, got %d", succeeded)
	}

	list, _ := f.admin.cycles.ListCycles(context.Background(), connect.NewRequest(&pb.ListCyclesRequest{GroupId: f.group.Id}))
	active := 0
	for _, c := range list.Msg.Cycles {
		if c.Status == "active" {
			active++
		}
	}
	if active != 1 {
		t.Errorf("expected exactly one active cycle, got %d", active)
	}
}

func TestCycleService_RequiresIDs(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	_, err := f.admin.cycles.GetCycle(ctx, connect.NewRequest(&pb.GetCycleRequest{}))
	assertInvalidField(t, err, "cycle_id")

	_, err = f.admin.cycles.ListCycles(ctx, connect.NewRequest(&pb.ListCyclesRequest{}))
	assertInvalidField(t, err, "group_id")

	_, err = f.admin.cycles.ActivateCycle(ctx, connect.NewRequest(&pb.ActivateCycleRequest{}))
	assertInvalidField(t, err, "cycle_id")

	_, err = f.admin.cycles.CompleteCycle(ctx, connect.NewRequest(&pb.CompleteCycleRequest{}))
	assertInvalidField(t, err, "cycle_id")
}
