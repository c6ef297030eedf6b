package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tontine/internal/lifecycle"
	"github.com/mmynk/tontine/internal/middleware"
	"github.com/mmynk/tontine/internal/validate"
	pb "github.com/mmynk/tontine/pkg/proto"
	"github.com/mmynk/tontine/pkg/proto/protoconnect"
)

// CycleService implements the Connect CycleService.
type CycleService struct {
	manager *lifecycle.Manager
}

var _ protoconnect.CycleServiceHandler = (*CycleService)(nil)

// NewCycleService creates a CycleService backed by manager.
func NewCycleService(manager *lifecycle.Manager) *CycleService {
	return &CycleService{manager: manager}
}

// CreateCycle appends an upcoming cycle to a group's schedule.
func (s *CycleService) CreateCycle(ctx context.Context, req *connect.Request[pb.CreateCycleRequest]) (*connect.Response[pb.CreateCycleResponse], error) {
	const op = "CycleService.CreateCycle"
	slog.Info("CreateCycle request received",
		"group_id", req.Msg.GroupId,
		"recipient_member_id", req.Msg.RecipientMemberId,
		"payout_date", req.Msg.PayoutDate,
	)

	if err := validate.Fields(op,
		validate.F("group_id", req.Msg.GroupId, "required"),
		validate.F("recipient_member_id", req.Msg.RecipientMemberId, "required"),
		validate.F("payout_date", req.Msg.PayoutDate, "date"),
		validate.F("amount", req.Msg.Amount, "omitnil,gt=0"),
	); err != nil {
		return nil, toConnectError("CreateCycle", err)
	}
	payout, err := validate.ParseDate(op, "payout_date", req.Msg.PayoutDate)
	if err != nil {
		return nil, toConnectError("CreateCycle", err)
	}

	cycle, err := s.manager.CreateCycle(ctx, middleware.GetCaller(ctx), lifecycle.CreateCycleParams{
		GroupID:        req.Msg.GroupId,
		RecipientID:    req.Msg.RecipientMemberId,
		PayoutDate:     payout,
		AmountOverride: req.Msg.Amount,
	})
	if err != nil {
		return nil, toConnectError("CreateCycle", err)
	}

	return connect.NewResponse(&pb.CreateCycleResponse{Cycle: toProtoCycle(cycle)}), nil
}

// GetCycle retrieves one cycle.
func (s *CycleService) GetCycle(ctx context.Context, req *connect.Request[pb.GetCycleRequest]) (*connect.Response[pb.GetCycleResponse], error) {
	slog.Info("GetCycle request received", "cycle_id", req.Msg.CycleId)

	if err := validate.Fields("CycleService.GetCycle", validate.F("cycle_id", req.Msg.CycleId, "required")); err != nil {
		return nil, toConnectError("GetCycle", err)
	}
	cycle, err := s.manager.GetCycle(ctx, middleware.GetCaller(ctx), req.Msg.CycleId)
	if err != nil {
		return nil, toConnectError("GetCycle", err)
	}

	return connect.NewResponse(&pb.GetCycleResponse{Cycle: toProtoCycle(cycle)}), nil
}

// ListCycles returns a group's cycles ordered by number.
func (s *CycleService) ListCycles(ctx context.Context, req *connect.Request[pb.ListCyclesRequest]) (*connect.Response[pb.ListCyclesResponse], error) {
	slog.Info("ListCycles request received", "group_id", req.Msg.GroupId)

	if err := validate.Fields("CycleService.ListCycles", validate.F("group_id", req.Msg.GroupId, "required")); err != nil {
		return nil, toConnectError("ListCycles", err)
	}
	cycles, err := s.manager.ListCycles(ctx, middleware.GetCaller(ctx), req.Msg.GroupId)
	if err != nil {
		return nil, toConnectError("ListCycles", err)
	}

	out := make([]*pb.Cycle, len(cycles))
	for i, c := range cycles {
		out[i] = toProtoCycle(c)
	}

	slog.Info("ListCycles successful", "group_id", req.Msg.GroupId, "count", len(cycles))

	return connect.NewResponse(&pb.ListCyclesResponse{Cycles: out}), nil
}

// ActivateCycle moves an upcoming cycle to active.
func (s *CycleService) ActivateCycle(ctx context.Context, req *connect.Request[pb.ActivateCycleRequest]) (*connect.Response[pb.ActivateCycleResponse], error) {
	slog.Info("ActivateCycle request received", "cycle_id", req.Msg.CycleId)

	if err := validate.Fields("CycleService.ActivateCycle", validate.F("cycle_id", req.Msg.CycleId, "required")); err != nil {
		return nil, toConnectError("ActivateCycle", err)
	}
	cycle, err := s.manager.ActivateCycle(ctx, middleware.GetCaller(ctx), req.Msg.CycleId)
	if err != nil {
		return nil, toConnectError("ActivateCycle", err)
	}

	return connect.NewResponse(&pb.ActivateCycleResponse{Cycle: toProtoCycle(cycle)}), nil
}

// CompleteCycle completes the active cycle and activates the next one if
// it exists.
func (s *CycleService) CompleteCycle(ctx context.Context, req *connect.Request[pb.CompleteCycleRequest]) (*connect.Response[pb.CompleteCycleResponse], error) {
	slog.Info("CompleteCycle request received", "cycle_id", req.Msg.CycleId)

	if err := validate.Fields("CycleService.CompleteCycle", validate.F("cycle_id", req.Msg.CycleId, "required")); err != nil {
		return nil, toConnectError("CompleteCycle", err)
	}
	result, err := s.manager.CompleteCycle(ctx, middleware.GetCaller(ctx), req.Msg.CycleId)
	if err != nil {
		return nil, toConnectError("CompleteCycle", err)
	}

	resp := &pb.CompleteCycleResponse{
		Completed:         toProtoCycle(result.Completed),
		NextMissingReason: result.NextMissingReason,
	}
	if result.ActivatedNext != nil {
		resp.ActivatedNext = toProtoCycle(result.ActivatedNext)
	}

	return connect.NewResponse(resp), nil
}
