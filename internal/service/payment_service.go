package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tontine/internal/ledger"
	"github.com/mmynk/tontine/internal/middleware"
	"github.com/mmynk/tontine/internal/validate"
	pb "github.com/mmynk/tontine/pkg/proto"
	"github.com/mmynk/tontine/pkg/proto/protoconnect"
)

// PaymentService implements the Connect PaymentService: ledgers, payment
// records, reminders and reports.
type PaymentService struct {
	ledger *ledger.Service
}

var _ protoconnect.PaymentServiceHandler = (*PaymentService)(nil)

// NewPaymentService creates a PaymentService backed by the ledger service.
func NewPaymentService(svc *ledger.Service) *PaymentService {
	return &PaymentService{ledger: svc}
}

// GetLedger returns the contribution state of a cycle.
func (s *PaymentService) GetLedger(ctx context.Context, req *connect.Request[pb.GetLedgerRequest]) (*connect.Response[pb.GetLedgerResponse], error) {
	slog.Info("GetLedger request received", "cycle_id", req.Msg.CycleId)

	if err := validate.Fields("PaymentService.GetLedger", validate.F("cycle_id", req.Msg.CycleId, "required")); err != nil {
		return nil, toConnectError("GetLedger", err)
	}
	l, err := s.ledger.GetLedger(ctx, middleware.GetCaller(ctx), req.Msg.CycleId)
	if err != nil {
		return nil, toConnectError("GetLedger", err)
	}

	slog.Info("GetLedger successful",
		"cycle_id", l.CycleID,
		"paid_count", l.PaidCount,
		"member_count", l.MemberCount,
		"completion_percentage", l.CompletionPercentage,
	)

	return connect.NewResponse(&pb.GetLedgerResponse{Ledger: toProtoLedger(l)}), nil
}

// RecordPayment marks a member's contribution as paid.
func (s *PaymentService) RecordPayment(ctx context.Context, req *connect.Request[pb.RecordPaymentRequest]) (*connect.Response[pb.RecordPaymentResponse], error) {
	const op = "PaymentService.RecordPayment"
	slog.Info("RecordPayment request received",
		"cycle_id", req.Msg.CycleId,
		"member_id", req.Msg.MemberId,
		"amount", req.Msg.Amount,
	)

	if err := validate.Fields(op,
		validate.F("cycle_id", req.Msg.CycleId, "required"),
		validate.F("member_id", req.Msg.MemberId, "required"),
		validate.F("amount", req.Msg.Amount, "gt=0"),
		validate.F("payment_date", req.Msg.PaymentDate, "date"),
	); err != nil {
		return nil, toConnectError("RecordPayment", err)
	}
	paidAt, err := validate.ParseDate(op, "payment_date", req.Msg.PaymentDate)
	if err != nil {
		return nil, toConnectError("RecordPayment", err)
	}

	payment, err := s.ledger.RecordPayment(ctx, middleware.GetCaller(ctx), req.Msg.CycleId, req.Msg.MemberId, req.Msg.Amount, paidAt)
	if err != nil {
		return nil, toConnectError("RecordPayment", err)
	}

	return connect.NewResponse(&pb.RecordPaymentResponse{Payment: toProtoPayment(payment)}), nil
}

// ReversePayment sets a member's contribution back to pending.
func (s *PaymentService) ReversePayment(ctx context.Context, req *connect.Request[pb.ReversePaymentRequest]) (*connect.Response[pb.ReversePaymentResponse], error) {
	slog.Info("ReversePayment request received", "cycle_id", req.Msg.CycleId, "member_id", req.Msg.MemberId)

	if err := validate.Fields("PaymentService.ReversePayment",
		validate.F("cycle_id", req.Msg.CycleId, "required"),
		validate.F("member_id", req.Msg.MemberId, "required"),
	); err != nil {
		return nil, toConnectError("ReversePayment", err)
	}
	reversed, err := s.ledger.ReversePayment(ctx, middleware.GetCaller(ctx), req.Msg.CycleId, req.Msg.MemberId)
	if err != nil {
		return nil, toConnectError("ReversePayment", err)
	}

	return connect.NewResponse(&pb.ReversePaymentResponse{Reversed: reversed}), nil
}

// SendReminders notifies every member who has not paid yet. Members whose
// reminder could not be delivered are listed separately.
func (s *PaymentService) SendReminders(ctx context.Context, req *connect.Request[pb.SendRemindersRequest]) (*connect.Response[pb.SendRemindersResponse], error) {
	slog.Info("SendReminders request received", "cycle_id", req.Msg.CycleId)

	if err := validate.Fields("PaymentService.SendReminders", validate.F("cycle_id", req.Msg.CycleId, "required")); err != nil {
		return nil, toConnectError("SendReminders", err)
	}
	result, err := s.ledger.SendReminders(ctx, middleware.GetCaller(ctx), req.Msg.CycleId)
	if err != nil {
		return nil, toConnectError("SendReminders", err)
	}

	resp := &pb.SendRemindersResponse{Sent: int32(len(result.Sent))}
	for _, r := range result.Sent {
		resp.MemberIds = append(resp.MemberIds, r.MemberID)
	}
	for _, r := range result.Failed {
		resp.FailedMemberIds = append(resp.FailedMemberIds, r.MemberID)
	}

	return connect.NewResponse(resp), nil
}

// GetGroupReport summarizes a group's cycles and member contributions.
func (s *PaymentService) GetGroupReport(ctx context.Context, req *connect.Request[pb.GetGroupReportRequest]) (*connect.Response[pb.GetGroupReportResponse], error) {
	slog.Info("GetGroupReport request received", "group_id", req.Msg.GroupId)

	if err := validate.Fields("PaymentService.GetGroupReport", validate.F("group_id", req.Msg.GroupId, "required")); err != nil {
		return nil, toConnectError("GetGroupReport", err)
	}
	r, err := s.ledger.GroupReport(ctx, middleware.GetCaller(ctx), req.Msg.GroupId)
	if err != nil {
		return nil, toConnectError("GetGroupReport", err)
	}

	return connect.NewResponse(&pb.GetGroupReportResponse{Report: toProtoReport(r)}), nil
}
