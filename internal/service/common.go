// Package service implements the tontine.v1 Connect services on top of the
// domain packages.
package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/tontine/internal/errs"
	"github.com/mmynk/tontine/internal/ledger"
	"github.com/mmynk/tontine/internal/models"
	"github.com/mmynk/tontine/internal/validate"
	pb "github.com/mmynk/tontine/pkg/proto"
)

// Messages shown to callers for errors whose detail stays in the log.
const (
	msgRefresh     = "action could not be completed, please refresh"
	msgDenied      = "permission denied"
	msgUnavailable = "service temporarily unavailable, please retry"
)

// toConnectError maps a domain error to a Connect error. Only validation
// errors carry their detail to the caller.
func toConnectError(method string, err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	switch errs.KindOf(err) {
	case errs.KindValidation:
		var e *errs.Error
		errors.As(err, &e)
		msg := e.Msg
		if e.Field != "" {
			msg = fmt.Sprintf("%s: %s", e.Field, e.Msg)
		}
		return connect.NewError(connect.CodeInvalidArgument, errors.New(msg))
	case errs.KindNotFound:
		slog.Info(method+" target not found", "error", err)
		return connect.NewError(connect.CodeNotFound, errors.New(msgRefresh))
	case errs.KindState:
		slog.Info(method+" rejected", "error", err)
		return connect.NewError(connect.CodeFailedPrecondition, errors.New(msgRefresh))
	case errs.KindAuthorization:
		return connect.NewError(connect.CodePermissionDenied, errors.New(msgDenied))
	case errs.KindUpstream:
		slog.Error(method+" failed", "error", err)
		return connect.NewError(connect.CodeUnavailable, errors.New(msgUnavailable))
	default:
		slog.Error(method+" failed", "error", err)
		return connect.NewError(connect.CodeInternal, errors.New("internal error"))
	}
}

func toProtoGroup(g *models.Group) *pb.Group {
	return &pb.Group{
		Id:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Amount:      g.Amount,
		Frequency:   string(g.Frequency),
		StartDate:   validate.FormatDate(g.StartDate),
		EndDate:     validate.FormatDate(g.EndDate),
		CreatedBy:   g.CreatedBy,
		CreatedAt:   timestamp(g.CreatedAt),
	}
}

func toProtoMember(m *models.Member) *pb.Member {
	return &pb.Member{
		Id:        m.ID,
		GroupId:   m.GroupID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Active:    m.Active,
		CreatedAt: timestamp(m.CreatedAt),
	}
}

func toProtoCycle(c *models.Cycle) *pb.Cycle {
	return &pb.Cycle{
		Id:                c.ID,
		GroupId:           c.GroupID,
		CycleNumber:       int32(c.Number),
		StartDate:         validate.FormatDate(c.StartDate),
		EndDate:           validate.FormatDate(c.EndDate),
		Status:            string(c.Status),
		RecipientMemberId: c.RecipientID,
		CreatedAt:         timestamp(c.CreatedAt),
	}
}

func toProtoPayment(p *models.Payment) *pb.Payment {
	return &pb.Payment{
		Id:          p.ID,
		CycleId:     p.CycleID,
		MemberId:    p.MemberID,
		Amount:      p.Amount,
		Status:      string(p.Status),
		PaymentDate: validate.FormatDate(p.PaidAt),
		UpdatedAt:   timestamp(p.UpdatedAt),
	}
}

func toProtoLedger(l *ledger.Ledger) *pb.Ledger {
	entries := make([]*pb.LedgerEntry, len(l.Entries))
	for i, e := range l.Entries {
		entries[i] = &pb.LedgerEntry{
			PaymentId:   e.PaymentID,
			MemberId:    e.MemberID,
			MemberName:  e.MemberName,
			MemberEmail: e.MemberEmail,
			MemberPhone: e.MemberPhone,
			Status:      string(e.Status),
			Amount:      e.Amount,
			PaymentDate: validate.FormatDate(e.PaidAt),
			Recorded:    e.Recorded,
		}
	}
	return &pb.Ledger{
		CycleId:              l.CycleID,
		CycleNumber:          int32(l.CycleNumber),
		CycleStatus:          string(l.CycleStatus),
		GroupId:              l.GroupID,
		Entries:              entries,
		TotalExpected:        l.TotalExpected,
		TotalCollected:       l.TotalCollected,
		Outstanding:          l.Outstanding(),
		CompletionPercentage: int32(l.CompletionPercentage),
		PaidCount:            int32(l.PaidCount),
		MemberCount:          int32(l.MemberCount),
	}
}

func toProtoReport(r *ledger.Report) *pb.GroupReport {
	out := &pb.GroupReport{
		GroupId:         r.GroupID,
		TotalCollected:  r.TotalCollected,
		CompletedCycles: int32(r.CompletedCycles),
		Cycles:          make([]*pb.CycleSummary, len(r.Cycles)),
		Members:         make([]*pb.MemberTotal, len(r.Members)),
	}
	for i, c := range r.Cycles {
		out.Cycles[i] = &pb.CycleSummary{
			CycleId:              c.CycleID,
			CycleNumber:          int32(c.Number),
			Status:               string(c.Status),
			RecipientMemberId:    c.RecipientID,
			TotalCollected:       c.TotalCollected,
			CompletionPercentage: int32(c.CompletionPercentage),
			PaidCount:            int32(c.PaidCount),
			MemberCount:          int32(c.MemberCount),
		}
	}
	for i, m := range r.Members {
		out.Members[i] = &pb.MemberTotal{
			MemberId:       m.MemberID,
			Name:           m.Name,
			Active:         m.Active,
			TotalPaid:      m.TotalPaid,
			PaidCycles:     int32(m.PaidCycles),
			CyclesReceived: int32(m.Received),
		}
	}
	return out
}

// timestamp converts a unix-seconds value. Zero stays unset.
func timestamp(unix int64) *timestamppb.Timestamp {
	if unix == 0 {
		return nil
	}
	return timestamppb.New(time.Unix(unix, 0))
}
