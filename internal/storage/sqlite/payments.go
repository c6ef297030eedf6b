package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tontine/internal/models"
	"github.com/mmynk/tontine/internal/storage"
)

const paymentColumns = `p.id, p.cycle_id, p.member_id, p.amount, p.status, p.paid_at, p.updated_at`

// ListPayments retrieves the payments recorded for a cycle.
func (s *SQLiteStore) ListPayments(ctx context.Context, cycleID string) ([]*models.Payment, error) {
	return s.queryPayments(ctx,
		`SELECT `+paymentColumns+` FROM payments p WHERE p.cycle_id = ? ORDER BY p.updated_at, p.id`,
		cycleID,
	)
}

// ListPaymentsByGroup retrieves the payments of every cycle of a group.
func (s *SQLiteStore) ListPaymentsByGroup(ctx context.Context, groupID string) ([]*models.Payment, error) {
	return s.queryPayments(ctx,
		`SELECT `+paymentColumns+` FROM payments p
		 JOIN cycles c ON c.id = p.cycle_id
		 WHERE c.group_id = ?
		 ORDER BY c.cycle_number, p.updated_at, p.id`,
		groupID,
	)
}

// UpsertPayment inserts a payment or overwrites the existing one for the same cycle and member.
func (s *SQLiteStore) UpsertPayment(ctx context.Context, payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	payment.UpdatedAt = time.Now().Unix()

	var groupID string
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, "SELECT group_id FROM cycles WHERE id = ?", payment.CycleID).Scan(&groupID)
		if err == sql.ErrNoRows {
			return fmt.Errorf("cycle %s: %w", payment.CycleID, storage.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to get cycle: %w", err)
		}

		// The existing row keeps its ID
		err = tx.QueryRowContext(ctx,
			`INSERT INTO payments (id, cycle_id, member_id, amount, status, paid_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT (cycle_id, member_id) DO UPDATE SET
			     amount = excluded.amount,
			     status = excluded.status,
			     paid_at = excluded.paid_at,
			     updated_at = excluded.updated_at
			 RETURNING id`,
			payment.ID, payment.CycleID, payment.MemberID, payment.Amount,
			string(payment.Status), formatDate(payment.PaidAt), payment.UpdatedAt,
		).Scan(&payment.ID)
		if err != nil {
			return fmt.Errorf("failed to upsert payment: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(storage.TablePayments, groupID, payment.ID)
	return nil
}

// ReversePayment sets a payment back to pending and clears its date.
func (s *SQLiteStore) ReversePayment(ctx context.Context, cycleID, memberID string) (bool, error) {
	var paymentID, groupID string
	err := s.db.QueryRowContext(ctx,
		`UPDATE payments SET status = 'pending', paid_at = '', updated_at = ?
		 WHERE cycle_id = ? AND member_id = ?
		 RETURNING id, (SELECT group_id FROM cycles WHERE cycles.id = payments.cycle_id)`,
		time.Now().Unix(), cycleID, memberID,
	).Scan(&paymentID, &groupID)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to reverse payment: %w", err)
	}

	s.publish(storage.TablePayments, groupID, paymentID)
	return true, nil
}

func (s *SQLiteStore) queryPayments(ctx context.Context, query string, args ...any) ([]*models.Payment, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		payment := &models.Payment{}
		var status, paidAt string
		if err := rows.Scan(&payment.ID, &payment.CycleID, &payment.MemberID, &payment.Amount,
			&status, &paidAt, &payment.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payment.Status = models.PaymentStatus(status)
		if payment.PaidAt, err = parseDate(paidAt); err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}
