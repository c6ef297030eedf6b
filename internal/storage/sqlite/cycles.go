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

const cycleColumns = `id, group_id, cycle_number, start_date, end_date, status, recipient_id, created_at`

// CreateCycle numbers and persists a new cycle, optionally updating the group amount.
func (s *SQLiteStore) CreateCycle(ctx context.Context, cycle *models.Cycle, newAmount float64) error {
	if cycle.ID == "" {
		cycle.ID = uuid.New().String()
	}
	if cycle.CreatedAt == 0 {
		cycle.CreatedAt = time.Now().Unix()
	}
	if cycle.Status == "" {
		cycle.Status = models.CycleUpcoming
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var groupStart string
		err := tx.QueryRowContext(ctx, "SELECT start_date FROM groups WHERE id = ?", cycle.GroupID).Scan(&groupStart)
		if err == sql.ErrNoRows {
			return fmt.Errorf("group %s: %w", cycle.GroupID, storage.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to get group: %w", err)
		}

		// Highest existing cycle, if any
		var lastNumber int
		var lastEnd string
		err = tx.QueryRowContext(ctx,
			"SELECT cycle_number, end_date FROM cycles WHERE group_id = ? ORDER BY cycle_number DESC LIMIT 1",
			cycle.GroupID,
		).Scan(&lastNumber, &lastEnd)
		if err != nil && err != sql.ErrNoRows {
			return fmt.Errorf("failed to get last cycle: %w", err)
		}

		cycle.Number = lastNumber + 1
		if cycle.StartDate.IsZero() {
			start := groupStart
			if lastEnd != "" {
				start = lastEnd
			}
			if cycle.StartDate, err = parseDate(start); err != nil {
				return err
			}
		}

		if newAmount > 0 {
			if _, err := tx.ExecContext(ctx, "UPDATE groups SET amount = ? WHERE id = ?", newAmount, cycle.GroupID); err != nil {
				return fmt.Errorf("failed to update group amount: %w", err)
			}
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO cycles (`+cycleColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			cycle.ID, cycle.GroupID, cycle.Number, formatDate(cycle.StartDate), formatDate(cycle.EndDate),
			string(cycle.Status), nullString(cycle.RecipientID), cycle.CreatedAt,
		)
		if isUniqueViolation(err) {
			return fmt.Errorf("cycle %d in group %s: %w", cycle.Number, cycle.GroupID, storage.ErrDuplicate)
		}
		if err != nil {
			return fmt.Errorf("failed to insert cycle: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if newAmount > 0 {
		s.publish(storage.TableGroups, cycle.GroupID, cycle.GroupID)
	}
	s.publish(storage.TableCycles, cycle.GroupID, cycle.ID)
	return nil
}

// GetCycle retrieves a cycle by ID.
func (s *SQLiteStore) GetCycle(ctx context.Context, cycleID string) (*models.Cycle, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+cycleColumns+` FROM cycles WHERE id = ?`, cycleID)
	return getCycle(row, "cycle "+cycleID)
}

// GetCycleByNumber retrieves the cycle of a group with the given number.
func (s *SQLiteStore) GetCycleByNumber(ctx context.Context, groupID string, number int) (*models.Cycle, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+cycleColumns+` FROM cycles WHERE group_id = ? AND cycle_number = ?`,
		groupID, number,
	)
	return getCycle(row, fmt.Sprintf("cycle %d of group %s", number, groupID))
}

// GetActiveCycle retrieves the active cycle of a group.
func (s *SQLiteStore) GetActiveCycle(ctx context.Context, groupID string) (*models.Cycle, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+cycleColumns+` FROM cycles WHERE group_id = ? AND status = 'active'`,
		groupID,
	)
	return getCycle(row, "active cycle of group "+groupID)
}

// ListCycles retrieves all cycles of a group ordered by number.
func (s *SQLiteStore) ListCycles(ctx context.Context, groupID string) ([]*models.Cycle, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+cycleColumns+` FROM cycles WHERE group_id = ? ORDER BY cycle_number`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list cycles: %w", err)
	}
	defer rows.Close()

	var cycles []*models.Cycle
	for rows.Next() {
		cycle, err := scanCycle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cycle: %w", err)
		}
		cycles = append(cycles, cycle)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cycles: %w", err)
	}

	return cycles, nil
}

// UpdateCycleStatus performs a compare-and-set on a cycle's status.
func (s *SQLiteStore) UpdateCycleStatus(ctx context.Context, cycleID string, from, to models.CycleStatus) (bool, error) {
	query := `UPDATE cycles SET status = ? WHERE id = ? AND status = ?`
	if to == models.CycleActive {
		query += ` AND NOT EXISTS (
			SELECT 1 FROM cycles AS other
			WHERE other.group_id = cycles.group_id AND other.status = 'active')`
	}
	query += ` RETURNING group_id`

	var groupID string
	err := s.db.QueryRowContext(ctx, query, string(to), cycleID, string(from)).Scan(&groupID)
	if err == sql.ErrNoRows || isUniqueViolation(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to update cycle status: %w", err)
	}

	s.publish(storage.TableCycles, groupID, cycleID)
	return true, nil
}

func getCycle(row *sql.Row, what string) (*models.Cycle, error) {
	cycle, err := scanCycle(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%s: %w", what, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cycle: %w", err)
	}
	return cycle, nil
}

func scanCycle(row rowScanner) (*models.Cycle, error) {
	cycle := &models.Cycle{}
	var startDate, endDate, status string
	var recipient sql.NullString
	if err := row.Scan(&cycle.ID, &cycle.GroupID, &cycle.Number, &startDate, &endDate,
		&status, &recipient, &cycle.CreatedAt); err != nil {
		return nil, err
	}

	var err error
	if cycle.Status, err = models.ParseCycleStatus(status); err != nil {
		return nil, err
	}
	if cycle.StartDate, err = parseDate(startDate); err != nil {
		return nil, err
	}
	if cycle.EndDate, err = parseDate(endDate); err != nil {
		return nil, err
	}
	if recipient.Valid {
		cycle.RecipientID = recipient.String
	}
	return cycle, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
