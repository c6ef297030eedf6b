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

const groupColumns = `id, name, description, amount, frequency, start_date, end_date, created_by, created_at`

// CreateGroup persists a new group to the database.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	// Generate ID if not set
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO groups (`+groupColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		group.ID, group.Name, group.Description, group.Amount, string(group.Frequency),
		formatDate(group.StartDate), formatDate(group.EndDate), group.CreatedBy, group.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}

	s.publish(storage.TableGroups, group.ID, group.ID)
	return nil
}

// GetGroup retrieves a group by ID.
func (s *SQLiteStore) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+groupColumns+` FROM groups WHERE id = ?`, groupID)
	group, err := scanGroup(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("group %s: %w", groupID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return group, nil
}

// ListGroupsForUser retrieves the groups a user administers or belongs to.
func (s *SQLiteStore) ListGroupsForUser(ctx context.Context, userID, email string) ([]*models.Group, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+groupColumns+` FROM groups
		 WHERE created_by = ?
		    OR id IN (SELECT group_id FROM members WHERE email = ? AND email != '' AND active = 1)
		 ORDER BY created_at DESC, rowid DESC`,
		userID, email,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	return groups, nil
}

// UpdateGroup updates the mutable fields of an existing group.
func (s *SQLiteStore) UpdateGroup(ctx context.Context, group *models.Group) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE groups SET name = ?, description = ?, amount = ?, frequency = ?, start_date = ?, end_date = ?
		 WHERE id = ?`,
		group.Name, group.Description, group.Amount, string(group.Frequency),
		formatDate(group.StartDate), formatDate(group.EndDate), group.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("group %s: %w", group.ID, storage.ErrNotFound)
	}

	s.publish(storage.TableGroups, group.ID, group.ID)
	return nil
}

// DeleteGroup removes a group by ID.
func (s *SQLiteStore) DeleteGroup(ctx context.Context, groupID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM groups WHERE id = ?", groupID)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("group %s: %w", groupID, storage.ErrNotFound)
	}

	s.publish(storage.TableGroups, groupID, groupID)
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGroup(row rowScanner) (*models.Group, error) {
	group := &models.Group{}
	var frequency, startDate, endDate string
	if err := row.Scan(&group.ID, &group.Name, &group.Description, &group.Amount, &frequency,
		&startDate, &endDate, &group.CreatedBy, &group.CreatedAt); err != nil {
		return nil, err
	}

	var err error
	if group.Frequency, err = models.ParseFrequency(frequency); err != nil {
		return nil, err
	}
	if group.StartDate, err = parseDate(startDate); err != nil {
		return nil, err
	}
	if group.EndDate, err = parseDate(endDate); err != nil {
		return nil, err
	}
	return group, nil
}
