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

const memberColumns = `id, group_id, name, email, phone, active, created_at`

// CreateMember inserts a new member into the database.
func (s *SQLiteStore) CreateMember(ctx context.Context, member *models.Member) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	if member.CreatedAt == 0 {
		member.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO members (`+memberColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		member.ID, member.GroupID, member.Name, member.Email, member.Phone,
		boolToInt(member.Active), member.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("member email %q in group %s: %w", member.Email, member.GroupID, storage.ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}

	s.publish(storage.TableMembers, member.GroupID, member.ID)
	return nil
}

// GetMember retrieves a member by ID.
func (s *SQLiteStore) GetMember(ctx context.Context, memberID string) (*models.Member, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+memberColumns+` FROM members WHERE id = ?`, memberID)
	member, err := scanMember(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("member %s: %w", memberID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return member, nil
}

// ListMembers retrieves the members of a group.
func (s *SQLiteStore) ListMembers(ctx context.Context, groupID string, activeOnly bool) ([]*models.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE group_id = ?`
	if activeOnly {
		query += ` AND active = 1`
	}
	query += ` ORDER BY created_at, rowid`

	rows, err := s.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*models.Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}

// FindActiveMemberByEmail retrieves the active member of a group with the given email.
func (s *SQLiteStore) FindActiveMemberByEmail(ctx context.Context, groupID, email string) (*models.Member, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+memberColumns+` FROM members WHERE group_id = ? AND email = ? AND active = 1`,
		groupID, email,
	)
	member, err := scanMember(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("member with email in group %s: %w", groupID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find member by email: %w", err)
	}
	return member, nil
}

// UpdateMember updates an existing member's contact fields and active flag.
func (s *SQLiteStore) UpdateMember(ctx context.Context, member *models.Member) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE members SET name = ?, email = ?, phone = ?, active = ? WHERE id = ?`,
		member.Name, member.Email, member.Phone, boolToInt(member.Active), member.ID,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("member email %q in group %s: %w", member.Email, member.GroupID, storage.ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("member %s: %w", member.ID, storage.ErrNotFound)
	}

	s.publish(storage.TableMembers, member.GroupID, member.ID)
	return nil
}

// DeleteMember removes a member by ID.
func (s *SQLiteStore) DeleteMember(ctx context.Context, memberID string) error {
	var groupID string
	err := s.db.QueryRowContext(ctx,
		"DELETE FROM members WHERE id = ? RETURNING group_id", memberID,
	).Scan(&groupID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("member %s: %w", memberID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	s.publish(storage.TableMembers, groupID, memberID)
	return nil
}

func scanMember(row rowScanner) (*models.Member, error) {
	member := &models.Member{}
	var active int
	if err := row.Scan(&member.ID, &member.GroupID, &member.Name, &member.Email, &member.Phone,
		&active, &member.CreatedAt); err != nil {
		return nil, err
	}
	member.Active = active != 0
	return member, nil
}
