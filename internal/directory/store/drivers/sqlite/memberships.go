package sqlite

import (
	"context"
	"time"
)

type membershipsRepo struct {
	q dbtx
}

// AddMember is idempotent: INSERT OR IGNORE leaves the existing row alone
// when the pair is already present, so re-adding a member is a no-op.
func (r *membershipsRepo) AddMember(ctx context.Context, userID, orgID string) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT OR IGNORE INTO organisation_members (user_id, org_id, created_at)
		VALUES (?, ?, ?)`,
		userID, orgID, time.Now().UTC(),
	)
	return err
}

func (r *membershipsRepo) IsMember(ctx context.Context, userID, orgID string) (bool, error) {
	var exists bool
	err := r.q.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM organisation_members
			WHERE user_id = ? AND org_id = ?
		)`,
		userID, orgID,
	).Scan(&exists)
	return exists, err
}

func (r *membershipsRepo) ShareOrganisation(ctx context.Context, userA, userB string) (bool, error) {
	var exists bool
	err := r.q.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM organisation_members a
			JOIN organisation_members b ON a.org_id = b.org_id
			WHERE a.user_id = ? AND b.user_id = ?
		)`,
		userA, userB,
	).Scan(&exists)
	return exists, err
}

func (r *membershipsRepo) CountMembers(ctx context.Context, orgID string) (int64, error) {
	var count int64
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM organisation_members WHERE org_id = ?`, orgID,
	).Scan(&count)
	return count, err
}
