package sqlite

import (
	"context"

	"github.com/aussiebroadwan/orgdir/internal/directory/domain"
)

type organisationsRepo struct {
	q dbtx
}

const orgColumns = `id, name, description, created_at, updated_at`

func (r *organisationsRepo) CreateOrganisation(ctx context.Context, o domain.Organisation) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO organisations (id, name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		o.ID, o.Name, o.Description, o.CreatedAt, o.UpdatedAt,
	)
	return mapConflict(err)
}

func (r *organisationsRepo) GetOrganisationByID(ctx context.Context, id string) (domain.Organisation, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+orgColumns+` FROM organisations WHERE id = ?`, id)

	var o domain.Organisation
	if err := row.Scan(&o.ID, &o.Name, &o.Description, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return domain.Organisation{}, mapNotFound(err)
	}
	return o, nil
}

func (r *organisationsRepo) ListOrganisationsForUser(ctx context.Context, userID string) ([]domain.Organisation, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT o.id, o.name, o.description, o.created_at, o.updated_at
		FROM organisations o
		JOIN organisation_members m ON m.org_id = o.id
		WHERE m.user_id = ?`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []domain.Organisation
	for rows.Next() {
		var o domain.Organisation
		if err := rows.Scan(&o.ID, &o.Name, &o.Description, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		orgs = append(orgs, o)
	}
	return orgs, rows.Err()
}
