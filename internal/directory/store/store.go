package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/orgdir/internal/directory/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and a transaction scope for the multi-step writes that must be
// atomic (registration's user+org+membership, org creation+membership).
type Store interface {
	Users() Users
	Organisations() Organisations
	Memberships() Memberships

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to do multi-step writes.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is already registered; the
	// UNIQUE constraint is the final arbiter even if callers pre-check.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login and duplicate pre-checks.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// DeleteUser removes a user. No product operation deletes users; this
	// exists for test scaffolding (e.g. dangling-token behaviour).
	DeleteUser(ctx context.Context, id string) error

	// CountUsers returns the total number of users.
	CountUsers(ctx context.Context) (int64, error)
}

type Organisations interface {
	// CreateOrganisation inserts a new organisation (id is ULID).
	CreateOrganisation(ctx context.Context, o domain.Organisation) error

	// GetOrganisationByID returns an organisation by id.
	GetOrganisationByID(ctx context.Context, id string) (domain.Organisation, error)

	// ListOrganisationsForUser returns every organisation the user is a
	// member of, in no particular order.
	ListOrganisationsForUser(ctx context.Context, userID string) ([]domain.Organisation, error)
}

type Memberships interface {
	// AddMember inserts a membership row. Adding an existing member is a
	// no-op success; the relation holds at most one row per pair.
	AddMember(ctx context.Context, userID, orgID string) error

	// IsMember reports whether the pair exists in the join relation. This
	// is an indexed existence query, never a collection load.
	IsMember(ctx context.Context, userID, orgID string) (bool, error)

	// ShareOrganisation reports whether two users have at least one
	// organisation in common.
	ShareOrganisation(ctx context.Context, userA, userB string) (bool, error)

	// CountMembers returns the number of members of an organisation.
	CountMembers(ctx context.Context, orgID string) (int64, error)
}
