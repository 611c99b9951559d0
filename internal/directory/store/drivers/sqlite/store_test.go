package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/orgdir/internal/directory/domain"
	"github.com/aussiebroadwan/orgdir/internal/directory/store"
	"github.com/aussiebroadwan/orgdir/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newUser(email string) domain.User {
	now := time.Now().UTC()
	return domain.User{
		ID:           idx.New().String(),
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newOrg(name string) domain.Organisation {
	now := time.Now().UTC()
	return domain.Organisation{
		ID:        idx.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUsersRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := newUser("ada@example.com")
	u.Phone = "+61 400 000 000"
	require.NoError(t, st.Users().CreateUser(ctx, u))

	byID, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, byID.Email)
	require.Equal(t, u.Phone, byID.Phone)
	require.Equal(t, u.PasswordHash, byID.PasswordHash)

	byEmail, err := st.Users().GetUserByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	count, err := st.Users().CountUsers(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestUsersEmptyPhoneStoredAsNull(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := newUser("nophone@example.com")
	require.NoError(t, st.Users().CreateUser(ctx, u))

	got, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Empty(t, got.Phone)
}

func TestUsersNotFound(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	_, err := st.Users().GetUserByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Users().GetUserByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsersDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	first := newUser("dup@example.com")
	require.NoError(t, st.Users().CreateUser(ctx, first))

	second := newUser("dup@example.com")
	err := st.Users().CreateUser(ctx, second)
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	// The first record is untouched
	got, err := st.Users().GetUserByEmail(ctx, "dup@example.com")
	require.NoError(t, err)
	require.Equal(t, first.ID, got.ID)
}

func TestUsersDelete(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := newUser("gone@example.com")
	require.NoError(t, st.Users().CreateUser(ctx, u))
	require.NoError(t, st.Users().DeleteUser(ctx, u.ID))

	_, err := st.Users().GetUserByID(ctx, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestOrganisationsRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	org := newOrg("Engineering")
	org.Description = "Build things"
	require.NoError(t, st.Organisations().CreateOrganisation(ctx, org))

	got, err := st.Organisations().GetOrganisationByID(ctx, org.ID)
	require.NoError(t, err)
	require.Equal(t, org.Name, got.Name)
	require.Equal(t, org.Description, got.Description)

	_, err = st.Organisations().GetOrganisationByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestMembershipsAddAndCheck(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := newUser("member@example.com")
	require.NoError(t, st.Users().CreateUser(ctx, u))

	org := newOrg("Team A")
	require.NoError(t, st.Organisations().CreateOrganisation(ctx, org))

	ok, err := st.Memberships().IsMember(ctx, u.ID, org.ID)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, st.Memberships().AddMember(ctx, u.ID, org.ID))

	ok, err = st.Memberships().IsMember(ctx, u.ID, org.ID)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestMembershipsAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := newUser("repeat@example.com")
	require.NoError(t, st.Users().CreateUser(ctx, u))

	org := newOrg("Team A")
	require.NoError(t, st.Organisations().CreateOrganisation(ctx, org))

	// Adding the same pair twice must not error or duplicate the row
	require.NoError(t, st.Memberships().AddMember(ctx, u.ID, org.ID))
	require.NoError(t, st.Memberships().AddMember(ctx, u.ID, org.ID))

	count, err := st.Memberships().CountMembers(ctx, org.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestMembershipsShareOrganisation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	a := newUser("a@example.com")
	b := newUser("b@example.com")
	c := newUser("c@example.com")
	for _, u := range []domain.User{a, b, c} {
		require.NoError(t, st.Users().CreateUser(ctx, u))
	}

	org := newOrg("Shared")
	require.NoError(t, st.Organisations().CreateOrganisation(ctx, org))
	require.NoError(t, st.Memberships().AddMember(ctx, a.ID, org.ID))
	require.NoError(t, st.Memberships().AddMember(ctx, b.ID, org.ID))

	shared, err := st.Memberships().ShareOrganisation(ctx, a.ID, b.ID)
	require.NoError(t, err)
	require.True(t, shared)

	shared, err = st.Memberships().ShareOrganisation(ctx, a.ID, c.ID)
	require.NoError(t, err)
	require.False(t, shared)
}

func TestListOrganisationsForUser(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := newUser("lister@example.com")
	require.NoError(t, st.Users().CreateUser(ctx, u))

	orgA := newOrg("Alpha")
	orgB := newOrg("Beta")
	orgC := newOrg("Gamma")
	for _, org := range []domain.Organisation{orgA, orgB, orgC} {
		require.NoError(t, st.Organisations().CreateOrganisation(ctx, org))
	}
	require.NoError(t, st.Memberships().AddMember(ctx, u.ID, orgA.ID))
	require.NoError(t, st.Memberships().AddMember(ctx, u.ID, orgB.ID))

	orgs, err := st.Organisations().ListOrganisationsForUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, orgs, 2)

	ids := []string{orgs[0].ID, orgs[1].ID}
	require.ElementsMatch(t, []string{orgA.ID, orgB.ID}, ids)
}

func TestWithTxCommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := newUser("txc@example.com")
	org := newOrg("Tx Org")

	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, u); err != nil {
			return err
		}
		if err := tx.Organisations().CreateOrganisation(ctx, org); err != nil {
			return err
		}
		return tx.Memberships().AddMember(ctx, u.ID, org.ID)
	})
	require.NoError(t, err)

	ok, err := st.Memberships().IsMember(ctx, u.ID, org.ID)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := newUser("txr@example.com")
	boom := errors.New("boom")

	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, u); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// The user insert must not have survived the rollback
	_, err = st.Users().GetUserByID(ctx, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestMembershipRowsCascadeOnUserDelete(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := newUser("cascade@example.com")
	require.NoError(t, st.Users().CreateUser(ctx, u))

	org := newOrg("Cascade Org")
	require.NoError(t, st.Organisations().CreateOrganisation(ctx, org))
	require.NoError(t, st.Memberships().AddMember(ctx, u.ID, org.ID))

	require.NoError(t, st.Users().DeleteUser(ctx, u.ID))

	count, err := st.Memberships().CountMembers(ctx, org.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}
