package service

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/aussiebroadwan/orgdir/internal/directory/domain"
	"github.com/aussiebroadwan/orgdir/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestCanViewUserSelf(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	policy := AccessPolicy{}

	ok, err := policy.CanViewUser(ctx, st.Memberships(), "u1", "u1")
	require.NoError(t, err)
	require.True(t, ok, "a user can always view themselves")
}

func TestCanViewUserRequiresSharedOrganisation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	policy := AccessPolicy{}

	users := make([]domain.User, 3)
	for i := range users {
		users[i] = domain.User{
			ID:           idx.New().String(),
			FirstName:    "User",
			LastName:     fmt.Sprintf("%d", i),
			Email:        fmt.Sprintf("u%d@example.com", i),
			PasswordHash: "hash",
			CreatedAt:    time.Now().UTC(),
			UpdatedAt:    time.Now().UTC(),
		}
		require.NoError(t, st.Users().CreateUser(ctx, users[i]))
	}

	org := domain.Organisation{
		ID:        idx.New().String(),
		Name:      "Shared",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, st.Organisations().CreateOrganisation(ctx, org))
	require.NoError(t, st.Memberships().AddMember(ctx, users[0].ID, org.ID))
	require.NoError(t, st.Memberships().AddMember(ctx, users[1].ID, org.ID))

	ok, err := policy.CanViewUser(ctx, st.Memberships(), users[0].ID, users[1].ID)
	require.NoError(t, err)
	require.True(t, ok)

	// Visibility is symmetric
	ok, err = policy.CanViewUser(ctx, st.Memberships(), users[1].ID, users[0].ID)
	require.NoError(t, err)
	require.True(t, ok)

	// No shared organisation means no visibility
	ok, err = policy.CanViewUser(ctx, st.Memberships(), users[0].ID, users[2].ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCanViewOrganisationMembersOnly(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	policy := AccessPolicy{}

	member := domain.User{ID: idx.New().String(), FirstName: "M", LastName: "M", Email: "m@example.com", PasswordHash: "hash", CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()}
	stranger := domain.User{ID: idx.New().String(), FirstName: "S", LastName: "S", Email: "s@example.com", PasswordHash: "hash", CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()}
	require.NoError(t, st.Users().CreateUser(ctx, member))
	require.NoError(t, st.Users().CreateUser(ctx, stranger))

	org := domain.Organisation{ID: idx.New().String(), Name: "Org", CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()}
	require.NoError(t, st.Organisations().CreateOrganisation(ctx, org))
	require.NoError(t, st.Memberships().AddMember(ctx, member.ID, org.ID))

	ok, err := policy.CanViewOrganisation(ctx, st.Memberships(), member.ID, org.ID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = policy.CanViewOrganisation(ctx, st.Memberships(), stranger.ID, org.ID)
	require.NoError(t, err)
	require.False(t, ok)

	// Modify follows the same rule as view
	ok, err = policy.CanModifyOrganisation(ctx, st.Memberships(), member.ID, org.ID)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestCanViewUserMatchesBruteForce builds random membership graphs and
// cross-checks the policy's answer against a direct set intersection over
// the same graph.
func TestCanViewUserMatchesBruteForce(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	policy := AccessPolicy{}

	rng := rand.New(rand.NewSource(42))

	const numUsers = 8
	const numOrgs = 5

	users := make([]string, numUsers)
	for i := range users {
		u := domain.User{
			ID:           idx.New().String(),
			FirstName:    "U",
			LastName:     fmt.Sprintf("%d", i),
			Email:        fmt.Sprintf("rand%d@example.com", i),
			PasswordHash: "hash",
			CreatedAt:    time.Now().UTC(),
			UpdatedAt:    time.Now().UTC(),
		}
		require.NoError(t, st.Users().CreateUser(ctx, u))
		users[i] = u.ID
	}

	orgs := make([]string, numOrgs)
	for i := range orgs {
		o := domain.Organisation{
			ID:        idx.New().String(),
			Name:      fmt.Sprintf("Org %d", i),
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		}
		require.NoError(t, st.Organisations().CreateOrganisation(ctx, o))
		orgs[i] = o.ID
	}

	// memberOf[userID] is the set of org ids the user joined
	memberOf := make(map[string]map[string]bool, numUsers)
	for _, uid := range users {
		memberOf[uid] = make(map[string]bool)
		for _, oid := range orgs {
			if rng.Intn(3) == 0 {
				require.NoError(t, st.Memberships().AddMember(ctx, uid, oid))
				memberOf[uid][oid] = true
			}
		}
	}

	share := func(a, b string) bool {
		for oid := range memberOf[a] {
			if memberOf[b][oid] {
				return true
			}
		}
		return false
	}

	for _, a := range users {
		for _, b := range users {
			got, err := policy.CanViewUser(ctx, st.Memberships(), a, b)
			require.NoError(t, err)

			want := a == b || share(a, b)
			require.Equal(t, want, got, "requester=%s target=%s", a, b)
		}
	}
}
