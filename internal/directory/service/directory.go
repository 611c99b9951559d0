package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/orgdir/internal/directory/domain"
	"github.com/aussiebroadwan/orgdir/internal/directory/store"
	"github.com/aussiebroadwan/orgdir/pkg/idx"
	"github.com/aussiebroadwan/orgdir/pkg/slogx"
)

// DirectoryService orchestrates lookups and membership mutations, applying
// the access policy's decisions. Every operation resolves the requester
// first: a verified token whose subject has vanished is NotFound, which is
// deliberately distinct from an invalid token (Unauthorized, handled at the
// HTTP boundary).
type DirectoryService struct {
	Store  store.Store
	Access AccessPolicy
}

// resolveRequester maps a token subject onto a live user record.
func (s *DirectoryService) resolveRequester(ctx context.Context, requesterID string) (domain.User, error) {
	requester, err := s.Store.Users().GetUserByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrRequesterNotFound
		}
		return domain.User{}, err
	}
	return requester, nil
}

// GetUser returns the target user when the requester is the target or
// shares at least one organisation with them.
func (s *DirectoryService) GetUser(ctx context.Context, requesterID, targetID string) (domain.User, error) {
	requester, err := s.resolveRequester(ctx, requesterID)
	if err != nil {
		return domain.User{}, err
	}

	target, err := s.Store.Users().GetUserByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}

	ok, err := s.Access.CanViewUser(ctx, s.Store.Memberships(), requester.ID, target.ID)
	if err != nil {
		return domain.User{}, err
	}
	if !ok {
		return domain.User{}, ErrForbidden
	}

	return target, nil
}

// ListOrganisations returns every organisation the requester belongs to,
// in no particular order.
func (s *DirectoryService) ListOrganisations(ctx context.Context, requesterID string) ([]domain.Organisation, error) {
	requester, err := s.resolveRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	return s.Store.Organisations().ListOrganisationsForUser(ctx, requester.ID)
}

// GetOrganisation returns the organisation when the requester is a member.
func (s *DirectoryService) GetOrganisation(ctx context.Context, requesterID, orgID string) (domain.Organisation, error) {
	requester, err := s.resolveRequester(ctx, requesterID)
	if err != nil {
		return domain.Organisation{}, err
	}

	org, err := s.Store.Organisations().GetOrganisationByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Organisation{}, ErrOrganisationNotFound
		}
		return domain.Organisation{}, err
	}

	ok, err := s.Access.CanViewOrganisation(ctx, s.Store.Memberships(), requester.ID, org.ID)
	if err != nil {
		return domain.Organisation{}, err
	}
	if !ok {
		return domain.Organisation{}, ErrForbidden
	}

	return org, nil
}

// CreateOrganisation creates an organisation with the requester as its sole
// initial member. The create and the membership land in one transaction.
func (s *DirectoryService) CreateOrganisation(ctx context.Context, requesterID, name, description string) (domain.Organisation, error) {
	log := slogx.FromContext(ctx)

	requester, err := s.resolveRequester(ctx, requesterID)
	if err != nil {
		return domain.Organisation{}, err
	}

	if name == "" {
		verr := &ValidationError{}
		verr.add("name", "Name is required")
		return domain.Organisation{}, verr
	}

	now := time.Now().UTC()
	org := domain.Organisation{
		ID:          idx.New().String(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Organisations().CreateOrganisation(ctx, org); err != nil {
			return err
		}
		return tx.Memberships().AddMember(ctx, requester.ID, org.ID)
	})
	if err != nil {
		log.Error("organisation create transaction failed", slog.Any("error", err))
		return domain.Organisation{}, err
	}

	log.Info("organisation created",
		slog.String("org_id", org.ID),
		slog.String("user_id", requester.ID),
	)

	return org, nil
}

// AddUserToOrganisation adds the target user to the organisation. Being a
// member is the sole admission gate on the requester side, and re-adding
// an existing member is a no-op success.
func (s *DirectoryService) AddUserToOrganisation(ctx context.Context, requesterID, orgID, targetUserID string) error {
	log := slogx.FromContext(ctx)

	requester, err := s.resolveRequester(ctx, requesterID)
	if err != nil {
		return err
	}

	if targetUserID == "" {
		verr := &ValidationError{}
		verr.add("userId", "User id is required")
		return verr
	}

	target, err := s.Store.Users().GetUserByID(ctx, targetUserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	org, err := s.Store.Organisations().GetOrganisationByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrOrganisationNotFound
		}
		return err
	}

	ok, err := s.Access.CanModifyOrganisation(ctx, s.Store.Memberships(), requester.ID, org.ID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}

	if err := s.Store.Memberships().AddMember(ctx, target.ID, org.ID); err != nil {
		log.Error("failed to add member", slog.Any("error", err))
		return err
	}

	log.Info("user added to organisation",
		slog.String("org_id", org.ID),
		slog.String("user_id", target.ID),
		slog.String("added_by", requester.ID),
	)

	return nil
}
