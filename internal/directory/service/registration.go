package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/orgdir/internal/directory/domain"
	"github.com/aussiebroadwan/orgdir/internal/directory/store"
	"github.com/aussiebroadwan/orgdir/pkg/cryptox"
	"github.com/aussiebroadwan/orgdir/pkg/idx"
	"github.com/aussiebroadwan/orgdir/pkg/slogx"
)

type RegistrationService struct {
	Store  store.Store
	Tokens *TokenIssuer
}

// RegisterInput is the plain request data; validation is a separate pure
// function so "is this a valid user shape" never gets tangled up with
// "commit to store".
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string // optional

	// OrganisationName overrides the default name of the organisation
	// provisioned for the new user. Optional.
	OrganisationName string
}

// ValidateRegisterInput checks the required fields and collects every
// violation rather than stopping at the first.
func ValidateRegisterInput(in RegisterInput) *ValidationError {
	var verr ValidationError

	if in.FirstName == "" {
		verr.add("firstName", "First name is required")
	}
	if in.LastName == "" {
		verr.add("lastName", "Last name is required")
	}
	if in.Email == "" {
		verr.add("email", "Email is required")
	}
	if in.Password == "" {
		verr.add("password", "Password is required")
	}

	return verr.orNil()
}

// Register creates a user and atomically provisions their default personal
// organisation with a membership, then issues an identity token.
//
// Either the user, the organisation and the membership are all durably
// created, or none of them are.
func (s *RegistrationService) Register(ctx context.Context, in RegisterInput) (string, domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input, collecting every violation.
	if verr := ValidateRegisterInput(in); verr != nil {
		return "", domain.User{}, verr
	}

	// 2. Pre-check the email. The UNIQUE constraint below is the final
	// arbiter for races; this just gives the common case a clean error.
	_, err := s.Store.Users().GetUserByEmail(ctx, in.Email)
	if err == nil {
		return "", domain.User{}, ErrDuplicateEmail
	}
	if !errors.Is(err, store.ErrNotFound) {
		return "", domain.User{}, err
	}

	// 3. Hash the password; the plaintext goes no further.
	passwordHash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return "", domain.User{}, err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: passwordHash,
		Phone:        in.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	orgName := in.OrganisationName
	if orgName == "" {
		orgName = fmt.Sprintf("%s's Organisation", in.FirstName)
	}

	org := domain.Organisation{
		ID:          idx.New().String(),
		Name:        orgName,
		Description: fmt.Sprintf("%s %s's organisation", in.FirstName, in.LastName),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// 4. Create user, default organisation and membership in one transaction.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrDuplicateEmail
			}
			return err
		}
		if err := tx.Organisations().CreateOrganisation(ctx, org); err != nil {
			return err
		}
		return tx.Memberships().AddMember(ctx, user.ID, org.ID)
	})
	if err != nil {
		if !errors.Is(err, ErrDuplicateEmail) {
			// Store detail stays in the logs; the caller gets a generic error.
			log.Error("registration transaction failed", slog.Any("error", err))
		}
		return "", domain.User{}, err
	}

	// 5. Issue the identity token for the new user.
	token, err := s.Tokens.Issue(user.ID)
	if err != nil {
		log.Error("failed to issue token", slog.String("user_id", user.ID), slog.Any("error", err))
		return "", domain.User{}, err
	}

	log.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("org_id", org.ID),
	)

	return token, user, nil
}
