package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/orgdir/internal/directory/domain"
	"github.com/aussiebroadwan/orgdir/internal/directory/store"
	"github.com/aussiebroadwan/orgdir/pkg/cryptox"
	"github.com/aussiebroadwan/orgdir/pkg/slogx"
)

type SessionService struct {
	Store  store.Store
	Tokens *TokenIssuer
}

// Login verifies the credentials and issues an identity token. Unknown
// email and wrong password produce the same ErrAuthFailed; nothing in the
// response distinguishes the two.
func (s *SessionService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	log := slogx.FromContext(ctx)

	if email == "" || password == "" {
		return "", domain.User{}, ErrAuthFailed
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.User{}, ErrAuthFailed
		}
		return "", domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Info("login failed", slog.String("user_id", user.ID))
		return "", domain.User{}, ErrAuthFailed
	}

	token, err := s.Tokens.Issue(user.ID)
	if err != nil {
		log.Error("failed to issue token", slog.String("user_id", user.ID), slog.Any("error", err))
		return "", domain.User{}, err
	}

	log.Debug("login succeeded", slog.String("user_id", user.ID))

	return token, user, nil
}
