package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoginSucceedsWithCorrectPassword(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	tokens, verifier := newTestIssuer(t)

	reg := &RegistrationService{Store: st, Tokens: tokens}
	_, registered, err := reg.Register(ctx, registerInput("login@example.com"))
	require.NoError(t, err)

	svc := &SessionService{Store: st, Tokens: tokens}

	token, user, err := svc.Login(ctx, "login@example.com", "correct-horse")
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)

	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, registered.ID, claims.Subject)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	tokens, _ := newTestIssuer(t)

	reg := &RegistrationService{Store: st, Tokens: tokens}
	_, _, err := reg.Register(ctx, registerInput("known@example.com"))
	require.NoError(t, err)

	svc := &SessionService{Store: st, Tokens: tokens}

	// Wrong password for a known account and any password for an unknown
	// account must produce the identical error
	_, _, errWrongPw := svc.Login(ctx, "known@example.com", "wrong-password")
	_, _, errUnknown := svc.Login(ctx, "nobody@example.com", "whatever")

	require.ErrorIs(t, errWrongPw, ErrAuthFailed)
	require.ErrorIs(t, errUnknown, ErrAuthFailed)
	require.Equal(t, errWrongPw.Error(), errUnknown.Error())
}

func TestLoginRejectsEmptyCredentials(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	tokens, _ := newTestIssuer(t)
	svc := &SessionService{Store: st, Tokens: tokens}

	_, _, err := svc.Login(ctx, "", "password")
	require.ErrorIs(t, err, ErrAuthFailed)

	_, _, err = svc.Login(ctx, "someone@example.com", "")
	require.ErrorIs(t, err, ErrAuthFailed)
}
