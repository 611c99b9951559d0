package service

import (
	"time"

	"github.com/aussiebroadwan/orgdir/pkg/jwtx"
)

// TokenIssuer mints identity tokens binding to a user id. Registration and
// login share one instance so their tokens are interchangeable.
type TokenIssuer struct {
	Signer jwtx.Signer
	Issuer string
	TTL    time.Duration
}

func (t *TokenIssuer) Issue(userID string) (string, error) {
	ttl := t.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultIdentityTokenTTL
	}

	claims := jwtx.NewIdentityClaims(userID, t.Issuer, ttl, time.Now().UTC())
	return t.Signer.Sign(claims)
}
