package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/orgdir/pkg/cryptox"
	"github.com/aussiebroadwan/orgdir/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const exampleIssuer = "https://directory.example.com"

func newTestSigner(t *testing.T, kid string) jwtx.Signer {
	t.Helper()

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
	require.NoError(t, err)

	return signer
}

func TestEdDSASignAndVerify(t *testing.T) {
	// Generate Ed25519 keypair
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	kid := "test-key-eddsa"

	// Create signer
	signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
	require.NoError(t, err)
	require.NotNil(t, signer)
	require.NoError(t, signer.Validate())
	require.Equal(t, "EdDSA", signer.Alg())
	require.Equal(t, kid, signer.KID())

	// Build claims using helper function
	now := time.Now().UTC()
	claims := jwtx.NewIdentityClaims("user-456", exampleIssuer, 5*time.Minute, now)

	// Sign token
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Create verifier from the same signer
	verifier := jwtx.VerifierForSigner(signer, exampleIssuer)

	// Verify token
	parsedClaims, err := verifier.Verify(token)
	require.NoError(t, err)

	require.Equal(t, claims.Issuer, parsedClaims.Issuer)
	require.Equal(t, claims.Subject, parsedClaims.Subject)
	require.NotEmpty(t, parsedClaims.ID) // JTI should be set
	require.WithinDuration(t, now.Add(5*time.Minute), parsedClaims.ExpiresAt.Time, time.Second)
}

func TestEdDSAVerifyFailsForWrongIssuer(t *testing.T) {
	signer := newTestSigner(t, "k1")

	claims := jwtx.NewIdentityClaims("user-789", "some-other-issuer", time.Minute, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	verifier := jwtx.VerifierForSigner(signer, exampleIssuer)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestEdDSAVerifyFailsForWrongKey(t *testing.T) {
	signer := newTestSigner(t, "k1")
	otherSigner := newTestSigner(t, "k1") // same kid, different key

	claims := jwtx.NewIdentityClaims("user-1", exampleIssuer, time.Minute, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	verifier := jwtx.VerifierForSigner(otherSigner, exampleIssuer)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestEdDSAVerifyFailsForUnknownKID(t *testing.T) {
	signer := newTestSigner(t, "unexpected-kid")

	claims := jwtx.NewIdentityClaims("user-1", exampleIssuer, time.Minute, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	other := newTestSigner(t, "known-kid")
	verifier := jwtx.VerifierForSigner(other, exampleIssuer)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestEdDSAVerifyFailsForExpiredToken(t *testing.T) {
	signer := newTestSigner(t, "k1")

	// Issued far enough in the past that the token already lapsed
	issuedAt := time.Now().UTC().Add(-2 * time.Hour)
	claims := jwtx.NewIdentityClaims("user-1", exampleIssuer, time.Hour, issuedAt)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	verifier := jwtx.VerifierForSigner(signer, exampleIssuer)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestEdDSAVerifyRejectsGarbage(t *testing.T) {
	signer := newTestSigner(t, "k1")
	verifier := jwtx.VerifierForSigner(signer, exampleIssuer)

	for _, tok := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJub25lIn0.e30."} {
		_, err := verifier.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrMalformed, "token %q", tok)
	}
}

func TestNewSignerEdDSARejectsBadKeys(t *testing.T) {
	_, err := jwtx.NewSignerEdDSA("k1", []byte("not a pem block"))
	require.Error(t, err)

	_, err = jwtx.NewSignerEdDSA("k1", nil)
	require.Error(t, err)
}
