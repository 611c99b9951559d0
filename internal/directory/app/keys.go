package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/orgdir/pkg/cryptox"
	"github.com/aussiebroadwan/orgdir/pkg/idx"
	"github.com/aussiebroadwan/orgdir/pkg/jwtx"
)

// InitIdentityKeys generates an ephemeral Ed25519 signing key and builds the
// matching verifier. The key lives only in memory, so every identity token
// becomes invalid when the service restarts. With a 24 hour token lifetime
// and no refresh flow that trade is acceptable, users just log in again.
func InitIdentityKeys(cfg Config, logger *slog.Logger) (jwtx.Signer, jwtx.Verifier, error) {
	pemKey, err := cryptox.GenerateEd25519Key()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate signing key: %w", err)
	}

	kid := idx.New().String()
	signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize signer: %w", err)
	}

	verifier := jwtx.VerifierForSigner(signer, cfg.Issuer)

	logger.Info("generated ephemeral signing key",
		"algorithm", signer.Alg(),
		"kid", signer.KID(),
		"issuer", cfg.Issuer,
	)
	logger.Warn("all previously issued tokens are now invalid")

	return signer, verifier, nil
}
