package directory_test

import (
	"context"
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	httpapi "github.com/aussiebroadwan/orgdir/internal/directory/http"
	"github.com/aussiebroadwan/orgdir/internal/directory/service"
	"github.com/aussiebroadwan/orgdir/internal/directory/store/drivers/sqlite"
	"github.com/aussiebroadwan/orgdir/pkg/cryptox"
	"github.com/aussiebroadwan/orgdir/pkg/dirsdk"
	"github.com/aussiebroadwan/orgdir/pkg/jwtx"
	"github.com/aussiebroadwan/orgdir/pkg/slogx"
	"github.com/stretchr/testify/require"
)

/*
 * Common helpers for directory service end-to-end tests. The full service
 * is assembled in-process over a file-backed SQLite database and served
 * with httptest, so the suite runs with no external dependencies.
 */

const testIssuer = "orgdir-e2e"

var emailSeq atomic.Int64

// uniqueEmail hands out a fresh address per call so tests sharing a server
// never collide on the email UNIQUE constraint.
func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s%d@example.com", prefix, emailSeq.Add(1))
}

// setupServer assembles the directory service and returns its base URL.
// Cleanup is registered on t.
func setupServer(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", filepath.Join(dir, "directory.db"))
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA("e2e-key", pemKey)
	require.NoError(t, err)
	verifier := jwtx.VerifierForSigner(signer, testIssuer)

	tokens := &service.TokenIssuer{
		Signer: signer,
		Issuer: testIssuer,
		TTL:    time.Hour,
	}

	logger := slogx.New(slogx.Config{
		Service: "directory-service",
		Version: "e2e",
		Env:     "test",
		Level:   "error",
		Format:  "text",
	})

	router := httpapi.NewRouter(signer, verifier, "e2e", st, logger)
	router.RegistrationService = &service.RegistrationService{Store: st, Tokens: tokens}
	router.SessionService = &service.SessionService{Store: st, Tokens: tokens}
	router.DirectoryService = &service.DirectoryService{Store: st, Access: service.AccessPolicy{}}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server.URL
}

// registerTestUser registers a user with sensible defaults and returns the
// authenticated session.
func registerTestUser(t *testing.T, client *dirsdk.SDKClient, email string) *dirsdk.Session {
	t.Helper()

	session, err := client.Register(context.Background(), dirsdk.RegisterRequest{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "Password123!",
	})
	require.NoError(t, err)
	require.NotEmpty(t, session.AccessToken())

	return session
}
