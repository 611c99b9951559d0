package directory_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/orgdir/pkg/dirsdk"
	"github.com/stretchr/testify/require"
)

// TestRegisterAndLogin walks the happy path: register, then log in again
// with the same credentials.
func TestRegisterAndLogin(t *testing.T) {
	baseURL := setupServer(t)
	client := dirsdk.NewSDKClient(baseURL)
	ctx := context.Background()

	email := uniqueEmail("register")
	session := registerTestUser(t, client, email)
	require.Equal(t, email, session.User().Email)
	require.NotEmpty(t, session.User().UserID)

	// A fresh login issues a new usable token
	loginSession, err := client.Login(ctx, email, "Password123!")
	require.NoError(t, err)
	require.Equal(t, session.User().UserID, loginSession.User().UserID)
	require.NotEmpty(t, loginSession.AccessToken())
}

// TestRegisterProvisionsDefaultOrganisation verifies a new user starts with
// exactly one organisation named after them.
func TestRegisterProvisionsDefaultOrganisation(t *testing.T) {
	baseURL := setupServer(t)
	client := dirsdk.NewSDKClient(baseURL)
	ctx := context.Background()

	session, err := client.Register(ctx, dirsdk.RegisterRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     uniqueEmail("grace"),
		Password:  "Password123!",
	})
	require.NoError(t, err)

	orgs, err := session.ListOrganisations(ctx)
	require.NoError(t, err)
	require.Len(t, orgs, 1)
	require.Equal(t, "Grace's Organisation", orgs[0].Name)
}

// TestRegisterValidationErrors verifies missing fields come back as a 422
// listing every violation at once.
func TestRegisterValidationErrors(t *testing.T) {
	baseURL := setupServer(t)
	client := dirsdk.NewSDKClient(baseURL)
	ctx := context.Background()

	_, err := client.Register(ctx, dirsdk.RegisterRequest{})
	require.Error(t, err)

	var valErr *dirsdk.ValidationError
	require.True(t, errors.As(err, &valErr), "expected *dirsdk.ValidationError, got %T", err)
	require.Len(t, valErr.Fields, 4)

	fields := make([]string, 0, len(valErr.Fields))
	for _, f := range valErr.Fields {
		fields = append(fields, f.Field)
	}
	require.ElementsMatch(t, []string{"firstName", "lastName", "email", "password"}, fields)
}

// TestRegisterDuplicateEmail verifies the second registration with the same
// email is rejected with a 400.
func TestRegisterDuplicateEmail(t *testing.T) {
	baseURL := setupServer(t)
	client := dirsdk.NewSDKClient(baseURL)
	ctx := context.Background()

	email := uniqueEmail("dup")
	registerTestUser(t, client, email)

	_, err := client.Register(ctx, dirsdk.RegisterRequest{
		FirstName: "Other",
		LastName:  "Person",
		Email:     email,
		Password:  "Password123!",
	})
	require.Error(t, err)

	var apiErr *dirsdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "Registration unsuccessful", apiErr.Message)
}

// TestLoginFailuresAreUniform verifies a wrong password and an unknown
// email both come back as the identical 401.
func TestLoginFailuresAreUniform(t *testing.T) {
	baseURL := setupServer(t)
	client := dirsdk.NewSDKClient(baseURL)
	ctx := context.Background()

	email := uniqueEmail("uniform")
	registerTestUser(t, client, email)

	_, errWrongPw := client.Login(ctx, email, "not-the-password")
	_, errUnknown := client.Login(ctx, uniqueEmail("nobody"), "whatever")

	var apiErr1, apiErr2 *dirsdk.APIError
	require.True(t, errors.As(errWrongPw, &apiErr1))
	require.True(t, errors.As(errUnknown, &apiErr2))

	require.Equal(t, http.StatusUnauthorized, apiErr1.StatusCode)
	require.Equal(t, apiErr1.StatusCode, apiErr2.StatusCode)
	require.Equal(t, apiErr1.Message, apiErr2.Message)
}

// TestRequestsWithoutTokenAreRejected verifies the protected surface
// refuses anonymous and garbage credentials.
func TestRequestsWithoutTokenAreRejected(t *testing.T) {
	baseURL := setupServer(t)
	client := dirsdk.NewSDKClient(baseURL)
	ctx := context.Background()

	// No token at all
	anonymous := client.NewSessionFromToken("")
	_, err := anonymous.ListOrganisations(ctx)
	var apiErr *dirsdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	// A syntactically invalid token
	garbage := client.NewSessionFromToken("not-a-jwt")
	_, err = garbage.ListOrganisations(ctx)
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}
