/*
Package dirsdk provides a client SDK for the organisation directory service.

# Overview

The dirsdk package wraps the directory's HTTP API. It provides the
unauthenticated registration and login operations (via SDKClient) and the
authenticated directory operations (via Session).

# SDKClient vs Session

The package is organized around two main types:

  - SDKClient: Provides registration, login, and health checks
  - Session: Carries an identity token and performs authenticated operations

Create an SDKClient to register or log in:

	client := dirsdk.NewSDKClient("https://directory.example.com")

	session, err := client.Register(ctx, dirsdk.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "correct-horse",
	})

	// Or authenticate an existing user
	session, err := client.Login(ctx, "ada@example.com", "correct-horse")

Use the Session for everything behind authentication:

	orgs, err := session.ListOrganisations(ctx)

	org, err := session.CreateOrganisation(ctx, "Engineering", "Build things")

	err = session.AddUserToOrganisation(ctx, org.OrgID, otherUserID)

A session can also be rebuilt from a stored token:

	session := client.NewSessionFromToken(savedToken)

# Error Handling

Non-2xx responses are returned as typed errors:

  - *APIError: carries the HTTP status code and server message
  - *ValidationError: 422 responses, listing each invalid request field

	_, err := client.Login(ctx, email, password)
	var apiErr *dirsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		// bad credentials
	}
*/
package dirsdk
