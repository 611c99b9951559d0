package dirsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Session is an authenticated client for the directory API. It is created by
// SDKClient.Register, SDKClient.Login, or SDKClient.NewSessionFromToken and
// attaches the bearer token to every request.
type Session struct {
	client      *SDKClient
	accessToken string

	// user is the authenticated user as returned at login time.
	// Zero when the session was created from a bare token.
	user UserData
}

func newSession(c *SDKClient, data AuthData) *Session {
	return &Session{
		client:      c,
		accessToken: data.AccessToken,
		user:        data.User,
	}
}

// AccessToken returns the raw identity token for this session.
func (s *Session) AccessToken() string {
	return s.accessToken
}

// User returns the authenticated user captured at login time.
func (s *Session) User() UserData {
	return s.user
}

// GetUser fetches a user by id. The server only permits it when the caller
// is the user or shares an organisation with them.
func (s *Session) GetUser(ctx context.Context, userID string) (*UserData, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/api/users/"+url.PathEscape(userID), nil)
	if err != nil {
		return nil, err
	}

	var userResp UserResponse
	if err := decodeJSON(resp, &userResp, http.StatusOK); err != nil {
		return nil, err
	}

	return &userResp.Data, nil
}

// ListOrganisations returns the organisations the caller belongs to.
func (s *Session) ListOrganisations(ctx context.Context) ([]OrganisationData, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/api/organisations", nil)
	if err != nil {
		return nil, err
	}

	var listResp OrganisationListResponse
	if err := decodeJSON(resp, &listResp, http.StatusOK); err != nil {
		return nil, err
	}

	return listResp.Data.Organisations, nil
}

// GetOrganisation fetches an organisation the caller is a member of.
func (s *Session) GetOrganisation(ctx context.Context, orgID string) (*OrganisationData, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/api/organisations/"+url.PathEscape(orgID), nil)
	if err != nil {
		return nil, err
	}

	var orgResp OrganisationResponse
	if err := decodeJSON(resp, &orgResp, http.StatusOK); err != nil {
		return nil, err
	}

	return &orgResp.Data, nil
}

// CreateOrganisation creates an organisation with the caller as its first
// member.
func (s *Session) CreateOrganisation(ctx context.Context, name, description string) (*OrganisationData, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/api/organisations", CreateOrganisationRequest{
		Name:        name,
		Description: description,
	})
	if err != nil {
		return nil, err
	}

	var orgResp OrganisationResponse
	if err := decodeJSON(resp, &orgResp, http.StatusCreated); err != nil {
		return nil, err
	}

	return &orgResp.Data, nil
}

// AddUserToOrganisation adds another user to an organisation the caller
// belongs to. Adding an existing member succeeds without effect.
func (s *Session) AddUserToOrganisation(ctx context.Context, orgID, userID string) error {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/api/organisations/"+url.PathEscape(orgID)+"/users", AddMemberRequest{
		UserID: userID,
	})
	if err != nil {
		return err
	}

	var msgResp MessageResponse
	return decodeJSON(resp, &msgResp, http.StatusOK)
}

// doAuthJSON performs a request with the session's bearer token and an
// optional JSON body.
func (s *Session) doAuthJSON(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.client.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.accessToken)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}
