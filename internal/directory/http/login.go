package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/orgdir/internal/directory/service"
	"github.com/aussiebroadwan/orgdir/pkg/dirsdk"
	"github.com/aussiebroadwan/orgdir/pkg/httpx"
	"github.com/aussiebroadwan/orgdir/pkg/slogx"
)

type LoginHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP handles password login.
//
//	@Summary		Log in with email and password
//	@Description	Verifies the credentials and returns a signed identity token.
//	@Description	All failures return the same 401 so the response does not reveal
//	@Description	whether the email is registered.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dirsdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	dirsdk.AuthResponse		"Login successful"
//	@Failure		401		{object}	dirsdk.ErrorResponse	"Authentication failed"
//	@Router			/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req dirsdk.LoginRequest
	if !decodeBody(r, &req) {
		writeError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}

	token, user, err := h.SessionService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthFailed) {
			writeError(w, http.StatusUnauthorized, "Authentication failed")
			return
		}
		log.Error("login failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, dirsdk.AuthResponse{
		Status:  "success",
		Message: "Login successful",
		Data: dirsdk.AuthData{
			AccessToken: token,
			User:        userData(user),
		},
	})
}
