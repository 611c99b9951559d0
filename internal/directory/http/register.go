package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/orgdir/internal/directory/service"
	"github.com/aussiebroadwan/orgdir/pkg/dirsdk"
	"github.com/aussiebroadwan/orgdir/pkg/httpx"
	"github.com/aussiebroadwan/orgdir/pkg/slogx"
)

type RegisterHandler struct {
	RegistrationService *service.RegistrationService
}

// ServeHTTP handles user registration.
//
//	@Summary		Register a new user
//	@Description	Creates a user account with a hashed password, provisions their default
//	@Description	organisation, and returns a signed identity token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dirsdk.RegisterRequest	true	"Registration details"
//	@Success		201		{object}	dirsdk.AuthResponse		"Registration successful"
//	@Failure		400		{object}	dirsdk.ErrorResponse	"Duplicate email or malformed request"
//	@Failure		422		{object}	dirsdk.ValidationErrorResponse	"Missing required fields"
//	@Router			/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req dirsdk.RegisterRequest
	if !decodeBody(r, &req) {
		writeError(w, http.StatusBadRequest, "Registration unsuccessful")
		return
	}

	token, user, err := h.RegistrationService.Register(ctx, service.RegisterInput{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Password:         req.Password,
		Phone:            req.Phone,
		OrganisationName: req.OrganisationName,
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			writeValidationErrors(w, verr)
		case errors.Is(err, service.ErrDuplicateEmail):
			writeError(w, http.StatusBadRequest, "Registration unsuccessful")
		default:
			log.Error("registration failed", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, dirsdk.AuthResponse{
		Status:  "success",
		Message: "Registration successful",
		Data: dirsdk.AuthData{
			AccessToken: token,
			User:        userData(user),
		},
	})
}
