package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/orgdir/internal/directory/service"
	"github.com/aussiebroadwan/orgdir/pkg/dirsdk"
	"github.com/aussiebroadwan/orgdir/pkg/httpx"
	"github.com/aussiebroadwan/orgdir/pkg/slogx"
)

type OrgMemberHandler struct {
	DirectoryService *service.DirectoryService
}

// HandleAdd adds a user to an organisation.
//
//	@Summary		Add a user to an organisation
//	@Description	Adds the target user to the organisation. The caller must be a member.
//	@Description	Adding a user who is already a member succeeds without effect.
//	@Tags			Organisations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			orgId	path		string					true	"Organisation id"
//	@Param			request	body		dirsdk.AddMemberRequest	true	"Target user"
//	@Success		200		{object}	dirsdk.MessageResponse	"User added to organisation successfully"
//	@Failure		400		{object}	dirsdk.ErrorResponse	"Missing userId or malformed request"
//	@Failure		401		{object}	dirsdk.ErrorResponse	"Invalid or missing token"
//	@Failure		403		{object}	dirsdk.ErrorResponse	"Caller is not a member"
//	@Failure		404		{object}	dirsdk.ErrorResponse	"User or organisation not found"
//	@Router			/api/organisations/{orgId}/users [post].
func (h *OrgMemberHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	requesterID := httpx.UserIDFromCtx(ctx)
	orgID := r.PathValue("orgId")

	var req dirsdk.AddMemberRequest
	if !decodeBody(r, &req) {
		writeError(w, http.StatusBadRequest, "Client error")
		return
	}

	err := h.DirectoryService.AddUserToOrganisation(ctx, requesterID, orgID, req.UserID)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.Is(err, service.ErrRequesterNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		case errors.As(err, &verr):
			writeError(w, http.StatusBadRequest, "Client error")
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrOrganisationNotFound):
			writeError(w, http.StatusNotFound, "Organisation not found")
		case errors.Is(err, service.ErrForbidden):
			writeError(w, http.StatusForbidden, "You do not have permission to add users to this organisation")
		default:
			log.Error("add member failed", "org_id", orgID, "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, dirsdk.MessageResponse{
		Status:  "success",
		Message: "User added to organisation successfully",
	})
}
