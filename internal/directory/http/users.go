package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/orgdir/internal/directory/service"
	"github.com/aussiebroadwan/orgdir/pkg/dirsdk"
	"github.com/aussiebroadwan/orgdir/pkg/httpx"
	"github.com/aussiebroadwan/orgdir/pkg/slogx"
)

type UserHandler struct {
	DirectoryService *service.DirectoryService
}

// HandleGet returns a single user by id.
//
//	@Summary		Get a user
//	@Description	Returns the user's public record. The caller must be the user
//	@Description	or share at least one organisation with them.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"User id"
//	@Success		200	{object}	dirsdk.UserResponse		"User retrieved successfully"
//	@Failure		401	{object}	dirsdk.ErrorResponse	"Invalid or missing token"
//	@Failure		403	{object}	dirsdk.ErrorResponse	"No shared organisation"
//	@Failure		404	{object}	dirsdk.ErrorResponse	"User not found"
//	@Router			/api/users/{id} [get].
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	requesterID := httpx.UserIDFromCtx(ctx)
	targetID := r.PathValue("id")

	user, err := h.DirectoryService.GetUser(ctx, requesterID, targetID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRequesterNotFound):
			writeError(w, http.StatusNotFound, "Current user not found")
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrForbidden):
			writeError(w, http.StatusForbidden, "You do not have permission to view this user")
		default:
			log.Error("user lookup failed", "user_id", targetID, "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, dirsdk.UserResponse{
		Status:  "success",
		Message: "User retrieved successfully",
		Data:    userData(user),
	})
}
