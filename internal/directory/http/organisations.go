package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/orgdir/internal/directory/service"
	"github.com/aussiebroadwan/orgdir/pkg/dirsdk"
	"github.com/aussiebroadwan/orgdir/pkg/httpx"
	"github.com/aussiebroadwan/orgdir/pkg/slogx"
)

type OrganisationHandler struct {
	DirectoryService *service.DirectoryService
}

// HandleList returns the caller's organisations.
//
//	@Summary		List the caller's organisations
//	@Description	Returns every organisation the authenticated user is a member of.
//	@Tags			Organisations
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dirsdk.OrganisationListResponse	"Organisations retrieved successfully"
//	@Failure		401	{object}	dirsdk.ErrorResponse			"Invalid or missing token"
//	@Failure		404	{object}	dirsdk.ErrorResponse			"Token subject no longer exists"
//	@Router			/api/organisations [get].
func (h *OrganisationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	requesterID := httpx.UserIDFromCtx(ctx)

	orgs, err := h.DirectoryService.ListOrganisations(ctx, requesterID)
	if err != nil {
		if errors.Is(err, service.ErrRequesterNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Error("organisation listing failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	list := make([]dirsdk.OrganisationData, 0, len(orgs))
	for _, org := range orgs {
		list = append(list, organisationData(org))
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, dirsdk.OrganisationListResponse{
		Status:  "success",
		Message: "Organisations retrieved successfully",
		Data:    dirsdk.OrganisationListData{Organisations: list},
	})
}

// HandleGet returns a single organisation by id.
//
//	@Summary		Get an organisation
//	@Description	Returns the organisation's record. The caller must be a member.
//	@Tags			Organisations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			orgId	path		string						true	"Organisation id"
//	@Success		200		{object}	dirsdk.OrganisationResponse	"Organisation retrieved successfully"
//	@Failure		401		{object}	dirsdk.ErrorResponse		"Invalid or missing token"
//	@Failure		403		{object}	dirsdk.ErrorResponse		"Caller is not a member"
//	@Failure		404		{object}	dirsdk.ErrorResponse		"Organisation not found"
//	@Router			/api/organisations/{orgId} [get].
func (h *OrganisationHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	requesterID := httpx.UserIDFromCtx(ctx)
	orgID := r.PathValue("orgId")

	org, err := h.DirectoryService.GetOrganisation(ctx, requesterID, orgID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRequesterNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrOrganisationNotFound):
			writeError(w, http.StatusNotFound, "Organisation not found")
		case errors.Is(err, service.ErrForbidden):
			writeError(w, http.StatusForbidden, "You do not have permission to view this organisation")
		default:
			log.Error("organisation lookup failed", "org_id", orgID, "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, dirsdk.OrganisationResponse{
		Status:  "success",
		Message: "Organisation retrieved successfully",
		Data:    organisationData(org),
	})
}

// HandleCreate creates an organisation with the caller as its first member.
//
//	@Summary		Create an organisation
//	@Description	Creates an organisation and enrols the caller as its sole initial member.
//	@Tags			Organisations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dirsdk.CreateOrganisationRequest	true	"Organisation details"
//	@Success		201		{object}	dirsdk.OrganisationResponse			"Organisation created successfully"
//	@Failure		400		{object}	dirsdk.ErrorResponse				"Missing name or malformed request"
//	@Failure		401		{object}	dirsdk.ErrorResponse				"Invalid or missing token"
//	@Failure		404		{object}	dirsdk.ErrorResponse				"Token subject no longer exists"
//	@Router			/api/organisations [post].
func (h *OrganisationHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	requesterID := httpx.UserIDFromCtx(ctx)

	var req dirsdk.CreateOrganisationRequest
	if !decodeBody(r, &req) {
		writeError(w, http.StatusBadRequest, "Client error")
		return
	}

	org, err := h.DirectoryService.CreateOrganisation(ctx, requesterID, req.Name, req.Description)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.Is(err, service.ErrRequesterNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		case errors.As(err, &verr):
			writeError(w, http.StatusBadRequest, "Client error")
		default:
			log.Error("organisation create failed", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, dirsdk.OrganisationResponse{
		Status:  "success",
		Message: "Organisation created successfully",
		Data:    organisationData(org),
	})
}
