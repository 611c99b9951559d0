package http

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/orgdir/internal/directory/domain"
	"github.com/aussiebroadwan/orgdir/internal/directory/service"
	"github.com/aussiebroadwan/orgdir/pkg/dirsdk"
	"github.com/aussiebroadwan/orgdir/pkg/httpx"
)

// writeError writes the standard failure envelope.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	httpx.NoCache(w)
	httpx.WriteJSON(w, statusCode, dirsdk.ErrorResponse{
		Status:     "Bad request",
		Message:    message,
		StatusCode: statusCode,
	})
}

// writeValidationErrors writes a 422 listing every invalid request field.
func writeValidationErrors(w http.ResponseWriter, verr *service.ValidationError) {
	fields := make([]dirsdk.FieldError, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, dirsdk.FieldError{Field: f.Field, Message: f.Message})
	}
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusUnprocessableEntity, dirsdk.ValidationErrorResponse{
		Errors: fields,
	})
}

// decodeBody parses a JSON request body into dst. A missing or malformed
// body is reported as false with nothing written, leaving the caller to
// choose the endpoint's error shape.
func decodeBody(r *http.Request, dst any) bool {
	if r.Body == nil {
		return false
	}
	return json.NewDecoder(r.Body).Decode(dst) == nil
}

// userData projects a domain user into its public response shape.
// The password hash never leaves the service.
func userData(u domain.User) dirsdk.UserData {
	return dirsdk.UserData{
		UserID:    u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
	}
}

// organisationData projects a domain organisation into its response shape.
func organisationData(o domain.Organisation) dirsdk.OrganisationData {
	return dirsdk.OrganisationData{
		OrgID:       o.ID,
		Name:        o.Name,
		Description: o.Description,
	}
}
