package dirsdk

// ============================================================================
// Request Types
// ============================================================================

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	Phone            string `json:"phone,omitempty"`
	OrganisationName string `json:"organisationName,omitempty"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateOrganisationRequest is the payload for POST /api/organisations.
type CreateOrganisationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// AddMemberRequest is the payload for POST /api/organisations/{orgId}/users.
type AddMemberRequest struct {
	UserID string `json:"userId"`
}

// ============================================================================
// Response Types
// ============================================================================

// UserData is the public view of a user. The password hash is never exposed.
type UserData struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// OrganisationData is the public view of an organisation.
type OrganisationData struct {
	OrgID       string `json:"orgId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// AuthData carries a fresh identity token and the authenticated user.
type AuthData struct {
	AccessToken string   `json:"accessToken"`
	User        UserData `json:"user"`
}

// AuthResponse is the success envelope for register and login.
type AuthResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Data    AuthData `json:"data"`
}

// UserResponse is the success envelope for a single user lookup.
type UserResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Data    UserData `json:"data"`
}

// OrganisationResponse is the success envelope for a single organisation.
type OrganisationResponse struct {
	Status  string           `json:"status"`
	Message string           `json:"message"`
	Data    OrganisationData `json:"data"`
}

// OrganisationListData wraps the organisation collection.
type OrganisationListData struct {
	Organisations []OrganisationData `json:"organisations"`
}

// OrganisationListResponse is the success envelope for the membership listing.
type OrganisationListResponse struct {
	Status  string               `json:"status"`
	Message string               `json:"message"`
	Data    OrganisationListData `json:"data"`
}

// MessageResponse is the success envelope for operations with no data payload.
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Version string        `json:"version,omitempty"`
	Uptime  string        `json:"uptime,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of the service's critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// ErrorResponse is the failure envelope for client and server errors.
type ErrorResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the 422 envelope listing every invalid field.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}
