package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/orgdir/internal/directory/service"
	"github.com/aussiebroadwan/orgdir/internal/directory/store"
	"github.com/aussiebroadwan/orgdir/pkg/httpx"
	"github.com/aussiebroadwan/orgdir/pkg/jwtx"
	"github.com/aussiebroadwan/orgdir/pkg/slogx"

	_ "github.com/aussiebroadwan/orgdir/api/directory" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       jwtx.Signer
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	RegistrationService *service.RegistrationService
	SessionService      *service.SessionService
	DirectoryService    *service.DirectoryService
}

func NewRouter(
	signer jwtx.Signer,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerOrganisations()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Organisation Directory Service API
//	@version		0.1.0
//	@description	Multi-tenant user and organisation directory with password-based
//	@description	authentication and JWT session identity. Identity tokens are signed
//	@description	with EdDSA (Ed25519).
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/orgdir
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT identity token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{RegistrationService: r.RegistrationService}
	loginHandler := &LoginHandler{SessionService: r.SessionService}

	r.Mux.Handle("POST /auth/register", registerHandler)
	r.Mux.Handle("POST /auth/login", loginHandler)
}

func (r *Router) registerUsers() {
	h := &UserHandler{DirectoryService: r.DirectoryService}

	secured := httpx.Chain(http.HandlerFunc(h.HandleGet),
		httpx.AuthnMiddleware(r.verifier), // verify JWT (iss/exp)
	)

	r.Mux.Handle("GET /api/users/{id}", secured)
}

func (r *Router) registerOrganisations() {
	orgHandler := &OrganisationHandler{DirectoryService: r.DirectoryService}
	memberHandler := &OrgMemberHandler{DirectoryService: r.DirectoryService}

	securedList := httpx.Chain(http.HandlerFunc(orgHandler.HandleList),
		httpx.AuthnMiddleware(r.verifier),
	)
	securedGet := httpx.Chain(http.HandlerFunc(orgHandler.HandleGet),
		httpx.AuthnMiddleware(r.verifier),
	)
	securedCreate := httpx.Chain(http.HandlerFunc(orgHandler.HandleCreate),
		httpx.AuthnMiddleware(r.verifier),
	)
	securedAddMember := httpx.Chain(http.HandlerFunc(memberHandler.HandleAdd),
		httpx.AuthnMiddleware(r.verifier),
	)

	r.Mux.Handle("GET /api/organisations", securedList)
	r.Mux.Handle("POST /api/organisations", securedCreate)
	r.Mux.Handle("GET /api/organisations/{orgId}", securedGet)
	r.Mux.Handle("POST /api/organisations/{orgId}/users", securedAddMember)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer))
}
