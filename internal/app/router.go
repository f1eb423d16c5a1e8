package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/mabrur-erp/mabrur-erp/internal/auth"
	"github.com/mabrur-erp/mabrur-erp/internal/bookings"
	"github.com/mabrur-erp/mabrur-erp/internal/dashboard"
	"github.com/mabrur-erp/mabrur-erp/internal/inventory"
	"github.com/mabrur-erp/mabrur-erp/internal/ledger/accounts"
	"github.com/mabrur-erp/mabrur-erp/internal/ledger/transactions"
	"github.com/mabrur-erp/mabrur-erp/internal/masterdata/airlines"
	"github.com/mabrur-erp/mabrur-erp/internal/masterdata/banks"
	"github.com/mabrur-erp/mabrur-erp/internal/masterdata/facilities"
	"github.com/mabrur-erp/mabrur-erp/internal/masterdata/identity"
	"github.com/mabrur-erp/mabrur-erp/internal/masterdata/packagetypes"
	"github.com/mabrur-erp/mabrur-erp/internal/masterdata/partners"
	"github.com/mabrur-erp/mabrur-erp/internal/masterdata/pilgrims"
	"github.com/mabrur-erp/mabrur-erp/internal/masterdata/suppliers"
	"github.com/mabrur-erp/mabrur-erp/internal/masterdata/visitcities"
	"github.com/mabrur-erp/mabrur-erp/internal/packages"
	"github.com/mabrur-erp/mabrur-erp/internal/simulation"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger *slog.Logger
	Config *Config

	TokenStore *auth.TokenStore

	AuthHandler         *auth.Handler
	AccountsHandler     *accounts.Handler
	TransactionsHandler *transactions.Handler
	BookingsHandler     *bookings.Handler
	PilgrimsHandler     *pilgrims.Handler
	PartnersHandler     *partners.Handler
	SuppliersHandler    *suppliers.Handler
	BanksHandler        *banks.Handler
	AirlinesHandler     *airlines.Handler
	FacilitiesHandler   *facilities.Handler
	VisitCitiesHandler  *visitcities.Handler
	PackageTypesHandler *packagetypes.Handler
	IdentityHandler     *identity.Handler
	PackagesHandler     *packages.Handler
	InventoryHandler    *inventory.Handler
	SimulationHandler   *simulation.Handler
	DashboardHandler    *dashboard.Handler
}

// NewRouter constructs the chi router. Everything except /healthz and
// /auth/login sits behind the bearer token check.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}
	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", func(r chi.Router) {
		params.AuthHandler.MountPublicRoutes(r)
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(params.TokenStore))
			params.AuthHandler.MountProtectedRoutes(r)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(params.TokenStore))

		r.Route("/ledger", func(r chi.Router) {
			r.Route("/accounts", params.AccountsHandler.MountRoutes)
			params.TransactionsHandler.MountRoutes(r)
		})
		r.Route("/bookings", params.BookingsHandler.MountRoutes)

		r.Route("/masterdata", func(r chi.Router) {
			r.Route("/pilgrims", params.PilgrimsHandler.MountRoutes)
			r.Route("/partners", params.PartnersHandler.MountRoutes)
			r.Route("/suppliers", params.SuppliersHandler.MountRoutes)
			r.Route("/banks", params.BanksHandler.MountRoutes)
			r.Route("/airlines", params.AirlinesHandler.MountRoutes)
			r.Route("/facilities", params.FacilitiesHandler.MountRoutes)
			r.Route("/visit-cities", params.VisitCitiesHandler.MountRoutes)
			r.Route("/package-types", params.PackageTypesHandler.MountRoutes)
			r.Route("/identity", params.IdentityHandler.MountRoutes)
		})

		r.Route("/packages", params.PackagesHandler.MountRoutes)
		r.Route("/inventory", params.InventoryHandler.MountRoutes)
		r.Route("/simulations", params.SimulationHandler.MountRoutes)
		r.Route("/dashboard", params.DashboardHandler.MountRoutes)
	})

	return r
}
