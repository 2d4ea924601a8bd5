package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Parv9879/safare/internal/cart"
	"github.com/Parv9879/safare/internal/config"
	"github.com/Parv9879/safare/internal/middleware"
	"github.com/Parv9879/safare/internal/session"
	"github.com/go-chi/chi/v5"
)

type Deps struct {
	Logger *log.Logger
	Cfg    config.Config

	Sessions *session.Manager
	Sync     *cart.SyncAdapter
	Catalog  CatalogReader
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	// Middlewares (outer -> inner). CorrelationID is outermost so the
	// logging and recover layers can read it.
	r.Use(middleware.CorrelationID)
	r.Use(middleware.CORS(d.Cfg.CORSAllowOrigins))
	r.Use(middleware.Logging(d.Logger))
	r.Use(middleware.Recover(d.Logger))
	r.Use(middleware.Session(d.Sessions))

	r.Get("/health", healthHandler)

	catalogHandler := NewCatalogHandler(d.Catalog, d.Logger)
	r.Get("/products", catalogHandler.ListProducts)

	cartHandler := NewCartHandler(d.Sync)
	sessionHandler := NewSessionHandler(d.Sessions)
	r.Route("/me", func(r chi.Router) {
		r.Get("/cart", cartHandler.GetCart)
		r.Post("/cart/items", cartHandler.AddItem)
		r.Post("/session", sessionHandler.Authenticate)
		r.Post("/logout", sessionHandler.Logout)
	})

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok", "service": "storefront"}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
