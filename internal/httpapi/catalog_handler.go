package httpapi

import (
	"context"
	"log"
	"net/http"

	"github.com/Parv9879/safare/internal/cart"
)

// CatalogReader is the slice of the catalog client the handler needs.
type CatalogReader interface {
	FetchProducts(ctx context.Context, category string, newest bool) ([]cart.Product, error)
}

type CatalogHandler struct {
	catalog CatalogReader
	logger  *log.Logger
}

func NewCatalogHandler(catalog CatalogReader, logger *log.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: logger}
}

// ListProducts proxies the catalog. A fetch failure degrades to an empty
// list: the storefront renders nothing rather than an error page.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	newest := r.URL.Query().Get("new") == "true"

	ctx, cancel := context.WithTimeout(r.Context(), upstreamDeadline)
	defer cancel()

	products, err := h.catalog.FetchProducts(ctx, category, newest)
	if err != nil {
		h.logger.Printf("catalog fetch failed: %v", err)
		products = nil
	}
	if products == nil {
		products = []cart.Product{}
	}

	writeJSON(w, http.StatusOK, products)
}
