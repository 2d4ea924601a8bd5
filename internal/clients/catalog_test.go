package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCatalogClientFetchProducts(t *testing.T) {
	t.Run("decodes product list", func(t *testing.T) {
		var gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"productId":"p1","name":"linen shirt","price":59.9,"image":"/img/p1.jpg"},
				{"productId":"p2","name":"chore coat","price":120}
			]`))
		}))
		defer srv.Close()

		cc := NewCatalogClient(NewClient("catalog-service", srv.URL, srv.Client()))
		products, err := cc.FetchProducts(context.Background(), "men", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if gotQuery != "category=men&new=true" {
			t.Fatalf("unexpected query %q", gotQuery)
		}
		if len(products) != 2 || products[0].ID != "p1" || products[1].Price != 120 {
			t.Fatalf("unexpected products %+v", products)
		}
	})

	t.Run("no filters means no query", func(t *testing.T) {
		var gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			_, _ = w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		cc := NewCatalogClient(NewClient("catalog-service", srv.URL, srv.Client()))
		if _, err := cc.FetchProducts(context.Background(), "", false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotQuery != "" {
			t.Fatalf("unexpected query %q", gotQuery)
		}
	})

	t.Run("non-200 response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		cc := NewCatalogClient(NewClient("catalog-service", srv.URL, srv.Client()))
		if _, err := cc.FetchProducts(context.Background(), "", false); err == nil {
			t.Fatal("expected error for 503 response")
		}
	})
}
