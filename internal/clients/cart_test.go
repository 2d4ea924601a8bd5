package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Parv9879/safare/internal/cart"
)

func TestCartClientAddLineItems(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotPath string
		var gotBody struct {
			Items []cart.LineItemRef `json:"items"`
		}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
				t.Errorf("decode request: %v", err)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		}))
		defer srv.Close()

		cc := NewCartClient(NewClient("cart-service", srv.URL, srv.Client()))
		err := cc.AddLineItems(context.Background(), "user-1", []cart.LineItemRef{{ProductID: "p1", Quantity: 2}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if gotPath != "/api/cart/user-1/items" {
			t.Fatalf("unexpected path %q", gotPath)
		}
		if len(gotBody.Items) != 1 || gotBody.Items[0].ProductID != "p1" || gotBody.Items[0].Quantity != 2 {
			t.Fatalf("unexpected request body %+v", gotBody)
		}
	})

	t.Run("error status in body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"error","error":"out of stock"}`))
		}))
		defer srv.Close()

		cc := NewCartClient(NewClient("cart-service", srv.URL, srv.Client()))
		err := cc.AddLineItems(context.Background(), "user-1", []cart.LineItemRef{{ProductID: "p1", Quantity: 1}})
		if err == nil {
			t.Fatal("expected error for status \"error\"")
		}
	})

	t.Run("non-2xx response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		cc := NewCartClient(NewClient("cart-service", srv.URL, srv.Client()))
		err := cc.AddLineItems(context.Background(), "user-1", []cart.LineItemRef{{ProductID: "p1", Quantity: 1}})
		if err == nil {
			t.Fatal("expected error for 500 response")
		}
	})

	t.Run("undecodable body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		cc := NewCartClient(NewClient("cart-service", srv.URL, srv.Client()))
		err := cc.AddLineItems(context.Background(), "user-1", []cart.LineItemRef{{ProductID: "p1", Quantity: 1}})
		if err == nil {
			t.Fatal("expected error for undecodable body")
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // connection refused

		cc := NewCartClient(NewClient("cart-service", srv.URL, &http.Client{}))
		err := cc.AddLineItems(context.Background(), "user-1", []cart.LineItemRef{{ProductID: "p1", Quantity: 1}})
		if err == nil {
			t.Fatal("expected error for refused connection")
		}
	})
}
