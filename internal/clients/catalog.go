package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Parv9879/safare/internal/cart"
)

type CatalogClient struct{ c *Client }

func NewCatalogClient(c *Client) *CatalogClient { return &CatalogClient{c: c} }

// FetchProducts lists catalog products, optionally filtered by category and
// restricted to new arrivals.
func (cc *CatalogClient) FetchProducts(ctx context.Context, category string, newest bool) ([]cart.Product, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if newest {
		q.Set("new", "true")
	}

	resp, err := cc.c.Do(ctx, http.MethodGet, "/api/catalog/products", q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", cc.c.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned %s", cc.c.Name, resp.Status)
	}

	var products []cart.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", cc.c.Name, err)
	}

	return products, nil
}
