package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Parv9879/safare/internal/cart"
)

// CartClient talks to the remote cart API, the system of record for
// authenticated carts. It implements cart.RemoteCart.
type CartClient struct{ c *Client }

func NewCartClient(c *Client) *CartClient { return &CartClient{c: c} }

type addLineItemsRequest struct {
	Items []cart.LineItemRef `json:"items"`
}

type cartStatusResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// AddLineItems posts the line items to the user's remote cart. Any outcome
// other than a 2xx response with status "ok" is an error.
func (cc *CartClient) AddLineItems(ctx context.Context, userID string, items []cart.LineItemRef) error {
	payload, err := json.Marshal(addLineItemsRequest{Items: items})
	if err != nil {
		return fmt.Errorf("encode add line items: %w", err)
	}

	resp, err := cc.c.Do(ctx, http.MethodPost, "/api/cart/"+userID+"/items", "", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s request failed: %w", cc.c.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s returned %s", cc.c.Name, resp.Status)
	}

	var body cartStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode %s response: %w", cc.c.Name, err)
	}
	if body.Status != "ok" {
		return fmt.Errorf("%s status %q: %s", cc.c.Name, body.Status, body.Error)
	}

	return nil
}
