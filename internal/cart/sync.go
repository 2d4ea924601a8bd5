package cart

import (
	"context"
	"fmt"
	"log"
)

// LineItemRef is the wire shape sent to the remote cart API: a product
// reference plus quantity, no display fields.
type LineItemRef struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// RemoteCart is the authoritative cart API for authenticated users.
// clients.CartClient implements it.
type RemoteCart interface {
	AddLineItems(ctx context.Context, userID string, items []LineItemRef) error
}

// SyncError reports that a remote-confirmed mutation was dropped. The local
// cart is unchanged when this is returned.
type SyncError struct {
	Reason string
	Err    error
}

func (e *SyncError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cart sync failed: %s: %v", e.Reason, e.Err)
	}
	return "cart sync failed: " + e.Reason
}

func (e *SyncError) Unwrap() error { return e.Err }

// ErrInvalidQuantity rejects non-positive quantities before any side effect.
var ErrInvalidQuantity = fmt.Errorf("quantity must be a positive integer")

// SyncAdapter decides whether a cart mutation must be confirmed by the remote
// cart API before being applied locally.
//
// Guest sessions (empty userID) commit locally and never touch the network.
// Authenticated sessions make exactly one remote call per add; the local
// mutation is applied only after the remote confirms, so local state stays a
// cache of the confirmed remote state. A failed remote call leaves the local
// cart untouched and is not retried.
type SyncAdapter struct {
	remote RemoteCart
	logger *log.Logger
}

func NewSyncAdapter(remote RemoteCart, logger *log.Logger) *SyncAdapter {
	return &SyncAdapter{remote: remote, logger: logger}
}

// AddToCart adds quantity units of p to the session's cart. It returns the
// new snapshot, or a *SyncError when the remote rejected the add (the
// snapshot return is zero in that case and the store is unchanged).
func (a *SyncAdapter) AddToCart(ctx context.Context, store *Store, userID string, p Product, quantity int) (State, error) {
	if quantity < 1 {
		return State{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	if p.ID == "" {
		return State{}, fmt.Errorf("product id is required")
	}

	item := LineItem{Product: p, Quantity: quantity}

	if userID == "" {
		// Guest path: local-only, always succeeds.
		return store.Dispatch(AddItems{Items: []LineItem{item}}), nil
	}

	refs := []LineItemRef{{ProductID: p.ID, Quantity: quantity}}
	if err := a.remote.AddLineItems(ctx, userID, refs); err != nil {
		a.logger.Printf("add to cart dropped for user %s, product %s: %v", userID, p.ID, err)
		return State{}, &SyncError{Reason: "remote cart rejected add", Err: err}
	}

	return store.Dispatch(AddItems{Items: []LineItem{item}}), nil
}
