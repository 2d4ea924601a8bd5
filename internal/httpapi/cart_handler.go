package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Parv9879/safare/internal/cart"
	"github.com/Parv9879/safare/internal/middleware"
	"github.com/Parv9879/safare/internal/model"
)

const upstreamDeadline = 3 * time.Second

type CartHandler struct {
	sync *cart.SyncAdapter
}

func NewCartHandler(sync *cart.SyncAdapter) *CartHandler {
	return &CartHandler{sync: sync}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		writeError(w, r, http.StatusInternalServerError, "no session")
		return
	}

	writeJSON(w, http.StatusOK, toCartResponse(sess.Cart.Snapshot()))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		writeError(w, r, http.StatusInternalServerError, "no session")
		return
	}

	var body AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json")
		return
	}
	if body.Product.ID == "" {
		writeError(w, r, http.StatusBadRequest, "missing product id")
		return
	}
	if body.Quantity == 0 {
		// Unspecified quantity means one unit.
		body.Quantity = 1
	}
	if body.Quantity < 0 {
		writeError(w, r, http.StatusBadRequest, "quantity must be positive")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), upstreamDeadline)
	defer cancel()

	snap, err := h.sync.AddToCart(ctx, sess.Cart, sess.UserID(), body.Product, body.Quantity)
	if err != nil {
		var syncErr *cart.SyncError
		if errors.As(err, &syncErr) {
			writeError(w, r, http.StatusBadGateway, "cart sync failed, item not added")
			return
		}
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toCartResponse(snap))
}

type SessionHandler struct {
	sessions SessionDirectory
}

// SessionDirectory is the slice of session.Manager the handlers need.
type SessionDirectory interface {
	Authenticate(id, userID string) error
	Logout(id string) error
}

func NewSessionHandler(sessions SessionDirectory) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Authenticate marks the current session as belonging to a user. Credential
// verification happens upstream; this only records the marker the sync
// adapter branches on.
func (h *SessionHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		writeError(w, r, http.StatusInternalServerError, "no session")
		return
	}

	var body AuthenticateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json")
		return
	}
	if body.UserID == "" {
		writeError(w, r, http.StatusBadRequest, "missing userId")
		return
	}

	if err := h.sessions.Authenticate(sess.ID, body.UserID); err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to authenticate session")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		writeError(w, r, http.StatusInternalServerError, "no session")
		return
	}

	if err := h.sessions.Logout(sess.ID); err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to log out")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{
		Error:         msg,
		CorrelationID: middleware.GetCorrelationID(r.Context()),
	})
}
