package httpapi

import "github.com/Parv9879/safare/internal/cart"

type AddCartItemRequest struct {
	Product  cart.Product `json:"product"`
	Quantity int          `json:"quantity"`
}

type CartResponse struct {
	Items []cart.LineItem `json:"items"`
	Count int             `json:"count"`
}

type AuthenticateRequest struct {
	UserID string `json:"userId"`
}

func toCartResponse(s cart.State) CartResponse {
	items := s.Items
	if items == nil {
		items = []cart.LineItem{}
	}
	return CartResponse{Items: items, Count: s.ItemCount()}
}
