package cart

// Product is the denormalized display copy of a catalog product, captured at
// add time. The catalog owns the truth; these fields may drift from it.
type Product struct {
	ID    string  `json:"productId"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image,omitempty"`
}

// LineItem is one cart entry, keyed by product id. Quantity >= 1.
type LineItem struct {
	Product
	Quantity int `json:"quantity"`
}

// State is the cart snapshot for one session. Items keep insertion order,
// and a product id appears at most once.
type State struct {
	Items []LineItem `json:"items"`
}

// ItemCount is the summed quantity across all lines, used for the badge.
func (s State) ItemCount() int {
	total := 0
	for _, it := range s.Items {
		total += it.Quantity
	}
	return total
}

func cloneItems(items []LineItem) []LineItem {
	if len(items) == 0 {
		return nil
	}
	cp := make([]LineItem, len(items))
	copy(cp, items)
	return cp
}
