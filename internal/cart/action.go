package cart

// Action is the closed set of cart mutations. All state changes flow through
// Reduce; nothing else may touch State.Items.
type Action interface {
	isAction()
}

// AddItems merges the payload into the cart in payload order.
type AddItems struct {
	Items []LineItem
}

// Reset clears the cart. Issued on logout.
type Reset struct{}

func (AddItems) isAction() {}
func (Reset) isAction()    {}

// Reduce applies an action to a state and returns the next state. It is pure:
// the input state is never modified.
//
// Merge rule: an incoming item whose product id already has a line increments
// that line's quantity in place (first-seen position retained); otherwise the
// item is appended. Non-positive quantities are dropped to preserve the
// Quantity >= 1 invariant.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case AddItems:
		items := cloneItems(s.Items)
		for _, in := range a.Items {
			if in.Quantity < 1 {
				continue
			}
			merged := false
			for i := range items {
				if items[i].ID == in.ID {
					items[i].Quantity += in.Quantity
					merged = true
					break
				}
			}
			if !merged {
				items = append(items, in)
			}
		}
		return State{Items: items}
	case Reset:
		return State{}
	}
	return s
}
