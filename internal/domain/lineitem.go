package domain

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// LineItem is one entry of an order's point-in-time product snapshot. It is
// decoupled from the live product record: the referenced product may have been
// deleted or repriced since the order was placed.
type LineItem struct {
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type lineItemWire struct {
	ProductID *int     `json:"product_id"`
	Quantity  *int     `json:"quantity"`
	Price     *float64 `json:"price"`
}

// EncodeLineItems serializes items into the stored snapshot format.
func EncodeLineItems(items []LineItem) ([]byte, error) {
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("could not encode line items: %w", err)
	}
	return raw, nil
}

// DecodeLineItems parses a stored snapshot. Invalid JSON or an entry missing
// any of product_id, quantity or price yields an error wrapping
// ErrMalformedLineItems. Tolerating such snapshots is the caller's policy,
// not the codec's.
func DecodeLineItems(raw []byte) ([]LineItem, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty snapshot", ErrMalformedLineItems)
	}

	var wire []lineItemWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLineItems, err)
	}

	items := make([]LineItem, 0, len(wire))
	for i, w := range wire {
		if w.ProductID == nil || w.Quantity == nil || w.Price == nil {
			return nil, fmt.Errorf("%w: entry %d is missing a required field", ErrMalformedLineItems, i)
		}
		items = append(items, LineItem{
			ProductID: *w.ProductID,
			Quantity:  *w.Quantity,
			Price:     *w.Price,
		})
	}
	return items, nil
}
