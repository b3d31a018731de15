package entities

import (
	"encoding/json"
	"fmt"
)

// OrderType distinguishes the three independent box-weight tables an order
// can draw from.
type OrderType string

const (
	OrderTypeStandard OrderType = "standard"
	OrderTypeExtra    OrderType = "extra"
	OrderTypeBulk     OrderType = "bulk"
)

// OrderTypes lists the valid order types in table order.
var OrderTypes = []OrderType{OrderTypeStandard, OrderTypeExtra, OrderTypeBulk}

// Normalize maps an absent order type to the standard table.
func (t OrderType) Normalize() OrderType {
	if t == "" {
		return OrderTypeStandard
	}
	return t
}

// Valid reports whether the order type is one of the three known tables.
func (t OrderType) Valid() bool {
	switch t {
	case OrderTypeStandard, OrderTypeExtra, OrderTypeBulk:
		return true
	}
	return false
}

func (t OrderType) String() string {
	return string(t)
}

// OrderItem is one requested line of an order. RatioOverride replaces the
// global mix definition for this line only, and is meaningful only when the
// referenced material is a mix.
type OrderItem struct {
	ID            string         `json:"id"`
	MaterialID    MaterialID     `json:"surovinaId"`
	BoxCount      int            `json:"boxCount"`
	RatioOverride []MixComponent `json:"ratioOverride,omitempty"`
}

// NewOrderItem creates a validated OrderItem.
func NewOrderItem(id string, materialID MaterialID, boxCount int) (*OrderItem, error) {
	if id == "" {
		return nil, fmt.Errorf("order item id cannot be empty")
	}
	if materialID == "" {
		return nil, fmt.Errorf("order item material id cannot be empty")
	}
	if boxCount < 0 {
		return nil, fmt.Errorf("box count cannot be negative, got %d", boxCount)
	}
	return &OrderItem{ID: id, MaterialID: materialID, BoxCount: boxCount}, nil
}

// Order is a customer's date-stamped box request under one order type.
type Order struct {
	ID         string      `json:"id"`
	Date       Day         `json:"date"`
	CustomerID CustomerID  `json:"customerId"`
	Type       OrderType   `json:"orderType"`
	Items      []OrderItem `json:"items"`
}

// UnmarshalJSON accepts both the current shape and legacy documents that
// carried an isExtra flag instead of an order type.
func (o *Order) UnmarshalJSON(data []byte) error {
	type alias Order
	aux := struct {
		*alias
		IsExtra *bool `json:"isExtra"`
	}{alias: (*alias)(o)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if o.Type == "" && aux.IsExtra != nil {
		if *aux.IsExtra {
			o.Type = OrderTypeExtra
		} else {
			o.Type = OrderTypeStandard
		}
	}
	return nil
}
