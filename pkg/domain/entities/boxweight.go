package entities

import "encoding/json"

// CustomerBoxWeights holds the three independent per-material weight tables
// of one customer, one per order type.
type CustomerBoxWeights struct {
	Standard map[MaterialID]Grams `json:"standard,omitempty"`
	Extra    map[MaterialID]Grams `json:"extra,omitempty"`
	Bulk     map[MaterialID]Grams `json:"bulk,omitempty"`
}

// UnmarshalJSON accepts both the current three-table shape and the legacy
// flat materialId→grams map, which becomes the standard table and is copied
// into the extra and bulk tables.
func (w *CustomerBoxWeights) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	_, hasStandard := raw["standard"]
	_, hasExtra := raw["extra"]
	_, hasBulk := raw["bulk"]
	if len(raw) == 0 || hasStandard || hasExtra || hasBulk {
		type alias CustomerBoxWeights
		return json.Unmarshal(data, (*alias)(w))
	}

	var flat map[MaterialID]Grams
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	w.Standard = flat
	w.Extra = cloneGramsMap(flat)
	w.Bulk = cloneGramsMap(flat)
	return nil
}

// table returns the map backing one order type, nil when absent.
func (w CustomerBoxWeights) table(orderType OrderType) map[MaterialID]Grams {
	switch orderType.Normalize() {
	case OrderTypeExtra:
		return w.Extra
	case OrderTypeBulk:
		return w.Bulk
	default:
		return w.Standard
	}
}

// BoxWeightTable maps customers to their per-order-type box weights.
type BoxWeightTable map[CustomerID]CustomerBoxWeights

// Weight resolves grams per box for a (customer, order type, material)
// path. Any missing level defaults to DefaultBoxWeightGrams; a stored zero
// also falls back to the default, matching the source behavior.
func (t BoxWeightTable) Weight(customerID CustomerID, orderType OrderType, materialID MaterialID) Grams {
	if t == nil {
		return DefaultBoxWeightGrams
	}
	grams := t[customerID].table(orderType)[materialID]
	if grams == 0 {
		return DefaultBoxWeightGrams
	}
	return grams
}

// Set stores grams per box, creating intermediate maps as needed.
func (t BoxWeightTable) Set(customerID CustomerID, orderType OrderType, materialID MaterialID, grams Grams) {
	weights := t[customerID]
	switch orderType.Normalize() {
	case OrderTypeExtra:
		if weights.Extra == nil {
			weights.Extra = map[MaterialID]Grams{}
		}
		weights.Extra[materialID] = grams
	case OrderTypeBulk:
		if weights.Bulk == nil {
			weights.Bulk = map[MaterialID]Grams{}
		}
		weights.Bulk[materialID] = grams
	default:
		if weights.Standard == nil {
			weights.Standard = map[MaterialID]Grams{}
		}
		weights.Standard[materialID] = grams
	}
	t[customerID] = weights
}

// EnsureCustomer guarantees the customer has all three tables allocated.
func (t BoxWeightTable) EnsureCustomer(customerID CustomerID) {
	weights := t[customerID]
	if weights.Standard == nil {
		weights.Standard = map[MaterialID]Grams{}
	}
	if weights.Extra == nil {
		weights.Extra = map[MaterialID]Grams{}
	}
	if weights.Bulk == nil {
		weights.Bulk = map[MaterialID]Grams{}
	}
	t[customerID] = weights
}

// EnsureEntry back-fills the default weight for a (customer, material) pair
// in all three tables without touching existing entries.
func (t BoxWeightTable) EnsureEntry(customerID CustomerID, materialID MaterialID) {
	t.EnsureCustomer(customerID)
	weights := t[customerID]
	for _, table := range []map[MaterialID]Grams{weights.Standard, weights.Extra, weights.Bulk} {
		if _, ok := table[materialID]; !ok {
			table[materialID] = DefaultBoxWeightGrams
		}
	}
}
