// Package requirements computes the daily raw-material tonnage needed to
// fulfil every order and planned action of one calendar day. It is a pure
// read-only computation over a document snapshot: it never mutates, never
// errors, and degrades every failed lookup to a documented default.
package requirements

import "github.com/dzcontrol/planner/pkg/domain/entities"

// Filter narrows a computation to the KFC customer or its complement. The
// zero value keeps every customer. With no customer named "kfc" in the
// document both filters are no-ops.
type Filter string

const (
	FilterAll    Filter = ""
	FilterKfc    Filter = "kfc"
	FilterNonKfc Filter = "non-kfc"
)

// Needs maps non-mix material ids to required gross kilograms.
type Needs map[entities.MaterialID]float64

// dayItem is one flattened demand line: an order item or a planned-action
// day, tagged with the customer and order type that price its boxes.
type dayItem struct {
	materialID entities.MaterialID
	boxCount   int
	customerID entities.CustomerID
	orderType  entities.OrderType
	override   []entities.MixComponent
}

// DailyNeeds computes gross per-material kilogram requirements for a day.
//
// The result holds an entry (possibly 0) for every non-mix material in the
// document, plus any ids reached through mix components or KFC compositions.
// Loss percentages convert net to gross weight as net / (1 - loss/100); a
// loss of 100 or more is passed through unguarded and yields a non-finite
// value, same as the system this planner replaces.
func DailyNeeds(doc *entities.Document, day entities.Day, filter Filter) Needs {
	needs := Needs{}
	for i := range doc.Materials {
		if !doc.Materials[i].IsMix {
			needs[doc.Materials[i].ID] = 0
		}
	}

	for _, item := range collectDayItems(doc, day, filter) {
		material := doc.Material(item.materialID)
		if material == nil || !material.IsActive() {
			continue
		}

		grams := doc.BoxWeights.Weight(item.customerID, item.orderType, material.ID)
		netKg := float64(item.boxCount) * float64(grams) / 1000

		switch {
		case material.IsMix:
			components := item.override
			if components == nil {
				if def := doc.MixFor(material.ID); def != nil {
					components = def.Components
				}
			}
			for _, comp := range components {
				componentNet := netKg * comp.Percentage / 100
				needs[comp.MaterialID] += grossWeight(componentNet, comp.LossPercent)
			}

		case material.IsKfcProduct():
			comp := doc.CompositionFor(material.ID)
			if comp == nil || comp.BaseMaterialID == "" {
				continue
			}
			needs[comp.BaseMaterialID] += grossWeight(netKg, comp.LossPercent)

		default:
			loss := 0.0
			if product := doc.ProductFor(item.customerID, material.ID); product != nil {
				loss = product.LossPercent
			}
			needs[material.ID] += grossWeight(netKg, loss)
		}
	}

	return needs
}

// TotalNeeds sums the KFC and non-KFC runs entrywise. With a KFC customer
// present this equals the unfiltered run; without one, running both filters
// would double-count, so the unfiltered computation is used directly.
func TotalNeeds(doc *entities.Document, day entities.Day) Needs {
	if _, ok := doc.KfcCustomerID(); !ok {
		return DailyNeeds(doc, day, FilterAll)
	}
	total := DailyNeeds(doc, day, FilterNonKfc)
	for id, kg := range DailyNeeds(doc, day, FilterKfc) {
		total[id] += kg
	}
	return total
}

// collectDayItems flattens the day's filtered orders and planned actions.
// Planned actions contribute one synthetic standard-type item per day with
// a positive daily count.
func collectDayItems(doc *entities.Document, day entities.Day, filter Filter) []dayItem {
	orders := doc.OrdersOn(day)
	actions := doc.ActionsOn(day)

	if kfcID, ok := doc.KfcCustomerID(); ok && filter != FilterAll {
		keep := func(customerID entities.CustomerID) bool {
			if filter == FilterKfc {
				return customerID == kfcID
			}
			return customerID != kfcID
		}
		orders = filterOrders(orders, keep)
		actions = filterActions(actions, keep)
	}

	var items []dayItem
	for _, order := range orders {
		for _, line := range order.Items {
			items = append(items, dayItem{
				materialID: line.MaterialID,
				boxCount:   line.BoxCount,
				customerID: order.CustomerID,
				orderType:  order.Type.Normalize(),
				override:   line.RatioOverride,
			})
		}
	}
	for _, action := range actions {
		if boxes := action.BoxesFor(day); boxes > 0 {
			items = append(items, dayItem{
				materialID: action.MaterialID,
				boxCount:   boxes,
				customerID: action.CustomerID,
				orderType:  entities.OrderTypeStandard,
			})
		}
	}
	return items
}

func filterOrders(orders []entities.Order, keep func(entities.CustomerID) bool) []entities.Order {
	var kept []entities.Order
	for _, o := range orders {
		if keep(o.CustomerID) {
			kept = append(kept, o)
		}
	}
	return kept
}

func filterActions(actions []entities.PlannedAction, keep func(entities.CustomerID) bool) []entities.PlannedAction {
	var kept []entities.PlannedAction
	for _, a := range actions {
		if keep(a.CustomerID) {
			kept = append(kept, a)
		}
	}
	return kept
}

// grossWeight converts net kilograms to the gross input weight implied by a
// manufacturing loss percentage. No guard for loss >= 100.
func grossWeight(netKg, lossPercent float64) float64 {
	return netKg / (1 - lossPercent/100)
}
