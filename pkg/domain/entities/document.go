package entities

import "encoding/json"

// Document is the single aggregate the whole planner operates on. Every
// entity lives here, referenced only by id; the requirements computation
// reads it, the application services replace it wholesale (copy-on-write),
// and the jsonfile store persists it as one blob.
type Document struct {
	Materials       []RawMaterial                 `json:"suroviny"`
	Customers       []Customer                    `json:"zakaznici"`
	BoxWeights      BoxWeightTable                `json:"boxWeights"`
	Orders          []Order                       `json:"orders"`
	MixDefinitions  map[MaterialID]MixDefinition  `json:"mixDefinitions"`
	KfcCompositions map[MaterialID]KfcComposition `json:"kfcCompositions"`
	PlannedActions  []PlannedAction               `json:"plannedActions"`
	Products        []Product                     `json:"products"`

	Changes         []Change           `json:"changes"`
	WheelchairUsers []WheelchairUser   `json:"wheelchairUsers"`
	WheelchairPlan  WheelchairSchedule `json:"wheelchairSchedule"`
	People          []PCPerson         `json:"people"`
	PeopleEvents    []PCEvent          `json:"peopleEvents"`
	DocumentFolders []DocumentFolder   `json:"documentFolders"`
	DocumentFiles   []DocumentFile     `json:"documentFiles"`
	WorkPositions   []WorkPosition     `json:"workPositions"`

	SkewerOrderStatus     map[Day]map[CustomerID]bool `json:"spizyOrdersStatus"`
	ExtraProductionStatus map[Day]map[string]bool     `json:"extraProductionStatus"`

	// Unknown carries top-level keys this build does not understand, so a
	// document written by a newer build survives a load/save round trip.
	Unknown map[string]json.RawMessage `json:"-"`
}

// documentKeys are the top-level JSON keys the struct decodes itself.
var documentKeys = map[string]bool{
	"suroviny": true, "zakaznici": true, "boxWeights": true, "orders": true,
	"mixDefinitions": true, "kfcCompositions": true, "plannedActions": true,
	"products": true, "changes": true, "wheelchairUsers": true,
	"wheelchairSchedule": true, "people": true, "peopleEvents": true,
	"documentFolders": true, "documentFiles": true, "workPositions": true,
	"spizyOrdersStatus": true, "extraProductionStatus": true,
}

// UnmarshalJSON decodes the known fields and tucks every other top-level
// key into Unknown.
func (d *Document) UnmarshalJSON(data []byte) error {
	type alias Document
	if err := json.Unmarshal(data, (*alias)(d)); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, value := range raw {
		if documentKeys[key] {
			continue
		}
		if d.Unknown == nil {
			d.Unknown = map[string]json.RawMessage{}
		}
		d.Unknown[key] = value
	}
	return nil
}

// MarshalJSON writes the known fields merged with the preserved unknown keys.
func (d Document) MarshalJSON() ([]byte, error) {
	type alias Document
	base, err := json.Marshal(alias(d))
	if err != nil {
		return nil, err
	}
	if len(d.Unknown) == 0 {
		return base, nil
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for key, value := range d.Unknown {
		if _, ok := merged[key]; !ok {
			merged[key] = value
		}
	}
	return json.Marshal(merged)
}

// Material finds a raw material by id, nil when absent.
func (d *Document) Material(id MaterialID) *RawMaterial {
	for i := range d.Materials {
		if d.Materials[i].ID == id {
			return &d.Materials[i]
		}
	}
	return nil
}

// Customer finds a customer by id, nil when absent.
func (d *Document) Customer(id CustomerID) *Customer {
	for i := range d.Customers {
		if d.Customers[i].ID == id {
			return &d.Customers[i]
		}
	}
	return nil
}

// MaterialName resolves a material's display name, "N/A" for dangling ids.
func (d *Document) MaterialName(id MaterialID) string {
	if m := d.Material(id); m != nil {
		return m.Name
	}
	return "N/A"
}

// CustomerName resolves a customer's display name, "N/A" for dangling ids.
func (d *Document) CustomerName(id CustomerID) string {
	if c := d.Customer(id); c != nil {
		return c.Name
	}
	return "N/A"
}

// KfcCustomerID scans for the customer named "kfc" (case-insensitive).
func (d *Document) KfcCustomerID() (CustomerID, bool) {
	for i := range d.Customers {
		if d.Customers[i].IsKfc() {
			return d.Customers[i].ID, true
		}
	}
	return "", false
}

// MixFor returns the global mix definition for a mix material, nil when the
// material has none.
func (d *Document) MixFor(id MaterialID) *MixDefinition {
	if def, ok := d.MixDefinitions[id]; ok {
		return &def
	}
	return nil
}

// CompositionFor returns the KFC composition for a KFC product, nil when
// the product has none.
func (d *Document) CompositionFor(id MaterialID) *KfcComposition {
	if comp, ok := d.KfcCompositions[id]; ok {
		return &comp
	}
	return nil
}

// ProductFor finds the product a customer orders a material as, nil when
// the pair has no product entry.
func (d *Document) ProductFor(customerID CustomerID, materialID MaterialID) *Product {
	for i := range d.Products {
		if d.Products[i].CustomerID == customerID && d.Products[i].MaterialID == materialID {
			return &d.Products[i]
		}
	}
	return nil
}

// OrdersOn returns the orders dated exactly on the day.
func (d *Document) OrdersOn(day Day) []Order {
	var orders []Order
	for _, o := range d.Orders {
		if o.Date == day {
			orders = append(orders, o)
		}
	}
	return orders
}

// ActionsOn returns the planned actions whose range covers the day.
func (d *Document) ActionsOn(day Day) []PlannedAction {
	var actions []PlannedAction
	for _, a := range d.PlannedActions {
		if a.ActiveOn(day) {
			actions = append(actions, a)
		}
	}
	return actions
}

// Clone returns a deep copy. Mutating either copy never affects the other,
// which is what lets the store hand out stable snapshots.
func (d *Document) Clone() *Document {
	clone := &Document{
		Materials:       make([]RawMaterial, len(d.Materials)),
		Customers:       append([]Customer(nil), d.Customers...),
		Orders:          make([]Order, len(d.Orders)),
		PlannedActions:  make([]PlannedAction, len(d.PlannedActions)),
		Products:        append([]Product(nil), d.Products...),
		Changes:         append([]Change(nil), d.Changes...),
		WheelchairUsers: append([]WheelchairUser(nil), d.WheelchairUsers...),
		People:          append([]PCPerson(nil), d.People...),
		PeopleEvents:    append([]PCEvent(nil), d.PeopleEvents...),
		DocumentFolders: append([]DocumentFolder(nil), d.DocumentFolders...),
		DocumentFiles:   append([]DocumentFile(nil), d.DocumentFiles...),
		WorkPositions:   append([]WorkPosition(nil), d.WorkPositions...),
	}

	for i, m := range d.Materials {
		if m.Active != nil {
			active := *m.Active
			m.Active = &active
		}
		clone.Materials[i] = m
	}

	if d.BoxWeights != nil {
		clone.BoxWeights = BoxWeightTable{}
		for customerID, weights := range d.BoxWeights {
			clone.BoxWeights[customerID] = CustomerBoxWeights{
				Standard: cloneGramsMap(weights.Standard),
				Extra:    cloneGramsMap(weights.Extra),
				Bulk:     cloneGramsMap(weights.Bulk),
			}
		}
	}

	for i, o := range d.Orders {
		items := make([]OrderItem, len(o.Items))
		for j, item := range o.Items {
			item.RatioOverride = append([]MixComponent(nil), item.RatioOverride...)
			items[j] = item
		}
		o.Items = items
		clone.Orders[i] = o
	}

	if d.MixDefinitions != nil {
		clone.MixDefinitions = map[MaterialID]MixDefinition{}
		for id, def := range d.MixDefinitions {
			def.Components = append([]MixComponent(nil), def.Components...)
			clone.MixDefinitions[id] = def
		}
	}

	if d.KfcCompositions != nil {
		clone.KfcCompositions = map[MaterialID]KfcComposition{}
		for id, comp := range d.KfcCompositions {
			clone.KfcCompositions[id] = comp
		}
	}

	for i, a := range d.PlannedActions {
		counts := make(map[Day]int, len(a.DailyCounts))
		for day, boxes := range a.DailyCounts {
			counts[day] = boxes
		}
		a.DailyCounts = counts
		clone.PlannedActions[i] = a
	}

	if d.WheelchairPlan != nil {
		clone.WheelchairPlan = WheelchairSchedule{}
		for week, days := range d.WheelchairPlan {
			weekCopy := map[Day]DayAssignments{}
			for day, slots := range days {
				weekCopy[day] = DayAssignments{
					Morning:   append([]string(nil), slots.Morning...),
					Afternoon: append([]string(nil), slots.Afternoon...),
					Night:     append([]string(nil), slots.Night...),
					Vacation:  append([]string(nil), slots.Vacation...),
				}
			}
			clone.WheelchairPlan[week] = weekCopy
		}
	}

	clone.SkewerOrderStatus = cloneStatusMap(d.SkewerOrderStatus)
	clone.ExtraProductionStatus = cloneStatusMap(d.ExtraProductionStatus)

	if d.Unknown != nil {
		clone.Unknown = map[string]json.RawMessage{}
		for key, value := range d.Unknown {
			clone.Unknown[key] = append(json.RawMessage(nil), value...)
		}
	}

	return clone
}

func cloneGramsMap(src map[MaterialID]Grams) map[MaterialID]Grams {
	if src == nil {
		return nil
	}
	dst := make(map[MaterialID]Grams, len(src))
	for id, grams := range src {
		dst[id] = grams
	}
	return dst
}

func cloneStatusMap[K comparable](src map[Day]map[K]bool) map[Day]map[K]bool {
	if src == nil {
		return nil
	}
	dst := make(map[Day]map[K]bool, len(src))
	for day, flags := range src {
		flagsCopy := make(map[K]bool, len(flags))
		for key, done := range flags {
			flagsCopy[key] = done
		}
		dst[day] = flagsCopy
	}
	return dst
}
