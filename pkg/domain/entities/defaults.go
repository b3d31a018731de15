package entities

import "fmt"

// defaultMaterialNames seeds the material catalog of a fresh document, in
// catalog order. Ids are stable ("s01".."s26") so later back-fills can
// detect which rows an older document predates.
var defaultMaterialNames = []string{
	"ŘÍZKY", "STRIPS", "PRSA", "HRBETY", "PRDELE", "HORNÍ STEHNA",
	"SPODNÍ STEHNA", "ČTVRTKY", "KŘÍDLA", "PLACKY", "BANDURY", "STEAK",
	"JÁTRA", "SRDCE", "ŽALUDKY", "KRKY",
	"KFC FILLET", "KFC DRUMSTIK", "KFC DARKFILET", "KFC 9ŘEZ",
	"KFC KŘÍDLA", "KFC STRIPS", "ŠPÍZY",
	"ŠPÍZY - ŠPEK", "ŠPÍZY - KLOBÁSA", "ŠPÍZY - ČILI MANGO",
}

// SkeweredCutletMaterialID is the material skewer production draws from.
const SkeweredCutletMaterialID MaterialID = "s01"

var defaultCustomers = []Customer{
	{ID: "c1", Name: "Ahold"}, {ID: "c2", Name: "Billa"},
	{ID: "c3", Name: "Tesco"}, {ID: "c4", Name: "Kaufland"},
	{ID: "c5", Name: "Lidl"}, {ID: "c6", Name: "Rohlik"},
	{ID: "c7", Name: "KFC"},
}

var defaultWorkPositionNames = []string{
	"bizzerba", "řízky pas", "dočistování", "robot", "icut",
	"maykawa", "manipulant", "mleté maso", "lima", "kfc",
	"špízy", "nezařazené",
}

// DefaultMaterials returns the seeded material catalog.
func DefaultMaterials() []RawMaterial {
	materials := make([]RawMaterial, len(defaultMaterialNames))
	for i, name := range defaultMaterialNames {
		isActive := true
		materials[i] = RawMaterial{
			ID:            MaterialID(fmt.Sprintf("s%02d", i+1)),
			Name:          name,
			PaletteWeight: DefaultPaletteWeightKg,
			Active:        &isActive,
		}
	}
	return materials
}

// DefaultWorkPositions returns the seeded work-position list.
func DefaultWorkPositions() []WorkPosition {
	positions := make([]WorkPosition, len(defaultWorkPositionNames))
	for i, name := range defaultWorkPositionNames {
		positions[i] = WorkPosition{ID: fmt.Sprintf("wp%d", i+1), Name: name}
	}
	return positions
}

// DefaultDocument builds the document a fresh installation starts from:
// the full material catalog, the known customers, default box weights for
// every (customer, material) pair and the standard work positions.
func DefaultDocument() *Document {
	doc := &Document{
		Materials:             DefaultMaterials(),
		Customers:             append([]Customer(nil), defaultCustomers...),
		BoxWeights:            BoxWeightTable{},
		MixDefinitions:        map[MaterialID]MixDefinition{},
		KfcCompositions:       map[MaterialID]KfcComposition{},
		WheelchairPlan:        WheelchairSchedule{},
		WorkPositions:         DefaultWorkPositions(),
		SkewerOrderStatus:     map[Day]map[CustomerID]bool{},
		ExtraProductionStatus: map[Day]map[string]bool{},
	}
	for _, customer := range doc.Customers {
		for _, material := range doc.Materials {
			doc.BoxWeights.EnsureEntry(customer.ID, material.ID)
		}
	}
	return doc
}
