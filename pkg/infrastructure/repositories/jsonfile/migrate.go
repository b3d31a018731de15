package jsonfile

import "github.com/dzcontrol/planner/pkg/domain/entities"

// A migration back-fills one gap an older document may have. Migrations are
// additive and idempotent: they only ever add data, and applying them to an
// already current document changes nothing.
type migration struct {
	name  string
	apply func(*entities.Document) bool
}

// migrations run in order on every load. The chain replaces the scattered
// startup shape-sniffing of the original system with one consolidated pass.
var migrations = []migration{
	{"seed-late-materials", seedLateMaterials},
	{"box-weight-tables", ensureBoxWeightTables},
	{"active-flags", ensureActiveFlags},
	{"work-positions", ensureWorkPositions},
	{"collections", ensureCollections},
}

// Migrate applies the chain and returns the names of migrations that
// changed the document.
func Migrate(doc *entities.Document) []string {
	var applied []string
	for _, m := range migrations {
		if m.apply(doc) {
			applied = append(applied, m.name)
		}
	}
	return applied
}

// lateMaterials are catalog rows introduced after early documents were
// already in the field.
var lateMaterials = []struct {
	id   entities.MaterialID
	name string
}{
	{"s21", "KFC KŘÍDLA"},
	{"s22", "KFC STRIPS"},
	{"s23", "ŠPÍZY"},
	{"s24", "ŠPÍZY - ŠPEK"},
	{"s25", "ŠPÍZY - KLOBÁSA"},
	{"s26", "ŠPÍZY - ČILI MANGO"},
}

func seedLateMaterials(doc *entities.Document) bool {
	changed := false
	for _, late := range lateMaterials {
		if doc.Material(late.id) != nil {
			continue
		}
		active := true
		doc.Materials = append(doc.Materials, entities.RawMaterial{
			ID:            late.id,
			Name:          late.name,
			PaletteWeight: entities.DefaultPaletteWeightKg,
			Active:        &active,
		})
		if doc.BoxWeights == nil {
			doc.BoxWeights = entities.BoxWeightTable{}
		}
		for _, customer := range doc.Customers {
			doc.BoxWeights.EnsureEntry(customer.ID, late.id)
		}
		changed = true
	}
	return changed
}

// ensureBoxWeightTables guarantees every customer has all three order-type
// tables with an entry for every material. The flat legacy shape is already
// widened at decode time; this fills customers and materials added since.
func ensureBoxWeightTables(doc *entities.Document) bool {
	if doc.BoxWeights == nil {
		doc.BoxWeights = entities.BoxWeightTable{}
	}
	changed := false
	for _, customer := range doc.Customers {
		weights, ok := doc.BoxWeights[customer.ID]
		if !ok || weights.Standard == nil || weights.Extra == nil || weights.Bulk == nil {
			changed = true
		}
		for _, material := range doc.Materials {
			if material.IsMix {
				continue
			}
			if !hasEntry(weights, material.ID) {
				changed = true
			}
			doc.BoxWeights.EnsureEntry(customer.ID, material.ID)
		}
		doc.BoxWeights.EnsureCustomer(customer.ID)
	}
	return changed
}

func hasEntry(weights entities.CustomerBoxWeights, id entities.MaterialID) bool {
	_, standard := weights.Standard[id]
	_, extra := weights.Extra[id]
	_, bulk := weights.Bulk[id]
	return standard && extra && bulk
}

// ensureActiveFlags materializes the implicit "absent means active" default.
func ensureActiveFlags(doc *entities.Document) bool {
	changed := false
	for i := range doc.Materials {
		if doc.Materials[i].Active == nil {
			active := true
			doc.Materials[i].Active = &active
			changed = true
		}
	}
	return changed
}

func ensureWorkPositions(doc *entities.Document) bool {
	if doc.WorkPositions != nil {
		return false
	}
	doc.WorkPositions = entities.DefaultWorkPositions()
	return true
}

// ensureCollections initializes the maps later features rely on.
func ensureCollections(doc *entities.Document) bool {
	changed := false
	if doc.MixDefinitions == nil {
		doc.MixDefinitions = map[entities.MaterialID]entities.MixDefinition{}
		changed = true
	}
	if doc.KfcCompositions == nil {
		doc.KfcCompositions = map[entities.MaterialID]entities.KfcComposition{}
		changed = true
	}
	if doc.WheelchairPlan == nil {
		doc.WheelchairPlan = entities.WheelchairSchedule{}
		changed = true
	}
	if doc.SkewerOrderStatus == nil {
		doc.SkewerOrderStatus = map[entities.Day]map[entities.CustomerID]bool{}
		changed = true
	}
	if doc.ExtraProductionStatus == nil {
		doc.ExtraProductionStatus = map[entities.Day]map[string]bool{}
		changed = true
	}
	return changed
}
