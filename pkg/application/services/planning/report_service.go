// Package planning provides the application services over the planning
// document: read-side reports assembled from the requirements computation,
// and write-side document edits with copy-on-write semantics.
package planning

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dzcontrol/planner/pkg/domain/entities"
	"github.com/dzcontrol/planner/pkg/domain/services/requirements"
)

// productionBoxKg sizes the boxes the production floor packs targets into.
const productionBoxKg = 20

// skewerNameMark tags the materials counted as skewer production.
const skewerNameMark = "ŠPÍZY"

// chiliMangoName is the skewer variant produced from breaded cutlets.
const chiliMangoName = "ŠPÍZY - ČILI MANGO"

// Shortage reports a material whose stock does not cover the day's needs.
type Shortage struct {
	Material        entities.RawMaterial
	NeededKg        decimal.Decimal
	MissingKg       decimal.Decimal
	MissingPalettes int
}

// PlanRow is one line of the daily material plan.
type PlanRow struct {
	Material      entities.RawMaterial
	NeededKg      decimal.Decimal
	NextDayKg     decimal.Decimal
	PalletBalance decimal.Decimal // stock minus need, in pallets
}

// KfcProductRow counts ordered boxes of one KFC product.
type KfcProductRow struct {
	Material      entities.RawMaterial
	TodayBoxes    int
	TomorrowBoxes int
}

// KfcBaseRow is the base-material demand derived from KFC compositions.
type KfcBaseRow struct {
	Material       entities.RawMaterial
	NeededKg       decimal.Decimal
	NeededPalettes int
	NextDayKg      decimal.Decimal
}

// KfcPlan is the KFC production view: ordered product boxes plus the base
// materials they decompose into.
type KfcPlan struct {
	Products  []KfcProductRow
	BaseNeeds []KfcBaseRow
}

// SkewerOrderItem is one ordered skewer line.
type SkewerOrderItem struct {
	MaterialID  entities.MaterialID
	ProductName string
	BoxCount    int
}

// SkewerOrderGroup collects one customer's skewer orders for a day.
type SkewerOrderGroup struct {
	CustomerID   entities.CustomerID
	CustomerName string
	Done         bool
	Items        []SkewerOrderItem
}

// ExtraTarget is the production target derived from orders of an isExtra
// product.
type ExtraTarget struct {
	Product entities.Product
	TotalKg decimal.Decimal
	Boxes   int
	Done    bool
}

// ReportService assembles the planning reports. It only ever reads the
// snapshot it is given.
type ReportService struct{}

// NewReportService creates a report service.
func NewReportService() *ReportService {
	return &ReportService{}
}

// Needs exposes the raw requirements computation.
func (s *ReportService) Needs(doc *entities.Document, day entities.Day, filter requirements.Filter) requirements.Needs {
	return requirements.DailyNeeds(doc, day, filter)
}

// Shortages lists active plain materials whose stock does not cover the
// unfiltered needs of the day, with the missing tonnage rounded up to whole
// pallets.
func (s *ReportService) Shortages(doc *entities.Document, day entities.Day) []Shortage {
	needs := requirements.DailyNeeds(doc, day, requirements.FilterAll)

	var shortages []Shortage
	for _, material := range planMaterials(doc) {
		neededKg := decimal.NewFromFloat(needs[material.ID])
		stockKg := decimal.NewFromFloat(material.StockKg())
		missing := neededKg.Sub(stockKg)
		if missing.Sign() <= 0 {
			continue
		}
		palettes := 0
		if material.PaletteWeight > 0 {
			palettes = int(missing.Div(decimal.NewFromFloat(material.PaletteWeight)).Ceil().IntPart())
		}
		shortages = append(shortages, Shortage{
			Material:        material,
			NeededKg:        neededKg,
			MissingKg:       missing,
			MissingPalettes: palettes,
		})
	}
	return shortages
}

// DailyPlan builds the per-material overview for a day: stock, needed
// kilograms, the pallet balance and the following day's needs.
func (s *ReportService) DailyPlan(doc *entities.Document, day entities.Day) []PlanRow {
	today := requirements.TotalNeeds(doc, day)
	tomorrow := requirements.TotalNeeds(doc, day.Next())

	var rows []PlanRow
	for _, material := range planMaterials(doc) {
		neededKg := decimal.NewFromFloat(today[material.ID])
		stockPalettes := decimal.NewFromInt(int64(material.StockPalettes)).
			Add(decimal.NewFromInt(int64(material.StockBoxes)).Div(decimal.NewFromInt(entities.BoxesPerPalette)))
		neededPalettes := decimal.Zero
		if material.PaletteWeight > 0 {
			neededPalettes = neededKg.Div(decimal.NewFromFloat(material.PaletteWeight))
		}
		rows = append(rows, PlanRow{
			Material:      material,
			NeededKg:      neededKg,
			NextDayKg:     decimal.NewFromFloat(tomorrow[material.ID]),
			PalletBalance: stockPalettes.Sub(neededPalettes),
		})
	}
	return rows
}

// KfcProductionPlan builds the KFC view: box counts ordered by the KFC
// customer per product for the day and the next, and the derived base
// material needs.
func (s *ReportService) KfcProductionPlan(doc *entities.Document, day entities.Day) KfcPlan {
	next := day.Next()
	todayBoxes := kfcOrderedBoxes(doc, day)
	tomorrowBoxes := kfcOrderedBoxes(doc, next)

	var plan KfcPlan
	for _, material := range doc.Materials {
		if !material.IsKfcProduct() {
			continue
		}
		plan.Products = append(plan.Products, KfcProductRow{
			Material:      material,
			TodayBoxes:    todayBoxes[material.ID],
			TomorrowBoxes: tomorrowBoxes[material.ID],
		})
	}

	baseIDs := map[entities.MaterialID]bool{}
	for _, comp := range doc.KfcCompositions {
		if comp.BaseMaterialID != "" {
			baseIDs[comp.BaseMaterialID] = true
		}
	}
	todayNeeds := requirements.DailyNeeds(doc, day, requirements.FilterKfc)
	tomorrowNeeds := requirements.DailyNeeds(doc, next, requirements.FilterKfc)
	for _, material := range doc.Materials {
		if !baseIDs[material.ID] {
			continue
		}
		neededKg := decimal.NewFromFloat(todayNeeds[material.ID])
		palettes := 0
		if material.PaletteWeight > 0 {
			palettes = int(neededKg.Div(decimal.NewFromFloat(material.PaletteWeight)).Ceil().IntPart())
		}
		plan.BaseNeeds = append(plan.BaseNeeds, KfcBaseRow{
			Material:       material,
			NeededKg:       neededKg,
			NeededPalettes: palettes,
			NextDayKg:      decimal.NewFromFloat(tomorrowNeeds[material.ID]),
		})
	}
	return plan
}

// SkewerOrders groups the day's skewer orders per customer, unfinished
// groups first.
func (s *ReportService) SkewerOrders(doc *entities.Document, day entities.Day) []SkewerOrderGroup {
	skewerIDs := skewerMaterialIDs(doc)
	if len(skewerIDs) == 0 {
		return nil
	}

	groups := map[entities.CustomerID]*SkewerOrderGroup{}
	var order []entities.CustomerID
	for _, o := range doc.OrdersOn(day) {
		for _, item := range o.Items {
			if !skewerIDs[item.MaterialID] {
				continue
			}
			group, ok := groups[o.CustomerID]
			if !ok {
				group = &SkewerOrderGroup{
					CustomerID:   o.CustomerID,
					CustomerName: doc.CustomerName(o.CustomerID),
					Done:         doc.SkewerOrderStatus[day][o.CustomerID],
				}
				groups[o.CustomerID] = group
				order = append(order, o.CustomerID)
			}
			group.Items = append(group.Items, SkewerOrderItem{
				MaterialID:  item.MaterialID,
				ProductName: doc.MaterialName(item.MaterialID),
				BoxCount:    item.BoxCount,
			})
		}
	}

	result := make([]SkewerOrderGroup, 0, len(order))
	for _, customerID := range order {
		result = append(result, *groups[customerID])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return !result[i].Done && result[j].Done
	})
	return result
}

// ChiliMangoOrderKg totals the day's orders of the chili-mango skewer
// variant, which is produced from cutlets and shown as its own target.
func (s *ReportService) ChiliMangoOrderKg(doc *entities.Document, day entities.Day) decimal.Decimal {
	var chiliMango *entities.RawMaterial
	for i := range doc.Materials {
		if strings.ToUpper(doc.Materials[i].Name) == chiliMangoName {
			chiliMango = &doc.Materials[i]
			break
		}
	}
	total := decimal.Zero
	if chiliMango == nil {
		return total
	}
	for _, o := range doc.OrdersOn(day) {
		for _, item := range o.Items {
			if item.MaterialID != chiliMango.ID {
				continue
			}
			grams := doc.BoxWeights.Weight(o.CustomerID, entities.OrderTypeStandard, item.MaterialID)
			total = total.Add(boxesToKg(item.BoxCount, grams))
		}
	}
	return total
}

// ExtraProduction derives production targets from the day's orders of
// products flagged isExtra. The product's own box weight wins over the
// box-weight table.
func (s *ReportService) ExtraProduction(doc *entities.Document, day entities.Day) []ExtraTarget {
	totals := map[string]*ExtraTarget{}
	var order []string
	for _, o := range doc.OrdersOn(day) {
		for _, item := range o.Items {
			product := extraProductFor(doc, o.CustomerID, item.MaterialID)
			if product == nil {
				continue
			}
			grams := product.BoxWeight
			if grams <= 0 {
				grams = doc.BoxWeights.Weight(o.CustomerID, o.Type, item.MaterialID)
			}
			target, ok := totals[product.ID]
			if !ok {
				target = &ExtraTarget{
					Product: *product,
					TotalKg: decimal.Zero,
					Done:    doc.ExtraProductionStatus[day][product.ID],
				}
				totals[product.ID] = target
				order = append(order, product.ID)
			}
			target.TotalKg = target.TotalKg.Add(boxesToKg(item.BoxCount, grams))
		}
	}

	result := make([]ExtraTarget, 0, len(order))
	for _, id := range order {
		target := *totals[id]
		target.Boxes = ProductionBoxes(target.TotalKg)
		result = append(result, target)
	}
	return result
}

// ProductionBoxes converts a kilogram target to whole production boxes.
func ProductionBoxes(kg decimal.Decimal) int {
	return int(kg.Div(decimal.NewFromInt(productionBoxKg)).Ceil().IntPart())
}

// extraProductFor finds the customer's extra-flagged product for a
// material. The search covers only isExtra entries, so a plain product on
// the same (customer, material) pair never shadows the extra one.
func extraProductFor(doc *entities.Document, customerID entities.CustomerID, materialID entities.MaterialID) *entities.Product {
	for i := range doc.Products {
		p := &doc.Products[i]
		if p.IsExtra && p.CustomerID == customerID && p.MaterialID == materialID {
			return p
		}
	}
	return nil
}

// planMaterials selects the rows the plan and shortage reports cover:
// active plain materials, mixes and KFC products excluded.
func planMaterials(doc *entities.Document) []entities.RawMaterial {
	var materials []entities.RawMaterial
	for _, m := range doc.Materials {
		if m.IsActive() && !m.IsMix && !m.IsKfcProduct() {
			materials = append(materials, m)
		}
	}
	return materials
}

// skewerMaterialIDs indexes the materials whose name marks them as skewers.
func skewerMaterialIDs(doc *entities.Document) map[entities.MaterialID]bool {
	ids := map[entities.MaterialID]bool{}
	for _, m := range doc.Materials {
		if strings.Contains(strings.ToUpper(m.Name), skewerNameMark) {
			ids[m.ID] = true
		}
	}
	return ids
}

func kfcOrderedBoxes(doc *entities.Document, day entities.Day) map[entities.MaterialID]int {
	boxes := map[entities.MaterialID]int{}
	kfcID, ok := doc.KfcCustomerID()
	if !ok {
		return boxes
	}
	for _, o := range doc.OrdersOn(day) {
		if o.CustomerID != kfcID {
			continue
		}
		for _, item := range o.Items {
			boxes[item.MaterialID] += item.BoxCount
		}
	}
	return boxes
}

func boxesToKg(boxCount int, grams entities.Grams) decimal.Decimal {
	return decimal.NewFromInt(int64(boxCount)).
		Mul(decimal.NewFromFloat(float64(grams))).
		Div(decimal.NewFromInt(1000))
}
