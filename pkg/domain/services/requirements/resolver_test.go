package requirements

import (
	"math"
	"testing"

	"github.com/dzcontrol/planner/pkg/domain/entities"
)

const day = entities.Day("2024-01-10")

// testDocument builds a small document with two customers (one of them KFC)
// and an empty box-weight table, so lookups exercise the defaults.
func testDocument() *entities.Document {
	return &entities.Document{
		Materials: []entities.RawMaterial{
			{ID: "s01", Name: "ŘÍZKY", PaletteWeight: 500},
			{ID: "s02", Name: "PRSA", PaletteWeight: 500},
			{ID: "s03", Name: "KŘÍDLA", PaletteWeight: 500},
			{ID: "mix1", Name: "MIX GRIL", IsMix: true},
			{ID: "k01", Name: "KFC FILLET", PaletteWeight: 500},
		},
		Customers: []entities.Customer{
			{ID: "c1", Name: "Ahold"},
			{ID: "c7", Name: "KFC"},
		},
		BoxWeights:      entities.BoxWeightTable{},
		MixDefinitions:  map[entities.MaterialID]entities.MixDefinition{},
		KfcCompositions: map[entities.MaterialID]entities.KfcComposition{},
	}
}

func addOrder(doc *entities.Document, customerID entities.CustomerID, orderType entities.OrderType, materialID entities.MaterialID, boxes int) {
	doc.Orders = append(doc.Orders, entities.Order{
		ID:         "o" + string(materialID),
		Date:       day,
		CustomerID: customerID,
		Type:       orderType,
		Items: []entities.OrderItem{
			{ID: "i" + string(materialID), MaterialID: materialID, BoxCount: boxes},
		},
	})
}

func TestDailyNeeds_PlainMaterial(t *testing.T) {
	doc := testDocument()
	doc.BoxWeights.Set("c1", entities.OrderTypeStandard, "s01", 12000)
	addOrder(doc, "c1", entities.OrderTypeStandard, "s01", 10)

	needs := DailyNeeds(doc, day, FilterAll)

	// 10 boxes at 12 kg/box, no loss entry for (c1, s01)
	if got := needs["s01"]; got != 120.0 {
		t.Errorf("Expected 120.0 kg for s01, got %v", got)
	}
}

func TestDailyNeeds_DefaultBoxWeight(t *testing.T) {
	doc := testDocument()
	addOrder(doc, "c1", entities.OrderTypeStandard, "s01", 3)

	needs := DailyNeeds(doc, day, FilterAll)

	// No box-weight entry at all: 10000 g/box default
	if got := needs["s01"]; got != 30.0 {
		t.Errorf("Expected 30.0 kg for s01 with default box weight, got %v", got)
	}
}

func TestDailyNeeds_CoversEveryNonMixMaterial(t *testing.T) {
	doc := testDocument()

	needs := DailyNeeds(doc, day, FilterAll)

	for _, id := range []entities.MaterialID{"s01", "s02", "s03", "k01"} {
		if got, ok := needs[id]; !ok || got != 0 {
			t.Errorf("Expected zero entry for unused material %s, got %v (present=%v)", id, got, ok)
		}
	}
	if _, ok := needs["mix1"]; ok {
		t.Error("Mix material must not appear in the result map")
	}
}

func TestDailyNeeds_MixDecomposition(t *testing.T) {
	doc := testDocument()
	doc.MixDefinitions["mix1"] = entities.MixDefinition{
		Components: []entities.MixComponent{
			{MaterialID: "s02", Percentage: 70, LossPercent: 10},
			{MaterialID: "s03", Percentage: 30},
		},
	}
	addOrder(doc, "c1", entities.OrderTypeStandard, "mix1", 5) // 50 kg net at default weight

	needs := DailyNeeds(doc, day, FilterAll)

	wantS02 := 50.0 * 0.7 / 0.9
	if got := needs["s02"]; math.Abs(got-wantS02) > 1e-9 {
		t.Errorf("Expected %.4f kg for s02, got %v", wantS02, got)
	}
	if got := needs["s03"]; got != 15.0 {
		t.Errorf("Expected 15.0 kg for s03, got %v", got)
	}
	if got := needs["s01"]; got != 0 {
		t.Errorf("Expected s01 untouched by mix order, got %v", got)
	}
}

func TestDailyNeeds_MixLosslessComponentsSumToNetWeight(t *testing.T) {
	doc := testDocument()
	doc.MixDefinitions["mix1"] = entities.MixDefinition{
		Components: []entities.MixComponent{
			{MaterialID: "s01", Percentage: 25},
			{MaterialID: "s02", Percentage: 45},
			{MaterialID: "s03", Percentage: 30},
		},
	}
	addOrder(doc, "c1", entities.OrderTypeStandard, "mix1", 4) // 40 kg net

	needs := DailyNeeds(doc, day, FilterAll)

	sum := needs["s01"] + needs["s02"] + needs["s03"]
	if math.Abs(sum-40.0) > 1e-9 {
		t.Errorf("Expected lossless components to sum to the 40 kg net weight, got %v", sum)
	}
}

func TestDailyNeeds_RatioOverrideWinsOverDefinition(t *testing.T) {
	doc := testDocument()
	doc.MixDefinitions["mix1"] = entities.MixDefinition{
		Components: []entities.MixComponent{{MaterialID: "s02", Percentage: 100}},
	}
	doc.Orders = append(doc.Orders, entities.Order{
		ID: "o1", Date: day, CustomerID: "c1", Type: entities.OrderTypeStandard,
		Items: []entities.OrderItem{{
			ID: "i1", MaterialID: "mix1", BoxCount: 2,
			RatioOverride: []entities.MixComponent{{MaterialID: "s03", Percentage: 100}},
		}},
	})

	needs := DailyNeeds(doc, day, FilterAll)

	if got := needs["s03"]; got != 20.0 {
		t.Errorf("Expected override to route 20.0 kg to s03, got %v", got)
	}
	if got := needs["s02"]; got != 0 {
		t.Errorf("Expected global definition to be bypassed, got %v for s02", got)
	}
}

func TestDailyNeeds_MixWithoutDefinitionContributesNothing(t *testing.T) {
	doc := testDocument()
	addOrder(doc, "c1", entities.OrderTypeStandard, "mix1", 5)

	needs := DailyNeeds(doc, day, FilterAll)

	for id, kg := range needs {
		if kg != 0 {
			t.Errorf("Expected all-zero needs for undefined mix, got %v for %s", kg, id)
		}
	}
}

func TestDailyNeeds_KfcProductRoutesToBaseMaterial(t *testing.T) {
	doc := testDocument()
	doc.KfcCompositions["k01"] = entities.KfcComposition{BaseMaterialID: "s02", LossPercent: 20}
	addOrder(doc, "c7", entities.OrderTypeStandard, "k01", 8) // 80 kg net

	needs := DailyNeeds(doc, day, FilterAll)

	want := 80.0 / 0.8
	if got := needs["s02"]; math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %.2f kg routed to base material s02, got %v", want, got)
	}
	// A KFC product never contributes to its own id
	if got := needs["k01"]; got != 0 {
		t.Errorf("Expected 0 kg at the KFC product's own id, got %v", got)
	}
}

func TestDailyNeeds_KfcProductWithoutComposition(t *testing.T) {
	doc := testDocument()
	addOrder(doc, "c7", entities.OrderTypeStandard, "k01", 8)

	needs := DailyNeeds(doc, day, FilterAll)

	for id, kg := range needs {
		if kg != 0 {
			t.Errorf("Expected no contribution without a composition, got %v for %s", kg, id)
		}
	}
}

func TestDailyNeeds_ProductLossAppliesToPlainMaterial(t *testing.T) {
	doc := testDocument()
	doc.Products = []entities.Product{
		{ID: "p1", Name: "Řízky Ahold", CustomerID: "c1", MaterialID: "s01", LossPercent: 10},
	}
	addOrder(doc, "c1", entities.OrderTypeStandard, "s01", 9) // 90 kg net

	needs := DailyNeeds(doc, day, FilterAll)

	want := 90.0 / 0.9
	if got := needs["s01"]; math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %.2f kg gross with 10%% product loss, got %v", want, got)
	}
}

func TestDailyNeeds_ProductLossIsPerCustomer(t *testing.T) {
	doc := testDocument()
	doc.Products = []entities.Product{
		{ID: "p1", Name: "Řízky KFC", CustomerID: "c7", MaterialID: "s01", LossPercent: 50},
	}
	addOrder(doc, "c1", entities.OrderTypeStandard, "s01", 10)

	needs := DailyNeeds(doc, day, FilterAll)

	// c1 has no product entry, so no loss applies
	if got := needs["s01"]; got != 100.0 {
		t.Errorf("Expected another customer's loss entry to be ignored, got %v", got)
	}
}

func TestDailyNeeds_SkipsInactiveAndDanglingMaterials(t *testing.T) {
	doc := testDocument()
	inactive := false
	doc.Materials = append(doc.Materials, entities.RawMaterial{
		ID: "s99", Name: "VYŘAZENO", PaletteWeight: 500, Active: &inactive,
	})
	addOrder(doc, "c1", entities.OrderTypeStandard, "s99", 5)
	addOrder(doc, "c1", entities.OrderTypeStandard, "missing", 5)

	needs := DailyNeeds(doc, day, FilterAll)

	if got := needs["s99"]; got != 0 {
		t.Errorf("Expected inactive material to contribute nothing, got %v", got)
	}
	if _, ok := needs["missing"]; ok {
		t.Error("A dangling material reference must not create an entry")
	}
}

func TestDailyNeeds_OrderTypeSelectsBoxWeightTable(t *testing.T) {
	doc := testDocument()
	doc.BoxWeights.Set("c1", entities.OrderTypeStandard, "s01", 10000)
	doc.BoxWeights.Set("c1", entities.OrderTypeBulk, "s01", 15000)
	addOrder(doc, "c1", entities.OrderTypeBulk, "s01", 4)

	needs := DailyNeeds(doc, day, FilterAll)

	if got := needs["s01"]; got != 60.0 {
		t.Errorf("Expected bulk table weight (15 kg/box), got %v kg", got)
	}
}

func TestDailyNeeds_MissingOrderTypeDefaultsToStandard(t *testing.T) {
	doc := testDocument()
	doc.BoxWeights.Set("c1", entities.OrderTypeStandard, "s01", 12000)
	addOrder(doc, "c1", "", "s01", 5)

	needs := DailyNeeds(doc, day, FilterAll)

	if got := needs["s01"]; got != 60.0 {
		t.Errorf("Expected standard table for a typeless order, got %v kg", got)
	}
}

func TestDailyNeeds_PlannedActionContributesLikeOrder(t *testing.T) {
	doc := testDocument()
	doc.PlannedActions = []entities.PlannedAction{{
		ID: "a1", CustomerID: "c1", MaterialID: "s01",
		StartDate:   "2024-01-08",
		EndDate:     "2024-01-12",
		DailyCounts: map[entities.Day]int{day: 10},
	}}

	fromAction := DailyNeeds(doc, day, FilterAll)

	doc.PlannedActions = nil
	addOrder(doc, "c1", entities.OrderTypeStandard, "s01", 10)
	fromOrder := DailyNeeds(doc, day, FilterAll)

	if fromAction["s01"] != fromOrder["s01"] {
		t.Errorf("Expected action contribution %v to equal order contribution %v",
			fromAction["s01"], fromOrder["s01"])
	}
}

func TestDailyNeeds_PlannedActionRangeAndCounts(t *testing.T) {
	doc := testDocument()
	doc.PlannedActions = []entities.PlannedAction{
		{
			ID: "a1", CustomerID: "c1", MaterialID: "s01",
			StartDate:   "2024-01-11", // starts after the target day
			DailyCounts: map[entities.Day]int{day: 10},
		},
		{
			ID: "a2", CustomerID: "c1", MaterialID: "s02",
			StartDate:   "2024-01-01",
			EndDate:     "2024-01-09", // ended before the target day
			DailyCounts: map[entities.Day]int{day: 10},
		},
		{
			ID: "a3", CustomerID: "c1", MaterialID: "s03",
			StartDate:   "2024-01-01", // open ended, but nothing planned for the day
			DailyCounts: map[entities.Day]int{"2024-01-09": 10},
		},
	}

	needs := DailyNeeds(doc, day, FilterAll)

	for _, id := range []entities.MaterialID{"s01", "s02", "s03"} {
		if got := needs[id]; got != 0 {
			t.Errorf("Expected no contribution for %s, got %v", id, got)
		}
	}
}

func TestDailyNeeds_FilterPartition(t *testing.T) {
	doc := testDocument()
	doc.KfcCompositions["k01"] = entities.KfcComposition{BaseMaterialID: "s02", LossPercent: 10}
	doc.BoxWeights.Set("c1", entities.OrderTypeStandard, "s01", 12000)
	addOrder(doc, "c1", entities.OrderTypeStandard, "s01", 10)
	addOrder(doc, "c1", entities.OrderTypeStandard, "s02", 3)
	addOrder(doc, "c7", entities.OrderTypeStandard, "k01", 8)

	all := DailyNeeds(doc, day, FilterAll)
	kfc := DailyNeeds(doc, day, FilterKfc)
	nonKfc := DailyNeeds(doc, day, FilterNonKfc)

	for id, want := range all {
		if got := kfc[id] + nonKfc[id]; math.Abs(got-want) > 1e-9 {
			t.Errorf("Filter partition broken for %s: kfc %v + non-kfc %v != %v",
				id, kfc[id], nonKfc[id], want)
		}
	}
	if kfc["s01"] != 0 {
		t.Errorf("Expected no s01 need in the KFC run, got %v", kfc["s01"])
	}
	if nonKfc["s02"] == 0 || kfc["s02"] == 0 {
		t.Error("Expected s02 contributions from both customer classes")
	}
}

func TestDailyNeeds_FilterWithoutKfcCustomerIsNoOp(t *testing.T) {
	doc := testDocument()
	doc.Customers = []entities.Customer{{ID: "c1", Name: "Ahold"}}
	addOrder(doc, "c1", entities.OrderTypeStandard, "s01", 10)

	all := DailyNeeds(doc, day, FilterAll)
	kfc := DailyNeeds(doc, day, FilterKfc)

	if kfc["s01"] != all["s01"] {
		t.Errorf("Expected filter to be a no-op without a KFC customer: %v != %v",
			kfc["s01"], all["s01"])
	}
}

func TestDailyNeeds_Idempotent(t *testing.T) {
	doc := testDocument()
	doc.MixDefinitions["mix1"] = entities.MixDefinition{
		Components: []entities.MixComponent{
			{MaterialID: "s02", Percentage: 70, LossPercent: 10},
			{MaterialID: "s03", Percentage: 30},
		},
	}
	addOrder(doc, "c1", entities.OrderTypeStandard, "mix1", 5)
	addOrder(doc, "c1", entities.OrderTypeStandard, "s01", 10)

	first := DailyNeeds(doc, day, FilterAll)
	second := DailyNeeds(doc, day, FilterAll)

	if len(first) != len(second) {
		t.Fatalf("Expected identical result sizes, got %d and %d", len(first), len(second))
	}
	for id, kg := range first {
		if second[id] != kg {
			t.Errorf("Result changed between runs for %s: %v vs %v", id, kg, second[id])
		}
	}
}

func TestDailyNeeds_TotalLossPassesThroughUnguarded(t *testing.T) {
	doc := testDocument()
	doc.KfcCompositions["k01"] = entities.KfcComposition{BaseMaterialID: "s02", LossPercent: 100}
	addOrder(doc, "c7", entities.OrderTypeStandard, "k01", 1)

	needs := DailyNeeds(doc, day, FilterAll)

	// Kept for parity with the replaced system: no clamping at 100% loss.
	if !math.IsInf(needs["s02"], 1) {
		t.Errorf("Expected +Inf at 100%% loss, got %v", needs["s02"])
	}
}

func TestTotalNeeds_MatchesUnfilteredRun(t *testing.T) {
	doc := testDocument()
	doc.KfcCompositions["k01"] = entities.KfcComposition{BaseMaterialID: "s02", LossPercent: 10}
	addOrder(doc, "c1", entities.OrderTypeStandard, "s02", 3)
	addOrder(doc, "c7", entities.OrderTypeStandard, "k01", 8)

	all := DailyNeeds(doc, day, FilterAll)
	total := TotalNeeds(doc, day)

	for id, want := range all {
		if got := total[id]; math.Abs(got-want) > 1e-9 {
			t.Errorf("TotalNeeds mismatch for %s: %v != %v", id, got, want)
		}
	}
}

func TestTotalNeeds_NoKfcCustomerDoesNotDoubleCount(t *testing.T) {
	doc := testDocument()
	doc.Customers = []entities.Customer{{ID: "c1", Name: "Ahold"}}
	addOrder(doc, "c1", entities.OrderTypeStandard, "s01", 10)

	total := TotalNeeds(doc, day)

	if got := total["s01"]; got != 100.0 {
		t.Errorf("Expected 100.0 kg without double counting, got %v", got)
	}
}
