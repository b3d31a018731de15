package entities

import (
	"encoding/json"
	"testing"
)

func TestDocument_Lookups(t *testing.T) {
	doc := DefaultDocument()

	if m := doc.Material("s01"); m == nil || m.Name != "ŘÍZKY" {
		t.Fatalf("Expected s01 to be ŘÍZKY, got %+v", m)
	}
	if doc.Material("missing") != nil {
		t.Error("Expected missing material lookup to return nil")
	}
	if got := doc.MaterialName("missing"); got != "N/A" {
		t.Errorf("Expected N/A for unknown material, got %s", got)
	}

	kfcID, ok := doc.KfcCustomerID()
	if !ok {
		t.Fatal("Expected the default document to have a KFC customer")
	}
	if name := doc.CustomerName(kfcID); name != "KFC" {
		t.Errorf("Expected customer name KFC, got %s", name)
	}
}

func TestDocument_OrdersOnAndActionsOn(t *testing.T) {
	doc := DefaultDocument()
	doc.Orders = []Order{
		{ID: "o1", Date: "2025-03-10", CustomerID: "c1"},
		{ID: "o2", Date: "2025-03-11", CustomerID: "c1"},
	}
	doc.PlannedActions = []PlannedAction{
		{ID: "a1", CustomerID: "c1", MaterialID: "s01", StartDate: "2025-03-01", EndDate: "2025-03-05"},
		{ID: "a2", CustomerID: "c1", MaterialID: "s01", StartDate: "2025-03-01"},
	}

	orders := doc.OrdersOn("2025-03-10")
	if len(orders) != 1 || orders[0].ID != "o1" {
		t.Errorf("Expected only o1 on 2025-03-10, got %+v", orders)
	}

	actions := doc.ActionsOn("2025-03-10")
	if len(actions) != 1 || actions[0].ID != "a2" {
		t.Errorf("Expected only the open-ended action on 2025-03-10, got %+v", actions)
	}
}

func TestDocument_CloneIsDeep(t *testing.T) {
	doc := DefaultDocument()
	doc.Orders = []Order{{
		ID:         "o1",
		Date:       "2025-03-10",
		CustomerID: "c1",
		Items:      []OrderItem{{ID: "i1", MaterialID: "s01", BoxCount: 2}},
	}}
	doc.MixDefinitions["s10"] = MixDefinition{
		Components: []MixComponent{{MaterialID: "s01", Percentage: 100}},
	}
	doc.SkewerOrderStatus["2025-03-10"] = map[CustomerID]bool{"c1": true}

	clone := doc.Clone()
	clone.Materials[0].StockPalettes = 42
	clone.Orders[0].Items[0].BoxCount = 99
	clone.BoxWeights.Set("c1", OrderTypeStandard, "s01", 1)
	clone.MixDefinitions["s10"].Components[0].Percentage = 1
	clone.SkewerOrderStatus["2025-03-10"]["c1"] = false

	if doc.Materials[0].StockPalettes != 0 {
		t.Error("Expected material stock to be untouched in the original")
	}
	if doc.Orders[0].Items[0].BoxCount != 2 {
		t.Error("Expected order items to be untouched in the original")
	}
	if doc.BoxWeights.Weight("c1", OrderTypeStandard, "s01") != DefaultBoxWeightGrams {
		t.Error("Expected box weights to be untouched in the original")
	}
	if doc.MixDefinitions["s10"].Components[0].Percentage != 100 {
		t.Error("Expected mix components to be untouched in the original")
	}
	if !doc.SkewerOrderStatus["2025-03-10"]["c1"] {
		t.Error("Expected status maps to be untouched in the original")
	}
}

func TestDocument_UnknownKeysSurviveRoundTrip(t *testing.T) {
	blob := `{
		"suroviny": [{"id": "s01", "name": "ŘÍZKY", "paletteWeight": 500, "stock": 1, "stockBoxes": 0}],
		"zakaznici": [],
		"someNewFeature": [1, 2, 3]
	}`
	var doc Document
	if err := json.Unmarshal([]byte(blob), &doc); err != nil {
		t.Fatalf("Expected decode to succeed: %v", err)
	}
	if len(doc.Unknown) != 1 {
		t.Fatalf("Expected one unknown key, got %d", len(doc.Unknown))
	}

	out, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Expected encode to succeed: %v", err)
	}
	var round map[string]json.RawMessage
	if err := json.Unmarshal(out, &round); err != nil {
		t.Fatalf("Expected re-decode to succeed: %v", err)
	}
	if string(round["someNewFeature"]) != "[1,2,3]" {
		t.Errorf("Expected unknown key preserved, got %s", round["someNewFeature"])
	}
	if _, ok := round["suroviny"]; !ok {
		t.Error("Expected known keys to be present as well")
	}
}

func TestDocument_ProductFor(t *testing.T) {
	doc := DefaultDocument()
	doc.Products = []Product{
		{ID: "p1", Name: "Řízky 5kg", CustomerID: "c1", MaterialID: "s01", LossPercent: 10},
		{ID: "p2", Name: "Řízky Billa", CustomerID: "c2", MaterialID: "s01"},
	}

	if p := doc.ProductFor("c1", "s01"); p == nil || p.ID != "p1" {
		t.Errorf("Expected p1 for (c1, s01), got %+v", p)
	}
	if p := doc.ProductFor("c3", "s01"); p != nil {
		t.Errorf("Expected no product for (c3, s01), got %+v", p)
	}
}
