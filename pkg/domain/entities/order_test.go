package entities

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestOrderType_Normalize(t *testing.T) {
	if got := OrderType("").Normalize(); got != OrderTypeStandard {
		t.Errorf("Expected empty order type to normalize to standard, got %s", got)
	}
	if got := OrderTypeBulk.Normalize(); got != OrderTypeBulk {
		t.Errorf("Expected bulk to stay bulk, got %s", got)
	}
}

func TestOrderType_Valid(t *testing.T) {
	for _, typ := range OrderTypes {
		if !typ.Valid() {
			t.Errorf("Expected %s to be valid", typ)
		}
	}
	if OrderType("wholesale").Valid() {
		t.Error("Expected unknown order type to be invalid")
	}
}

func TestNewOrderItem_Validation(t *testing.T) {
	item, err := NewOrderItem("i1", "s01", 5)
	if err != nil {
		t.Fatalf("Expected valid item creation to succeed: %v", err)
	}
	if item.BoxCount != 5 {
		t.Errorf("Expected box count 5, got %d", item.BoxCount)
	}

	testCases := []struct {
		name        string
		id          string
		materialID  MaterialID
		boxCount    int
		expectError string
	}{
		{"empty id", "", "s01", 5, "order item id cannot be empty"},
		{"empty material", "i1", "", 5, "order item material id cannot be empty"},
		{"negative boxes", "i1", "s01", -1, "box count cannot be negative"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewOrderItem(tc.id, tc.materialID, tc.boxCount)
			if err == nil {
				t.Fatal("Expected error, got none")
			}
			if !strings.Contains(err.Error(), tc.expectError) {
				t.Errorf("Expected error containing %q, got %q", tc.expectError, err.Error())
			}
		})
	}
}

func TestOrder_UnmarshalLegacyIsExtra(t *testing.T) {
	testCases := []struct {
		name     string
		blob     string
		expected OrderType
	}{
		{
			"legacy isExtra true",
			`{"id": "o1", "date": "2025-03-10", "customerId": "c1", "isExtra": true, "items": []}`,
			OrderTypeExtra,
		},
		{
			"legacy isExtra false",
			`{"id": "o1", "date": "2025-03-10", "customerId": "c1", "isExtra": false, "items": []}`,
			OrderTypeStandard,
		},
		{
			"orderType wins over isExtra",
			`{"id": "o1", "date": "2025-03-10", "customerId": "c1", "orderType": "bulk", "isExtra": true, "items": []}`,
			OrderTypeBulk,
		},
		{
			"neither flag stays empty",
			`{"id": "o1", "date": "2025-03-10", "customerId": "c1", "items": []}`,
			OrderType(""),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var order Order
			if err := json.Unmarshal([]byte(tc.blob), &order); err != nil {
				t.Fatalf("Expected unmarshal to succeed: %v", err)
			}
			if order.Type != tc.expected {
				t.Errorf("Expected order type %q, got %q", tc.expected, order.Type)
			}
		})
	}
}
