package entities

import (
	"fmt"
	"strings"
)

// MaterialID is a unique raw-material identifier
type MaterialID string

// Grams is a box weight in grams
type Grams float64

// Defaults applied wherever the document leaves a field unset.
const (
	// DefaultBoxWeightGrams is used when the box-weight table has no entry
	// for a (customer, order type, material) path.
	DefaultBoxWeightGrams Grams = 10000
	// BoxesPerPalette converts loose boxes to pallet fractions.
	BoxesPerPalette = 20
	// DefaultPaletteWeightKg is the pallet weight assigned to seeded materials.
	DefaultPaletteWeightKg = 500
)

// RawMaterial represents a trackable inventory item. A material with IsMix
// set has no stock semantics of its own; its production always decomposes
// into real components through a mix definition.
type RawMaterial struct {
	ID            MaterialID `json:"id"`
	Name          string     `json:"name"`
	PaletteWeight float64    `json:"paletteWeight"` // kg per pallet
	StockPalettes int        `json:"stock"`
	StockBoxes    int        `json:"stockBoxes"`
	IsMix         bool       `json:"isMix"`
	Active        *bool      `json:"isActive,omitempty"` // absent = active
}

// NewRawMaterial creates a validated RawMaterial.
func NewRawMaterial(id MaterialID, name string, paletteWeight float64) (*RawMaterial, error) {
	if id == "" {
		return nil, fmt.Errorf("material id cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("material name cannot be empty")
	}
	if paletteWeight < 0 {
		return nil, fmt.Errorf("palette weight cannot be negative, got %v", paletteWeight)
	}
	return &RawMaterial{
		ID:            id,
		Name:          name,
		PaletteWeight: paletteWeight,
	}, nil
}

// IsActive treats an absent flag as active.
func (m *RawMaterial) IsActive() bool {
	return m.Active == nil || *m.Active
}

// IsKfcProduct reports whether this material is produced through a KFC
// composition rather than ordered directly.
func (m *RawMaterial) IsKfcProduct() bool {
	return IsKfcMaterialName(m.Name)
}

// StockKg converts the pallet + loose-box stock to kilograms. Loose boxes
// weigh paletteWeight/BoxesPerPalette each.
func (m *RawMaterial) StockKg() float64 {
	boxWeightKg := 0.0
	if m.PaletteWeight > 0 {
		boxWeightKg = m.PaletteWeight / BoxesPerPalette
	}
	return float64(m.StockPalettes)*m.PaletteWeight + float64(m.StockBoxes)*boxWeightKg
}

// IsKfcMaterialName is the single place deciding whether a material counts
// as a KFC product. The match is on display name, which means renaming a
// product in or out of "KFC" changes how it is planned.
func IsKfcMaterialName(name string) bool {
	return strings.Contains(strings.ToLower(name), "kfc")
}
