package entities

import (
	"fmt"
	"math"
)

// MixComponent is one line of a mix recipe: a share of the mix's net weight
// routed to a real material, with an optional manufacturing loss.
type MixComponent struct {
	MaterialID  MaterialID `json:"surovinaId"`
	Percentage  float64    `json:"percentage"`
	LossPercent float64    `json:"loss,omitempty"`
}

// MixDefinition is the global recipe for a mix material, keyed by the mix
// material's id in the document.
type MixDefinition struct {
	Components []MixComponent `json:"components"`
}

// NewMixDefinition creates a validated MixDefinition. Percentages must sum
// to 100; this is an edit-time rule only, the requirements computation uses
// whatever sums a loaded document carries.
func NewMixDefinition(components []MixComponent) (*MixDefinition, error) {
	if len(components) == 0 {
		return nil, fmt.Errorf("mix must have at least one component")
	}
	total := 0.0
	for _, c := range components {
		if c.MaterialID == "" {
			return nil, fmt.Errorf("mix component material id cannot be empty")
		}
		if c.Percentage < 0 || c.Percentage > 100 {
			return nil, fmt.Errorf("mix component percentage must be within 0-100, got %v", c.Percentage)
		}
		total += c.Percentage
	}
	if math.Abs(total-100) > 0.001 {
		return nil, fmt.Errorf("mix component percentages must sum to 100, got %v", total)
	}
	return &MixDefinition{Components: components}, nil
}
