package entities

import "fmt"

// KfcComposition defines how a KFC product is produced: one base material
// and one loss percentage. Unlike a mix there is no multi-component recipe.
// Keyed by the KFC product material's id in the document.
type KfcComposition struct {
	BaseMaterialID MaterialID `json:"baseSurovinaId"`
	LossPercent    float64    `json:"lossPercent"`
}

// NewKfcComposition creates a validated KfcComposition.
func NewKfcComposition(baseMaterialID MaterialID, lossPercent float64) (*KfcComposition, error) {
	if baseMaterialID == "" {
		return nil, fmt.Errorf("base material id cannot be empty")
	}
	if lossPercent < 0 {
		return nil, fmt.Errorf("loss percent cannot be negative, got %v", lossPercent)
	}
	return &KfcComposition{BaseMaterialID: baseMaterialID, LossPercent: lossPercent}, nil
}
