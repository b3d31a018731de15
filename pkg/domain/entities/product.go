package entities

import "fmt"

// Product is a per-customer sellable product backed by one raw material.
// The requirements computation only consumes LossPercent for plain
// materials; the remaining fields drive production views.
type Product struct {
	ID                   string     `json:"id"`
	Name                 string     `json:"name"`
	CustomerID           CustomerID `json:"customerId"`
	MaterialID           MaterialID `json:"surovinaId"`
	BoxWeight            Grams      `json:"boxWeight"`
	MarinadeName         string     `json:"marinadeName,omitempty"`
	MarinadePercent      float64    `json:"marinadePercent,omitempty"`
	LossPercent          float64    `json:"lossPercent,omitempty"`
	CalibratedMaterialID MaterialID `json:"calibratedSurovinaId,omitempty"`
	CalibratedWeight     string     `json:"calibratedWeight,omitempty"`
	IsExtra              bool       `json:"isExtra,omitempty"`
	IsBulk               bool       `json:"isBulk"`
}

// NewProduct creates a validated Product.
func NewProduct(id, name string, customerID CustomerID, materialID MaterialID) (*Product, error) {
	if id == "" {
		return nil, fmt.Errorf("product id cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("product name cannot be empty")
	}
	if customerID == "" {
		return nil, fmt.Errorf("product customer id cannot be empty")
	}
	if materialID == "" {
		return nil, fmt.Errorf("product material id cannot be empty")
	}
	return &Product{ID: id, Name: name, CustomerID: customerID, MaterialID: materialID}, nil
}
