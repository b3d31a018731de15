package entities

import (
	"fmt"
	"strings"
)

// CustomerID is a unique customer identifier
type CustomerID string

// Customer represents an ordering customer.
type Customer struct {
	ID   CustomerID `json:"id"`
	Name string     `json:"name"`
}

// NewCustomer creates a validated Customer.
func NewCustomer(id CustomerID, name string) (*Customer, error) {
	if id == "" {
		return nil, fmt.Errorf("customer id cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("customer name cannot be empty")
	}
	return &Customer{ID: id, Name: name}, nil
}

// IsKfc identifies the specially planned KFC customer. The match is on
// display name, not a flag, so renaming that customer detaches the
// KFC-specific planning.
func (c *Customer) IsKfc() bool {
	return strings.EqualFold(c.Name, "kfc")
}
