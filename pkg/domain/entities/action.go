package entities

import "fmt"

// PlannedAction is a date-ranged recurring demand. For requirement purposes
// a day inside the range with a positive daily count behaves exactly like a
// standard order with one item of that box count.
type PlannedAction struct {
	ID          string      `json:"id"`
	CustomerID  CustomerID  `json:"customerId"`
	MaterialID  MaterialID  `json:"surovinaId"`
	StartDate   Day         `json:"startDate"`
	EndDate     Day         `json:"endDate,omitempty"` // empty = open ended
	DailyCounts map[Day]int `json:"dailyCounts"`
}

// NewPlannedAction creates a validated PlannedAction.
func NewPlannedAction(id string, customerID CustomerID, materialID MaterialID, start, end Day) (*PlannedAction, error) {
	if id == "" {
		return nil, fmt.Errorf("planned action id cannot be empty")
	}
	if customerID == "" {
		return nil, fmt.Errorf("planned action customer id cannot be empty")
	}
	if materialID == "" {
		return nil, fmt.Errorf("planned action material id cannot be empty")
	}
	if start == "" {
		return nil, fmt.Errorf("planned action start date cannot be empty")
	}
	if end != "" && end < start {
		return nil, fmt.Errorf("planned action end date %s is before start date %s", end, start)
	}
	return &PlannedAction{
		ID:          id,
		CustomerID:  customerID,
		MaterialID:  materialID,
		StartDate:   start,
		EndDate:     end,
		DailyCounts: map[Day]int{},
	}, nil
}

// ActiveOn reports whether the day falls inside the inclusive action range.
func (a *PlannedAction) ActiveOn(day Day) bool {
	return day >= a.StartDate && (a.EndDate == "" || day <= a.EndDate)
}

// BoxesFor returns the override quantity planned for a day, zero when none.
func (a *PlannedAction) BoxesFor(day Day) int {
	return a.DailyCounts[day]
}
