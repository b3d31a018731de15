package entities

// Shift identifies one of the three wheelchair-crew working shifts.
type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
	ShiftNight     Shift = "night"
)

// WheelchairUser is a member of the wheelchair crew.
type WheelchairUser struct {
	ID         string `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Chip       string `json:"chip"`
	Phone      string `json:"phone,omitempty"`
	StartShift Shift  `json:"startShift"`
}

// DayAssignments lists user ids per shift slot for one day.
type DayAssignments struct {
	Morning   []string `json:"morning"`
	Afternoon []string `json:"afternoon"`
	Night     []string `json:"night"`
	Vacation  []string `json:"vacation"`
}

// WheelchairSchedule nests assignments by week key ("2023-45") and day.
type WheelchairSchedule map[string]map[Day]DayAssignments

// PCPerson is a production-crew member.
type PCPerson struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Chip      string `json:"chip"`
	Phone     string `json:"phone,omitempty"`
	Shift     string `json:"shift"`  // "1" or "2"
	Gender    string `json:"gender"` // "muz" or "zena"
	Position  string `json:"position"`
}

// PCEventType classifies a production-crew absence event.
type PCEventType string

const (
	PCEventVacation  PCEventType = "vacation"
	PCEventSickness  PCEventType = "sickness"
	PCEventDeparture PCEventType = "departure"
	PCEventOther     PCEventType = "other"
)

// PCEvent is a date-ranged absence of one production-crew member.
type PCEvent struct {
	ID       string      `json:"id"`
	Chip     string      `json:"chip"`
	Type     PCEventType `json:"type"`
	DateFrom Day         `json:"dateFrom"`
	DateTo   Day         `json:"dateTo,omitempty"`
}

// ActiveOn reports whether the event covers the day (open ended when DateTo
// is empty).
func (e *PCEvent) ActiveOn(day Day) bool {
	return day >= e.DateFrom && (e.DateTo == "" || day <= e.DateTo)
}

// WorkPosition names a placement on the production floor.
type WorkPosition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
