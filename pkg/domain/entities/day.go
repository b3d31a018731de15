package entities

import "time"

// DayLayout is the calendar-day form used everywhere in the document.
const DayLayout = "2006-01-02"

// Day is an ISO calendar day string ("2006-01-02"). The format sorts
// lexicographically, so range checks are plain string comparisons.
type Day string

// NewDay truncates a time to its calendar day.
func NewDay(t time.Time) Day {
	return Day(t.Format(DayLayout))
}

// Today returns the current calendar day.
func Today() Day {
	return NewDay(time.Now())
}

// Valid reports whether the day parses as an ISO calendar day.
func (d Day) Valid() bool {
	_, err := time.Parse(DayLayout, string(d))
	return err == nil
}

// Next returns the following calendar day. Invalid days return themselves.
func (d Day) Next() Day {
	t, err := time.Parse(DayLayout, string(d))
	if err != nil {
		return d
	}
	return NewDay(t.AddDate(0, 0, 1))
}

func (d Day) String() string {
	return string(d)
}
