package timeutil

import "time"

// Cadence names a recurrence step for NextOccurrence. The values mirror the
// entry repeat field.
type Cadence string

const (
	CadenceNone     Cadence = "none"
	CadenceDaily    Cadence = "daily"
	CadenceWeekly   Cadence = "weekly"
	CadenceBiweekly Cadence = "biweekly"
	CadenceMonthly  Cadence = "monthly"
)

// NextOccurrence advances t by one cadence step. It returns false when the
// cadence does not repeat.
func NextOccurrence(t time.Time, c Cadence) (time.Time, bool) {
	switch c {
	case CadenceDaily:
		return t.AddDate(0, 0, 1), true
	case CadenceWeekly:
		return t.AddDate(0, 0, 7), true
	case CadenceBiweekly:
		return t.AddDate(0, 0, 14), true
	case CadenceMonthly:
		return t.AddDate(0, 1, 0), true
	}
	return time.Time{}, false
}
