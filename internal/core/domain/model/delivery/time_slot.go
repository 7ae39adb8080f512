package delivery

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
)

// ErrTimeSlotIsNotConstructed is returned when a TimeSlot was not created
// through NewTimeSlot.
var ErrTimeSlotIsNotConstructed = errors.New("TimeSlot must be created via NewTimeSlot")

// TimeSlot is the agreed delivery window. Start must precede End.
type TimeSlot struct {
	start         time.Time
	end           time.Time
	isConstructed bool
}

// NewTimeSlot creates a delivery window.
func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if start.IsZero() {
		return TimeSlot{}, errs.NewValueIsRequiredError("start")
	}
	if end.IsZero() {
		return TimeSlot{}, errs.NewValueIsRequiredError("end")
	}
	if !start.Before(end) {
		return TimeSlot{}, errs.NewValueIsInvalidErrorWithCause("timeSlot",
			fmt.Errorf("start %s is not before end %s", start.Format(time.RFC3339), end.Format(time.RFC3339)))
	}

	return TimeSlot{start: start.UTC(), end: end.UTC(), isConstructed: true}, nil
}

// Start returns the window opening time.
func (t TimeSlot) Start() time.Time { return t.start }

// End returns the window closing time.
func (t TimeSlot) End() time.Time { return t.end }

// IsEqual compares two time slots.
func (t TimeSlot) IsEqual(other TimeSlot) bool {
	return t.start.Equal(other.start) && t.end.Equal(other.end)
}

// Validate ensures the slot was properly constructed.
func (t TimeSlot) Validate() error {
	if !t.isConstructed {
		return ErrTimeSlotIsNotConstructed
	}
	return nil
}
