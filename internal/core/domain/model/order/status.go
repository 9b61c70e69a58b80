package order

import (
	"strings"

	"tableside/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The workflow knows three states:
//
//	Pending ──> Preparing ──> Completed
//
// but no transition is rejected for being out of order: kitchen staff may move
// an order between any two states. The one automatic rule is that entering
// Completed archives the order.
//
// Any other non-empty string is accepted as a custom status. This is a
// deliberate escape hatch for backward compatibility with historical rows;
// custom statuses carry no lifecycle side effects.
type Status struct {
	value string
}

// The canonical lifecycle states.
var (
	Pending   = Status{value: "Pending"}
	Preparing = Status{value: "Preparing"}
	Completed = Status{value: "Completed"}
)

// NewStatus creates a Status from a raw string. Input matching one of the
// canonical states case-insensitively is normalized to its canonical spelling,
// so "compLeted" and "COMPLETED" become Completed. Other non-empty strings are
// preserved verbatim as custom statuses. Empty input is rejected.
func NewStatus(raw string) (Status, error) {
	if raw == "" {
		return Status{}, errs.NewValueIsRequiredError("status")
	}

	for _, canonical := range []Status{Pending, Preparing, Completed} {
		if strings.EqualFold(raw, canonical.value) {
			return canonical, nil
		}
	}

	return Status{value: raw}, nil
}

// RestoreStatus rebuilds a Status from its persisted form without
// normalization, preserving whatever the store holds. An empty stored value
// falls back to Pending.
func RestoreStatus(raw string) Status {
	if raw == "" {
		return Pending
	}
	return Status{value: raw}
}

// Validate checks that the Status is not the zero value.
func (s Status) Validate() error {
	if s.value == "" {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}

// String returns the status text as stored and displayed.
func (s Status) String() string {
	return s.value
}

// IsCompleted reports whether this status triggers archival. The comparison is
// case-insensitive so legacy rows restored without normalization still count.
func (s Status) IsCompleted() bool {
	return strings.EqualFold(s.value, Completed.value)
}

// IsCanonical reports whether the status is one of the three workflow states.
func (s Status) IsCanonical() bool {
	return s == Pending || s == Preparing || s == Completed
}
