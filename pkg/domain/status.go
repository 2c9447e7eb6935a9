package domain

import "fmt"

// Status is the signed result code of every interpreter operation.
// Zero is success, positive values are errors and negative values are
// signals that do not indicate a failure.
type Status int

const (
	StatusOK Status = 0

	// ErrBadCommand is returned when no recogniser claims a token.
	ErrBadCommand Status = 1
	// ErrNumOverflow is raised when a number does not fit the word size.
	ErrNumOverflow Status = 2
	// ErrStackUnderflow is raised on a pop or peek past the bottom of the stack.
	ErrStackUnderflow Status = 3
	// ErrStackOverflow is raised on a push onto a full stack.
	ErrStackOverflow Status = 4
	// ErrAccumulatorOverflow is returned by Accept when a line did not fit.
	ErrAccumulatorOverflow Status = 5
	// ErrBadIndex is raised when an index is out of range.
	ErrBadIndex Status = 6
	// ErrUser is the first error code available to hosts.
	ErrUser Status = 7

	// StatusIgnoreEOL makes the rest of the line a comment.
	StatusIgnoreEOL Status = -1
	// StatusAcceptPending is returned by Accept while a line is incomplete.
	StatusAcceptPending Status = -2
	// StatusUser is the first status code available to hosts (counting down).
	StatusUser Status = -3
)

var descriptions = map[Status]string{
	StatusOK:               "OK",
	ErrBadCommand:          "bad command",
	ErrNumOverflow:         "number overflow",
	ErrStackUnderflow:      "stack underflow",
	ErrStackOverflow:       "stack overflow",
	ErrAccumulatorOverflow: "input buffer overflow",
	ErrBadIndex:            "bad index",
	StatusIgnoreEOL:        "ignore to end of line",
	StatusAcceptPending:    "accept pending",
}

// Describe returns a short human-readable description of a status code.
func Describe(s Status) string {
	if d, ok := descriptions[s]; ok {
		return d
	}
	if s > 0 {
		return "user error"
	}
	return "user status"
}

// IsError reports whether the status is a failure.
func (s Status) IsError() bool { return s > 0 }

// IsSignal reports whether the status is an informational signal.
func (s Status) IsSignal() bool { return s < 0 }

func (s Status) String() string { return Describe(s) }

// Error lets a failing status travel as a Go error.
func (s Status) Error() string {
	return fmt.Sprintf("%s (%d)", Describe(s), int(s))
}

// Err returns the status as an error, or nil when it is not a failure.
func (s Status) Err() error {
	if !s.IsError() {
		return nil
	}
	return s
}
