package domain

// TokenEvent describes the dispatch of a single token.
type TokenEvent struct {
	Token  string
	Status Status
	Depth  int
}

// LineEvent describes the outcome of a processed line.
type LineEvent struct {
	Status Status
	Token  string // Offending token, empty on success
	Tokens int    // Tokens dispatched, including the failing one
	Depth  int
}

// Hooks defines callbacks for interpreter observability.
// Nil callbacks are skipped.
type Hooks struct {
	OnToken func(*TokenEvent)
	OnLine  func(*LineEvent)
}
