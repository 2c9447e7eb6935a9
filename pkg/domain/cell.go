package domain

// CellKind tags the variant held by a Cell.
type CellKind uint8

const (
	// KindInt is an immediate integer.
	KindInt CellKind = iota
	// KindRef is a reference to a region of the line buffer.
	KindRef
)

// Cell is a single operand stack entry.
//
// A reference never exposes an address: Int holds its offset into the line
// buffer (usable as a plain integer handle), Len its byte length and Gen the
// line generation that produced it. A reference is only readable while the
// same line is current.
type Cell struct {
	Kind CellKind
	Int  int64
	Len  int
	Gen  uint32
}

// Int returns an immediate integer cell.
func Int(v int64) Cell {
	return Cell{Kind: KindInt, Int: v}
}

// Ref returns a reference cell to buf[off:off+n] of line generation gen.
func Ref(off, n int, gen uint32) Cell {
	return Cell{Kind: KindRef, Int: int64(off), Len: n, Gen: gen}
}

// IsRef reports whether the cell refers into the line buffer.
func (c Cell) IsRef() bool { return c.Kind == KindRef }
