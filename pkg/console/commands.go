package console

import (
	"errors"
	"fmt"
)

// ErrDuplicateCommand is returned when a table registers the same name twice.
var ErrDuplicateCommand = errors.New("duplicate command")

// Command is a named handler working on the operand stack.
type Command struct {
	// Name is matched case-insensitively. It is stored in upper case.
	Name string
	// Help is a Forth style stack comment and a short description,
	// e.g. "( x1 x2 - x3) Add values.".
	Help string
	Fn   func(c *Console)
}

// Hash returns the dispatch key of the command.
func (cmd Command) Hash() uint16 { return HashString(cmd.Name) }

// CollisionError reports two distinct command names sharing a hash value.
type CollisionError struct {
	Table  string
	Hash   uint16
	First  string
	Second string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("table %q: commands %q and %q share hash $%04X", e.Table, e.First, e.Second, e.Hash)
}

// Table maps command hashes to handlers. It is immutable once built.
type Table struct {
	name  string
	cmds  []Command
	index map[uint16]int
}

// NewTable builds a command table. Hash collisions between distinct names
// are a configuration error and are reported here instead of at dispatch.
func NewTable(name string, cmds ...Command) (*Table, error) {
	t := &Table{
		name:  name,
		cmds:  make([]Command, 0, len(cmds)),
		index: make(map[uint16]int, len(cmds)),
	}
	for _, cmd := range cmds {
		if cmd.Name == "" || cmd.Fn == nil {
			return nil, fmt.Errorf("table %q: command %q needs a name and a handler", name, cmd.Name)
		}
		cmd.Name = normalizeName(cmd.Name)
		h := cmd.Hash()
		if i, ok := t.index[h]; ok {
			if t.cmds[i].Name == cmd.Name {
				return nil, fmt.Errorf("table %q: %w: %s", name, ErrDuplicateCommand, cmd.Name)
			}
			return nil, &CollisionError{Table: name, Hash: h, First: t.cmds[i].Name, Second: cmd.Name}
		}
		t.index[h] = len(t.cmds)
		t.cmds = append(t.cmds, cmd)
	}
	return t, nil
}

// checkTables rejects a name or hash registered by more than one table of a
// chain. Lookup stops at the first table with a match, so a later entry
// would be unreachable.
func checkTables(tables []*Table) error {
	owners := make(map[uint16]struct {
		table string
		cmd   Command
	})
	for _, t := range tables {
		for _, cmd := range t.cmds {
			h := cmd.Hash()
			prev, ok := owners[h]
			if !ok {
				owners[h] = struct {
					table string
					cmd   Command
				}{t.name, cmd}
				continue
			}
			if prev.cmd.Name == cmd.Name {
				return fmt.Errorf("table %q: %w: %s already in table %q", t.name, ErrDuplicateCommand, cmd.Name, prev.table)
			}
			return &CollisionError{Table: t.name, Hash: h, First: prev.cmd.Name, Second: cmd.Name}
		}
	}
	return nil
}

// MustTable is like NewTable but panics on error. It is meant for tables
// declared as package variables.
func MustTable(name string, cmds ...Command) *Table {
	t, err := NewTable(name, cmds...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Commands returns the commands in registration order.
func (t *Table) Commands() []Command {
	return append([]Command(nil), t.cmds...)
}

// Lookup finds the command for a token. The hash selects the candidate and
// the name confirms it, so an unregistered token never runs a handler just
// because its hash matches.
func (t *Table) Lookup(tok []byte) (Command, bool) {
	i, ok := t.index[Hash(tok)]
	if !ok || !foldEqual(tok, t.cmds[i].Name) {
		return Command{}, false
	}
	return t.cmds[i], true
}

// Recogniser adapts the table to the recogniser chain.
func (t *Table) Recogniser() Recogniser {
	return func(c *Console, tok []byte) bool {
		cmd, ok := t.Lookup(tok)
		if !ok {
			return false
		}
		cmd.Fn(c)
		return true
	}
}

func normalizeName(s string) string {
	b := []byte(s)
	for i, ch := range b {
		b[i] = upper(ch)
	}
	return string(b)
}
