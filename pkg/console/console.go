package console

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/fconsole/internal/logging"
	"github.com/aretw0/fconsole/pkg/domain"
	"github.com/aretw0/fconsole/pkg/ports"
)

// Recogniser tries to claim a token. It returns false to pass the token to
// the next recogniser, or true once it has acted on it. A recogniser may
// rewrite the token in place but never beyond its end.
type Recogniser func(c *Console, tok []byte) bool

// Console is a single interpreter instance. It owns the input accumulator,
// the operand stack and the recogniser chain. A Console is not safe for
// concurrent use; give every session its own instance.
type Console struct {
	cfg     Config
	chain   []Recogniser
	tables  []*Table
	user    []*Table
	custom  bool
	printer ports.Printer
	logger  *slog.Logger
	hooks   domain.Hooks

	in *Accumulator

	stack []domain.Cell
	sp    int

	// Line being processed and the offset of the current token in it.
	line   []byte
	tokOff int
	gen    uint32
	active bool
}

// Option configures a Console.
type Option func(*Console)

// WithRecognisers replaces the default chain. The list is used verbatim, so
// number and string recognisers must come before any table lookups.
func WithRecognisers(rs ...Recogniser) Option {
	return func(c *Console) {
		c.chain = append([]Recogniser(nil), rs...)
		c.custom = true
	}
}

// WithUserCommands appends host command tables after the builtins.
func WithUserCommands(tables ...*Table) Option {
	return func(c *Console) {
		c.user = append(c.user, tables...)
	}
}

// WithPrinter sets the output callback.
func WithPrinter(p ports.Printer) Option {
	return func(c *Console) {
		c.printer = p
	}
}

// WithLogger sets a structured logger for debug events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Console) {
		c.logger = logger
	}
}

// WithHooks registers observability callbacks.
func WithHooks(hooks domain.Hooks) Option {
	return func(c *Console) {
		c.hooks = hooks
	}
}

// New creates an interpreter instance. The default chain is: decimal, hex,
// string, hex string, comment, builtins, help (if configured), user tables.
func New(cfg Config, opts ...Option) (*Console, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Console{
		cfg:     cfg,
		printer: ports.Discard,
		logger:  logging.NewNop(),
		in:      NewAccumulator(cfg.MaxLine, cfg.Newline),
		stack:   make([]domain.Cell, cfg.StackDepth),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.tables = append(c.tables, Builtins())
	if cfg.WantHelp {
		c.tables = append(c.tables, helpTable)
	}
	c.tables = append(c.tables, c.user...)
	if err := checkTables(c.tables); err != nil {
		return nil, err
	}

	if !c.custom {
		c.chain = []Recogniser{
			RecogniseDecimal,
			RecogniseHex,
			RecogniseString,
			RecogniseHexString,
			RecogniseComment,
		}
		for _, t := range c.tables {
			c.chain = append(c.chain, t.Recogniser())
		}
	}

	c.logger.Debug("console initialised",
		"max_line", cfg.MaxLine,
		"stack_depth", cfg.StackDepth,
		"word_bits", cfg.WordBits,
		"recognisers", len(c.chain),
	)
	return c, nil
}

// Config returns the configuration the instance was built with.
func (c *Console) Config() Config { return c.cfg }

// Tables returns the command tables in chain order, for help output.
func (c *Console) Tables() []*Table { return c.tables }

// abort is the value carried by the panic that Raise starts.
type abort struct {
	status domain.Status
}

// Raise stops processing of the current line and makes Process return rc.
// It must only be called from a recogniser or command handler while Process
// is running.
func (c *Console) Raise(rc domain.Status) {
	if !c.active {
		panic(fmt.Sprintf("console: Raise(%d) called outside Process", int(rc)))
	}
	panic(abort{status: rc})
}

// Process evaluates one line. Tokens are separated by whitespace and the
// delimiter after each token is overwritten with a nul. Processing stops at
// the first nul, at the first raised status, or at the first token that no
// recogniser claims (ErrBadCommand). The returned slice is the token being
// processed when the line ended.
//
// Process does not clear the input accumulator.
func (c *Console) Process(line []byte) (rc domain.Status, current []byte) {
	c.gen++
	c.line = line
	c.active = true
	tokens := 0

	defer func() {
		c.active = false
		if r := recover(); r != nil {
			a, ok := r.(abort)
			if !ok {
				panic(r)
			}
			rc = a.status
			c.fireToken(current, rc)
		}
		if rc != domain.StatusOK {
			c.logger.Debug("line aborted",
				"token", string(current),
				"status", int(rc),
				"description", domain.Describe(rc),
			)
		}
		if c.hooks.OnLine != nil {
			ev := &domain.LineEvent{Status: rc, Tokens: tokens, Depth: c.sp}
			if rc != domain.StatusOK {
				ev.Token = string(current)
			}
			c.hooks.OnLine(ev)
		}
	}()

	pos := 0
	for {
		for pos < len(line) && isSpace(line[pos]) {
			pos++
		}
		if pos >= len(line) || line[pos] == 0 {
			return domain.StatusOK, current
		}

		start := pos
		for pos < len(line) && line[pos] != 0 && !isSpace(line[pos]) {
			pos++
		}
		current = line[start:pos:pos]
		if pos < len(line) && line[pos] != 0 {
			line[pos] = 0
			pos++
		}

		c.tokOff = start
		tokens++
		c.dispatch(current)
	}
}

// ProcessString is a convenience wrapper around Process for hosts that hold
// a string. References pushed by the line stay readable until the next call.
func (c *Console) ProcessString(s string) (domain.Status, string) {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	rc, tok := c.Process(buf[:len(s)])
	return rc, string(tok)
}

func (c *Console) dispatch(tok []byte) {
	for _, r := range c.chain {
		if r(c, tok) {
			c.fireToken(tok, domain.StatusOK)
			return
		}
	}
	c.Raise(domain.ErrBadCommand)
}

func (c *Console) fireToken(tok []byte, rc domain.Status) {
	if c.hooks.OnToken == nil {
		return
	}
	c.hooks.OnToken(&domain.TokenEvent{Token: string(tok), Status: rc, Depth: c.sp})
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\v' || ch == '\f'
}

// Accept feeds one character to the input accumulator. A newline completes
// the line; any character after that starts a new one.
func (c *Console) Accept(ch byte) domain.Status {
	if c.in.Complete() {
		c.gen++
	}
	return c.in.Accept(ch)
}

// AcceptBuffer returns the accumulated line. Only meaningful once Accept has
// stopped returning StatusAcceptPending.
func (c *Console) AcceptBuffer() []byte { return c.in.Buffer() }

// AcceptPending reports whether a line has been started but its newline has
// not arrived yet.
func (c *Console) AcceptPending() bool {
	return !c.in.Complete() && c.in.Len() > 0
}

// AcceptClear re-arms the accumulator for a new line.
func (c *Console) AcceptClear() {
	c.gen++
	c.in.Clear()
}

// TokenRef returns a reference to n bytes starting off bytes into the
// current token.
func (c *Console) TokenRef(off, n int) domain.Cell {
	return domain.Ref(c.tokOff+off, n, c.gen)
}

// Lookup resolves a reference cell without raising. It reports false for
// integers, for references made by an earlier line, and for regions outside
// the line.
func (c *Console) Lookup(cell domain.Cell) ([]byte, bool) {
	if !cell.IsRef() || cell.Gen != c.gen {
		return nil, false
	}
	off := int(cell.Int)
	if off < 0 || cell.Len < 0 || off+cell.Len > len(c.line) {
		return nil, false
	}
	return c.line[off : off+cell.Len], true
}

// Bytes resolves a reference cell, raising ErrBadIndex if it is not valid.
func (c *Console) Bytes(cell domain.Cell) []byte {
	b, ok := c.Lookup(cell)
	if !ok {
		c.Raise(domain.ErrBadIndex)
	}
	return b
}

// Text resolves a reference cell as a string, raising ErrBadIndex if it is
// not valid.
func (c *Console) Text(cell domain.Cell) string {
	return string(c.Bytes(cell))
}

// Print sends a numeric value to the printer. Unsigned and hex values are
// masked to the word size first.
func (c *Console) Print(opt domain.PrintOpt, x int64) {
	switch opt.Kind() {
	case domain.PrintUnsigned, domain.PrintHex:
		x = int64(uint64(x) & c.MaxUint())
	}
	c.printer.Print(opt, x, "")
}

// PrintText sends a string to the printer.
func (c *Console) PrintText(opt domain.PrintOpt, s string) {
	c.printer.Print(opt, 0, s)
}
