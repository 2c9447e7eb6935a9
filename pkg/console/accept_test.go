package console

import (
	"testing"

	"github.com/aretw0/fconsole/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feed(a *Accumulator, s string) []domain.Status {
	out := make([]domain.Status, 0, len(s))
	for i := 0; i < len(s); i++ {
		out = append(out, a.Accept(s[i]))
	}
	return out
}

func TestAccumulator_Line(t *testing.T) {
	a := NewAccumulator(8, '\n')

	got := feed(a, "1 2 +")
	for _, rc := range got {
		assert.Equal(t, domain.StatusAcceptPending, rc)
	}
	assert.False(t, a.Complete())

	assert.Equal(t, domain.StatusOK, a.Accept('\n'))
	assert.True(t, a.Complete())
	assert.Equal(t, "1 2 +", string(a.Buffer()))
	assert.Equal(t, byte(0), a.buf[a.n])
}

func TestAccumulator_Overflow(t *testing.T) {
	a := NewAccumulator(4, '\n')

	// Dropped characters stay pending; only the newline reports.
	for i, rc := range feed(a, "abcdefgh") {
		assert.Equal(t, domain.StatusAcceptPending, rc, "char %d", i)
	}
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, domain.ErrAccumulatorOverflow, a.Accept('\n'))
	assert.Equal(t, "abcd", string(a.Buffer()))
	assert.Equal(t, byte(0), a.buf[4])
	assert.Len(t, a.buf, a.Cap()+1)

	// Overflow is reported once; the next line starts clean.
	got := feed(a, "xy\n")
	assert.Equal(t, domain.StatusOK, got[2])
	assert.Equal(t, "xy", string(a.Buffer()))
}

func TestAccumulator_ExactlyFull(t *testing.T) {
	a := NewAccumulator(4, '\n')

	got := feed(a, "abcd\n")
	assert.Equal(t, domain.StatusOK, got[4])
	assert.Equal(t, "abcd", string(a.Buffer()))
}

func TestAccumulator_Clear(t *testing.T) {
	a := NewAccumulator(4, '\r')

	feed(a, "abcdef")
	a.Clear()
	assert.Equal(t, 0, a.Len())
	assert.False(t, a.Complete())

	// '\n' is an ordinary character with a '\r' newline.
	got := feed(a, "a\nb\r")
	assert.Equal(t, domain.StatusOK, got[3])
	assert.Equal(t, "a\nb", string(a.Buffer()))
}

func TestConsole_AcceptThenProcess(t *testing.T) {
	c, err := New(DefaultConfig())
	require.NoError(t, err)

	for _, ch := range []byte("12 DUP\n") {
		c.Accept(ch)
	}
	rc, _ := c.Process(c.AcceptBuffer())
	require.Equal(t, domain.StatusOK, rc)
	assert.Equal(t, 2, c.Depth())

	// The buffer is untouched by Process apart from the delimiters, and
	// stays valid until the next line starts.
	assert.Equal(t, "12\x00DUP", string(c.AcceptBuffer()))

	c.AcceptClear()
	assert.Empty(t, c.AcceptBuffer())
}

func TestConsole_ReferencesExpireWithTheLine(t *testing.T) {
	c, err := New(DefaultConfig())
	require.NoError(t, err)

	for _, ch := range []byte("\"abc\n") {
		c.Accept(ch)
	}
	rc, _ := c.Process(c.AcceptBuffer())
	require.Equal(t, domain.StatusOK, rc)

	ref := c.Stack()[0]
	b, ok := c.Lookup(ref)
	require.True(t, ok)
	assert.Equal(t, "abc", string(b))

	c.Accept('x')
	_, ok = c.Lookup(ref)
	assert.False(t, ok, "a new line invalidates references to the old one")
}
