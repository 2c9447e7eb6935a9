package console

import "github.com/aretw0/fconsole/pkg/domain"

// maxHexString is the longest payload a one byte length prefix can describe.
const maxHexString = 255

// RecogniseDecimal claims decimal numbers. A leading '-' makes the number
// signed and negative, a leading '+' makes it unsigned with the full
// unsigned range, otherwise it is signed and positive. The sign is not
// allowed anywhere else. A number outside its range raises ErrNumOverflow
// before anything is pushed.
func RecogniseDecimal(c *Console, tok []byte) bool {
	digits := tok
	neg, unsigned := false, false
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		neg = digits[0] == '-'
		unsigned = !neg
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return false
	}
	for _, ch := range digits {
		if ch < '0' || ch > '9' {
			return false
		}
	}

	limit := uint64(c.MaxInt())
	switch {
	case neg:
		limit++
	case unsigned:
		limit = c.MaxUint()
	}

	mag := c.accumulate(digits, 10, limit)
	v := int64(mag)
	if neg {
		v = -v
	}
	c.PushInt(v)
	return true
}

// RecogniseHex claims unsigned hex numbers written as `$` followed by hex
// digits in either case.
func RecogniseHex(c *Console, tok []byte) bool {
	if len(tok) < 2 || tok[0] != '$' {
		return false
	}
	digits := tok[1:]
	for _, ch := range digits {
		if _, ok := hexValue(ch); !ok {
			return false
		}
	}
	c.PushInt(int64(c.accumulate(digits, 16, c.MaxUint())))
	return true
}

// RecogniseString claims `"text` and pushes a reference to the text after
// the quote.
func RecogniseString(c *Console, tok []byte) bool {
	if len(tok) == 0 || tok[0] != '"' {
		return false
	}
	c.Push(c.TokenRef(1, len(tok)-1))
	return true
}

// RecogniseHexString claims `&` followed by pairs of hex digits. The token
// is rewritten in place to a length byte followed by the decoded bytes, and
// a reference to that region is pushed. So `&1aff01` becomes 03 1a ff 01.
func RecogniseHexString(c *Console, tok []byte) bool {
	if len(tok) == 0 || tok[0] != '&' {
		return false
	}
	digits := tok[1:]
	if len(digits)%2 != 0 {
		return false
	}
	for _, ch := range digits {
		if _, ok := hexValue(ch); !ok {
			return false
		}
	}

	n := len(digits) / 2
	if n > maxHexString {
		c.Raise(domain.ErrNumOverflow)
	}
	c.VerifyCanPush(1)

	// Each output byte lands at or before the digits it came from, so the
	// decode can run in place.
	for i := 0; i < n; i++ {
		hi, _ := hexValue(digits[2*i])
		lo, _ := hexValue(digits[2*i+1])
		tok[1+i] = hi<<4 | lo
	}
	tok[0] = byte(n)
	c.Push(c.TokenRef(0, n+1))
	return true
}

// RecogniseComment claims any token starting with '#' and ignores the rest
// of the line.
func RecogniseComment(c *Console, tok []byte) bool {
	if len(tok) == 0 || tok[0] != '#' {
		return false
	}
	c.Raise(domain.StatusIgnoreEOL)
	return true
}

// accumulate converts pre-validated digits, raising ErrNumOverflow as soon
// as the value would exceed limit.
func (c *Console) accumulate(digits []byte, base, limit uint64) uint64 {
	var mag uint64
	for _, ch := range digits {
		d, _ := hexValue(ch)
		if mag > (limit-uint64(d))/base {
			c.Raise(domain.ErrNumOverflow)
		}
		mag = mag*base + uint64(d)
	}
	return mag
}

func hexValue(ch byte) (byte, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0', true
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10, true
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10, true
	}
	return 0, false
}
