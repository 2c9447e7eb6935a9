package console

// Hash returns the 16 bit command hash of a token: Bernstein's hash in its
// xor form, with lowercase ASCII folded to uppercase. Every byte is hashed,
// printable or not, up to the end of the slice or the first nul.
//
// The values are stable across builds and hosts, so command tables can be
// generated ahead of time (see `fconsole hash`).
func Hash(tok []byte) uint16 {
	h := uint16(5381)
	for _, ch := range tok {
		if ch == 0 {
			break
		}
		h = h*33 ^ uint16(upper(ch))
	}
	return h
}

// HashString is Hash for a string.
func HashString(s string) uint16 {
	h := uint16(5381)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == 0 {
			break
		}
		h = h*33 ^ uint16(upper(ch))
	}
	return h
}

func upper(ch byte) byte {
	if ch >= 'a' && ch <= 'z' {
		return ch - 'a' + 'A'
	}
	return ch
}

// foldEqual compares a token with an upper case name, ignoring ASCII case.
func foldEqual(tok []byte, name string) bool {
	if len(tok) != len(name) {
		return false
	}
	for i, ch := range tok {
		if upper(ch) != name[i] {
			return false
		}
	}
	return true
}
