package nixdoc

// Lowercase holds a query that has already been folded to ASCII
// lowercase. Folding the query once up front avoids re-folding the same
// bytes for every candidate key during a search.
type Lowercase []byte

// NewLowercase folds s to ASCII lowercase. Bytes outside the A-Z range
// are kept verbatim; no Unicode case folding is attempted.
func NewLowercase(s string) Lowercase {
	b := make(Lowercase, len(s))
	for i := 0; i < len(s); i++ {
		b[i] = foldASCII(s[i])
	}
	return b
}

// String returns the folded query as a string.
func (l Lowercase) String() string {
	return string(l)
}

func foldASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// StartsWithInsensitive reports whether haystack begins with needle,
// ignoring ASCII case in the haystack. An empty needle matches any
// haystack.
func StartsWithInsensitive(haystack []byte, needle Lowercase) bool {
	if len(needle) > len(haystack) {
		return false
	}
	for i, c := range needle {
		if foldASCII(haystack[i]) != c {
			return false
		}
	}
	return true
}

// ContainsInsensitive reports whether needle occurs anywhere in
// haystack, ignoring ASCII case in the haystack. Every prefix match is
// also a substring match, so results found by StartsWithInsensitive are
// always found here too.
func ContainsInsensitive(haystack []byte, needle Lowercase) bool {
	if len(needle) == 0 {
		return true
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if StartsWithInsensitive(haystack[i:], needle) {
			return true
		}
	}
	return false
}
