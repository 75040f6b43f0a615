package fieldpath

import "strings"

// Serialize renders the path as a single dot-separated string.
// Intended to be as human-readable as possible: bare steps pass
// through untouched, everything else is single-quoted with internal
// quotes doubled (see the package comment for the grammar). The empty
// path serializes to the empty string. Serialize cannot fail: every
// byte string has a token representation.
func (p Path) Serialize() string {
	var b strings.Builder
	for i, step := range p.steps {
		if i > 0 {
			b.WriteByte('.')
		}
		if needsQuote(step) {
			appendQuoted(&b, step)
		} else {
			b.WriteString(step)
		}
	}
	return b.String()
}
