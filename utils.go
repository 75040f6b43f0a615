package fieldpath

import "strings"

// classify steps for Serialize
func needsQuote(step string) bool {
	if len(step) == 0 {
		return true
	}
	if step[0] == '(' {
		return !isParenStep(step)
	}
	return strings.ContainsAny(step, ".()'")
}

// isParenStep reports whether step is a proto-extension style token:
// first byte '(', last byte ')', and no '(', ')' or '\'' in between.
// Interior dots are fine, the decoder keeps them inside the token.
func isParenStep(step string) bool {
	if len(step) < 2 || step[len(step)-1] != ')' {
		return false
	}
	return !strings.ContainsAny(step[1:len(step)-1], "()'")
}

// appendQuoted writes step wrapped in single quotes, doubling every
// literal quote.
func appendQuoted(b *strings.Builder, step string) {
	b.WriteByte('\'')
	for i := 0; i < len(step); i++ {
		if step[i] == '\'' {
			b.WriteByte('\'')
		}
		b.WriteByte(step[i])
	}
	b.WriteByte('\'')
}
