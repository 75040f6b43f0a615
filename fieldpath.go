// Package fieldpath represents locations of nested fields in structured
// records as an ordered sequence of steps, and serializes them into a
// single human-readable string that can be exactly inverted.
//
// Individual steps are arbitrary byte strings. Since they may not be
// valid unicode, nothing here tries to parse them as such. Most steps
// look like conventional identifiers or proto extension brackets and
// pass through untouched:
//
//	foo
//	bar
//	(foo.bar)
//
// Any other step is encapsulated in single quotes with internal quotes
// doubled:
//
//	((c)     becomes '((c)'
//	Marty's  becomes 'Marty''s'
//
// Serialized steps are concatenated with dots, so {foo, bar, baz}
// becomes foo.bar.baz and {foo, ((c), Marty's} becomes
// foo.'((c)'.'Marty''s'. Serialize is an injection: for any string it
// produces, Deserialize inverts the process.
package fieldpath

// Path is an ordered sequence of steps, root to leaf. The zero value
// is the empty path. A Path is a value: constructors and accessors
// copy, derived paths never alias the source.
type Path struct {
	steps []string
}

// New builds a Path from the given steps.
func New(steps ...string) Path {
	return FromSteps(steps)
}

// FromSteps builds a Path from an external ordered step list, one step
// per entry, no escaping applied. The slice is copied.
func FromSteps(steps []string) Path {
	if len(steps) == 0 {
		return Path{}
	}
	cp := make([]string, len(steps))
	copy(cp, steps)
	return Path{steps: cp}
}

// Steps returns the raw step list, the inverse of FromSteps.
func (p Path) Steps() []string {
	if len(p.steps) == 0 {
		return nil
	}
	cp := make([]string, len(p.steps))
	copy(cp, p.steps)
	return cp
}

// Size is the number of steps in the path.
func (p Path) Size() int { return len(p.steps) }

// Empty reports whether the path has no steps.
func (p Path) Empty() bool { return len(p.steps) == 0 }

// LastStep returns the final step. It panics on an empty path; callers
// must check Empty first.
func (p Path) LastStep() string {
	if len(p.steps) == 0 {
		panic("fieldpath: LastStep on empty path")
	}
	return p.steps[len(p.steps)-1]
}

// GetParent returns the path with the last step removed. It panics on
// an empty path.
func (p Path) GetParent() Path {
	if len(p.steps) == 0 {
		panic("fieldpath: GetParent on empty path")
	}
	return FromSteps(p.steps[:len(p.steps)-1])
}

// GetChild returns the path with step appended.
func (p Path) GetChild(step string) Path {
	cp := make([]string, len(p.steps)+1)
	copy(cp, p.steps)
	cp[len(p.steps)] = step
	return Path{steps: cp}
}

// PopHead splits off the first step: Path{"foo","rest","of","path"}
// yields ("foo", Path{"rest","of","path"}). It panics on an empty path.
func (p Path) PopHead() (string, Path) {
	if len(p.steps) == 0 {
		panic("fieldpath: PopHead on empty path")
	}
	return p.steps[0], FromSteps(p.steps[1:])
}

// Compare orders paths lexicographically over their steps, bytewise
// per step. A strict prefix sorts before its extension. Returns -1, 0
// or 1. The order is total, so Paths can key ordered sets and maps.
func (p Path) Compare(q Path) int {
	n := len(p.steps)
	if len(q.steps) < n {
		n = len(q.steps)
	}
	for i := 0; i < n; i++ {
		if p.steps[i] != q.steps[i] {
			if p.steps[i] < q.steps[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(p.steps) < len(q.steps):
		return -1
	case len(p.steps) > len(q.steps):
		return 1
	}
	return 0
}

// Equal reports whether both paths hold the same step sequence.
func (p Path) Equal(q Path) bool { return p.Compare(q) == 0 }

// Less reports whether p sorts before q under Compare.
func (p Path) Less(q Path) bool { return p.Compare(q) < 0 }

// String renders the path with Serialize, for printing.
func (p Path) String() string { return p.Serialize() }

// MarshalText implements encoding.TextMarshaler via Serialize.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.Serialize()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Deserialize.
func (p *Path) UnmarshalText(text []byte) error {
	q, err := Deserialize(string(text))
	if err != nil {
		return err
	}
	*p = q
	return nil
}

// MarshalYAML renders the path as a YAML string node.
func (p Path) MarshalYAML() (interface{}, error) {
	return p.Serialize(), nil
}

// UnmarshalYAML decodes a YAML string node with Deserialize.
func (p *Path) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}
