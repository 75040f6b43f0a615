package fieldpath

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyPath(t *testing.T) {
	var p Path
	require.True(t, p.Empty())
	require.Equal(t, 0, p.Size())
	require.Equal(t, "", p.Serialize())
	q, err := Deserialize("")
	require.NoError(t, err)
	require.True(t, q.Empty())
	require.True(t, p.Equal(q))
}

func TestDecomposition(t *testing.T) {
	p := New("a", "b", "c")
	require.Equal(t, 3, p.Size())
	require.Equal(t, "c", p.LastStep())
	require.True(t, p.GetParent().Equal(New("a", "b")))

	head, rest := p.PopHead()
	require.Equal(t, "a", head)
	require.True(t, rest.Equal(New("b", "c")))

	require.True(t, New("a").GetChild("b").Equal(New("a", "b")))
	require.True(t, Path{}.GetChild("x").Equal(New("x")))
}

func TestPanicsOnEmptyPath(t *testing.T) {
	var p Path
	require.Panics(t, func() { p.LastStep() })
	require.Panics(t, func() { p.GetParent() })
	require.Panics(t, func() { p.PopHead() })
}

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b []string
		want int
	}{
		{nil, nil, 0},
		{nil, []string{"a"}, -1},
		{[]string{"a"}, []string{"a"}, 0},
		{[]string{"a"}, []string{"a", "b"}, -1},
		{[]string{"a", "b"}, []string{"a", "c"}, -1},
		{[]string{"b"}, []string{"a", "z"}, 1},
		{[]string{"a", ""}, []string{"a"}, 1},
	}
	for _, c := range cases {
		a, b := FromSteps(c.a), FromSteps(c.b)
		assert.Equal(t, c.want, a.Compare(b), "%q vs %q", c.a, c.b)
		assert.Equal(t, -c.want, b.Compare(a), "%q vs %q reversed", c.b, c.a)
		assert.Equal(t, c.want == 0, a.Equal(b), "%q vs %q equality", c.a, c.b)
		assert.Equal(t, c.want < 0, a.Less(b), "%q vs %q less", c.a, c.b)
	}
}

func TestSortWithCompare(t *testing.T) {
	paths := []Path{
		New("b"),
		New("a", "b"),
		New("a"),
		{},
		New("a", "b", "c"),
	}
	sort.Slice(paths, func(i, j int) bool { return paths[i].Less(paths[j]) })
	want := []string{"", "a", "a.b", "a.b.c", "b"}
	for i, p := range paths {
		require.Equal(t, want[i], p.Serialize())
	}
}

func TestValueSemantics(t *testing.T) {
	steps := []string{"a", "b"}
	p := FromSteps(steps)
	steps[0] = "mutated"
	require.Equal(t, "a.b", p.Serialize())

	got := p.Steps()
	got[0] = "mutated"
	require.Equal(t, "a.b", p.Serialize())

	parent := New("a", "b", "c").GetParent()
	child := parent.GetChild("z")
	require.Equal(t, "a.b", parent.Serialize())
	require.Equal(t, "a.b.z", child.Serialize())
}

func TestStepsRoundTrip(t *testing.T) {
	steps := []string{"foo", "((c)", "Marty's"}
	require.Equal(t, steps, FromSteps(steps).Steps())
	require.Nil(t, Path{}.Steps())
}

func TestStringMatchesSerialize(t *testing.T) {
	p := New("foo", "a.b")
	require.Equal(t, p.Serialize(), p.String())
}
