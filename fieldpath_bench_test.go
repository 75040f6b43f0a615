package fieldpath

import "testing"

func BenchmarkSerialize(b *testing.B) {
	p := New("foo", "((c)", "Marty's", "(ext.image)", "width")
	b.ReportAllocs()
	var s string
	for i := 0; i < b.N; i++ {
		s = p.Serialize()
	}
	b.SetBytes(int64(len(s)))
}

func BenchmarkDeserialize(b *testing.B) {
	s := New("foo", "((c)", "Marty's", "(ext.image)", "width").Serialize()
	b.ReportAllocs()
	b.SetBytes(int64(len(s)))
	for i := 0; i < b.N; i++ {
		_, _ = Deserialize(s)
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	p := New("foo", "bar", "a.b", "")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q, err := Deserialize(p.Serialize())
		if err != nil || !q.Equal(p) {
			b.Fatal("round trip failed")
		}
	}
}
