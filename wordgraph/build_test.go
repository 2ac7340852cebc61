package wordgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/weavesolve/wordgraph"
)

// TestOneCharDiff covers zero, one and many differing positions.
func TestOneCharDiff(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"cold", "cold", false},
		{"cold", "cord", true},
		{"cold", "bold", true},
		{"cold", "colt", true},
		{"cold", "card", false},
		{"cold", "warm", false},
		{"", "", false},
		{"a", "b", true},
		{"naïf", "naif", true},
		{"ab\xff", "ab\xfe", true},
		{"ab\xff", "ab\xff", false},
		{"\xff\xfe", "\xfe\xff", false},
		{"caf\xe9", "café", true},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, wordgraph.OneCharDiff(tc.a, tc.b), "OneCharDiff(%q, %q)", tc.a, tc.b)
		assert.Equalf(t, tc.want, wordgraph.OneCharDiff(tc.b, tc.a), "OneCharDiff(%q, %q)", tc.b, tc.a)
	}
}

// TestBuild_InvalidUTF8 checks that distinct invalid bytes stay distinct.
func TestBuild_InvalidUTF8(t *testing.T) {
	g := wordgraph.Build([]string{"ab\xff", "ab\xfe", "\xff\xfe", "\xfe\xff"})
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 1, g.Size())
	nbrs, ok := g.Neighbors("ab\xff")
	require.True(t, ok)
	assert.Equal(t, []string{"ab\xfe"}, nbrs)
	nbrs, ok = g.Neighbors("\xff\xfe")
	require.True(t, ok)
	assert.Empty(t, nbrs)
}

// TestBuild_Empty ensures an empty dictionary produces an empty graph.
func TestBuild_Empty(t *testing.T) {
	g := wordgraph.Build(nil)
	require.NotNil(t, g)
	assert.Equal(t, 0, g.Order())
	assert.Equal(t, 0, g.Size())
	assert.False(t, g.Has("cold"))
	_, ok := g.Neighbors("cold")
	assert.False(t, ok)
}

// TestBuild_Ladder checks adjacency lists and their discovery order.
func TestBuild_Ladder(t *testing.T) {
	g := wordgraph.Build([]string{"cold", "cord", "card", "ward", "warm"})

	assert.Equal(t, 5, g.Order())
	assert.Equal(t, 4, g.Size())

	want := map[string][]string{
		"cold": {"cord"},
		"cord": {"cold", "card"},
		"card": {"cord", "ward"},
		"ward": {"card", "warm"},
		"warm": {"ward"},
	}
	for w, nbrs := range want {
		got, ok := g.Neighbors(w)
		require.Truef(t, ok, "missing vertex %q", w)
		assert.Equalf(t, nbrs, got, "Neighbors(%q)", w)
	}
}

// TestBuild_IsolatedWord keeps words without neighbors as vertices.
func TestBuild_IsolatedWord(t *testing.T) {
	g := wordgraph.Build([]string{"cold", "cord", "zebu"})

	require.True(t, g.Has("zebu"))
	nbrs, ok := g.Neighbors("zebu")
	assert.True(t, ok)
	assert.Empty(t, nbrs)
	assert.Equal(t, 0, g.Degree("zebu"))
}

// TestBuild_Duplicates collapses repeated words onto the first occurrence.
func TestBuild_Duplicates(t *testing.T) {
	g := wordgraph.Build([]string{"cold", "cord", "cold"})

	assert.Equal(t, []string{"cold", "cord"}, g.Words())
	assert.Equal(t, 1, g.Size())
	nbrs, _ := g.Neighbors("cord")
	assert.Equal(t, []string{"cold"}, nbrs)
}

// TestBuild_EdgesMatchPredicate verifies that an edge exists iff the two
// words differ in exactly one position, and that adjacency is symmetric.
func TestBuild_EdgesMatchPredicate(t *testing.T) {
	words := allWords("abc", 3)
	g := wordgraph.Build(words)

	edges := 0
	for i, a := range words {
		for j, b := range words {
			if i == j {
				assert.False(t, g.Adjacent(a, b), "self loop on %q", a)
				continue
			}
			want := wordgraph.OneCharDiff(a, b)
			assert.Equalf(t, want, g.Adjacent(a, b), "Adjacent(%q, %q)", a, b)
			assert.Equalf(t, g.Adjacent(a, b), g.Adjacent(b, a), "symmetry %q/%q", a, b)
			if want && i < j {
				edges++
			}
		}
	}
	assert.Equal(t, edges, g.Size())
}

// TestGraph_NeighborsAreClipped guards the shared adjacency storage.
func TestGraph_NeighborsAreClipped(t *testing.T) {
	g := wordgraph.Build([]string{"cold", "cord", "bold", "colt"})

	nbrs, _ := g.Neighbors("cold")
	require.Len(t, nbrs, 3)
	_ = append(nbrs, "xxxx")

	again, _ := g.Neighbors("cold")
	assert.Equal(t, []string{"cord", "bold", "colt"}, again)
}

// TestGraph_NilSafe exercises the accessors on a nil graph.
func TestGraph_NilSafe(t *testing.T) {
	var g *wordgraph.Graph
	assert.False(t, g.Has("a"))
	assert.Nil(t, g.Words())
	assert.Equal(t, 0, g.Order())
	assert.Equal(t, 0, g.Size())
	assert.False(t, g.Adjacent("a", "b"))
}

// allWords enumerates every word of length n over alphabet in lexical order.
func allWords(alphabet string, n int) []string {
	out := []string{""}
	for k := 0; k < n; k++ {
		next := make([]string, 0, len(out)*len(alphabet))
		for _, prefix := range out {
			for _, r := range alphabet {
				next = append(next, prefix+string(r))
			}
		}
		out = next
	}
	return out
}
