package rtti_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kindredlabs/kindred/internal/testutil"
	"github.com/kindredlabs/kindred/rtti"
)

func TestDerivesFrom_DeepChain(t *testing.T) {
	chain := testutil.Chain(64)
	leaf := chain[len(chain)-1]

	for _, ancestor := range chain {
		assert.True(t, leaf.DerivesFrom(ancestor), "leaf must derive from %s", ancestor)
	}
	assert.False(t, chain[0].DerivesFrom(leaf))
}

func TestDerivesFrom_StackedDiamonds(t *testing.T) {
	// Repeated diamond inheritance: the result stays a plain boolean no
	// matter how many paths reconverge on the root.
	leaf, root := testutil.DiamondStack(8)

	assert.True(t, leaf.DerivesFrom(root))
	assert.False(t, leaf.DerivesFrom(rtti.NewDescriptor("Elsewhere")))
}

func TestAncestors_StackedDiamonds(t *testing.T) {
	leaf, root := testutil.DiamondStack(8)

	ancestors := leaf.Ancestors()
	seen := make(map[*rtti.Descriptor]int)
	for _, a := range ancestors {
		seen[a]++
	}
	assert.Equal(t, 1, seen[root], "the shared root appears exactly once despite 2^8 paths")
	for a, n := range seen {
		assert.Equal(t, 1, n, "%s duplicated in ancestor closure", a)
	}
}

// The unmemoized traversal revisits shared ancestors once per distinct path,
// so the miss case grows with path multiplicity; the ancestor-set lookup pays
// the closure once. The pair documents the trade-off.

func BenchmarkDerivesFrom_DiamondStack(b *testing.B) {
	leaf, _ := testutil.DiamondStack(12)
	unrelated := rtti.NewDescriptor("Unrelated")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if leaf.DerivesFrom(unrelated) {
			b.Fatal("unexpected match")
		}
	}
}

func BenchmarkAncestorSet_DiamondStack(b *testing.B) {
	leaf, _ := testutil.DiamondStack(12)
	unrelated := rtti.NewDescriptor("Unrelated")

	set := make(map[*rtti.Descriptor]bool)
	for _, a := range leaf.Ancestors() {
		set[a] = true
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if set[unrelated] {
			b.Fatal("unexpected match")
		}
	}
}

func BenchmarkDerivesFrom_Chain(b *testing.B) {
	chain := testutil.Chain(64)
	leaf, root := chain[len(chain)-1], chain[0]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !leaf.DerivesFrom(root) {
			b.Fatal("expected match")
		}
	}
}
