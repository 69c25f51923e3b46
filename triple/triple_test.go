package triple_test

import (
	"testing"

	"github.com/katalvlaran/qbftp/triple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerators_KnownValues pins l, g and h for a small domain.
func TestGenerators_KnownValues(t *testing.T) {
	assert.Equal(t, 3, triple.L(131, 1031, 1, 10))
	assert.Equal(t, 3, triple.G(1, 10))
	assert.Equal(t, 7, triple.H(1, 10))
	assert.Equal(t, 4, triple.G(2, 10))
	assert.Equal(t, 10, triple.H(2, 10))

	set, err := triple.Generate(10)
	require.NoError(t, err)
	require.Len(t, set, 10)
	assert.Equal(t, triple.Triple{0, 2, 6}, set[0])
	assert.Equal(t, triple.Triple{1, 3, 9}, set[1])
}

// TestGenerators_DistinctAcrossDomains fuzzes g and h over many domain sizes.
func TestGenerators_DistinctAcrossDomains(t *testing.T) {
	var n, u int
	for n = 4; n <= 1200; n++ {
		for u = 1; u <= n; u++ {
			g := triple.G(u, n)
			h := triple.H(u, n)
			if g == u || h == u || h == g {
				t.Fatalf("n=%d u=%d: g=%d h=%d not distinct", n, u, g, h)
			}
			if g < 1 || g > n || h < 1 || h > n {
				t.Fatalf("n=%d u=%d: g=%d h=%d out of [1,n]", n, u, g, h)
			}
		}
	}
}

func TestGenerate_Shape(t *testing.T) {
	for _, n := range []int{3, 4, 5, 20, 100, 400} {
		set, err := triple.Generate(n)
		require.NoError(t, err, "n=%d", n)
		require.Len(t, set, n)
		for u, tr := range set {
			assert.True(t, tr.Distinct(), "n=%d u=%d %v", n, u+1, tr)
			assert.True(t, tr[0] < tr[1] && tr[1] < tr[2], "sorted: %v", tr)
			assert.GreaterOrEqual(t, tr[0], 0)
			assert.Less(t, tr[2], n)
			assert.Contains(t, tr[:], u, "triple u must contain u-1")
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := triple.Generate(60)
	require.NoError(t, err)
	b, err := triple.Generate(60)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_TooSmall(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 2} {
		_, err := triple.Generate(n)
		assert.ErrorIs(t, err, triple.ErrDomainTooSmall, "n=%d", n)
	}
}

func TestTriple_StringAndDistinct(t *testing.T) {
	a := triple.Triple{1, 2, 3}
	assert.True(t, a.Distinct())
	assert.Equal(t, "[1, 2, 3]", a.String())
	assert.False(t, triple.Triple{1, 1, 3}.Distinct())
}
