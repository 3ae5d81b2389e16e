package prim_kruskal_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/closetree/builder"
	"github.com/katalvlaran/closetree/core"
	"github.com/katalvlaran/closetree/dsu"
	"github.com/katalvlaran/closetree/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTriangle constructs 0—1 (1), 1—2 (2), 0—2 (3).
// Its MST is {0—1, 1—2} with weight 3; its maximum tree {0—2, 1—2} weighs 5.
func buildTriangle(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(0, 2, 3))

	return g
}

// buildMediumGraph creates a connected graph: a random spanning tree plus random extra edges,
// weights uniform in [0, 100]. The seed is fixed for reproducibility.
func buildMediumGraph(t testing.TB, n int, p float64, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(n, nil,
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(0, 100))},
		builder.RandomTree(), builder.RandomSparse(p))
	require.NoError(t, err)

	return g
}

// edgeKeys renders tree edges as sorted "u-v" keys.
func edgeKeys(mst []core.Edge) map[string]bool {
	keys := make(map[string]bool, len(mst))
	for _, e := range mst {
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		keys[fmt.Sprintf("%d-%d", u, v)] = true
	}

	return keys
}

// bruteForceTotals enumerates every (n-1)-edge subset and returns the
// minimum and maximum total among those forming a spanning tree.
func bruteForceTotals(g *core.Graph, w prim_kruskal.WeightFunc) (lo, hi int64, found bool) {
	edges := g.Edges()
	n := g.VertexCount()
	var rec func(start int, picked []core.Edge)
	rec = func(start int, picked []core.Edge) {
		if len(picked) == n-1 {
			d := dsu.New(n)
			var sum int64
			for _, e := range picked {
				if !d.Union(e.From, e.To) {
					return
				}
				sum += w(e)
			}
			if !found || sum < lo {
				lo = sum
			}
			if !found || sum > hi {
				hi = sum
			}
			found = true

			return
		}
		for i := start; i < len(edges); i++ {
			rec(i+1, append(picked, edges[i]))
		}
	}
	rec(0, make([]core.Edge, 0, n-1))

	return lo, hi, found
}

// TestValidation_EmptyOrDisconnected verifies ErrDisconnected on the empty graph
// and on two isolated vertices.
func TestValidation_EmptyOrDisconnected(t *testing.T) {
	g, err := core.NewGraph(0)
	require.NoError(t, err)

	edgesP, totalP, errP := prim_kruskal.Prim(g, 0, prim_kruskal.EdgeWeight)
	assert.Empty(t, edgesP)
	assert.Zero(t, totalP)
	assert.ErrorIs(t, errP, prim_kruskal.ErrDisconnected)

	edgesK, totalK, errK := prim_kruskal.Kruskal(g, prim_kruskal.EdgeWeight)
	assert.Empty(t, edgesK)
	assert.Zero(t, totalK)
	assert.ErrorIs(t, errK, prim_kruskal.ErrDisconnected)

	two, err := core.NewGraph(2)
	require.NoError(t, err)
	_, _, errP = prim_kruskal.Prim(two, 0, prim_kruskal.EdgeWeight)
	assert.ErrorIs(t, errP, prim_kruskal.ErrDisconnected)
	_, _, errK = prim_kruskal.KruskalMax(two, prim_kruskal.EdgeWeight)
	assert.ErrorIs(t, errK, prim_kruskal.ErrDisconnected)
}

// TestValidation_NilInputs verifies ErrInvalidGraph for a nil graph or weight function.
func TestValidation_NilInputs(t *testing.T) {
	_, _, err := prim_kruskal.Prim(nil, 0, prim_kruskal.EdgeWeight)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	_, _, err = prim_kruskal.Kruskal(buildTriangle(t), nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

// TestValidation_BadRoot verifies core.ErrVertexNotFound for a root outside [0, n).
func TestValidation_BadRoot(t *testing.T) {
	g := buildTriangle(t)
	_, _, err := prim_kruskal.Prim(g, 3, prim_kruskal.EdgeWeight)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, _, err = prim_kruskal.PrimMax(g, -1, prim_kruskal.EdgeWeight)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestPrim_Triangle(t *testing.T) {
	g := buildTriangle(t)

	mst, total, err := prim_kruskal.Prim(g, 0, prim_kruskal.EdgeWeight)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, mst, 2)
	keys := edgeKeys(mst)
	assert.True(t, keys["0-1"], "edge 0-1 must be in MST")
	assert.True(t, keys["1-2"], "edge 1-2 must be in MST")
}

func TestKruskal_Triangle(t *testing.T) {
	g := buildTriangle(t)

	mst, total, err := prim_kruskal.Kruskal(g, prim_kruskal.EdgeWeight)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	keys := edgeKeys(mst)
	assert.True(t, keys["0-1"])
	assert.True(t, keys["1-2"])
}

func TestMax_Triangle(t *testing.T) {
	g := buildTriangle(t)

	mstP, totalP, err := prim_kruskal.PrimMax(g, 0, prim_kruskal.EdgeWeight)
	require.NoError(t, err)
	assert.Equal(t, int64(5), totalP)
	keys := edgeKeys(mstP)
	assert.True(t, keys["0-2"])
	assert.True(t, keys["1-2"])
	for _, e := range mstP {
		assert.Positive(t, e.Weight, "max tree reports caller-facing weights")
	}

	_, totalK, err := prim_kruskal.KruskalMax(g, prim_kruskal.EdgeWeight)
	require.NoError(t, err)
	assert.Equal(t, int64(5), totalK)
}

// TestSingleVertexGraph verifies the trivial empty tree for |V| == 1.
func TestSingleVertexGraph(t *testing.T) {
	g, err := core.NewGraph(1)
	require.NoError(t, err)

	mstK, totalK, errK := prim_kruskal.Kruskal(g, prim_kruskal.EdgeWeight)
	assert.NoError(t, errK)
	assert.Empty(t, mstK)
	assert.Zero(t, totalK)

	mstP, totalP, errP := prim_kruskal.PrimMax(g, 0, prim_kruskal.EdgeWeight)
	assert.NoError(t, errP)
	assert.Empty(t, mstP)
	assert.Zero(t, totalP)
}

// TestParallelEdgesAndLoops verifies that the lighter parallel edge is chosen
// and self-loops never enter the tree.
func TestParallelEdgesAndLoops(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 0, 0))
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(1, 0, 1))
	require.NoError(t, g.AddEdge(1, 1, 0))

	mstK, totalK, errK := prim_kruskal.Kruskal(g, prim_kruskal.EdgeWeight)
	require.NoError(t, errK)
	assert.Equal(t, int64(1), totalK)
	assert.Len(t, mstK, 1)

	mstP, totalP, errP := prim_kruskal.Prim(g, 0, prim_kruskal.EdgeWeight)
	require.NoError(t, errP)
	assert.Equal(t, int64(1), totalP)
	assert.Len(t, mstP, 1)

	_, maxP, err := prim_kruskal.PrimMax(g, 1, prim_kruskal.EdgeWeight)
	require.NoError(t, err)
	assert.Equal(t, int64(5), maxP)
}

// TestTotalOverflow verifies that a total past math.MaxInt64 is reported
// instead of wrapping, for both objectives and both methods.
func TestTotalOverflow(t *testing.T) {
	g, err := builder.BuildGraph(4, nil,
		[]builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(1 << 62))},
		builder.Path())
	require.NoError(t, err)

	_, _, err = prim_kruskal.Prim(g, 0, prim_kruskal.EdgeWeight)
	assert.ErrorIs(t, err, prim_kruskal.ErrWeightOverflow)
	_, _, err = prim_kruskal.PrimMax(g, 0, prim_kruskal.EdgeWeight)
	assert.ErrorIs(t, err, prim_kruskal.ErrWeightOverflow)
	_, _, err = prim_kruskal.Kruskal(g, prim_kruskal.EdgeWeight)
	assert.ErrorIs(t, err, prim_kruskal.ErrWeightOverflow)
	_, _, err = prim_kruskal.KruskalMax(g, prim_kruskal.EdgeWeight)
	assert.ErrorIs(t, err, prim_kruskal.ErrWeightOverflow)

	// Two such edges still fit: 2^63 - 2.
	small, err := builder.BuildGraph(3, nil,
		[]builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(1<<62 - 1))},
		builder.Path())
	require.NoError(t, err)
	_, total, err := prim_kruskal.KruskalMax(small, prim_kruskal.EdgeWeight)
	require.NoError(t, err)
	assert.Equal(t, int64(1<<63-2), total)
}

// TestCustomWeight verifies the stored weight is ignored when another WeightFunc is given.
func TestCustomWeight(t *testing.T) {
	g := buildTriangle(t)
	byEndpoints := func(e core.Edge) int64 { return int64(e.From + e.To) }

	mst, total, err := prim_kruskal.Prim(g, 2, byEndpoints)
	require.NoError(t, err)
	// 0—1 costs 1, 0—2 costs 2, 1—2 costs 3.
	assert.Equal(t, int64(3), total)
	keys := edgeKeys(mst)
	assert.True(t, keys["0-1"])
	assert.True(t, keys["0-2"])
	for _, e := range mst {
		assert.Equal(t, int64(e.From+e.To), e.Weight)
	}
}

// TestComparison_MediumGraph compares Prim vs. Kruskal on random connected graphs for both objectives.
func TestComparison_MediumGraph(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := buildMediumGraph(t, 40, 0.15, seed)
		n := g.VertexCount()

		mstK, totalK, errK := prim_kruskal.Kruskal(g, prim_kruskal.EdgeWeight)
		require.NoError(t, errK)
		assert.Len(t, mstK, n-1)

		mstP, totalP, errP := prim_kruskal.Prim(g, int(seed)%n, prim_kruskal.EdgeWeight)
		require.NoError(t, errP)
		assert.Len(t, mstP, n-1)
		assert.Equal(t, totalK, totalP)

		_, maxK, err := prim_kruskal.KruskalMax(g, prim_kruskal.EdgeWeight)
		require.NoError(t, err)
		_, maxP, err := prim_kruskal.PrimMax(g, 0, prim_kruskal.EdgeWeight)
		require.NoError(t, err)
		assert.Equal(t, maxK, maxP)
		assert.LessOrEqual(t, totalP, maxP)
	}
}

// TestBruteForce_SmallGraphs checks both objectives against exhaustive enumeration.
func TestBruteForce_SmallGraphs(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := buildMediumGraph(t, 6, 0.4, seed)
		lo, hi, found := bruteForceTotals(g, prim_kruskal.EdgeWeight)
		require.True(t, found)

		_, minP, err := prim_kruskal.Prim(g, 0, prim_kruskal.EdgeWeight)
		require.NoError(t, err)
		_, maxP, err := prim_kruskal.PrimMax(g, 0, prim_kruskal.EdgeWeight)
		require.NoError(t, err)

		assert.Equal(t, lo, minP, "seed %d", seed)
		assert.Equal(t, hi, maxP, "seed %d", seed)
	}
}

func TestCompute_Dispatch(t *testing.T) {
	g := buildTriangle(t)

	_, total, err := prim_kruskal.Compute(g, prim_kruskal.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	_, total, err = prim_kruskal.Compute(g, prim_kruskal.NewOptions(
		prim_kruskal.WithMethod(prim_kruskal.MethodKruskal),
		prim_kruskal.WithObjective(prim_kruskal.ObjectiveMax),
	))
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)

	_, total, err = prim_kruskal.Compute(g, prim_kruskal.NewOptions(
		prim_kruskal.WithRoot(2),
		prim_kruskal.WithObjective(prim_kruskal.ObjectiveMax),
		prim_kruskal.WithWeight(func(core.Edge) int64 { return 7 }),
	))
	require.NoError(t, err)
	assert.Equal(t, int64(14), total)

	_, _, err = prim_kruskal.Compute(g, prim_kruskal.NewOptions(prim_kruskal.WithMethod("boruvka")))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)

	_, _, err = prim_kruskal.Compute(g, prim_kruskal.NewOptions(prim_kruskal.WithObjective("median")))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}
