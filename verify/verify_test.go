package verify_test

import (
	"testing"

	"github.com/katalvlaran/closetree/builder"
	"github.com/katalvlaran/closetree/closeness"
	"github.com/katalvlaran/closetree/core"
	"github.com/katalvlaran/closetree/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildRandomGraph(t *testing.T, n int, p float64, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(n, nil,
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(0, 50))},
		builder.RandomTree(), builder.RandomSparse(p))
	require.NoError(t, err)

	return g
}

func TestSolve_AgreesWithGonum(t *testing.T) {
	for seed := int64(1); seed <= 15; seed++ {
		g := buildRandomGraph(t, 60, 0.08, seed)
		// Loops and parallel edges must not confuse the adapter.
		require.NoError(t, g.AddEdge(3, 3, 1))
		require.NoError(t, g.AddEdge(0, 1, 0))

		res, err := closeness.Solve(g, int(seed)%60)
		require.NoError(t, err)
		assert.NoError(t, verify.Closeness(g, res.Labels), "seed %d", seed)
		assert.NoError(t, verify.Trees(g, res.Labels, res.Min, res.Max), "seed %d", seed)
	}
}

func TestCloseness_DetectsWrongLabel(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(0, 2, 5))

	wrong, err := closeness.NewLabels(3, 0)
	require.NoError(t, err)
	require.NoError(t, wrong.Settle(1, 0, 1))
	require.NoError(t, wrong.Settle(2, 0, 5)) // true distance is 2

	assert.ErrorIs(t, verify.Closeness(g, wrong), verify.ErrMismatch)
}

func TestTrees_DetectsWrongTotal(t *testing.T) {
	g := buildRandomGraph(t, 12, 0.3, 7)
	res, err := closeness.Solve(g, 0)
	require.NoError(t, err)

	badMin := res.Min
	badMin.Total++
	assert.ErrorIs(t, verify.Trees(g, res.Labels, badMin, res.Max), verify.ErrMismatch)

	badMax := res.Max
	badMax.Total--
	assert.ErrorIs(t, verify.Trees(g, res.Labels, res.Min, badMax), verify.ErrMismatch)
}

func TestVerify_InvalidInput(t *testing.T) {
	g := buildRandomGraph(t, 4, 0, 1)

	assert.ErrorIs(t, verify.Closeness(nil, nil), verify.ErrInput)

	short, err := closeness.NewLabels(2, 0)
	require.NoError(t, err)
	assert.ErrorIs(t, verify.Closeness(g, short), verify.ErrInput)

	partial, err := closeness.NewLabels(4, 0)
	require.NoError(t, err)
	assert.ErrorIs(t, verify.Trees(g, partial, closeness.Tree{}, closeness.Tree{}), closeness.ErrUnsettled)
}

func TestCloseness_Unverifiable(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1<<60))

	labels, err := closeness.Label(g, 0)
	require.NoError(t, err)
	assert.ErrorIs(t, verify.Closeness(g, labels), verify.ErrUnverifiable)
}
