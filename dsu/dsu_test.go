package dsu_test

import (
	"testing"

	"github.com/katalvlaran/closetree/dsu"
	"github.com/stretchr/testify/assert"
)

func TestDSU_Singletons(t *testing.T) {
	d := dsu.New(4)
	assert.Equal(t, 4, d.Len())
	assert.Equal(t, 4, d.Count())
	for i := 0; i < 4; i++ {
		assert.Equal(t, i, d.Find(i))
	}
	assert.Equal(t, []int{1, 1, 1, 1}, d.Sizes())
	assert.Equal(t, [][]int{{0}, {1}, {2}, {3}}, d.Groups())
}

func TestDSU_UnionAndGroups(t *testing.T) {
	d := dsu.New(6)
	assert.True(t, d.Union(4, 5))
	assert.True(t, d.Union(0, 3))
	assert.True(t, d.Union(3, 5))
	assert.False(t, d.Union(0, 4)) // already merged through 3—5

	assert.Equal(t, 3, d.Count())
	assert.Equal(t, d.Find(0), d.Find(5))
	assert.NotEqual(t, d.Find(1), d.Find(2))

	assert.Equal(t, [][]int{{0, 3, 4, 5}, {1}, {2}}, d.Groups())
	assert.Equal(t, []int{4, 1, 1}, d.Sizes())
}

func TestDSU_LongChainCompresses(t *testing.T) {
	const n = 1000
	d := dsu.New(n)
	for i := 1; i < n; i++ {
		d.Union(i-1, i)
	}
	assert.Equal(t, 1, d.Count())
	root := d.Find(n - 1)
	for i := 0; i < n; i++ {
		assert.Equal(t, root, d.Find(i))
	}
	assert.Equal(t, []int{n}, d.Sizes())
}

func TestDSU_NegativeSize(t *testing.T) {
	d := dsu.New(-3)
	assert.Zero(t, d.Len())
	assert.Empty(t, d.Groups())
	assert.Empty(t, d.Sizes())
}
