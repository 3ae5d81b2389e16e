// SPDX-License-Identifier: MIT
//
// Package dsu implements a fixed-size disjoint-set forest (union-find) over
// the element set [0, n).
//
// Find uses path halving: every visited element is re-pointed to its
// grandparent, so no recursion is needed. Union attaches the smaller tree
// under the larger one. Together they give near-constant amortized cost,
// O(α(n)) per operation.
//
// Used by prim_kruskal.Kruskal and by subtree to group unit-weight components.
package dsu

import "sort"

// DSU is a disjoint-set forest. Create it with New.
type DSU struct {
	parent []int
	size   []int // valid only at roots
	count  int   // number of disjoint sets
}

// New returns n singleton sets {0}, {1}, …, {n-1}.
// Complexity: O(n).
func New(n int) *DSU {
	if n < 0 {
		n = 0
	}
	d := &DSU{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d
}

// Len returns the number of elements.
func (d *DSU) Len() int { return len(d.parent) }

// Count returns the number of disjoint sets.
func (d *DSU) Count() int { return d.count }

// Find returns the root of x's set.
// Panics on an out-of-range element like a slice index would.
func (d *DSU) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets of x and y.
// It returns false when they were already in the same set.
func (d *DSU) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	if d.size[rx] < d.size[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	d.size[rx] += d.size[ry]
	d.count--

	return true
}

// Groups returns every set as a sorted slice of members.
// Groups are ordered by their smallest member.
// Complexity: O(n α(n)).
func (d *DSU) Groups() [][]int {
	index := make(map[int]int, d.count)
	groups := make([][]int, 0, d.count)
	for x := range d.parent {
		r := d.Find(x)
		i, ok := index[r]
		if !ok {
			i = len(groups)
			index[r] = i
			groups = append(groups, make([]int, 0, d.size[r]))
		}
		// x ascends, so members stay sorted and groups are created in
		// order of their smallest member.
		groups[i] = append(groups[i], x)
	}

	return groups
}

// Sizes returns the size of every set in descending order.
func (d *DSU) Sizes() []int {
	sizes := make([]int, 0, d.count)
	for x := range d.parent {
		if d.parent[x] == x {
			sizes = append(sizes, d.size[x])
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes
}
