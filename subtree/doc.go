// Package subtree answers the cheapest k-edge subtree question on graphs whose
// edges weigh 1 or 2.
//
// Unit-weight edges are free connectors: they merge vertices into components
// (see Components). Any connected subgraph with k edges needs k+1 vertices;
// it uses only unit edges inside a component and one heavier edge for each
// additional component it has to join. Taking the largest components first
// minimizes the number of joins, so
//
//	Cheapest(g, k) = k + (components needed to cover k+1 vertices) - 1.
//
// Edges of any weight other than 1 are ignored when grouping.
package subtree
