// Package builder generates deterministic core.Graph fixtures for tests,
// examples and benchmarks.
//
// A graph is assembled by BuildGraph(n, graphOptions, builderOptions, constructors...).
// Constructors only add edges over the fixed vertex set [0, n) and may be
// composed, e.g. a Path for guaranteed connectivity followed by RandomSparse
// for extra edges:
//
//	g, err := builder.BuildGraph(50, nil,
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(0, 9))},
//	    builder.Path(), builder.RandomSparse(0.1))
//
// Topologies: Path, Cycle, Star, Complete, RandomSparse, RandomTree.
// Weights come from WithWeightFn (default: constant 1).
package builder
