// SPDX-License-Identifier: MIT

// Command subtree reads "n k" and edge triples "a b w" until end of input,
// and prints the weight of the cheapest connected subgraph with k edges
// when unit-weight edges are free connectors.
//
// Usage:
//
//	subtree [--config file] [--log-level level] [--log-format console|json] [--simple] < graph.txt
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/closetree/config"
	"github.com/katalvlaran/closetree/core"
	"github.com/katalvlaran/closetree/input"
	"github.com/katalvlaran/closetree/subtree"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true})
		l.Error().Err(err).Msg("subtree failed")
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load("subtree", args, stderr)
	if err != nil {
		return err
	}
	log := cfg.CreateLogger(stderr, "subtree")

	var gopts []core.GraphOption
	if cfg.Simple() {
		gopts = append(gopts, core.WithSimple())
	}
	p, err := input.ReadSubtree(stdin, gopts...)
	if err != nil {
		return err
	}
	log.Info().Int("vertices", p.Graph.VertexCount()).Int("edges", p.Graph.EdgeCount()).Int("k", p.K).Msg("graph loaded")

	w, err := subtree.Cheapest(p.Graph, p.K, subtree.WithLogger(log))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, w)

	return err
}
