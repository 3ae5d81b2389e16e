// SPDX-License-Identifier: MIT

// Command closeness reads "n m r" and m edges "u v w" from standard input,
// labels every vertex with its closeness from r and prints the totals of the
// minimum and maximum closeness spanning trees as "min max".
//
// Usage:
//
//	closeness [--config file] [--log-level level] [--log-format console|json]
//	          [--simple] [--method prim|kruskal] [--verify] < graph.txt
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/closetree/bfs"
	"github.com/katalvlaran/closetree/closeness"
	"github.com/katalvlaran/closetree/config"
	"github.com/katalvlaran/closetree/core"
	"github.com/katalvlaran/closetree/input"
	"github.com/katalvlaran/closetree/verify"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true})
		l.Error().Err(err).Msg("closeness failed")
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load("closeness", args, stderr)
	if err != nil {
		return err
	}
	log := cfg.CreateLogger(stderr, "closeness")

	var gopts []core.GraphOption
	if cfg.Simple() {
		gopts = append(gopts, core.WithSimple())
	}
	p, err := input.ReadCloseness(stdin, gopts...)
	if err != nil {
		return err
	}
	log.Info().
		Int("vertices", p.Graph.VertexCount()).
		Int("edges", p.Graph.EdgeCount()).
		Int("root", p.Root).
		Msg("graph loaded")

	res, err := closeness.Solve(p.Graph, p.Root,
		closeness.WithLogger(log),
		closeness.WithMethod(cfg.Method()))
	if err != nil {
		if errors.Is(err, closeness.ErrUngrounded) {
			reportUnreachable(log, p)
		}
		return err
	}

	if cfg.Verify() {
		if err := verify.Closeness(p.Graph, res.Labels); err != nil {
			return err
		}
		if err := verify.Trees(p.Graph, res.Labels, res.Min, res.Max); err != nil {
			return err
		}
		log.Info().Msg("verified against gonum")
	}

	_, err = fmt.Fprintf(stdout, "%d %d\n", res.Min.Total, res.Max.Total)

	return err
}

// maxReported caps the vertex list logged for a disconnected graph.
const maxReported = 20

// reportUnreachable logs the vertices the root cannot reach.
func reportUnreachable(log zerolog.Logger, p *input.ClosenessProblem) {
	res, err := bfs.BFS(p.Graph, p.Root)
	if err != nil {
		return
	}
	missing := res.Unreachable()
	shown := missing
	if len(shown) > maxReported {
		shown = shown[:maxReported]
	}
	log.Error().
		Int("root", p.Root).
		Int("unreachable", len(missing)).
		Ints("vertices", shown).
		Msg("graph is disconnected")
}
