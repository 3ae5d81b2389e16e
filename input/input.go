// SPDX-License-Identifier: MIT
//
// Package input reads the whitespace-separated integer formats accepted on
// standard input by the command-line programs.
//
// Tokens may be split across lines arbitrarily; only their order matters.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/closetree/core"
)

// ErrParse indicates missing, malformed or out-of-place input tokens,
// including tokens too long to scan and read failures.
var ErrParse = errors.New("input: parse error")

// ClosenessProblem is a parsed "n m r" header plus m edge triples.
type ClosenessProblem struct {
	Graph *core.Graph
	Root  int
}

// SubtreeProblem is a parsed "n k" header plus edge triples up to EOF.
type SubtreeProblem struct {
	Graph *core.Graph
	K     int
}

// tokenizer yields integers one whitespace-separated word at a time.
type tokenizer struct {
	sc  *bufio.Scanner
	pos int // 1-based index of the last token read
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	return &tokenizer{sc: sc}
}

// next returns the next integer, io.EOF at a clean end of input, or ErrParse.
func (t *tokenizer) next(what string) (int64, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, fmt.Errorf("token %d (%s): %w: %w", t.pos+1, what, ErrParse, err)
		}

		return 0, io.EOF
	}
	t.pos++
	v, err := strconv.ParseInt(t.sc.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token %d (%s) %q: %w: %w", t.pos, what, t.sc.Text(), ErrParse, err)
	}

	return v, nil
}

// must is next with EOF treated as a parse error.
func (t *tokenizer) must(what string) (int64, error) {
	v, err := t.next(what)
	if errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("token %d (%s): unexpected end of input: %w", t.pos+1, what, ErrParse)
	}

	return v, err
}

// count reads a non-negative int header value.
func (t *tokenizer) count(what string) (int, error) {
	v, err := t.must(what)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > int64(maxInt) {
		return 0, fmt.Errorf("token %d (%s) = %d: %w", t.pos, what, v, ErrParse)
	}

	return int(v), nil
}

const (
	maxInt = int(^uint(0) >> 1)

	// maxPrealloc bounds the edge capacity taken on trust from the header.
	maxPrealloc = 1 << 20
)

// edge reads the rest of a "u v w" triple whose first token is u.
func (t *tokenizer) edge(g *core.Graph, u int64) error {
	v, err := t.must("edge endpoint")
	if err != nil {
		return err
	}
	w, err := t.must("edge weight")
	if err != nil {
		return err
	}
	if u < 0 || u > int64(maxInt) || v < 0 || v > int64(maxInt) {
		return fmt.Errorf("edge (%d,%d): %w", u, v, core.ErrVertexNotFound)
	}

	return g.AddEdge(int(u), int(v), w)
}

// ReadCloseness parses "n m r" followed by exactly m "u v w" triples.
// Trailing tokens after the last triple are ignored.
func ReadCloseness(r io.Reader, opts ...core.GraphOption) (*ClosenessProblem, error) {
	t := newTokenizer(r)
	n, err := t.count("vertex count")
	if err != nil {
		return nil, err
	}
	m, err := t.count("edge count")
	if err != nil {
		return nil, err
	}
	root, err := t.count("root")
	if err != nil {
		return nil, err
	}

	g, err := core.NewGraph(n, append([]core.GraphOption{core.WithEdgeCapacity(min(m, maxPrealloc))}, opts...)...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m; i++ {
		u, err := t.must("edge endpoint")
		if err != nil {
			return nil, fmt.Errorf("edge %d of %d: %w", i+1, m, err)
		}
		if err := t.edge(g, u); err != nil {
			return nil, fmt.Errorf("edge %d of %d: %w", i+1, m, err)
		}
	}

	return &ClosenessProblem{Graph: g, Root: root}, nil
}

// ReadSubtree parses "n k" followed by "a b w" triples up to end of input.
func ReadSubtree(r io.Reader, opts ...core.GraphOption) (*SubtreeProblem, error) {
	t := newTokenizer(r)
	n, err := t.count("vertex count")
	if err != nil {
		return nil, err
	}
	k, err := t.must("edge budget")
	if err != nil {
		return nil, err
	}
	if k < 0 || k > int64(maxInt) {
		return nil, fmt.Errorf("token %d (edge budget) = %d: %w", t.pos, k, ErrParse)
	}

	g, err := core.NewGraph(n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 1; ; i++ {
		u, err := t.next("edge endpoint")
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		if err := t.edge(g, u); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	return &SubtreeProblem{Graph: g, K: int(k)}, nil
}
