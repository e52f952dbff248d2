// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/formats/rdf"
	"gonum.org/v1/gonum/graph/iterator"

	"github.com/kortschak/gogo"

	"github.com/kortschak/relowl/internal/owl"
)

// debugDOT returns a DOT rendering of the graph described by statements.
// IRIs are abbreviated using prefixes and literal nodes are omitted.
func debugDOT(statements []*rdf.Statement, prefixes []owl.Prefix) ([]byte, error) {
	g := newDebugGraph(statements, prefixes)
	return dot.MarshalMulti(g, "relations", "", "\t")
}

type debugGraph struct {
	*gogo.Graph

	abbrev *owl.Ontology
}

func newDebugGraph(statements []*rdf.Statement, prefixes []owl.Prefix) *debugGraph {
	g := gogo.NewGraph()
	for _, s := range statements {
		// Copy the statement since AddStatement
		// assigns IDs to its terms.
		s := *s
		g.AddStatement(&s)
	}
	return &debugGraph{
		Graph:  g,
		abbrev: &owl.Ontology{Prefixes: prefixes},
	}
}

func (g *debugGraph) DOTAttributers() (graph, node, edge encoding.Attributer) {
	return attr{{Key: "rankdir", Value: "BT"}}, attr{{Key: "shape", Value: "box"}}, attr{}
}

type attr []encoding.Attribute

func (a attr) Attributes() []encoding.Attribute {
	return a
}

func (g *debugGraph) Nodes() graph.Nodes {
	return g.filtered(g.Graph.Nodes())
}

func (g *debugGraph) From(uid int64) graph.Nodes {
	return g.filtered(g.Graph.From(uid))
}

func (g *debugGraph) filtered(it graph.Nodes) graph.Nodes {
	var dotNodes []graph.Node
	for it.Next() {
		term := it.Node().(rdf.Term)
		text, _, kind, err := term.Parts()
		if err != nil {
			continue
		}
		switch kind {
		case rdf.IRI:
			dotNodes = append(dotNodes, termNode{
				Term:  term,
				id:    g.abbrev.Abbreviate(owl.IRI(text)),
				label: g.label(term),
			})
		case rdf.Blank:
			dotNodes = append(dotNodes, termNode{Term: term, id: term.Value})
		}
	}
	if len(dotNodes) == 0 {
		return graph.Empty
	}
	return iterator.NewOrderedNodes(dotNodes)
}

// label returns the first rdfs:label of term, or the empty string
// if term has no label.
func (g *debugGraph) label(term rdf.Term) string {
	labels := g.Query(term).Out(func(s *rdf.Statement) bool {
		return s.Predicate.Value == "<"+string(owl.Label)+">"
	}).Result()
	for _, l := range labels {
		text, _, kind, err := l.Parts()
		if err == nil && kind == rdf.Literal {
			return text
		}
	}
	return ""
}

func (g *debugGraph) Lines(uid, vid int64) graph.Lines {
	it := g.Graph.Lines(uid, vid)
	lines := make([]graph.Line, 0, it.Len())
	for it.Next() {
		l := it.Line().(*rdf.Statement)
		pred, _, _, err := l.Predicate.Parts()
		if err != nil {
			pred = l.Predicate.Value
		}
		lines = append(lines, dotLine{
			Statement: l,
			attrs: []encoding.Attribute{
				{Key: "label", Value: g.abbrev.Abbreviate(owl.IRI(pred))},
			},
		})
	}
	return iterator.NewOrderedLines(lines)
}

// termNode implements graph.Node and dot.Node to allow the
// abbreviated RDF term value to be given to the DOT encoder.
type termNode struct {
	rdf.Term
	id    string
	label string
}

func (n termNode) DOTID() string { return n.id }
func (n termNode) Attributes() []encoding.Attribute {
	if n.label == "" {
		return nil
	}
	return []encoding.Attribute{
		{Key: "label", Value: fmt.Sprintf("%s\n%s", n.id, n.label)},
	}
}

// dotLine implements graph.Line and encoding.Attributer to
// allow the line's predicate to be given to the DOT encoder.
//
// Because the graph here is directed and we are not performing
// any line reversals, it is safe not to implement the
// ReversedLine method on dotLine; it will never be called.
type dotLine struct {
	*rdf.Statement
	attrs []encoding.Attribute
}

func (l dotLine) From() graph.Node                 { return l.Subject }
func (l dotLine) To() graph.Node                   { return l.Object }
func (l dotLine) Attributes() []encoding.Attribute { return l.attrs }
