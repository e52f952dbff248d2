// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package owl

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Encoder writes ontologies in the OWL 2 functional-style syntax.
//
// See https://www.w3.org/TR/owl2-syntax/.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new Encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes o to the Encoder's writer. Prefix declarations are
// written in the order they are held by o, followed by the axioms in
// insertion order.
func (enc *Encoder) Encode(o *Ontology) error {
	b := bufio.NewWriter(enc.w)
	p := newPrefixer(o.Prefixes)
	for _, pre := range o.Prefixes {
		fmt.Fprintf(b, "Prefix(%s:=<%s>)\n", pre.Name, pre.Namespace)
	}
	if len(o.Prefixes) != 0 {
		b.WriteByte('\n')
	}
	if o.IRI == "" {
		b.WriteString("Ontology(\n")
	} else {
		fmt.Fprintf(b, "Ontology(<%s>\n", o.IRI)
	}
	for _, a := range o.Axioms {
		s, err := p.axiom(a)
		if err != nil {
			return err
		}
		b.WriteString(s)
		b.WriteByte('\n')
	}
	b.WriteString(")\n")
	return b.Flush()
}

// Abbreviate returns iri abbreviated with the ontology's prefixes as it
// would be written by an Encoder.
func (o *Ontology) Abbreviate(iri IRI) string {
	return newPrefixer(o.Prefixes).iri(iri)
}

// prefixer abbreviates IRIs using a prefix table.
type prefixer struct {
	// prefixes is ordered longest namespace first
	// so that prefixes are not eagerly chosen.
	prefixes []Prefix
}

func newPrefixer(prefixes []Prefix) prefixer {
	p := prefixer{prefixes: append([]Prefix(nil), prefixes...)}
	sort.SliceStable(p.prefixes, func(i, j int) bool {
		return len(p.prefixes[i].Namespace) > len(p.prefixes[j].Namespace)
	})
	return p
}

// iri returns the abbreviated form of iri if a prefix matches and the
// remaining local part is a simple name, otherwise the full IRI in
// angle brackets.
func (p prefixer) iri(iri IRI) string {
	for _, pre := range p.prefixes {
		if !strings.HasPrefix(string(iri), string(pre.Namespace)) {
			continue
		}
		local := strings.TrimPrefix(string(iri), string(pre.Namespace))
		if isSimpleLocal(local) {
			return pre.Name + ":" + local
		}
	}
	return "<" + string(iri) + ">"
}

// isSimpleLocal returns whether s can be written as the local part of
// an abbreviated IRI without escaping.
func isSimpleLocal(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9', r == '_':
		case r == '-' && i != 0:
		case r == '.' && i != 0 && i != len(s)-1:
		default:
			return false
		}
	}
	return true
}

var literalEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func (p prefixer) value(v Value) (string, error) {
	switch v := v.(type) {
	case IRI:
		return p.iri(v), nil
	case Literal:
		return `"` + literalEscaper.Replace(string(v)) + `"`, nil
	default:
		return "", fmt.Errorf("owl: unknown annotation value type %T", v)
	}
}

func (p prefixer) class(c ClassExpression) (string, error) {
	switch c := c.(type) {
	case NamedClass:
		return p.iri(IRI(c)), nil
	case ObjectHasSelf:
		return "ObjectHasSelf(" + p.iri(c.Property) + ")", nil
	default:
		return "", fmt.Errorf("owl: unknown class expression type %T", c)
	}
}

func (p prefixer) axiom(a Axiom) (string, error) {
	switch a := a.(type) {
	case Declaration:
		return fmt.Sprintf("Declaration(%s(%s))", a.Kind, p.iri(a.Entity)), nil

	case SubObjectPropertyOf:
		switch len(a.Chain) {
		case 0:
			return "", fmt.Errorf("owl: empty sub-property expression for %s", a.Super)
		case 1:
			return fmt.Sprintf("SubObjectPropertyOf(%s %s)", p.iri(a.Chain[0]), p.iri(a.Super)), nil
		}
		chain := make([]string, len(a.Chain))
		for i, e := range a.Chain {
			chain[i] = p.iri(e)
		}
		return fmt.Sprintf("SubObjectPropertyOf(ObjectPropertyChain(%s) %s)", strings.Join(chain, " "), p.iri(a.Super)), nil

	case SubClassOf:
		super, err := p.class(a.Super)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("SubClassOf(%s %s)", p.iri(a.Sub), super), nil

	case AnnotationAssertion:
		val, err := p.value(a.Value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("AnnotationAssertion(%s %s %s)", p.iri(a.Property), p.iri(a.Subject), val), nil

	default:
		return "", fmt.Errorf("owl: unknown axiom type %T", a)
	}
}
