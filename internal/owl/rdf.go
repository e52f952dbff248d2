// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package owl

import (
	"crypto/md5"
	"fmt"
	"hash"

	"gonum.org/v1/gonum/graph/formats/rdf"
)

// This file contains the logic required to map the ontology's axioms to
// RDF statements.
//
// For a detailed description of the logic here, see:
// https://www.w3.org/TR/owl2-mapping-to-rdf/.

var (
	rdfType  = mustTerm(iriTerm(RDF + "type"))
	rdfFirst = mustTerm(iriTerm(RDF + "first"))
	rdfRest  = mustTerm(iriTerm(RDF + "rest"))
	rdfNil   = mustTerm(iriTerm(RDF + "nil"))

	rdfsSubClassOf    = mustTerm(iriTerm(RDFS + "subClassOf"))
	rdfsSubPropertyOf = mustTerm(iriTerm(RDFS + "subPropertyOf"))

	owlOntology           = mustTerm(iriTerm(OWL + "Ontology"))
	owlClass              = mustTerm(iriTerm(OWL + "Class"))
	owlObjectProperty     = mustTerm(iriTerm(OWL + "ObjectProperty"))
	owlRestriction        = mustTerm(iriTerm(OWL + "Restriction"))
	owlOnProperty         = mustTerm(iriTerm(OWL + "onProperty"))
	owlHasSelf            = mustTerm(iriTerm(OWL + "hasSelf"))
	owlPropertyChainAxiom = mustTerm(iriTerm(OWL + "propertyChainAxiom"))
	xsdTrue               = mustTerm(rdf.NewLiteralTerm("true", string(XSD+"boolean")))
	entityTypes           = map[EntityKind]rdf.Term{Class: owlClass, ObjectProperty: owlObjectProperty}
)

// Statements returns the RDF statements corresponding to the ontology's
// axioms, in axiom order. Blank node labels are derived from the content
// of the axiom that introduces them, so the result is deterministic.
// The Terms of the returned statements have zero UIDs.
func (o *Ontology) Statements() ([]*rdf.Statement, error) {
	var dst []*rdf.Statement
	if o.IRI != "" {
		subj, err := iriTerm(o.IRI)
		if err != nil {
			return nil, err
		}
		dst = append(dst, &rdf.Statement{Subject: subj, Predicate: rdfType, Object: owlOntology})
	}
	h := md5.New()
	for _, a := range o.Axioms {
		var err error
		dst, err = collect(dst, h, a)
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func collect(dst []*rdf.Statement, h hash.Hash, a Axiom) ([]*rdf.Statement, error) {
	switch a := a.(type) {
	case Declaration:
		subj, err := iriTerm(a.Entity)
		if err != nil {
			return dst, err
		}
		typ, ok := entityTypes[a.Kind]
		if !ok {
			return dst, fmt.Errorf("owl: unknown entity kind %v", a.Kind)
		}
		return append(dst, &rdf.Statement{Subject: subj, Predicate: rdfType, Object: typ}), nil

	case SubObjectPropertyOf:
		super, err := iriTerm(a.Super)
		if err != nil {
			return dst, err
		}
		switch len(a.Chain) {
		case 0:
			return dst, fmt.Errorf("owl: empty sub-property expression for %s", a.Super)
		case 1:
			sub, err := iriTerm(a.Chain[0])
			if err != nil {
				return dst, err
			}
			return append(dst, &rdf.Statement{Subject: sub, Predicate: rdfsSubPropertyOf, Object: super}), nil
		}

		// <super> <owl:propertyChainAxiom> _:list .
		parts := make([]string, 0, len(a.Chain)+2)
		parts = append(parts, "propertyChainAxiom", string(a.Super))
		for _, e := range a.Chain {
			parts = append(parts, string(e))
		}
		label := blankLabel(h, parts...)
		blank := mustTerm(rdf.NewBlankTerm(label))
		dst = append(dst, &rdf.Statement{Subject: super, Predicate: owlPropertyChainAxiom, Object: blank})
		for i, e := range a.Chain {
			obj, err := iriTerm(e)
			if err != nil {
				return dst, err
			}
			dst = append(dst, &rdf.Statement{Subject: blank, Predicate: rdfFirst, Object: obj})
			var s *rdf.Statement
			if i < len(a.Chain)-1 {
				// _:blank <rdf:rest> _:nextBlank .
				label = blankLabel(h, label)
				nextBlank := mustTerm(rdf.NewBlankTerm(label))
				s = &rdf.Statement{Subject: blank, Predicate: rdfRest, Object: nextBlank}
				blank = nextBlank
			} else {
				// _:blank <rdf:rest> <rdf:nil> .
				s = &rdf.Statement{Subject: blank, Predicate: rdfRest, Object: rdfNil}
			}
			dst = append(dst, s)
		}
		return dst, nil

	case SubClassOf:
		sub, err := iriTerm(a.Sub)
		if err != nil {
			return dst, err
		}
		switch super := a.Super.(type) {
		case NamedClass:
			obj, err := iriTerm(IRI(super))
			if err != nil {
				return dst, err
			}
			return append(dst, &rdf.Statement{Subject: sub, Predicate: rdfsSubClassOf, Object: obj}), nil
		case ObjectHasSelf:
			prop, err := iriTerm(super.Property)
			if err != nil {
				return dst, err
			}
			// The restriction is labelled by its subclass so that
			// restriction nodes are not shared between axioms.
			blank := mustTerm(rdf.NewBlankTerm(blankLabel(h, "hasSelf", string(a.Sub), string(super.Property))))
			return append(dst,
				&rdf.Statement{Subject: sub, Predicate: rdfsSubClassOf, Object: blank},
				&rdf.Statement{Subject: blank, Predicate: rdfType, Object: owlRestriction},
				&rdf.Statement{Subject: blank, Predicate: owlOnProperty, Object: prop},
				&rdf.Statement{Subject: blank, Predicate: owlHasSelf, Object: xsdTrue},
			), nil
		default:
			return dst, fmt.Errorf("owl: unknown class expression type %T", super)
		}

	case AnnotationAssertion:
		subj, err := iriTerm(a.Subject)
		if err != nil {
			return dst, err
		}
		pred, err := iriTerm(a.Property)
		if err != nil {
			return dst, err
		}
		var obj rdf.Term
		switch v := a.Value.(type) {
		case IRI:
			obj, err = iriTerm(v)
		case Literal:
			obj, err = rdf.NewLiteralTerm(string(v), "")
		default:
			err = fmt.Errorf("owl: unknown annotation value type %T", v)
		}
		if err != nil {
			return dst, err
		}
		return append(dst, &rdf.Statement{Subject: subj, Predicate: pred, Object: obj}), nil

	default:
		return dst, fmt.Errorf("owl: unknown axiom type %T", a)
	}
}

// iriTerm returns the RDF term for iri after checking that iri is valid.
func iriTerm(iri IRI) (rdf.Term, error) {
	_, err := ParseIRI(string(iri))
	if err != nil {
		return rdf.Term{}, err
	}
	return rdf.NewIRITerm(string(iri))
}

func blankLabel(h hash.Hash, parts ...string) string {
	h.Reset()
	for _, p := range parts {
		h.Write([]byte(p)) //nolint:errcheck
	}
	return hex(h.Sum(nil))
}

func hex(data []byte) string {
	const digit = "0123456789abcdef"
	buf := make([]byte, 0, len(data)*2)
	for _, b := range data {
		buf = append(buf, digit[b>>4], digit[b&0xf])
	}
	return string(buf)
}

func mustTerm(t rdf.Term, err error) rdf.Term {
	if err != nil {
		panic(err)
	}
	return t
}
