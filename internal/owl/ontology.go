// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package owl

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/graph/formats/rdf"
)

// Well known namespaces.
const (
	OWL  IRI = "http://www.w3.org/2002/07/owl#"
	RDF  IRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFS IRI = "http://www.w3.org/2000/01/rdf-schema#"
	XML  IRI = "http://www.w3.org/XML/1998/namespace"
	XSD  IRI = "http://www.w3.org/2001/XMLSchema#"
)

// Annotation properties built into RDFS.
const (
	Label   = RDFS + "label"
	SeeAlso = RDFS + "seeAlso"
)

// IRI is an absolute IRI. It is held without enclosing angle brackets.
type IRI string

// ParseIRI returns s as an IRI if it is a valid absolute IRI. Characters
// excluded from an N-Triples IRIREF, space, control characters and
// <>"{}|^`\, are rejected rather than escaped.
func ParseIRI(s string) (IRI, error) {
	for i, r := range s {
		if r <= 0x20 || strings.ContainsRune(iriExcluded, r) {
			return "", fmt.Errorf("invalid IRI %q: invalid character %q at offset %d", s, r, i)
		}
	}
	if !hasScheme(s) {
		return "", fmt.Errorf("invalid IRI %q: missing scheme", s)
	}
	_, err := rdf.NewIRITerm(s)
	if err != nil {
		return "", fmt.Errorf("invalid IRI %q: %w", s, err)
	}
	return IRI(s), nil
}

const iriExcluded = "<>\"{}|^`\\"

// hasScheme returns whether s starts with an RFC 3986 scheme
// followed by a colon.
func hasScheme(s string) bool {
	for i, r := range s {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case i != 0 && ('0' <= r && r <= '9' || r == '+' || r == '-' || r == '.'):
		case i != 0 && r == ':':
			return true
		default:
			return false
		}
	}
	return false
}

// Value is an annotation value, either an IRI or a Literal.
type Value interface {
	isValue()
}

// Literal is a plain string literal.
type Literal string

func (IRI) isValue()     {}
func (Literal) isValue() {}

// EntityKind is the kind of a declared entity.
type EntityKind int

const (
	Class EntityKind = iota + 1
	ObjectProperty
)

func (k EntityKind) String() string {
	switch k {
	case Class:
		return "Class"
	case ObjectProperty:
		return "ObjectProperty"
	default:
		return fmt.Sprintf("EntityKind(%d)", int(k))
	}
}

// Axiom is an OWL 2 axiom held by an Ontology. The concrete types are
// Declaration, SubObjectPropertyOf, SubClassOf and AnnotationAssertion.
type Axiom interface {
	isAxiom()
}

// Declaration declares Entity to be of the given kind.
type Declaration struct {
	Kind   EntityKind
	Entity IRI
}

// SubObjectPropertyOf states that Chain is a sub-property of Super.
// A Chain with a single element is a simple sub-property axiom, longer
// chains are an ObjectPropertyChain.
type SubObjectPropertyOf struct {
	Chain []IRI
	Super IRI
}

// SubClassOf states that Sub is a subclass of Super.
type SubClassOf struct {
	Sub   IRI
	Super ClassExpression
}

// AnnotationAssertion attaches Value to Subject with Property.
type AnnotationAssertion struct {
	Property IRI
	Subject  IRI
	Value    Value
}

func (Declaration) isAxiom()         {}
func (SubObjectPropertyOf) isAxiom() {}
func (SubClassOf) isAxiom()          {}
func (AnnotationAssertion) isAxiom() {}

// ClassExpression is a class expression, either a NamedClass or
// an ObjectHasSelf restriction.
type ClassExpression interface {
	isClassExpression()
}

// NamedClass is a class identified by an IRI.
type NamedClass IRI

// ObjectHasSelf is the class of individuals that are related to
// themselves by Property.
type ObjectHasSelf struct {
	Property IRI
}

func (NamedClass) isClassExpression()    {}
func (ObjectHasSelf) isClassExpression() {}

// Prefix is a namespace prefix used for abbreviating IRIs.
type Prefix struct {
	Name      string
	Namespace IRI
}

// Ontology is an append-only collection of axioms. Axioms are kept
// in the order they were added and are never deduplicated.
type Ontology struct {
	// IRI is the ontology IRI. It may be empty.
	IRI IRI

	// Prefixes is the prefix table used when encoding.
	Prefixes []Prefix

	// Axioms holds the ontology's axioms.
	Axioms []Axiom
}

// NewOntology returns a new Ontology with the given IRI and the standard
// owl, rdf, rdfs, xml and xsd prefixes.
func NewOntology(iri IRI) *Ontology {
	return &Ontology{
		IRI: iri,
		Prefixes: []Prefix{
			{Name: "owl", Namespace: OWL},
			{Name: "rdf", Namespace: RDF},
			{Name: "rdfs", Namespace: RDFS},
			{Name: "xml", Namespace: XML},
			{Name: "xsd", Namespace: XSD},
		},
	}
}

// AddPrefix adds a namespace prefix to the ontology. An existing prefix
// with the same name is replaced.
func (o *Ontology) AddPrefix(name string, namespace IRI) {
	for i, p := range o.Prefixes {
		if p.Name == name {
			o.Prefixes[i].Namespace = namespace
			return
		}
	}
	o.Prefixes = append(o.Prefixes, Prefix{Name: name, Namespace: namespace})
}

// DeclareObjectProperty adds declarations of p as an object property.
func (o *Ontology) DeclareObjectProperty(p ...IRI) {
	for _, e := range p {
		o.Axioms = append(o.Axioms, Declaration{Kind: ObjectProperty, Entity: e})
	}
}

// DeclareClass adds declarations of c as a class.
func (o *Ontology) DeclareClass(c ...IRI) {
	for _, e := range c {
		o.Axioms = append(o.Axioms, Declaration{Kind: Class, Entity: e})
	}
}

// SubObjectPropertyOf adds the axiom sub ⊑ super.
func (o *Ontology) SubObjectPropertyOf(sub, super IRI) {
	o.Axioms = append(o.Axioms, SubObjectPropertyOf{Chain: []IRI{sub}, Super: super})
}

// SubPropertyChainOf adds the axiom chain[0] ∘ ... ∘ chain[n-1] ⊑ super.
// SubPropertyChainOf panics if chain has fewer than two elements.
func (o *Ontology) SubPropertyChainOf(super IRI, chain ...IRI) {
	if len(chain) < 2 {
		panic("owl: property chain too short")
	}
	o.Axioms = append(o.Axioms, SubObjectPropertyOf{Chain: append([]IRI(nil), chain...), Super: super})
}

// SubClassOf adds the axiom sub ⊑ super.
func (o *Ontology) SubClassOf(sub IRI, super ClassExpression) {
	o.Axioms = append(o.Axioms, SubClassOf{Sub: sub, Super: super})
}

// Annotate adds an annotation assertion with an IRI value.
func (o *Ontology) Annotate(property, subject, value IRI) {
	o.Axioms = append(o.Axioms, AnnotationAssertion{Property: property, Subject: subject, Value: value})
}

// AnnotateLiteral adds an annotation assertion with a literal value.
func (o *Ontology) AnnotateLiteral(property, subject IRI, value string) {
	o.Axioms = append(o.Axioms, AnnotationAssertion{Property: property, Subject: subject, Value: Literal(value)})
}
