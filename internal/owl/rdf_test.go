// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package owl

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/pkg/diff"
	"github.com/pkg/diff/write"

	"gonum.org/v1/gonum/graph/formats/rdf"
)

// wantNTriples is the OWL 2 RDF mapping of testOntology. Blank node labels
// are arbitrary since graphs are compared after canonicalisation.
const wantNTriples = `<http://example.org/test.owl> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2002/07/owl#Ontology> .
<http://purl.obolibrary.org/obo/RO_0000001> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2002/07/owl#ObjectProperty> .
<http://purl.obolibrary.org/obo/RO_0000004> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2002/07/owl#ObjectProperty> .
<http://purl.obolibrary.org/obo/CHEBI_0000001> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2002/07/owl#Class> .
<http://purl.obolibrary.org/obo/RO_0000001> <http://www.w3.org/2000/01/rdf-schema#subPropertyOf> <http://purl.obolibrary.org/obo/RO_0000002> .
<http://purl.obolibrary.org/obo/RO_0000004> <http://www.w3.org/2002/07/owl#propertyChainAxiom> _:list1 .
_:list1 <http://www.w3.org/1999/02/22-rdf-syntax-ns#first> <http://purl.obolibrary.org/obo/RO_0000003> .
_:list1 <http://www.w3.org/1999/02/22-rdf-syntax-ns#rest> _:list2 .
_:list2 <http://www.w3.org/1999/02/22-rdf-syntax-ns#first> <http://purl.obolibrary.org/obo/RO_0000001> .
_:list2 <http://www.w3.org/1999/02/22-rdf-syntax-ns#rest> _:list3 .
_:list3 <http://www.w3.org/1999/02/22-rdf-syntax-ns#first> <http://purl.obolibrary.org/obo/RO_0000005> .
_:list3 <http://www.w3.org/1999/02/22-rdf-syntax-ns#rest> <http://www.w3.org/1999/02/22-rdf-syntax-ns#nil> .
<http://purl.obolibrary.org/obo/GO_0000001> <http://www.w3.org/2000/01/rdf-schema#subClassOf> _:self .
_:self <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2002/07/owl#Restriction> .
_:self <http://www.w3.org/2002/07/owl#onProperty> <http://purl.obolibrary.org/obo/RO_0000001> .
_:self <http://www.w3.org/2002/07/owl#hasSelf> "true"^^<http://www.w3.org/2001/XMLSchema#boolean> .
<http://purl.obolibrary.org/obo/GO_0000002> <http://www.w3.org/2000/01/rdf-schema#subClassOf> <http://purl.obolibrary.org/obo/GO_0000001> .
<http://purl.obolibrary.org/obo/RO_0000001> <http://www.w3.org/2000/01/rdf-schema#label> "is binding" .
<http://purl.obolibrary.org/obo/RO_0000001> <http://www.w3.org/2000/01/rdf-schema#seeAlso> <http://purl.obolibrary.org/obo/CHEBI_0000001> .
<http://purl.obolibrary.org/obo/RO_0000001> <http://purl.org/dc/elements/1.1/contributor> <https://orcid.org/0000-0001-2345-6789> .
`

func TestStatements(t *testing.T) {
	got, err := testOntology().Statements()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gotCan, err := rdf.URDNA2015(nil, got)
	if err != nil {
		t.Fatalf("error during canonicalisation: %v", err)
	}
	wantCan, err := canonicalFromNT(wantNTriples)
	if err != nil {
		t.Fatalf("error during golden data canonicalisation: %v", err)
	}

	if !equalCanonicalGraphs(gotCan, wantCan) {
		var got, want strings.Builder
		for _, s := range gotCan {
			fmt.Fprintln(&got, s)
		}
		for _, s := range wantCan {
			fmt.Fprintln(&want, s)
		}
		var buf bytes.Buffer
		err := diff.Text("got", "want", got.String(), want.String(), &buf, write.TerminalColor())
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		t.Errorf("unexpected canonical graph:\n%s", &buf)
	}
}

func TestStatementsDeterministic(t *testing.T) {
	a, err := testOntology().Statements()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := testOntology().Statements()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("statement count mismatch: %d != %d", len(a), len(b))
	}
	for i := range a {
		if a[i].String() != b[i].String() {
			t.Errorf("statement %d differs:\n%s\n%s", i, a[i], b[i])
		}
	}
}

func TestSelfRestrictionsNotShared(t *testing.T) {
	o := NewOntology("")
	o.SubClassOf(obo+"GO_0000001", ObjectHasSelf{Property: obo + "RO_0000001"})
	o.SubClassOf(obo+"GO_0000002", ObjectHasSelf{Property: obo + "RO_0000001"})
	statements, err := o.Statements()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	restrictions := make(map[string]bool)
	for _, s := range statements {
		if s.Predicate.Value == "<http://www.w3.org/2000/01/rdf-schema#subClassOf>" {
			restrictions[s.Object.Value] = true
		}
	}
	if len(restrictions) != 2 {
		t.Errorf("unexpected number of restriction nodes: got:%d want:2", len(restrictions))
	}
}

func TestStatementsInvalidIRI(t *testing.T) {
	o := NewOntology("")
	o.DeclareClass(obo + "CHEBI 1")
	_, err := o.Statements()
	if err == nil {
		t.Error("expected error for invalid IRI")
	}
}

func canonicalFromNT(nt string) ([]*rdf.Statement, error) {
	var statements []*rdf.Statement
	dec := rdf.NewDecoder(strings.NewReader(nt))
	for {
		s, err := dec.Unmarshal()
		if err != nil {
			if err != io.EOF {
				return nil, err
			}
			break
		}
		statements = append(statements, s)
	}
	return rdf.URDNA2015(nil, statements)
}

func equalCanonicalGraphs(a, b []*rdf.Statement) bool {
	if len(a) != len(b) {
		return false
	}
	for i, ai := range a {
		if ai.String() != b[i].String() {
			return false
		}
	}
	return true
}
