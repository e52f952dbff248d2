// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package relation

import (
	"fmt"

	"github.com/kortschak/relowl/internal/owl"
)

// Mapper adds the axioms describing relation rows to an ontology.
type Mapper struct {
	ontology *owl.Ontology
	rows     int
}

// NewMapper returns a new Mapper that adds axioms to dst. The obo, orcid
// and dce prefixes are added to dst along with labels for the fixed
// vocabulary and for the curator.
func NewMapper(dst *owl.Ontology, curator Curator) (*Mapper, error) {
	who, err := owl.ParseIRI(string(ORCID) + curator.ORCID)
	if err != nil {
		return nil, fmt.Errorf("relation: invalid curator: %w", err)
	}
	dst.AddPrefix("obo", OBO)
	dst.AddPrefix("orcid", ORCID)
	dst.AddPrefix("dce", DCE)
	for _, v := range vocabulary {
		dst.AnnotateLiteral(owl.Label, v.term, v.label)
	}
	dst.AnnotateLiteral(owl.Label, who, curator.Name)
	return &Mapper{ontology: dst}, nil
}

// Ontology returns the ontology the Mapper adds to.
func (m *Mapper) Ontology() *owl.Ontology {
	return m.ontology
}

// Rows returns the number of rows added.
func (m *Mapper) Rows() int {
	return m.rows
}

// terms holds the IRIs for a single row.
type terms struct {
	addHelper, add, removeHelper, remove owl.IRI
	contributor                          owl.IRI

	// group, addProcess and removeProcess
	// are empty when absent from the row.
	group, addProcess, removeProcess owl.IRI
}

func termsFor(row Row) (terms, error) {
	var (
		t   terms
		err error
	)
	for _, f := range []struct {
		dst *owl.IRI
		ns  owl.IRI
		id  Optional
	}{
		{dst: &t.addHelper, ns: OBO, id: Some(row.AddHelperID)},
		{dst: &t.add, ns: OBO, id: Some(row.AddID)},
		{dst: &t.removeHelper, ns: OBO, id: Some(row.RemoveHelperID)},
		{dst: &t.remove, ns: OBO, id: Some(row.RemoveID)},
		{dst: &t.contributor, ns: ORCID, id: Some(row.Contributor)},
		{dst: &t.group, ns: OBO, id: row.GroupID},
		{dst: &t.addProcess, ns: OBO, id: row.AddProcessID},
		{dst: &t.removeProcess, ns: OBO, id: row.RemoveProcessID},
	} {
		if !f.id.Valid {
			continue
		}
		if f.id.Value == "" {
			return t, fmt.Errorf("relation: line %d: empty identifier", row.Line)
		}
		*f.dst, err = owl.ParseIRI(string(f.ns) + f.id.Value)
		if err != nil {
			return t, fmt.Errorf("relation: line %d: %w", row.Line, err)
		}
	}
	props := [...]owl.IRI{t.addHelper, t.add, t.removeHelper, t.remove}
	for i, p := range props {
		for _, q := range props[i+1:] {
			if p == q {
				return t, fmt.Errorf("relation: line %d: property identifier %s used more than once", row.Line, p)
			}
		}
	}
	return t, nil
}

// Add adds the axioms describing row to the Mapper's ontology. The four
// property identifiers of row must be distinct and all identifiers must
// form valid IRIs. If an error is returned the ontology is not altered.
func (m *Mapper) Add(row Row) error {
	t, err := termsFor(row)
	if err != nil {
		return err
	}
	o := m.ontology

	o.DeclareObjectProperty(t.addHelper, t.add, t.removeHelper, t.remove)
	o.SubObjectPropertyOf(t.addHelper, MolecularHelperProperty)
	o.SubObjectPropertyOf(t.add, MolecularlyInteractsWith)
	o.SubObjectPropertyOf(t.removeHelper, MolecularHelperProperty)
	o.SubObjectPropertyOf(t.remove, MolecularlyInteractsWith)

	o.AnnotateLiteral(owl.Label, t.add, row.AddName)
	if row.AddProcessName.Valid {
		o.AnnotateLiteral(owl.Label, t.addHelper, "is "+row.AddProcessName.Value)
	}
	o.AnnotateLiteral(owl.Label, t.remove, "de"+row.AddName)
	switch {
	case row.RemoveProcessName.Valid:
		o.AnnotateLiteral(owl.Label, t.removeHelper, "is "+row.RemoveProcessName.Value)
	case row.AddProcessName.Valid:
		o.AnnotateLiteral(owl.Label, t.removeHelper, "is de"+row.AddProcessName.Value)
	}

	for _, p := range []owl.IRI{t.addHelper, t.add, t.removeHelper, t.remove} {
		o.Annotate(Contributor, p, t.contributor)
	}

	if row.GroupName.Valid {
		o.AnnotateLiteral(AlternativeTerm, t.add, fmt.Sprintf(addDescription, row.GroupName.Value))
		o.AnnotateLiteral(AlternativeTerm, t.remove, fmt.Sprintf(removeDescription, row.GroupName.Value))
	}

	o.Annotate(OppositeOf, t.add, t.remove)
	o.Annotate(OppositeOf, t.remove, t.add)
	if row.Encoding == Explicit {
		o.Annotate(OppositeOf, t.addHelper, t.removeHelper)
		o.Annotate(OppositeOf, t.removeHelper, t.addHelper)
	}

	if t.group != "" {
		o.DeclareClass(t.group)
		if row.GroupName.Valid {
			o.AnnotateLiteral(owl.Label, t.group, row.GroupName.Value)
		}
		for _, p := range []owl.IRI{t.add, t.addHelper, t.remove, t.removeHelper} {
			o.Annotate(owl.SeeAlso, p, t.group)
		}
	}

	if t.addProcess != "" {
		if row.AddProcessName.Valid {
			o.AnnotateLiteral(owl.Label, t.addProcess, row.AddProcessName.Value)
		}
		o.SubClassOf(t.addProcess, owl.ObjectHasSelf{Property: t.addHelper})
	}
	// The reverse process is characterised by the add helper
	// property, not the remove helper property.
	if t.removeProcess != "" {
		if row.RemoveProcessName.Valid {
			o.AnnotateLiteral(owl.Label, t.removeProcess, row.RemoveProcessName.Value)
		}
		o.SubClassOf(t.removeProcess, owl.ObjectHasSelf{Property: t.addHelper})
	}

	o.SubPropertyChainOf(t.add, CapableOf, t.addHelper, HasDirectInput)
	o.SubPropertyChainOf(t.remove, CapableOf, t.removeHelper, HasDirectInput)

	m.rows++
	return nil
}
