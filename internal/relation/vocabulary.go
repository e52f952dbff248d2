// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package relation

import "github.com/kortschak/relowl/internal/owl"

// Namespaces used by the generated ontology.
const (
	OBO   owl.IRI = "http://purl.obolibrary.org/obo/"
	ORCID owl.IRI = "https://orcid.org/"
	DCE   owl.IRI = "http://purl.org/dc/elements/1.1/"
)

// Fixed vocabulary terms.
const (
	MolecularHelperProperty  = OBO + "RO_0002564"
	MolecularlyInteractsWith = OBO + "RO_0002436"
	CapableOf                = OBO + "RO_0002215"
	HasDirectInput           = OBO + "RO_0002400"
	AlternativeTerm          = OBO + "IAO_0000118"
	OppositeOf               = OBO + "RO_0002604"

	Contributor = DCE + "contributor"
)

// vocabulary is the set of fixed terms labelled in every ontology.
var vocabulary = []struct {
	term  owl.IRI
	label string
}{
	{term: MolecularHelperProperty, label: "molecular helper property"},
	{term: MolecularlyInteractsWith, label: "molecularly interacts with"},
	{term: CapableOf, label: "capable of"},
	{term: HasDirectInput, label: "has direct input"},
	{term: AlternativeTerm, label: "alternative term"},
	{term: OppositeOf, label: "opposite of"},
}

// Curator is the person credited with the tool that generates
// the ontology.
type Curator struct {
	ORCID string
	Name  string
}

// DefaultCurator is the curator labelled when no other is given.
var DefaultCurator = Curator{ORCID: "0000-0003-4423-4370", Name: "Charles Tapley Hoyt"}

// Descriptions of the interaction properties, formatted with the
// name of the chemical group.
const (
	addDescription    = "An interaction relation between x and y in which x catalyzes a reaction in which a %s group is added to y."
	removeDescription = "An interaction relation between x and y in which x catalyzes a reaction in which a %s group is removed from y."
)
