// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package relation maps tables of chemical group addition and removal
// relations onto OWL object properties, classes and axioms describing
// them in the style of the OBO Relation Ontology.
package relation

import (
	"fmt"
	"strings"
)

// Encoding is the input encoding a Row was read from.
type Encoding int

const (
	// Explicit rows give the four property identifiers
	// in separate columns.
	Explicit Encoding = iota + 1

	// Offset rows give a single numeric base RO identifier
	// from which the four property identifiers are derived.
	Offset
)

func (e Encoding) String() string {
	switch e {
	case Explicit:
		return "explicit"
	case Offset:
		return "offset"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// Optional is a table cell value that may be absent.
type Optional struct {
	Value string
	Valid bool
}

// Some returns a present Optional holding s.
func Some(s string) Optional { return Optional{Value: s, Valid: true} }

func (o Optional) String() string {
	if !o.Valid {
		return "<absent>"
	}
	return o.Value
}

// Row is a single add/remove relation pair. Identifier fields hold
// local OBO identifiers in underscore form, for example GO_0016853.
type Row struct {
	// AddHelperID, AddID, RemoveHelperID and RemoveID are
	// the identifiers of the four object properties described
	// by the row.
	AddHelperID    string
	AddID          string
	RemoveHelperID string
	RemoveID       string

	// AddName is the label of the add interaction
	// property.
	AddName string

	// GroupID and GroupName identify the chemical
	// group that is added or removed.
	GroupID   Optional
	GroupName Optional

	// AddProcessID and AddProcessName identify the
	// process class of the forward reaction, and
	// RemoveProcessID and RemoveProcessName the
	// reverse reaction.
	AddProcessID      Optional
	AddProcessName    Optional
	RemoveProcessID   Optional
	RemoveProcessName Optional

	// Contributor is the ORCID of the person
	// who contributed the row.
	Contributor string

	// Encoding is the encoding the row was read
	// from and Line is its line in the input.
	Encoding Encoding
	Line     int
}

// nulls is the set of cell values treated as absent.
var nulls = map[string]bool{
	"":     true,
	"NA":   true,
	"N/A":  true,
	"n/a":  true,
	"NaN":  true,
	"nan":  true,
	"null": true,
	"NULL": true,
	"None": true,
	"<NA>": true,
}

// optional returns the Optional value of a table cell.
func optional(cell string) Optional {
	cell = strings.TrimSpace(cell)
	if nulls[cell] {
		return Optional{}
	}
	return Some(cell)
}

// NormalizeCURIE returns the CURIE in underscore separated form
// suitable for use as the local part of an OBO IRI, so that
// GO:0016853 becomes GO_0016853.
func NormalizeCURIE(curie string) string {
	return strings.ReplaceAll(strings.TrimSpace(curie), ":", "_")
}

func normalize(o Optional) Optional {
	if !o.Valid {
		return o
	}
	return Some(NormalizeCURIE(o.Value))
}
