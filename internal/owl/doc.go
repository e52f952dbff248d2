// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package owl implements an append-only OWL 2 ontology accumulator for the
// small set of axioms needed to describe OBO relations, along with encoders
// for the OWL 2 functional-style syntax and for RDF via the OWL 2 mapping
// to RDF graphs. It is not a complete OWL 2 implementation.
package owl
