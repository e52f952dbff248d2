// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// relowl generates OWL object properties for chemical group addition and
// removal relations described in a tsv table, and writes the resulting
// ontology to a file and to stdout.
//
// For each row, relowl declares an add helper, an add interaction, a remove
// helper and a remove interaction object property, places them under the
// Relation Ontology's molecular helper property and molecularly interacts
// with relations, labels and describes them, links them as opposites and to
// the chemical group, characterises the forward and reverse GO process
// classes with a self restriction on the add helper property, and asserts
// the property chains
//
//  capable_of o add_helper o has_direct_input -> add
//  capable_of o remove_helper o has_direct_input -> remove
//
// The input is a tab-delimited file with a header row. Two encodings are
// accepted. The explicit encoding has the columns
//
//  add_helper_id add_id remove_helper_id remove_id add_name group_chebi_id
//  group_chebi_name add_go_id add_go_name remove_go_id remove_go_name orcid_id
//
// and rows without an add_go_id are skipped. The offset encoding has the
// columns
//
//  start_ro_id add_name group_name group_chebi_id add_go_id add_go_name
//  remove_go_id remove_go_name orcid_id
//
// and the four property identifiers are start_ro_id plus 0, 1, 2 and 3.
// Identifiers are CURIEs (GO:0016853) and are expanded into OBO PURLs.
//
// The input file may be gzip compressed. The output is written in OWL
// functional syntax or as N-Triples.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/graph/formats/rdf"

	"github.com/kortschak/relowl/internal/owl"
	"github.com/kortschak/relowl/internal/relation"
)

func main() {
	var (
		in      = flag.String("in", "", "specify the relations input (.tsv/.tsv.gz - required)")
		out     = flag.String("out", "relations.owl", "specify the ontology output file")
		format  = flag.String("format", "ofn", "specify the output format (ofn or nt)")
		iri     = flag.String("iri", "", "specify the ontology IRI")
		curator = flag.String("curator", relation.DefaultCurator.ORCID, "specify the ORCID of the tool curator")
		name    = flag.String("curator-name", relation.DefaultCurator.Name, "specify the name of the tool curator")
		dotPath = flag.String("dot", "", "specify a file to write a DOT debug graph to")
		quiet   = flag.Bool("quiet", false, "do not echo the ontology to stdout")
		help    = flag.Bool("help", false, "print help text")
	)
	flag.Parse()

	if *help {
		flag.Usage()
		fmt.Fprintf(os.Stderr, `
%s generates OWL object properties for chemical group addition and
removal relations described in a tsv table, and writes the resulting
ontology to the output file and to stdout.

The input is a tab-delimited file with a header row. Two encodings are
accepted. The explicit encoding has the columns

 add_helper_id add_id remove_helper_id remove_id add_name group_chebi_id
 group_chebi_name add_go_id add_go_name remove_go_id remove_go_name orcid_id

and rows without an add_go_id are skipped. The offset encoding has the
columns

 start_ro_id add_name group_name group_chebi_id add_go_id add_go_name
 remove_go_id remove_go_name orcid_id

and the four property identifiers are start_ro_id plus 0, 1, 2 and 3.

Identifiers are CURIEs (GO:0016853) and are expanded into OBO PURLs
(http://purl.obolibrary.org/obo/GO_0016853).

The input file may be gzip compressed. The output is written in OWL
functional syntax (ofn) or as N-Triples (nt).

`, filepath.Base(os.Args[0]))
		os.Exit(0)
	}

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}
	switch *format {
	case "ofn", "nt":
	default:
		fmt.Fprintf(os.Stderr, "unknown output format: %q\n", *format)
		flag.Usage()
		os.Exit(2)
	}
	if *iri != "" {
		_, err := owl.ParseIRI(*iri)
		if err != nil {
			log.Fatalf("invalid ontology IRI: %v", err)
		}
	}

	log.Println(os.Args)

	m, err := relation.NewMapper(owl.NewOntology(owl.IRI(*iri)), relation.Curator{ORCID: *curator, Name: *name})
	if err != nil {
		log.Fatal(err)
	}

	log.Println("[reading relations]")
	dropped, err := readRelations(*in, m)
	if err != nil {
		log.Fatalf("failed to read relations: %v", err)
	}
	log.Printf("added %d rows, dropped %d rows, %d axioms", m.Rows(), dropped, len(m.Ontology().Axioms))

	var statements []*rdf.Statement
	if *format == "nt" || *dotPath != "" {
		statements, err = m.Ontology().Statements()
		if err != nil {
			log.Fatalf("failed to map ontology to RDF: %v", err)
		}
	}

	log.Println("[encoding ontology]")
	var buf bytes.Buffer
	switch *format {
	case "ofn":
		err = owl.NewEncoder(&buf).Encode(m.Ontology())
	case "nt":
		err = writeStatements(&buf, statements)
	}
	if err != nil {
		log.Fatalf("failed to encode ontology: %v", err)
	}

	log.Println("[writing ontology]")
	err = writeFile(*out, buf.Bytes())
	if err != nil {
		log.Fatalf("failed to write ontology: %v", err)
	}
	if !*quiet {
		_, err = os.Stdout.Write(buf.Bytes())
		if err != nil {
			log.Fatal(err)
		}
	}

	if *dotPath != "" {
		log.Println("[writing debug graph]")
		b, err := debugDOT(statements, m.Ontology().Prefixes)
		if err != nil {
			log.Fatalf("failed to marshal debug graph: %v", err)
		}
		err = writeFile(*dotPath, b)
		if err != nil {
			log.Fatalf("failed to write debug graph: %v", err)
		}
	}
}

// writeStatements writes statements to w as N-Triples.
func writeStatements(w io.Writer, statements []*rdf.Statement) error {
	for _, s := range statements {
		_, err := fmt.Fprintln(w, s)
		if err != nil {
			return err
		}
	}
	return nil
}
