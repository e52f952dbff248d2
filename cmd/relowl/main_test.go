// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/diff"
	"github.com/pkg/diff/write"

	"github.com/kortschak/relowl/internal/owl"
	"github.com/kortschak/relowl/internal/relation"
)

const scenario = "../../internal/relation/testdata/scenario.tsv"

func newMapper(t *testing.T) *relation.Mapper {
	t.Helper()
	m, err := relation.NewMapper(owl.NewOntology(""), relation.DefaultCurator)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func encode(t *testing.T, o *owl.Ontology) []byte {
	t.Helper()
	var buf bytes.Buffer
	err := owl.NewEncoder(&buf).Encode(o)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return buf.Bytes()
}

func TestReadRelationsGzip(t *testing.T) {
	data, err := os.ReadFile(scenario)
	if err != nil {
		t.Fatalf("failed to read test data: %v", err)
	}
	path := filepath.Join(t.TempDir(), "scenario.tsv.gz")
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	gz.Write(data)
	gz.Close()
	err = os.WriteFile(path, buf.Bytes(), 0o644)
	if err != nil {
		t.Fatalf("failed to write test data: %v", err)
	}

	plain := newMapper(t)
	_, err = readRelations(scenario, plain)
	if err != nil {
		t.Fatalf("unexpected error reading plain input: %v", err)
	}
	compressed := newMapper(t)
	_, err = readRelations(path, compressed)
	if err != nil {
		t.Fatalf("unexpected error reading gzip input: %v", err)
	}
	if compressed.Rows() != 1 {
		t.Errorf("unexpected number of rows: got:%d want:1", compressed.Rows())
	}

	want := encode(t, plain.Ontology())
	got := encode(t, compressed.Ontology())
	if !bytes.Equal(got, want) {
		var buf bytes.Buffer
		diff.Text("got", "want", got, want, &buf, write.TerminalColor())
		t.Errorf("unexpected result:\n%s", &buf)
	}
}

func TestReadRelationsDropped(t *testing.T) {
	data, err := os.ReadFile(scenario)
	if err != nil {
		t.Fatalf("failed to read test data: %v", err)
	}
	// Append a row with no add_go_id.
	data = append(data, "RO:0002570\tRO:0002571\tRO:0002572\tRO:0002573\tphosphorylates\t\t\t\t\t\t\t0000-0001-2345-6789\n"...)
	path := filepath.Join(t.TempDir(), "relations.tsv")
	err = os.WriteFile(path, data, 0o644)
	if err != nil {
		t.Fatalf("failed to write test data: %v", err)
	}

	m := newMapper(t)
	dropped, err := readRelations(path, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dropped != 1 {
		t.Errorf("unexpected number of dropped rows: got:%d want:1", dropped)
	}
	if m.Rows() != 1 {
		t.Errorf("unexpected number of rows: got:%d want:1", m.Rows())
	}
}

func TestReadRelationsMissingFile(t *testing.T) {
	_, err := readRelations(filepath.Join(t.TempDir(), "missing.tsv"), newMapper(t))
	if !os.IsNotExist(err) {
		t.Errorf("unexpected error: got:%v want:not exist", err)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "relations.owl")
	err := os.WriteFile(path, []byte("old"), 0o644)
	if err != nil {
		t.Fatalf("failed to write test data: %v", err)
	}
	err = writeFile(path, []byte("new"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(got) != "new" {
		t.Errorf("unexpected file contents: got:%q want:%q", got, "new")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("temporary file left in output directory: %v", entries)
	}

	err = writeFile(filepath.Join(dir, "missing", "relations.owl"), []byte("new"))
	if err == nil {
		t.Error("expected error writing to missing directory")
	}
}

func TestWriteStatements(t *testing.T) {
	m := newMapper(t)
	_, err := readRelations(scenario, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	statements, err := m.Ontology().Statements()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	err = writeStatements(&buf, statements)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != len(statements) {
		t.Fatalf("unexpected number of lines: got:%d want:%d", len(lines), len(statements))
	}
	for i, l := range lines {
		if !strings.HasSuffix(l, " .") {
			t.Errorf("line %d is not an N-Triples statement: %q", i+1, l)
		}
	}
}

// TestDebugDOT needs -tags safe with the pinned gonum
// on current Go releases.
func TestDebugDOT(t *testing.T) {
	m := newMapper(t)
	_, err := readRelations(scenario, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	statements, err := m.Ontology().Statements()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := debugDOT(statements, m.Ontology().Prefixes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := string(b)
	if !strings.HasPrefix(got, "digraph relations {") {
		t.Errorf("unexpected graph header:\n%s", got)
	}
	for _, want := range []string{
		"obo:RO_0002566",
		"obo:RO_0002567",
		"obo:CHEBI_25212",
		"obo:GO_0016853",
		"rdfs:subPropertyOf",
		"owl:propertyChainAxiom",
		"results in formation of",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in debug graph:\n%s", want, got)
		}
	}
	// Literal nodes are omitted.
	if strings.Contains(got, "^^") {
		t.Errorf("unexpected literal node in debug graph:\n%s", got)
	}
	for _, s := range statements {
		// The graph is expected to not have been altered.
		if s.Subject.UID != 0 || s.Object.UID != 0 {
			t.Fatalf("statement terms altered by debug graph: %v", s)
		}
	}
}
