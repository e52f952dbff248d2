// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package relation

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Column names of the explicit encoding.
var explicitColumns = []string{
	"add_helper_id",
	"add_id",
	"remove_helper_id",
	"remove_id",
	"add_name",
	"group_chebi_id",
	"group_chebi_name",
	"add_go_id",
	"add_go_name",
	"remove_go_id",
	"remove_go_name",
	"orcid_id",
}

// Column names of the offset encoding.
var offsetColumns = []string{
	"start_ro_id",
	"add_name",
	"group_name",
	"group_chebi_id",
	"add_go_id",
	"add_go_name",
	"remove_go_id",
	"remove_go_name",
	"orcid_id",
}

// MissingFieldError is returned when a required cell is absent.
type MissingFieldError struct {
	Line   int
	Column string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("relation: line %d: missing required field %q", e.Line, e.Column)
}

// Reader reads relation rows from tab-delimited text. The first
// record is expected to be a header naming the columns; lines
// starting with '#' are ignored. The encoding of the rows is
// determined from the header: a start_ro_id column selects the
// Offset encoding, otherwise all the Explicit columns must be
// present. Column order is not significant.
type Reader struct {
	csv      *csv.Reader
	encoding Encoding
	cols     map[string]int

	// Dropped, if not nil, is called for each
	// row that is skipped by the reader.
	Dropped func(line int, reason string)
}

// NewReader returns a new Reader that reads from r after
// reading the header.
func NewReader(r io.Reader) (*Reader, error) {
	c := csv.NewReader(r)
	c.Comma = '\t'
	c.Comment = '#'
	// Names may hold bare quotes, for example 3" cap.
	c.LazyQuotes = true

	header, err := c.Read()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	enc := Explicit
	want := explicitColumns
	if _, ok := cols["start_ro_id"]; ok {
		enc = Offset
		want = offsetColumns
	}
	for _, name := range want {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("relation: missing %s encoding column %q", enc, name)
		}
	}

	c.ReuseRecord = true
	return &Reader{csv: c, encoding: enc, cols: cols}, nil
}

// Encoding returns the encoding of the rows held by the input.
func (r *Reader) Encoding() Encoding {
	return r.encoding
}

// Read returns the next row from the input. It returns io.EOF
// when no more rows are available. Explicit rows without an
// add_go_id are skipped. A row missing any other required field
// results in a *MissingFieldError.
func (r *Reader) Read() (Row, error) {
	for {
		rec, err := r.csv.Read()
		if err != nil {
			return Row{}, err
		}
		line, _ := r.csv.FieldPos(0)

		var (
			row Row
			ok  bool
		)
		switch r.encoding {
		case Explicit:
			row, ok, err = r.explicit(rec, line)
		case Offset:
			row, err = r.offset(rec, line)
			ok = true
		default:
			panic("relation: invalid encoding")
		}
		if err != nil {
			return Row{}, err
		}
		if ok {
			return row, nil
		}
	}
}

func (r *Reader) cell(rec []string, name string) Optional {
	return optional(rec[r.cols[name]])
}

func (r *Reader) required(rec []string, name string, line int) (string, error) {
	v := r.cell(rec, name)
	if !v.Valid {
		return "", &MissingFieldError{Line: line, Column: name}
	}
	return v.Value, nil
}

func (r *Reader) explicit(rec []string, line int) (row Row, ok bool, err error) {
	if !r.cell(rec, "add_go_id").Valid {
		if r.Dropped != nil {
			r.Dropped(line, "no add_go_id")
		}
		return Row{}, false, nil
	}

	ids := make([]string, 4)
	for i, name := range []string{"add_helper_id", "add_id", "remove_helper_id", "remove_id"} {
		id, err := r.required(rec, name, line)
		if err != nil {
			return Row{}, false, err
		}
		ids[i] = NormalizeCURIE(id)
	}
	row = Row{
		AddHelperID:    ids[0],
		AddID:          ids[1],
		RemoveHelperID: ids[2],
		RemoveID:       ids[3],
		GroupName:      r.cell(rec, "group_chebi_name"),
		Encoding:       Explicit,
		Line:           line,
	}
	err = r.common(&row, rec, line)
	if err != nil {
		return Row{}, false, err
	}
	return row, true, nil
}

func (r *Reader) offset(rec []string, line int) (Row, error) {
	start, err := r.required(rec, "start_ro_id", line)
	if err != nil {
		return Row{}, err
	}
	ids, err := OffsetIDs(start)
	if err != nil {
		return Row{}, fmt.Errorf("relation: line %d: %w", line, err)
	}
	row := Row{
		AddHelperID:    ids[0],
		AddID:          ids[1],
		RemoveHelperID: ids[2],
		RemoveID:       ids[3],
		GroupName:      r.cell(rec, "group_name"),
		Encoding:       Offset,
		Line:           line,
	}
	err = r.common(&row, rec, line)
	if err != nil {
		return Row{}, err
	}
	return row, nil
}

// common fills the fields shared by both encodings.
func (r *Reader) common(row *Row, rec []string, line int) error {
	var err error
	row.AddName, err = r.required(rec, "add_name", line)
	if err != nil {
		return err
	}
	row.Contributor, err = r.required(rec, "orcid_id", line)
	if err != nil {
		return err
	}
	row.GroupID = normalize(r.cell(rec, "group_chebi_id"))
	row.AddProcessID = normalize(r.cell(rec, "add_go_id"))
	row.AddProcessName = r.cell(rec, "add_go_name")
	row.RemoveProcessID = normalize(r.cell(rec, "remove_go_id"))
	row.RemoveProcessName = r.cell(rec, "remove_go_name")
	return nil
}

// OffsetIDs returns the add helper, add, remove helper and remove
// property identifiers derived from the RO identifier start by adding
// 0, 1, 2 and 3 respectively. The start identifier may be given as a
// bare number or with an RO: or RO_ prefix.
func OffsetIDs(start string) ([4]string, error) {
	var ids [4]string
	num := strings.TrimSpace(start)
	for _, prefix := range []string{"RO:", "RO_"} {
		num = strings.TrimPrefix(num, prefix)
	}
	base, err := strconv.Atoi(num)
	if err != nil || base < 0 {
		return ids, fmt.Errorf("invalid start_ro_id %q", start)
	}
	for i := range ids {
		ids[i] = fmt.Sprintf("RO_%07d", base+i)
	}
	return ids, nil
}
