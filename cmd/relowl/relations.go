// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"compress/gzip"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/kortschak/relowl/internal/relation"
)

// readRelations adds the relations held in the file at path to m.
// Files with a .gz extension are decompressed. It returns the number
// of rows that were dropped.
func readRelations(path string, m *relation.Mapper) (dropped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return 0, err
		}
		defer gz.Close()
		r = gz
	}

	rr, err := relation.NewReader(r)
	if err != nil {
		return 0, err
	}
	name := filepath.Base(path)
	rr.Dropped = func(line int, reason string) {
		dropped++
		log.Printf("dropping %s:%d: %s", name, line, reason)
	}
	for {
		row, err := rr.Read()
		if err != nil {
			if err == io.EOF {
				return dropped, nil
			}
			return dropped, err
		}
		err = m.Add(row)
		if err != nil {
			return dropped, err
		}
	}
}

// writeFile writes data to path via a temporary file in the same
// directory so that a failed write does not leave a partial file
// at path.
func writeFile(path string, data []byte) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	_, err = f.Write(data)
	if err != nil {
		return err
	}
	err = f.Chmod(0o644)
	if err != nil {
		return err
	}
	err = f.Close()
	if err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}
