// seehuhn.de/go/pdfmeta - attach document metadata to PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdfmeta

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ValidateInput checks that fname names an existing PDF file.
//
// The file name must carry a ".pdf" extension (compared case-insensitively)
// and the file must exist.  The extension is checked first, so a file with
// the wrong extension is rejected whether or not it exists.
func ValidateInput(fname string) error {
	if !strings.EqualFold(filepath.Ext(fname), ".pdf") {
		return fmt.Errorf("input file %q must have a .pdf extension", fname)
	}
	if _, err := os.Stat(fname); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("input file %q does not exist", fname)
		}
		return err
	}
	return nil
}

// DefaultOutputName returns the output file name used when none is given
// on the command line: the input name with "_updated" inserted before the
// extension.
func DefaultOutputName(fname string) string {
	ext := filepath.Ext(fname)
	return strings.TrimSuffix(fname, ext) + "_updated" + ext
}
