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
	"fmt"
	"io"
	"os"
	"time"

	"seehuhn.de/go/pdf"
)

// Options control optional behaviour of [Update] and [UpdateFile].
// The zero value is a valid set of options.
type Options struct {
	// ReadPassword is used to decrypt encrypted input files.
	// See [pdf.ReaderOptions] for the calling convention.
	ReadPassword func(ID []byte, try int) string

	// SyncXMP requests that an XMP metadata stream mirroring the merged
	// information dictionary is embedded in the output file.
	SyncXMP bool
}

// Update writes a copy of doc to w, with the metadata from cfg merged into
// the document information dictionary.
//
// All pages are copied verbatim, the file ID and the PDF version of the
// input are preserved, and the merged metadata is installed as described
// for [Merge].  The returned report describes which fields were set and
// which configuration keys were ignored.
func Update(w io.Writer, doc pdf.Getter, cfg Config, now time.Time, opt *Options) (*Report, error) {
	if opt == nil {
		opt = &Options{}
	}

	metaIn := doc.GetMeta()
	merged, report := Merge(metaIn.Info, cfg, now)

	out, err := pdf.NewWriter(w, metaIn.Version, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF writer: %w", err)
	}

	if err := copyPages(out, doc); err != nil {
		return nil, err
	}

	metaOut := out.GetMeta()
	metaOut.Info = merged
	metaOut.ID = metaIn.ID

	if opt.SyncXMP {
		if err := embedXMP(out, merged); err != nil {
			return nil, err
		}
	}

	if err := out.Close(); err != nil {
		return nil, err
	}
	return report, nil
}

// UpdateFile applies the metadata from cfg to the PDF file inFile and
// writes the result to outFile.  The merge timestamp is the current time.
//
// If writing fails, the incomplete output file is removed before the error
// is returned.
func UpdateFile(inFile, outFile string, cfg Config, opt *Options) (*Report, error) {
	if opt == nil {
		opt = &Options{}
	}

	var rOpt *pdf.ReaderOptions
	if opt.ReadPassword != nil {
		rOpt = &pdf.ReaderOptions{ReadPassword: opt.ReadPassword}
	}
	r, err := pdf.Open(inFile, rOpt)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	fd, err := os.Create(outFile)
	if err != nil {
		return nil, err
	}

	report, err := Update(fd, r, cfg, time.Now(), opt)
	if closeErr := fd.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(outFile)
		return nil, err
	}
	return report, nil
}
