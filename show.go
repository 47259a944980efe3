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
	"sort"
	"time"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/pdf"
)

// ShowMetadata prints the document information dictionary of the PDF file
// fname to w.
//
// This is used for the confirmation summary after a successful update.
// Callers may treat failures as purely cosmetic.
func ShowMetadata(w io.Writer, fname string, opt *pdf.ReaderOptions) error {
	r, err := pdf.Open(fname, opt)
	if err != nil {
		return err
	}
	defer r.Close()

	info := r.GetMeta().Info
	if info == nil {
		fmt.Fprintln(w, "no document information dictionary")
		return nil
	}

	fmt.Fprintln(w, "Final PDF metadata:")
	if info.Title != "" {
		fmt.Fprintln(w, "  Title:", info.Title)
	}
	if info.Author != "" {
		fmt.Fprintln(w, "  Author:", info.Author)
	}
	if info.Subject != "" {
		fmt.Fprintln(w, "  Subject:", info.Subject)
	}
	if info.Keywords != "" {
		fmt.Fprintln(w, "  Keywords:", info.Keywords)
	}
	if info.Creator != "" {
		fmt.Fprintln(w, "  Creator:", info.Creator)
	}
	if info.Producer != "" {
		fmt.Fprintln(w, "  Producer:", info.Producer)
	}
	if !time.Time(info.CreationDate).IsZero() {
		fmt.Fprintln(w, "  CreationDate:", time.Time(info.CreationDate))
	}
	if !time.Time(info.ModDate).IsZero() {
		fmt.Fprintln(w, "  ModDate:", time.Time(info.ModDate))
	}
	if info.Trapped != "" {
		fmt.Fprintln(w, "  Trapped:", info.Trapped)
	}

	custom := maps.Keys(info.Custom)
	sort.Strings(custom)
	for _, key := range custom {
		fmt.Fprintf(w, "  %s: %s\n", key, info.Custom[key])
	}

	return nil
}
