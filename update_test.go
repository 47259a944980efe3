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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"
)

// newTestDocument creates a small PDF file in memory, with the given
// information dictionary and number of (empty) pages.
func newTestDocument(t *testing.T, info *pdf.Info, numPages int) []byte {
	t.Helper()

	buf := &bytes.Buffer{}
	w, err := pdf.NewWriter(buf, pdf.V1_7, nil)
	if err != nil {
		t.Fatal(err)
	}

	tree := pagetree.NewWriter(w)
	for i := 0; i < numPages; i++ {
		pageDict := pdf.Dict{
			"Type":     pdf.Name("Page"),
			"MediaBox": &pdf.Rectangle{URx: 612, URy: 792},
		}
		if err := tree.AppendPageRef(w.Alloc(), pageDict); err != nil {
			t.Fatal(err)
		}
	}
	treeRef, err := tree.Close()
	if err != nil {
		t.Fatal(err)
	}

	meta := w.GetMeta()
	meta.Catalog.Pages = treeRef
	meta.Info = info

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestUpdateRoundTrip(t *testing.T) {
	created := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	in := newTestDocument(t, &pdf.Info{
		Author:       "J. Doe",
		CreationDate: pdf.Date(created),
		Custom:       map[string]string{"Flavor": "vanilla"},
	}, 3)

	r, err := pdf.NewReader(bytes.NewReader(in), nil)
	if err != nil {
		t.Fatal(err)
	}

	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	cfg := Config{
		{Key: "Title", Value: testValue(t, `"Report"`)},
		{Key: "Bogus", Value: testValue(t, `"Y"`)},
	}
	out := &bytes.Buffer{}
	report, err := Update(out, r, cfg, now, nil)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(report.Unknown, []string{"Bogus"}); d != "" {
		t.Errorf("unknown fields differ (-got +want):\n%s", d)
	}

	r2, err := pdf.NewReader(bytes.NewReader(out.Bytes()), nil)
	if err != nil {
		t.Fatal(err)
	}
	info := r2.GetMeta().Info
	if info == nil {
		t.Fatal("no information dictionary in output")
	}
	if info.Title != "Report" {
		t.Errorf("got Title %q, want %q", info.Title, "Report")
	}
	if info.Author != "J. Doe" {
		t.Errorf("got Author %q, want %q", info.Author, "J. Doe")
	}
	if !time.Time(info.CreationDate).Equal(created) {
		t.Errorf("got CreationDate %v, want %v", info.CreationDate, created)
	}
	if !time.Time(info.ModDate).Equal(now) {
		t.Errorf("got ModDate %v, want %v", info.ModDate, now)
	}
	if info.Custom["Flavor"] != "vanilla" {
		t.Errorf("custom entry lost: %v", info.Custom)
	}

	numPages, err := pagetree.NumPages(r2)
	if err != nil {
		t.Fatal(err)
	}
	if numPages != 3 {
		t.Errorf("got %d pages, want 3", numPages)
	}
}

func TestUpdateEmptyConfig(t *testing.T) {
	in := newTestDocument(t, nil, 1)
	r, err := pdf.NewReader(bytes.NewReader(in), nil)
	if err != nil {
		t.Fatal(err)
	}

	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	out := &bytes.Buffer{}
	report, err := Update(out, r, nil, now, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Set) != 0 || len(report.Unknown) != 0 {
		t.Errorf("unexpected report for empty config: %+v", report)
	}

	r2, err := pdf.NewReader(bytes.NewReader(out.Bytes()), nil)
	if err != nil {
		t.Fatal(err)
	}
	info := r2.GetMeta().Info
	if info == nil {
		t.Fatal("no information dictionary in output")
	}
	if info.Title != "" {
		t.Errorf("unexpected Title %q", info.Title)
	}
	if !time.Time(info.CreationDate).Equal(now) || !time.Time(info.ModDate).Equal(now) {
		t.Errorf("dates not set: %v / %v", info.CreationDate, info.ModDate)
	}
}

func TestUpdateFile(t *testing.T) {
	dir := t.TempDir()
	inFile := filepath.Join(dir, "doc.pdf")
	err := os.WriteFile(inFile, newTestDocument(t, nil, 1), 0o666)
	if err != nil {
		t.Fatal(err)
	}
	outFile := filepath.Join(dir, "doc_updated.pdf")

	cfg := Config{
		{Key: "Title", Value: testValue(t, `"Report"`)},
	}
	report, err := UpdateFile(inFile, outFile, cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Set) != 1 {
		t.Errorf("got %d changes, want 1", len(report.Set))
	}

	buf := &bytes.Buffer{}
	if err := ShowMetadata(buf, outFile, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Title: Report") {
		t.Errorf("summary does not show the new title:\n%s", buf.String())
	}
}

func TestUpdateFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	inFile := filepath.Join(dir, "missing.pdf")
	outFile := filepath.Join(dir, "out.pdf")

	_, err := UpdateFile(inFile, outFile, nil, nil)
	if err == nil {
		t.Fatal("expected an error for a missing input file")
	}
	if _, statErr := os.Stat(outFile); statErr == nil {
		t.Error("output file was created despite the error")
	}
}
