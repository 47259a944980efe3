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

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"
	"seehuhn.de/go/pdf/pdfcopy"
)

// copyPages copies every page of doc into out, together with all objects
// the pages refer to, and installs the new page tree in the output
// catalog.  Document structure other than the pages themselves is not
// carried over.
func copyPages(out *pdf.Writer, doc pdf.Getter) error {
	numPages, err := pagetree.NumPages(doc)
	if err != nil {
		return fmt.Errorf("failed to read page tree: %w", err)
	}

	treeOut := pagetree.NewWriter(out)
	copier := pdfcopy.NewCopier(out, doc)

	for pageNo := range numPages {
		refIn, pageIn, err := pagetree.GetPage(doc, pageNo)
		if err != nil {
			return fmt.Errorf("failed to get page %d: %w", pageNo+1, err)
		}

		pageOut, err := copier.CopyDict(pageIn)
		if err != nil {
			return fmt.Errorf("failed to copy page %d: %w", pageNo+1, err)
		}

		refOut := out.Alloc()
		if refIn != 0 {
			copier.Redirect(refIn, refOut)
		}

		if err := treeOut.AppendPageRef(refOut, pageOut); err != nil {
			return fmt.Errorf("failed to append page %d: %w", pageNo+1, err)
		}
	}

	treeRef, err := treeOut.Close()
	if err != nil {
		return fmt.Errorf("failed to close page tree: %w", err)
	}

	out.GetMeta().Catalog.Pages = treeRef
	return nil
}
