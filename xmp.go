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
	"time"

	"golang.org/x/text/language"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/xmp"
)

// PDF 2.0 sections: 14.3.2

// pdfNamespace is the XMP namespace for PDF properties.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type pdfNamespace struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Keywords xmp.Text
	Producer xmp.AgentName
}

// buildXMPPacket converts a document information dictionary into the
// equivalent XMP properties: Dublin Core for title, author and subject,
// the PDF namespace for keywords and producer, and XMP Basic for the
// dates.
func buildXMPPacket(info *pdf.Info) (*xmp.Packet, error) {
	xDefault := language.MustParse("x-default")

	dc := &xmp.DublinCore{}
	if info.Title != "" {
		dc.Title.Set(xDefault, string(info.Title))
	}
	if info.Author != "" {
		dc.Creator.Append(xmp.NewProperName(string(info.Author)))
	}
	if info.Subject != "" {
		dc.Description.Set(xDefault, string(info.Subject))
	}

	basic := &xmp.Basic{}
	if !time.Time(info.CreationDate).IsZero() {
		basic.CreateDate = xmp.NewDate(time.Time(info.CreationDate))
	}
	if !time.Time(info.ModDate).IsZero() {
		basic.ModifyDate = xmp.NewDate(time.Time(info.ModDate))
	}
	if info.Creator != "" {
		basic.CreatorTool = xmp.NewAgentName(string(info.Creator))
	}

	pdfNS := &pdfNamespace{}
	if info.Keywords != "" {
		pdfNS.Keywords = xmp.NewText(string(info.Keywords))
	}
	if info.Producer != "" {
		pdfNS.Producer = xmp.NewAgentName(string(info.Producer))
	}

	packet := xmp.NewPacket()
	if err := packet.Set(dc, basic, pdfNS); err != nil {
		return nil, err
	}
	return packet, nil
}

// embedXMP writes an XMP metadata stream describing info to w and
// registers it in the document catalog.
func embedXMP(w *pdf.Writer, info *pdf.Info) error {
	packet, err := buildXMPPacket(info)
	if err != nil {
		return err
	}

	ref := w.Alloc()
	dict := pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	}
	body, err := w.OpenStream(ref, dict, pdf.FilterFlate{})
	if err != nil {
		return err
	}
	if err := packet.Write(body, nil); err != nil {
		return err
	}
	if err := body.Close(); err != nil {
		return err
	}

	w.GetMeta().Catalog.Metadata = ref
	return nil
}
