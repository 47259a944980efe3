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

	"seehuhn.de/go/pdf"
)

// PDF 2.0 sections: 14.3.3

// FieldNames lists the configuration keys which map to standard entries of
// the Document Information Dictionary.  The keys are case-sensitive;
// configuration fields with any other name are ignored by [Merge].
var FieldNames = []string{
	"Title",
	"Author",
	"Subject",
	"Creator",
	"Producer",
	"Keywords",
}

// A Report describes the effect of a call to [Merge].
type Report struct {
	// Set lists the recognized fields which were applied, in the order
	// they appear in the configuration.
	Set []FieldChange

	// Unknown lists the configuration keys which were ignored because
	// they do not name a standard metadata field, in the order they
	// appear in the configuration.
	Unknown []string
}

// A FieldChange records one metadata field set by [Merge].
type FieldChange struct {
	Field string
	Value string
}

// Merge combines the metadata already present in a PDF file with the
// fields from a configuration file.
//
// The result starts as a copy of existing (nil is treated as an empty
// information dictionary), so that entries not named in the configuration
// are carried over unchanged.  Recognized configuration fields, listed in
// [FieldNames], overwrite the corresponding entries.  Unrecognized fields
// never reach the result; they are reported via the returned [Report].
//
// After all fields are applied, the creation date is set to now unless the
// document already has one, and the modification date is set to now
// unconditionally.  The timestamp is truncated to second precision, the
// resolution of PDF date strings.
//
// Merge does not modify existing.
func Merge(existing *pdf.Info, cfg Config, now time.Time) (*pdf.Info, *Report) {
	info := &pdf.Info{}
	if existing != nil {
		*info = *existing
		if existing.Custom != nil {
			info.Custom = make(map[string]string, len(existing.Custom))
			for key, val := range existing.Custom {
				info.Custom[key] = val
			}
		}
	}

	report := &Report{}
	for _, f := range cfg {
		var dst *pdf.TextString
		switch f.Key {
		case "Title":
			dst = &info.Title
		case "Author":
			dst = &info.Author
		case "Subject":
			dst = &info.Subject
		case "Creator":
			dst = &info.Creator
		case "Producer":
			dst = &info.Producer
		case "Keywords":
			dst = &info.Keywords
		default:
			report.Unknown = append(report.Unknown, f.Key)
			continue
		}
		val := f.Value.String()
		*dst = pdf.TextString(val)
		report.Set = append(report.Set, FieldChange{Field: f.Key, Value: val})
	}

	// PDF date strings carry whole seconds only; the timezone suffix the
	// writer appends does not change the stored instant.
	now = now.Truncate(time.Second)
	if time.Time(info.CreationDate).IsZero() {
		info.CreationDate = pdf.Date(now)
	}
	info.ModDate = pdf.Date(now)

	return info, report
}
