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
	"encoding/json"
)

// Value is a single JSON value from the configuration file.
//
// Metadata values are normally strings, but the configuration file may use
// any JSON value; non-string values are coerced to text by the String
// method before they are stored in the PDF file.
type Value struct {
	raw json.RawMessage
}

// Kind describes the JSON type of a configuration value.
type Kind int

// The possible JSON types of a configuration value.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// UnmarshalJSON implements the [json.Unmarshaler] interface.
func (v *Value) UnmarshalJSON(data []byte) error {
	v.raw = append(v.raw[:0], data...)
	return nil
}

// Kind returns the JSON type of the value.
func (v Value) Kind() Kind {
	if len(v.raw) == 0 {
		return KindNull
	}
	switch v.raw[0] {
	case '"':
		return KindString
	case 't', 'f':
		return KindBool
	case '[':
		return KindArray
	case '{':
		return KindObject
	case 'n':
		return KindNull
	}
	return KindNumber
}

// String returns the textual form of the value, as stored in the PDF
// metadata: strings are decoded, numbers and booleans keep their JSON
// literal form, null becomes "null", and arrays and objects are rendered
// as compact JSON text.
func (v Value) String() string {
	if len(v.raw) == 0 {
		return "null"
	}
	switch v.Kind() {
	case KindString:
		var s string
		if err := json.Unmarshal(v.raw, &s); err == nil {
			return s
		}
	case KindArray, KindObject:
		var buf bytes.Buffer
		if err := json.Compact(&buf, v.raw); err == nil {
			return buf.String()
		}
	}
	return string(v.raw)
}
