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

// Package pdfmeta merges metadata from a JSON configuration file into the
// Document Information Dictionary of a PDF file.
//
// The configuration file maps the field names Title, Author, Subject,
// Creator, Producer and Keywords to string values.  These values are merged
// with the metadata already present in a PDF file, and a new PDF file is
// written with all pages copied verbatim and the merged metadata installed.
// Fields not named in the configuration survive unchanged; the creation
// date is preserved if present, and the modification date is updated on
// every run.
package pdfmeta
