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

// Pdf-meta attaches document metadata from a JSON configuration file to a
// PDF file.  All pages of the input are copied verbatim; the document
// information dictionary is replaced by the merge of the existing metadata
// and the configured fields.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"syscall"

	"golang.org/x/term"

	"seehuhn.de/go/pdfmeta"
	"seehuhn.de/go/pdfmeta/internal/buildinfo"
)

var (
	outputArg string
	configArg string
	passwdArg = flag.String("p", "", "password for encrypted input files")
	xmpArg    = flag.Bool("xmp", false, "also write an XMP metadata stream")
)

func init() {
	flag.StringVar(&outputArg, "output", "",
		"output file name (default: input name with _updated suffix)")
	flag.StringVar(&outputArg, "o", "", "shorthand for -output")
	flag.StringVar(&configArg, "config", pdfmeta.DefaultConfigFile,
		"metadata configuration file")
	flag.StringVar(&configArg, "c", pdfmeta.DefaultConfigFile,
		"shorthand for -config")
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pdf-meta \u2014 attach document metadata to a PDF file\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("pdf-meta"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  pdf-meta [options] <input.pdf>\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  input.pdf   the PDF file to update\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pdf-meta document.pdf\n")
		fmt.Fprintf(os.Stderr, "  pdf-meta -o updated.pdf -c book.json document.pdf\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(inFile string) error {
	if err := pdfmeta.ValidateInput(inFile); err != nil {
		return err
	}

	outFile := outputArg
	if outFile == "" {
		outFile = pdfmeta.DefaultOutputName(inFile)
	}

	fmt.Printf("loading metadata configuration from %q ...\n", configArg)
	cfg, err := pdfmeta.LoadConfig(configArg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("configuration file %q not found", configArg)
		}
		return err
	}
	if len(cfg) == 0 {
		fmt.Println("Warning: no metadata found in configuration file")
	}

	fmt.Println("processing", inFile, "...")
	opt := &pdfmeta.Options{
		ReadPassword: readPassword,
		SyncXMP:      *xmpArg,
	}
	report, err := pdfmeta.UpdateFile(inFile, outFile, cfg, opt)
	if err != nil {
		return err
	}

	for _, c := range report.Set {
		fmt.Printf("Setting %s: %s\n", c.Field, c.Value)
	}
	for _, key := range report.Unknown {
		fmt.Printf("Warning: unknown metadata field %q ignored\n", key)
	}

	fmt.Printf("\nSuccess!  Updated PDF saved as %q.\n\n", outFile)

	// Best-effort confirmation; failures here do not affect the exit code.
	_ = pdfmeta.ShowMetadata(os.Stdout, outFile, nil)

	return nil
}

// readPassword answers password requests for encrypted input files, either
// from the -p flag or by prompting on the terminal.
func readPassword(_ []byte, try int) string {
	if *passwdArg != "" {
		if try == 0 {
			return *passwdArg
		}
		return "" // the password from the command line was wrong
	}
	fmt.Print("password: ")
	passwd, err := term.ReadPassword(syscall.Stdin)
	if err != nil {
		fmt.Println()
		return ""
	}
	fmt.Println("***")
	return string(passwd)
}
