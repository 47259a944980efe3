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
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// DefaultConfigFile is the configuration file name used when the user does
// not specify one.
const DefaultConfigFile = "metadata.json"

// Config is the list of metadata fields read from a configuration file,
// in the order they appear in the file.
type Config []Field

// A Field is a single key/value pair from the configuration file.
type Field struct {
	Key   string
	Value Value
}

// LoadConfig reads a metadata configuration from a JSON file.
//
// The top-level JSON value must be an object.  The order of the object's
// fields is preserved, so that diagnostics about individual fields can be
// reported in the order the user wrote them.
//
// If the file does not exist, the returned error satisfies
// errors.Is(err, fs.ErrNotExist).  If the file is not valid JSON, the
// returned error is of type [*MalformedConfigError].
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := parseConfig(data)
	if err != nil {
		mErr := &MalformedConfigError{Path: path, Err: err}
		var sErr *json.SyntaxError
		if errors.As(err, &sErr) {
			mErr.Pos = sErr.Offset
		}
		return nil, mErr
	}
	return cfg, nil
}

func parseConfig(data []byte) (Config, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a JSON object, found %s", tokenName(tok))
	}

	var cfg Config
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key := tok.(string)

		var val Value
		if err := dec.Decode(&val); err != nil {
			return nil, err
		}
		cfg = append(cfg, Field{Key: key, Value: val})
	}
	if _, err := dec.Token(); err != nil { // closing "}"
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after top-level object")
	}
	return cfg, nil
}

func tokenName(tok json.Token) string {
	switch tok := tok.(type) {
	case json.Delim:
		return string(tok)
	case string:
		return "a string"
	case float64:
		return "a number"
	case bool:
		return strconv.FormatBool(tok)
	case nil:
		return "null"
	}
	return fmt.Sprintf("%v", tok)
}

// MalformedConfigError indicates that a configuration file could not be
// parsed as JSON.
type MalformedConfigError struct {
	Path string
	Err  error
	Pos  int64
}

func (err *MalformedConfigError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Pos > 0 {
		tail = " (at byte " + strconv.FormatInt(err.Pos, 10) + ")"
	}
	return "invalid JSON in " + err.Path + middle + tail
}

func (err *MalformedConfigError) Unwrap() error {
	return err.Err
}
