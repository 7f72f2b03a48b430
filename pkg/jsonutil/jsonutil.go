// Package jsonutil wraps github.com/go-json-experiment/json behind an
// encoding/json-shaped API. All JSON in this repo (inventory and history
// data files, audit report output) goes through here so the codec can be
// swapped in one place.
package jsonutil

import (
	"io"
	"os"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/passaudit/passaudit/pkg/defaults"
)

// Unmarshal parses the JSON-encoded data and stores the result in v.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Marshal returns the JSON encoding of v.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// MarshalIndent returns the indented JSON encoding of v.
func MarshalIndent(v any, indent string) ([]byte, error) {
	return json.Marshal(v, jsontext.WithIndent(indent))
}

// Valid reports whether data is a valid JSON encoding.
func Valid(data []byte) bool {
	return jsontext.Value(data).IsValid()
}

// ReadFile reads path and unmarshals its contents into v.
func ReadFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// WriteFile marshals v with standard indentation and writes it to path
// with the repo's data-file permissions. A failed marshal never
// truncates path.
func WriteFile(path string, v any) error {
	data, err := json.Marshal(v, jsontext.WithIndent(defaults.JSONIndent))
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), defaults.FilePerm)
}

// Encoder provides a streaming JSON encoder compatible with
// encoding/json.Encoder.
type Encoder struct {
	w      io.Writer
	indent string
}

// NewStreamEncoder creates an encoder that writes to w.
func NewStreamEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the JSON encoding of v to the stream, followed by a
// newline, matching encoding/json.Encoder.Encode behavior.
func (e *Encoder) Encode(v any) error {
	var err error
	if e.indent != "" {
		err = json.MarshalWrite(e.w, v, jsontext.WithIndent(e.indent))
	} else {
		err = json.MarshalWrite(e.w, v)
	}
	if err != nil {
		return err
	}
	_, err = e.w.Write([]byte{'\n'})
	return err
}

// SetIndent instructs the encoder to format each subsequent encoded
// value with the given indentation.
func (e *Encoder) SetIndent(indent string) {
	e.indent = indent
}
