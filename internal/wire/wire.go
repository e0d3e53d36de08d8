// Package wire decodes patch configuration documents into raw records.
//
// Raw records keep every field behind a pointer so that absent and null
// fields can be told apart from zero values. Numbers are decoded as int64 and
// range checked by the caller.
package wire

import "errors"

// ErrNoSequence is returned when a document holds no patch list, e.g. a JSON
// null or an empty YAML file.
var ErrNoSequence = errors.New("expected a sequence of patch records")

// Replacement is a raw replacement record.
type Replacement struct {
	Addr *int64   `json:"addr" yaml:"addr" toml:"addr"`
	In   *[]int64 `json:"in" yaml:"in" toml:"in"`
	Out  *[]int64 `json:"out" yaml:"out" toml:"out"`
}

// Patch is a raw patch record.
type Patch struct {
	Title        *string        `json:"title" yaml:"title" toml:"title"`
	Serial       *string        `json:"serial" yaml:"serial" toml:"serial"`
	Release      *int64         `json:"release" yaml:"release" toml:"release"`
	Checksum     *int64         `json:"checksum" yaml:"checksum" toml:"checksum"`
	Replacements *[]Replacement `json:"replacements" yaml:"replacements" toml:"replacements"`
}

// Issue is a problem detected while decoding, located by JSON Pointer.
type Issue struct {
	Code    string
	Path    string
	Message string
}

// Result is the output of a decoder. Issues are non-fatal findings (such as
// duplicate keys) that still make the document unusable.
type Result struct {
	Patches []Patch
	Issues  []Issue
}
