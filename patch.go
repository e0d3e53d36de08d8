package ifpatch

import "fmt"

// SerialLen is the fixed length of a story file serial number.
const SerialLen = 6

// Replacement is a single byte-range edit at Addr. Before and After are
// expected to have equal length; Validate checks this for a whole batch.
type Replacement struct {
	Addr   uint32
	Before []byte
	After  []byte
}

// Patch is a named set of replacements for one story file build, identified
// by release, serial and checksum.
type Patch struct {
	Title        string
	Serial       Serial
	Release      uint16
	Checksum     uint16
	Replacements []Replacement
}

// Serial is a story file serial number. Values are built with NewSerial and
// always hold exactly SerialLen bytes.
type Serial struct {
	s string
}

// NewSerial returns a Serial for s, or a *ShapeError when s is not exactly
// SerialLen bytes long.
func NewSerial(s string) (Serial, error) {
	if len(s) != SerialLen {
		return Serial{}, &ShapeError{Field: "serial", Value: s, Want: SerialLen}
	}
	return Serial{s: s}, nil
}

// MustSerial is like NewSerial but panics on error.
func MustSerial(s string) Serial {
	v, err := NewSerial(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (s Serial) String() string { return s.s }

// ShapeError reports a field whose length does not match its fixed width.
type ShapeError struct {
	Field string
	Value string
	Want  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s %q must be %d characters", e.Field, e.Value, e.Want)
}
