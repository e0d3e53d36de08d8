package wire

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// tomlDocument is the TOML layout: an array of tables named "patches".
type tomlDocument struct {
	Patches *[]Patch `toml:"patches"`
}

// DecodeTOML decodes a TOML document with [[patches]] tables.
func DecodeTOML(data []byte) (Result, error) {
	var doc tomlDocument
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return Result{}, fmt.Errorf("toml: %w", err)
	}
	if doc.Patches == nil {
		return Result{}, fmt.Errorf("toml: %w", ErrNoSequence)
	}
	return Result{Patches: *doc.Patches}, nil
}
