package wire

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes a YAML document holding a sequence of patch records.
// yaml.v3 already rejects duplicate mapping keys.
func DecodeYAML(data []byte) (Result, error) {
	var patches *[]Patch
	if err := yaml.Unmarshal(data, &patches); err != nil {
		return Result{}, fmt.Errorf("yaml: %w", err)
	}
	if patches == nil {
		return Result{}, fmt.Errorf("yaml: %w", ErrNoSequence)
	}
	return Result{Patches: *patches}, nil
}
