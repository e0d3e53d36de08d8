package wire

import (
	"fmt"

	j "github.com/goccy/go-json"

	"github.com/reoring/ifpatch/internal/engine"
	"github.com/reoring/ifpatch/internal/jsonc"
)

// maxDuplicateIssues caps duplicate key reporting for one document.
const maxDuplicateIssues = 20

// DecodeJSON decodes a JSON document that may contain comments. The document
// must be an array of patch records. Duplicate object keys are reported as
// issues and the records are not decoded.
func DecodeJSON(data []byte) (Result, error) {
	clean, err := jsonc.Strip(data)
	if err != nil {
		return Result{}, err
	}
	dups, err := engine.DetectDuplicateKeys(clean, maxDuplicateIssues)
	if err != nil {
		return Result{}, fmt.Errorf("json: %w", err)
	}
	if len(dups) > 0 {
		res := Result{}
		for _, d := range dups {
			res.Issues = append(res.Issues, Issue{Code: d.Code, Path: d.Path, Message: d.Message})
		}
		return res, nil
	}
	var patches *[]Patch
	if err := j.Unmarshal(clean, &patches); err != nil {
		return Result{}, fmt.Errorf("json: %w", err)
	}
	if patches == nil {
		return Result{}, fmt.Errorf("json: %w", ErrNoSequence)
	}
	return Result{Patches: *patches}, nil
}
