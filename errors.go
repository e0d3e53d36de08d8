package ifpatch

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes
const (
	CodeRequired       = "required"
	CodeDuplicateKey   = "duplicate_key"
	CodeTooSmall       = "too_small"
	CodeTooBig         = "too_big"
	CodeTooShort       = "too_short"
	CodeTooLong        = "too_long"
	CodeParseError     = "parse_error"
	CodeTruncated      = "truncated"
	CodeLengthMismatch = "length_mismatch"
)

// Issue represents a single problem found in a patch configuration.
type Issue struct {
	Path    string // JSON Pointer (for example: /2/replacements/0/addr).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
}

func (it Issue) String() string {
	if it.Message == "" {
		return fmt.Sprintf("%s at %s", it.Code, it.Path)
	}
	return fmt.Sprintf("%s at %s: %s", it.Code, it.Path, it.Message)
}

// Issues is a collection of configuration errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// AsIssues extracts Issues from an error using errors.As internally. A
// *LengthMismatchError is projected to a single issue.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	var lm *LengthMismatchError
	if errors.As(err, &lm) {
		return Issues{lm.Issue()}, true
	}
	return nil, false
}
