package ifpatch

import "fmt"

// LengthMismatchError reports a replacement whose before and after byte
// sequences differ in length. Patch and Replacement are input positions.
type LengthMismatchError struct {
	Patch       int
	Replacement int
	Title       string
	Addr        uint32
	BeforeLen   int
	AfterLen    int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("replacement at addr %d for %s has length mismatch", e.Addr, e.Title)
}

// Issue projects e onto the issue model.
func (e *LengthMismatchError) Issue() Issue {
	return Path("").Index(e.Patch).Field("replacements").Index(e.Replacement).issue(CodeLengthMismatch,
		fmt.Sprintf("%s (in %d bytes, out %d bytes)", e.Error(), e.BeforeLen, e.AfterLen))
}

// Validate checks that every replacement in patches has matching before and
// after lengths. It stops at the first mismatch in input order.
func Validate(patches []Patch) error {
	for i, p := range patches {
		for j, r := range p.Replacements {
			if len(r.Before) != len(r.After) {
				return &LengthMismatchError{
					Patch:       i,
					Replacement: j,
					Title:       p.Title,
					Addr:        r.Addr,
					BeforeLen:   len(r.Before),
					AfterLen:    len(r.After),
				}
			}
		}
	}
	return nil
}
