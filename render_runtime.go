package ifpatch

import "fmt"

// RuntimeRenderer emits the plain-text patch listing:
//
//	# Title
//	[release-serial-checksum]
//	0xaddr count [in bytes] [out bytes]
//
// with a blank line after each patch.
type RuntimeRenderer struct{}

func (RuntimeRenderer) Mode() Mode { return ModeRuntime }

func (RuntimeRenderer) Lines(patches []Patch) []string {
	var lines []string
	for _, p := range patches {
		lines = append(lines, "# "+p.Title, "["+p.Identifier()+"]")
		for _, r := range p.Replacements {
			lines = append(lines, fmt.Sprintf("0x%x %d [%s] [%s]",
				r.Addr, len(r.Before), runtimeBytes(r.Before), runtimeBytes(r.After)))
		}
		lines = append(lines, "")
	}
	return lines
}

func runtimeBytes(b []byte) string { return joinBytes(b, "%02x", " ") }
