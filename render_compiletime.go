package ifpatch

import "fmt"

// CompileTimeRenderer emits one brace-delimited initializer per patch,
// suitable for inclusion in a C array of patch descriptors.
type CompileTimeRenderer struct{}

func (CompileTimeRenderer) Mode() Mode { return ModeCompileTime }

func (CompileTimeRenderer) Lines(patches []Patch) []string {
	var lines []string
	for _, p := range patches {
		lines = append(lines,
			"{",
			fmt.Sprintf(`    "%s", "%s", %d, 0x%x,`, p.Title, p.Serial, p.Release, p.Checksum),
			"    {",
		)
		for _, r := range p.Replacements {
			lines = append(lines,
				"        {",
				fmt.Sprintf("            0x%x, %d,", r.Addr, len(r.Before)),
				"            {"+compileTimeBytes(r.Before)+"},",
				"            {"+compileTimeBytes(r.After)+"},",
				"        },",
			)
		}
		lines = append(lines, "    },", "},")
	}
	return lines
}

func compileTimeBytes(b []byte) string { return joinBytes(b, "0x%02x", ", ") }
