package ifpatch

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Mode selects an output format.
type Mode int

const (
	ModeRuntime     Mode = iota // Readable listing loaded by the interpreter at startup.
	ModeCompileTime             // Literal table compiled into the interpreter.
)

func (m Mode) String() string {
	switch m {
	case ModeRuntime:
		return "runtime"
	case ModeCompileTime:
		return "compiletime"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses a mode name. The bocfel- prefixed names are accepted as
// aliases.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "runtime", "bocfel-runtime":
		return ModeRuntime, nil
	case "compiletime", "bocfel-compiletime":
		return ModeCompileTime, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want runtime or compiletime)", s)
}

// Set implements flag.Value.
func (m *Mode) Set(s string) error {
	v, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Renderer turns a validated batch into output lines. Implementations are
// stateless; rendering the same batch twice yields the same lines.
type Renderer interface {
	Mode() Mode
	Lines(patches []Patch) []string
}

// RendererFor returns the renderer for m.
func RendererFor(m Mode) (Renderer, error) {
	switch m {
	case ModeRuntime:
		return RuntimeRenderer{}, nil
	case ModeCompileTime:
		return CompileTimeRenderer{}, nil
	}
	return nil, fmt.Errorf("no renderer for %v", m)
}

// Write renders patches with r and writes each line followed by a newline.
func Write(w io.Writer, r Renderer, patches []Patch) error {
	bw := bufio.NewWriter(w)
	for _, line := range r.Lines(patches) {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// joinBytes formats each byte with format and joins the results with sep.
func joinBytes(b []byte, format, sep string) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf(format, v)
	}
	return strings.Join(parts, sep)
}
