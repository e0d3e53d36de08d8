package ifpatch

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/reoring/ifpatch/internal/wire"
)

var loadLog = commonlog.GetLogger("ifpatch.load")

// Format identifies a configuration document format.
type Format int

const (
	FormatAuto Format = iota // Pick from the file extension.
	FormatJSON               // JSON with //, /* */ and # comments.
	FormatYAML
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "json", "jsonc":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("unknown format %q (want auto, json, yaml or toml)", s)
}

// Set implements flag.Value.
func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// DetectFormat picks a format from the extension of path. Unknown extensions
// are treated as JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// LoadFile reads and decodes the patch configuration at path. FormatAuto
// selects the format with DetectFormat.
func LoadFile(ctx context.Context, path string, f Format) ([]Patch, error) {
	if f == FormatAuto {
		f = DetectFormat(path)
	}
	loadLog.Debugf("reading %s as %s", path, f)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	patches, err := DecodeContext(ctx, data, f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return patches, nil
}

// Decode parses a patch configuration document. Every shape problem in the
// document is collected and returned as Issues.
func Decode(data []byte, f Format) ([]Patch, error) {
	return DecodeContext(context.Background(), data, f)
}

// DecodeContext is like Decode and returns the context error if ctx is done
// once the document has been parsed.
func DecodeContext(ctx context.Context, data []byte, f Format) ([]Patch, error) {
	var (
		res wire.Result
		err error
	)
	switch f {
	case FormatJSON, FormatAuto:
		res, err = wire.DecodeJSON(data)
	case FormatYAML:
		res, err = wire.DecodeYAML(data)
	case FormatTOML:
		res, err = wire.DecodeTOML(data)
	default:
		return nil, fmt.Errorf("unsupported format %v", f)
	}
	if err != nil {
		return nil, Issues{Path("").issue(CodeParseError, err.Error())}.withCause(err)
	}
	if len(res.Issues) > 0 {
		var iss Issues
		for _, it := range res.Issues {
			iss = AppendIssues(iss, Issue{Path: it.Path, Code: it.Code, Message: it.Message})
		}
		return nil, iss
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	loadLog.Debugf("decoded %d raw patch records", len(res.Patches))
	patches, iss := fromWire(res.Patches)
	if len(iss) > 0 {
		return nil, iss
	}
	return patches, nil
}

func (iss Issues) withCause(err error) Issues {
	for i := range iss {
		iss[i].Cause = err
	}
	return iss
}

func fromWire(raw []wire.Patch) ([]Patch, Issues) {
	var iss Issues
	patches := make([]Patch, 0, len(raw))
	for i, rp := range raw {
		at := Path("").Index(i)
		var p Patch

		if rp.Title == nil {
			iss = AppendIssues(iss, required(at.Field("title")))
		} else {
			p.Title = *rp.Title
		}

		if rp.Serial == nil {
			iss = AppendIssues(iss, required(at.Field("serial")))
		} else if s, err := NewSerial(*rp.Serial); err != nil {
			code := CodeTooShort
			if len(*rp.Serial) > SerialLen {
				code = CodeTooLong
			}
			iss = AppendIssues(iss, at.Field("serial").issue(code, err.Error()))
		} else {
			p.Serial = s
		}

		if v, it, ok := checkUint(at.Field("release"), rp.Release, math.MaxUint16); ok {
			p.Release = uint16(v)
		} else {
			iss = AppendIssues(iss, it)
		}
		if v, it, ok := checkUint(at.Field("checksum"), rp.Checksum, math.MaxUint16); ok {
			p.Checksum = uint16(v)
		} else {
			iss = AppendIssues(iss, it)
		}

		if rp.Replacements == nil {
			iss = AppendIssues(iss, required(at.Field("replacements")))
		} else {
			p.Replacements = make([]Replacement, 0, len(*rp.Replacements))
			for k, rr := range *rp.Replacements {
				rat := at.Field("replacements").Index(k)
				var r Replacement
				if v, it, ok := checkUint(rat.Field("addr"), rr.Addr, math.MaxUint32); ok {
					r.Addr = uint32(v)
				} else {
					iss = AppendIssues(iss, it)
				}
				var bad Issues
				r.Before, bad = toBytes(rat.Field("in"), rr.In)
				iss = AppendIssues(iss, bad...)
				r.After, bad = toBytes(rat.Field("out"), rr.Out)
				iss = AppendIssues(iss, bad...)
				p.Replacements = append(p.Replacements, r)
			}
		}
		patches = append(patches, p)
	}
	return patches, iss
}

func required(at Path) Issue {
	return at.issue(CodeRequired, "missing field")
}

func checkUint(at Path, v *int64, limit int64) (int64, Issue, bool) {
	switch {
	case v == nil:
		return 0, required(at), false
	case *v < 0:
		return 0, at.issue(CodeTooSmall, fmt.Sprintf("%d is below 0", *v)), false
	case *v > limit:
		return 0, at.issue(CodeTooBig, fmt.Sprintf("%d exceeds %d", *v, limit)), false
	}
	return *v, Issue{}, true
}

func toBytes(at Path, v *[]int64) ([]byte, Issues) {
	if v == nil {
		return nil, Issues{required(at)}
	}
	var iss Issues
	out := make([]byte, len(*v))
	for i, n := range *v {
		b, it, ok := checkUint(at.Index(i), &n, math.MaxUint8)
		if !ok {
			iss = AppendIssues(iss, it)
			continue
		}
		out[i] = byte(b)
	}
	return out, iss
}
