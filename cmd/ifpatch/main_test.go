package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fixture(name string) string { return filepath.Join("..", "..", "testdata", name) }

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Runtime(t *testing.T) {
	code, out, errOut := runCLI(t, "-mode", "runtime", "-config", fixture("patches.json"))
	if code != exitOK {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	want := "# Demo\n[1-012345-10]\n0x100 2 [01 02] [03 04]\n\n" +
		"# Second\n[22-870915]\n0x10000 1 [ff] [00]\n0x10 0 [] []\n\n"
	if out != want {
		t.Fatalf("got:\n%q\nwant:\n%q", out, want)
	}
}

func TestRun_CompileTimeLegacyModeYAML(t *testing.T) {
	code, out, errOut := runCLI(t, "-mode", "bocfel-compiletime", "-config", fixture("patches.yaml"))
	if code != exitOK {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if !strings.HasPrefix(out, "{\n    \"Demo\", \"012345\", 1, 0x10,\n") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.HasSuffix(out, "    },\n},\n") {
		t.Fatalf("unexpected tail:\n%s", out)
	}
}

func TestRun_OutputFile(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "patches.txt")
	code, out, errOut := runCLI(t, "-mode", "runtime", "-config", fixture("patches.toml"), "-o", dst)
	if code != exitOK {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if out != "" {
		t.Fatalf("expected nothing on stdout, got %q", out)
	}
	b, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(b), "# Demo\n[1-012345-10]\n") {
		t.Fatalf("unexpected file contents %q", b)
	}
}

func TestRun_LengthMismatch(t *testing.T) {
	code, out, errOut := runCLI(t, "-mode", "runtime", "-config", fixture("mismatch.json"))
	if code != exitFailure {
		t.Fatalf("expected exit %d, got %d", exitFailure, code)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
	if !strings.Contains(errOut, "replacement at addr 48 for Broken has length mismatch") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}

func TestRun_LoadFailure(t *testing.T) {
	code, out, _ := runCLI(t, "-mode", "runtime", "-config", fixture("missing.json"))
	if code != exitFailure || out != "" {
		t.Fatalf("expected failure without output, got %d %q", code, out)
	}
}

func TestRun_Usage(t *testing.T) {
	if code, _, _ := runCLI(t); code != exitUsage {
		t.Fatalf("missing mode: got %d", code)
	}
	if code, _, _ := runCLI(t, "-mode", "sideways"); code != exitUsage {
		t.Fatalf("bad mode: got %d", code)
	}
	if code, _, _ := runCLI(t, "-mode", "runtime", "extra"); code != exitUsage {
		t.Fatalf("extra args: got %d", code)
	}
}

func TestRun_VerboseLogsReachStderr(t *testing.T) {
	code, _, errOut := runCLI(t, "-mode", "runtime", "-v", "-config", fixture("patches.json"))
	if code != exitOK {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	for _, want := range []string{
		"reading " + fixture("patches.json") + " as json",
		"decoded 2 raw patch records",
		"rendered 2 patches from " + fixture("patches.json") + " in runtime mode",
	} {
		if !strings.Contains(errOut, want) {
			t.Fatalf("stderr missing %q:\n%s", want, errOut)
		}
	}
}

func TestRun_DefaultVerbosityLogsSummaryOnly(t *testing.T) {
	code, _, errOut := runCLI(t, "-mode", "compiletime", "-config", fixture("patches.toml"))
	if code != exitOK {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if !strings.Contains(errOut, "rendered 2 patches") {
		t.Fatalf("expected notice summary on stderr, got %q", errOut)
	}
	if strings.Contains(errOut, "decoded") {
		t.Fatalf("debug lines should be filtered without -v: %q", errOut)
	}
}

func TestRun_ShapeIssuesReported(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "bad.json")
	doc := `[{"title": "a", "serial": "123456", "release": 70000, "checksum": 1, "replacements": []}]`
	if err := os.WriteFile(cfg, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	code, out, errOut := runCLI(t, "-mode", "runtime", "-config", cfg)
	if code != exitFailure || out != "" {
		t.Fatalf("expected failure without output, got %d %q", code, out)
	}
	if !strings.Contains(errOut, "ifpatch: too_big at /0/release: 70000 exceeds 65535\n") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}

func TestRun_NullDocument(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "null.json")
	if err := os.WriteFile(cfg, []byte("null\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	code, out, errOut := runCLI(t, "-mode", "runtime", "-config", cfg)
	if code != exitFailure || out != "" {
		t.Fatalf("expected failure without output, got %d %q", code, out)
	}
	if !strings.Contains(errOut, "parse_error at /") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}
