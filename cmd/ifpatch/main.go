package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tliron/commonlog"
	"github.com/tliron/commonlog/simple"
	"github.com/tliron/kutil/util"

	"github.com/reoring/ifpatch"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var log = commonlog.GetLogger("ifpatch")

func main() {
	util.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// configureLogging routes all loggers to w. The backend is unbuffered so that
// nothing is lost when the process exits right after run returns.
func configureLogging(w io.Writer, verbose bool) {
	verbosity := 0
	if verbose {
		verbosity = 2
	}
	backend := simple.NewBackend()
	backend.Buffered = false
	backend.Configure(verbosity, nil)
	backend.Writer = util.NewSyncedWriter(w)
	commonlog.SetBackend(backend)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ifpatch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		mode    ifpatch.Mode
		format  ifpatch.Format
		config  string
		out     string
		verbose bool
	)
	fs.Var(&mode, "mode", "output mode: runtime or compiletime")
	fs.Var(&format, "format", "config format: auto, json, yaml or toml")
	fs.StringVar(&config, "config", "../patches.json", "patch configuration file")
	fs.StringVar(&out, "o", "", "output filename (stdout if empty)")
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage:\n  ifpatch -mode runtime|compiletime [-config patches.json] [-format auto] [-o out] [-v]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	modeSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "mode" {
			modeSet = true
		}
	})
	if !modeSet || fs.NArg() > 0 {
		fs.Usage()
		return exitUsage
	}

	configureLogging(stderr, verbose)

	patches, err := ifpatch.LoadFile(ctx, config, format)
	if err != nil {
		report(stderr, err)
		return exitFailure
	}
	if err := ifpatch.Validate(patches); err != nil {
		report(stderr, err)
		return exitFailure
	}
	r, err := ifpatch.RendererFor(mode)
	if err != nil {
		report(stderr, err)
		return exitFailure
	}

	if out == "" {
		if err := ifpatch.Write(stdout, r, patches); err != nil {
			report(stderr, err)
			return exitFailure
		}
	} else {
		var buf bytes.Buffer
		if err := ifpatch.Write(&buf, r, patches); err != nil {
			report(stderr, err)
			return exitFailure
		}
		if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
			report(stderr, fmt.Errorf("writing output: %w", err))
			return exitFailure
		}
	}
	log.Noticef("rendered %d patches from %s in %s mode", len(patches), config, mode)
	return exitOK
}

func report(w io.Writer, err error) {
	if iss, ok := ifpatch.AsIssues(err); ok {
		for _, it := range iss {
			fmt.Fprintf(w, "ifpatch: %s\n", it)
		}
		return
	}
	fmt.Fprintf(w, "ifpatch: %v\n", err)
}
