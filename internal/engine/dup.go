// Package engine holds token-level helpers shared by the configuration
// decoders.
package engine

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"
)

// SimpleIssue is a minimal issue representation used by internal helpers.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type dupFrame struct {
	kind         containerKind
	path         string
	keys         map[string]struct{}
	expectingKey bool
	key          string
	nextIndex    int
}

// DetectDuplicateKeys walks the JSON tokens in data and reports every object
// key that appears more than once in the same object. maxIssues < 0 means
// unlimited; >0 stops after that many issues and appends a truncated marker.
// A syntax error stops the walk and is returned together with the issues
// found so far.
func DetectDuplicateKeys(data []byte, maxIssues int) ([]SimpleIssue, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var issues []SimpleIssue
	var stack []dupFrame

	// valuePath returns the pointer of the value about to be read.
	valuePath := func() string {
		if len(stack) == 0 {
			return ""
		}
		top := &stack[len(stack)-1]
		if top.kind == kindArray {
			p := joinPointer(top.path, strconv.Itoa(top.nextIndex))
			top.nextIndex++
			return p
		}
		return joinPointer(top.path, top.key)
	}
	valueDone := func() {
		if len(stack) == 0 {
			return
		}
		top := &stack[len(stack)-1]
		if top.kind == kindObject {
			top.expectingKey = true
		}
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return issues, nil
		}
		if err != nil {
			return issues, err
		}

		switch v := tok.(type) {
		case j.Delim:
			switch v {
			case '{':
				stack = append(stack, dupFrame{kind: kindObject, path: valuePath(), keys: make(map[string]struct{}), expectingKey: true})
			case '[':
				stack = append(stack, dupFrame{kind: kindArray, path: valuePath()})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				valueDone()
			}
		case string:
			if len(stack) > 0 {
				top := &stack[len(stack)-1]
				if top.kind == kindObject && top.expectingKey {
					if _, ok := top.keys[v]; ok {
						issues = append(issues, SimpleIssue{
							Code:    "duplicate_key",
							Path:    Pointer(joinPointer(top.path, v)),
							Message: "key '" + v + "' duplicated",
						})
						if maxIssues > 0 && len(issues) >= maxIssues {
							issues = append(issues, SimpleIssue{Code: "truncated", Path: "/", Message: "max issues reached"})
							return issues, nil
						}
					}
					top.keys[v] = struct{}{}
					top.key = v
					top.expectingKey = false
					continue
				}
			}
			valuePath()
			valueDone()
		default:
			valuePath()
			valueDone()
		}
	}
}

// Pointer renders a path built by joinPointer, using "/" for the root.
func Pointer(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

func joinPointer(base, token string) string {
	esc := strings.ReplaceAll(strings.ReplaceAll(token, "~", "~0"), "/", "~1")
	return base + "/" + esc
}
