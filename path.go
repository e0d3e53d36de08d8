package ifpatch

import (
	"strconv"
	"strings"
)

// Path is a JSON Pointer into a patch configuration document. The zero value
// is the document root.
type Path string

// Field appends an object member; '~' and '/' are escaped per RFC 6901.
func (p Path) Field(name string) Path {
	return p + "/" + Path(strings.NewReplacer("~", "~0", "/", "~1").Replace(name))
}

// Index appends an array position.
func (p Path) Index(i int) Path {
	return p + "/" + Path(strconv.Itoa(i))
}

func (p Path) String() string {
	if p == "" {
		return "/"
	}
	return string(p)
}

func (p Path) issue(code, msg string) Issue {
	return Issue{Path: p.String(), Code: code, Message: msg}
}
