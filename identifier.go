package ifpatch

import (
	"strconv"
	"strings"
)

// Identifier derives the story identifier used to match runtime patches to a
// build. Serials starting with '8' are unique per release, so the checksum is
// left out for them.
func Identifier(release uint16, serial Serial, checksum uint16) string {
	id := strconv.FormatUint(uint64(release), 10) + "-" + serial.String()
	if strings.HasPrefix(serial.String(), "8") {
		return id
	}
	return id + "-" + strconv.FormatUint(uint64(checksum), 16)
}

// Identifier returns the story identifier of p.
func (p Patch) Identifier() string {
	return Identifier(p.Release, p.Serial, p.Checksum)
}
