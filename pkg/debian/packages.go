package debian

import (
	"strings"
)

const (
	blockSeparator = "\n\n"

	fieldPackage = "Package: "
	fieldDepends = "Depends: "
)

// Blocks splits the content of a control file into blocks
// separated by a blank line. Blocks containing only whitespace
// are dropped. CRLF line endings are treated as LF.
func Blocks(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var out []string
	for _, block := range strings.Split(content, blockSeparator) {
		if strings.TrimSpace(block) == "" {
			continue
		}
		out = append(out, block)
	}
	return out
}

// ParseRecord extracts the Package and Depends fields from a block.
// Fields are recognised by their exact "Name: " prefix and a field
// that appears more than once keeps its last value. Every other
// line is ignored.
func ParseRecord(block string) Record {
	var r Record
	for _, line := range strings.Split(block, "\n") {
		switch {
		case strings.HasPrefix(line, fieldPackage):
			r.Package = strings.TrimSpace(strings.TrimPrefix(line, fieldPackage))
		case strings.HasPrefix(line, fieldDepends):
			r.Depends = strings.TrimSpace(strings.TrimPrefix(line, fieldDepends))
			r.HasDepends = true
		}
	}
	return r
}

// DependencyNames returns the package names listed in the Depends
// field in the order they are written. Version constraints are
// removed by cutting each entry at its first '('.
//
// https://www.debian.org/doc/debian-policy/ch-relationships.html
func (r *Record) DependencyNames() []string {
	out := []string{}
	if !r.HasDepends || strings.TrimSpace(r.Depends) == "" {
		return out
	}
	for _, token := range strings.Split(r.Depends, ",") {
		if name := DependencyName(token); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// DependencyName normalises a single entry of a Depends field,
// e.g. "libc6 (>= 2.34)" becomes "libc6".
func DependencyName(s string) string {
	name, _, _ := strings.Cut(strings.TrimSpace(s), "(")
	return strings.TrimSpace(name)
}
