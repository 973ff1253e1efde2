// Package mockrepo renders a small YAML description of a package
// repository into a Debian control file so that it can be
// processed like a real index.
//
// The YAML document is a mapping of package names to the list of
// their dependencies:
//
//	A: [B, C]
//	B: [D]
//	C: []
//	D:
package mockrepo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/djcass44/debdeps/pkg/debian"
	"github.com/go-logr/logr"
	"gopkg.in/yaml.v3"
	"pault.ag/go/debian/control"
)

// Package is a single entry of a mock repository.
type Package struct {
	Name    string
	Depends []string
}

type stanza struct {
	Package string
	Depends string
}

// Read loads the repository at path and returns it as the
// content of a control file.
func Read(ctx context.Context, path string) (string, error) {
	log := logr.FromContextOrDiscard(ctx).WithValues("path", path)

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", &debian.NotFoundError{Kind: debian.KindFile, Name: path}
		}
		return "", err
	}
	pkgs, err := Parse(data)
	if err != nil {
		return "", &debian.DecodeError{Source: path, Err: err}
	}
	log.V(1).Info("loaded mock repository", "count", len(pkgs))
	return Render(pkgs)
}

// Parse decodes the YAML mapping in data. Packages are returned
// in the order they are written.
func Parse(data []byte) ([]Package, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	// an empty document
	if len(root.Content) == 0 {
		return nil, nil
	}
	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of package names to dependencies", mapping.Line)
	}

	var out []Package
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i], mapping.Content[i+1]
		var deps []string
		if err := value.Decode(&deps); err != nil {
			return nil, fmt.Errorf("line %d: decoding dependencies of %q: %w", value.Line, key.Value, err)
		}
		out = append(out, Package{
			Name:    key.Value,
			Depends: deps,
		})
	}
	return out, nil
}

// Render writes pkgs in the control file format, one block per
// package.
func Render(pkgs []Package) (string, error) {
	var out strings.Builder
	for i, p := range pkgs {
		var buf bytes.Buffer
		if err := control.Marshal(&buf, stanza{
			Package: p.Name,
			Depends: strings.Join(p.Depends, ", "),
		}); err != nil {
			return "", fmt.Errorf("encoding %s: %w", p.Name, err)
		}
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(strings.TrimRight(buf.String(), "\n"))
		out.WriteString("\n")
	}
	return out.String(), nil
}
