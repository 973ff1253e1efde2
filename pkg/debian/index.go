package debian

import (
	"context"

	"github.com/go-logr/logr"
)

// Dependencies returns the direct dependencies of pkg from the given
// control-file content. The first block whose Package field equals
// pkg is used; later duplicates are ignored. A NotFoundError is
// returned if no block matches.
func Dependencies(ctx context.Context, content, pkg string) ([]string, error) {
	log := logr.FromContextOrDiscard(ctx).WithValues("pkg", pkg)
	for i, block := range Blocks(content) {
		r := ParseRecord(block)
		if r.Package == "" || r.Package != pkg {
			continue
		}
		deps := r.DependencyNames()
		log.V(3).Info("found package match", "block", i, "deps", len(deps))
		return deps, nil
	}
	log.V(1).Info("failed to locate package")
	return nil, &NotFoundError{Kind: KindPackage, Name: pkg}
}

// NewIndex parses every block of content up front so that
// repeated lookups do not rescan the file.
func NewIndex(ctx context.Context, source, content string) *Index {
	log := logr.FromContextOrDiscard(ctx).WithValues("source", source)
	idx := &Index{
		packages: map[string]Record{},
		source:   source,
	}
	for _, block := range Blocks(content) {
		r := ParseRecord(block)
		if r.Package == "" {
			continue
		}
		// skip duplicate packages
		if _, ok := idx.packages[r.Package]; ok {
			log.V(4).Info("skipping duplicate package", "name", r.Package)
			continue
		}
		idx.packages[r.Package] = r
		idx.order = append(idx.order, r.Package)
	}
	log.V(1).Info("successfully decoded index", "count", len(idx.order))
	return idx
}

func (idx *Index) Count() int {
	return len(idx.order)
}

func (idx *Index) Source() string {
	return idx.source
}

// Names returns the package names in document order.
func (idx *Index) Names() []string {
	out := make([]string, len(idx.order))
	copy(out, idx.order)
	return out
}

// Dependencies behaves the same as the package-level Dependencies
// function.
func (idx *Index) Dependencies(ctx context.Context, pkg string) ([]string, error) {
	r, ok := idx.packages[pkg]
	if !ok {
		logr.FromContextOrDiscard(ctx).V(1).Info("failed to locate package", "pkg", pkg, "source", idx.source)
		return nil, &NotFoundError{Kind: KindPackage, Name: pkg}
	}
	return r.DependencyNames(), nil
}
