package report

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
)

// New creates a report for the lookup of name in content.
func New(name, source, content, filter string, deps []string) *Report {
	if deps == nil {
		deps = []string{}
	}
	return &Report{
		Name:          name,
		ReportVersion: Version,
		Source:        source,
		Integrity:     "sha256:" + Sha256(content),
		Filter:        filter,
		Dependencies:  deps,
	}
}

// Write saves the report as indented JSON.
func (r *Report) Write(ctx context.Context, path string) error {
	log := logr.FromContextOrDiscard(ctx).WithValues("path", path)
	log.Info("exporting report")

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		log.Error(err, "failed to create report")
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "\t")
	return enc.Encode(r)
}

// Read loads a report written by Write.
func Read(ctx context.Context, path string) (*Report, error) {
	log := logr.FromContextOrDiscard(ctx)
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		log.Error(err, "failed to open report")
		return nil, err
	}
	defer f.Close()

	var r Report
	if err := json.NewDecoder(f).Decode(&r); err != nil {
		log.Error(err, "failed to read report")
		return nil, err
	}
	return &r, nil
}
