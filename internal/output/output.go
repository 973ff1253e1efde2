package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss/tree"
)

// List writes one dependency per line.
func List(w io.Writer, deps []string) error {
	for _, d := range deps {
		if _, err := fmt.Fprintln(w, d); err != nil {
			return err
		}
	}
	return nil
}

// Tree writes pkg and its direct dependencies as an ASCII tree.
func Tree(w io.Writer, pkg string, deps []string) error {
	t := tree.Root(pkg)
	for _, d := range deps {
		t.Child(d)
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}
