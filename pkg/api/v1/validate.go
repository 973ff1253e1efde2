package v1

import (
	"errors"
	"fmt"
	"os"

	"github.com/djcass44/debdeps/pkg/airutil"
	"github.com/djcass44/debdeps/pkg/debian"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

var modes = []Mode{ModeLocal, ModeRemote, ModeMock}

// Validate checks the configuration and returns every
// problem that was found.
func (c *Config) Validate() error {
	var errs []error

	if c.PackageName == "" {
		errs = append(errs, errors.New("package_name: expected a non-empty string"))
	}

	repo := c.Repository()
	switch {
	case repo == "":
		errs = append(errs, errors.New("repository_path: not set"))
	case debian.IsRemote(repo):
	default:
		if _, err := os.Stat(repo); err != nil {
			errs = append(errs, fmt.Errorf("repository_path: '%s' is neither an existing path nor a valid url", repo))
		}
	}

	if !c.Mode.Valid() {
		errs = append(errs, fmt.Errorf("mode: expected one of %v, got '%s'", modes, c.Mode))
	}

	if c.ASCIITree == nil {
		errs = append(errs, errors.New("ascii_tree: expected true or false"))
	}

	return utilerrors.NewAggregate(errs)
}

// Valid returns true if m is a known mode.
func (m Mode) Valid() bool {
	for _, v := range modes {
		if m == v {
			return true
		}
	}
	return false
}

// Repository returns the repository path with environment
// variables expanded.
func (c *Config) Repository() string {
	return airutil.ExpandEnv(c.RepositoryPath)
}

// Location returns where the repository should be read from.
func (c *Config) Location() debian.Location {
	return debian.ParseLocation(c.Repository())
}

// Filter returns the configured filter, or an empty
// string if there isn't one.
func (c *Config) Filter() string {
	if c.FilterSubstring == nil {
		return ""
	}
	return *c.FilterSubstring
}

// Tree returns true if ascii_tree is enabled.
func (c *Config) Tree() bool {
	return c.ASCIITree != nil && *c.ASCIITree
}
