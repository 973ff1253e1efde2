package v1

type Mode string

const (
	ModeLocal  Mode = "local"
	ModeRemote Mode = "remote"
	ModeMock   Mode = "mock"
)

// Config describes a single dependency lookup.
type Config struct {
	// PackageName is the package to look up.
	PackageName string `json:"package_name"`
	// RepositoryPath is a local path or http(s) URL of a
	// Packages file. Environment variables are expanded.
	RepositoryPath string `json:"repository_path"`
	Mode           Mode   `json:"mode"`
	// ASCIITree prints the result as a tree rooted at the
	// package instead of a plain list.
	ASCIITree *bool `json:"ascii_tree"`
	// FilterSubstring keeps only dependencies containing
	// the given text.
	FilterSubstring *string `json:"filter_substring,omitempty"`
	// CacheDir enables caching of remote files.
	CacheDir string `json:"cache_dir,omitempty"`
}
