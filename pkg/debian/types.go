package debian

// Record holds the fields of a single control-file block
// that are needed for dependency extraction.
type Record struct {
	Package string
	// Depends is the raw value of the Depends field. It is only
	// meaningful when HasDepends is true.
	Depends    string
	HasDepends bool
}

// Index is a catalog of every named block in a control file.
type Index struct {
	packages map[string]Record
	order    []string
	source   string
}
