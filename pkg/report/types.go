package report

const Version = 1

// Report records the result of a dependency lookup together
// with the content it was computed from.
type Report struct {
	Name          string   `json:"name"`
	ReportVersion int      `json:"reportVersion"`
	Source        string   `json:"source"`
	Integrity     string   `json:"integrity"`
	Filter        string   `json:"filter,omitempty"`
	Dependencies  []string `json:"dependencies"`
}
