package debian

import (
	"net/url"
	"strings"
)

// Location describes where a control file can be read from.
// It is either a LocalPath or a RemoteURL.
type Location interface {
	String() string
	isLocation()
}

// LocalPath is a file on the local filesystem.
type LocalPath string

func (p LocalPath) String() string { return string(p) }
func (LocalPath) isLocation()      {}

// RemoteURL is an http or https resource.
type RemoteURL string

func (u RemoteURL) String() string { return string(u) }
func (RemoteURL) isLocation()      {}

// ParseLocation decides whether s refers to a remote resource
// or a local file.
func ParseLocation(s string) Location {
	if IsRemote(s) {
		return RemoteURL(s)
	}
	return LocalPath(s)
}

// IsRemote returns true if s is an http or https URL.
func IsRemote(s string) bool {
	uri, err := url.Parse(s)
	if err != nil {
		return false
	}
	switch strings.ToLower(uri.Scheme) {
	case "http", "https":
		return uri.Host != ""
	default:
		return false
	}
}
