package v1

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/djcass44/debdeps/pkg/debian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

func ptr[T any](v T) *T {
	return &v
}

func TestConfig_Validate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Packages")
	require.NoError(t, os.WriteFile(path, []byte("Package: foo\n"), 0644))

	var cases = []struct {
		name string
		cfg  Config
		errs int
	}{
		{
			"local file",
			Config{PackageName: "foo", RepositoryPath: path, Mode: ModeLocal, ASCIITree: ptr(false)},
			0,
		},
		{
			"remote url",
			Config{PackageName: "foo", RepositoryPath: "https://deb.debian.org/debian/Packages.gz", Mode: ModeRemote, ASCIITree: ptr(true), FilterSubstring: ptr("lib")},
			0,
		},
		{
			"missing package name",
			Config{RepositoryPath: path, Mode: ModeMock, ASCIITree: ptr(false)},
			1,
		},
		{
			"missing repository",
			Config{PackageName: "foo", RepositoryPath: filepath.Join(t.TempDir(), "missing"), Mode: ModeLocal, ASCIITree: ptr(false)},
			1,
		},
		{
			"unknown mode",
			Config{PackageName: "foo", RepositoryPath: path, Mode: "online", ASCIITree: ptr(false)},
			1,
		},
		{
			"everything is wrong",
			Config{},
			4,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.errs == 0 {
				assert.NoError(t, err)
				return
			}
			var agg utilerrors.Aggregate
			require.ErrorAs(t, err, &agg)
			assert.Len(t, agg.Errors(), tt.errs)
		})
	}
}

func TestConfig_Location(t *testing.T) {
	t.Setenv("DEBIAN_MIRROR", "https://deb.debian.org/debian")

	cfg := Config{RepositoryPath: "${DEBIAN_MIRROR}/dists/bookworm/main/binary-amd64/Packages.gz"}
	assert.EqualValues(t, debian.RemoteURL("https://deb.debian.org/debian/dists/bookworm/main/binary-amd64/Packages.gz"), cfg.Location())

	cfg = Config{RepositoryPath: "./Packages"}
	assert.EqualValues(t, debian.LocalPath("./Packages"), cfg.Location())
}

func TestConfig_Filter(t *testing.T) {
	assert.EqualValues(t, "", (&Config{}).Filter())
	assert.EqualValues(t, "lib", (&Config{FilterSubstring: ptr("lib")}).Filter())
	assert.False(t, (&Config{}).Tree())
	assert.True(t, (&Config{ASCIITree: ptr(true)}).Tree())
}

func TestConfig_ValidateMessages(t *testing.T) {
	err := (&Config{}).Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "package_name: expected a non-empty string")
	assert.ErrorContains(t, err, "repository_path: not set")
	assert.ErrorContains(t, err, "ascii_tree: expected true or false")
}
