package cmd

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	v1 "github.com/djcass44/debdeps/pkg/api/v1"
	"github.com/djcass44/debdeps/pkg/debian"
	"github.com/djcass44/debdeps/pkg/report"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const packages = `Package: foo
Depends: bar, baz (>= 2.0), libfoo

Package: bar
Depends: 
`

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	ctx := logr.NewContext(context.TODO(), testr.NewWithOptions(t, testr.Options{Verbosity: 10}))
	dir := t.TempDir()

	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	_, err := gw.Write([]byte(packages))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(gz.Bytes())
	}))
	defer ts.Close()

	var cases = []struct {
		name string
		cfg  v1.Config
	}{
		{
			"local",
			v1.Config{Mode: v1.ModeLocal, RepositoryPath: writeFile(t, dir, "Packages", packages)},
		},
		{
			"local gzip",
			v1.Config{Mode: v1.ModeLocal, RepositoryPath: writeFile(t, dir, "Packages.gz", gz.String())},
		},
		{
			"remote",
			v1.Config{Mode: v1.ModeRemote, RepositoryPath: ts.URL + "/debian/Packages"},
		},
		{
			"remote cached",
			v1.Config{Mode: v1.ModeRemote, RepositoryPath: ts.URL + "/debian/Packages", CacheDir: filepath.Join(dir, "cache")},
		},
		{
			"mock",
			v1.Config{Mode: v1.ModeMock, RepositoryPath: writeFile(t, dir, "repo.yaml", "foo: [bar, 'baz (>= 2.0)', libfoo]\nbar: []\n")},
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			content, err := load(ctx, tt.cfg)
			require.NoError(t, err)

			out, err := debian.Dependencies(ctx, content, "foo")
			assert.NoError(t, err)
			assert.EqualValues(t, []string{"bar", "baz", "libfoo"}, out)

			out, err = debian.Dependencies(ctx, content, "bar")
			assert.NoError(t, err)
			assert.Empty(t, out)
		})
	}

	t.Run("mock mode rejects urls", func(t *testing.T) {
		_, err := load(ctx, v1.Config{Mode: v1.ModeMock, RepositoryPath: ts.URL + "/repo.yaml"})
		assert.ErrorIs(t, err, errMockRemote)
	})
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("json", func(t *testing.T) {
		cfg, err := readConfig(writeFile(t, dir, "config.json", `{"package_name": "foo", "repository_path": "./Packages", "mode": "local", "ascii_tree": true, "filter_substring": "lib"}`))
		require.NoError(t, err)
		assert.EqualValues(t, "foo", cfg.PackageName)
		assert.EqualValues(t, v1.ModeLocal, cfg.Mode)
		assert.True(t, cfg.Tree())
		assert.EqualValues(t, "lib", cfg.Filter())
	})
	t.Run("yaml", func(t *testing.T) {
		cfg, err := readConfig(writeFile(t, dir, "config.yaml", "package_name: foo\nrepository_path: ./Packages\nmode: mock\nascii_tree: false\n"))
		require.NoError(t, err)
		assert.EqualValues(t, v1.ModeMock, cfg.Mode)
		assert.NotNil(t, cfg.ASCIITree)
		assert.False(t, cfg.Tree())
		assert.Nil(t, cfg.FilterSubstring)
	})
	t.Run("syntax error", func(t *testing.T) {
		_, err := readConfig(writeFile(t, dir, "broken.json", `{"package_name": `))
		assert.Error(t, err)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := readConfig(filepath.Join(dir, "missing.json"))
		var nf *debian.NotFoundError
		assert.ErrorAs(t, err, &nf)
	})
}

func TestWriteConfig(t *testing.T) {
	filter := "lib"
	tree := true

	var buf bytes.Buffer
	require.NoError(t, writeConfig(&buf, v1.Config{
		PackageName:     "foo",
		RepositoryPath:  "./Packages",
		Mode:            v1.ModeLocal,
		ASCIITree:       &tree,
		FilterSubstring: &filter,
	}))
	assert.EqualValues(t, "package_name = foo\nrepository_path = ./Packages\nmode = local\nascii_tree = true\nfilter_substring = lib\n", buf.String())
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestWriteConfig_WriteError(t *testing.T) {
	// no optional fields, so only the required lines are written
	err := writeConfig(failingWriter{}, v1.Config{PackageName: "foo", Mode: v1.ModeLocal})
	assert.ErrorIs(t, err, errWrite)
}

func TestDeps(t *testing.T) {
	dir := t.TempDir()
	repo := writeFile(t, dir, "Packages", packages)
	cfg := writeFile(t, dir, "config.json", `{"package_name": "foo", "repository_path": "`+repo+`", "mode": "local", "ascii_tree": false}`)
	reportPath := filepath.Join(dir, "report.json")

	var buf bytes.Buffer
	command.SetOut(&buf)
	command.SetArgs([]string{"deps", "-c", cfg, "--filter", "ba", "--report", reportPath})
	require.NoError(t, command.Execute())

	assert.EqualValues(t, "bar\nbaz\n", buf.String())

	r, err := report.Read(context.TODO(), reportPath)
	require.NoError(t, err)
	assert.EqualValues(t, "foo", r.Name)
	assert.EqualValues(t, "ba", r.Filter)
	assert.EqualValues(t, []string{"bar", "baz"}, r.Dependencies)
	assert.EqualValues(t, "sha256:"+report.Sha256(packages), r.Integrity)
}
