package archiveutil

import (
	"archive/tar"
	"context"
	"io"
	"os"
	"path"

	"github.com/go-logr/logr"
)

// Untar returns the content of the regular file called
// name in a tar archive.
func Untar(ctx context.Context, r io.Reader, name string) (string, error) {
	log := logr.FromContextOrDiscard(ctx).WithValues("name", name)
	tr := tar.NewReader(r)

	for {
		header, err := tr.Next()
		switch {
		case err == io.EOF:
			log.V(3).Info("file is not present in archive")
			return "", os.ErrNotExist
		case err != nil:
			log.Error(err, "failed to read file from archive")
			return "", err
		case header == nil:
			continue
		}

		if header.Typeflag != tar.TypeReg || path.Clean(header.Name) != name {
			continue
		}

		log.V(5).Info("extracting file", "target", header.Name, "size", header.Size)
		data, err := io.ReadAll(tr)
		if err != nil {
			log.Error(err, "failed to extract file")
			return "", err
		}
		return string(data), nil
	}
}
