package archiveutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/blakesmith/ar"
	"github.com/djcass44/debdeps/pkg/requestutil"
	"github.com/go-logr/logr"
)

const controlArchivePrefix = "control.tar"

var ErrNoControl = errors.New("deb archive does not contain a control file")

// ReadControl returns the content of the 'control' file stored in
// a .deb archive.
func ReadControl(ctx context.Context, r io.Reader) (string, error) {
	log := logr.FromContextOrDiscard(ctx)
	tr := ar.NewReader(r)

	for {
		header, err := tr.Next()
		switch {
		case err == io.EOF:
			return "", ErrNoControl
		case err != nil:
			log.Error(err, "failed to read file from archive")
			return "", err
		case header == nil:
			continue
		}

		// gnu ar terminates names with a slash
		name := strings.TrimSuffix(strings.TrimSpace(header.Name), "/")
		log.V(5).Info("found archive member", "name", name, "size", header.Size)
		if !strings.HasPrefix(name, controlArchivePrefix) {
			continue
		}

		// the control archive may be compressed with
		// gzip, xz or zstd
		stream, err := requestutil.NewReader(requestutil.FromExtension(name), tr)
		if err != nil {
			return "", fmt.Errorf("opening %s: %w", name, err)
		}
		defer stream.Close()
		return Untar(ctx, stream, "control")
	}
}
