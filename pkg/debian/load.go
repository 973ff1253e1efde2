package debian

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/carlmjohnson/requests"
	"github.com/djcass44/debdeps/pkg/archiveutil"
	"github.com/djcass44/debdeps/pkg/downloader"
	"github.com/djcass44/debdeps/pkg/requestutil"
	"github.com/go-logr/logr"
)

const extensionDeb = ".deb"

// Loader reads the content of control files from local
// paths or remote URLs.
type Loader struct {
	client *http.Client
	dl     *downloader.Downloader
}

type LoaderOption func(l *Loader)

// WithHTTPClient sets the client used for remote requests.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(l *Loader) {
		l.client = client
	}
}

// WithDownloader stores remote files in the downloader's cache
// instead of fetching them on every call.
func WithDownloader(dl *downloader.Downloader) LoaderOption {
	return func(l *Loader) {
		l.dl = dl
	}
}

func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the full text content at loc.
func (l *Loader) Load(ctx context.Context, loc Location) (string, error) {
	switch v := loc.(type) {
	case LocalPath:
		return l.loadLocal(ctx, string(v))
	case RemoteURL:
		return l.loadRemote(ctx, string(v))
	default:
		return "", fmt.Errorf("unsupported location type: %T", loc)
	}
}

func (l *Loader) loadLocal(ctx context.Context, path string) (string, error) {
	log := logr.FromContextOrDiscard(ctx).WithValues("path", path)

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", &NotFoundError{Kind: KindFile, Name: path}
		}
		log.Error(err, "failed to open file")
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("reading file info: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("reading '%s': %w", path, ErrNotRegular)
	}

	// a .deb contains a single control file
	if strings.EqualFold(filepath.Ext(path), extensionDeb) {
		log.V(1).Info("reading control file from deb archive")
		content, err := archiveutil.ReadControl(ctx, f)
		if err != nil {
			return "", &DecodeError{Source: path, Err: err}
		}
		return validText(path, []byte(content))
	}

	compression := requestutil.FromExtension(path)
	log.V(1).Info("reading local file", "compression", compression)

	r, err := requestutil.NewReader(compression, f)
	if err != nil {
		return "", &DecodeError{Source: path, Err: err}
	}
	defer r.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return "", &DecodeError{Source: path, Err: err}
	}
	return validText(path, buf.Bytes())
}

func (l *Loader) loadRemote(ctx context.Context, target string) (string, error) {
	log := logr.FromContextOrDiscard(ctx).WithValues("url", target)

	var data []byte
	if l.dl != nil {
		path, err := l.dl.Download(ctx, target)
		if err != nil {
			return "", &RetrievalError{URL: target, Err: err}
		}
		data, err = os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading cached file: %w", err)
		}
	} else {
		log.Info("downloading control file")
		var body requestutil.Body
		err := requests.
			URL(target).
			Client(l.client).
			Handle(requestutil.ToBody(&body)).
			Fetch(ctx)
		if err != nil {
			log.V(1).Info("failed to download file", "error", err.Error())
			return "", &RetrievalError{URL: target, Err: err}
		}
		data = body.Data
	}

	// mirrors serve compressed and plain files under the same
	// name, so the content decides
	compression := requestutil.Detect(data)
	log.V(1).Info("successfully downloaded control file", "size", len(data), "compression", compression)
	out, err := requestutil.Decompress(compression, data)
	if err != nil {
		return "", &DecodeError{Source: target, Err: err}
	}
	return validText(target, out)
}

func validText(source string, b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", &DecodeError{Source: source, Err: errors.New("content is not valid utf-8")}
	}
	return string(b), nil
}
