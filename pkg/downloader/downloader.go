package downloader

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/hashicorp/go-getter"
)

type Downloader struct {
	cacheDir string
}

func NewDownloader(cacheDir string) (*Downloader, error) {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, err
	}
	return &Downloader{cacheDir: cacheDir}, nil
}

func (d *Downloader) CacheDir() string {
	return d.cacheDir
}

// Download fetches src into the cache directory and returns the
// path of the downloaded file. Files that are already present in
// the cache are not downloaded again. The file is stored exactly
// as it was served.
func (d *Downloader) Download(ctx context.Context, src string) (string, error) {
	log := logr.FromContextOrDiscard(ctx)

	uri, err := url.Parse(src)
	if err != nil {
		log.Error(err, "failed to parse url")
		return "", err
	}

	// download the file to a predictable location so that
	// we can avoid repeated downloads
	dst := filepath.Join(d.cacheDir, HashString(src)+"-"+filepath.Base(uri.Path))
	if _, err := os.Stat(dst); err == nil {
		log.V(1).Info("using cached file", "src", src, "dst", dst)
		return dst, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("checking cache: %w", err)
	}
	log.Info("downloading file", "src", src)

	// disable archive handling so that we get the
	// original bytes
	q := uri.Query()
	q.Set("archive", "false")
	uri.RawQuery = q.Encode()

	// download next to the destination first so that a partial
	// download never looks like a cache hit
	tmp := fmt.Sprintf("%s.%s.part", dst, uuid.NewString())
	log.V(1).Info("preparing to download file", "dst", dst, "tmp", tmp)

	client := &getter.Client{
		Ctx:             ctx,
		Src:             uri.String(),
		Dst:             tmp,
		Mode:            getter.ClientModeFile,
		DisableSymlinks: true,
	}
	if err := client.Get(); err != nil {
		log.Error(err, "failed to download file")
		_ = os.Remove(tmp)
		return "", err
	}
	if err := os.Rename(tmp, dst); err != nil {
		log.Error(err, "failed to move file into the cache", "file", dst)
		_ = os.Remove(tmp)
		return "", err
	}

	return dst, nil
}
