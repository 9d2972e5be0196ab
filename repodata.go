// Package repodata reads XBPS repository data archives: the committed
// package index, the staged package set awaiting commit, and the
// consistency check between the two.
package repodata

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/voidtools/repodata/fetch"
)

// Member names of the two plist documents inside a repodata archive.
const (
	indexMember = "index.plist"
	stageMember = "stage.plist"
)

// URL prefixes dispatched to the remote loader; everything else is treated
// as a local filesystem path.
var remotePrefixes = []string{"http://", "https://", "ftp://", "socks5://"}

// Repodata aggregates the contents of one repository data archive. It is
// read-only once loaded. Meta is nil: no loader extracts signing metadata
// yet.
type Repodata struct {
	Index RepoIndex
	Stage RepoIndex
	Meta  *RepoMeta
}

var defaultFetcher = sync.OnceValue(func() *fetch.Fetcher {
	return fetch.NewFetcher()
})

// FromRepodata loads a repodata archive from a URL or a local path,
// dispatching on the URL scheme.
func FromRepodata(ctx context.Context, source string) (*Repodata, error) {
	for _, prefix := range remotePrefixes {
		if strings.HasPrefix(source, prefix) {
			return FromRemote(ctx, source)
		}
	}
	return FromLocal(source)
}

// FromLocal loads a repodata archive from a local file.
func FromLocal(path string) (*Repodata, error) {
	logrus.Debugf("Loading repodata from file: %s", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Type: ErrIO, Source: path, Err: err}
	}
	defer f.Close()

	rd, err := FromBuffer(f)
	if err != nil {
		return nil, &LoadError{Type: ErrArchive, Source: path, Err: err}
	}
	return rd, nil
}

// FromRemote fetches a repodata archive from a URL into memory and loads it.
func FromRemote(ctx context.Context, url string) (*Repodata, error) {
	logrus.Debugf("Loading repodata from URL: %s", url)

	artifact, err := defaultFetcher().Fetch(ctx, url)
	if err != nil {
		return nil, &LoadError{Type: ErrFetch, Source: url, Err: err}
	}
	defer artifact.Body.Close()

	buf, err := io.ReadAll(artifact.Body)
	if err != nil {
		return nil, &LoadError{Type: ErrFetch, Source: url, Err: err}
	}

	rd, err := FromBuffer(bytes.NewReader(buf))
	if err != nil {
		return nil, &LoadError{Type: ErrArchive, Source: url, Err: err}
	}
	return rd, nil
}

// FromBuffer loads a repodata archive from an in-memory or streamed byte
// source: decompress, read the inner tar, decode index.plist and
// stage.plist.
func FromBuffer(r io.Reader) (*Repodata, error) {
	a, err := openArchive(r)
	if err != nil {
		return nil, err
	}

	index, err := a.Extract(indexMember)
	if err != nil {
		return nil, err
	}

	stage, err := a.Extract(stageMember)
	if err != nil {
		return nil, err
	}

	return &Repodata{
		Index: decodeIndex(index),
		Stage: decodeIndex(stage),
	}, nil
}
