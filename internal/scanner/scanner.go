package scanner

import "context"

// ScannedRepodata represents a repodata archive found during scanning
type ScannedRepodata struct {
	Path string
	Size int64
}

// Scanner interface for locating repodata archives
type Scanner interface {
	// Scan recursively scans a directory for repodata archives
	Scan(ctx context.Context, dir string) ([]ScannedRepodata, error)

	// Detect reports whether a file is a repodata archive
	Detect(path string) (bool, error)
}
