package scanner

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
)

// Magic bytes for archive detection
var (
	// Zstandard, the current repodata compression
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

	// Gzip, used by older repodata archives
	gzipMagic = []byte{0x1F, 0x8B}

	// XZ
	xzMagic = []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}

	// "ustar" at offset 257 marks an uncompressed tar
	tarMagic = []byte("ustar")
)

const tarMagicOffset = 257

// DetectRepodata reports whether a file looks like a repodata archive:
// named by the <arch>-repodata convention and carrying a recognized
// compression or tar header.
func DetectRepodata(path string) (bool, error) {
	basename := filepath.Base(path)
	if !strings.HasSuffix(basename, "-repodata") {
		return false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	// Read enough for magic byte detection, including the tar header field
	header := make([]byte, 512)
	n, err := f.Read(header)
	if err != nil && n == 0 {
		return false, err
	}
	header = header[:n]

	if bytes.HasPrefix(header, zstdMagic) {
		return true, nil
	}
	if bytes.HasPrefix(header, xzMagic) {
		return true, nil
	}
	if bytes.HasPrefix(header, gzipMagic) {
		return true, nil
	}
	if len(header) >= tarMagicOffset+len(tarMagic) &&
		bytes.Equal(header[tarMagicOffset:tarMagicOffset+len(tarMagic)], tarMagic) {
		return true, nil
	}

	return false, nil
}
