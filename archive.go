package repodata

import (
	"archive/tar"
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Magic bytes for compression detection
var (
	// Zstandard, the current repodata compression
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

	// Gzip, used by older repodata archives
	gzipMagic = []byte{0x1F, 0x8B}

	// XZ
	xzMagic = []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}
)

// archive holds the unpacked regular-file members of a repodata tar so that
// members can be looked up by name regardless of their order in the stream.
// Non-file entries such as directories are not extractable.
type archive struct {
	files map[string][]byte
}

// openArchive decompresses a repodata stream and reads the inner tar. The
// compression format is sniffed from the leading magic bytes; a stream with
// no recognized magic is read as an uncompressed tar.
func openArchive(r io.Reader) (*archive, error) {
	br := bufio.NewReader(r)

	header, err := br.Peek(len(xzMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}

	var src io.Reader
	switch {
	case bytes.HasPrefix(header, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		src = zr
	case bytes.HasPrefix(header, xzMagic):
		xr, err := xz.NewReader(br)
		if err != nil {
			return nil, err
		}
		src = xr
	case bytes.HasPrefix(header, gzipMagic):
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		defer gr.Close()
		src = gr
	default:
		src = br
	}

	a := &archive{
		files: make(map[string][]byte),
	}

	tr := tar.NewReader(src)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read archive: %w", err)
		}

		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("failed to read archive member %s: %w", hdr.Name, err)
		}
		a.files[hdr.Name] = data
	}

	return a, nil
}

// Extract returns the contents of a named archive member. It fails with
// MemberNotFoundError when the member is absent or is not a regular file.
func (a *archive) Extract(name string) ([]byte, error) {
	data, ok := a.files[name]
	if !ok {
		return nil, &MemberNotFoundError{Member: name}
	}
	return data, nil
}
