package scanner

import (
	"archive/tar"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestDetectRepodata(t *testing.T) {
	dir := t.TempDir()

	// zstd-compressed repodata
	zstdPath := filepath.Join(dir, "x86_64-repodata")
	writeFile(t, zstdPath, append([]byte{0x28, 0xB5, 0x2F, 0xFD}, []byte("payload")...))

	// gzip-compressed repodata
	gzipPath := filepath.Join(dir, "aarch64-repodata")
	writeFile(t, gzipPath, append([]byte{0x1F, 0x8B}, []byte("payload")...))

	// right magic, wrong name
	wrongName := filepath.Join(dir, "x86_64-index")
	writeFile(t, wrongName, append([]byte{0x28, 0xB5, 0x2F, 0xFD}, []byte("payload")...))

	// right name, unrecognized content
	wrongContent := filepath.Join(dir, "i686-repodata")
	writeFile(t, wrongContent, []byte("just some text"))

	cases := []struct {
		path string
		want bool
	}{
		{zstdPath, true},
		{gzipPath, true},
		{wrongName, false},
		{wrongContent, false},
	}

	for _, c := range cases {
		got, err := DetectRepodata(c.path)
		if err != nil {
			t.Errorf("DetectRepodata(%s) failed: %v", c.path, err)
			continue
		}
		if got != c.want {
			t.Errorf("DetectRepodata(%s) = %v, want %v", c.path, got, c.want)
		}
	}
}

func TestDetectRepodataUncompressedTar(t *testing.T) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	hdr := &tar.Header{Name: "index.plist", Mode: 0644, Size: 1}
	if err := tw.WriteHeader(hdr); err != nil {
		t.Fatalf("Failed to write tar header: %v", err)
	}
	if _, err := tw.Write([]byte("x")); err != nil {
		t.Fatalf("Failed to write tar member: %v", err)
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("Failed to close tar: %v", err)
	}

	path := filepath.Join(t.TempDir(), "armv7l-repodata")
	writeFile(t, path, buf.Bytes())

	got, err := DetectRepodata(path)
	if err != nil {
		t.Fatalf("DetectRepodata failed: %v", err)
	}
	if !got {
		t.Error("Uncompressed tar repodata not detected")
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()

	sub := filepath.Join(dir, "current")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	writeFile(t, filepath.Join(sub, "x86_64-repodata"),
		append([]byte{0x28, 0xB5, 0x2F, 0xFD}, []byte("payload")...))
	writeFile(t, filepath.Join(sub, "unrelated.txt"), []byte("noise"))

	found, err := NewFileSystemScanner().Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("Expected 1 archive, got %d", len(found))
	}
	if filepath.Base(found[0].Path) != "x86_64-repodata" {
		t.Errorf("Unexpected archive: %s", found[0].Path)
	}
}
