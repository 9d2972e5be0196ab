package repodata

import (
	"testing"

	"howett.net/plist"
)

func marshalPlist(t *testing.T, doc map[string]interface{}) []byte {
	t.Helper()
	data, err := plist.Marshal(doc, plist.XMLFormat)
	if err != nil {
		t.Fatalf("Failed to marshal plist: %v", err)
	}
	return data
}

func TestDecodeIndex(t *testing.T) {
	data := marshalPlist(t, map[string]interface{}{
		"foo": map[string]interface{}{
			"pkgver":         "foo-1.0_1",
			"architecture":   "x86_64",
			"shlib-provides": []string{"libfoo.so.1"},
		},
		"bar": map[string]interface{}{
			"pkgver":         "bar-2.3_1",
			"architecture":   "x86_64",
			"shlib-requires": []string{"libfoo.so.1"},
		},
	})

	idx := decodeIndex(data)
	if len(idx) != 2 {
		t.Fatalf("Expected 2 packages, got %d", len(idx))
	}

	foo := idx["foo"]
	if foo == nil {
		t.Fatal("Package foo missing from index")
	}
	if foo.Pkgver != "foo-1.0_1" || foo.Architecture != "x86_64" {
		t.Errorf("Unexpected foo metadata: %v", foo)
	}
	if len(foo.ShlibProvides) != 1 || foo.ShlibProvides[0] != "libfoo.so.1" {
		t.Errorf("Unexpected shlib-provides: %v", foo.ShlibProvides)
	}

	bar := idx["bar"]
	if bar == nil {
		t.Fatal("Package bar missing from index")
	}
	if len(bar.ShlibRequires) != 1 || bar.ShlibRequires[0] != "libfoo.so.1" {
		t.Errorf("Unexpected shlib-requires: %v", bar.ShlibRequires)
	}
}

func TestDecodeIndexInvalid(t *testing.T) {
	// Empty or structurally invalid documents decode to an empty index,
	// never an error: repositories ship placeholder stage.plist files.
	cases := map[string][]byte{
		"empty":       {},
		"not xml":     []byte("this is not a plist"),
		"broken xml":  []byte("<?xml version=\"1.0\"?><plist><dict>"),
		"wrong shape": marshalPlistArray(t),
	}

	for name, data := range cases {
		idx := decodeIndex(data)
		if len(idx) != 0 {
			t.Errorf("%s: expected empty index, got %d entries", name, len(idx))
		}
	}
}

func marshalPlistArray(t *testing.T) []byte {
	t.Helper()
	data, err := plist.Marshal([]string{"not", "a", "dict"}, plist.XMLFormat)
	if err != nil {
		t.Fatalf("Failed to marshal plist: %v", err)
	}
	return data
}

func TestDecodeIndexSkipsNonDictEntries(t *testing.T) {
	data := marshalPlist(t, map[string]interface{}{
		"foo": map[string]interface{}{
			"pkgver": "foo-1.0_1",
		},
		"stray": "not an attribute map",
	})

	idx := decodeIndex(data)
	if len(idx) != 1 {
		t.Fatalf("Expected 1 package, got %d", len(idx))
	}
	if idx["foo"] == nil {
		t.Error("Package foo missing from index")
	}
}
