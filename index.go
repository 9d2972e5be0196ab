package repodata

import (
	"howett.net/plist"
)

// RepoIndex maps package names to their metadata records.
type RepoIndex map[string]*Package

// decodeIndex decodes one plist archive member into a RepoIndex. A
// structurally invalid or empty document decodes to an empty index:
// repositories routinely ship an empty placeholder stage.plist.
func decodeIndex(data []byte) RepoIndex {
	idx := make(RepoIndex)

	var doc map[string]interface{}
	if _, err := plist.Unmarshal(data, &doc); err != nil {
		return idx
	}

	for pkgname, attrs := range doc {
		raw, ok := attrs.(map[string]interface{})
		if !ok {
			continue
		}
		idx[pkgname] = NewPackage(raw)
	}

	return idx
}
