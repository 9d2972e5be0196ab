package repodata

import "sort"

// StageDiff is one shared-library inconsistency that committing the stage
// would introduce: a library some surviving package still requires but no
// surviving package provides.
type StageDiff struct {
	Shlib      string
	Provider   string
	RequiredBy []string
}

// ComputeStage models the effect of committing the stage on top of the
// committed index and reports every shared library that would lose its only
// provider. An empty result means the stage is safe to commit.
//
// This mirrors the consistency check xbps-rindex performs in
// repodata_commit() before flushing staged packages into the index.
func ComputeStage(rd *Repodata) []StageDiff {
	var res []StageDiff

	if len(rd.Stage) == 0 {
		// nothing staged
		return res
	}

	oldShlibs := make(map[string]string)
	usedShlibs := make(map[string][]string)
	var usedOrder []string

	// find all old shlib-provides: libraries whose committed provider is
	// about to be replaced by a staged package
	for _, pkgname := range sortedNames(rd.Stage) {
		if pkg, ok := rd.Index[pkgname]; ok {
			for _, shlib := range pkg.ShlibProvides {
				oldShlibs[shlib] = pkgname
			}
		}
	}

	// record which of those libraries the effective package set still
	// requires (staged version if staged, committed version otherwise)
	for _, pkgname := range sortedNames(rd.Index) {
		pkg, ok := rd.Stage[pkgname]
		if !ok {
			pkg = rd.Index[pkgname]
		}
		for _, shlib := range pkg.ShlibRequires {
			if _, ok := oldShlibs[shlib]; !ok {
				continue
			}
			if _, ok := usedShlibs[shlib]; !ok {
				usedOrder = append(usedOrder, shlib)
			}
			usedShlibs[shlib] = append(usedShlibs[shlib], pkgname)
		}
	}

	// purge libraries still provided by packages the stage does not touch
	for pkgname, pkg := range rd.Index {
		if _, ok := rd.Stage[pkgname]; ok {
			continue
		}
		for _, shlib := range pkg.ShlibProvides {
			delete(usedShlibs, shlib)
		}
	}

	// purge libraries the staged versions still provide
	for _, pkg := range rd.Stage {
		for _, shlib := range pkg.ShlibProvides {
			delete(usedShlibs, shlib)
		}
	}

	// whatever remains lost its only provider
	for _, shlib := range usedOrder {
		reqs, ok := usedShlibs[shlib]
		if !ok {
			continue
		}
		res = append(res, StageDiff{
			Shlib:      shlib,
			Provider:   oldShlibs[shlib],
			RequiredBy: reqs,
		})
	}

	return res
}

// sortedNames returns the package names of an index in sorted order, so that
// results do not depend on map iteration order.
func sortedNames(idx RepoIndex) []string {
	names := make([]string, 0, len(idx))
	for name := range idx {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
