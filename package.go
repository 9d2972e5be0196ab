package repodata

import (
	"fmt"
	"strconv"
	"strings"
)

// Alternative is one entry of an alternatives group: a symlink name and the
// filesystem path it points at.
type Alternative struct {
	Name string
	Path string
}

// Package is the normalized metadata record for a single package in a
// repository index. Fields map the attribute keys XBPS writes into
// index.plist; everything except Pkgver is optional.
type Package struct {
	Pkgver       string
	Architecture string

	Alternatives     map[string][]Alternative
	AutomaticInstall bool
	BuildDate        string
	BuildOptions     []string
	Changelog        string
	ConfFiles        []string
	Conflicts        []string
	FilenameSHA256   string
	FilenameSize     string
	Hold             bool
	Homepage         string
	// Kept as the raw string XBPS emits; the timezone abbreviations it uses
	// are ambiguous and cannot be parsed reliably.
	InstallDate     string
	InstallMsg      string
	InstallScript   string
	InstalledSize   string
	License         string
	LongDesc        string
	Maintainer      string
	MetafileSHA256  string
	PackagedWith    string
	Preserve        bool
	Provides        []string
	RemoveMsg       string
	RemoveScript    string
	Replaces        []string
	Repolock        bool
	Repository      string
	Reverts         []string
	RunDepends      []string
	ShlibProvides   []string
	ShlibRequires   []string
	ShortDesc       string
	SourceRevisions string
	Sourcepkg       string
	Tags            []string
}

// NewPackage builds a Package from a raw attribute map as decoded from a
// property list. Keys may use "-" or "_" as separator; unknown keys are
// dropped silently.
func NewPackage(raw map[string]interface{}) *Package {
	pkg := &Package{}

	for key, value := range raw {
		key = strings.ReplaceAll(key, "-", "_")

		switch key {
		case "pkgver":
			pkg.Pkgver = attrString(value)
		case "architecture":
			pkg.Architecture = attrString(value)
		case "alternatives":
			pkg.Alternatives = attrAlternatives(value)
		case "automatic_install":
			pkg.AutomaticInstall = attrBool(value)
		case "build_date":
			pkg.BuildDate = attrString(value)
		case "build_options":
			pkg.BuildOptions = attrBuildOptions(value)
		case "changelog":
			pkg.Changelog = attrString(value)
		case "conf_files":
			pkg.ConfFiles = attrStrings(value)
		case "conflicts":
			pkg.Conflicts = attrStrings(value)
		case "filename_sha256":
			pkg.FilenameSHA256 = attrString(value)
		case "filename_size":
			pkg.FilenameSize = attrString(value)
		case "hold":
			pkg.Hold = attrBool(value)
		case "homepage":
			pkg.Homepage = attrString(value)
		case "install_date":
			pkg.InstallDate = attrString(value)
		case "install_msg":
			pkg.InstallMsg = attrString(value)
		case "install_script":
			pkg.InstallScript = attrString(value)
		case "installed_size":
			pkg.InstalledSize = attrString(value)
		case "license":
			pkg.License = attrString(value)
		case "long_desc":
			pkg.LongDesc = attrString(value)
		case "maintainer":
			pkg.Maintainer = attrString(value)
		case "metafile_sha256":
			pkg.MetafileSHA256 = attrString(value)
		case "packaged_with":
			pkg.PackagedWith = attrString(value)
		case "preserve":
			pkg.Preserve = attrBool(value)
		case "provides":
			pkg.Provides = attrStrings(value)
		case "remove_msg":
			pkg.RemoveMsg = attrString(value)
		case "remove_script":
			pkg.RemoveScript = attrString(value)
		case "replaces":
			pkg.Replaces = attrStrings(value)
		case "repolock":
			pkg.Repolock = attrBool(value)
		case "repository":
			pkg.Repository = attrString(value)
		case "reverts":
			pkg.Reverts = attrStrings(value)
		case "run_depends":
			pkg.RunDepends = attrStrings(value)
		case "shlib_provides":
			pkg.ShlibProvides = attrStrings(value)
		case "shlib_requires":
			pkg.ShlibRequires = attrStrings(value)
		case "short_desc":
			pkg.ShortDesc = attrString(value)
		case "source_revisions":
			pkg.SourceRevisions = attrString(value)
		case "sourcepkg":
			pkg.Sourcepkg = attrString(value)
		case "tags":
			pkg.Tags = attrStrings(value)
		default:
			// Unknown attribute, drop it.
		}
	}

	return pkg
}

// Pkgname returns the name part of Pkgver, i.e. everything before the last
// hyphen. Package names may themselves contain hyphens.
func (p *Package) Pkgname() string {
	i := strings.LastIndex(p.Pkgver, "-")
	if i < 0 {
		return ""
	}
	return p.Pkgver[:i]
}

// Version returns the version part of Pkgver, i.e. everything after the last
// hyphen.
func (p *Package) Version() string {
	i := strings.LastIndex(p.Pkgver, "-")
	if i < 0 {
		return p.Pkgver
	}
	return p.Pkgver[i+1:]
}

// String returns a short human-readable identity for the package.
func (p *Package) String() string {
	return fmt.Sprintf("%s (%s)", p.Pkgver, p.Architecture)
}

// attrString coerces a scalar attribute value to a string. Integers are
// rendered in decimal; plists store sizes as integer elements.
func attrString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// attrBool coerces a boolean attribute value.
func attrBool(value interface{}) bool {
	b, _ := value.(bool)
	return b
}

// attrStrings coerces a sequence attribute value to a string slice.
func attrStrings(value interface{}) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, attrString(item))
		}
		return out
	default:
		return nil
	}
}

// attrBuildOptions handles the build_options field, which may arrive either
// as a sequence or as a single space-delimited string.
func attrBuildOptions(value interface{}) []string {
	if s, ok := value.(string); ok {
		return strings.Split(s, " ")
	}
	return attrStrings(value)
}

// attrAlternatives handles the alternatives field: a mapping from group name
// to entries which may arrive either as "name:path" strings or as
// already-structured (name, path) pairs. Entries split on the first colon; an
// entry with no colon yields an empty path.
func attrAlternatives(value interface{}) map[string][]Alternative {
	switch v := value.(type) {
	case map[string][]Alternative:
		return v
	case map[string]interface{}:
		out := make(map[string][]Alternative, len(v))
		for group, entries := range v {
			out[group] = alternativeEntries(entries)
		}
		return out
	default:
		return nil
	}
}

func alternativeEntries(value interface{}) []Alternative {
	items, ok := value.([]interface{})
	if !ok {
		return nil
	}
	out := make([]Alternative, 0, len(items))
	for _, item := range items {
		switch entry := item.(type) {
		case string:
			name, path, _ := strings.Cut(entry, ":")
			out = append(out, Alternative{Name: name, Path: path})
		case []interface{}:
			if len(entry) == 2 {
				out = append(out, Alternative{
					Name: attrString(entry[0]),
					Path: attrString(entry[1]),
				})
			}
		}
	}
	return out
}
