package core

import (
	"net/url"
	"regexp"
	"strings"

	"rcatalog/internal/types"
)

// PlatformOrigin is the URL prefix of sources hosted on GitHub.
const PlatformOrigin = "https://github.com/"

// Template identifies the layout a download URL follows.
type Template int

const (
	TemplateNone Template = iota
	TemplateTarballV
	TemplateTarball
	TemplateArchiveV
	TemplateArchive
	TemplateArchiveNamed
	TemplateReleaseV
	TemplateRelease
	TemplateReleaseRepo
	TemplateReleaseRepoDir
	TemplateReleaseLoose
)

// archiveExtensions is ordered so compound suffixes win over their tails.
var archiveExtensions = []string{
	".tar.gz",
	".tar.bz2",
	".tar.xz",
	".zip",
	".tar",
	".tgz",
	".tbz",
	".love",
}

// IsPlatformURL reports whether raw points at the hosting platform.
func IsPlatformURL(raw string) bool {
	return strings.HasPrefix(raw, PlatformOrigin)
}

// ParseRepo extracts owner and repository from a platform URL, dropping a
// trailing ".git".
func ParseRepo(raw string) (types.RepoID, bool) {
	if !IsPlatformURL(raw) {
		return types.RepoID{}, false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return types.RepoID{}, false
	}
	segments := strings.Split(parsed.Path, "/")
	if len(segments) < 3 || segments[1] == "" || segments[2] == "" {
		return types.RepoID{}, false
	}
	name := strings.TrimSuffix(segments[2], ".git")
	if name == "" {
		return types.RepoID{}, false
	}
	return types.RepoID{Owner: segments[1], Name: name}, true
}

// ArchiveExtension returns the recognized archive suffix of raw, or "".
func ArchiveExtension(raw string) string {
	for _, ext := range archiveExtensions {
		if strings.HasSuffix(raw, ext) {
			return ext
		}
	}
	return ""
}

type urlTemplate struct {
	id      Template
	needExt bool
	suffix  func(pkg string, version string, repo string, ext string) string
}

// urlTemplates is checked in order; the first suffix match wins.
var urlTemplates = []urlTemplate{
	{TemplateTarballV, false, func(_, v, _, _ string) string {
		return "/tarball/v" + v
	}},
	{TemplateTarball, false, func(_, v, _, _ string) string {
		return "/tarball/" + v
	}},
	{TemplateArchiveV, true, func(_, v, _, ext string) string {
		return "/archive/v" + v + ext
	}},
	{TemplateArchive, true, func(_, v, _, ext string) string {
		return "/archive/" + v + ext
	}},
	{TemplateArchiveNamed, true, func(pkg, v, _, ext string) string {
		return "/archive/" + pkg + "-" + v + ext
	}},
	{TemplateReleaseV, true, func(pkg, v, _, ext string) string {
		return "/releases/download/v" + v + "/" + pkg + "-" + v + ext
	}},
	{TemplateRelease, true, func(pkg, v, _, ext string) string {
		return "/releases/download/" + v + "/" + pkg + "-" + v + ext
	}},
	{TemplateReleaseRepo, true, func(_, v, repo, ext string) string {
		return "/releases/download/" + v + "/" + repo + "-" + v + ext
	}},
	{TemplateReleaseRepoDir, true, func(_, v, repo, ext string) string {
		return "/releases/download/" + repo + "-" + v + "/" + repo + "-" + v + ext
	}},
}

func looseReleasePattern(pkg string, version string, ext string) *regexp.Regexp {
	return regexp.MustCompile("/releases/download/(v)?" + regexp.QuoteMeta(version) +
		"/" + regexp.QuoteMeta(pkg) + ".*" + regexp.QuoteMeta(ext) + "$")
}

// MatchTemplate returns the first template oldURL follows for version.
func MatchTemplate(oldURL string, pkg string, version string, repo string) Template {
	if !IsPlatformURL(oldURL) || version == "" {
		return TemplateNone
	}
	ext := ArchiveExtension(oldURL)
	for _, tmpl := range urlTemplates {
		if tmpl.needExt && ext == "" {
			continue
		}
		if strings.HasSuffix(oldURL, tmpl.suffix(pkg, version, repo, ext)) {
			return tmpl.id
		}
	}
	if ext != "" && looseReleasePattern(pkg, version, ext).MatchString(oldURL) {
		return TemplateReleaseLoose
	}
	return TemplateNone
}

// RewriteURL substitutes newVersion into oldURL following the template the
// old URL matches. It returns false for URLs off the platform or following
// no known layout.
func RewriteURL(oldURL string, pkg string, oldVersion string, repo string, newVersion string) (string, bool) {
	id := MatchTemplate(oldURL, pkg, oldVersion, repo)
	switch id {
	case TemplateNone:
		return "", false
	case TemplateReleaseLoose:
		return strings.ReplaceAll(oldURL, oldVersion, newVersion), true
	}
	ext := ArchiveExtension(oldURL)
	for _, tmpl := range urlTemplates {
		if tmpl.id != id {
			continue
		}
		oldSuffix := tmpl.suffix(pkg, oldVersion, repo, ext)
		return strings.TrimSuffix(oldURL, oldSuffix) + tmpl.suffix(pkg, newVersion, repo, ext), true
	}
	return "", false
}

// RewriteSource returns the locations of record's source at newVersion. For
// mirror lists the first URL that can be rewritten wins; a platform-hosted
// VCS URL is returned unchanged since only its ref moves.
func RewriteSource(record types.PackageRecord, repo string, newVersion string) ([]string, bool) {
	if record.Source.Kind == types.SourceKindVCS {
		if IsPlatformURL(record.Source.VCS.URL) {
			return []string{record.Source.VCS.URL}, true
		}
		return nil, false
	}
	for _, uri := range record.Source.Archive.URIs {
		if rewritten, ok := RewriteURL(uri, record.Name, record.Version, repo, newVersion); ok {
			return []string{rewritten}, true
		}
	}
	return nil, false
}
