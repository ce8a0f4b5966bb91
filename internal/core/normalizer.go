package core

import (
	"strings"

	"rcatalog/internal/types"
)

// NormalizeTag extracts a dotted version from a raw release tag. Rules are
// tried in order and the first whose prefix matches decides; a remainder
// that does not start with a digit rejects the tag.
func NormalizeTag(tag string, packageName string) (types.VersionCandidate, bool) {
	version, ok := stripTagPrefix(tag, packageName)
	if !ok || !startsWithDigit(version) {
		return types.VersionCandidate{}, false
	}
	return types.VersionCandidate{Version: version, Tag: tag}, true
}

func stripTagPrefix(tag string, packageName string) (string, bool) {
	namePrefix := packageName + "-"
	switch {
	case packageName != "" && strings.HasPrefix(tag, namePrefix) && len(tag) > len(namePrefix):
		return tag[len(namePrefix):], true
	case strings.HasPrefix(tag, "version"):
		// "version1.2" and "version.2.1"
		if len(tag) > 7 && isDigit(tag[7]) {
			return tag[7:], true
		}
		if len(tag) > 8 {
			return tag[8:], true
		}
		return "", false
	case strings.HasPrefix(tag, "v"):
		return tag[1:], true
	case startsWithDigit(tag):
		return tag, true
	default:
		return "", false
	}
}

// FilterPrereleases drops prereleases from a releases listing as long as at
// least one stable release remains. Tag listings carry no prerelease flag and
// are returned untouched.
func FilterPrereleases(list types.ReleaseList) []types.ReleaseRecord {
	if list.FromTags {
		return list.Records
	}
	var stable []types.ReleaseRecord
	for _, record := range list.Records {
		if !record.Prerelease {
			stable = append(stable, record)
		}
	}
	if len(stable) == 0 {
		return list.Records
	}
	return stable
}

// NormalizeReleases maps release records to version candidates, discarding
// tags that do not name a version.
func NormalizeReleases(records []types.ReleaseRecord, packageName string) []types.VersionCandidate {
	var out []types.VersionCandidate
	for _, record := range records {
		candidate, ok := NormalizeTag(record.Label(), packageName)
		if !ok {
			continue
		}
		out = append(out, candidate)
	}
	return out
}

func startsWithDigit(value string) bool {
	return value != "" && isDigit(value[0])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
