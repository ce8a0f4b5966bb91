package core

import (
	"strconv"
	"strings"

	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"
)

// versionCache memoizes parsed version objects to avoid repeated parsing
// while sorting candidates. A nil entry records a failed parse.
type versionCache struct {
	deb map[string]*debversion.Version
	pep map[string]*pep440.Version
}

func newVersionCache() *versionCache {
	return &versionCache{
		deb: map[string]*debversion.Version{},
		pep: map[string]*pep440.Version{},
	}
}

// debVersion returns a parsed Debian version, caching the result.
func (c *versionCache) debVersion(value string) (*debversion.Version, bool) {
	if parsed, ok := c.deb[value]; ok {
		return parsed, parsed != nil
	}
	parsed, err := debversion.NewVersion(value)
	if err != nil {
		c.deb[value] = nil
		return nil, false
	}
	c.deb[value] = &parsed
	return &parsed, true
}

// pepVersion returns a parsed PEP 440 version, caching the result.
func (c *versionCache) pepVersion(value string) (*pep440.Version, bool) {
	if parsed, ok := c.pep[value]; ok {
		return parsed, parsed != nil
	}
	parsed, err := pep440.Parse(value)
	if err != nil {
		c.pep[value] = nil
		return nil, false
	}
	c.pep[value] = &parsed
	return &parsed, true
}

// compare returns -1, 0, or 1. Debian ordering is tried first since it
// compares digit runs numerically; PEP 440 and then a plain per-component
// comparison cover strings Debian rejects.
func (c *versionCache) compare(a string, b string) int {
	if a == b {
		return 0
	}
	if v1, ok := c.debVersion(a); ok {
		if v2, ok := c.debVersion(b); ok {
			return v1.Compare(*v2)
		}
	}
	if v1, ok := c.pepVersion(a); ok {
		if v2, ok := c.pepVersion(b); ok {
			return v1.Compare(*v2)
		}
	}
	return compareComponents(a, b)
}

// CompareVersions orders two version strings, treating dot-separated numeric
// components numerically ("10.0" sorts after "9.0").
func CompareVersions(a string, b string) int {
	return newVersionCache().compare(a, b)
}

func compareComponents(a string, b string) int {
	left := strings.Split(a, ".")
	right := strings.Split(b, ".")
	for i := 0; i < len(left) && i < len(right); i++ {
		if cmp := compareComponent(left[i], right[i]); cmp != 0 {
			return cmp
		}
	}
	switch {
	case len(left) < len(right):
		return -1
	case len(left) > len(right):
		return 1
	default:
		return 0
	}
}

func compareComponent(a string, b string) int {
	x, errX := strconv.ParseUint(a, 10, 64)
	y, errY := strconv.ParseUint(b, 10, 64)
	if errX == nil && errY == nil {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}

// hasVersionPrefix reports whether the dot-separated components of prefix
// open version ("2.3" matches "2.3.1" but not "2.30").
func hasVersionPrefix(version string, prefix string) bool {
	if prefix == "" {
		return true
	}
	components := strings.Split(version, ".")
	wanted := strings.Split(prefix, ".")
	if len(wanted) > len(components) {
		return false
	}
	for i, part := range wanted {
		if components[i] != part {
			return false
		}
	}
	return true
}
