package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"rcatalog/internal/types"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		pkg     string
		version string
		ok      bool
	}{
		{name: "package prefix", tag: "fdupes-1.51", pkg: "fdupes", version: "1.51", ok: true},
		{name: "version dot separator", tag: "version.2.1", pkg: "x", version: "2.1", ok: true},
		{name: "version digit", tag: "version1.2", pkg: "x", version: "1.2", ok: true},
		{name: "v prefix", tag: "v0.25.0", pkg: "x", version: "0.25.0", ok: true},
		{name: "bare digits", tag: "2.24.0", pkg: "x", version: "2.24.0", ok: true},
		{name: "v prefix before version word", tag: "v2.0", pkg: "x", version: "2.0", ok: true},
		{name: "package prefix wins over v", tag: "vroom-1.6.0", pkg: "vroom", version: "1.6.0", ok: true},
		{name: "named release", tag: "release-candidate", pkg: "x"},
		{name: "lone v", tag: "v", pkg: "x"},
		{name: "package prefix only", tag: "fdupes-", pkg: "fdupes"},
		{name: "version word only", tag: "version", pkg: "x"},
		{name: "version word and separator", tag: "version.", pkg: "x"},
		{name: "v then letters", tag: "vignettes", pkg: "x"},
		{name: "empty", tag: "", pkg: "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeTag(tt.tag, tt.pkg)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.version, got.Version)
			assert.Equal(t, tt.tag, got.Tag, "original tag must be kept")
		})
	}
}

func TestFilterPrereleases(t *testing.T) {
	stable := types.ReleaseRecord{TagName: "v1.0"}
	pre := types.ReleaseRecord{TagName: "v1.1-rc1", Prerelease: true}

	tests := []struct {
		name     string
		list     types.ReleaseList
		expected []types.ReleaseRecord
	}{
		{
			name:     "drops prereleases when a stable release exists",
			list:     types.ReleaseList{Records: []types.ReleaseRecord{pre, stable}},
			expected: []types.ReleaseRecord{stable},
		},
		{
			name:     "keeps everything when all are prereleases",
			list:     types.ReleaseList{Records: []types.ReleaseRecord{pre}},
			expected: []types.ReleaseRecord{pre},
		},
		{
			name:     "tags are never filtered",
			list:     types.ReleaseList{Records: []types.ReleaseRecord{pre, stable}, FromTags: true},
			expected: []types.ReleaseRecord{pre, stable},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterPrereleases(tt.list)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("FilterPrereleases mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeReleasesUsesNameWhenTagMissing(t *testing.T) {
	records := []types.ReleaseRecord{
		{TagName: "v1.2.0"},
		{Name: "1.1.0"},
		{TagName: "nightly"},
	}
	got := NormalizeReleases(records, "pkg")
	expected := []types.VersionCandidate{
		{Version: "1.2.0", Tag: "v1.2.0"},
		{Version: "1.1.0", Tag: "1.1.0"},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("NormalizeReleases mismatch (-want +got):\n%s", diff)
	}
}
