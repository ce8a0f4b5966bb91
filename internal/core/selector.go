package core

import (
	"sort"

	"rcatalog/internal/types"
)

// SelectVersion picks the candidate matching request. A false result means
// no candidate matched, which callers treat as "no update available".
func SelectVersion(candidates []types.VersionCandidate, request types.VersionRequest) (types.VersionCandidate, bool) {
	var matching []types.VersionCandidate
	for _, candidate := range candidates {
		switch request.Kind {
		case types.VersionExact:
			if candidate.Version == request.Value {
				return candidate, true
			}
		case types.VersionPrefix:
			if hasVersionPrefix(candidate.Version, request.Value) {
				matching = append(matching, candidate)
			}
		default:
			matching = append(matching, candidate)
		}
	}
	if len(matching) == 0 {
		return types.VersionCandidate{}, false
	}
	cache := newVersionCache()
	sort.SliceStable(matching, func(i, j int) bool {
		return cache.compare(matching[i].Version, matching[j].Version) > 0
	})
	return matching[0], true
}
