package ports

import (
	"context"

	"rcatalog/internal/types"
)

// ReleaseSourcePort lists the releases of a repository, falling back to its
// tags when no release was published. Expected conditions (missing
// repository, exhausted quota) are reported through ReleaseList.Status;
// only unexpected failures are returned as errors.
type ReleaseSourcePort interface {
	FetchReleases(ctx context.Context, repo types.RepoID) (types.ReleaseList, error)
}
