package core

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"rcatalog/internal/ports"
	"rcatalog/internal/types"
)

// Updater proposes new upstream sources for platform-hosted packages.
type Updater struct {
	Releases ports.ReleaseSourcePort
}

func NewUpdater(releases ports.ReleaseSourcePort) Updater {
	return Updater{Releases: releases}
}

// ProposeUpdate resolves the repository behind record, lists its releases,
// selects the version matching request and rebuilds the source for it.
// Expected dead ends are reported through the outcome's Reason; an error is
// returned only for failures the caller has to see.
func (u Updater) ProposeUpdate(ctx context.Context, record types.PackageRecord, request types.VersionRequest) (types.UpdateOutcome, error) {
	assert.NotEmpty(ctx, record.Name, "package name must be set")
	if request.Kind == "" {
		request = types.LatestVersion()
	}
	logger := log.Ctx(ctx).With().Str("package", record.Name).Logger()

	repo, ok := resolveRepo(record)
	if !ok {
		logger.Debug().Msg("source not hosted on platform")
		return types.NoUpdate(types.ReasonNotHosted), nil
	}

	list, err := u.Releases.FetchReleases(ctx, repo)
	if err != nil {
		return types.UpdateOutcome{}, errbuilder.New().
			WithCode(errbuilder.CodeOf(err)).
			WithMsg(fmt.Sprintf("failed to fetch releases for %s", record.Name)).
			WithCause(err)
	}
	switch list.Status {
	case types.FetchUnreachable:
		return types.NoUpdate(types.ReasonUnreachable), nil
	case types.FetchRateLimited:
		return types.NoUpdate(types.ReasonRateLimited), nil
	}

	candidates := NormalizeReleases(FilterPrereleases(list), record.Name)
	if len(candidates) == 0 {
		log.Warn().Str("package", record.Name).Str("repository", repo.String()).Msg("no release tag could be read as a version")
		return types.NoUpdate(types.ReasonNoVersions), nil
	}

	selected, ok := SelectVersion(candidates, request)
	if !ok {
		logger.Debug().Str("request", string(request.Kind)).Str("value", request.Value).Msg("no matching version")
		return types.NoUpdate(types.ReasonVersionNotFound), nil
	}

	locations, ok := RewriteSource(record, repo.Name, selected.Version)
	if !ok {
		logger.Debug().Str("version", selected.Version).Msg("no url template matched")
		return types.NoUpdate(types.ReasonNoMatchingPattern), nil
	}

	source := &types.UpstreamSource{
		PackageName: record.Name,
		Version:     selected.Version,
	}
	if record.Source.Kind == types.SourceKindVCS {
		source.VCS = &types.VcsSource{URL: locations[0], Ref: selected.Tag}
	} else {
		source.URLs = locations
	}
	logger.Debug().Str("version", selected.Version).Str("tag", selected.Tag).Msg("update proposed")
	return types.UpdateOutcome{Source: source}, nil
}

// resolveRepo finds the first platform URL of record's source and parses the
// repository out of it.
func resolveRepo(record types.PackageRecord) (types.RepoID, bool) {
	for _, location := range record.Source.Locations() {
		if !IsPlatformURL(location) {
			continue
		}
		if repo, ok := ParseRepo(location); ok {
			return repo, true
		}
	}
	return types.RepoID{}, false
}
