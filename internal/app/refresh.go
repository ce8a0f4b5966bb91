package app

import (
	"context"
	"fmt"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"rcatalog/internal/core"
	"rcatalog/internal/shared"
	"rcatalog/internal/types"
)

// Refresh runs the updater over the catalog one package at a time. A failure
// for one package is recorded and the run continues; an exhausted API quota
// stops the run unless ContinueOnRateLimit is set.
func (s Service) Refresh(ctx context.Context, req RefreshRequest) (RefreshResult, error) {
	paths := shared.TrimmedNonEmpty(req.CatalogPaths)
	if len(paths) == 0 {
		return RefreshResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("catalog path is required")
	}
	defs, err := s.Catalog.Load(paths)
	if err != nil {
		return RefreshResult{}, err
	}
	records, err := core.BuildRecords(defs)
	if err != nil {
		return RefreshResult{}, err
	}
	records, err = selectPackages(records, shared.TrimmedNonEmpty(req.Packages))
	if err != nil {
		return RefreshResult{}, err
	}
	request := req.Version
	if request.Kind == "" {
		request = types.LatestVersion()
	}

	updater := core.NewUpdater(s.Releases)
	result := RefreshResult{Skipped: map[types.NoUpdateReason]int{}}
	for i, record := range records {
		if err := ctx.Err(); err != nil {
			return result, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("refresh canceled").
				WithCause(err)
		}
		result.Checked++
		outcome, err := updater.ProposeUpdate(ctx, record, request)
		if err != nil {
			log.Error().Err(err).Str("package", record.Name).Msg("update check failed")
			result.Failures = append(result.Failures, types.Failure{Name: record.Name, Error: err.Error()})
			continue
		}
		if !outcome.Available() {
			result.Skipped[outcome.Reason]++
			if outcome.Reason == types.ReasonRateLimited && !req.ContinueOnRateLimit {
				remaining := len(records) - i - 1
				result.Skipped[types.ReasonRateLimited] += remaining
				result.Halted = true
				log.Warn().Int("remaining", remaining).Msg("rate limit exhausted, stopping refresh")
				break
			}
			continue
		}
		if !isUpdate(record.Version, outcome.Source.Version, request) {
			result.Skipped[types.ReasonUpToDate]++
			continue
		}
		log.Info().
			Str("package", record.Name).
			Str("current", record.Version).
			Str("proposed", outcome.Source.Version).
			Msg("update available")
		result.Proposals = append(result.Proposals, toProposal(record, outcome.Source))
	}

	if req.OutputPath != "" {
		file := types.ProposalFile{
			GeneratedAt: s.Clock().UTC().Format(time.RFC3339),
			Halted:      result.Halted,
			Proposals:   result.Proposals,
			Failures:    result.Failures,
			Skipped:     result.Skipped,
		}
		if err := s.Proposals.Write(req.OutputPath, file); err != nil {
			return result, err
		}
	}
	return result, nil
}

// isUpdate accepts only newer versions for "latest" requests; an explicit
// version or prefix may also move backwards.
func isUpdate(current string, proposed string, request types.VersionRequest) bool {
	cmp := core.CompareVersions(proposed, current)
	if cmp == 0 {
		return false
	}
	return cmp > 0 || request.Kind != types.VersionLatest
}

func selectPackages(records []types.PackageRecord, names []string) ([]types.PackageRecord, error) {
	if len(names) == 0 {
		return records, nil
	}
	byName := make(map[string]types.PackageRecord, len(records))
	for _, record := range records {
		byName[record.Name] = record
	}
	selected := make([]types.PackageRecord, 0, len(names))
	for _, name := range names {
		record, ok := byName[name]
		if !ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("package %s not in catalog", name))
		}
		selected = append(selected, record)
	}
	return selected, nil
}

func toProposal(record types.PackageRecord, source *types.UpstreamSource) types.Proposal {
	return types.Proposal{
		Name:           record.Name,
		CurrentVersion: record.Version,
		Version:        source.Version,
		URLs:           source.URLs,
		VCS:            source.VCS,
	}
}
