package app

import "rcatalog/internal/types"

type ValidateRequest struct {
	CatalogPaths []string
}

type ValidateResult struct {
	Packages     int
	GitHubHosted int
}

type RefreshRequest struct {
	CatalogPaths []string
	Packages     []string
	Version      types.VersionRequest
	OutputPath   string
	// ContinueOnRateLimit keeps iterating after the quota is exhausted;
	// every remaining package is then skipped without network I/O.
	ContinueOnRateLimit bool
}

type RefreshResult struct {
	Checked   int
	Proposals []types.Proposal
	Failures  []types.Failure
	Skipped   map[types.NoUpdateReason]int
	Halted    bool
}
