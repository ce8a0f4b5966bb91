package types

type SourceKind string

const (
	SourceKindArchive SourceKind = "url-fetch"
	SourceKindVCS     SourceKind = "git-fetch"
)

type FetchStatus string

const (
	FetchOK          FetchStatus = "ok"
	FetchUnreachable FetchStatus = "unreachable"
	FetchRateLimited FetchStatus = "rate-limited"
)

type VersionRequestKind string

const (
	VersionLatest VersionRequestKind = "latest"
	VersionExact  VersionRequestKind = "exact"
	VersionPrefix VersionRequestKind = "prefix"
)

// NoUpdateReason records why no update was proposed for a package. Every
// reason means the same thing to a batch caller: skip and move on.
type NoUpdateReason string

const (
	ReasonNone              NoUpdateReason = ""
	ReasonNotHosted         NoUpdateReason = "not-hosted"
	ReasonUnreachable       NoUpdateReason = "unreachable"
	ReasonRateLimited       NoUpdateReason = "rate-limited"
	ReasonNoVersions        NoUpdateReason = "no-versions"
	ReasonVersionNotFound   NoUpdateReason = "version-not-found"
	ReasonNoMatchingPattern NoUpdateReason = "no-matching-template"
	ReasonUpToDate          NoUpdateReason = "up-to-date"
)
