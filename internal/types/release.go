package types

// RepoID identifies a repository on the hosting platform.
type RepoID struct {
	Owner string
	Name  string
}

func (r RepoID) String() string {
	return r.Owner + "/" + r.Name
}

// ReleaseRecord is one entry of a releases or tags listing. Tag objects only
// carry Name and never set Prerelease.
type ReleaseRecord struct {
	TagName    string `json:"tag_name"`
	Name       string `json:"name"`
	Prerelease bool   `json:"prerelease"`
}

// Label returns the raw tag, preferring tag_name over name.
func (r ReleaseRecord) Label() string {
	if r.TagName != "" {
		return r.TagName
	}
	return r.Name
}

type ReleaseList struct {
	Status   FetchStatus
	Records  []ReleaseRecord
	FromTags bool
}

type VersionCandidate struct {
	Version string
	Tag     string
}

type VersionRequest struct {
	Kind  VersionRequestKind
	Value string
}

func LatestVersion() VersionRequest {
	return VersionRequest{Kind: VersionLatest}
}

func ExactVersion(version string) VersionRequest {
	return VersionRequest{Kind: VersionExact, Value: version}
}

func VersionPrefixRequest(prefix string) VersionRequest {
	return VersionRequest{Kind: VersionPrefix, Value: prefix}
}
