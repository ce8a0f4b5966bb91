package types

// UpstreamSource is the proposed new source for a package. Exactly one of
// URLs or VCS is set, mirroring the shape of the input source.
type UpstreamSource struct {
	PackageName string
	Version     string
	URLs        []string
	VCS         *VcsSource
}

type UpdateOutcome struct {
	Source *UpstreamSource
	Reason NoUpdateReason
}

func (o UpdateOutcome) Available() bool {
	return o.Source != nil
}

func NoUpdate(reason NoUpdateReason) UpdateOutcome {
	return UpdateOutcome{Reason: reason}
}

type ProposalFile struct {
	GeneratedAt string                 `yaml:"generated_at"`
	Halted      bool                   `yaml:"halted,omitempty"`
	Proposals   []Proposal             `yaml:"proposals"`
	Failures    []Failure              `yaml:"failures,omitempty"`
	Skipped     map[NoUpdateReason]int `yaml:"skipped,omitempty"`
}

type Proposal struct {
	Name           string     `yaml:"name"`
	CurrentVersion string     `yaml:"current_version"`
	Version        string     `yaml:"version"`
	URLs           []string   `yaml:"urls,omitempty"`
	VCS            *VcsSource `yaml:"vcs,omitempty"`
}

type Failure struct {
	Name  string `yaml:"name"`
	Error string `yaml:"error"`
}
