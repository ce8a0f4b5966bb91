package types

// CatalogFile is the on-disk YAML layout of a package catalog.
type CatalogFile struct {
	Packages []PackageDefinition `yaml:"packages"`
}

type PackageDefinition struct {
	Name             string           `yaml:"name"`
	Version          string           `yaml:"version"`
	Source           SourceDefinition `yaml:"source"`
	Synopsis         string           `yaml:"synopsis,omitempty"`
	Description      string           `yaml:"description,omitempty"`
	License          string           `yaml:"license,omitempty"`
	HomePage         string           `yaml:"home_page,omitempty"`
	Inputs           []string         `yaml:"inputs,omitempty"`
	PropagatedInputs []string         `yaml:"propagated_inputs,omitempty"`
	NativeInputs     []string         `yaml:"native_inputs,omitempty"`
}

type SourceDefinition struct {
	Method SourceKind `yaml:"method"`
	URIs   []string   `yaml:"uris,omitempty"`
	URL    string     `yaml:"url,omitempty"`
	Commit string     `yaml:"commit,omitempty"`
	SHA256 string     `yaml:"sha256,omitempty"`
}

// PackageRecord is the read-only view of a catalog entry consumed by the
// updater.
type PackageRecord struct {
	Name    string
	Version string
	Source  Source
}

// Source is either an archive mirror list or a VCS reference, discriminated
// by Kind.
type Source struct {
	Kind    SourceKind
	Archive ArchiveSource
	VCS     VcsSource
}

type ArchiveSource struct {
	URIs []string
}

type VcsSource struct {
	URL string `yaml:"url"`
	Ref string `yaml:"ref"`
}

// ArchiveRecord builds a record with an archive source.
func ArchiveRecord(name string, version string, uris ...string) PackageRecord {
	return PackageRecord{
		Name:    name,
		Version: version,
		Source: Source{
			Kind:    SourceKindArchive,
			Archive: ArchiveSource{URIs: append([]string(nil), uris...)},
		},
	}
}

// VCSRecord builds a record with a git reference source.
func VCSRecord(name string, version string, url string, ref string) PackageRecord {
	return PackageRecord{
		Name:    name,
		Version: version,
		Source: Source{
			Kind: SourceKindVCS,
			VCS:  VcsSource{URL: url, Ref: ref},
		},
	}
}

// Locations returns the URLs a source can be fetched from.
func (s Source) Locations() []string {
	if s.Kind == SourceKindVCS {
		if s.VCS.URL == "" {
			return nil
		}
		return []string{s.VCS.URL}
	}
	return s.Archive.URIs
}
