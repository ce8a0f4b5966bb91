package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rcatalog/internal/shared"
	"rcatalog/internal/types"
)

// ValidateDefinition checks the fields the updater relies on. Metadata is
// not inspected.
func ValidateDefinition(def types.PackageDefinition) error {
	name := strings.TrimSpace(def.Name)
	if name == "" {
		return invalidDefinition("package name must be set")
	}
	if strings.TrimSpace(def.Version) == "" {
		return invalidDefinition(fmt.Sprintf("package %s: version must be set", name))
	}
	switch def.Source.Method {
	case types.SourceKindArchive:
		if len(shared.TrimmedNonEmpty(def.Source.URIs)) == 0 {
			return invalidDefinition(fmt.Sprintf("package %s: url-fetch source needs at least one uri", name))
		}
	case types.SourceKindVCS:
		if strings.TrimSpace(def.Source.URL) == "" || strings.TrimSpace(def.Source.Commit) == "" {
			return invalidDefinition(fmt.Sprintf("package %s: git-fetch source needs url and commit", name))
		}
	default:
		return invalidDefinition(fmt.Sprintf("package %s: unknown source method %q", name, def.Source.Method))
	}
	return nil
}

// ToRecord converts a validated definition into the record the updater
// consumes.
func ToRecord(def types.PackageDefinition) types.PackageRecord {
	name := strings.TrimSpace(def.Name)
	version := strings.TrimSpace(def.Version)
	if def.Source.Method == types.SourceKindVCS {
		return types.VCSRecord(name, version, strings.TrimSpace(def.Source.URL), strings.TrimSpace(def.Source.Commit))
	}
	return types.ArchiveRecord(name, version, shared.TrimmedNonEmpty(def.Source.URIs)...)
}

// BuildRecords validates every definition and converts them in order.
func BuildRecords(defs []types.PackageDefinition) ([]types.PackageRecord, error) {
	records := make([]types.PackageRecord, 0, len(defs))
	for i, def := range defs {
		if err := ValidateDefinition(def); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("catalog entry %d is invalid", i)).
				WithCause(err)
		}
		records = append(records, ToRecord(def))
	}
	return records, nil
}

func invalidDefinition(msg string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(msg)
}
