package adapters

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"rcatalog/internal/ports"
	"rcatalog/internal/types"
)

type ProposalFileAdapter struct{}

func NewProposalFileAdapter() ProposalFileAdapter {
	return ProposalFileAdapter{}
}

func (a ProposalFileAdapter) Write(path string, file types.ProposalFile) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is required")
	}
	ordered := file
	ordered.Proposals = append([]types.Proposal(nil), file.Proposals...)
	sort.Slice(ordered.Proposals, func(i, j int) bool {
		return ordered.Proposals[i].Name < ordered.Proposals[j].Name
	})
	ordered.Failures = append([]types.Failure(nil), file.Failures...)
	sort.Slice(ordered.Failures, func(i, j int) bool {
		return ordered.Failures[i].Name < ordered.Failures[j].Name
	})
	data, err := yaml.Marshal(ordered)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal proposals").
			WithCause(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create proposals directory").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write proposals").
			WithCause(err)
	}
	return nil
}

// ReadProposalFile loads a proposals file written by ProposalFileAdapter.
func ReadProposalFile(path string) (types.ProposalFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ProposalFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("proposals file not found").
			WithCause(err)
	}
	var file types.ProposalFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return types.ProposalFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid proposals format").
			WithCause(err)
	}
	return file, nil
}

var _ ports.ProposalWriterPort = ProposalFileAdapter{}
