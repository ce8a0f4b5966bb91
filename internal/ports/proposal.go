package ports

import "rcatalog/internal/types"

type ProposalWriterPort interface {
	Write(path string, file types.ProposalFile) error
}
