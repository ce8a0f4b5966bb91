package app

import (
	"time"

	"rcatalog/internal/adapters"
	"rcatalog/internal/ports"
)

type Service struct {
	Catalog   ports.CatalogPort
	Releases  ports.ReleaseSourcePort
	Proposals ports.ProposalWriterPort
	Clock     func() time.Time
}

func NewService(github ...adapters.GitHubOption) Service {
	return Service{
		Catalog:   adapters.NewCatalogFileAdapter(),
		Releases:  adapters.NewGitHubReleaseAdapter(github...),
		Proposals: adapters.NewProposalFileAdapter(),
		Clock:     time.Now,
	}
}
