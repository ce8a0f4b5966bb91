package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"rcatalog/internal/core"
	"rcatalog/internal/shared"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	paths := shared.TrimmedNonEmpty(req.CatalogPaths)
	if len(paths) == 0 {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("catalog path is required")
	}
	defs, err := s.Catalog.Load(paths)
	if err != nil {
		return ValidateResult{}, err
	}
	records, err := core.BuildRecords(defs)
	if err != nil {
		return ValidateResult{}, err
	}
	result := ValidateResult{Packages: len(records)}
	for _, record := range records {
		for _, location := range record.Source.Locations() {
			if _, ok := core.ParseRepo(location); ok {
				result.GitHubHosted++
				break
			}
		}
	}
	log.Ctx(ctx).Debug().Int("packages", result.Packages).Int("github", result.GitHubHosted).Msg("catalog validated")
	return result, nil
}
