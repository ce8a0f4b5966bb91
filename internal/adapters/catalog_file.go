package adapters

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"rcatalog/internal/ports"
	"rcatalog/internal/types"
)

type CatalogFileAdapter struct{}

func NewCatalogFileAdapter() CatalogFileAdapter {
	return CatalogFileAdapter{}
}

// Load reads and merges catalog files in order. A package name defined twice,
// in one file or across files, is rejected.
func (a CatalogFileAdapter) Load(paths []string) ([]types.PackageDefinition, error) {
	if len(paths) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one catalog file is required")
	}
	var merged []types.PackageDefinition
	origin := map[string]string{}
	for _, path := range paths {
		catalog, err := a.load(path)
		if err != nil {
			return nil, err
		}
		for _, def := range catalog.Packages {
			name := strings.TrimSpace(def.Name)
			if previous, ok := origin[name]; ok && name != "" {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeAlreadyExists).
					WithMsg(fmt.Sprintf("package %s defined twice (%s, %s)", name, previous, path))
			}
			origin[name] = path
			merged = append(merged, def)
		}
	}
	return merged, nil
}

func (a CatalogFileAdapter) load(path string) (types.CatalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.CatalogFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("catalog file not found").
			WithCause(err)
	}
	var catalog types.CatalogFile
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return types.CatalogFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse catalog yaml").
			WithCause(err)
	}
	return catalog, nil
}

var _ ports.CatalogPort = CatalogFileAdapter{}
