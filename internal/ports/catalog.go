package ports

import "rcatalog/internal/types"

type CatalogPort interface {
	Load(paths []string) ([]types.PackageDefinition, error)
}
