package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rcatalog/internal/app"
)

type validateOptions struct {
	Catalogs []string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate catalog files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.Catalogs, "catalog", nil, "Catalog file paths")
	_ = viper.BindPFlag("catalogs", cmd.Flags().Lookup("catalog"))
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	service := newAppService()
	result, err := service.Validate(ctx, app.ValidateRequest{
		CatalogPaths: resolveStrings(cmd, opts.Catalogs, "catalogs", "catalog"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("validated: %d packages (%d hosted on github)\n", result.Packages, result.GitHubHosted)
	return nil
}
