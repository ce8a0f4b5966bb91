package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rcatalog/internal/app"
	"rcatalog/internal/types"
)

type refreshOptions struct {
	Catalogs            []string
	Output              string
	TargetVersion       string
	VersionPrefix       string
	GitHubToken         string
	GitHubAPI           string
	ContinueOnRateLimit bool
}

func newRefreshCommand() *cobra.Command {
	opts := refreshOptions{}
	cmd := &cobra.Command{
		Use:   "refresh [package...]",
		Short: "Look up new GitHub releases and propose updated sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRefresh(cmd.Context(), cmd, opts, args)
		},
	}
	cmd.Flags().StringSliceVar(&opts.Catalogs, "catalog", nil, "Catalog file paths")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Write proposals to this YAML file")
	cmd.Flags().StringVar(&opts.TargetVersion, "target-version", "", "Propose exactly this version")
	cmd.Flags().StringVar(&opts.VersionPrefix, "version-prefix", "", "Propose the newest version starting with this prefix")
	cmd.Flags().StringVar(&opts.GitHubToken, "github-token", "", "GitHub API token")
	cmd.Flags().StringVar(&opts.GitHubAPI, "github-api", "", "GitHub API base URL")
	cmd.Flags().BoolVar(&opts.ContinueOnRateLimit, "continue-on-rate-limit", false, "Keep going after the API quota is exhausted")
	_ = viper.BindPFlag("catalogs", cmd.Flags().Lookup("catalog"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("github_token", cmd.Flags().Lookup("github-token"))
	_ = viper.BindPFlag("github_api", cmd.Flags().Lookup("github-api"))
	_ = viper.BindPFlag("continue_on_rate_limit", cmd.Flags().Lookup("continue-on-rate-limit"))
	return cmd
}

func runRefresh(ctx context.Context, cmd *cobra.Command, opts refreshOptions, packages []string) error {
	request, err := versionRequest(opts.TargetVersion, opts.VersionPrefix)
	if err != nil {
		return err
	}
	service := newAppService()
	result, err := service.Refresh(ctx, app.RefreshRequest{
		CatalogPaths:        resolveStrings(cmd, opts.Catalogs, "catalogs", "catalog"),
		Packages:            packages,
		Version:             request,
		OutputPath:          resolveString(cmd, opts.Output, "output", "output"),
		ContinueOnRateLimit: resolveBool(cmd, opts.ContinueOnRateLimit, "continue_on_rate_limit", "continue-on-rate-limit"),
	})
	if err != nil {
		return err
	}
	printRefreshSummary(result)
	if result.Halted {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("github rate limit exhausted, refresh halted")
	}
	return nil
}

func versionRequest(exact string, prefix string) (types.VersionRequest, error) {
	exact = strings.TrimSpace(exact)
	prefix = strings.TrimSpace(prefix)
	switch {
	case exact != "" && prefix != "":
		return types.VersionRequest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("--target-version and --version-prefix are mutually exclusive")
	case exact != "":
		return types.ExactVersion(exact), nil
	case prefix != "":
		return types.VersionPrefixRequest(prefix), nil
	default:
		return types.LatestVersion(), nil
	}
}

func printRefreshSummary(result app.RefreshResult) {
	fmt.Printf("checked: %d\n", result.Checked)
	fmt.Printf("proposals: %d\n", len(result.Proposals))
	for _, proposal := range result.Proposals {
		fmt.Printf("- %s %s -> %s\n", proposal.Name, proposal.CurrentVersion, proposal.Version)
	}
	if len(result.Failures) > 0 {
		fmt.Printf("failures: %d\n", len(result.Failures))
		for _, failure := range result.Failures {
			fmt.Printf("- %s: %s\n", failure.Name, failure.Error)
		}
	}
	reasons := make([]string, 0, len(result.Skipped))
	for reason := range result.Skipped {
		reasons = append(reasons, string(reason))
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		fmt.Printf("skipped %s: %d\n", reason, result.Skipped[types.NoUpdateReason(reason)])
	}
}
