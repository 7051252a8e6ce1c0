package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rosmsg-flatten/internal/app"
)

type indexOptions struct {
	SearchPaths []string
	Output      string
}

func newIndexCommand() *cobra.Command {
	opts := indexOptions{}
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Build a message index manifest from search paths",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runIndex(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.SearchPaths, "search-path", nil, "Search path root(s), ament install layout")
	cmd.Flags().StringVar(&opts.Output, "output", "msg-index.yaml", "Output path for the index manifest YAML")

	_ = viper.BindPFlag("search_path", cmd.Flags().Lookup("search-path"))
	_ = viper.BindPFlag("index_output", cmd.Flags().Lookup("output"))

	return cmd
}

func runIndex(ctx context.Context, cmd *cobra.Command, opts indexOptions) error {
	service := newAppService()
	result, err := service.BuildIndex(ctx, app.BuildIndexRequest{
		SearchPaths: resolveStrings(cmd, opts.SearchPaths, "search_path", "search-path"),
		Output:      resolveString(cmd, opts.Output, "index_output", "output"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("indexed %d messages into %s\n", result.Count, result.Output)
	return nil
}
