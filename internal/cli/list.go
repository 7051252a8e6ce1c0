package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rosmsg-flatten/internal/app"
)

type listOptions struct {
	SearchPaths []string
	IndexFile   string
}

func newListCommand() *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every message type known to the index",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.SearchPaths, "search-path", nil, "Search path root(s), ament install layout")
	cmd.Flags().StringVar(&opts.IndexFile, "index-file", "", "Load a prebuilt index manifest instead of walking search paths")

	_ = viper.BindPFlag("search_path", cmd.Flags().Lookup("search-path"))
	_ = viper.BindPFlag("index_file", cmd.Flags().Lookup("index-file"))

	return cmd
}

func runList(ctx context.Context, cmd *cobra.Command, opts listOptions) error {
	service := newAppService()
	result, err := service.List(ctx, app.ListRequest{
		SearchPaths: resolveStrings(cmd, opts.SearchPaths, "search_path", "search-path"),
		IndexFile:   resolveString(cmd, opts.IndexFile, "index_file", "index-file"),
	})
	if err != nil {
		return err
	}
	for _, typeName := range result.Types {
		fmt.Println(typeName)
	}
	return nil
}
