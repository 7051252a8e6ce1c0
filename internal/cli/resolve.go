package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rosmsg-flatten/internal/app"
)

type resolveOptions struct {
	SearchPaths []string
	IndexFile   string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve <package/msg/Type>",
		Short: "Print the raw schema text of a single message type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.Context(), cmd, opts, args[0])
		},
	}

	cmd.Flags().StringSliceVar(&opts.SearchPaths, "search-path", nil, "Search path root(s), ament install layout")
	cmd.Flags().StringVar(&opts.IndexFile, "index-file", "", "Load a prebuilt index manifest instead of walking search paths")

	_ = viper.BindPFlag("search_path", cmd.Flags().Lookup("search-path"))
	_ = viper.BindPFlag("index_file", cmd.Flags().Lookup("index-file"))

	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions, typeName string) error {
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		Type:        typeName,
		SearchPaths: resolveStrings(cmd, opts.SearchPaths, "search_path", "search-path"),
		IndexFile:   resolveString(cmd, opts.IndexFile, "index_file", "index-file"),
	})
	if err != nil {
		return err
	}
	fmt.Println(result.Schema)
	return nil
}
