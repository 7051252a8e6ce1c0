package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rosmsg-flatten/internal/app"
)

type flattenOptions struct {
	SearchPaths []string
	IndexFile   string
	Output      string
}

func newFlattenCommand() *cobra.Command {
	opts := flattenOptions{}
	cmd := &cobra.Command{
		Use:   "flatten <package/msg/Type>",
		Short: "Flatten a message type and its transitive dependencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlatten(cmd.Context(), cmd, opts, args[0])
		},
	}

	cmd.Flags().StringSliceVar(&opts.SearchPaths, "search-path", nil, "Search path root(s), ament install layout")
	cmd.Flags().StringVar(&opts.IndexFile, "index-file", "", "Load a prebuilt index manifest instead of walking search paths")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Write the flattened text to a file instead of stdout")

	_ = viper.BindPFlag("search_path", cmd.Flags().Lookup("search-path"))
	_ = viper.BindPFlag("index_file", cmd.Flags().Lookup("index-file"))

	return cmd
}

func runFlatten(ctx context.Context, cmd *cobra.Command, opts flattenOptions, typeName string) error {
	service := newAppService()
	result, err := service.Flatten(ctx, app.FlattenRequest{
		Type:        typeName,
		SearchPaths: resolveStrings(cmd, opts.SearchPaths, "search_path", "search-path"),
		IndexFile:   resolveString(cmd, opts.IndexFile, "index_file", "index-file"),
	})
	if err != nil {
		return err
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(result.Flattened+"\n"), 0644); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write flattened output: " + opts.Output).
				WithCause(err)
		}
		return nil
	}
	fmt.Println(result.Flattened)
	return nil
}
