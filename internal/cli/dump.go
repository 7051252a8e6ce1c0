package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rosmsg-flatten/internal/app"
)

type dumpOptions struct {
	SearchPaths []string
	IndexFile   string
	OutputDir   string
	Manifest    string
	Raw         bool
}

func newDumpCommand() *cobra.Command {
	opts := dumpOptions{}
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write the flattened closure of every known message type",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDump(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.SearchPaths, "search-path", nil, "Search path root(s), ament install layout")
	cmd.Flags().StringVar(&opts.IndexFile, "index-file", "", "Load a prebuilt index manifest instead of walking search paths")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Also write all messages as one YAML manifest (filename under the output directory)")
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "Dump raw schema text instead of flattened closures")

	_ = viper.BindPFlag("search_path", cmd.Flags().Lookup("search-path"))
	_ = viper.BindPFlag("index_file", cmd.Flags().Lookup("index-file"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))

	return cmd
}

func runDump(ctx context.Context, cmd *cobra.Command, opts dumpOptions) error {
	service := newAppService()
	result, err := service.Dump(ctx, app.DumpRequest{
		SearchPaths: resolveStrings(cmd, opts.SearchPaths, "search_path", "search-path"),
		IndexFile:   resolveString(cmd, opts.IndexFile, "index_file", "index-file"),
		OutputDir:   resolveString(cmd, opts.OutputDir, "output", "output"),
		Manifest:    opts.Manifest,
		Raw:         resolveBool(cmd, opts.Raw, "raw", "raw"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("dumped %d messages to %s\n", result.Count, result.OutputDir)
	return nil
}
