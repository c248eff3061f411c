package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/jelou/internal/dictionary"
)

func fetchCommand(deps *runtimeDeps) *cobra.Command {
	var refresh bool

	c := &cobra.Command{
		Use:   "fetch",
		Short: "Warm the dictionary cache",
		Long: `Load the dictionary, downloading it when the cache file is missing.
With --refresh the source is downloaded again and the cache replaced.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			loader := deps.app.Loader

			var (
				d   *dictionary.Dictionary
				err error
			)
			if refresh {
				d, err = loader.Refresh(ctx)
			} else {
				d, err = loader.Dictionary(ctx)
			}
			if err != nil {
				return fmt.Errorf("fetch: %w", err)
			}

			deps.app.Logger.InfoContext(ctx, "dictionary ready",
				slog.String("cache_path", loader.CachePath()),
				slog.Int("words", d.Len()),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "%d words cached at %s\n", d.Len(), loader.CachePath())
			return nil
		},
	}

	c.Flags().BoolVar(&refresh, "refresh", false, "download the source again and replace the cache")
	return c
}
