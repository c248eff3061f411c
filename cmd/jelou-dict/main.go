// Command jelou-dict maintains the local copy of the pronunciation
// dictionary and checks it against the transliteration rules.
// It is intended to be run offline, not by end users.
//
// Subcommands:
//
//	fetch            warm the dictionary cache (--refresh downloads again)
//	coverage         scan every dictionary word for unconvertible entries
//	variants WORD    print the variants of WORD and the one chosen
//	version          print build information
//
// Flags:
//
//	--config   path to YAML config file (default: $CONFIG_PATH or ./config.yaml)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/jelou/internal/app"
	"github.com/heartmarshall/jelou/internal/config"
	"github.com/heartmarshall/jelou/pkg/ctxutil"
)

type runtimeDeps struct {
	configPath string
	app        *app.App
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, _ = ctxutil.EnsureRequestID(ctx)

	deps := &runtimeDeps{}
	if err := rootCommand(deps).ExecuteContext(ctx); err != nil {
		if deps.app != nil {
			deps.app.Logger.ErrorContext(ctx, "jelou-dict failed", slog.String("error", err.Error()))
		} else {
			log.Printf("jelou-dict: %v", err)
		}
		stop()
		os.Exit(1)
	}
}

func rootCommand(deps *runtimeDeps) *cobra.Command {
	root := &cobra.Command{
		Use:           "jelou-dict",
		Short:         "Maintain the pronunciation dictionary",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsSetup(cmd) {
				return nil
			}
			path := deps.configPath
			if path == "" {
				path = os.Getenv("CONFIG_PATH")
			}
			cfg, err := config.LoadFrom(path)
			if err != nil {
				return err
			}
			a, err := app.New(cfg, app.NewLogger(cfg.Log))
			if err != nil {
				return err
			}
			deps.app = a
			return nil
		},
	}

	root.PersistentFlags().StringVar(&deps.configPath, "config", "", "path to YAML config file")

	root.AddCommand(
		fetchCommand(deps),
		coverageCommand(deps),
		variantsCommand(deps),
		versionCommand(),
	)
	return root
}

// skipsSetup reports whether cmd runs without config and dictionary wiring.
func skipsSetup(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "version", "help", "completion":
			return true
		}
	}
	return false
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	}
}
