package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/five82/playpen/internal/app"
	"github.com/five82/playpen/internal/config"
	"github.com/five82/playpen/internal/editor"
)

// runApp is swapped out in tests.
var runApp = app.Run

// Execute runs the playpen command line.
func Execute(ctx context.Context) error {
	if err := NewRoot().ExecuteContext(ctx); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}

// NewRoot builds the root command. With no argument it opens a new project;
// an argument names a saved revision, either as an id or as a path such as
// "/abc123".
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "playpen [revision]",
		Short:         "Terminal playground for Elm",
		Long:          "Playpen: edit, compile, format and share Elm programs against a playground server.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			route := editor.NewProject()
			if len(args) == 1 {
				route = editor.ParseRoute(args[0])
				if route.Kind == editor.RouteNotFound {
					return fmt.Errorf("invalid revision %q", args[0])
				}
			}
			poll, err := cmd.Flags().GetInt("poll")
			if err != nil {
				return err
			}
			return runApp(cmd.Context(), app.Options{
				ConfigPath: mustGetStringFlag(cmd, "config"),
				PrefsPath:  mustGetStringFlag(cmd, "prefs"),
				PollEvery:  poll,
				Route:      route,
			})
		},
	}

	root.PersistentFlags().StringP("config", "c", "", "Path to config.toml (default: ~/.config/playpen/config.toml)")
	root.Flags().String("prefs", "", "Path to prefs.toml (default: ~/.config/playpen/prefs.toml)")
	root.Flags().Int("poll", 0, "Connectivity probe interval in seconds (default: 5)")

	root.AddCommand(newConfigCmd())
	return root
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := mustGetStringFlag(cmd, "config")
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			data, err := cfg.Encode()
			if err != nil {
				return err
			}
			resolved, err := config.Path(path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", resolved)
			_, err = out.Write(data)
			return err
		},
	}
}

func mustGetStringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "flag error:", err)
		os.Exit(2)
	}
	return v
}
