package main

import (
	"context"

	"github.com/spf13/cobra"
)

// createRootCommand создает корневую команду с настроенными подкомандами.
// Без подкоманды запускается интерактивная командная строка.
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "videoplayer",
		Short: "An in-memory video player session with playlists, flags and search",
		Long: `A command line video player that keeps a library of videos in memory
and lets you play, pause, flag, search and group them into playlists.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.setup(configPath, cmd.Flags().Changed("config"), cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runShell(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", defaultConfigPath, "path to the YAML config file")
	flags.String("library", "", "library file (.yaml, .yml or .toml)")
	flags.String("library-dir", "", "directory with media files to scan into the library")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.Uint64("seed", 0, "seed for PLAY_RANDOM (0 picks a random seed)")

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createShellCommand(ctx))
	rootCmd.AddCommand(app.createTUICommand(ctx))
	rootCmd.AddCommand(app.createListCommand())
	rootCmd.AddCommand(app.createScanCommand())

	return rootCmd
}
