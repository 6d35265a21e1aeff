package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-videoplayer/internal/shell"
)

// createShellCommand создает команду shell с привязкой к экземпляру приложения
func (app *Application) createShellCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive command prompt (default)",
		Long:  `Read commands such as PLAY, FLAG_VIDEO or CREATE_PLAYLIST line by line until EXIT.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runShell(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func (app *Application) runShell(ctx context.Context, in io.Reader, out io.Writer) error {
	sh := shell.New(app.Session, in, out,
		shell.WithPrompt(app.Config.Prompt),
		shell.WithLogger(app.Logger),
	)
	return sh.Run(ctx)
}
