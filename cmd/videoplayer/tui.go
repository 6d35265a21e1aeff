package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-videoplayer/internal/tui"
)

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (app *Application) createTUICommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch TUI (Terminal User Interface)",
		Long:  `Launch interactive terminal user interface for browsing, playing and flagging videos.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.launchTUI(ctx)
		},
	}
}

func (app *Application) launchTUI(ctx context.Context) error {
	tuiApp := tui.NewApp(app.Session)

	if err := tuiApp.Run(ctx); err != nil {
		return fmt.Errorf("ошибка TUI: %w", err)
	}
	return nil
}
