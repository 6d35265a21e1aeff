// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-videoplayer/internal/session"
	"github.com/hazadus/go-videoplayer/internal/tui/app"
)

// App представляет основное TUI приложение
type App struct {
	session *session.Manager
	options []tea.ProgramOption
}

// NewApp создает новый экземпляр TUI приложения над сеансом
func NewApp(sess *session.Manager, opts ...tea.ProgramOption) *App {
	return &App{
		session: sess,
		options: opts,
	}
}

// Model возвращает главную модель приложения
func (tuiApp *App) Model() *app.MainModel {
	return app.NewMainModel(tuiApp.session)
}

// Run запускает TUI приложение и блокируется до выхода или отмены контекста
func (tuiApp *App) Run(ctx context.Context) error {
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, tuiApp.options...)
	p := tea.NewProgram(tuiApp.Model(), opts...)

	_, err := p.Run()
	return err
}
