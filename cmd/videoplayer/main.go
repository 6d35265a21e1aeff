package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/hazadus/go-videoplayer/internal/config"
	"github.com/hazadus/go-videoplayer/internal/data"
	"github.com/hazadus/go-videoplayer/internal/metadata"
	"github.com/hazadus/go-videoplayer/internal/session"
)

const (
	defaultConfigPath = "~/.videoplayer.yaml"
)

// Application хранит зависимости, общие для всех команд
type Application struct {
	Config  *config.Config
	Library *data.Library
	Session *session.Manager
	Logger  *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &Application{}
	rootCmd := app.createRootCommand(ctx)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// setup загружает конфигурацию, библиотеку и создает сеанс
func (app *Application) setup(configPath string, explicit bool, cfgFlags *pflag.FlagSet) error {
	if !explicit {
		// Файл по умолчанию необязателен
		path, err := data.ExpandHome(configPath)
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err != nil {
			configPath = ""
		}
	}

	cfg, err := config.LoadConfig(configPath, cfgFlags)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}
	app.Config = cfg

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	app.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	lib, err := app.loadLibrary()
	if err != nil {
		return err
	}
	app.Library = lib

	opts := []session.Option{session.WithLogger(app.Logger)}
	if cfg.Seed != 0 {
		opts = append(opts, session.WithSeed(cfg.Seed))
	}
	app.Session = session.New(lib, opts...)
	return nil
}

// loadLibrary выбирает источник библиотеки: файл, каталог с медиафайлами или встроенные данные
func (app *Application) loadLibrary() (*data.Library, error) {
	switch {
	case app.Config.Library != "":
		app.Logger.Debug("loading library file", "path", app.Config.Library)
		lib, err := data.LoadLibrary(app.Config.Library)
		if err != nil {
			return nil, fmt.Errorf("ошибка загрузки библиотеки: %w", err)
		}
		return lib, nil

	case app.Config.LibraryDir != "":
		app.Logger.Debug("scanning library dir", "dir", app.Config.LibraryDir)
		return metadata.NewExtractor().ScanDir(app.Config.LibraryDir)

	default:
		return data.DefaultLibrary()
	}
}
