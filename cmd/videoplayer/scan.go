package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-videoplayer/internal/data"
	"github.com/hazadus/go-videoplayer/internal/metadata"
)

// createScanCommand создает команду scan с привязкой к экземпляру приложения
func (app *Application) createScanCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "Build a library file from a directory of media files",
		Long: `Walk the directory, read tags from audio and video files and print the
resulting library as YAML, or write it to the file given with --output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.scanDir(cmd.OutOrStdout(), args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the library to this YAML file")

	return cmd
}

func (app *Application) scanDir(out io.Writer, dir, output string) error {
	lib, err := metadata.NewExtractor().ScanDir(dir)
	if err != nil {
		return err
	}
	app.Logger.Info("directory scanned", "dir", dir, "videos", lib.Len())

	if output == "" {
		raw, err := data.MarshalLibrary(lib)
		if err != nil {
			return err
		}
		_, err = out.Write(raw)
		return err
	}

	if err := data.SaveLibrary(lib, output); err != nil {
		return err
	}
	fmt.Fprintf(out, "📦 Найдено видео: %d, библиотека сохранена в %s\n", lib.Len(), output)
	return nil
}
