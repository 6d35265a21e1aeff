package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-videoplayer/internal/utils"
)

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all videos from the library",
		Long:  `Display a table of all videos in the library, sorted by title.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.listVideos(cmd.OutOrStdout())
		},
	}
}

func (app *Application) listVideos(out io.Writer) {
	videos := app.Session.Videos()
	if len(videos) == 0 {
		fmt.Fprintln(out, "📚 Библиотека пуста. Укажите файл библиотеки или каталог с медиафайлами.")
		return
	}

	fmt.Fprintf(out, "📚 Найдено видео: %d\n\n", len(videos))

	// Выводим заголовок таблицы
	fmt.Fprintf(out, "%-30s %-30s %-24s %-10s\n", "ID", "Название", "Теги", "Длительность")
	fmt.Fprintln(out, strings.Repeat("-", 100))

	for _, v := range videos {
		duration := "N/A"
		if v.Duration > 0 {
			duration = utils.FormatDuration(v.Duration)
		}

		fmt.Fprintf(out, "%-30s %-30s %-24s %-10s\n",
			utils.TruncateString(v.ID, 28),
			utils.TruncateString(v.Title, 28),
			utils.TruncateString(utils.FormatTags(v.Tags), 22),
			duration)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "💡 Используйте 'videoplayer' и команду PLAY <video_id> для воспроизведения")
}
