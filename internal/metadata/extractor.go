// Package metadata извлекает метаданные из медиафайлов и строит по ним библиотеку видео
package metadata

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/dhowden/tag"
	"github.com/gopxl/beep/mp3"

	"github.com/hazadus/go-videoplayer/internal/data"
)

// supportedExtensions расширения файлов, которые попадают в библиотеку при сканировании
var supportedExtensions = map[string]bool{
	".mp3":  true,
	".m4a":  true,
	".m4v":  true,
	".mp4":  true,
	".flac": true,
	".ogg":  true,
}

// MediaMetadata хранит метаданные медиафайла
type MediaMetadata struct {
	Artist string
	Title  string
	Album  string
	Genre  string
}

// Extractor извлекает метаданные из медиафайлов
type Extractor struct{}

// NewExtractor создает новый экстрактор метаданных
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractFromReader извлекает метаданные из io.ReadSeeker
func (e *Extractor) ExtractFromReader(reader io.ReadSeeker, source string) MediaMetadata {
	// Сбрасываем reader в начало
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return e.getDefaultMetadata(source)
	}

	metadata, err := tag.ReadFrom(reader)
	if err != nil {
		return e.getDefaultMetadata(source)
	}

	result := MediaMetadata{
		Artist: metadata.Artist(),
		Title:  metadata.Title(),
		Album:  metadata.Album(),
		Genre:  metadata.Genre(),
	}
	if result.Title == "" {
		result.Title = e.getDefaultMetadata(source).Title
	}
	return result
}

// ExtractFromFile извлекает метаданные из файла
func (e *Extractor) ExtractFromFile(filePath string) MediaMetadata {
	file, err := os.Open(filePath)
	if err != nil {
		return e.getDefaultMetadata(filePath)
	}
	defer file.Close()

	return e.ExtractFromReader(file, filePath)
}

// GetDuration получает длительность MP3 файла
func (e *Extractor) GetDuration(filePath string) (time.Duration, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	streamer, format, err := mp3.Decode(file)
	if err != nil {
		return 0, fmt.Errorf("ошибка декодирования MP3: %w", err)
	}
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()), nil
}

// ScanDir обходит каталог и строит библиотеку из найденных медиафайлов.
// Порядок видео совпадает с лексическим порядком путей.
func (e *Extractor) ScanDir(dir string) (*data.Library, error) {
	root, err := data.ExpandHome(dir)
	if err != nil {
		return nil, err
	}

	var videos []data.Video
	usedIDs := make(map[string]int)

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !supportedExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		meta := e.ExtractFromFile(path)
		video := data.Video{
			ID:     uniqueID(usedIDs, videoID(path)),
			Title:  meta.Title,
			Tags:   genreTags(meta.Genre),
			Source: path,
		}
		if strings.EqualFold(filepath.Ext(path), ".mp3") {
			// Битый или нестандартный mp3 просто остается без длительности
			if duration, err := e.GetDuration(path); err == nil {
				video.Duration = duration
			}
		}
		videos = append(videos, video)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования каталога %s: %w", root, err)
	}

	return data.NewLibrary(videos)
}

// getDefaultMetadata возвращает метаданные по умолчанию на основе имени файла
func (e *Extractor) getDefaultMetadata(source string) MediaMetadata {
	fileName := filepath.Base(source)
	nameWithoutExt := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	// Пытаемся разобрать имя файла в формате "Artist - Title"
	parts := strings.Split(nameWithoutExt, " - ")
	if len(parts) >= 2 {
		return MediaMetadata{
			Artist: strings.TrimSpace(parts[0]),
			Title:  strings.TrimSpace(strings.Join(parts[1:], " - ")),
		}
	}

	return MediaMetadata{
		Artist: "Unknown Artist",
		Title:  nameWithoutExt,
	}
}

// videoID строит id из имени файла: нижний регистр, все кроме букв и цифр заменяется на "_"
func videoID(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var b strings.Builder
	underscore := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			underscore = false
			continue
		}
		if !underscore && b.Len() > 0 {
			b.WriteByte('_')
			underscore = true
		}
	}

	id := strings.TrimSuffix(b.String(), "_")
	if id == "" {
		id = "video"
	}
	return id
}

func uniqueID(used map[string]int, id string) string {
	used[id]++
	if n := used[id]; n > 1 {
		return fmt.Sprintf("%s_%d", id, n)
	}
	return id
}

// genreTags превращает жанр вида "Rock/Pop" в теги "#rock", "#pop"
func genreTags(genre string) []string {
	var tags []string
	for _, g := range strings.FieldsFunc(genre, func(r rune) bool { return r == '/' || r == ',' || r == ';' }) {
		g = strings.ToLower(strings.Join(strings.Fields(g), "_"))
		if g != "" {
			tags = append(tags, "#"+g)
		}
	}
	return tags
}
