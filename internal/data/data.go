// Package data содержит модель видео и каталог (библиотеку) видео
package data

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed videos.yaml
var defaultLibraryYAML []byte

var (
	// ErrEmptyID возвращается, если у видео в файле библиотеки нет идентификатора
	ErrEmptyID = errors.New("у видео отсутствует id")
	// ErrDuplicateID возвращается, если идентификатор встречается в библиотеке дважды
	ErrDuplicateID = errors.New("повторяющийся id видео")
	// ErrUnsupportedFormat возвращается для файлов с неизвестным расширением
	ErrUnsupportedFormat = errors.New("неподдерживаемый формат файла библиотеки")
)

// Video описывает одно видео каталога. Значение неизменяемо после загрузки.
type Video struct {
	ID       string        `yaml:"id" toml:"id"`
	Title    string        `yaml:"title" toml:"title"`
	Tags     []string      `yaml:"tags,omitempty" toml:"tags,omitempty"`
	Duration time.Duration `yaml:"duration,omitempty" toml:"duration,omitempty"` // Заполняется сканером медиафайлов
	Source   string        `yaml:"source,omitempty" toml:"source,omitempty"`     // Путь к файлу, если видео найдено сканером
}

// libraryFile структура файла библиотеки
type libraryFile struct {
	Videos []Video `yaml:"videos" toml:"videos"`
}

// Library неизменяемый каталог видео с доступом по id
type Library struct {
	videos []Video
	byID   map[string]int
}

// NewLibrary создает библиотеку из списка видео, сохраняя их порядок
func NewLibrary(videos []Video) (*Library, error) {
	lib := &Library{
		videos: make([]Video, 0, len(videos)),
		byID:   make(map[string]int, len(videos)),
	}
	for _, v := range videos {
		v.ID = strings.TrimSpace(v.ID)
		if v.ID == "" {
			return nil, fmt.Errorf("%w (название %q)", ErrEmptyID, v.Title)
		}
		if _, exists := lib.byID[v.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, v.ID)
		}
		v.Tags = append([]string(nil), v.Tags...)
		lib.byID[v.ID] = len(lib.videos)
		lib.videos = append(lib.videos, v)
	}
	return lib, nil
}

// DefaultLibrary возвращает встроенную демонстрационную библиотеку
func DefaultLibrary() (*Library, error) {
	return parseLibrary(defaultLibraryYAML, ".yaml")
}

// LoadLibrary загружает библиотеку из файла YAML или TOML
func LoadLibrary(filePath string) (*Library, error) {
	path, err := ExpandHome(filePath)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла библиотеки: %w", err)
	}

	lib, err := parseLibrary(raw, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}

func parseLibrary(raw []byte, ext string) (*Library, error) {
	var file libraryFile
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("ошибка разбора yaml: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("ошибка разбора toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return NewLibrary(file.Videos)
}

// SaveLibrary сохраняет библиотеку в YAML файл
func SaveLibrary(lib *Library, filePath string) error {
	path, err := ExpandHome(filePath)
	if err != nil {
		return err
	}

	out, err := MarshalLibrary(lib)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("ошибка записи файла библиотеки: %w", err)
	}
	return nil
}

// MarshalLibrary сериализует библиотеку в YAML
func MarshalLibrary(lib *Library) ([]byte, error) {
	out, err := yaml.Marshal(libraryFile{Videos: lib.All()})
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации библиотеки: %w", err)
	}
	return out, nil
}

// All возвращает копию всех видео в порядке каталога
func (l *Library) All() []Video {
	videos := make([]Video, len(l.videos))
	for i, v := range l.videos {
		videos[i] = v.clone()
	}
	return videos
}

// VideoByID возвращает видео по id
func (l *Library) VideoByID(id string) (Video, bool) {
	i, ok := l.byID[id]
	if !ok {
		return Video{}, false
	}
	return l.videos[i].clone(), true
}

// clone копирует видео вместе с тегами
func (v Video) clone() Video {
	v.Tags = append([]string(nil), v.Tags...)
	return v
}

// Len возвращает количество видео в библиотеке
func (l *Library) Len() int {
	return len(l.videos)
}

// ExpandHome раскрывает "~" в начале пути
func ExpandHome(filePath string) (string, error) {
	if !strings.HasPrefix(filePath, "~") {
		return filePath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return strings.Replace(filePath, "~", home, 1), nil
}
