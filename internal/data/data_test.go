package data

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultLibrary(t *testing.T) {
	lib, err := DefaultLibrary()
	if err != nil {
		t.Fatalf("Ошибка загрузки встроенной библиотеки: %v", err)
	}

	if lib.Len() != 5 {
		t.Errorf("Ожидалось 5 видео, получено %d", lib.Len())
	}

	video, ok := lib.VideoByID("amazing_cats_video_id")
	if !ok {
		t.Fatal("Видео amazing_cats_video_id не найдено")
	}
	if video.Title != "Amazing Cats" {
		t.Errorf("Ожидался Title: Amazing Cats, получено: %s", video.Title)
	}
	if len(video.Tags) != 2 || video.Tags[0] != "#cat" {
		t.Errorf("Неожиданные теги: %v", video.Tags)
	}

	nothing, _ := lib.VideoByID("nothing_video_id")
	if len(nothing.Tags) != 0 {
		t.Errorf("Ожидалось видео без тегов, получено: %v", nothing.Tags)
	}
}

func TestAllReturnsCopyInCatalogOrder(t *testing.T) {
	lib, err := NewLibrary([]Video{
		{ID: "b", Title: "B"},
		{ID: "a", Title: "A"},
	})
	if err != nil {
		t.Fatalf("Ошибка создания библиотеки: %v", err)
	}

	videos := lib.All()
	if videos[0].ID != "b" || videos[1].ID != "a" {
		t.Errorf("Порядок каталога нарушен: %v", videos)
	}

	videos[0].Title = "changed"
	again, _ := lib.VideoByID("b")
	if again.Title != "B" {
		t.Error("Изменение копии повлияло на библиотеку")
	}
}

func TestReturnedTagsAreCopies(t *testing.T) {
	lib, err := NewLibrary([]Video{{ID: "a", Title: "A", Tags: []string{"#one", "#two"}}})
	if err != nil {
		t.Fatalf("Ошибка создания библиотеки: %v", err)
	}

	byID, _ := lib.VideoByID("a")
	byID.Tags[0] = "#changed"
	all := lib.All()
	all[0].Tags[1] = "#changed"

	again, _ := lib.VideoByID("a")
	if again.Tags[0] != "#one" || again.Tags[1] != "#two" {
		t.Errorf("Изменение тегов копии повлияло на библиотеку: %v", again.Tags)
	}
}

func TestNewLibraryRejectsInvalidIDs(t *testing.T) {
	_, err := NewLibrary([]Video{{ID: "x"}, {ID: "x"}})
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("Ожидалась ошибка ErrDuplicateID, получено: %v", err)
	}

	_, err = NewLibrary([]Video{{ID: "  ", Title: "Без id"}})
	if !errors.Is(err, ErrEmptyID) {
		t.Errorf("Ожидалась ошибка ErrEmptyID, получено: %v", err)
	}
}

func TestLoadLibraryYAML(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "library.yaml")

	content := `videos:
  - id: clip_1
    title: First Clip
    tags: ["#one"]
    duration: 3m20s
  - id: clip_2
    title: Second Clip
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Ошибка записи файла: %v", err)
	}

	lib, err := LoadLibrary(path)
	if err != nil {
		t.Fatalf("Ошибка загрузки библиотеки: %v", err)
	}
	if lib.Len() != 2 {
		t.Fatalf("Ожидалось 2 видео, получено %d", lib.Len())
	}

	clip, _ := lib.VideoByID("clip_1")
	if clip.Duration != 3*time.Minute+20*time.Second {
		t.Errorf("Ожидалась длительность 3m20s, получено %v", clip.Duration)
	}
}

func TestLoadLibraryTOML(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "library.toml")

	content := `[[videos]]
id = "toml_clip"
title = "TOML Clip"
tags = ["#config"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Ошибка записи файла: %v", err)
	}

	lib, err := LoadLibrary(path)
	if err != nil {
		t.Fatalf("Ошибка загрузки библиотеки: %v", err)
	}

	clip, ok := lib.VideoByID("toml_clip")
	if !ok {
		t.Fatal("Видео toml_clip не найдено")
	}
	if clip.Title != "TOML Clip" || len(clip.Tags) != 1 {
		t.Errorf("Неожиданное видео: %+v", clip)
	}
}

func TestLoadLibraryErrors(t *testing.T) {
	tempDir := t.TempDir()

	if _, err := LoadLibrary(filepath.Join(tempDir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Ожидалась ошибка отсутствия файла, получено: %v", err)
	}

	jsonPath := filepath.Join(tempDir, "library.json")
	if err := os.WriteFile(jsonPath, []byte("{}"), 0644); err != nil {
		t.Fatalf("Ошибка записи файла: %v", err)
	}
	if _, err := LoadLibrary(jsonPath); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Ожидалась ошибка ErrUnsupportedFormat, получено: %v", err)
	}

	badPath := filepath.Join(tempDir, "bad.yaml")
	if err := os.WriteFile(badPath, []byte("videos: [unclosed"), 0644); err != nil {
		t.Fatalf("Ошибка записи файла: %v", err)
	}
	if _, err := LoadLibrary(badPath); err == nil {
		t.Error("Ожидалась ошибка разбора некорректного YAML")
	}
}

func TestSaveLibraryKeepsScannerFields(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "scanned.yaml")

	lib, err := NewLibrary([]Video{{
		ID:       "song",
		Title:    "Song",
		Duration: 90 * time.Second,
		Source:   "/media/song.mp3",
	}})
	if err != nil {
		t.Fatalf("Ошибка создания библиотеки: %v", err)
	}

	if err := SaveLibrary(lib, path); err != nil {
		t.Fatalf("Ошибка сохранения библиотеки: %v", err)
	}

	loaded, err := LoadLibrary(path)
	if err != nil {
		t.Fatalf("Ошибка загрузки библиотеки: %v", err)
	}
	song, _ := loaded.VideoByID("song")
	if song.Duration != 90*time.Second || song.Source != "/media/song.mp3" {
		t.Errorf("Поля сканера потеряны: %+v", song)
	}
}
