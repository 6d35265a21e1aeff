// Package playlist содержит коллекцию именованных плейлистов.
// Имена сравниваются без учета регистра, отображаемое имя сохраняет исходный регистр.
package playlist

import (
	"errors"
	"sort"
	"strings"

	"github.com/hazadus/go-videoplayer/internal/data"
)

var (
	// ErrDuplicateName плейлист с таким именем уже существует
	ErrDuplicateName = errors.New("a playlist with the same name already exists")
	// ErrInvalidName пустое имя плейлиста
	ErrInvalidName = errors.New("playlist name is empty")
	// ErrNotFound плейлист не существует
	ErrNotFound = errors.New("playlist does not exist")
	// ErrAlreadyInPlaylist видео уже есть в плейлисте
	ErrAlreadyInPlaylist = errors.New("video already added")
	// ErrNotInPlaylist видео нет в плейлисте
	ErrNotInPlaylist = errors.New("video is not in playlist")
)

// Playlist упорядоченный список видео без повторов
type Playlist struct {
	name   string
	key    string
	videos []data.Video
}

// Name возвращает отображаемое имя
func (p *Playlist) Name() string { return p.name }

// Key возвращает ключ плейлиста (имя в нижнем регистре)
func (p *Playlist) Key() string { return p.key }

// Len возвращает количество видео
func (p *Playlist) Len() int { return len(p.videos) }

// Videos возвращает копию списка видео в порядке добавления
func (p *Playlist) Videos() []data.Video {
	videos := make([]data.Video, len(p.videos))
	copy(videos, p.videos)
	return videos
}

// Contains сообщает, есть ли видео с указанным id в плейлисте
func (p *Playlist) Contains(id string) bool {
	return p.indexOf(id) >= 0
}

// Add добавляет видео в конец плейлиста
func (p *Playlist) Add(video data.Video) error {
	if p.Contains(video.ID) {
		return ErrAlreadyInPlaylist
	}
	p.videos = append(p.videos, video)
	return nil
}

// Remove удаляет видео из плейлиста
func (p *Playlist) Remove(id string) error {
	i := p.indexOf(id)
	if i < 0 {
		return ErrNotInPlaylist
	}
	p.videos = append(p.videos[:i], p.videos[i+1:]...)
	return nil
}

// Clear удаляет все видео, сам плейлист остается
func (p *Playlist) Clear() {
	p.videos = nil
}

func (p *Playlist) indexOf(id string) int {
	for i, v := range p.videos {
		if v.ID == id {
			return i
		}
	}
	return -1
}

// Collection хранит плейлисты по ключу в нижнем регистре
type Collection struct {
	byKey map[string]*Playlist
}

// NewCollection создает пустую коллекцию
func NewCollection() *Collection {
	return &Collection{byKey: make(map[string]*Playlist)}
}

// KeyOf возвращает ключ для имени плейлиста
func KeyOf(name string) string {
	return strings.ToLower(name)
}

// Create создает пустой плейлист
func (c *Collection) Create(name string) (*Playlist, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}
	key := KeyOf(name)
	if _, exists := c.byKey[key]; exists {
		return nil, ErrDuplicateName
	}
	p := &Playlist{name: name, key: key}
	c.byKey[key] = p
	return p, nil
}

// Get ищет плейлист по имени без учета регистра
func (c *Collection) Get(name string) (*Playlist, error) {
	p, ok := c.byKey[KeyOf(name)]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

// Delete удаляет плейлист
func (c *Collection) Delete(name string) error {
	key := KeyOf(name)
	if _, ok := c.byKey[key]; !ok {
		return ErrNotFound
	}
	delete(c.byKey, key)
	return nil
}

// Len возвращает количество плейлистов
func (c *Collection) Len() int {
	return len(c.byKey)
}

// List возвращает плейлисты, отсортированные по имени без учета регистра
func (c *Collection) List() []*Playlist {
	list := make([]*Playlist, 0, len(c.byKey))
	for _, p := range c.byKey {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].key != list[j].key {
			return list[i].key < list[j].key
		}
		return list[i].name < list[j].name
	})
	return list
}
