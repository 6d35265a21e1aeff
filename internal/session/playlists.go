package session

import (
	"github.com/hazadus/go-videoplayer/internal/data"
)

// PlaylistSummary имя плейлиста и количество видео в нем
type PlaylistSummary struct {
	Name  string
	Count int
}

// PlaylistView содержимое плейлиста с состоянием флагов
type PlaylistView struct {
	Name   string
	Videos []VideoView
}

// Empty сообщает, что в плейлисте нет видео
func (v PlaylistView) Empty() bool {
	return len(v.Videos) == 0
}

// CreatePlaylist создает пустой плейлист и возвращает его отображаемое имя
func (m *Manager) CreatePlaylist(name string) (string, error) {
	p, err := m.playlists.Create(name)
	if err != nil {
		return "", err
	}
	m.logger.Debug("playlist created", "playlist", p.Name())
	return p.Name(), nil
}

// AddToPlaylist добавляет видео в конец плейлиста
func (m *Manager) AddToPlaylist(name, id string) (data.Video, error) {
	p, err := m.playlists.Get(name)
	if err != nil {
		return data.Video{}, err
	}
	video, err := m.lookup(id)
	if err != nil {
		return data.Video{}, err
	}
	if reason, flagged := m.flags[id]; flagged {
		return data.Video{}, &FlaggedError{Reason: reason}
	}
	if err := p.Add(video); err != nil {
		return data.Video{}, err
	}

	m.logger.Debug("video added to playlist", "playlist", p.Name(), "video_id", id)
	return video, nil
}

// RemoveFromPlaylist удаляет видео из плейлиста
func (m *Manager) RemoveFromPlaylist(name, id string) (data.Video, error) {
	p, err := m.playlists.Get(name)
	if err != nil {
		return data.Video{}, err
	}
	video, err := m.lookup(id)
	if err != nil {
		return data.Video{}, err
	}
	if err := p.Remove(id); err != nil {
		return data.Video{}, err
	}

	m.logger.Debug("video removed from playlist", "playlist", p.Name(), "video_id", id)
	return video, nil
}

// ClearPlaylist удаляет все видео из плейлиста
func (m *Manager) ClearPlaylist(name string) error {
	p, err := m.playlists.Get(name)
	if err != nil {
		return err
	}
	p.Clear()
	m.logger.Debug("playlist cleared", "playlist", p.Name())
	return nil
}

// DeletePlaylist удаляет плейлист целиком
func (m *Manager) DeletePlaylist(name string) error {
	if err := m.playlists.Delete(name); err != nil {
		return err
	}
	m.logger.Debug("playlist deleted", "playlist", name)
	return nil
}

// Playlists возвращает плейлисты, отсортированные по имени без учета регистра
func (m *Manager) Playlists() []PlaylistSummary {
	list := m.playlists.List()
	summaries := make([]PlaylistSummary, len(list))
	for i, p := range list {
		summaries[i] = PlaylistSummary{Name: p.Name(), Count: p.Len()}
	}
	return summaries
}

// ShowPlaylist возвращает содержимое плейлиста
func (m *Manager) ShowPlaylist(name string) (PlaylistView, error) {
	p, err := m.playlists.Get(name)
	if err != nil {
		return PlaylistView{}, err
	}

	videos := p.Videos()
	view := PlaylistView{Name: p.Name(), Videos: make([]VideoView, len(videos))}
	for i, v := range videos {
		view.Videos[i] = m.view(v)
	}
	return view, nil
}
