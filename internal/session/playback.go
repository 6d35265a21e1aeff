package session

import (
	"github.com/hazadus/go-videoplayer/internal/data"
	"github.com/hazadus/go-videoplayer/internal/player"
)

// PlayResult результат запуска видео
type PlayResult struct {
	Video   data.Video
	Stopped *data.Video // Видео, остановленное перед запуском, если было
}

// PlayOutcome результат запуска одного видео из плейлиста
type PlayOutcome struct {
	Video  data.Video
	Result PlayResult
	Err    error
}

// Play запускает видео по id, останавливая текущее.
// Проверки существования и флага выполняются до остановки.
func (m *Manager) Play(id string) (PlayResult, error) {
	video, err := m.lookup(id)
	if err != nil {
		return PlayResult{}, err
	}
	if reason, flagged := m.flags[id]; flagged {
		return PlayResult{}, &FlaggedError{Reason: reason}
	}

	stopped := m.player.Play(video)
	if stopped != nil {
		m.logger.Debug("video stopped", "video_id", stopped.ID)
	}
	m.logger.Debug("video started", "video_id", video.ID)
	return PlayResult{Video: video, Stopped: stopped}, nil
}

// Stop останавливает текущее видео
func (m *Manager) Stop() (data.Video, error) {
	video, err := m.player.Stop()
	if err != nil {
		return data.Video{}, err
	}
	m.logger.Debug("video stopped", "video_id", video.ID)
	return video, nil
}

// PlayRandom запускает случайное непомеченное видео
func (m *Manager) PlayRandom() (PlayResult, error) {
	var candidates []data.Video
	for _, v := range m.catalog.All() {
		if _, flagged := m.flags[v.ID]; !flagged {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return PlayResult{}, ErrCatalogEmpty
	}
	return m.Play(candidates[m.rng.IntN(len(candidates))].ID)
}

// Pause ставит текущее видео на паузу.
// ErrAlreadyPaused возвращается вместе с видео и носит информационный характер.
func (m *Manager) Pause() (data.Video, error) {
	video, err := m.player.Pause()
	if err == nil {
		m.logger.Debug("video paused", "video_id", video.ID)
	}
	return video, err
}

// Resume продолжает воспроизведение видео на паузе
func (m *Manager) Resume() (data.Video, error) {
	video, err := m.player.Resume()
	if err == nil {
		m.logger.Debug("video resumed", "video_id", video.ID)
	}
	return video, err
}

// Current возвращает текущее видео и флаг паузы
func (m *Manager) Current() (player.Playing, error) {
	return m.player.Current()
}

// State возвращает состояние воспроизведения
func (m *Manager) State() player.State {
	return m.player.State()
}

// PlayAll по очереди запускает каждое видео плейлиста.
// Каждый запуск останавливает предыдущий, поэтому в итоге играет последнее доступное видео.
func (m *Manager) PlayAll(name string) ([]PlayOutcome, error) {
	p, err := m.playlists.Get(name)
	if err != nil {
		return nil, err
	}

	videos := p.Videos()
	outcomes := make([]PlayOutcome, 0, len(videos))
	for _, v := range videos {
		result, err := m.Play(v.ID)
		outcomes = append(outcomes, PlayOutcome{Video: v, Result: result, Err: err})
	}
	return outcomes, nil
}
