package session

import (
	"strings"

	"github.com/hazadus/go-videoplayer/internal/data"
)

// FlagResult результат пометки видео флагом
type FlagResult struct {
	Video   data.Video
	Reason  string
	Stopped bool // Видео воспроизводилось и было остановлено
}

// Flag помечает видео флагом. Пустая причина заменяется на DefaultFlagReason.
func (m *Manager) Flag(id, reason string) (FlagResult, error) {
	video, err := m.lookup(id)
	if err != nil {
		return FlagResult{}, err
	}
	if _, flagged := m.flags[id]; flagged {
		return FlagResult{}, ErrAlreadyFlagged
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultFlagReason
	}
	m.flags[id] = reason

	result := FlagResult{Video: video, Reason: reason}
	if current, err := m.player.Current(); err == nil && current.Video.ID == id {
		if _, err := m.Stop(); err == nil {
			result.Stopped = true
		}
	}

	m.logger.Debug("video flagged", "video_id", id, "reason", reason, "stopped", result.Stopped)
	return result, nil
}

// Allow снимает флаг с видео
func (m *Manager) Allow(id string) (data.Video, error) {
	video, err := m.lookup(id)
	if err != nil {
		return data.Video{}, err
	}
	if _, flagged := m.flags[id]; !flagged {
		return data.Video{}, ErrNotFlagged
	}
	delete(m.flags, id)

	m.logger.Debug("video allowed", "video_id", id)
	return video, nil
}

// FlagReason возвращает причину флага, если видео помечено
func (m *Manager) FlagReason(id string) (string, bool) {
	reason, ok := m.flags[id]
	return reason, ok
}
