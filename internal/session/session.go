// Package session содержит менеджер состояния сеанса: воспроизведение, флаги и плейлисты.
//
// Manager не потокобезопасен: команды обрабатываются строго по одной.
// Любая операция, завершившаяся ошибкой, не изменяет состояние.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/hazadus/go-videoplayer/internal/data"
	"github.com/hazadus/go-videoplayer/internal/player"
	"github.com/hazadus/go-videoplayer/internal/playlist"
)

// DefaultFlagReason причина флага, если она не указана
const DefaultFlagReason = "Not supplied"

var (
	// ErrNotFound видео с таким id нет в каталоге
	ErrNotFound = errors.New("video does not exist")
	// ErrAlreadyFlagged видео уже помечено флагом
	ErrAlreadyFlagged = errors.New("video is already flagged")
	// ErrNotFlagged видео не помечено флагом
	ErrNotFlagged = errors.New("video is not flagged")
	// ErrCatalogEmpty нет доступных (непомеченных) видео
	ErrCatalogEmpty = errors.New("no videos available")

	ErrNoActivePlayback = player.ErrNoActivePlayback
	ErrAlreadyPaused    = player.ErrAlreadyPaused
	ErrNotPaused        = player.ErrNotPaused

	ErrDuplicateName     = playlist.ErrDuplicateName
	ErrInvalidName       = playlist.ErrInvalidName
	ErrPlaylistNotFound  = playlist.ErrNotFound
	ErrAlreadyInPlaylist = playlist.ErrAlreadyInPlaylist
	ErrNotInPlaylist     = playlist.ErrNotInPlaylist
)

// FlaggedError операция заблокирована флагом видео
type FlaggedError struct {
	Reason string
}

func (e *FlaggedError) Error() string {
	return fmt.Sprintf("video is currently flagged (reason: %s)", e.Reason)
}

// Catalog источник видео только для чтения
type Catalog interface {
	All() []data.Video
	VideoByID(id string) (data.Video, bool)
}

// Manager владеет состоянием сеанса
type Manager struct {
	id        string
	catalog   Catalog
	player    *player.Player
	playlists *playlist.Collection
	flags     map[string]string
	rng       *rand.Rand
	logger    *slog.Logger
}

// Option настраивает Manager
type Option func(*Manager)

// WithLogger задает логгер
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithRand задает генератор случайных чисел для PlayRandom
func WithRand(rng *rand.Rand) Option {
	return func(m *Manager) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithSeed делает выбор PlayRandom воспроизводимым
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

// New создает менеджер сеанса над каталогом
func New(catalog Catalog, opts ...Option) *Manager {
	m := &Manager{
		id:        uuid.NewString(),
		catalog:   catalog,
		player:    player.NewPlayer(),
		playlists: playlist.NewCollection(),
		flags:     make(map[string]string),
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With("session_id", m.id)
	m.logger.Debug("session started", "videos", len(catalog.All()))
	return m
}

// ID возвращает идентификатор сеанса
func (m *Manager) ID() string {
	return m.id
}

// VideoView видео вместе с состоянием флага
type VideoView struct {
	data.Video
	Flagged    bool
	FlagReason string
}

func (m *Manager) view(video data.Video) VideoView {
	reason, flagged := m.flags[video.ID]
	return VideoView{Video: video, Flagged: flagged, FlagReason: reason}
}

// NumberOfVideos возвращает размер каталога
func (m *Manager) NumberOfVideos() int {
	return len(m.catalog.All())
}

// Videos возвращает все видео каталога, отсортированные по названию
func (m *Manager) Videos() []VideoView {
	videos := sortByTitle(m.catalog.All())
	views := make([]VideoView, len(videos))
	for i, v := range videos {
		views[i] = m.view(v)
	}
	return views
}

// lookup ищет видео в каталоге
func (m *Manager) lookup(id string) (data.Video, error) {
	video, ok := m.catalog.VideoByID(id)
	if !ok {
		return data.Video{}, ErrNotFound
	}
	return video, nil
}
