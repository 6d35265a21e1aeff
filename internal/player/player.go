// Package player содержит конечный автомат воспроизведения: остановлено, играет, на паузе
package player

import (
	"errors"

	"github.com/hazadus/go-videoplayer/internal/data"
)

var (
	// ErrNoActivePlayback ни одно видео не воспроизводится
	ErrNoActivePlayback = errors.New("no video is currently playing")
	// ErrAlreadyPaused видео уже на паузе
	ErrAlreadyPaused = errors.New("video already paused")
	// ErrNotPaused видео воспроизводится и не стоит на паузе
	ErrNotPaused = errors.New("video is not paused")
)

// State состояние воспроизведения: Stopped или Playing
type State interface {
	isState()
}

// Stopped ничего не воспроизводится
type Stopped struct{}

// Playing воспроизводится Video; Paused выставлен, если видео на паузе
type Playing struct {
	Video  data.Video
	Paused bool
}

func (Stopped) isState() {}
func (Playing) isState() {}

// Player хранит текущее состояние воспроизведения.
// Нулевое значение готово к использованию и находится в состоянии Stopped.
type Player struct {
	state State
}

// NewPlayer создает новый экземпляр плеера
func NewPlayer() *Player {
	return &Player{state: Stopped{}}
}

// State возвращает текущее состояние
func (p *Player) State() State {
	if p.state == nil {
		return Stopped{}
	}
	return p.state
}

// Current возвращает воспроизводимое видео или ErrNoActivePlayback
func (p *Player) Current() (Playing, error) {
	playing, ok := p.State().(Playing)
	if !ok {
		return Playing{}, ErrNoActivePlayback
	}
	return playing, nil
}

// Play запускает видео, заменяя текущее.
// Возвращает остановленное видео, если до этого что-то воспроизводилось.
func (p *Player) Play(video data.Video) (stopped *data.Video) {
	if playing, ok := p.State().(Playing); ok {
		prev := playing.Video
		stopped = &prev
	}
	p.state = Playing{Video: video}
	return stopped
}

// Stop останавливает воспроизведение и сбрасывает паузу
func (p *Player) Stop() (data.Video, error) {
	playing, err := p.Current()
	if err != nil {
		return data.Video{}, err
	}
	p.state = Stopped{}
	return playing.Video, nil
}

// Pause ставит воспроизведение на паузу
func (p *Player) Pause() (data.Video, error) {
	playing, err := p.Current()
	if err != nil {
		return data.Video{}, err
	}
	if playing.Paused {
		return playing.Video, ErrAlreadyPaused
	}
	p.state = Playing{Video: playing.Video, Paused: true}
	return playing.Video, nil
}

// Resume снимает воспроизведение с паузы
func (p *Player) Resume() (data.Video, error) {
	playing, err := p.Current()
	if err != nil {
		return data.Video{}, err
	}
	if !playing.Paused {
		return playing.Video, ErrNotPaused
	}
	p.state = Playing{Video: playing.Video}
	return playing.Video, nil
}

// IsPlaying возвращает true, если видео воспроизводится и не стоит на паузе
func (p *Player) IsPlaying() bool {
	playing, ok := p.State().(Playing)
	return ok && !playing.Paused
}
