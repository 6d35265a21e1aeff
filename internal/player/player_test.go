package player

import (
	"errors"
	"testing"

	"github.com/hazadus/go-videoplayer/internal/data"
)

var (
	cats = data.Video{ID: "amazing_cats_video_id", Title: "Amazing Cats"}
	dogs = data.Video{ID: "funny_dogs_video_id", Title: "Funny Dogs"}
)

func TestZeroValueIsStopped(t *testing.T) {
	var p Player

	if _, ok := p.State().(Stopped); !ok {
		t.Errorf("Ожидалось состояние Stopped, получено %T", p.State())
	}
	if _, err := p.Current(); !errors.Is(err, ErrNoActivePlayback) {
		t.Errorf("Ожидалась ошибка ErrNoActivePlayback, получено: %v", err)
	}
}

func TestPlay(t *testing.T) {
	p := NewPlayer()

	if stopped := p.Play(cats); stopped != nil {
		t.Errorf("Ничего не должно было остановиться, получено %v", stopped)
	}

	current, err := p.Current()
	if err != nil {
		t.Fatalf("Ошибка получения текущего видео: %v", err)
	}
	if current.Video.ID != cats.ID || current.Paused {
		t.Errorf("Неожиданное состояние: %+v", current)
	}
	if !p.IsPlaying() {
		t.Error("Плеер должен воспроизводить видео")
	}
}

func TestPlayReplacesAndClearsPause(t *testing.T) {
	p := NewPlayer()
	p.Play(cats)
	if _, err := p.Pause(); err != nil {
		t.Fatalf("Ошибка паузы: %v", err)
	}

	stopped := p.Play(dogs)
	if stopped == nil || stopped.ID != cats.ID {
		t.Fatalf("Ожидалась остановка %s, получено %v", cats.ID, stopped)
	}

	current, _ := p.Current()
	if current.Video.ID != dogs.ID || current.Paused {
		t.Errorf("Неожиданное состояние после замены: %+v", current)
	}
}

func TestPauseResume(t *testing.T) {
	p := NewPlayer()

	if _, err := p.Pause(); !errors.Is(err, ErrNoActivePlayback) {
		t.Errorf("Пауза без видео: ожидалась ErrNoActivePlayback, получено: %v", err)
	}
	if _, err := p.Resume(); !errors.Is(err, ErrNoActivePlayback) {
		t.Errorf("Продолжение без видео: ожидалась ErrNoActivePlayback, получено: %v", err)
	}

	p.Play(cats)

	if _, err := p.Resume(); !errors.Is(err, ErrNotPaused) {
		t.Errorf("Ожидалась ErrNotPaused, получено: %v", err)
	}

	video, err := p.Pause()
	if err != nil || video.ID != cats.ID {
		t.Fatalf("Ошибка паузы: %v", err)
	}
	if p.IsPlaying() {
		t.Error("Плеер на паузе не должен считаться воспроизводящим")
	}

	if _, err := p.Pause(); !errors.Is(err, ErrAlreadyPaused) {
		t.Errorf("Ожидалась ErrAlreadyPaused, получено: %v", err)
	}

	if _, err := p.Resume(); err != nil {
		t.Errorf("Ошибка продолжения: %v", err)
	}
	if !p.IsPlaying() {
		t.Error("После продолжения плеер должен воспроизводить")
	}
}

func TestStop(t *testing.T) {
	p := NewPlayer()

	if _, err := p.Stop(); !errors.Is(err, ErrNoActivePlayback) {
		t.Errorf("Ожидалась ErrNoActivePlayback, получено: %v", err)
	}

	p.Play(cats)
	_, _ = p.Pause()

	video, err := p.Stop()
	if err != nil {
		t.Fatalf("Ошибка остановки: %v", err)
	}
	if video.ID != cats.ID {
		t.Errorf("Остановлено не то видео: %s", video.ID)
	}
	if _, ok := p.State().(Stopped); !ok {
		t.Errorf("Ожидалось состояние Stopped, получено %T", p.State())
	}

	// Пауза сбрасывается вместе с остановкой
	p.Play(dogs)
	current, _ := p.Current()
	if current.Paused {
		t.Error("Новое видео не должно быть на паузе")
	}
}
