package playlists

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-videoplayer/internal/data"
	"github.com/hazadus/go-videoplayer/internal/session"
	"github.com/hazadus/go-videoplayer/internal/tui/nowplaying"
	"github.com/hazadus/go-videoplayer/internal/tui/prompt"
)

func newTestModel(t *testing.T) (*Model, *session.Manager) {
	t.Helper()
	lib, err := data.DefaultLibrary()
	if err != nil {
		t.Fatalf("DefaultLibrary: %v", err)
	}
	sess := session.New(lib)
	for _, name := range []string{"b_list", "A_list"} {
		if _, err := sess.CreatePlaylist(name); err != nil {
			t.Fatalf("CreatePlaylist: %v", err)
		}
	}
	if _, err := sess.AddToPlaylist("a_list", "funny_dogs_video_id"); err != nil {
		t.Fatalf("AddToPlaylist: %v", err)
	}

	m := NewModel(sess)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	return m, sess
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestItemsSortedByName(t *testing.T) {
	m, _ := newTestModel(t)

	items := m.list.Items()
	if len(items) != 2 {
		t.Fatalf("Expected 2 playlists, got %d", len(items))
	}
	first := items[0].(playlistItem).summary
	if first.Name != "A_list" || first.Count != 1 {
		t.Errorf("Unexpected first playlist: %#v", first)
	}
}

func TestEnterPlaysPlaylist(t *testing.T) {
	m, sess := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	status, ok := cmd().(nowplaying.StatusMsg)
	if !ok || status.Err {
		t.Fatalf("Expected success status, got %#v", cmd())
	}

	current, err := sess.Current()
	if err != nil || current.Video.ID != "funny_dogs_video_id" {
		t.Errorf("Expected playlist video to play, got %#v, %v", current, err)
	}
}

func TestClearAndDelete(t *testing.T) {
	m, sess := newTestModel(t)

	m.Update(runes("d"))
	view, err := sess.ShowPlaylist("a_list")
	if err != nil || !view.Empty() {
		t.Fatalf("Expected cleared playlist, got %#v, %v", view, err)
	}

	m.Update(runes("x"))
	if _, err := sess.ShowPlaylist("a_list"); err == nil {
		t.Error("Expected playlist to be deleted")
	}
	if len(m.list.Items()) != 1 {
		t.Errorf("Expected list to be refreshed, got %d items", len(m.list.Items()))
	}
}

func TestCreateOpensPrompt(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(runes("c"))
	if open, ok := cmd().(prompt.OpenMsg); !ok || open.Purpose != prompt.CreatePlaylist {
		t.Errorf("Expected create playlist prompt, got %#v", cmd())
	}
}
