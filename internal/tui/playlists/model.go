// Package playlists содержит модель экрана плейлистов для TUI
package playlists

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-videoplayer/internal/session"
	"github.com/hazadus/go-videoplayer/internal/tui/nowplaying"
	"github.com/hazadus/go-videoplayer/internal/tui/prompt"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
)

type playlistItem struct {
	summary session.PlaylistSummary
}

func (i playlistItem) FilterValue() string {
	return i.summary.Name
}

type playlistItemDelegate struct{}

func (d playlistItemDelegate) Height() int                             { return 1 }
func (d playlistItemDelegate) Spacing() int                            { return 0 }
func (d playlistItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d playlistItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(playlistItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%-30s %d", i.summary.Name, i.summary.Count)

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// Model представляет модель экрана плейлистов
type Model struct {
	list    list.Model
	session *session.Manager
}

// NewModel создает новую модель экрана плейлистов
func NewModel(sess *session.Manager) *Model {
	l := list.New(playlistItems(sess), playlistItemDelegate{}, 0, 0)
	l.Title = "Плейлисты"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle

	return &Model{
		list:    l,
		session: sess,
	}
}

func playlistItems(sess *session.Manager) []list.Item {
	summaries := sess.Playlists()
	items := make([]list.Item, len(summaries))
	for i, s := range summaries {
		items[i] = playlistItem{summary: s}
	}
	return items
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// RefreshData перечитывает плейлисты сеанса
func (m *Model) RefreshData() {
	m.list.SetItems(playlistItems(m.session))
}

// Capturing сообщает, что экран перехватывает ввод
func (m *Model) Capturing() bool {
	return false
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "c" {
			return m, func() tea.Msg {
				return prompt.OpenMsg{Purpose: prompt.CreatePlaylist, Title: "Новый плейлист"}
			}
		}

		item, ok := m.list.SelectedItem().(playlistItem)
		if !ok {
			break
		}
		name := item.summary.Name

		switch msg.String() {
		case "enter":
			return m, m.playAll(name)

		case "d":
			if err := m.session.ClearPlaylist(name); err != nil {
				return m, nowplaying.Fail("Не удалось очистить плейлист "+name, err)
			}
			m.RefreshData()
			return m, nowplaying.Report("Плейлист %s очищен", name)

		case "x":
			if err := m.session.DeletePlaylist(name); err != nil {
				return m, nowplaying.Fail("Не удалось удалить плейлист "+name, err)
			}
			m.RefreshData()
			return m, nowplaying.Report("Плейлист удален: %s", name)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// playAll запускает видео плейлиста по очереди; в статусе остается итог
func (m *Model) playAll(name string) tea.Cmd {
	outcomes, err := m.session.PlayAll(name)
	if err != nil {
		return nowplaying.Fail("Не удалось воспроизвести плейлист "+name, err)
	}
	if len(outcomes) == 0 {
		return nowplaying.Report("Плейлист %s пуст", name)
	}

	played, skipped := 0, 0
	for _, o := range outcomes {
		if o.Err != nil {
			skipped++
			continue
		}
		played++
	}
	if played == 0 {
		return nowplaying.Fail("Не удалось воспроизвести плейлист "+name, outcomes[len(outcomes)-1].Err)
	}
	return nowplaying.Report("Плейлист %s: воспроизведено %d, пропущено %d", name, played, skipped)
}

// View отображает модель
func (m *Model) View() string {
	view := m.list.View()
	if len(m.list.Items()) == 0 {
		view += "\n" + itemStyle.Render("Плейлистов пока нет")
	}
	extraHelp := helpStyle.Render("Enter: воспроизвести все • c: создать • d: очистить • x: удалить")
	return view + "\n" + extraHelp
}
