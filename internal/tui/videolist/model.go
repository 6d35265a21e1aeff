// Package videolist содержит модель экрана списка видео для TUI
package videolist

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
	"github.com/hazadus/go-videoplayer/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	flaggedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
)

// videoItem реализует интерфейс list.Item для видео
type videoItem struct {
	video session.VideoView
}

func (i videoItem) FilterValue() string {
	return i.video.Title + " " + strings.Join(i.video.Tags, " ")
}

// videoItemDelegate реализует отображение элементов списка
type videoItemDelegate struct{}

func (d videoItemDelegate) Height() int                             { return 1 }
func (d videoItemDelegate) Spacing() int                            { return 0 }
func (d videoItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d videoItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(videoItem)
	if !ok {
		return
	}

	// Название | id | теги | длительность
	duration := ""
	if i.video.Duration > 0 {
		duration = utils.FormatDuration(i.video.Duration)
	}
	str := fmt.Sprintf("%-30s %-28s %-24s %s",
		utils.TruncateString(i.video.Title, 30),
		utils.TruncateString(i.video.ID, 28),
		utils.TruncateString(utils.FormatTags(i.video.Tags), 24),
		duration)
	if i.video.Flagged {
		str += flaggedStyle.Render(" ⚑ " + i.video.FlagReason)
	}

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// Model представляет модель экрана списка видео
type Model struct {
	list    list.Model
	session *session.Manager
}

// NewModel создает новую модель списка видео
func NewModel(sess *session.Manager) *Model {
	l := list.New(videoItems(sess), videoItemDelegate{}, 0, 0)
	l.Title = "Видео"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	return &Model{
		list:    l,
		session: sess,
	}
}

func videoItems(sess *session.Manager) []list.Item {
	videos := sess.Videos()
	items := make([]list.Item, len(videos))
	for i, v := range videos {
		items[i] = videoItem{video: v}
	}
	return items
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// RefreshData обновляет отметки флагов без пересоздания списка
func (m *Model) RefreshData() {
	m.list.SetItems(videoItems(m.session))
}

// Capturing сообщает, что список перехватывает ввод (идет набор фильтра)
func (m *Model) Capturing() bool {
	return m.list.FilterState() == list.Filtering
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.Capturing() {
			break
		}

		item, ok := m.list.SelectedItem().(videoItem)
		if !ok {
			break
		}

		switch msg.String() {
		case "enter":
			return m, nowplaying.PlayStatus(m.session.Play(item.video.ID))

		case "f":
			if item.video.Flagged {
				return m, nowplaying.Fail("Не удалось пометить видео", session.ErrAlreadyFlagged)
			}
			return m, openPrompt(prompt.FlagReason, item.video, "Пометить видео: "+item.video.Title)

		case "a":
			video, err := m.session.Allow(item.video.ID)
			if err != nil {
				return m, nowplaying.Fail("Не удалось снять флаг", err)
			}
			m.RefreshData()
			return m, nowplaying.Report("Флаг снят: %s", video.Title)

		case "+":
			return m, openPrompt(prompt.AddToPlaylist, item.video, "Добавить в плейлист: "+item.video.Title)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func openPrompt(purpose prompt.Purpose, video session.VideoView, title string) tea.Cmd {
	return func() tea.Msg {
		return prompt.OpenMsg{Purpose: purpose, Target: video.ID, Title: title}
	}
}

// View отображает модель
func (m *Model) View() string {
	view := m.list.View()
	extraHelp := helpStyle.Render("Enter: воспроизвести • f: флаг • a: снять флаг • +: в плейлист • /: поиск")
	return view + "\n" + extraHelp
}
