// Package nowplaying содержит панель текущего воспроизведения и строку статуса для TUI
package nowplaying

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-videoplayer/internal/player"
	"github.com/hazadus/go-videoplayer/internal/session"
	"github.com/hazadus/go-videoplayer/internal/utils"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0000ff"))

	videoInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	statusStyle = lipgloss.NewStyle().
			Bold(true)

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	controlsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff0000")).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			PaddingLeft(2)
)

// Height количество строк, занимаемых панелью
const Height = 5

// StatusMsg сообщение для строки статуса
type StatusMsg struct {
	Text string
	Err  bool
}

// Report возвращает команду, публикующую сообщение в строке статуса
func Report(format string, args ...any) tea.Cmd {
	text := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return StatusMsg{Text: text}
	}
}

// Fail возвращает команду, публикующую ошибку в строке статуса
func Fail(action string, err error) tea.Cmd {
	text := fmt.Sprintf("%s: %v", action, err)
	return func() tea.Msg {
		return StatusMsg{Text: text, Err: true}
	}
}

// PlayStatus описывает результат запуска видео
func PlayStatus(result session.PlayResult, err error) tea.Cmd {
	if err != nil {
		return Fail("Не удалось воспроизвести видео", err)
	}
	if result.Stopped != nil {
		return Report("Остановлено: %s • Воспроизведение: %s", result.Stopped.Title, result.Video.Title)
	}
	return Report("Воспроизведение: %s", result.Video.Title)
}

// Model представляет панель текущего воспроизведения
type Model struct {
	session *session.Manager
	status  StatusMsg
	width   int
}

// NewModel создает новую панель воспроизведения
func NewModel(sess *session.Manager) *Model {
	return &Model{session: sess}
}

// Status возвращает последнее сообщение строки статуса
func (m *Model) Status() StatusMsg {
	return m.status
}

// Update обрабатывает сообщения статуса и клавиши управления воспроизведением
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StatusMsg:
		m.status = msg
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case " ":
			return m, m.togglePause()
		case "s":
			return m, m.stop()
		case "r":
			return m, m.playRandom()
		}
	}

	return m, nil
}

func (m *Model) togglePause() tea.Cmd {
	current, err := m.session.Current()
	if err != nil {
		return Fail("Пауза невозможна", err)
	}

	if current.Paused {
		video, err := m.session.Resume()
		if err != nil {
			return Fail("Не удалось продолжить видео", err)
		}
		return Report("Продолжение: %s", video.Title)
	}

	video, err := m.session.Pause()
	if err != nil {
		return Fail("Пауза невозможна", err)
	}
	return Report("Пауза: %s", video.Title)
}

func (m *Model) stop() tea.Cmd {
	video, err := m.session.Stop()
	if err != nil {
		return Fail("Не удалось остановить видео", err)
	}
	return Report("Остановлено: %s", video.Title)
}

func (m *Model) playRandom() tea.Cmd {
	result, err := m.session.PlayRandom()
	if err != nil {
		return Fail("Нет доступных видео", err)
	}
	return PlayStatus(result, nil)
}

// View отображает панель
func (m *Model) View() string {
	var b strings.Builder

	switch state := m.session.State().(type) {
	case player.Playing:
		info := fmt.Sprintf("%s (%s) %s", state.Video.Title, state.Video.ID, utils.FormatTags(state.Video.Tags))
		if state.Video.Duration > 0 {
			info += " " + utils.FormatDuration(state.Video.Duration)
		}
		b.WriteString(titleStyle.Render("▶️ Сейчас играет: "))
		b.WriteString(videoInfoStyle.Render(info))
		b.WriteString("  ")
		b.WriteString(statusStyle.Render(formatStatus(state.Paused)))
	default:
		b.WriteString(videoInfoStyle.Render("Ничего не воспроизводится"))
	}
	b.WriteString("\n")

	if m.status.Text != "" {
		style := messageStyle
		if m.status.Err {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status.Text))
	}
	b.WriteString("\n")

	b.WriteString(controlsStyle.Render("Пробел: пауза/продолжить • s: стоп • r: случайное • Tab: плейлисты/видео • q: выход"))

	style := panelStyle
	if m.width > 0 {
		style = style.Width(m.width)
	}
	return style.Render(b.String())
}

func formatStatus(paused bool) string {
	if paused {
		return "⏸️ Пауза"
	}
	return "Воспроизведение"
}
