// Package prompt содержит модель однострочного ввода для TUI
package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Margin(1, 0)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Margin(1, 0)
)

// Purpose определяет, для чего запрашивается ввод
type Purpose int

const (
	// FlagReason причина пометки видео флагом
	FlagReason Purpose = iota
	// AddToPlaylist имя плейлиста для добавления видео
	AddToPlaylist
	// CreatePlaylist имя нового плейлиста
	CreatePlaylist
)

// OpenMsg запрашивает открытие поля ввода
type OpenMsg struct {
	Purpose Purpose
	Target  string // id видео, к которому относится ввод
	Title   string
}

// SubmittedMsg отправляется при подтверждении ввода
type SubmittedMsg struct {
	Purpose Purpose
	Target  string
	Value   string
}

// CancelledMsg отправляется при отмене ввода
type CancelledMsg struct{}

// Model представляет модель поля ввода
type Model struct {
	purpose Purpose
	target  string
	title   string
	input   textinput.Model
	err     string
}

// NewModel создает поле ввода по запросу
func NewModel(msg OpenMsg) *Model {
	input := textinput.New()
	input.Placeholder = placeholder(msg.Purpose)
	input.PromptStyle = focusedStyle
	input.TextStyle = focusedStyle
	input.Focus()

	return &Model{
		purpose: msg.Purpose,
		target:  msg.Target,
		title:   msg.Title,
		input:   input,
	}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg {
				return CancelledMsg{}
			}

		case "enter":
			value := strings.TrimSpace(m.input.Value())
			// Причина флага может быть пустой, имя плейлиста нет
			if value == "" && m.purpose != FlagReason {
				m.err = "Имя плейлиста не может быть пустым"
				return m, nil
			}
			submitted := SubmittedMsg{Purpose: m.purpose, Target: m.target, Value: value}
			return m, func() tea.Msg {
				return submitted
			}
		}

	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 20
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(label(m.purpose)))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("Enter: подтвердить • Esc: отмена"))
	return b.String()
}

func label(p Purpose) string {
	switch p {
	case FlagReason:
		return "Причина (необязательно):"
	case AddToPlaylist:
		return "Плейлист:"
	default:
		return "Имя нового плейлиста:"
	}
}

func placeholder(p Purpose) string {
	if p == FlagReason {
		return "Not supplied"
	}
	return "my_playlist"
}
