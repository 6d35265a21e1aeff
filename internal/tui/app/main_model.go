// Package app содержит основную логику TUI приложения
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-videoplayer/internal/session"
	"github.com/hazadus/go-videoplayer/internal/tui/nowplaying"
	"github.com/hazadus/go-videoplayer/internal/tui/playlists"
	"github.com/hazadus/go-videoplayer/internal/tui/prompt"
	"github.com/hazadus/go-videoplayer/internal/tui/videolist"
)

// ScreenType определяет тип текущего экрана
type ScreenType int

const (
	// VideolistScreen экран списка видео
	VideolistScreen ScreenType = iota
	// PlaylistsScreen экран плейлистов
	PlaylistsScreen
	// PromptScreen экран ввода
	PromptScreen
)

// MainModel представляет главную модель TUI
type MainModel struct {
	session        *session.Manager
	currentScreen  ScreenType
	previousScreen ScreenType // Экран, на который вернется ввод
	videolistModel *videolist.Model
	playlistsModel *playlists.Model
	promptModel    *prompt.Model
	nowPlaying     *nowplaying.Model
}

// NewMainModel создает новую главную модель
func NewMainModel(sess *session.Manager) *MainModel {
	return &MainModel{
		session:        sess,
		currentScreen:  VideolistScreen,
		videolistModel: videolist.NewModel(sess),
		playlistsModel: playlists.NewModel(sess),
		nowPlaying:     nowplaying.NewModel(sess),
	}
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	return m.videolistModel.Init()
}

// CurrentScreen возвращает активный экран
func (m *MainModel) CurrentScreen() ScreenType {
	return m.currentScreen
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.currentScreen != PromptScreen && !m.capturing() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "tab":
				m.switchScreen()
				return m, nil
			case " ", "s", "r":
				var cmd tea.Cmd
				m.nowPlaying, cmd = m.nowPlaying.Update(msg)
				return m, cmd
			}
		}

	case nowplaying.StatusMsg:
		m.nowPlaying, _ = m.nowPlaying.Update(msg)
		m.refresh()
		return m, nil

	case prompt.OpenMsg:
		m.previousScreen = m.currentScreen
		m.currentScreen = PromptScreen
		m.promptModel = prompt.NewModel(msg)
		return m, m.promptModel.Init()

	case prompt.CancelledMsg:
		m.closePrompt()
		return m, nil

	case prompt.SubmittedMsg:
		m.closePrompt()
		return m, m.apply(msg)

	case tea.WindowSizeMsg:
		// Нижнюю часть экрана занимает панель воспроизведения
		listSize := tea.WindowSizeMsg{Width: msg.Width, Height: max(msg.Height-nowplaying.Height-2, 1)}
		m.videolistModel, _ = m.videolistModel.Update(listSize)
		m.playlistsModel, _ = m.playlistsModel.Update(listSize)
		m.nowPlaying, _ = m.nowPlaying.Update(msg)
		if m.promptModel != nil {
			m.promptModel, _ = m.promptModel.Update(msg)
		}
		return m, nil
	}

	// Передаем сообщение активной модели
	var cmd tea.Cmd
	switch m.currentScreen {
	case VideolistScreen:
		m.videolistModel, cmd = m.videolistModel.Update(msg)
	case PlaylistsScreen:
		m.playlistsModel, cmd = m.playlistsModel.Update(msg)
	case PromptScreen:
		if m.promptModel != nil {
			m.promptModel, cmd = m.promptModel.Update(msg)
		}
	}
	return m, cmd
}

func (m *MainModel) capturing() bool {
	switch m.currentScreen {
	case VideolistScreen:
		return m.videolistModel.Capturing()
	case PlaylistsScreen:
		return m.playlistsModel.Capturing()
	}
	return false
}

func (m *MainModel) switchScreen() {
	if m.currentScreen == VideolistScreen {
		m.currentScreen = PlaylistsScreen
	} else {
		m.currentScreen = VideolistScreen
	}
	m.refresh()
}

func (m *MainModel) closePrompt() {
	m.currentScreen = m.previousScreen
	m.promptModel = nil
}

// refresh обновляет списки после изменения сеанса
func (m *MainModel) refresh() {
	m.videolistModel.RefreshData()
	m.playlistsModel.RefreshData()
}

// apply выполняет операцию сеанса по результату ввода
func (m *MainModel) apply(msg prompt.SubmittedMsg) tea.Cmd {
	switch msg.Purpose {
	case prompt.FlagReason:
		result, err := m.session.Flag(msg.Target, msg.Value)
		if err != nil {
			return nowplaying.Fail("Не удалось пометить видео", err)
		}
		if result.Stopped {
			return nowplaying.Report("Остановлено и помечено: %s (причина: %s)", result.Video.Title, result.Reason)
		}
		return nowplaying.Report("Видео помечено: %s (причина: %s)", result.Video.Title, result.Reason)

	case prompt.AddToPlaylist:
		video, err := m.session.AddToPlaylist(msg.Value, msg.Target)
		if err != nil {
			return nowplaying.Fail("Не удалось добавить видео в "+msg.Value, err)
		}
		return nowplaying.Report("Добавлено в %s: %s", msg.Value, video.Title)

	case prompt.CreatePlaylist:
		name, err := m.session.CreatePlaylist(msg.Value)
		if err != nil {
			return nowplaying.Fail("Не удалось создать плейлист", err)
		}
		return nowplaying.Report("Плейлист создан: %s", name)
	}
	return nil
}

// View отображает интерфейс
func (m *MainModel) View() string {
	var screen string
	switch m.currentScreen {
	case VideolistScreen:
		screen = m.videolistModel.View()
	case PlaylistsScreen:
		screen = m.playlistsModel.View()
	case PromptScreen:
		if m.promptModel != nil {
			screen = m.promptModel.View()
		} else {
			screen = "Ошибка: модель ввода не инициализирована"
		}
	default:
		screen = "Неизвестный экран"
	}
	return screen + "\n" + m.nowPlaying.View()
}
