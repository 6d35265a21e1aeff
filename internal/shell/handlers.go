package shell

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hazadus/go-videoplayer/internal/data"
	"github.com/hazadus/go-videoplayer/internal/session"
	"github.com/hazadus/go-videoplayer/internal/utils"
)

func (s *Shell) numberOfVideos([]string) error {
	s.printf("%d videos in the library\n", s.session.NumberOfVideos())
	return nil
}

func (s *Shell) showAllVideos([]string) error {
	s.println("Here's a list of all available videos:")
	for _, v := range s.session.Videos() {
		s.println("  " + videoDetails(v))
	}
	return nil
}

func (s *Shell) play(args []string) error {
	result, err := s.session.Play(args[0])
	s.reportPlay(result, err)
	return nil
}

func (s *Shell) playRandom([]string) error {
	result, err := s.session.PlayRandom()
	if errors.Is(err, session.ErrCatalogEmpty) {
		s.println("No videos available")
		return nil
	}
	s.reportPlay(result, err)
	return nil
}

func (s *Shell) reportPlay(result session.PlayResult, err error) {
	if err != nil {
		s.println("Cannot play video: " + describe(err))
		return
	}
	if result.Stopped != nil {
		s.println("Stopping video: " + result.Stopped.Title)
	}
	s.println("Playing video: " + result.Video.Title)
}

func (s *Shell) stop([]string) error {
	video, err := s.session.Stop()
	if err != nil {
		s.println("Cannot stop video: " + describe(err))
		return nil
	}
	s.println("Stopping video: " + video.Title)
	return nil
}

func (s *Shell) pause([]string) error {
	video, err := s.session.Pause()
	switch {
	case errors.Is(err, session.ErrAlreadyPaused):
		s.println("Video already paused: " + video.Title)
	case err != nil:
		s.println("Cannot pause video: " + describe(err))
	default:
		s.println("Pausing video: " + video.Title)
	}
	return nil
}

func (s *Shell) resume([]string) error {
	video, err := s.session.Resume()
	if err != nil {
		s.println("Cannot continue video: " + describe(err))
		return nil
	}
	s.println("Continuing video: " + video.Title)
	return nil
}

func (s *Shell) showPlaying([]string) error {
	current, err := s.session.Current()
	if err != nil {
		s.println(describe(err))
		return nil
	}

	line := "Currently playing: " + videoDetails(s.viewOf(current.Video))
	if current.Paused {
		line += " - PAUSED"
	}
	s.println(line)
	return nil
}

func (s *Shell) createPlaylist(args []string) error {
	name, err := s.session.CreatePlaylist(args[0])
	if err != nil {
		s.println("Cannot create playlist: " + describe(err))
		return nil
	}
	s.println("Successfully created new playlist: " + name)
	return nil
}

func (s *Shell) addToPlaylist(args []string) error {
	name := args[0]
	video, err := s.session.AddToPlaylist(name, args[1])
	if err != nil {
		s.printf("Cannot add video to %s: %s\n", name, describe(err))
		return nil
	}
	s.printf("Added video to %s: %s\n", name, video.Title)
	return nil
}

func (s *Shell) removeFromPlaylist(args []string) error {
	name := args[0]
	video, err := s.session.RemoveFromPlaylist(name, args[1])
	if err != nil {
		s.printf("Cannot remove video from %s: %s\n", name, describe(err))
		return nil
	}
	s.printf("Removed video from %s: %s\n", name, video.Title)
	return nil
}

func (s *Shell) clearPlaylist(args []string) error {
	name := args[0]
	if err := s.session.ClearPlaylist(name); err != nil {
		s.printf("Cannot clear playlist %s: %s\n", name, describe(err))
		return nil
	}
	s.println("Successfully removed all videos from " + name)
	return nil
}

func (s *Shell) deletePlaylist(args []string) error {
	name := args[0]
	if err := s.session.DeletePlaylist(name); err != nil {
		s.printf("Cannot delete playlist %s: %s\n", name, describe(err))
		return nil
	}
	s.println("Deleted playlist: " + name)
	return nil
}

func (s *Shell) showPlaylist(args []string) error {
	name := args[0]
	view, err := s.session.ShowPlaylist(name)
	if err != nil {
		s.printf("Cannot show playlist %s: %s\n", name, describe(err))
		return nil
	}

	s.println("Showing playlist: " + name)
	if view.Empty() {
		s.println("  No videos here yet")
		return nil
	}
	for _, v := range view.Videos {
		s.println("  " + videoDetails(v))
	}
	return nil
}

func (s *Shell) showAllPlaylists([]string) error {
	playlists := s.session.Playlists()
	if len(playlists) == 0 {
		s.println("No playlists exist yet")
		return nil
	}

	s.println("Showing all playlists:")
	for _, p := range playlists {
		s.printf("  %s (%s)\n", p.Name, pluralVideos(p.Count))
	}
	return nil
}

func (s *Shell) playPlaylist(args []string) error {
	name := args[0]
	outcomes, err := s.session.PlayAll(name)
	if err != nil {
		s.printf("Cannot play playlist %s: %s\n", name, describe(err))
		return nil
	}
	if len(outcomes) == 0 {
		s.printf("Playlist %s is empty\n", name)
		return nil
	}
	for _, outcome := range outcomes {
		s.reportPlay(outcome.Result, outcome.Err)
	}
	return nil
}

func (s *Shell) searchVideos(args []string) error {
	s.offerResults(args[0], s.session.SearchByTitle(args[0]))
	return nil
}

func (s *Shell) searchVideosWithTag(args []string) error {
	s.offerResults(args[0], s.session.SearchByTag(args[0]))
	return nil
}

// offerResults печатает нумерованные результаты поиска и предлагает выбрать видео по номеру.
// Ответ, не являющийся допустимым номером, считается отказом.
func (s *Shell) offerResults(term string, results []data.Video) {
	if len(results) == 0 {
		s.println("No search results for " + term)
		return
	}

	s.printf("Here are the results for %s:\n", term)
	for i, v := range results {
		s.printf("  %d) %s\n", i+1, videoDetails(s.viewOf(v)))
	}
	s.println("Would you like to play any of the above? If yes, specify the number of the video.")
	s.println("If your answer is not a valid number, we will assume it's a no.")

	answer, ok := s.readLine()
	if !ok {
		return
	}
	index, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return
	}
	if id, ok := session.SelectFromResults(results, index); ok {
		result, err := s.session.Play(id)
		s.reportPlay(result, err)
	}
}

func (s *Shell) flagVideo(args []string) error {
	// Причина берется из исходной строки, чтобы сохранить пробелы внутри нее
	reason := afterFields(s.line, 2)
	result, err := s.session.Flag(args[0], reason)
	if err != nil {
		s.println("Cannot flag video: " + describe(err))
		return nil
	}
	if result.Stopped {
		s.println("Stopping video: " + result.Video.Title)
	}
	s.printf("Successfully flagged video: %s (reason: %s)\n", result.Video.Title, result.Reason)
	return nil
}

func (s *Shell) allowVideo(args []string) error {
	video, err := s.session.Allow(args[0])
	if err != nil {
		s.println("Cannot remove flag from video: " + describe(err))
		return nil
	}
	s.println("Successfully removed flag from video: " + video.Title)
	return nil
}

func (s *Shell) viewOf(video data.Video) session.VideoView {
	reason, flagged := s.session.FlagReason(video.ID)
	return session.VideoView{Video: video, Flagged: flagged, FlagReason: reason}
}

// videoDetails форматирует видео как "Title (id) [#tag1 #tag2]"
func videoDetails(v session.VideoView) string {
	details := v.Title + " (" + v.ID + ") " + utils.FormatTags(v.Tags)
	if v.Flagged {
		details += " - FLAGGED (reason: " + v.FlagReason + ")"
	}
	return details
}

func pluralVideos(n int) string {
	if n == 1 {
		return "1 video"
	}
	return strconv.Itoa(n) + " videos"
}

// afterFields возвращает остаток строки после первых n слов
func afterFields(line string, n int) string {
	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	for i := 0; i < n && rest != ""; i++ {
		end := strings.IndexFunc(rest, unicode.IsSpace)
		if end < 0 {
			return ""
		}
		rest = strings.TrimLeftFunc(rest[end:], unicode.IsSpace)
	}
	return rest
}

// describe превращает ошибку сеанса в предложение с заглавной буквы
func describe(err error) string {
	msg := err.Error()
	r, size := utf8.DecodeRuneInString(msg)
	return string(unicode.ToUpper(r)) + msg[size:]
}
