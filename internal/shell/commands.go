package shell

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// commandSpec описание команды командной строки
type commandSpec struct {
	name    string
	aliases []string
	usage   string
	short   string
	args    cobra.PositionalArgs
	run     func(args []string) error
}

func (s *Shell) commandSpecs() []commandSpec {
	return []commandSpec{
		{name: "number_of_videos", aliases: []string{"numberofvideos"},
			short: "Shows how many videos are in the library.",
			args:  noArgs("NUMBER_OF_VIDEOS"), run: s.numberOfVideos},
		{name: "show_all_videos", aliases: []string{"showallvideos"},
			short: "Lists all videos from the library.",
			args:  noArgs("SHOW_ALL_VIDEOS"), run: s.showAllVideos},
		{name: "play", usage: "<video_id>",
			short: "Plays specified video.",
			args:  exactArgs("PLAY", 1, "video_id"), run: s.play},
		{name: "play_random", aliases: []string{"playrandom"},
			short: "Plays a random video from the library.",
			args:  noArgs("PLAY_RANDOM"), run: s.playRandom},
		{name: "stop",
			short: "Stop the current video.",
			args:  noArgs("STOP"), run: s.stop},
		{name: "pause",
			short: "Pause the current video.",
			args:  noArgs("PAUSE"), run: s.pause},
		{name: "continue", aliases: []string{"resume"},
			short: "Resume the current paused video.",
			args:  noArgs("CONTINUE"), run: s.resume},
		{name: "show_playing", aliases: []string{"showplaying"},
			short: "Displays the title, video_id and tags of the video currently playing.",
			args:  noArgs("SHOW_PLAYING"), run: s.showPlaying},
		{name: "create_playlist", aliases: []string{"createplaylist"}, usage: "<playlist_name>",
			short: "Creates a new (empty) playlist with the provided name.",
			args:  exactArgs("CREATE_PLAYLIST", 1, "playlist_name"), run: s.createPlaylist},
		{name: "add_to_playlist", aliases: []string{"addtoplaylist"}, usage: "<playlist_name> <video_id>",
			short: "Adds the requested video to the playlist.",
			args:  exactArgs("ADD_TO_PLAYLIST", 2, "playlist_name and video_id"), run: s.addToPlaylist},
		{name: "remove_from_playlist", aliases: []string{"removefromplaylist"}, usage: "<playlist_name> <video_id>",
			short: "Removes the specified video from the specified playlist.",
			args:  exactArgs("REMOVE_FROM_PLAYLIST", 2, "playlist_name and video_id"), run: s.removeFromPlaylist},
		{name: "clear_playlist", aliases: []string{"clearplaylist"}, usage: "<playlist_name>",
			short: "Removes all videos from the playlist.",
			args:  exactArgs("CLEAR_PLAYLIST", 1, "playlist_name"), run: s.clearPlaylist},
		{name: "delete_playlist", aliases: []string{"deleteplaylist"}, usage: "<playlist_name>",
			short: "Deletes the playlist.",
			args:  exactArgs("DELETE_PLAYLIST", 1, "playlist_name"), run: s.deletePlaylist},
		{name: "show_playlist", aliases: []string{"showplaylist"}, usage: "<playlist_name>",
			short: "List all the videos in the specified playlist.",
			args:  exactArgs("SHOW_PLAYLIST", 1, "playlist_name"), run: s.showPlaylist},
		{name: "show_all_playlists", aliases: []string{"showallplaylists"},
			short: "Display all the available playlists.",
			args:  noArgs("SHOW_ALL_PLAYLISTS"), run: s.showAllPlaylists},
		{name: "play_playlist", aliases: []string{"playplaylist", "playall"}, usage: "<playlist_name>",
			short: "Plays every video of the playlist in order.",
			args:  exactArgs("PLAY_PLAYLIST", 1, "playlist_name"), run: s.playPlaylist},
		{name: "search_videos", aliases: []string{"search"}, usage: "<search_term>",
			short: "Display all the videos whose titles contain the search_term.",
			args:  exactArgs("SEARCH_VIDEOS", 1, "search_term"), run: s.searchVideos},
		{name: "search_videos_with_tag", aliases: []string{"searchbytag"}, usage: "<tag_name>",
			short: "Display all videos whose tags contains the provided tag.",
			args:  exactArgs("SEARCH_VIDEOS_WITH_TAG", 1, "tag_name"), run: s.searchVideosWithTag},
		{name: "flag_video", aliases: []string{"flag"}, usage: "<video_id> [reason]",
			short: "Mark a video as flagged.",
			args:  minArgs("FLAG_VIDEO", 1, "video_id"), run: s.flagVideo},
		{name: "allow_video", aliases: []string{"allow"}, usage: "<video_id>",
			short: "Removes a flag from a video.",
			args:  exactArgs("ALLOW_VIDEO", 1, "video_id"), run: s.allowVideo},
		{name: "exit",
			short: "Terminates the program execution.",
			args:  cobra.ArbitraryArgs, run: func([]string) error { return ErrExit }},
	}
}

// createRootCommand создает дерево команд, через которое исполняется каждая строка
func (s *Shell) createRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "videoplayer",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(s.out)
	root.SetErr(s.out)

	specs := s.commandSpecs()
	s.canonical = make(map[string]string)

	for _, spec := range specs {
		run := spec.run
		root.AddCommand(&cobra.Command{
			Use:                strings.TrimSpace(spec.name + " " + spec.usage),
			Aliases:            spec.aliases,
			Short:              spec.short,
			Args:               spec.args,
			DisableFlagParsing: true,
			RunE: func(_ *cobra.Command, args []string) error {
				return run(args)
			},
		})
		s.canonical[spec.name] = spec.name
		for _, alias := range spec.aliases {
			s.canonical[alias] = spec.name
		}
	}

	root.SetHelpCommand(&cobra.Command{
		Use:                "help",
		Short:              "Displays help.",
		DisableFlagParsing: true,
		Run: func(_ *cobra.Command, _ []string) {
			s.printHelp(specs)
		},
	})
	s.canonical["help"] = "help"

	s.names = make([]string, 0, len(s.canonical))
	for name := range s.canonical {
		s.names = append(s.names, name)
	}
	sort.Strings(s.names)

	return root
}

func (s *Shell) printHelp(specs []commandSpec) {
	s.println("Available commands:")
	for _, spec := range specs {
		usage := strings.ToUpper(spec.name)
		if spec.usage != "" {
			usage += " " + spec.usage
		}
		s.printf("    %s - %s\n", usage, spec.short)
	}
	s.println("    HELP - Displays help.")
}

func noArgs(command string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != 0 {
			return fmt.Errorf("%s command does not take arguments.", command)
		}
		return nil
	}
}

func exactArgs(command string, n int, what string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("Please enter %s command followed by %s.", command, what)
		}
		return nil
	}
}

func minArgs(command string, n int, what string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) < n {
			return fmt.Errorf("Please enter %s command followed by %s.", command, what)
		}
		return nil
	}
}
