// Package shell реализует интерактивную командную строку поверх сеанса.
// Каждая строка разбивается на слова и исполняется деревом cobra-команд.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/cobra"

	"github.com/hazadus/go-videoplayer/internal/session"
)

const (
	welcomeText = "Hello and welcome to the video player, what would you like to do? " +
		"Enter HELP for list of available commands or EXIT to terminate."
	goodbyeText = "Video player has now terminated its execution. Thank you and goodbye!"

	// maxSuggestionDistance максимальное расстояние Левенштейна для подсказки команды
	maxSuggestionDistance = 3
)

// ErrExit возвращается командой EXIT
var ErrExit = errors.New("exit requested")

// Shell интерактивная командная строка
type Shell struct {
	session *session.Manager
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
	logger  *slog.Logger
	line    string // Исполняемая строка целиком

	root      *cobra.Command
	names     []string          // Имена и псевдонимы команд в нижнем регистре, отсортированы
	canonical map[string]string // Псевдоним -> основное имя команды
}

// Option настраивает Shell
type Option func(*Shell)

// WithPrompt задает приглашение командной строки
func WithPrompt(prompt string) Option {
	return func(s *Shell) { s.prompt = prompt }
}

// WithLogger задает логгер
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New создает командную строку над сеансом
func New(sess *session.Manager, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		session: sess,
		scanner: bufio.NewScanner(in),
		out:     out,
		prompt:  "> ",
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.root = s.createRootCommand()
	return s
}

// Run читает и исполняет команды до EXIT, конца ввода или отмены контекста
func (s *Shell) Run(ctx context.Context) error {
	s.println(welcomeText)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, s.prompt)
		line, ok := s.readLine()
		if !ok {
			break
		}

		if err := s.Execute(line); err != nil {
			if errors.Is(err, ErrExit) {
				break
			}
			s.println(err.Error())
		}
	}

	s.println(goodbyeText)
	return s.scanner.Err()
}

// Execute исполняет одну строку. Результаты команд печатаются в out,
// ошибкой возвращаются только неверные аргументы и ErrExit.
func (s *Shell) Execute(line string) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}
	args[0] = strings.ToLower(args[0])
	s.line = line

	if !s.known(args[0]) {
		s.printf("Unknown command: %s\n", args[0])
		if suggestion, ok := s.suggest(args[0]); ok {
			s.printf("Did you mean %q?\n", suggestion)
		}
		return nil
	}

	s.logger.Debug("command received", "command", args[0], "args", len(args)-1)
	s.root.SetArgs(args)
	_, err := s.root.ExecuteC()
	return err
}

func (s *Shell) known(name string) bool {
	_, ok := s.canonical[name]
	return ok
}

// suggest подбирает ближайшее известное имя команды
func (s *Shell) suggest(name string) (string, bool) {
	best, bestDistance := "", maxSuggestionDistance+1
	for _, candidate := range s.names {
		if d := levenshtein.ComputeDistance(name, candidate); d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	if best == "" {
		return "", false
	}
	return strings.ToUpper(s.canonical[best]), true
}

// readLine читает следующую строку ввода
func (s *Shell) readLine() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

func (s *Shell) println(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
