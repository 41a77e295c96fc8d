// Package repl reads source interactively and prints the parsed statements.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/rs/zerolog"

	"github.com/absurd-lang/absurd/ast"
	"github.com/absurd-lang/absurd/diag"
	"github.com/absurd-lang/absurd/lexer"
	"github.com/absurd-lang/absurd/parser"
)

const (
	prompt         = "absurd> "
	continuePrompt = "....    "
	sourceName     = "<stdin>"
)

// Session accumulates input until it parses, then prints the result.
type Session struct {
	Out    io.Writer
	Err    io.Writer
	Format func([]ast.Stmt) string

	buffer strings.Builder
}

// Pending reports whether earlier lines are waiting for the rest of a
// statement.
func (s *Session) Pending() bool {
	return s.buffer.Len() > 0
}

// Reset drops pending input.
func (s *Session) Reset() {
	s.buffer.Reset()
}

// Feed appends line to the pending input and parses it. It returns false
// when the input stops mid-statement and more lines are expected; final
// marks the last line, after which incomplete input is reported as an
// error.
func (s *Session) Feed(ctx context.Context, line string, final bool) bool {
	s.buffer.WriteString(line)
	src := s.buffer.String()
	stmts, err := parser.ParseString(src)
	if err != nil {
		if isIncomplete(err) && !final {
			return false
		}
		s.buffer.Reset()
		if rerr := diag.Render(s.Err, sourceName, src, err); rerr != nil {
			zerolog.Ctx(ctx).Error().Err(rerr).Msg("render diagnostic")
		}
		return true
	}
	s.buffer.Reset()
	zerolog.Ctx(ctx).Debug().Int("statements", len(stmts)).Msg("parsed")
	fmt.Fprint(s.Out, s.Format(stmts))
	return true
}

func isIncomplete(err error) bool {
	return lexer.IsIncomplete(err) || parser.IsIncomplete(err)
}

// Run reads from stdin, with line editing and history when stdin is a
// terminal.
func Run(ctx context.Context, s *Session, historyPath string) error {
	if !isInteractive() {
		return RunBuffered(ctx, s, os.Stdin)
	}
	return runInteractive(ctx, s, historyPath)
}

// RunBuffered feeds r to s line by line until EOF.
func RunBuffered(ctx context.Context, s *Session, r io.Reader) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read input: %w", err)
		}
		eof := errors.Is(err, io.EOF)
		if line != "" || (eof && s.Pending()) {
			s.Feed(ctx, line, eof)
		}
		if eof {
			return nil
		}
	}
}

func runInteractive(ctx context.Context, s *Session, historyPath string) error {
	logger := zerolog.Ctx(ctx)

	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			if _, err := state.ReadHistory(f); err != nil {
				logger.Warn().Err(err).Str("path", historyPath).Msg("read history")
			}
			f.Close()
		}
		defer func() {
			f, err := os.Create(historyPath)
			if err != nil {
				logger.Warn().Err(err).Str("path", historyPath).Msg("write history")
				return
			}
			defer f.Close()
			if _, err := state.WriteHistory(f); err != nil {
				logger.Warn().Err(err).Str("path", historyPath).Msg("write history")
			}
		}()
	}

	var entry strings.Builder
	for {
		p := prompt
		if s.Pending() {
			p = continuePrompt
		}
		input, err := state.Prompt(p)
		if err != nil {
			switch {
			case errors.Is(err, liner.ErrPromptAborted):
				fmt.Fprintln(s.Out)
				s.Reset()
				entry.Reset()
				continue
			case errors.Is(err, io.EOF):
				fmt.Fprintln(s.Out)
				return nil
			default:
				return fmt.Errorf("read input: %w", err)
			}
		}

		entry.WriteString(input)
		entry.WriteString("\n")
		if !s.Feed(ctx, input+"\n", false) {
			continue
		}
		if trimmed := strings.TrimSpace(entry.String()); trimmed != "" {
			state.AppendHistory(trimmed)
		}
		entry.Reset()
	}
}

func isInteractive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
