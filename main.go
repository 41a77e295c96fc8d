package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/kr/pretty"
	"github.com/rs/zerolog"
	cli "github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/absurd-lang/absurd/ast"
	"github.com/absurd-lang/absurd/diag"
	"github.com/absurd-lang/absurd/internal/config"
	"github.com/absurd-lang/absurd/internal/repl"
	"github.com/absurd-lang/absurd/internal/watch"
	"github.com/absurd-lang/absurd/lexer"
	"github.com/absurd-lang/absurd/parser"
	"github.com/absurd-lang/absurd/sexpr"
)

// errDiagnostics signals that diagnostics were already written to stderr.
var errDiagnostics = errors.New("input has errors")

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintf(os.Stderr, "absurd: %v\n", err)
		}
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "absurd",
		Usage:     "Parse Absurd source and print its statement tree.",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: sexpr or pretty.",
				Value: config.FormatSexpr,
			},
			&cli.BoolFlag{
				Name:  "ids",
				Usage: "Print expression identities.",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn, error.",
				Value: "warn",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "parse",
				Usage:     "Parses files and prints their statements.",
				ArgsUsage: "FILE...",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "stats",
						Usage: "Print statement and expression counts.",
					},
					&cli.BoolFlag{
						Name:  "watch",
						Usage: "Parse again whenever a file changes.",
					},
				},
				Action: runParse,
			},
			{
				Name:      "tokens",
				Usage:     "Prints the tokens of a file.",
				ArgsUsage: "FILE",
				Action:    runTokens,
			},
			{
				Name:   "repl",
				Usage:  "Reads statements interactively.",
				Action: runREPL,
			},
		},
		Action: runREPL,
	}
}

// setup reads the configuration and attaches a logger to the context.
func setup(cliCtx *cli.Context) (*config.Config, context.Context, error) {
	cfg, err := config.Read(cliCtx)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cliCtx.App.ErrWriter}).
		Level(cfg.LogLevel).
		With().Timestamp().Logger()
	return cfg, logger.WithContext(cliCtx.Context), nil
}

func formatter(cfg *config.Config) func([]ast.Stmt) string {
	if cfg.Format == config.FormatPretty {
		return func(stmts []ast.Stmt) string {
			return pretty.Sprintf("%# v\n", stmts)
		}
	}
	opts := sexpr.Options{IDs: cfg.IDs}
	return func(stmts []ast.Stmt) string {
		return sexpr.Format(stmts, opts)
	}
}

func runParse(cliCtx *cli.Context) error {
	cfg, ctx, err := setup(cliCtx)
	if err != nil {
		return err
	}
	paths := cliCtx.Args().Slice()
	if len(paths) == 0 {
		return errors.New("parse: no input files")
	}
	stdout, stderr := cliCtx.App.Writer, cliCtx.App.ErrWriter

	ok, err := parseFiles(ctx, cfg, paths, stdout, stderr)
	if err != nil {
		return err
	}
	if cfg.Watch {
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()
		return watch.Run(ctx, paths, func(path string) {
			if _, err := parseFiles(ctx, cfg, []string{path}, stdout, stderr); err != nil {
				zerolog.Ctx(ctx).Error().Err(err).Str("path", path).Msg("parse")
			}
		})
	}
	if !ok {
		return errDiagnostics
	}
	return nil
}

type parseResult struct {
	src   string
	stmts []ast.Stmt
	nodes int
	err   error
}

// parseFiles parses every file concurrently, each with its own Parser, and
// prints the results in argument order. It reports false if any file had
// diagnostics.
func parseFiles(ctx context.Context, cfg *config.Config, paths []string, stdout, stderr io.Writer) (bool, error) {
	logger := zerolog.Ctx(ctx)
	results := make([]parseResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			if err := gctx.Err(); err != nil {
				return err
			}
			res := &results[i]
			res.src = string(data)
			tokens, err := lexer.Tokenize(res.src)
			if err != nil {
				res.err = err
				return nil
			}
			p := parser.NewParser(tokens)
			res.stmts, res.err = p.Parse()
			res.nodes = p.NodeCount()
			logger.Debug().Str("path", path).Int("tokens", len(tokens)).Int("nodes", res.nodes).Msg("parsed")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}

	format := formatter(cfg)
	ok := true
	for i, res := range results {
		if res.err != nil {
			ok = false
			if err := diag.Render(stderr, paths[i], res.src, res.err); err != nil {
				return false, err
			}
			continue
		}
		if len(paths) > 1 {
			fmt.Fprintf(stdout, ";; %s\n", paths[i])
		}
		fmt.Fprint(stdout, format(res.stmts))
		if cfg.Stats {
			fmt.Fprintf(stdout, ";; %d statements, %d expressions\n", len(res.stmts), res.nodes)
		}
	}
	return ok, nil
}

func runTokens(cliCtx *cli.Context) error {
	_, ctx, err := setup(cliCtx)
	if err != nil {
		return err
	}
	if cliCtx.NArg() != 1 {
		return errors.New("tokens: expected exactly one file")
	}
	path := cliCtx.Args().First()
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	tokens, err := lexer.Tokenize(string(data))
	if err != nil {
		if rerr := diag.Render(cliCtx.App.ErrWriter, path, string(data), err); rerr != nil {
			return rerr
		}
		return errDiagnostics
	}
	zerolog.Ctx(ctx).Debug().Int("tokens", len(tokens)).Msg("tokenized")
	for _, tok := range tokens {
		fmt.Fprintf(cliCtx.App.Writer, "%s\t%s\t%s\n", tok.Pos, tok.Kind, tok.Lexeme)
	}
	return nil
}

func runREPL(cliCtx *cli.Context) error {
	cfg, ctx, err := setup(cliCtx)
	if err != nil {
		return err
	}
	s := &repl.Session{
		Out:    cliCtx.App.Writer,
		Err:    cliCtx.App.ErrWriter,
		Format: formatter(cfg),
	}
	return repl.Run(ctx, s, cfg.HistoryPath)
}
