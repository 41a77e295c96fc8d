package repl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/absurd-lang/absurd/ast"
	"github.com/absurd-lang/absurd/sexpr"
)

func newSession() (*Session, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &Session{
		Out: &out,
		Err: &errOut,
		Format: func(stmts []ast.Stmt) string {
			return sexpr.Format(stmts, sexpr.Options{})
		},
	}, &out, &errOut
}

func TestFeedWaitsForCompleteStatement(t *testing.T) {
	ctx := context.Background()
	s, out, errOut := newSession()

	require.False(t, s.Feed(ctx, "let x: number =\n", false))
	require.True(t, s.Pending())
	require.False(t, s.Feed(ctx, "  1 +\n", false))
	require.True(t, s.Feed(ctx, "  2;\n", false))
	require.False(t, s.Pending())

	require.Equal(t, "(let (x) number (+ 1 2))\n", out.String())
	require.Empty(t, errOut.String())
}

func TestFeedWaitsForUnterminatedString(t *testing.T) {
	ctx := context.Background()
	s, out, _ := newSession()

	require.False(t, s.Feed(ctx, "let s: string = \"a\n", false))
	require.True(t, s.Feed(ctx, "b\";\n", false))
	require.Equal(t, "(let (s) string \"a\\nb\")\n", out.String())
}

func TestFeedReportsErrors(t *testing.T) {
	ctx := context.Background()
	s, out, errOut := newSession()

	require.True(t, s.Feed(ctx, "let = 1;\n", false))
	require.False(t, s.Pending())
	require.Empty(t, out.String())
	require.Contains(t, errOut.String(), "<stdin>:1:5: error[E0x201]: expected identifier, found =")
}

func TestRunBuffered(t *testing.T) {
	ctx := context.Background()
	s, out, errOut := newSession()

	input := "let a;\nfunc f() -> void {\n  return;\n}\nlet b: number"
	require.NoError(t, RunBuffered(ctx, s, strings.NewReader(input)))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Equal(t, []string{
		"(let (a) null null)",
		"(func f () void (do (return null)))",
	}, lines)
	require.Contains(t, errOut.String(), "expected =, found end of file")
}
