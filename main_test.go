package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSource(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("ABSURD_FORMAT", "")
	t.Setenv("ABSURD_LOG_LEVEL", "")
	var stdout, stderr bytes.Buffer
	err := newApp(&stdout, &stderr).Run(append([]string{"absurd"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestParseCommand(t *testing.T) {
	path := writeSource(t, "main.ab", "let x: number = 40 + 2;\nx;\n")
	out, _, err := runApp(t, "parse", path)
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if want := "(let (x) number (+ 40 2))\nx\n"; out != want {
		t.Fatalf("parse output = %q, want %q", out, want)
	}
}

func TestParseCommandIDsAndStats(t *testing.T) {
	path := writeSource(t, "main.ab", "f(1);")
	out, _, err := runApp(t, "--ids", "parse", "--stats", path)
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if want := "(call#2 f#0 1#1)\n;; 1 statements, 3 expressions\n"; out != want {
		t.Fatalf("parse output = %q, want %q", out, want)
	}
}

func TestParseCommandPrettyFormat(t *testing.T) {
	path := writeSource(t, "main.ab", "break;")
	out, _, err := runApp(t, "--format", "pretty", "parse", path)
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if !strings.Contains(out, "ast.Break") {
		t.Fatalf("expected pretty dump of ast.Break, got %q", out)
	}
}

func TestParseCommandKeepsArgumentOrder(t *testing.T) {
	first := writeSource(t, "a.ab", "a;")
	second := writeSource(t, "b.ab", "b;")
	out, _, err := runApp(t, "parse", first, second)
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	want := ";; " + first + "\na\n;; " + second + "\nb\n"
	if out != want {
		t.Fatalf("parse output = %q, want %q", out, want)
	}
}

func TestParseCommandReportsDiagnostics(t *testing.T) {
	good := writeSource(t, "good.ab", "ok;")
	bad := writeSource(t, "bad.ab", "let x: number = 1 }")
	out, errOut, err := runApp(t, "parse", good, bad)
	if !errors.Is(err, errDiagnostics) {
		t.Fatalf("expected errDiagnostics, got %v", err)
	}
	if !strings.Contains(out, "ok\n") {
		t.Fatalf("expected the good file to be printed, got %q", out)
	}
	if !strings.Contains(errOut, bad+":1:19: error[E0x201]: expected ;, found }") {
		t.Fatalf("unexpected diagnostic: %q", errOut)
	}
}

func TestParseCommandMissingFile(t *testing.T) {
	_, _, err := runApp(t, "parse", filepath.Join(t.TempDir(), "missing.ab"))
	if err == nil || errors.Is(err, errDiagnostics) {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestTokensCommand(t *testing.T) {
	path := writeSource(t, "main.ab", "let x;")
	out, _, err := runApp(t, "tokens", path)
	if err != nil {
		t.Fatalf("tokens returned error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 tokens, got %q", out)
	}
	if lines[0] != "1:1\tlet keyword\tlet" || lines[1] != "1:5\tidentifier\tx" {
		t.Fatalf("unexpected token lines: %q", lines)
	}
	if !strings.HasPrefix(lines[3], "1:7\tend of file") {
		t.Fatalf("expected end of file last, got %q", lines[3])
	}
}

func TestRejectsUnknownFormat(t *testing.T) {
	path := writeSource(t, "main.ab", "x;")
	_, _, err := runApp(t, "--format", "xml", "parse", path)
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("expected config error, got %v", err)
	}
}
