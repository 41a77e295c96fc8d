// Package diag renders lexer and parser errors for people: a located
// message followed by the offending source line and a caret underline.
package diag

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/absurd-lang/absurd/lexer"
	"github.com/absurd-lang/absurd/parser"
	"github.com/absurd-lang/absurd/token"
)

var templates = map[parser.Code]string{
	parser.UnexpectedToken:             "expected {0}, found {1}",
	parser.MalformedLiteral:            "malformed {0}",
	parser.InvalidConstruct:            "{0}",
	parser.ExpectedUppercaseIdentifier: "expected {0}, found {1}",
}

// templateArgs is the highest placeholder count of any template.
const templateArgs = 2

// Message expands the template for code with args. Placeholders without a
// matching argument are left empty.
func Message(code parser.Code, args []string) string {
	tmpl, ok := templates[code]
	if !ok {
		return strings.Join(args, ", ")
	}
	var pairs []string
	for i := 0; i < max(len(args), templateArgs); i++ {
		value := ""
		if i < len(args) {
			value = args[i]
		}
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// Render writes err as a diagnostic for filename, quoting src when the
// position falls inside it. Errors other than *parser.Error and
// *lexer.Error are written on a single line.
func Render(w io.Writer, filename, src string, err error) error {
	var (
		perr *parser.Error
		lerr *lexer.Error
		pos  token.Position
		head string
	)
	switch {
	case errors.As(err, &perr):
		pos = perr.Pos
		head = fmt.Sprintf("error[%s]: %s", perr.Code, Message(perr.Code, perr.Args))
	case errors.As(err, &lerr):
		pos = lerr.Pos
		head = fmt.Sprintf("error: %v", lerr.Err)
	default:
		_, werr := fmt.Fprintf(w, "%s: error: %v\n", filename, err)
		return werr
	}

	if pos.Line < 1 {
		_, werr := fmt.Fprintf(w, "%s: %s\n", filename, head)
		return werr
	}
	if _, werr := fmt.Fprintf(w, "%s:%s: %s\n", filename, pos, head); werr != nil {
		return werr
	}
	line, ok := sourceLine(src, pos.Line)
	if !ok {
		return nil
	}
	_, werr := fmt.Fprintf(w, "  %s\n  %s\n", line, Caret(line, pos))
	return werr
}

// Caret returns the underline for pos beneath line. Tabs in the indent are
// kept so the marker lines up in a terminal; other runes are replaced by
// spaces of the same display width.
func Caret(line string, pos token.Position) string {
	runes := []rune(line)
	start := pos.Column - 1
	if start < 0 {
		start = 0
	}
	if start > len(runes) {
		start = len(runes)
	}
	end := pos.End - 1
	if end > len(runes) {
		end = len(runes)
	}

	var sb strings.Builder
	for _, r := range runes[:start] {
		if r == '\t' {
			sb.WriteRune('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	width := 1
	if end > start {
		width = runewidth.StringWidth(string(runes[start:end]))
	}
	if width < 1 {
		width = 1
	}
	sb.WriteString(strings.Repeat("^", width))
	return sb.String()
}

func sourceLine(src string, n int) (string, bool) {
	lines := strings.Split(src, "\n")
	if n < 1 || n > len(lines) {
		return "", false
	}
	return strings.TrimRight(lines[n-1], "\r"), true
}
