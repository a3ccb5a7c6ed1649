package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	apperrors "github.com/SoofabhMK1/ai-writing-system/internal/errors"
)

// markdownRenderer renders preview payloads for terminal display. A nil
// renderer falls back to plain text.
var markdownRenderer *glamour.TermRenderer

func init() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		markdownRenderer = nil
	}
}

func renderMarkdown(content string) string {
	if markdownRenderer == nil {
		return content
	}
	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// TerminalGate implements service.Gate with an interactive y/N prompt.
// The preview body is rendered as markdown before asking.
type TerminalGate struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalGate builds a gate reading confirmations from in and writing
// the preview to out.
func NewTerminalGate(in io.Reader, out io.Writer) *TerminalGate {
	return &TerminalGate{in: bufio.NewReader(in), out: out}
}

// Confirm shows the preview and blocks for the user's decision. Declining
// returns apperrors.ErrCanceled; read failures return their own error so
// callers can tell "user declined" from "gate broke".
func (g *TerminalGate) Confirm(ctx context.Context, title, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fmt.Fprintf(g.out, "\n%s\n\n%s\n", headingStyle.Render(title), renderMarkdown(body))
	fmt.Fprint(g.out, "Send this to the model? [y/N] ")

	line, err := g.in.ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("could not read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return nil
	default:
		return apperrors.ErrCanceled
	}
}
