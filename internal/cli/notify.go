package cli

import (
	"fmt"
	"io"

	"github.com/SoofabhMK1/ai-writing-system/internal/service"
)

// TerminalNotifier implements service.Notifier by printing styled one-line
// notices, the terminal stand-in for toast notifications.
type TerminalNotifier struct {
	out io.Writer
}

// NewTerminalNotifier builds a notifier writing to out (normally stderr,
// so notices never interleave with transcript output).
func NewTerminalNotifier(out io.Writer) *TerminalNotifier {
	return &TerminalNotifier{out: out}
}

// Show prints one notice.
func (n *TerminalNotifier) Show(message, kind string) {
	switch kind {
	case service.NoticeSuccess:
		fmt.Fprintln(n.out, successStyle.Render(message))
	case service.NoticeError:
		fmt.Fprintln(n.out, errorStyle.Render(message))
	default:
		fmt.Fprintln(n.out, infoStyle.Render(message))
	}
}
