package console

import (
	"io"
	"strings"

	"github.com/muesli/termenv"
)

const announceColor = "2"

type Output struct {
	out *termenv.Output
}

// NewOutput writes to w. With color disabled every message is written as plain text,
// otherwise the terminal's own color profile decides.
func NewOutput(w io.Writer, color bool) *Output {
	var opts []termenv.OutputOption
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &Output{out: termenv.NewOutput(w, opts...)}
}

func (that *Output) Write(text string) {
	// the game has nowhere to report a broken terminal
	_, _ = that.out.WriteString(text)
}

// Announce writes text in bold green. Trailing line breaks are kept outside the styling.
func (that *Output) Announce(text string) {
	body := strings.TrimRight(text, "\n")
	styled := that.out.String(body).Bold().Foreground(that.out.Color(announceColor))

	that.Write(styled.String() + text[len(body):])
}
