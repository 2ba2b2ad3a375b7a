package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes console messages to one stream. Colours come from a
// renderer bound to that stream, so they are dropped when it is not a
// terminal.
type Printer struct {
	out          io.Writer
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	warningStyle lipgloss.Style
}

func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		out:          w,
		successStyle: r.NewStyle().Foreground(successColor),
		errorStyle:   r.NewStyle().Foreground(errorColor),
		warningStyle: r.NewStyle().Foreground(warningColor),
	}
}

func (p *Printer) Notice(text string) {
	fmt.Fprintln(p.out, p.warningStyle.Render(text))
}

func (p *Printer) Error(text string) {
	fmt.Fprintln(p.out, p.errorStyle.Render(text))
}

// Progress redraws the current line with the progress bar.
func (p *Printer) Progress(downloaded, total int64) {
	fmt.Fprint(p.out, "\r"+ProgressBar(downloaded, total))
}

// Complete ends any progress line and prints the completion notice.
func (p *Printer) Complete() {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.successStyle.Render(MsgComplete))
}
