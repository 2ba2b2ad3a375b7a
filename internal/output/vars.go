package output

import "github.com/charmbracelet/lipgloss"

var (
	successColor = lipgloss.Color("37") // dark green
	errorColor   = lipgloss.Color("9")  // red
	warningColor = lipgloss.Color("11") // yellow
)

const (
	BarWidth = 50

	MsgNoContentLength = "Content length not provided by server, cannot show progress."
	MsgComplete        = "Download completed!"
)
