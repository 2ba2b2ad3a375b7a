package output

import (
	"fmt"
	"strings"
)

// ProgressBar renders a BarWidth-wide bar with the completed share as '='
// followed by the percentage to two decimals, e.g. "[=====     ] 50.00%".
func ProgressBar(downloaded, total int64) string {
	done := 0
	percent := 0.0
	if total > 0 {
		done = int(BarWidth * downloaded / total)
		percent = float64(downloaded) / float64(total) * 100
	}
	done = max(0, min(done, BarWidth))
	return fmt.Sprintf("[%s%s] %.2f%%", strings.Repeat("=", done), strings.Repeat(" ", BarWidth-done), percent)
}
