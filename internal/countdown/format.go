package countdown

import "fmt"

// FormatTime renders seconds as MM:SS. Minutes are not capped at 59.
func FormatTime(seconds int) string {
	if seconds <= 0 {
		return "00:00"
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
