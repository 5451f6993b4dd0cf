package timer

import "fmt"

// FormatRemaining renders seconds as mm:ss. Minutes are not wrapped into hours.
func FormatRemaining(seconds int) string {
	if seconds <= 0 {
		return "00:00"
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatMinutes renders a minute count the way the break message uses it.
func FormatMinutes(n int) string {
	if n == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", n)
}
