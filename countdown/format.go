package countdown

import "fmt"

// FormatClock formats seconds as zero-padded minutes and seconds. Minutes are
// not wrapped into hours.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
