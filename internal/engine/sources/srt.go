package sources

import (
	"fmt"
	"strings"
	"time"
)

// FormatSRT renders segments as a subtitle track: 1-based cue index, a
// "HH:MM:SS,mmm --> HH:MM:SS,mmm" range, the text, and a blank line. Order is kept as given.
func FormatSRT(segs []Segment) string {
	var sb strings.Builder
	for i, s := range segs {
		fmt.Fprintf(&sb, "%d\n%s --> %s\n%s\n\n",
			i+1, srtTimestamp(s.Start), srtTimestamp(s.Start+s.Duration), s.Text)
	}
	return sb.String()
}

// srtTimestamp uses a comma before the milliseconds, as subtitle players expect.
func srtTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	return fmt.Sprintf("%02d:%02d:%02d,%03d", ms/3_600_000, ms/60_000%60, ms/1000%60, ms%1000)
}
