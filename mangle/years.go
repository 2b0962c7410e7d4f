package mangle

import (
	"iter"
	"strconv"
	"time"
)

const DefaultYearWindow = 6

// YearWindow is the Size most recent years ending at End, newest first.
type YearWindow struct {
	End  int
	Size int
}

func CurrentYearWindow(now time.Time) YearWindow {
	return YearWindow{End: now.Year(), Size: DefaultYearWindow}
}

// Years renders each year of the window as {full, two-digit} pairs.
func (w YearWindow) Years() [][2]string {
	if w.Size <= 0 {
		return nil
	}

	years := make([][2]string, 0, w.Size)

	for y := w.End; y > w.End-w.Size; y-- {
		full := strconv.Itoa(y)
		short := full
		if len(full) > 2 {
			short = full[len(full)-2:]
		}

		years = append(years, [2]string{full, short})
	}

	return years
}

// AppendYears yields word+YYYY then word+YY for every word and year, and
// only after that each word on its own. Capped consumers therefore see the
// year forms first.
func AppendYears(words []string, window YearWindow) iter.Seq[string] {
	snapshot := append([]string(nil), words...)
	years := window.Years()

	return func(yield func(string) bool) {
		for _, w := range snapshot {
			for _, y := range years {
				if !yield(w + y[0]) {
					return
				}
				if !yield(w + y[1]) {
					return
				}
			}
		}

		for _, w := range snapshot {
			if !yield(w) {
				return
			}
		}
	}
}
