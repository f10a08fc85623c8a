// Package ui prints the human-facing run summary. Everything here goes to
// the terminal, never into the export file.
package ui

import (
	"fmt"
	"io"

	"github.com/kweisgerber/sams2spielerplus/spielerplus"
)

// sampleLimit keeps the preview short; the spreadsheet has the full list.
const sampleLimit = 3

// Summary reports what a run did: row accounting, the output path and a
// preview of the first events.
func Summary(w io.Writer, stats spielerplus.Stats, termine []spielerplus.Termin, outputPath string) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Schedule rows read:     %d\n", stats.Rows)
	if stats.SkippedShort > 0 {
		fmt.Fprintf(w, "  malformed lines:      %d\n", stats.SkippedShort)
	}
	fmt.Fprintf(w, "  other teams:          %d\n", stats.OtherTeams)
	if dropped := stats.Invalid + stats.Unparsable; dropped > 0 {
		fmt.Fprintf(w, "  dropped rows:         %d\n", dropped)
	}
	fmt.Fprintf(w, "Events written:         %d (%d home, %d away)\n", stats.Emitted, stats.Home, stats.Away)
	fmt.Fprintf(w, "Output file:            %s\n", outputPath)

	for i, t := range termine {
		if i == sampleLimit {
			fmt.Fprintf(w, "  ... and %d more\n", len(termine)-sampleLimit)
			break
		}
		kind := "auswärts"
		if t.HomeGame {
			kind = "Heimspiel"
		}
		fmt.Fprintf(w, "  %s %s  vs %s (%s, Treffpunkt %s)\n",
			t.StartDate, t.StartTime, t.Opponent, kind, t.MeetingTime)
	}
}
