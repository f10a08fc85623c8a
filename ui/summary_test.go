package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kweisgerber/sams2spielerplus/spielerplus"
)

func TestSummary(t *testing.T) {
	stats := spielerplus.Stats{
		Rows:       24,
		OtherTeams: 20,
		Invalid:    1,
		Emitted:    3,
		Home:       2,
		Away:       1,
	}
	termine := []spielerplus.Termin{
		{StartDate: "20.09.2025", StartTime: "11:00:00", Opponent: "VfB 91 Suhl II", HomeGame: true, MeetingTime: "09:00:00"},
		{StartDate: "04.10.2025", StartTime: "18:00:00", Opponent: "1. VV Rudolstadt", MeetingTime: "16:15:00"},
		{StartDate: "18.10.2025", StartTime: "14:00:00", Opponent: "SV Elstertal", HomeGame: true, MeetingTime: "12:00:00"},
	}

	var buf bytes.Buffer
	Summary(&buf, stats, termine, "spielerplus-import.xlsx")
	out := buf.String()

	for _, want := range []string{
		"Schedule rows read:     24",
		"other teams:          20",
		"dropped rows:         1",
		"Events written:         3 (2 home, 1 away)",
		"spielerplus-import.xlsx",
		"vs VfB 91 Suhl II (Heimspiel, Treffpunkt 09:00:00)",
		"vs 1. VV Rudolstadt (auswärts, Treffpunkt 16:15:00)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryTruncatesPreview(t *testing.T) {
	termine := make([]spielerplus.Termin, 5)
	for i := range termine {
		termine[i] = spielerplus.Termin{StartDate: "20.09.2025", Opponent: "X"}
	}

	var buf bytes.Buffer
	Summary(&buf, spielerplus.Stats{Emitted: 5}, termine, "out.xlsx")

	if got := strings.Count(buf.String(), "vs X"); got != 3 {
		t.Errorf("preview shows %d events, want 3", got)
	}
	if !strings.Contains(buf.String(), "and 2 more") {
		t.Errorf("summary missing truncation note:\n%s", buf.String())
	}
}
