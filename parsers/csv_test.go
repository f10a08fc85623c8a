package parsers

import (
	"strings"
	"testing"
)

const csvHeader = `Datum;Uhrzeit;Wochentag;Nr.;Staffel;Mannschaft 1;Mannschaft 2;Schiedsgericht;Ausrichter;Spielort/Ergebnis;Spielort;Ergebnis;Saison;Runde;Kategorie`

func TestParseScheduleCSV(t *testing.T) {
	input := csvHeader + "\r\n" +
		`20.09.2025;11:00:00;Sa;105;Thüringenliga Süd;"SG Einheit Oberweißbach";"VfB 91 Suhl II";SV Lobeda;SG Einheit Oberweißbach;Sporthalle Oberweißbach;Sporthalle Oberweißbach (98744 Oberweißbach);;2025/26;Hinrunde;Männer` + "\r\n" +
		`04.10.2025;18:00:00;Sa;112;Thüringenliga Süd;1. VV Rudolstadt;SG Einheit Oberweißbach;SV Lobeda;1. VV Rudolstadt;Zweifelderhalle;Zweifelderhalle (07407 Rudolstadt);3:1;2025/26;Hinrunde;Männer` + "\r\n"

	schedule, err := ParseScheduleCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseScheduleCSV returned error: %v", err)
	}
	if len(schedule.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(schedule.Rows))
	}
	if schedule.Skipped != 0 {
		t.Errorf("Skipped = %d, want 0", schedule.Skipped)
	}

	first := schedule.Rows[0]
	if first.Date != "20.09.2025" || first.Time != "11:00:00" || first.Weekday != "Sa" {
		t.Errorf("first row date fields = %q %q %q", first.Date, first.Time, first.Weekday)
	}
	if first.TeamA != "SG Einheit Oberweißbach" {
		t.Errorf("TeamA = %q, quotes should be stripped", first.TeamA)
	}
	if first.TeamB != "VfB 91 Suhl II" {
		t.Errorf("TeamB = %q", first.TeamB)
	}
	if first.Venue != "Sporthalle Oberweißbach (98744 Oberweißbach)" {
		t.Errorf("Venue = %q", first.Venue)
	}
	if first.Result != "" {
		t.Errorf("Result = %q, want empty", first.Result)
	}

	second := schedule.Rows[1]
	if second.MatchNumber != "112" || second.Result != "3:1" || second.Round != "Hinrunde" {
		t.Errorf("second row = %+v", second)
	}
}

func TestParseScheduleCSVSkipsShortLines(t *testing.T) {
	input := csvHeader + "\n" +
		"nur;drei;felder\n" +
		"\n" +
		`18.10.2025;14:00:00;Sa;120;Thüringenliga Süd;SG Einheit Oberweißbach;SV Elstertal;SV X;SG;halle;Halle (07545 Gera);;2025/26;Hinrunde;Männer` + "\n"

	schedule, err := ParseScheduleCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseScheduleCSV returned error: %v", err)
	}
	if len(schedule.Rows) != 1 {
		t.Errorf("got %d rows, want 1", len(schedule.Rows))
	}
	if schedule.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", schedule.Skipped)
	}
}

func TestParseScheduleCSVByteOrderMark(t *testing.T) {
	input := "\uFEFF" + csvHeader + "\n" +
		`20.09.2025;11:00:00;Sa;105;Staffel;A;B;C;D;E;F;G;H;I;J` + "\n"

	schedule, err := ParseScheduleCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseScheduleCSV returned error: %v", err)
	}
	if len(schedule.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(schedule.Rows))
	}
	if schedule.Rows[0].Date != "20.09.2025" {
		t.Errorf("Date = %q", schedule.Rows[0].Date)
	}
}

func TestParseScheduleCSVEmptyInput(t *testing.T) {
	schedule, err := ParseScheduleCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ParseScheduleCSV returned error: %v", err)
	}
	if len(schedule.Rows) != 0 || schedule.Skipped != 0 {
		t.Errorf("schedule = %+v, want empty", schedule)
	}
}

func TestParseScheduleCSVNoTrailingNewline(t *testing.T) {
	input := csvHeader + "\n" +
		`20.09.2025;11:00:00;Sa;105;Staffel;A;B;C;D;E;F;G;H;I;J`

	schedule, err := ParseScheduleCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseScheduleCSV returned error: %v", err)
	}
	if len(schedule.Rows) != 1 {
		t.Errorf("got %d rows, want 1", len(schedule.Rows))
	}
}
