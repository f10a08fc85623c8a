// Package spielerplus turns parsed Spielplan rows into rows of the
// SpielerPlus "Termine importieren" sheet.
package spielerplus

import "strconv"

// Values SpielerPlus expects in its import sheet.
const (
	gameTypeGame         = "Spiel"
	nominationAll        = "Alle"
	participationUnknown = "Unbekannt"
	homeYes              = "Ja"
	homeNo               = "Nein"
)

// Termin is one event row of the import sheet. The struct is flat on
// purpose: a column mismatch should be a compile error, not a spreadsheet
// the club notices three weeks later.
type Termin struct {
	GameType      string
	Opponent      string
	StartDate     string // 02.01.2006
	EndDate       string
	StartTime     string // 15:04:05
	EndTime       string
	MeetingTime   string
	HomeGame      bool
	Venue         string
	Address       string
	Info          string
	Nomination    string
	Participation string

	ResponseDeadlineHours int
	ReminderHours         int

	Season string
	Gender string
	Result string
}

// Headers is the exact column order SpielerPlus imports.
func Headers() []string {
	return []string{
		"Spieltyp",
		"Gegner",
		"Start-Datum",
		"End-Datum",
		"Start-Zeit",
		"End-Zeit",
		"Treffpunkt",
		"Heimspiel",
		"Gelände / Räumlichkeiten",
		"Adresse",
		"Infos zum Spiel",
		"Nominierung",
		"Teilnahme",
		"Zu-/Absagen bis (Std. vorher)",
		"Erinnerung (Std. vorher)",
		"Saison",
		"Geschlecht",
		"Ergebnis",
	}
}

// Record flattens the Termin into cells, in Headers order.
func (t Termin) Record() []string {
	home := homeNo
	if t.HomeGame {
		home = homeYes
	}
	return []string{
		t.GameType,
		t.Opponent,
		t.StartDate,
		t.EndDate,
		t.StartTime,
		t.EndTime,
		t.MeetingTime,
		home,
		t.Venue,
		t.Address,
		t.Info,
		t.Nomination,
		t.Participation,
		strconv.Itoa(t.ResponseDeadlineHours),
		strconv.Itoa(t.ReminderHours),
		t.Season,
		t.Gender,
		t.Result,
	}
}
