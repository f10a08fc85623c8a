// Package parsers reads SAMS Spielplan exports, either the semicolon CSV
// download or the schedule table scraped from the association website.
// Both forms produce the same Schedule.
package parsers

// Field order of a Spielplan export row. The SAMS export has no stable
// header vocabulary across associations, so columns are read by position.
const (
	colDate = iota
	colTime
	colWeekday
	colMatchNumber
	colDivision
	colTeamA
	colTeamB
	colReferees
	colHost
	colVenueResult
	colVenue
	colResult
	colSeason
	colRound
	colCategory

	fieldCount
)

// Row is one schedule line, fields already trimmed but otherwise raw:
// encoding damage and team filtering are later stages' business.
type Row struct {
	Date        string // 02.01.2006
	Time        string // 15:04:05
	Weekday     string
	MatchNumber string
	Division    string // Staffel
	TeamA       string
	TeamB       string
	Referees    string // Schiedsgericht
	Host        string // Ausrichter
	VenueResult string // combined Spielort/Ergebnis column
	Venue       string
	Result      string
	Season      string
	Round       string
	Category    string
}

// Schedule is a parsed export: surviving rows in input order plus the count
// of lines that did not have enough fields to be rows.
type Schedule struct {
	Rows    []Row
	Skipped int
}

func rowFromFields(fields []string) Row {
	return Row{
		Date:        fields[colDate],
		Time:        fields[colTime],
		Weekday:     fields[colWeekday],
		MatchNumber: fields[colMatchNumber],
		Division:    fields[colDivision],
		TeamA:       fields[colTeamA],
		TeamB:       fields[colTeamB],
		Referees:    fields[colReferees],
		Host:        fields[colHost],
		VenueResult: fields[colVenueResult],
		Venue:       fields[colVenue],
		Result:      fields[colResult],
		Season:      fields[colSeason],
		Round:       fields[colRound],
		Category:    fields[colCategory],
	}
}
