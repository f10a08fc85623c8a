package parsers

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// headerMarker identifies the schedule table on an association page: the
// first cell of its header row.
const headerMarker = "Datum"

// ParseScheduleHTML scrapes the Spielplan table out of an association web
// page. Everything before the header row (navigation, filters, other
// tables) is ignored; rows after it map positionally like the CSV export.
func ParseScheduleHTML(r io.Reader) (*Schedule, error) {
	z := html.NewTokenizer(r)
	schedule := &Schedule{}

	inRow := false
	inCell := false
	headerSeen := false
	var cells []string
	var cell strings.Builder

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			if !headerSeen {
				return nil, errors.New("no schedule table found in page")
			}
			return schedule, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			t := z.Token()
			switch t.Data {
			case "tr":
				inRow = true
				cells = cells[:0]
			case "th", "td":
				if inRow {
					inCell = true
					cell.Reset()
				}
			case "br":
				if inCell {
					cell.WriteByte(' ')
				}
			}
		case html.TextToken:
			if inCell {
				cell.Write(z.Text())
			}
		case html.EndTagToken:
			t := z.Token()
			switch t.Data {
			case "th", "td":
				if inCell {
					cells = append(cells, cleanCell(cell.String()))
					inCell = false
				}
			case "tr":
				if inRow {
					headerSeen = flushRow(schedule, cells, headerSeen)
					inRow = false
				}
			case "table":
				// the schedule table is done, skip whatever follows
				if headerSeen {
					return schedule, nil
				}
			}
		}
	}
}

func flushRow(schedule *Schedule, cells []string, headerSeen bool) bool {
	if len(cells) == 0 {
		return headerSeen
	}
	if cells[0] == headerMarker {
		return true
	}
	if !headerSeen {
		return false
	}
	if len(cells) < fieldCount {
		schedule.Skipped++
		return true
	}
	schedule.Rows = append(schedule.Rows, rowFromFields(cells))
	return true
}

// cleanCell collapses the whitespace runs and non-breaking spaces that
// rendered HTML cells are full of.
func cleanCell(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}
