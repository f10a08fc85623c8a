package parsers

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

const separator = ";"

// ParseScheduleCSV reads a SAMS Spielplan CSV export. The format is fixed:
// one header line, then semicolon-separated rows with optionally quoted
// fields. Lines with fewer than the expected fields are counted and
// skipped, not fatal.
func ParseScheduleCSV(r io.Reader) (*Schedule, error) {
	buf := bufio.NewReader(r)
	schedule := &Schedule{}
	headerSeen := false
	lineNo := 0

	for {
		line, err := buf.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		lineNo++
		row := strings.TrimRight(line, "\r\n")
		if lineNo == 1 {
			row = strings.TrimPrefix(row, "\uFEFF")
		}
		if strings.TrimSpace(row) != "" {
			switch {
			case !headerSeen:
				// header labels are unreliable, position is what counts
				headerSeen = true
			default:
				fields := splitFields(row)
				if len(fields) < fieldCount {
					schedule.Skipped++
					log.Warn("skipping short schedule line", "line", lineNo, "fields", len(fields))
				} else {
					schedule.Rows = append(schedule.Rows, rowFromFields(fields))
				}
			}
		}
		if err == io.EOF {
			break
		}
	}

	return schedule, nil
}

// splitFields splits one export line and strips the decoration SAMS puts
// around values: surrounding quotes and stray spaces.
func splitFields(line string) []string {
	fields := strings.Split(line, separator)
	for i, f := range fields {
		f = strings.TrimSpace(f)
		f = strings.Trim(f, `"`)
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}
