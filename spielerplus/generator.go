package spielerplus

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/kweisgerber/sams2spielerplus/config"
	"github.com/kweisgerber/sams2spielerplus/parsers"
	"github.com/kweisgerber/sams2spielerplus/repair"
	"github.com/kweisgerber/sams2spielerplus/travel"
)

const (
	dateLayout = "02.01.2006"
	timeLayout = "15:04:05"

	// SAMS writes 00:00:00 when the start time is not fixed yet.
	unsetTime        = "00:00:00"
	placeholderStart = "11:00:00"
)

// Stats counts what happened to the input rows. The summary prints it so
// a filter eating the whole schedule is visible, not silent.
type Stats struct {
	Rows         int
	SkippedShort int
	OtherTeams   int
	Invalid      int
	Unparsable   int
	Emitted      int
	Home         int
	Away         int
}

// Generator derives SpielerPlus events for one club team.
type Generator struct {
	cfg       config.Config
	repairer  *repair.Repairer
	estimator *travel.Estimator
}

func NewGenerator(cfg config.Config, repairer *repair.Repairer, estimator *travel.Estimator) *Generator {
	return &Generator{cfg: cfg, repairer: repairer, estimator: estimator}
}

// Generate filters the schedule down to the configured team and derives one
// Termin per surviving row, in input order. A bad row is dropped and
// counted, never fatal.
func (g *Generator) Generate(ctx context.Context, schedule *parsers.Schedule) ([]Termin, Stats) {
	stats := Stats{
		Rows:         len(schedule.Rows),
		SkippedShort: schedule.Skipped,
	}
	termine := make([]Termin, 0, len(schedule.Rows))

	for _, row := range schedule.Rows {
		if row.Date == "" || row.TeamA == "" {
			stats.Invalid++
			continue
		}
		teamA := g.repairer.Repair(ctx, row.TeamA)
		teamB := g.repairer.Repair(ctx, row.TeamB)
		home := teamA == g.cfg.HomeTeam
		if !home && teamB != g.cfg.HomeTeam {
			stats.OtherTeams++
			continue
		}

		termin, err := g.derive(ctx, row, teamA, teamB, home)
		if err != nil {
			stats.Unparsable++
			log.Warn("dropping schedule row", "match", row.MatchNumber, "date", row.Date, "err", err)
			continue
		}
		termine = append(termine, termin)
		stats.Emitted++
		if home {
			stats.Home++
		} else {
			stats.Away++
		}
	}

	return termine, stats
}

func (g *Generator) derive(ctx context.Context, row parsers.Row, teamA, teamB string, home bool) (Termin, error) {
	day, err := time.Parse(dateLayout, row.Date)
	if err != nil {
		return Termin{}, fmt.Errorf("parse date %q: %w", row.Date, err)
	}
	rawTime := row.Time
	if rawTime == unsetTime {
		rawTime = placeholderStart
	}
	clock, err := time.Parse(timeLayout, rawTime)
	if err != nil {
		return Termin{}, fmt.Errorf("parse time %q: %w", row.Time, err)
	}

	start := time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, time.Local)
	end := start.Add(time.Duration(g.cfg.GameDurationHours) * time.Hour)

	var meeting time.Time
	if home {
		meeting = start.Add(-time.Duration(g.cfg.HomeMeetingLeadMinutes) * time.Minute)
	} else {
		drive := g.estimator.Minutes(ctx, g.cfg.HomeVenue, row.Venue)
		meeting = start.Add(-time.Duration(drive+g.cfg.AwayArrivalBufferMinutes) * time.Minute)
	}

	opponent := teamB
	if !home {
		opponent = teamA
	}

	venue := g.repairer.Repair(ctx, row.Venue)
	address := ""
	if normalized := travel.NormalizeVenue(venue); normalized != travel.UnknownLocation {
		address = normalized
	}

	return Termin{
		GameType:              gameTypeGame,
		Opponent:              opponent,
		StartDate:             start.Format(dateLayout),
		EndDate:               end.Format(dateLayout),
		StartTime:             start.Format(timeLayout),
		EndTime:               end.Format(timeLayout),
		MeetingTime:           meeting.Format(timeLayout),
		HomeGame:              home,
		Venue:                 venue,
		Address:               address,
		Info:                  g.infoText(ctx, row),
		Nomination:            nominationAll,
		Participation:         participationUnknown,
		ResponseDeadlineHours: g.cfg.ResponseDeadlineHours,
		ReminderHours:         g.cfg.ReminderHours,
		Season:                row.Season,
		Gender:                g.repairer.Repair(ctx, row.Category),
		Result:                row.Result,
	}, nil
}

// infoText collects the context a player wants on the event page: division,
// round, match number and who provides the referees.
func (g *Generator) infoText(ctx context.Context, row parsers.Row) string {
	var parts []string
	if v := g.repairer.Repair(ctx, row.Division); v != "" {
		parts = append(parts, "Staffel: "+v)
	}
	if v := g.repairer.Repair(ctx, row.Round); v != "" {
		parts = append(parts, "Runde: "+v)
	}
	if row.MatchNumber != "" {
		parts = append(parts, "Spiel-Nr.: "+row.MatchNumber)
	}
	if v := g.repairer.Repair(ctx, row.Referees); v != "" {
		parts = append(parts, "Schiedsgericht: "+v)
	}
	return strings.Join(parts, " | ")
}
