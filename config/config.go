// Package config loads the tool settings from a KEY=VALUE file and the
// process environment, on top of hard-coded defaults. Precedence is
// environment > file > default.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Keys recognized in the config file and the environment.
const (
	keyHomeTeam         = "HOME_TEAM"
	keyHomeVenue        = "HOME_VENUE"
	keyCorrectionURL    = "CORRECTION_API_URL"
	keyCorrectionKey    = "CORRECTION_API_KEY"
	keyCorrectionBudget = "CORRECTION_CALLS_PER_MINUTE"
	keyMapsURL          = "MAPS_API_URL"
	keyMapsKey          = "MAPS_API_KEY"
	keyResponseDeadline = "RESPONSE_DEADLINE_HOURS"
	keyReminder         = "REMINDER_HOURS"
	keyGameDuration     = "GAME_DURATION_HOURS"
	keyHomeLead         = "HOME_MEETING_LEAD_MINUTES"
	keyAwayBuffer       = "AWAY_ARRIVAL_BUFFER_MINUTES"
)

const (
	defaultHomeTeam  = "SG Einheit Oberweißbach"
	defaultHomeVenue = "Sporthalle Oberweißbach (98744 Oberweißbach)"
	defaultMapsURL   = "https://maps.googleapis.com/maps/api/distancematrix/json"

	defaultCorrectionBudget = 30
	// SpielerPlus wants both deadlines in hours before the event.
	defaultResponseDeadlineHours = 168
	defaultReminderHours         = 336
	defaultGameDurationHours     = 8
	defaultHomeLeadMinutes       = 120
	defaultAwayBufferMinutes     = 60
)

// Config holds everything one run needs. It is loaded once and passed
// explicitly to the components that read it.
type Config struct {
	HomeTeam  string
	HomeVenue string

	CorrectionAPIURL         string
	CorrectionAPIKey         string
	CorrectionCallsPerMinute int

	MapsAPIURL string
	MapsAPIKey string

	ResponseDeadlineHours int
	ReminderHours         int

	GameDurationHours        int
	HomeMeetingLeadMinutes   int
	AwayArrivalBufferMinutes int
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		HomeTeam:                 defaultHomeTeam,
		HomeVenue:                defaultHomeVenue,
		CorrectionCallsPerMinute: defaultCorrectionBudget,
		MapsAPIURL:               defaultMapsURL,
		ResponseDeadlineHours:    defaultResponseDeadlineHours,
		ReminderHours:            defaultReminderHours,
		GameDurationHours:        defaultGameDurationHours,
		HomeMeetingLeadMinutes:   defaultHomeLeadMinutes,
		AwayArrivalBufferMinutes: defaultAwayBufferMinutes,
	}
}

// Load reads the config file at path (empty path skips the file) and applies
// environment overrides. A file that cannot be read leaves the defaults in
// place and is reported through the returned error; the returned Config is
// usable either way.
func Load(path string) (Config, error) {
	cfg := Default()

	fileVals := map[string]string{}
	var loadErr error
	if path != "" {
		m, err := godotenv.Read(path)
		if err != nil {
			loadErr = fmt.Errorf("read config %s: %w", path, err)
		} else {
			fileVals = m
		}
	}

	get := func(key string) string {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
		return strings.TrimSpace(fileVals[key])
	}

	setString(&cfg.HomeTeam, get(keyHomeTeam))
	setString(&cfg.HomeVenue, get(keyHomeVenue))
	setString(&cfg.CorrectionAPIURL, get(keyCorrectionURL))
	setString(&cfg.CorrectionAPIKey, get(keyCorrectionKey))
	setString(&cfg.MapsAPIURL, get(keyMapsURL))
	setString(&cfg.MapsAPIKey, get(keyMapsKey))
	setInt(&cfg.CorrectionCallsPerMinute, keyCorrectionBudget, get(keyCorrectionBudget))
	setInt(&cfg.ResponseDeadlineHours, keyResponseDeadline, get(keyResponseDeadline))
	setInt(&cfg.ReminderHours, keyReminder, get(keyReminder))
	setInt(&cfg.GameDurationHours, keyGameDuration, get(keyGameDuration))
	setInt(&cfg.HomeMeetingLeadMinutes, keyHomeLead, get(keyHomeLead))
	setInt(&cfg.AwayArrivalBufferMinutes, keyAwayBuffer, get(keyAwayBuffer))

	return cfg, loadErr
}

func setString(dst *string, val string) {
	if val != "" {
		*dst = val
	}
}

func setInt(dst *int, key, val string) {
	if val == "" {
		return
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		log.Warn("ignoring invalid config value", "key", key, "value", val)
		return
	}
	*dst = n
}
