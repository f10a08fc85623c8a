package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/kweisgerber/sams2spielerplus/config"
	"github.com/kweisgerber/sams2spielerplus/parsers"
	"github.com/kweisgerber/sams2spielerplus/repair"
	"github.com/kweisgerber/sams2spielerplus/spielerplus"
	"github.com/kweisgerber/sams2spielerplus/travel"
	"github.com/kweisgerber/sams2spielerplus/ui"
	"github.com/kweisgerber/sams2spielerplus/writers"
)

const (
	inputFlag   = "input"
	outputFlag  = "output"
	configFlag  = "config"
	rulesFlag   = "rules"
	teamFlag    = "team"
	verboseFlag = "verbose"

	defaultOutput = "spielerplus-import.xlsx"
	defaultConfig = ".env"
)

var build string
var semanticVersion = "v0.3.1" + build

var errNoExport = errors.New("no spielplan*.csv export found in the working directory")

func main() {
	log.SetReportTimestamp(false)

	app := &cli.App{
		Name:    "sams2spielerplus",
		Usage:   "Turn a SAMS Spielplan export into a SpielerPlus event import sheet",
		Version: semanticVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    inputFlag,
				Aliases: []string{"i"},
				Usage:   "URL or path of the Spielplan export; defaults to the newest spielplan*.csv here",
			},
			&cli.StringFlag{
				Name:    outputFlag,
				Aliases: []string{"o"},
				Value:   defaultOutput,
				Usage:   "Path of the xlsx file to write",
			},
			&cli.StringFlag{
				Name:    configFlag,
				Aliases: []string{"c"},
				Value:   defaultConfig,
				Usage:   "KEY=VALUE config file",
			},
			&cli.StringFlag{
				Name:  rulesFlag,
				Usage: "YAML file with extra text-repair replacements and travel-minute overrides",
			},
			&cli.StringFlag{
				Name:    teamFlag,
				Aliases: []string{"t"},
				Usage:   "Home team name; overrides the configured one",
			},
			&cli.BoolFlag{
				Name:  verboseFlag,
				Usage: "Enable debug logging",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(cCtx *cli.Context) error {
	if cCtx.Bool(verboseFlag) {
		log.SetLevel(log.DebugLevel)
	}

	cfgPath := cCtx.String(configFlag)
	if !cCtx.IsSet(configFlag) {
		// the default .env is optional, an explicit --config is expected to exist
		if _, err := os.Stat(cfgPath); err != nil {
			cfgPath = ""
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Warn("config file not usable, continuing with defaults", "err", err)
	}
	if team := cCtx.String(teamFlag); team != "" {
		cfg.HomeTeam = team
	}

	var rules config.Rules
	if path := cCtx.String(rulesFlag); path != "" {
		rules, err = config.LoadRules(path)
		if err != nil {
			log.Warn("rules file not usable, continuing without", "err", err)
		}
	}

	var corrector repair.Corrector
	if cfg.CorrectionAPIURL != "" {
		corrector = repair.NewRemoteCorrector(cfg.CorrectionAPIURL, cfg.CorrectionAPIKey,
			cfg.CorrectionCallsPerMinute, nil)
		log.Debug("remote text correction enabled", "url", cfg.CorrectionAPIURL)
	}
	repairer := repair.NewRepairer(rules.Replacements, corrector)

	var distance travel.DistanceProvider
	if cfg.MapsAPIKey != "" {
		distance = travel.NewRemoteDistance(cfg.MapsAPIURL, cfg.MapsAPIKey, nil)
		log.Debug("remote distance service enabled", "url", cfg.MapsAPIURL)
	}
	estimator := travel.NewEstimator(distance, rules.Travel)

	schedule, source, err := loadSchedule(cCtx.String(inputFlag))
	if err != nil {
		return err
	}
	log.Info("parsed schedule export", "source", source, "rows", len(schedule.Rows))

	ctx := context.Background()
	generator := spielerplus.NewGenerator(cfg, repairer, estimator)
	termine, stats := generator.Generate(ctx, schedule)
	if stats.Emitted == 0 {
		log.Warn("no games for the configured team in this export", "team", cfg.HomeTeam)
	}

	exporter := &writers.Exporter{}
	written, err := exporter.Export(termine, cCtx.String(outputFlag))
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	ui.Summary(os.Stderr, stats, termine, written)
	return nil
}

// loadSchedule resolves the input: an explicit URL or path, or the newest
// export download in the working directory.
func loadSchedule(location string) (*parsers.Schedule, string, error) {
	if location == "" {
		found, err := findScheduleExport(".")
		if err != nil {
			return nil, "", err
		}
		log.Info("using newest export in working directory", "file", found)
		location = found
	}

	if u, err := url.ParseRequestURI(location); err == nil && strings.HasPrefix(u.Scheme, "http") {
		schedule, err := fetchSchedule(u.String())
		return schedule, location, err
	}

	f, err := os.Open(location)
	if err != nil {
		return nil, location, fmt.Errorf("open schedule export: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(location)) {
	case ".html", ".htm":
		schedule, err := parsers.ParseScheduleHTML(f)
		return schedule, location, err
	default:
		schedule, err := parsers.ParseScheduleCSV(f)
		return schedule, location, err
	}
}

func fetchSchedule(rawURL string) (*parsers.Schedule, error) {
	resp, err := http.Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch schedule page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch schedule page: unexpected status %s", resp.Status)
	}
	return parsers.ParseScheduleHTML(resp.Body)
}

// findScheduleExport returns the newest SAMS download in dir. The export
// always lands as spielplan<something>.csv, capitalization varies.
func findScheduleExport(dir string) (string, error) {
	var matches []string
	for _, pattern := range []string{"spielplan*.csv", "Spielplan*.csv"} {
		m, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return "", err
		}
		matches = append(matches, m...)
	}
	if len(matches) == 0 {
		return "", errNoExport
	}
	sort.Slice(matches, func(i, j int) bool {
		return modTime(matches[i]).After(modTime(matches[j]))
	})
	return matches[0], nil
}

func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
