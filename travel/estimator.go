package travel

import (
	"context"
	"math"

	"github.com/charmbracelet/log"
)

// DefaultMinutes is the estimate when neither the remote service nor the
// offline table knows the pair.
const DefaultMinutes = 90

// Override adjusts or adds one city pair in the offline table.
type Override struct {
	From    string `yaml:"from"`
	To      string `yaml:"to"`
	Minutes int    `yaml:"minutes"`
}

// Estimator turns two venue strings into a one-way driving time in minutes.
// Estimates never fail; every miss degrades to the next source.
type Estimator struct {
	provider DistanceProvider
	pairs    map[cityPair]int
}

// NewEstimator builds an Estimator. provider may be nil for offline-only
// operation; overrides win over the built-in table.
func NewEstimator(provider DistanceProvider, overrides []Override) *Estimator {
	pairs := make(map[cityPair]int, len(pairMinutes)+len(overrides))
	for k, v := range pairMinutes {
		pairs[k] = v
	}
	for _, o := range overrides {
		if o.From != "" && o.To != "" && o.Minutes > 0 {
			pairs[pair(o.From, o.To)] = o.Minutes
		}
	}
	return &Estimator{provider: provider, pairs: pairs}
}

// Minutes estimates the one-way driving time from originVenue to destVenue.
// Identical normalized locations are always 0. The remote service is only
// asked when both sides normalized to something geocodable, and its answer
// is rounded up to whole minutes.
func (e *Estimator) Minutes(ctx context.Context, originVenue, destVenue string) int {
	origin := NormalizeVenue(originVenue)
	dest := NormalizeVenue(destVenue)
	if origin == dest {
		return 0
	}

	if e.provider != nil && origin != UnknownLocation && dest != UnknownLocation {
		d, err := e.provider.Duration(ctx, origin, dest)
		if err != nil {
			log.Warn("distance service unavailable, using offline table",
				"origin", origin, "destination", dest, "err", err)
		} else {
			return int(math.Ceil(d.Minutes()))
		}
	}

	if m, ok := e.pairs[pair(cityOf(origin), cityOf(dest))]; ok {
		return m
	}
	log.Debug("no travel estimate for pair, using default",
		"origin", origin, "destination", dest, "minutes", DefaultMinutes)
	return DefaultMinutes
}
