// Package repair fixes German text that went through a Latin-1 to UTF-8
// round trip, leaving U+FFFD replacement runes where umlauts and ß used
// to be. Repairs never fail: when the optional remote corrector is
// unreachable the local rule table takes over.
package repair

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"
)

// Repairer resolves replacement markers in schedule text. It caches by the
// original string, so each distinct corrupted value costs at most one
// remote call per run.
type Repairer struct {
	rules     []Rule
	corrector Corrector
	cache     map[string]string
}

// NewRepairer builds a Repairer from the built-in rule table plus extra
// rules from a rules file. corrector may be nil.
func NewRepairer(extra []Rule, corrector Corrector) *Repairer {
	rules := make([]Rule, 0, len(defaultRules)+len(extra))
	rules = append(rules, defaultRules...)
	rules = append(rules, extra...)
	return &Repairer{
		rules:     rules,
		corrector: corrector,
		cache:     map[string]string{},
	}
}

// Repair returns text with all replacement markers resolved. Text without a
// marker comes back unchanged, which also makes Repair idempotent.
func (r *Repairer) Repair(ctx context.Context, text string) string {
	if !strings.Contains(text, Marker) {
		return text
	}
	if fixed, ok := r.cache[text]; ok {
		return fixed
	}
	fixed := r.resolve(ctx, text)
	r.cache[text] = fixed
	return fixed
}

func (r *Repairer) resolve(ctx context.Context, text string) string {
	if r.corrector != nil {
		fixed, err := r.corrector.Correct(ctx, text)
		switch {
		case err != nil:
			log.Warn("correction service unavailable, using local rules", "err", err)
		case strings.Contains(fixed, Marker):
			log.Debug("correction service left markers behind, using local rules", "text", text)
		case fixed != "":
			return fixed
		}
	}

	fixed := text
	for _, rule := range r.rules {
		fixed = strings.ReplaceAll(fixed, rule.Bad, rule.Good)
	}
	// markers the table does not know become ß
	return strings.ReplaceAll(fixed, Marker, fallback)
}
