package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kweisgerber/sams2spielerplus/repair"
	"github.com/kweisgerber/sams2spielerplus/travel"
)

// Rules is the optional YAML rules file: extra text-repair replacements and
// travel-minute overrides. Keeping these in a file means a new mangled club
// name or a rerouted Autobahn does not need a rebuild.
//
//	replacements:
//	  - bad: "G�schwitz"
//	    good: "Göschwitz"
//	travel:
//	  - from: Oberweißbach
//	    to: Jena
//	    minutes: 80
type Rules struct {
	Replacements []repair.Rule     `yaml:"replacements"`
	Travel       []travel.Override `yaml:"travel"`
}

// LoadRules reads and parses the rules file at path.
func LoadRules(path string) (Rules, error) {
	var rules Rules
	raw, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("read rules file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &rules); err != nil {
		return rules, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	return rules, nil
}
