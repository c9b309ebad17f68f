package config

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/ceac-cli/internal/model"
)

// LoadStrategies returns the strategy set for an analysis of n strategies.
// With an empty path the default labels are used. Otherwise the YAML file
// must list every id in 1..n exactly once:
//
//	strategies:
//	  - id: 1
//	    label: Never
func LoadStrategies(path string, n int) (model.StrategySet, error) {
	if path == "" {
		return model.NumberedStrategies(n), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "config: read strategies %s", path)
	}

	var wrapper struct {
		Strategies model.StrategySet `yaml:"strategies"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, eris.Wrap(err, "config: parse strategies")
	}

	set := wrapper.Strategies
	if len(set) != n {
		return nil, eris.Errorf("config: strategies file lists %d strategies, analysis expects %d", len(set), n)
	}

	seen := make(map[int]bool, n)
	for _, s := range set {
		if s.ID < 1 || s.ID > n {
			return nil, eris.Errorf("config: strategy id %d outside 1..%d", s.ID, n)
		}
		if seen[s.ID] {
			return nil, eris.Errorf("config: duplicate strategy id %d", s.ID)
		}
		seen[s.ID] = true
	}

	return set, nil
}
