package clackers

import (
	"flag"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
)

// Config holds the settings shared by the commands. Values are read from
// the environment first and may then be overridden by flags.
type Config struct {
	Dice        DiceList `env:"CLACKERS_DICE"`
	Marking     string   `env:"CLACKERS_MARKING"`
	Combination string   `env:"CLACKERS_COMBINATION"`
	Seed        int64    `env:"CLACKERS_SEED"`
	MetricsAddr string   `env:"CLACKERS_METRICS_ADDR"`
}

// LoadEnv overwrites fields of cfg for which an environment variable is set.
func LoadEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return errors.Wrap(err, "parse env")
	}
	return nil
}

// RegisterFlags binds cfg to flags, using the current values as defaults.
func (cfg *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Var(&cfg.Dice, "dice", "Comma separated number of sides of each die, e.g. 6,6")
	fs.StringVar(&cfg.Marking, "marking", cfg.Marking,
		"Marking mode: "+strings.Join(MarkingModeNames(), " | "))
	fs.StringVar(&cfg.Combination, "combination", cfg.Combination,
		"Combination mode: "+strings.Join(CombinationModeNames(), " | "))
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 = time based)")
	fs.StringVar(&cfg.MetricsAddr, "metrics_addr", cfg.MetricsAddr,
		"Address to serve prometheus metrics on; disabled if empty")
}

// RuleSet parses the configured modes.
func (cfg Config) RuleSet() (RuleSet, error) {
	marking, err := ParseMarkingMode(cfg.Marking)
	if err != nil {
		return RuleSet{}, errors.Mark(err, ErrInvalidConfiguration)
	}
	combination, err := ParseCombinationMode(cfg.Combination)
	if err != nil {
		return RuleSet{}, errors.Mark(err, ErrInvalidConfiguration)
	}
	return RuleSet{Marking: marking, Combination: combination}, nil
}

// DiceList is the number of sides of each die in a game.
type DiceList []int

// ParseDice parses a comma separated list of side counts, e.g. "6,6".
func ParseDice(s string) (DiceList, error) {
	var result DiceList
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sides, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidConfiguration, "not a number of sides: %q", part)
		}
		if sides < minSides {
			return nil, errors.Wrapf(ErrInvalidConfiguration,
				"you can't have a die with %d sides", sides)
		}
		result = append(result, sides)
	}
	return result, nil
}

func (d DiceList) String() string {
	parts := make([]string, len(d))
	for i, sides := range d {
		parts[i] = strconv.Itoa(sides)
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (d *DiceList) Set(s string) error {
	dice, err := ParseDice(s)
	if err != nil {
		return err
	}
	*d = dice
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler, used when reading
// the list from the environment.
func (d *DiceList) UnmarshalText(text []byte) error {
	return d.Set(string(text))
}
