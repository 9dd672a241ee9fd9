package clackers

import (
	"flag"
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestParseDice(t *testing.T) {
	testCases := []struct {
		input    string
		expected DiceList
	}{
		{"6", DiceList{6}},
		{"6,6", DiceList{6, 6}},
		{" 20, 4 ,2,", DiceList{20, 4, 2}},
		{"", nil},
	}
	for _, tc := range testCases {
		got, err := ParseDice(tc.input)
		if err != nil || !slices.Equal(got, tc.expected) {
			t.Errorf("ParseDice(%q) = %v, %v; expected %v", tc.input, got, err, tc.expected)
		}
	}

	for _, bad := range []string{"six", "6,1", "0"} {
		if _, err := ParseDice(bad); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("ParseDice(%q): expected ErrInvalidConfiguration, got %v", bad, err)
		}
	}

	if s := (DiceList{6, 4}).String(); s != "6,4" {
		t.Errorf("String() = %q", s)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("CLACKERS_DICE", "6, 4")
	t.Setenv("CLACKERS_MARKING", "toggle")
	t.Setenv("CLACKERS_SEED", "99")

	cfg := Config{Combination: "SELECTION"}
	if err := LoadEnv(&cfg); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(cfg.Dice, DiceList{6, 4}) || cfg.Seed != 99 {
		t.Errorf("unexpected config %+v", cfg)
	}

	rules, err := cfg.RuleSet()
	if err != nil {
		t.Fatal(err)
	}
	if rules != (RuleSet{Marking: Toggle, Combination: Selection}) {
		t.Errorf("rules = %s", rules)
	}
}

func TestLoadEnvInvalidDice(t *testing.T) {
	t.Setenv("CLACKERS_DICE", "6,1")
	var cfg Config
	if err := LoadEnv(&cfg); err == nil {
		t.Error("expected error for a one sided die")
	}
}

func TestRegisterFlags(t *testing.T) {
	cfg := Config{Dice: DiceList{6}, Marking: "REMOVE", Combination: "ALLORONE"}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse([]string{"-dice", "2,3", "-marking", "TOGGLE"}); err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(cfg.Dice, DiceList{2, 3}) || cfg.Marking != "TOGGLE" || cfg.Combination != "ALLORONE" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestRuleSetInvalid(t *testing.T) {
	cfg := Config{Marking: "REMOVE", Combination: "SOMETIMES"}
	if _, err := cfg.RuleSet(); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
}
