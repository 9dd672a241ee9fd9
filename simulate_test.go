package clackers

import "testing"

func TestSimulate(t *testing.T) {
	stats, err := Simulate(SimulationParams{
		Dice:     []int{6},
		Rules:    RuleSet{Marking: Remove, Combination: AllOrOne},
		NumGames: 200,
	}, NewRandomSource(3), GreedyChooser{})
	if err != nil {
		t.Fatal(err)
	}

	if stats.NumGames != 200 || stats.Unfinished != 0 {
		t.Errorf("unexpected stats: %v", stats)
	}
	// At least one throw per cell.
	if stats.Min < 6 || stats.Mean < stats.Min || stats.Max < stats.P90 || stats.P90 < stats.Median {
		t.Errorf("inconsistent stats: %v", stats)
	}
}

func TestSimulateMaxThrows(t *testing.T) {
	// Two cells can never be marked in a single throw of one die.
	stats, err := Simulate(SimulationParams{
		Dice:      []int{2},
		Rules:     RuleSet{Marking: Toggle, Combination: Selection},
		NumGames:  10,
		MaxThrows: 1,
	}, NewRandomSource(3), GreedyChooser{})
	if err != nil {
		t.Fatal(err)
	}
	if stats.Unfinished != 10 || stats.Mean != 0 {
		t.Errorf("unexpected stats: %v", stats)
	}
}

func TestSimulateInvalid(t *testing.T) {
	if _, err := Simulate(SimulationParams{Dice: []int{6}}, NewRandomSource(1), GreedyChooser{}); err == nil {
		t.Error("expected error for zero games")
	}
	if _, err := Simulate(SimulationParams{NumGames: 1}, NewRandomSource(1), GreedyChooser{}); err == nil {
		t.Error("expected error for no dice")
	}
}
