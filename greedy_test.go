package clackers

import (
	"slices"
	"testing"
)

func TestGreedyChooseStrategy(t *testing.T) {
	g, _ := NewGame([]int{6, 6}, RuleSet{Marking: Remove, Combination: AllOrOne})
	roll := d6Roll(3, 4)

	// INDIVIDUAL marks two cells, TOTAL one.
	s, _ := GreedyChooser{}.ChooseStrategy(g, roll, []Strategy{Total, Individual})
	if s != Individual {
		t.Errorf("chose %s, expected INDIVIDUAL", s)
	}

	// Ties go to the first option.
	g.Apply([]int{3})
	s, _ = GreedyChooser{}.ChooseStrategy(g, roll, []Strategy{Total, Individual})
	if s != Total {
		t.Errorf("chose %s, expected TOTAL", s)
	}
}

func TestGreedyToggleAvoidsClearing(t *testing.T) {
	g, _ := NewGame([]int{6, 6}, RuleSet{Marking: Toggle, Combination: AllOrOne})
	g.Apply([]int{3, 4})

	// INDIVIDUAL would clear 3 and 4.
	s, _ := GreedyChooser{}.ChooseStrategy(g, d6Roll(3, 4), []Strategy{Total, Individual})
	if s != Total {
		t.Errorf("chose %s, expected TOTAL", s)
	}
}

func TestGreedyPlaceDie(t *testing.T) {
	g, _ := NewGame([]int{6, 6}, RuleSet{Marking: Remove, Combination: Selection})
	roll := d6Roll(3, 4)

	if seq := bestSlotSequence(g, roll); !slices.Equal(seq, []int{0, 1}) {
		t.Errorf("empty board: got %v, expected separate slots", seq)
	}

	g.Apply([]int{3, 4})
	if seq := bestSlotSequence(g, roll); !slices.Equal(seq, []int{0, 0}) {
		t.Errorf("3 and 4 marked: got %v, expected stacked", seq)
	}

	var stack Stack
	for nth := range roll {
		slot, err := GreedyChooser{}.PlaceDie(g, roll, nth, &stack)
		if err != nil {
			t.Fatal(err)
		}
		if err := stack.Place(slot, roll[nth].Face); err != nil {
			t.Fatal(err)
		}
	}
	if !slices.Equal(stack.Values(), []int{7}) {
		t.Errorf("stack = %s", stack.String())
	}
}
