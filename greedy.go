package clackers

// GreedyChooser picks whichever move marks the most cells right now,
// preferring the first option on ties. It never looks ahead.
type GreedyChooser struct{}

var _ Chooser = GreedyChooser{}

func (GreedyChooser) ChooseStrategy(g *Game, roll Roll, options []Strategy) (Strategy, error) {
	best, bestGain := options[0], minGain
	for _, s := range options {
		if gain := g.gain(s.Indices(roll)); gain > bestGain {
			best, bestGain = s, gain
		}
	}
	return best, nil
}

func (GreedyChooser) PlaceDie(g *Game, roll Roll, nth int, stack *Stack) (int, error) {
	return bestSlotSequence(g, roll)[nth], nil
}

const minGain = -1 << 31

func bestSlotSequence(g *Game, roll Roll) []int {
	var best []int
	bestGain := minGain
	for _, seq := range SlotSequences(len(roll)) {
		indices, err := BuildStack(roll, seq)
		if err != nil {
			panic(err) // SlotSequences only yields valid placements.
		}
		if gain := g.gain(indices); gain > bestGain {
			best, bestGain = seq, gain
		}
	}
	return best
}

// gain is the change in the number of marked cells if indices were applied.
func (g *Game) gain(indices []int) int {
	board := g.board.Clone()
	board.Apply(indices, g.rules.Marking)
	return board.Marked() - g.board.Marked()
}
