package clackers

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/golang/glog"
	"github.com/google/uuid"
)

// Game is a single game of Clackers: a board, the dice used to clear it
// and the rules that turn rolls into cells.
type Game struct {
	id     uuid.UUID
	dice   []Die
	board  *Board
	rules  RuleSet
	throws int
}

// NewGame creates a game with one die per entry of sides. The board has as
// many cells as the total number of sides.
func NewGame(sides []int, rules RuleSet) (*Game, error) {
	if len(sides) == 0 {
		return nil, errors.Wrap(ErrInvalidConfiguration, "you can't play with no dice")
	}

	dice := make([]Die, 0, len(sides))
	size := 0
	for i, n := range sides {
		die, err := NewDie(n)
		if err != nil {
			return nil, errors.Wrapf(err, "die %d", i+1)
		}
		dice = append(dice, die)
		size += n
	}

	g := &Game{
		id:    uuid.New(),
		dice:  dice,
		board: NewBoard(size),
		rules: rules,
	}
	glog.V(1).Infof("Created game %s: dice=%v, rules=%s, cells=%d",
		g.id, dice, rules, size)
	return g, nil
}

func (g *Game) ID() uuid.UUID {
	return g.id
}

func (g *Game) Rules() RuleSet {
	return g.rules
}

func (g *Game) Dice() []Die {
	return append([]Die(nil), g.dice...)
}

// Number of throws so far, including skipped ones.
func (g *Game) Throws() int {
	return g.throws
}

func (g *Game) Won() bool {
	return g.board.Won()
}

// Board returns a snapshot of the cells.
func (g *Game) Board() []Cell {
	return g.board.Snapshot()
}

func (g *Game) String() string {
	return fmt.Sprintf("Game %s (%s): throws=%d, marked=%d/%d",
		g.id, g.rules, g.throws, g.board.Marked(), g.board.Size())
}

// Roll throws every die once.
func (g *Game) Roll(src Source) Roll {
	if len(g.dice) == 0 {
		panic(errors.AssertionFailedf("cannot roll a game with no dice"))
	}
	roll := make(Roll, len(g.dice))
	for i, die := range g.dice {
		roll[i] = Throw{Face: die.Roll(src), Sides: die.Sides()}
	}
	return roll
}

// Decide derives the moves available for roll on the current board.
func (g *Game) Decide(roll Roll) Decision {
	return g.rules.Decide(g.board, roll)
}

// Apply marks indices and counts the throw, whether or not anything was
// marked. Returns whether the game is won.
func (g *Game) Apply(indices []int) bool {
	g.board.Apply(indices, g.rules.Marking)
	g.throws++
	recordThrow(len(indices))

	won := g.board.Won()
	if won {
		recordWin(g.rules, g.throws)
		glog.V(1).Infof("Game %s won in %d throw(s)", g.id, g.throws)
	}
	return won
}

// Chooser supplies the player's decisions when a roll has more than one
// possible use. Implementations are expected to only return legal choices;
// errors are reserved for failures to obtain a choice at all.
type Chooser interface {
	// ChooseStrategy picks one of options, which holds at least two
	// strategies.
	ChooseStrategy(g *Game, roll Roll, options []Strategy) (Strategy, error)
	// PlaceDie returns the slot, in [0, stack.Len()], for die nth of roll.
	PlaceDie(g *Game, roll Roll, nth int, stack *Stack) (int, error)
}

// TurnResult describes one completed turn.
type TurnResult struct {
	Roll     Roll
	Decision Decision
	// Cells that were applied to the board. Empty for a skipped throw.
	Indices []int
	// Strategy picked by the chooser, when one was asked for.
	Strategy Strategy
	Won      bool
}

// Turn rolls the dice, resolves the resulting move with chooser and
// applies it. The board is left untouched if an error is returned.
func (g *Game) Turn(src Source, chooser Chooser) (TurnResult, error) {
	roll := g.Roll(src)
	result := TurnResult{
		Roll:     roll,
		Decision: g.Decide(roll),
	}

	indices, strategy, err := g.Resolve(roll, result.Decision, chooser)
	if err != nil {
		return result, err
	}
	result.Indices = indices
	result.Strategy = strategy

	glog.V(2).Infof("Game %s: roll %s -> %s %v", g.id, roll, result.Decision.Kind, indices)
	result.Won = g.Apply(indices)
	return result, nil
}

// Resolve turns decision into the cells to apply, asking chooser when the
// player has a choice to make. The returned strategy is only meaningful in
// AllOrOne mode.
func (g *Game) Resolve(roll Roll, decision Decision, chooser Chooser) ([]int, Strategy, error) {
	switch decision.Kind {
	case DecideSkip:
		glog.V(2).Infof("Game %s: no possible moves for %s, skipped", g.id, roll)
		return nil, 0, nil
	case DecideAuto:
		return decision.Indices, decision.Strategy, nil
	case DecidePickStrategy:
		strategy, err := chooser.ChooseStrategy(g, roll, decision.Strategies)
		if err != nil {
			return nil, 0, errors.Wrap(err, "choosing strategy")
		}
		indices, err := decision.Resolve(roll, strategy)
		if err != nil {
			return nil, 0, err
		}
		return indices, strategy, nil
	case DecideBuildStack:
		var stack Stack
		for nth, t := range roll {
			slot, err := chooser.PlaceDie(g, roll, nth, &stack)
			if err != nil {
				return nil, 0, errors.Wrapf(err, "placing die %d", nth+1)
			}
			if err := stack.Place(slot, t.Face); err != nil {
				return nil, 0, errors.Mark(err, ErrIllegalChoice)
			}
		}
		return stack.Values(), 0, nil
	}
	panic(errors.AssertionFailedf("unknown decision %s", decision.Kind))
}

// Play runs turns until the game is won and returns the number of throws.
// onTurn, if not nil, is called after every turn.
func (g *Game) Play(src Source, chooser Chooser, onTurn func(TurnResult)) (int, error) {
	for !g.Won() {
		result, err := g.Turn(src, chooser)
		if err != nil {
			return g.throws, err
		}
		if onTurn != nil {
			onTurn(result)
		}
	}
	return g.throws, nil
}
