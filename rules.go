package clackers

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// MarkingMode determines what happens to a cell when it is selected.
type MarkingMode int

const (
	// Remove marks a cell permanently.
	Remove MarkingMode = iota
	// Toggle flips a cell every time it is selected.
	Toggle
)

var markingModeNames = map[MarkingMode]string{
	Remove: "REMOVE",
	Toggle: "TOGGLE",
}

func (m MarkingMode) String() string {
	if name, ok := markingModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("MarkingMode(%d)", int(m))
}

func ParseMarkingMode(s string) (MarkingMode, error) {
	for mode, name := range markingModeNames {
		if normalizeName(s) == name {
			return mode, nil
		}
	}
	return 0, errors.Newf("unknown marking mode %q, expected %s",
		s, strings.Join(MarkingModeNames(), " | "))
}

func MarkingModeNames() []string {
	return []string{Remove.String(), Toggle.String()}
}

// CombinationMode determines how a roll of several dice becomes cells.
type CombinationMode int

const (
	// AllOrOne uses either the total of the dice or every individual face.
	AllOrOne CombinationMode = iota
	// Selection lets the player stack dice into any number of sums.
	Selection
)

var combinationModeNames = map[CombinationMode]string{
	AllOrOne:  "ALLORONE",
	Selection: "SELECTION",
}

func (m CombinationMode) String() string {
	if name, ok := combinationModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("CombinationMode(%d)", int(m))
}

func ParseCombinationMode(s string) (CombinationMode, error) {
	for mode, name := range combinationModeNames {
		if normalizeName(s) == name {
			return mode, nil
		}
	}
	return 0, errors.Newf("unknown combination mode %q, expected %s",
		s, strings.Join(CombinationModeNames(), " | "))
}

func CombinationModeNames() []string {
	return []string{AllOrOne.String(), Selection.String()}
}

// Strategy is one of the two ways to use a roll in AllOrOne mode.
type Strategy int

const (
	Total Strategy = iota
	Individual
)

var allStrategies = []Strategy{Total, Individual}

var strategyNames = map[Strategy]string{
	Total:      "TOTAL",
	Individual: "INDIVIDUAL",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

func ParseStrategy(s string) (Strategy, error) {
	for strategy, name := range strategyNames {
		if normalizeName(s) == name {
			return strategy, nil
		}
	}
	return 0, errors.Newf("unknown strategy %q", s)
}

// Whether using the roll this way would mark at least one clear cell.
func (s Strategy) Worthwhile(board *Board, roll Roll) bool {
	switch s {
	case Total:
		return board.IsClear(roll.Sum())
	case Individual:
		for _, face := range roll.Faces() {
			if board.IsClear(face) {
				return true
			}
		}
		return false
	}
	panic(errors.AssertionFailedf("unknown strategy %d", s))
}

// The cells selected by using the roll this way.
func (s Strategy) Indices(roll Roll) []int {
	switch s {
	case Total:
		return []int{roll.Sum()}
	case Individual:
		return roll.Faces()
	}
	panic(errors.AssertionFailedf("unknown strategy %d", s))
}

// normalizeName accepts "all_or_one", "All-Or-One" and "ALLORONE" alike.
func normalizeName(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)
}

// RuleSet is the pair of rule axes fixed for the lifetime of a game.
type RuleSet struct {
	Marking     MarkingMode
	Combination CombinationMode
}

func (rs RuleSet) String() string {
	return rs.Marking.String() + "/" + rs.Combination.String()
}

// Strategies returns the AllOrOne strategies offered for roll. Under Remove
// only the worthwhile ones are offered; under Toggle both always are.
func (rs RuleSet) Strategies(board *Board, roll Roll) []Strategy {
	result := make([]Strategy, 0, len(allStrategies))
	for _, s := range allStrategies {
		if rs.Marking == Toggle || s.Worthwhile(board, roll) {
			result = append(result, s)
		}
	}
	return result
}

// CheckOverlap reports whether some cell between the smallest face and the
// total of the roll, inclusive, is clear.
func CheckOverlap(board *Board, roll Roll) bool {
	for i := roll.Min(); i <= roll.Sum(); i++ {
		if board.IsClear(i) {
			return true
		}
	}
	return false
}

// SelectionLegal reports whether a Selection-mode stack could mark anything.
// Toggling is always meaningful so the check only applies under Remove.
func (rs RuleSet) SelectionLegal(board *Board, roll Roll) bool {
	if rs.Marking == Toggle {
		return true
	}
	return CheckOverlap(board, roll)
}

// DecisionKind says what, if anything, must be asked of the player.
type DecisionKind int

const (
	// DecideSkip means there is no useful move; the throw is wasted.
	DecideSkip DecisionKind = iota
	// DecideAuto means Indices is the only possible move.
	DecideAuto
	// DecidePickStrategy means the player picks one of Strategies.
	DecidePickStrategy
	// DecideBuildStack means the player places every die on a Stack.
	DecideBuildStack
)

func (k DecisionKind) String() string {
	switch k {
	case DecideSkip:
		return "skip"
	case DecideAuto:
		return "auto"
	case DecidePickStrategy:
		return "pick-strategy"
	case DecideBuildStack:
		return "build-stack"
	}
	return fmt.Sprintf("DecisionKind(%d)", int(k))
}

// Decision is the set of moves available for a roll.
type Decision struct {
	Kind DecisionKind
	// Cells to apply when Kind is DecideAuto.
	Indices []int
	// Strategy that was selected automatically, if any.
	Strategy   Strategy
	Automatic  bool
	Strategies []Strategy
}

// Decide derives the available moves for roll. It does not modify board.
func (rs RuleSet) Decide(board *Board, roll Roll) Decision {
	if len(roll) == 0 {
		panic(errors.AssertionFailedf("cannot decide on an empty roll"))
	} else if len(roll) == 1 {
		return Decision{Kind: DecideAuto, Indices: roll.Faces()}
	}

	switch rs.Combination {
	case AllOrOne:
		strategies := rs.Strategies(board, roll)
		switch len(strategies) {
		case 0:
			return Decision{Kind: DecideSkip}
		case 1:
			return Decision{
				Kind:      DecideAuto,
				Indices:   strategies[0].Indices(roll),
				Strategy:  strategies[0],
				Automatic: true,
			}
		default:
			return Decision{Kind: DecidePickStrategy, Strategies: strategies}
		}
	case Selection:
		if !rs.SelectionLegal(board, roll) {
			return Decision{Kind: DecideSkip}
		}
		return Decision{Kind: DecideBuildStack}
	}
	panic(errors.AssertionFailedf("unknown combination mode %d", rs.Combination))
}

// Resolve returns the cells selected by picking strategy, which must be one
// of the offered Strategies.
func (d Decision) Resolve(roll Roll, strategy Strategy) ([]int, error) {
	if d.Kind != DecidePickStrategy || !slices.Contains(d.Strategies, strategy) {
		return nil, errors.Wrapf(ErrIllegalChoice,
			"%s is not one of the possible choices %v", strategy, d.Strategies)
	}
	return strategy.Indices(roll), nil
}
