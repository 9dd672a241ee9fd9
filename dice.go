package clackers

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

const minSides = 2

// Source of randomness used to roll dice. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// NewRandomSource returns a Source seeded with seed, or with the current
// time if seed is zero.
func NewRandomSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Die is a single n-sided die.
type Die struct {
	sides int
}

func NewDie(sides int) (Die, error) {
	if sides < minSides {
		return Die{}, errors.Wrapf(ErrInvalidConfiguration,
			"die must have at least %d sides, got %d", minSides, sides)
	}
	return Die{sides: sides}, nil
}

func (d Die) Sides() int {
	return d.sides
}

// Roll returns a value uniformly distributed in [1, sides].
func (d Die) Roll(src Source) int {
	return src.Intn(d.sides) + 1
}

func (d Die) String() string {
	return "d" + strconv.Itoa(d.sides)
}

// Throw is the outcome of rolling one die.
type Throw struct {
	Face  int
	Sides int
}

func (t Throw) String() string {
	return strconv.Itoa(t.Face) + "d" + strconv.Itoa(t.Sides)
}

// Roll is an ordered sequence of throws, one per die in the game.
type Roll []Throw

func NewRoll(throws ...Throw) Roll {
	for _, t := range throws {
		if t.Sides < minSides || t.Face < 1 || t.Face > t.Sides {
			panic(errors.AssertionFailedf("cannot create Roll with throw %s", t))
		}
	}
	return Roll(throws)
}

// The face values of the roll, in die order.
func (r Roll) Faces() []int {
	faces := make([]int, len(r))
	for i, t := range r {
		faces[i] = t.Face
	}
	return faces
}

func (r Roll) Sum() int {
	total := 0
	for _, t := range r {
		total += t.Face
	}
	return total
}

// Smallest face value in the roll. Panics on an empty roll.
func (r Roll) Min() int {
	if len(r) == 0 {
		panic(errors.AssertionFailedf("min of empty roll"))
	}
	result := r[0].Face
	for _, t := range r[1:] {
		result = min(result, t.Face)
	}
	return result
}

func (r Roll) String() string {
	parts := make([]string, len(r))
	for i, t := range r {
		parts[i] = t.String()
	}
	return strings.Join(parts, " | ")
}
