package game

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"lukechampine.com/frand"
)

// Four binary dice: the face is the number of marked tips showing.
var diceWeights = []float64{1, 4, 6, 4, 1}

// DiceProbability is the chance of throwing the given face.
func DiceProbability(face int) float64 {
	if face < 0 || face > MaxDice {
		return 0
	}
	return diceWeights[face] / 16
}

type DiceSource interface {
	Draw() int
	DrawN(n int) []int
}

type categoricalDice struct {
	dist distuv.Categorical
}

// NewDice returns a source following the four-binary-dice distribution. A
// zero seed picks a random one.
func NewDice(seed uint64) DiceSource {
	if seed == 0 {
		seed = frand.Uint64n(math.MaxUint64) + 1
	}
	src := rand.NewSource(seed)
	return &categoricalDice{dist: distuv.NewCategorical(diceWeights, src)}
}

func (d *categoricalDice) Draw() int {
	return int(d.dist.Rand())
}

func (d *categoricalDice) DrawN(n int) []int {
	return drawN(d, n)
}

// ScriptedDice replays the given faces in order, wrapping around at the end.
type ScriptedDice struct {
	Faces []int
	next  int
}

func NewScriptedDice(faces ...int) *ScriptedDice {
	if len(faces) == 0 {
		panic("scripted dice need at least one face")
	}
	return &ScriptedDice{Faces: faces}
}

func (d *ScriptedDice) Draw() int {
	face := d.Faces[d.next%len(d.Faces)]
	d.next++
	return face
}

func (d *ScriptedDice) DrawN(n int) []int {
	return drawN(d, n)
}

func drawN(d DiceSource, n int) []int {
	faces := make([]int, n)
	for i := range faces {
		faces[i] = d.Draw()
	}
	return faces
}
