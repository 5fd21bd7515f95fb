package universe

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

//NeighborSet is a set of neighbor counts in [0,8], bit n is set when n is a member
type NeighborSet uint16

//Rule holds the two neighbor sets of a life-like automaton
type Rule struct {
	Survival NeighborSet //counts that keep a live cell alive
	Birth    NeighborSet //counts that bring a dead cell to life
}

var (
	//ConwayRule is B3/S23
	ConwayRule = Rule{Survival: NewNeighborSet(2, 3), Birth: NewNeighborSet(3)}

	ErrBadNeighborCount = errors.New("neighbor count must be within 0..8")
)

//NewNeighborSet builds the set from counts, counts outside 0..8 are dropped
func NewNeighborSet(counts ...int) NeighborSet {
	var s NeighborSet
	for _, n := range counts {
		if n >= 0 && n <= 8 {
			s |= 1 << uint(n)
		}
	}
	return s
}

//ParseNeighborDigits builds the set from the decimal digits of v, 23 gives {2,3}
func ParseNeighborDigits(v int) (NeighborSet, error) {
	if v < 0 {
		return 0, errors.Wrapf(ErrBadNeighborCount, "negative value %d", v)
	}
	return parseDigits(strconv.Itoa(v))
}

func parseDigits(digits string) (NeighborSet, error) {
	var s NeighborSet
	for _, d := range digits {
		if d < '0' || d > '8' {
			return 0, errors.Wrapf(ErrBadNeighborCount, "digit %q in %q", d, digits)
		}
		s |= 1 << uint(d-'0')
	}
	return s, nil
}

//Has reports whether n is in the set
func (s NeighborSet) Has(n int) bool {
	return n >= 0 && n <= 8 && s&(1<<uint(n)) != 0
}

//Counts returns the members in ascending order
func (s NeighborSet) Counts() []int {
	var c []int
	for n := 0; n <= 8; n++ {
		if s.Has(n) {
			c = append(c, n)
		}
	}
	return c
}

func (s NeighborSet) String() string {
	var b strings.Builder
	for _, n := range s.Counts() {
		b.WriteByte(byte('0' + n))
	}
	return b.String()
}

//ParseRule parses the rulestring notation, for example "B3/S23"
func ParseRule(rs string) (Rule, error) {
	var (
		r          Rule
		hasB, hasS bool
	)
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(rs)), "/")
	if len(parts) != 2 {
		return r, errors.Errorf("[ParseRule] malformed rule %q", rs)
	}
	for _, p := range parts {
		if p == "" {
			return r, errors.Errorf("[ParseRule] malformed rule %q", rs)
		}
		s, err := parseDigits(p[1:])
		if err != nil {
			return r, errors.Wrapf(err, "[ParseRule] rule %q", rs)
		}
		switch p[0] {
		case 'B':
			r.Birth, hasB = s, true
		case 'S':
			r.Survival, hasS = s, true
		default:
			return r, errors.Errorf("[ParseRule] unknown section %q in rule %q", p, rs)
		}
	}
	if !hasB || !hasS {
		return r, errors.Errorf("[ParseRule] rule %q needs both B and S sections", rs)
	}
	return r, nil
}

func (r Rule) String() string {
	return "B" + r.Birth.String() + "/S" + r.Survival.String()
}

//Next decides the next state of a cell from its current state and the count of live neighbors
func (r Rule) Next(alive bool, neighbors int) bool {
	if alive {
		return r.Survival.Has(neighbors)
	}
	return r.Birth.Has(neighbors)
}

//Neighbors counts live cells among the 8 surrounding ones
//coordinates outside the grid are skipped
func (g *Grid) Neighbors(row int, col int) int {
	n := 0
	for i := -1; i < 2; i++ {
		for j := -1; j < 2; j++ {
			//skip my position
			if i == 0 && j == 0 {
				continue
			}
			if g.IsAlive(row+i, col+j) {
				n++
			}
		}
	}
	return n
}

//NextState evaluates the cell at row, col against the rule
func (g *Grid) NextState(row int, col int, r Rule) bool {
	return r.Next(g.IsAlive(row, col), g.Neighbors(row, col))
}
