package rbtree

import "fmt"

// Color of a tree node. Trees observable by clients contain red and black
// nodes only; DoubleBlack and NegativeBlack exist transiently during a
// single deletion and are always resolved before it returns.
//
// The four colors form a scale from lightest to darkest:
//
//	NegativeBlack < Red < Black < DoubleBlack
//
// blacker and redder move one step along this scale. Deletion bookkeeping
// is arithmetic on this scale: removing a black node leaves a double-black
// debt, which rebalancing pays off by lightening colors elsewhere.
type Color int8

const (
	Red Color = iota
	Black
	DoubleBlack
	NegativeBlack
)

func (c Color) String() string {
	switch c {
	case Red:
		return "R"
	case Black:
		return "B"
	case DoubleBlack:
		return "BB"
	case NegativeBlack:
		return "NB"
	}
	return fmt.Sprintf("color(%d)", int8(c))
}

// blacker darkens a color by one shade.
func (c Color) blacker() Color {
	switch c {
	case NegativeBlack:
		return Red
	case Red:
		return Black
	case Black:
		return DoubleBlack
	}
	assertThat(false, "attempt to blacken a double-black node")
	return c
}

// redder lightens a color by one shade.
func (c Color) redder() Color {
	switch c {
	case DoubleBlack:
		return Black
	case Black:
		return Red
	case Red:
		return NegativeBlack
	}
	assertThat(false, "attempt to redden a negative-black node")
	return c
}
