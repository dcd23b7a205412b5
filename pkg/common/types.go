package common

type Colour int8

const (
	Empty Colour = iota
	Black
	White
)

func (c Colour) Opposite() Colour {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}
