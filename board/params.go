package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Shape selects the kind of board a set of parameters describes.
type Shape int

const (
	// Cross is the classic English cross board, fixed at 7×7.
	Cross Shape = iota
	// Octagon is the European octagonal board, fixed at 7×7.
	Octagon
	// Random is a generated board of arbitrary size (see the generator package).
	Random
)

var (
	shapeNames  = [...]string{"cross", "octagon", "random"}
	shapeTitles = [...]string{"Cross", "Octagon", "Random"}
)

// String returns the lower-case shape name used in encoded parameters.
func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return "invalid"
	}

	return shapeNames[s]
}

// Title returns the display name of the shape.
func (s Shape) Title() string {
	if s < 0 || int(s) >= len(shapeTitles) {
		return "Invalid"
	}

	return shapeTitles[s]
}

// Params describes a board request: dimensions plus shape.
type Params struct {
	Width, Height int
	Shape         Shape
}

// DefaultParams returns the classic starting configuration: 7×7 Cross.
func DefaultParams() Params {
	return Params{Width: 7, Height: 7, Shape: Cross}
}

// Preset is a named, ready-to-play parameter set.
type Preset struct {
	Name   string
	Params Params
}

// Presets returns the standard menu of board configurations.
func Presets() []Preset {
	configs := []Params{
		{7, 7, Cross},
		{7, 7, Octagon},
		{5, 5, Random},
		{7, 7, Random},
		{9, 9, Random},
	}
	out := make([]Preset, 0, len(configs))
	for _, p := range configs {
		name := p.Shape.Title()
		if p.Shape == Random {
			name = fmt.Sprintf("%s %dx%d", name, p.Width, p.Height)
		}
		out = append(out, Preset{Name: name, Params: p})
	}

	return out
}

// Encode serializes the parameters as "WxH", with the shape name
// appended when full is true (e.g. "7x7cross").
func (p Params) Encode(full bool) string {
	s := fmt.Sprintf("%dx%d", p.Width, p.Height)
	if full {
		s += p.Shape.String()
	}

	return s
}

// DecodeParams parses a parameters string of the form "W", "WxH",
// "Wshape" or "WxHshape". A missing height defaults to the width; a
// missing shape defaults to Cross, matching DefaultParams. Returns
// ErrBadParams on anything else.
func DecodeParams(s string) (Params, error) {
	p := DefaultParams()

	w, rest, err := leadingInt(s)
	if err != nil {
		return Params{}, err
	}
	p.Width, p.Height = w, w

	if strings.HasPrefix(rest, "x") {
		if p.Height, rest, err = leadingInt(rest[1:]); err != nil {
			return Params{}, err
		}
	}

	if rest != "" {
		found := false
		for i, name := range shapeNames {
			if rest == name {
				p.Shape, found = Shape(i), true

				break
			}
		}
		if !found {
			return Params{}, ErrBadParams
		}
	}

	return p, nil
}

// Validate reports whether the parameters describe a supported board:
// both dimensions must exceed three, and the preset shapes are only
// known to be solvable at the standard 7×7 size.
func (p Params) Validate() error {
	if p.Width <= 3 || p.Height <= 3 {
		return ErrParamsSize
	}
	if (p.Shape == Cross || p.Shape == Octagon) && (p.Width != 7 || p.Height != 7) {
		return ErrShapeSize
	}

	return nil
}

// leadingInt splits s into its leading decimal run and the remainder.
func leadingInt(s string) (int, string, error) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, "", ErrBadParams
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, "", ErrBadParams
	}

	return n, s[i:], nil
}
