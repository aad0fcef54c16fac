package blocks

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidShape is returned when a shape definition is not a non-empty
// square bitmap.
var ErrInvalidShape = errors.New("invalid shape")

// Shape is an immutable square bitmap of occupied cells.
// Values are safe to share; no method mutates the receiver.
type Shape struct {
	side int
	bits []bool // row-major, side*side
}

// ParseShape builds a shape from rows of '#'/'1' (occupied) and '.'/'0'
// (empty). Rows are separated by newlines or '/'.
func ParseShape(def string) (Shape, error) {
	def = strings.TrimSpace(def)
	var rows []string
	for _, line := range strings.FieldsFunc(def, func(r rune) bool { return r == '\n' || r == '/' }) {
		if line = strings.TrimSpace(line); line != "" {
			rows = append(rows, line)
		}
	}

	side := len(rows)
	if side == 0 {
		return Shape{}, fmt.Errorf("%w: empty definition", ErrInvalidShape)
	}

	s := Shape{side: side, bits: make([]bool, side*side)}
	occupied := 0
	for r, line := range rows {
		if len(line) != side {
			return Shape{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidShape, r, len(line), side)
		}
		for c, ch := range line {
			switch ch {
			case '#', '1':
				s.bits[r*side+c] = true
				occupied++
			case '.', '0':
			default:
				return Shape{}, fmt.Errorf("%w: unexpected %q at row %d", ErrInvalidShape, ch, r)
			}
		}
	}
	if occupied == 0 {
		return Shape{}, fmt.Errorf("%w: no occupied cells", ErrInvalidShape)
	}
	return s, nil
}

// MustParseShape is like ParseShape but panics on error.
func MustParseShape(def string) Shape {
	s, err := ParseShape(def)
	if err != nil {
		panic(err)
	}
	return s
}

// Side returns the bitmap side length.
func (s Shape) Side() int { return s.side }

// At reports whether cell (r, c) of the bitmap is occupied.
func (s Shape) At(r, c int) bool {
	if r < 0 || r >= s.side || c < 0 || c >= s.side {
		return false
	}
	return s.bits[r*s.side+c]
}

// Rotate returns the shape turned 90° clockwise: new[r][c] = old[S-1-c][r].
func (s Shape) Rotate() Shape {
	out := Shape{side: s.side, bits: make([]bool, len(s.bits))}
	for r := 0; r < s.side; r++ {
		for c := 0; c < s.side; c++ {
			out.bits[r*s.side+c] = s.At(s.side-1-c, r)
		}
	}
	return out
}

// Equal reports whether two shapes have the same bitmap.
func (s Shape) Equal(other Shape) bool {
	if s.side != other.side {
		return false
	}
	for i := range s.bits {
		if s.bits[i] != other.bits[i] {
			return false
		}
	}
	return true
}

// String renders the bitmap with '#' and '.' separated by '/'.
func (s Shape) String() string {
	var b strings.Builder
	for r := 0; r < s.side; r++ {
		if r > 0 {
			b.WriteByte('/')
		}
		for c := 0; c < s.side; c++ {
			if s.At(r, c) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Catalog is the immutable set of shapes pieces are drawn from.
type Catalog []Shape

// NewCatalog parses every definition into a catalog.
func NewCatalog(defs []string) (Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", ErrInvalidShape)
	}
	cat := make(Catalog, 0, len(defs))
	for i, def := range defs {
		s, err := ParseShape(def)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		cat = append(cat, s)
	}
	return cat, nil
}

// Shape definitions for the built-in catalogs.
var (
	shapeO = "##/##"
	shapeT = ".#./###/..."
	shapeJ = "#../###/..."
	shapeL = "..#/###/..."
	shapeI = "..../####/..../...."
	shapeS = ".##/##./..."
	shapeZ = "##./.##/..."
)

// DefaultShapes lists the five-shape catalog definitions.
func DefaultShapes() []string {
	return []string{shapeO, shapeT, shapeJ, shapeL, shapeI}
}

// ClassicShapes lists all seven tetromino definitions.
func ClassicShapes() []string {
	return []string{shapeO, shapeT, shapeJ, shapeL, shapeI, shapeS, shapeZ}
}

// DefaultCatalog returns the five-shape catalog: O, T, J, L and I.
func DefaultCatalog() Catalog {
	cat, _ := NewCatalog(DefaultShapes())
	return cat
}

// ClassicCatalog returns the seven-tetromino catalog.
func ClassicCatalog() Catalog {
	cat, _ := NewCatalog(ClassicShapes())
	return cat
}
