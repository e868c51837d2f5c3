// Package grid builds keyword grids (Polybius squares, Playfair tables).
//
// A grid is filled with the condensed keyword followed by the rest of the
// alphabet in canonical order, then reshaped into Rows x Cols cells. Letter
// conflation (I/J in the classical 5x5 square) is part of the Spec rather
// than hardcoded, since 6x6 grids do not conflate.
package grid

import (
	"strings"

	oldcrypto "github.com/BackendStack21/old-crypto-go"
	"github.com/BackendStack21/old-crypto-go/utils"
)

// Spec describes the shape and alphabet of a grid.
type Spec struct {
	Alphabet string
	Rows     int
	Cols     int
	// Conflate maps symbols outside Alphabet onto a symbol inside it.
	Conflate map[byte]byte
}

// Alphabet25 is the Latin alphabet without J.
const Alphabet25 = "ABCDEFGHIKLMNOPQRSTUVWXYZ"

// Predefined grid shapes.
var (
	// Playfair5x5 is the classical Playfair table with J written as I.
	Playfair5x5 = Spec{Alphabet: Alphabet25, Rows: 5, Cols: 5, Conflate: map[byte]byte{'J': 'I'}}

	// Polybius5x5 is the 25 letter Polybius square with J written as I.
	Polybius5x5 = Playfair5x5

	// Base36x6 is the 6x6 square of letters and digits used by ADFGVX.
	Base36x6 = Spec{Alphabet: utils.Base36, Rows: 6, Cols: 6}
)

// WithoutConflation returns a copy of s without letter conflation.
func (s Spec) WithoutConflation() Spec {
	s.Conflate = nil
	return s
}

// Validate checks the internal consistency of the spec.
func (s Spec) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return oldcrypto.InvalidConfigf("grid", "dimensions %dx%d must be positive", s.Rows, s.Cols)
	}
	if len(s.Alphabet) != s.Rows*s.Cols {
		return oldcrypto.InvalidConfigf("grid", "alphabet of %d symbols does not fill %dx%d", len(s.Alphabet), s.Rows, s.Cols)
	}
	if !utils.Unique(s.Alphabet) {
		return oldcrypto.InvalidConfigf("grid", "alphabet %q has duplicate symbols", s.Alphabet)
	}
	for from, to := range s.Conflate {
		if strings.IndexByte(s.Alphabet, from) >= 0 {
			return oldcrypto.InvalidConfigf("grid", "conflated symbol %q is part of the alphabet", from)
		}
		if strings.IndexByte(s.Alphabet, to) < 0 {
			return oldcrypto.InvalidConfigf("grid", "conflation target %q is not part of the alphabet", to)
		}
	}
	return nil
}

// Grid is an immutable keyed grid with a bijective symbol/coordinate mapping.
type Grid struct {
	spec  Spec
	cells []byte
	pos   [256]int
}

// New builds the grid for keyword. The keyword is uppercased and conflated;
// every keyword symbol must then belong to the alphabet.
func New(keyword string, spec Spec) (*Grid, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if keyword == "" {
		return nil, oldcrypto.InvalidKeyf("grid", "keyword can not be empty")
	}

	g := &Grid{spec: spec}
	for i := range g.pos {
		g.pos[i] = -1
	}
	for i := 0; i < len(spec.Alphabet); i++ {
		g.pos[spec.Alphabet[i]] = 0
	}

	key := []byte(strings.ToUpper(keyword))
	for i, c := range key {
		c = g.conflate(c)
		if g.pos[c] < 0 {
			return nil, oldcrypto.InvalidKeyf("grid", "keyword symbol %q at %d is not in the alphabet", keyword[i], i)
		}
		key[i] = c
	}

	g.cells = []byte(utils.Condense(string(key) + spec.Alphabet))
	for i, c := range g.cells {
		g.pos[c] = i
	}
	return g, nil
}

func (g *Grid) conflate(c byte) byte {
	if to, ok := g.spec.Conflate[c]; ok {
		return to
	}
	return c
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.spec.Rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.spec.Cols }

// Size returns the number of cells.
func (g *Grid) Size() int { return len(g.cells) }

// Spec returns the spec the grid was built from.
func (g *Grid) Spec() Spec { return g.spec }

// At returns the symbol at row r, column c. Coordinates wrap around.
func (g *Grid) At(r, c int) byte {
	r = ((r % g.spec.Rows) + g.spec.Rows) % g.spec.Rows
	c = ((c % g.spec.Cols) + g.spec.Cols) % g.spec.Cols
	return g.cells[r*g.spec.Cols+c]
}

// Locate returns the coordinates of sym after conflation.
func (g *Grid) Locate(sym byte) (r, c int, ok bool) {
	p := g.pos[g.conflate(sym)]
	if p < 0 {
		return 0, 0, false
	}
	return p / g.spec.Cols, p % g.spec.Cols, true
}

// Normalize applies conflation and reports whether sym belongs to the grid.
func (g *Grid) Normalize(sym byte) (byte, bool) {
	sym = g.conflate(sym)
	return sym, g.pos[sym] >= 0
}

// Contains reports whether sym (after conflation) is in the grid.
func (g *Grid) Contains(sym byte) bool {
	_, ok := g.Normalize(sym)
	return ok
}

// Letters returns the cells in row-major order.
func (g *Grid) Letters() string { return string(g.cells) }

// String renders the grid one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.spec.Rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.Write(g.cells[r*g.spec.Cols : (r+1)*g.spec.Cols])
	}
	return b.String()
}
