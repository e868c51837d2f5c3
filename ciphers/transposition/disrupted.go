package transposition

import (
	oldcrypto "github.com/BackendStack21/old-crypto-go"
	"github.com/BackendStack21/old-crypto-go/utils"
)

const disruptedName = "disrupted"

// Disrupted is the VIC style disrupted transposition. A triangular area
// starts on row 0 at the column holding rank 0 (or rank 1, whichever is
// further left) and loses one column per row. The text first fills the cells
// outside the triangle row by row, then the cells inside it; the columns are
// then read in key order like a regular transposition.
type Disrupted struct {
	key   string
	order []int
	start int
}

var _ oldcrypto.Block = (*Disrupted)(nil)

// NewDisrupted returns a disrupted transposition keyed by key.
func NewDisrupted(key string) (*Disrupted, error) {
	if key == "" {
		return nil, oldcrypto.InvalidKeyf(disruptedName, "key can not be empty")
	}
	ranks := utils.ToNumeric(key)
	order := make([]int, len(ranks))
	for col, r := range ranks {
		order[r] = col
	}
	start := order[0]
	if len(order) > 1 && order[1] < start {
		start = order[1]
	}
	return &Disrupted{key: key, order: order, start: start}, nil
}

// BlockSize returns the key length.
func (d *Disrupted) BlockSize() int { return len(d.order) }

// InTriangle reports whether cell (r, c) belongs to the disrupted area.
func (d *Disrupted) InTriangle(r, c int) bool {
	return c >= d.start+r && c < len(d.order)
}

// fillOrder returns the cell indexes (r*k+c) in the order text fills them.
func (d *Disrupted) fillOrder(n int) []int {
	k := len(d.order)
	rows := (n + k - 1) / k
	cells := make([]int, 0, n)
	for pass := 0; pass < 2; pass++ {
		for r := 0; r < rows; r++ {
			for c := 0; c < k; c++ {
				if len(cells) == n {
					return cells
				}
				if d.InTriangle(r, c) == (pass == 1) {
					cells = append(cells, r*k+c)
				}
			}
		}
	}
	return cells
}

// readOrder returns the active cells column by column in key order.
func (d *Disrupted) readOrder(fill []int) []int {
	k := len(d.order)
	rows := (len(fill) + k - 1) / k
	active := make([]bool, rows*k)
	for _, idx := range fill {
		active[idx] = true
	}
	out := make([]int, 0, len(fill))
	for _, col := range d.order {
		for r := 0; r < rows; r++ {
			if idx := r*k + col; active[idx] {
				out = append(out, idx)
			}
		}
	}
	return out
}

func (d *Disrupted) Encrypt(src []byte) ([]byte, error) {
	fill := d.fillOrder(len(src))
	k := len(d.order)
	cells := make([]byte, ((len(src)+k-1)/k)*k)
	for i, idx := range fill {
		cells[idx] = src[i]
	}
	dst := make([]byte, 0, len(src))
	for _, idx := range d.readOrder(fill) {
		dst = append(dst, cells[idx])
	}
	return dst, nil
}

func (d *Disrupted) Decrypt(src []byte) ([]byte, error) {
	fill := d.fillOrder(len(src))
	k := len(d.order)
	cells := make([]byte, ((len(src)+k-1)/k)*k)
	for i, idx := range d.readOrder(fill) {
		cells[idx] = src[i]
	}
	dst := make([]byte, len(src))
	for i, idx := range fill {
		dst[i] = cells[idx]
	}
	return dst, nil
}
