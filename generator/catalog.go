package generator

import (
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-server/tree234"

	"github.com/katalvlaran/pegs/board"
)

// moveCmp orders moves by identity: (y, x, dy, dx). Cost is ignored,
// so a probe with any Cost finds the catalog's record for that move.
func moveCmp(a, b *Move) int {
	if a.Y != b.Y {
		if a.Y < b.Y {
			return -1
		}

		return 1
	}
	if a.X != b.X {
		if a.X < b.X {
			return -1
		}

		return 1
	}
	if a.DY != b.DY {
		if a.DY < b.DY {
			return -1
		}

		return 1
	}
	if a.DX != b.DX {
		if a.DX < b.DX {
			return -1
		}

		return 1
	}

	return 0
}

// moveCostCmp orders moves by cost first, then identity. It keys the
// rank-query index, so all moves of one cost tier form a contiguous run.
func moveCostCmp(a, b *Move) int {
	if a.Cost != b.Cost {
		if a.Cost < b.Cost {
			return -1
		}

		return 1
	}

	return moveCmp(a, b)
}

// catalog is the live set of legal generation moves, held in two
// counted 2-3-4 trees over one shared record set: byMove for exact
// lookup and removal, byCost for rank-based selection within a cost
// tier. Every mutation goes through insert/remove, which touch both
// trees together, so the indices cannot diverge.
type catalog struct {
	byMove, byCost *tree234.Tree234[Move]
	height         int // board height, bounds every legal move's Y
	log            *logrus.Logger
}

func newCatalog(height int, log *logrus.Logger) *catalog {
	return &catalog{
		byMove: tree234.New(moveCmp),
		byCost: tree234.New(moveCostCmp),
		height: height,
		log:    log,
	}
}

// find returns the catalog's record for the move identified by probe
// (Cost ignored), or nil if absent.
func (c *catalog) find(probe *Move) *Move {
	m, _ := c.byMove.FindRelPos(probe, tree234.Eq)

	return m
}

// insert records m in both indices.
func (c *catalog) insert(m Move) {
	rec := &m
	c.byMove.Add(rec)
	c.byCost.Add(rec)
}

// remove deletes the move identified by probe from both indices,
// returning the removed record or nil. Absence is a no-op: callers do
// not distinguish "was absent" from "removed".
func (c *catalog) remove(probe *Move) *Move {
	m := c.byMove.Delete(probe)
	if m != nil {
		c.byCost.Delete(m)
	}

	return m
}

// len returns the number of live moves.
func (c *catalog) len() int {
	return c.byMove.Count()
}

// countAtMost returns the number of live moves with cost ≤ maxCost, in
// O(log n). The probe's Y equals the board height, which sorts after
// every real move of that cost (all moves have Y < height).
func (c *catalog) countAtMost(maxCost int) int {
	probe := Move{Y: c.height, Cost: maxCost}
	if m, pos := c.byCost.FindRelPos(&probe, tree234.Lt); m != nil {
		return pos + 1
	}

	return 0
}

// at returns the i-th move of the cost index in rank order.
func (c *catalog) at(i int) *Move {
	return c.byCost.Index(i)
}

// update is the incremental updater: given that cell (x,y) of b may
// have just changed, it reconciles the (at most 12) moves that touch
// (x,y) in any role — anchor, midpoint or far cell, in each of the four
// axis directions. Newly legal moves are inserted with a freshly
// computed cost; a move whose cost changed is removed and reinserted,
// since cost is part of the byCost key; newly illegal moves are
// removed. No other catalog entries are visited.
func (c *catalog) update(b *board.Board, x, y int) {
	for dir := 0; dir < 4; dir++ {
		var dx, dy int
		if dir&1 == 1 {
			dy = dir - 2
		} else {
			dx = dir - 1
		}

		for pos := 0; pos < 3; pos++ {
			m := Move{X: x - pos*dx, Y: y - pos*dy, DX: dx, DY: dy}

			if !b.InBounds(m.X, m.Y) || !b.InBounds(m.X+2*dx, m.Y+2*dy) {
				continue
			}

			anchor := b.At(m.X, m.Y)
			mid := b.At(m.X+dx, m.Y+dy)
			far := b.At(m.X+2*dx, m.Y+2*dy)

			if anchor != board.Peg || mid == board.Peg || far == board.Peg {
				if c.remove(&m) != nil {
					c.logMove("catalog delete", m)
				}

				continue
			}

			if mid == board.Blocked {
				m.Cost++
			}
			if far == board.Blocked {
				m.Cost++
			}

			if old := c.find(&m); old != nil {
				if old.Cost == m.Cost {
					continue
				}
				// Stale cost: the record must move within byCost.
				c.remove(old)
				c.logMove("catalog correct", m)
			}
			c.insert(m)
			c.logMove("catalog add", m)
		}
	}
}

func (c *catalog) logMove(msg string, m Move) {
	c.log.WithFields(logrus.Fields{
		"x": m.X, "y": m.Y, "dx": m.DX, "dy": m.DY, "cost": m.Cost,
	}).Debug(msg)
}
