// Copyright 2010-2024 Google LLC
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package minconflicts solves the N-Queens problem with the min-conflicts
// local search heuristic.
//
// A board is an assignment of one queen per row, `queens[row] = column`, so
// two queens can never share a row. The package keeps occupancy counters for
// every column and both diagonal directions, which makes evaluating and
// applying a single-queen move O(1). `Solve` and `SolveWithParameters` run
// the repair loop; `IsSolution` independently certifies any assignment.
package minconflicts

import (
	log "github.com/golang/glog"
)

// Board holds one N-Queens assignment together with the occupancy counters
// and the set of rows whose queen is currently under attack. All mutation
// goes through MoveQueen, which keeps every structure consistent.
type Board struct {
	n      int
	queens []int // queens[row] = column of the queen in that row

	// Occupancy counters. A queen at (r, c) contributes one to colCounts[c],
	// one to diag1Counts[r-c+n-1] (major diagonals) and one to
	// diag2Counts[r+c] (minor diagonals). Both diagonal arrays have 2n-1
	// entries.
	colCounts   []int
	diag1Counts []int
	diag2Counts []int

	// Occupant rows per column and diagonal. Only used to find the rows
	// whose conflict status may flip when a queen moves; all conflict
	// arithmetic goes through the counters above.
	colRows   [][]int
	diag1Rows [][]int
	diag2Rows [][]int

	// Rows with at least one attacker, as a swap-remove list plus a
	// position index (pos[row] == -1 when the row is not in the list).
	conflicted []int
	pos        []int
}

func newBoard(n int) *Board {
	nd := 2*n - 1
	b := &Board{
		n:           n,
		queens:      make([]int, n),
		colCounts:   make([]int, n),
		diag1Counts: make([]int, nd),
		diag2Counts: make([]int, nd),
		colRows:     make([][]int, n),
		diag1Rows:   make([][]int, nd),
		diag2Rows:   make([][]int, nd),
		pos:         make([]int, n),
	}
	for i := range b.queens {
		b.queens[i] = -1
		b.pos[i] = -1
	}
	return b
}

// Size returns the board size n.
func (b *Board) Size() int { return b.n }

// Assignment returns the current assignment, one column per row.
func (b *Board) Assignment() []int {
	return append([]int(nil), b.queens...)
}

// place puts the queen of an empty row on the board during initialization.
func (b *Board) place(row, col int) {
	d1 := row - col + b.n - 1
	d2 := row + col
	b.queens[row] = col
	b.colCounts[col]++
	b.diag1Counts[d1]++
	b.diag2Counts[d2]++
	b.colRows[col] = append(b.colRows[col], row)
	b.diag1Rows[d1] = append(b.diag1Rows[d1], row)
	b.diag2Rows[d2] = append(b.diag2Rows[d2], row)
}

// ConflictCount returns the number of other queens attacking a queen placed
// at (row, col). The counters include the row's own queen whenever it
// already occupies exactly that square, in which case it contributes one to
// all three of its lines and is excluded; a candidate square in the same row
// can never share a line with the queen's current square, so no other
// self-contribution is possible.
func (b *Board) ConflictCount(row, col int) int {
	c := b.colCounts[col] + b.diag1Counts[row-col+b.n-1] + b.diag2Counts[row+col]
	if b.queens[row] == col {
		c -= 3
	}
	return c
}

// MoveQueen relocates the queen of `row` to `newCol`, updating the counters,
// the occupant lists and the conflicted-row set in one logical operation.
// Moving a queen onto its current square is a no-op.
func (b *Board) MoveQueen(row, newCol int) {
	oldCol := b.queens[row]
	if oldCol == newCol {
		return
	}

	oldD1 := row - oldCol + b.n - 1
	oldD2 := row + oldCol
	newD1 := row - newCol + b.n - 1
	newD2 := row + newCol

	b.colCounts[oldCol]--
	b.diag1Counts[oldD1]--
	b.diag2Counts[oldD2]--
	b.colRows[oldCol] = removeRow(b.colRows[oldCol], row)
	b.diag1Rows[oldD1] = removeRow(b.diag1Rows[oldD1], row)
	b.diag2Rows[oldD2] = removeRow(b.diag2Rows[oldD2], row)

	b.queens[row] = newCol

	b.colCounts[newCol]++
	b.diag1Counts[newD1]++
	b.diag2Counts[newD2]++
	b.colRows[newCol] = append(b.colRows[newCol], row)
	b.diag1Rows[newD1] = append(b.diag1Rows[newD1], row)
	b.diag2Rows[newD2] = append(b.diag2Rows[newD2], row)

	// The move can flip the conflict status of any queen on the six lines
	// it touched, in either direction.
	b.refreshRows(b.colRows[oldCol])
	b.refreshRows(b.diag1Rows[oldD1])
	b.refreshRows(b.diag2Rows[oldD2])
	b.refreshRows(b.colRows[newCol])
	b.refreshRows(b.diag1Rows[newD1])
	b.refreshRows(b.diag2Rows[newD2])
	b.refresh(row)
}

// ConflictedRows returns the rows whose queen is currently attacked by at
// least one other queen. The returned slice is a copy in no particular
// order.
func (b *Board) ConflictedRows() []int {
	return append([]int(nil), b.conflicted...)
}

// IsSolution reports whether no queen on the board is under attack.
func (b *Board) IsSolution() bool {
	return len(b.conflicted) == 0
}

func (b *Board) refreshRows(rows []int) {
	for _, r := range rows {
		b.refresh(r)
	}
}

// refresh re-derives the conflicted-set membership of one row from the
// counters.
func (b *Board) refresh(row int) {
	if b.ConflictCount(row, b.queens[row]) > 0 {
		b.addConflicted(row)
	} else {
		b.removeConflicted(row)
	}
}

func (b *Board) addConflicted(row int) {
	if b.pos[row] >= 0 {
		return
	}
	b.pos[row] = len(b.conflicted)
	b.conflicted = append(b.conflicted, row)
}

func (b *Board) removeConflicted(row int) {
	i := b.pos[row]
	if i < 0 {
		return
	}
	last := len(b.conflicted) - 1
	moved := b.conflicted[last]
	b.conflicted[i] = moved
	b.pos[moved] = i
	b.conflicted = b.conflicted[:last]
	b.pos[row] = -1
}

// rebuildConflicted scans the whole board once. Initializers call it after
// the last queen is placed; afterwards the set is only maintained
// incrementally.
func (b *Board) rebuildConflicted() {
	b.conflicted = b.conflicted[:0]
	for row := range b.pos {
		b.pos[row] = -1
	}
	for row := 0; row < b.n; row++ {
		if b.ConflictCount(row, b.queens[row]) > 0 {
			b.addConflicted(row)
		}
	}
}

func removeRow(rows []int, row int) []int {
	for i, r := range rows {
		if r == row {
			last := len(rows) - 1
			rows[i] = rows[last]
			return rows[:last]
		}
	}
	log.Fatalf("occupant list is missing row %v; counters are corrupted", row)
	return rows
}
