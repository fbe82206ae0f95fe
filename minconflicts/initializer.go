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

package minconflicts

import (
	"math/rand"
)

// InitStrategy selects how the starting assignment is built.
type InitStrategy int

const (
	// GreedyInit places rows in order, each on a sampled minimum-conflict
	// column. It leaves orders of magnitude fewer conflicts than RandomInit
	// and is the default.
	GreedyInit InitStrategy = iota
	// RandomInit places every row on an independent uniform random column.
	RandomInit
)

func (s InitStrategy) String() string {
	switch s {
	case GreedyInit:
		return "greedy"
	case RandomInit:
		return "random"
	}
	return "unknown"
}

// greedySampleSize caps the candidate columns evaluated per row so that
// greedy initialization stays O(n) overall. Taking the true minimum over all
// columns would make it O(n^2).
const greedySampleSize = 64

// NewRandomBoard builds a board with every queen on an independent uniform
// random column of its row.
func NewRandomBoard(n int, rng *rand.Rand) *Board {
	b := newBoard(n)
	for row := 0; row < n; row++ {
		b.place(row, rng.Intn(n))
	}
	b.rebuildConflicted()
	return b
}

// NewGreedyBoard builds a board row by row, placing each queen on the column
// with the fewest conflicts against the rows already placed, among a random
// sample of candidate columns. Ties are broken uniformly at random.
func NewGreedyBoard(n int, rng *rand.Rand) *Board {
	b := newBoard(n)
	b.place(0, rng.Intn(n))
	for row := 1; row < n; row++ {
		best := -1
		bestConflicts := 0
		ties := 0
		for i := 0; i < greedySampleSize; i++ {
			col := rng.Intn(n)
			c := b.ConflictCount(row, col)
			switch {
			case best < 0 || c < bestConflicts:
				best, bestConflicts, ties = col, c, 1
			case c == bestConflicts:
				ties++
				if rng.Intn(ties) == 0 {
					best = col
				}
			}
		}
		b.place(row, best)
	}
	b.rebuildConflicted()
	return b
}
