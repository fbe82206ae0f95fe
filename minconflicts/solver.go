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
	"errors"
	"fmt"
	"math/rand"
	"time"

	log "github.com/golang/glog"
)

// DefaultMaxSteps is the repair step budget used by Solve.
const DefaultMaxSteps = 100000

var (
	// ErrInvalidSize holds the error when the requested board size is not
	// positive.
	ErrInvalidSize = errors.New("board size must be positive")
	// ErrInvalidMaxSteps holds the error when the step budget is not
	// positive.
	ErrInvalidMaxSteps = errors.New("step budget must be positive")
)

// Parameters configures a solve.
type Parameters struct {
	// MaxSteps is the repair step budget. It must be positive.
	MaxSteps int
	// Seed seeds every randomized choice of the solve, making the run
	// reproducible bit for bit. When nil, the solver seeds itself from the
	// current time.
	Seed *int64
	// Initialization selects the starting assignment strategy.
	Initialization InitStrategy
}

// Response is the outcome of a solve.
type Response struct {
	// Assignment is the conflict-free assignment, one column per row. It is
	// nil when Feasible is false.
	Assignment []int
	// Steps is the number of repair steps consumed.
	Steps int
	// Feasible reports whether a solution was found within the step budget.
	// An infeasible response is a normal outcome, not an error.
	Feasible bool
}

// Solve runs min-conflicts on an n-queens board with greedy initialization
// and the default step budget.
func Solve(n int) (*Response, error) {
	return SolveWithParameters(n, nil)
}

// SolveWithParameters runs min-conflicts on an n-queens board. A nil params
// selects greedy initialization, a time-based seed and the default step
// budget. The returned error reports invalid input only; running out of
// steps yields a Response with Feasible set to false.
func SolveWithParameters(n int, params *Parameters) (*Response, error) {
	if n <= 0 {
		return nil, fmt.Errorf("n = %v: %w", n, ErrInvalidSize)
	}
	maxSteps := DefaultMaxSteps
	initialization := GreedyInit
	seed := time.Now().UnixNano()
	if params != nil {
		if params.MaxSteps <= 0 {
			return nil, fmt.Errorf("MaxSteps = %v: %w", params.MaxSteps, ErrInvalidMaxSteps)
		}
		maxSteps = params.MaxSteps
		initialization = params.Initialization
		if params.Seed != nil {
			seed = *params.Seed
		}
	}
	rng := rand.New(rand.NewSource(seed))

	var b *Board
	switch initialization {
	case RandomInit:
		b = NewRandomBoard(n, rng)
	default:
		b = NewGreedyBoard(n, rng)
	}
	log.V(1).Infof("initialized %v-queens board (%v): %v conflicted rows", n, initialization, len(b.conflicted))

	steps := 0
	for {
		if len(b.conflicted) == 0 {
			if !IsSolution(b.queens) {
				log.Fatalf("board reports zero conflicts after %v steps but fails independent validation; incremental counters are corrupted", steps)
			}
			log.V(1).Infof("solved %v-queens in %v steps", n, steps)
			return &Response{Assignment: b.queens, Steps: steps, Feasible: true}, nil
		}
		if steps == maxSteps {
			log.V(1).Infof("%v-queens: step budget %v exhausted with %v conflicted rows", n, maxSteps, len(b.conflicted))
			return &Response{Steps: steps, Feasible: false}, nil
		}

		row := b.conflicted[rng.Intn(len(b.conflicted))]
		b.MoveQueen(row, minimumConflictColumn(b, row, rng))
		steps++
	}
}

// minimumConflictColumn scans every column of the row and returns one with
// the fewest conflicts, chosen uniformly at random among the minima. Picking
// the first minimum deterministically would let the loop cycle between a
// small set of equally bad configurations.
func minimumConflictColumn(b *Board, row int, rng *rand.Rand) int {
	best := -1
	bestConflicts := 0
	ties := 0
	for col := 0; col < b.n; col++ {
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
	return best
}
