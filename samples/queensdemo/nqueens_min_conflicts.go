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

// The nqueens_min_conflicts command solves one N-queens instance with the
// min-conflicts engine and prints the outcome.
package main

import (
	"flag"
	"fmt"
	"time"

	log "github.com/golang/glog"
	"github.com/google/nqueens/minconflicts"
)

var (
	boardSize = flag.Int("n", 10, "board size")
	maxSteps  = flag.Int("max_steps", minconflicts.DefaultMaxSteps, "repair step budget")
	seed      = flag.Int64("seed", -1, "random seed; a negative value seeds from the current time")
	initName  = flag.String("init", "greedy", "initialization strategy, greedy or random")
)

func nQueensMinConflicts() error {
	params := &minconflicts.Parameters{MaxSteps: *maxSteps}
	if *seed >= 0 {
		s := *seed
		params.Seed = &s
	}
	switch *initName {
	case "greedy":
		params.Initialization = minconflicts.GreedyInit
	case "random":
		params.Initialization = minconflicts.RandomInit
	default:
		return fmt.Errorf("unknown initialization strategy %q", *initName)
	}

	start := time.Now()
	res, err := minconflicts.SolveWithParameters(*boardSize, params)
	if err != nil {
		return fmt.Errorf("failed to solve %v-queens: %w", *boardSize, err)
	}
	elapsed := time.Since(start)

	if !res.Feasible {
		fmt.Printf("No solution found within %v steps (%.4fs)\n", res.Steps, elapsed.Seconds())
		return nil
	}

	fmt.Printf("Solution found in %v steps (%.4fs)\n", res.Steps, elapsed.Seconds())
	fmt.Printf("Independent validation: %v\n", minconflicts.IsSolution(res.Assignment))
	if *boardSize <= 20 {
		fmt.Printf("Board (row -> col): %v\n", res.Assignment)
	}
	if *boardSize <= 40 {
		for row := 0; row < *boardSize; row++ {
			for col := 0; col < *boardSize; col++ {
				if res.Assignment[row] == col {
					fmt.Print("Q")
				} else {
					fmt.Print("_")
				}
			}
			fmt.Println()
		}
	}

	return nil
}

func main() {
	flag.Parse()
	if err := nQueensMinConflicts(); err != nil {
		log.Exitf("nQueensMinConflicts returned with error: %v", err)
	}
}
