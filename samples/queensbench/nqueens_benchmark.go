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

// The nqueens_benchmark command times the min-conflicts engine on a ladder
// of board sizes up to one million queens.
package main

import (
	"flag"
	"fmt"
	"time"

	log "github.com/golang/glog"
	"github.com/google/nqueens/minconflicts"
)

var seed = flag.Int64("seed", 42, "random seed shared by every run")

func runBenchmark(n int) error {
	fmt.Printf("Benchmarking n=%v...\n", n)

	s := *seed
	params := &minconflicts.Parameters{
		// Large boards need budgets that grow with n.
		MaxSteps: 5 * n,
		Seed:     &s,
	}

	start := time.Now()
	res, err := minconflicts.SolveWithParameters(n, params)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("  Time: %.4fs\n", elapsed.Seconds())
	fmt.Printf("  Steps: %v\n", res.Steps)
	if res.Feasible {
		fmt.Println("  Result: Success")
	} else {
		fmt.Println("  Result: Failed")
	}
	return nil
}

func main() {
	flag.Parse()
	for _, n := range []int{1000, 10000, 100000, 1000000} {
		if err := runBenchmark(n); err != nil {
			log.Exitf("runBenchmark(%v) returned with error: %v", n, err)
		}
	}
}
