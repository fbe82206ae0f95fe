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

// IsSolution certifies an assignment in O(n), independently of any Board and
// its incremental counters: no column, major diagonal (row-col) or minor
// diagonal (row+col) may hold more than one queen. Rows cannot collide by
// construction. The assignment may come from any source; entries outside
// [0, n) make it invalid.
func IsSolution(assignment []int) bool {
	n := len(assignment)
	if n == 0 {
		return true
	}
	cols := make([]bool, n)
	diag1 := make([]bool, 2*n-1)
	diag2 := make([]bool, 2*n-1)
	for row, col := range assignment {
		if col < 0 || col >= n {
			return false
		}
		d1 := row - col + n - 1
		d2 := row + col
		if cols[col] || diag1[d1] || diag2[d2] {
			return false
		}
		cols[col] = true
		diag1[d1] = true
		diag2[d2] = true
	}
	return true
}
