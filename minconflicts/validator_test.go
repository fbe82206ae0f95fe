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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsSolution(t *testing.T) {
	tests := []struct {
		desc       string
		assignment []int
		want       bool
	}{
		{
			desc:       "valid 4-queens",
			assignment: []int{1, 3, 0, 2},
			want:       true,
		},
		{
			desc:       "valid 4-queens mirror",
			assignment: []int{2, 0, 3, 1},
			want:       true,
		},
		{
			desc:       "valid 8-queens",
			assignment: []int{0, 4, 7, 5, 2, 6, 1, 3},
			want:       true,
		},
		{
			desc:       "shared column",
			assignment: []int{0, 0, 2, 3},
			want:       false,
		},
		{
			desc:       "shared major diagonal",
			assignment: []int{0, 1, 2, 3},
			want:       false,
		},
		{
			desc:       "shared minor diagonal",
			assignment: []int{3, 2, 1, 0},
			want:       false,
		},
		{
			desc:       "column out of range",
			assignment: []int{0, 4, 1, 3},
			want:       false,
		},
		{
			desc:       "negative column",
			assignment: []int{0, -1, 1, 3},
			want:       false,
		},
		{
			desc:       "single queen",
			assignment: []int{0},
			want:       true,
		},
		{
			desc:       "two queens diagonal",
			assignment: []int{0, 1},
			want:       false,
		},
		{
			desc:       "empty board",
			assignment: nil,
			want:       true,
		},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			if got := IsSolution(test.assignment); got != test.want {
				t.Errorf("IsSolution(%v) = %v, want %v", test.assignment, got, test.want)
			}
		})
	}
}

func TestIsSolutionIdempotent(t *testing.T) {
	assignment := []int{1, 3, 0, 2}
	want := append([]int(nil), assignment...)

	first := IsSolution(assignment)
	second := IsSolution(assignment)
	if first != second {
		t.Errorf("IsSolution returned %v then %v on the same assignment", first, second)
	}
	if diff := cmp.Diff(want, assignment); diff != "" {
		t.Errorf("IsSolution modified its input, diff (-want +got):\n%s", diff)
	}
}
