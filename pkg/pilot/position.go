// Copyright 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: Apache-2.0
//
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

package pilot

import (
	"fmt"
	"strings"
)

// Grid bounds. The coordinate system has (0,0) in the top-left corner and
// (4,4) in the bottom-right; Up decrements y, Down increments it.
const (
	GridMin = 0
	GridMax = 4
)

// Position is a coordinate on the grid. Moves that would leave the grid are
// absorbed as no-ops on that axis rather than rejected.
type Position struct {
	X int
	Y int
}

// StartPosition is the bottom-left cell every run begins on.
var StartPosition = Position{X: 0, Y: 4}

// Apply moves the position one step in the command's direction, clamping
// each axis independently to the grid bounds. No failure mode.
func (p *Position) Apply(c Command) {
	switch c {
	case Up:
		p.Y = clamp(p.Y - 1)
	case Down:
		p.Y = clamp(p.Y + 1)
	case Right:
		p.X = clamp(p.X + 1)
	case Left:
		p.X = clamp(p.X - 1)
	}
}

func clamp(v int) int {
	if v < GridMin {
		return GridMin
	}
	if v > GridMax {
		return GridMax
	}
	return v
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Render draws the grid as five rows of five double-width block cells, with
// the occupied cell marked "xx". For human inspection only.
func (p Position) Render() string {
	var sb strings.Builder
	for y := GridMin; y <= GridMax; y++ {
		for x := GridMin; x <= GridMax; x++ {
			if x == p.X && y == p.Y {
				sb.WriteString("xx")
			} else {
				sb.WriteString("██")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
