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

// debounceWindow is the lookback length: three identical consecutive
// commands are suppressed as a group.
const debounceWindow = 3

// MoveDebouncer delays each command by one insertion cycle so that a third
// identical command can still retroactively cancel the two before it. A run
// of exactly three identical commands is discarded entirely; a fourth
// consecutive one starts accumulating toward a new potential triplet, so
// runs of four or five pass through and a sixth forms a new suppressed
// triplet.
//
// The zero value is ready to use.
type MoveDebouncer struct {
	window [debounceWindow]Command
	cursor int
}

// Push inserts a command into the window and returns the command evicted by
// it, if any. The eviction happens before the insertion and the triplet
// check after it; this ordering is load-bearing. The evicted command has
// been pending for exactly one full window cycle and is safe to apply.
func (d *MoveDebouncer) Push(c Command) (evicted Command, ok bool) {
	evicted = d.window[d.cursor]
	d.window[d.cursor] = c

	if d.window[0] != 0 && d.window[0] == d.window[1] && d.window[1] == d.window[2] {
		d.window = [debounceWindow]Command{}
	}

	d.cursor = (d.cursor + 1) % debounceWindow
	return evicted, evicted != 0
}

// Drain applies the commands still pending in the window, in cursor order,
// and empties it. No triplet matching happens during drain. Call once at
// the end of the stream.
func (d *MoveDebouncer) Drain(apply func(Command)) {
	for range d.window {
		if c := d.window[d.cursor]; c != 0 {
			apply(c)
			d.window[d.cursor] = 0
		}
		d.cursor = (d.cursor + 1) % debounceWindow
	}
}
