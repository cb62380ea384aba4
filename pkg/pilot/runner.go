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
	"errors"

	hdlc "github.com/ZaparooProject/go-hdlc"
)

// Runner drives the full pipeline over one transmission buffer:
// frame stream -> command stream -> debounce window -> position.
type Runner struct {
	// OnMove, if set, fires after each individually applied command with
	// the position it produced.
	OnMove func(Command, Position)
	// Start is the initial position. NewRunner sets it to StartPosition.
	Start Position
}

// NewRunner returns a Runner starting from the standard start cell.
func NewRunner() *Runner {
	return &Runner{Start: StartPosition}
}

// Run decodes the transmission and applies its commands in order, one
// debounce step behind arrival, draining the window at stream end.
//
// On a decode or command error the position reached so far is returned
// alongside the error: commands already applied remain valid, while
// commands still pending in the window were never emitted and are dropped
// with the rest of the stream.
func (r *Runner) Run(data []byte) (Position, error) {
	pos := r.Start

	moves, err := NewMoveStream(data)
	if err != nil {
		return pos, err
	}

	apply := func(c Command) {
		pos.Apply(c)
		hdlc.Debugf("applied %s -> %s", c, pos)
		if r.OnMove != nil {
			r.OnMove(c, pos)
		}
	}

	var window MoveDebouncer
	for {
		cmd, err := moves.Next()
		if err != nil {
			if errors.Is(err, hdlc.ErrNoMoreFrames) {
				window.Drain(apply)
				return pos, nil
			}
			return pos, err
		}
		if pending, ok := window.Push(cmd); ok {
			apply(pending)
		}
	}
}
