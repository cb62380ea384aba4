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

// Package pilot turns the data frames of an HDLC transmission into
// directional commands and drives a bounded 5x5 grid position from them,
// debouncing runs of three identical consecutive commands.
package pilot

import (
	"errors"
	"fmt"

	hdlc "github.com/ZaparooProject/go-hdlc"
)

// Command is a directional move carried as the single payload byte of a
// data frame. The zero value means "no command" and marks an empty
// debounce slot.
type Command byte

const (
	// Up moves one cell toward y = 0.
	Up Command = 1
	// Down moves one cell toward y = 4.
	Down Command = 2
	// Right moves one cell toward x = 4.
	Right Command = 3
	// Left moves one cell toward x = 0.
	Left Command = 4
)

// ErrInvalidCommand is returned when a data frame's payload byte is not a
// known command value. Like the link-layer errors it is terminal for the
// stream that produced it.
var ErrInvalidCommand = errors.New("payload byte is not a valid command")

// ParseCommand maps a payload byte to a Command.
func ParseCommand(b byte) (Command, error) {
	c := Command(b)
	switch c {
	case Up, Down, Right, Left:
		return c, nil
	default:
		return 0, fmt.Errorf("%w: 0x%02X", ErrInvalidCommand, b)
	}
}

func (c Command) String() string {
	switch c {
	case Up:
		return "up"
	case Down:
		return "down"
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("command(%d)", byte(c))
	}
}

// MoveStream adapts a frame stream into a command sequence. Supervisory
// frames never surface; the first decode or command error ends iteration.
type MoveStream struct {
	frames *hdlc.FrameStream
	err    error
}

// NewMoveStream validates the transmission buffer and returns a command
// stream over its data frames.
func NewMoveStream(data []byte) (*MoveStream, error) {
	frames, err := hdlc.NewFrameStream(data)
	if err != nil {
		return nil, err
	}
	return &MoveStream{frames: frames}, nil
}

// Next returns the next decoded command, hdlc.ErrNoMoreFrames at the end of
// the transmission, or the first error encountered. Errors are sticky.
func (s *MoveStream) Next() (Command, error) {
	if s.err != nil {
		return 0, s.err
	}

	f, err := s.frames.Next()
	if err != nil {
		s.err = err
		return 0, s.err
	}

	if len(f.Payload) == 0 {
		s.err = fmt.Errorf("%w: data frame at offset %d carries no payload",
			ErrInvalidCommand, f.Offset)
		return 0, s.err
	}
	cmd, err := ParseCommand(f.Payload[0])
	if err != nil {
		s.err = err
		return 0, s.err
	}
	return cmd, nil
}
